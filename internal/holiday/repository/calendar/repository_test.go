package calendar

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hr-assistant/pkg/gcalendar"
	pkgLog "hr-assistant/pkg/log"
)

type stubLister struct {
	events []gcalendar.Event
	err    error
	req    gcalendar.ListEventsRequest
}

func (s *stubLister) ListEvents(_ context.Context, req gcalendar.ListEventsRequest) ([]gcalendar.Event, error) {
	s.req = req
	return s.events, s.err
}

func TestList(t *testing.T) {
	ist, err := time.LoadLocation("Asia/Kolkata")
	require.NoError(t, err)

	lister := &stubLister{events: []gcalendar.Event{
		{ID: "e1", Summary: "Republic Day", Description: "Republic Day of India", Date: "2024-01-26", AllDay: true},
		{ID: "e2", Summary: "Offsite", Date: "2024-03-01", StartTime: time.Date(2024, 3, 1, 20, 0, 0, 0, time.UTC)},
		{ID: "e3", Date: "2024-04-01", AllDay: true},
	}}
	repo := New(pkgLog.NewNop(), lister, Config{CalendarID: "hr@example.com", Year: 2024, Location: ist})

	list, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 2)

	assert.Equal(t, "2024-01-26", list[0].Date)
	assert.Equal(t, DefaultType, list[0].Type)
	assert.Equal(t, "Republic Day of India", list[0].Description)
	// 20:00 UTC is already the next day in IST.
	assert.Equal(t, "2024-03-02", list[1].Date)

	assert.Equal(t, "hr@example.com", lister.req.CalendarID)
	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, ist), lister.req.TimeMin)
	assert.Equal(t, time.Date(2025, 1, 1, 0, 0, 0, 0, ist), lister.req.TimeMax)
}

func TestList_Error(t *testing.T) {
	boom := errors.New("forbidden")
	repo := New(pkgLog.NewNop(), &stubLister{err: boom}, Config{Year: 2024})

	_, err := repo.List(context.Background())
	assert.ErrorIs(t, err, boom)
}
