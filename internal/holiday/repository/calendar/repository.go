package calendar

import (
	"context"
	"fmt"
	"time"

	"hr-assistant/internal/holiday"
	"hr-assistant/internal/holiday/repository"
	"hr-assistant/pkg/datemath"
	"hr-assistant/pkg/gcalendar"
	pkgLog "hr-assistant/pkg/log"
)

// DefaultType labels events that carry no holiday type of their own.
const DefaultType = "Company Holiday"

// EventLister is the part of gcalendar.Client the repository needs.
type EventLister interface {
	ListEvents(ctx context.Context, req gcalendar.ListEventsRequest) ([]gcalendar.Event, error)
}

// Config selects the calendar and year to read.
type Config struct {
	CalendarID string
	Year       int
	Location   *time.Location
}

type implRepository struct {
	l      pkgLog.Logger
	events EventLister
	cfg    Config
}

// New creates a holiday repository backed by a Google Calendar.
func New(l pkgLog.Logger, events EventLister, cfg Config) repository.Repository {
	if cfg.Location == nil {
		cfg.Location = time.UTC
	}
	return &implRepository{l: l, events: events, cfg: cfg}
}

func (r *implRepository) List(ctx context.Context) ([]holiday.Holiday, error) {
	start := time.Date(r.cfg.Year, time.January, 1, 0, 0, 0, 0, r.cfg.Location)
	events, err := r.events.ListEvents(ctx, gcalendar.ListEventsRequest{
		CalendarID: r.cfg.CalendarID,
		TimeMin:    start,
		TimeMax:    start.AddDate(1, 0, 0),
	})
	if err != nil {
		return nil, fmt.Errorf("holiday calendar %s: %w", r.cfg.CalendarID, err)
	}

	out := make([]holiday.Holiday, 0, len(events))
	for _, ev := range events {
		date := ev.Date
		if !ev.AllDay && !ev.StartTime.IsZero() {
			date = ev.StartTime.In(r.cfg.Location).Format(datemath.ISOLayout)
		}
		if date == "" || ev.Summary == "" {
			r.l.Debugf(ctx, "holiday.calendar.List: skipping event %q without date or title", ev.ID)
			continue
		}
		out = append(out, holiday.Holiday{
			ID:          ev.ID,
			Date:        date,
			Name:        ev.Summary,
			Type:        DefaultType,
			Description: ev.Description,
		})
	}
	return out, nil
}
