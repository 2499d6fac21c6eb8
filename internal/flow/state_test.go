package flow

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"hr-assistant/internal/conversation"
	"hr-assistant/internal/form"
)

func TestDerive(t *testing.T) {
	spec, _ := form.SpecFor(conversation.FlowRegularization)

	assert.Equal(t, AwaitingField(spec, 0), Derive(spec, nil))
	assert.Equal(t, "reason", Derive(spec, map[string]string{"date": "2024-01-15"}).Field)
	assert.Equal(t, "customReason", Derive(spec, map[string]string{"date": "2024-01-15", "reason": "other"}).Field)
	assert.Equal(t, Completed, Derive(spec, map[string]string{"date": "2024-01-15", "reason": "late_arrival"}))
}

func TestCanTransition(t *testing.T) {
	spec, _ := form.SpecFor(conversation.FlowLeaveApplication)
	awaiting := AwaitingField(spec, 1)

	tests := []struct {
		from, to Status
		want     bool
	}{
		{NotStarted, AwaitingField(spec, 0), true},
		{NotStarted, Completed, true},
		{awaiting, awaiting, true},
		{awaiting, AwaitingField(spec, 2), true},
		{awaiting, Completed, true},
		{awaiting, Errored, true},
		{awaiting, NotStarted, false},
		{Completed, awaiting, false},
		{Errored, NotStarted, false},
		{Completed, Completed, false},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, CanTransition(tc.from, tc.to), "%s -> %s", tc.from, tc.to)
	}
}

func TestPhaseTerminal(t *testing.T) {
	assert.True(t, PhaseCompleted.Terminal())
	assert.True(t, PhaseErrored.Terminal())
	assert.False(t, PhaseAwaitingField.Terminal())
	assert.False(t, PhaseNotStarted.Terminal())
}
