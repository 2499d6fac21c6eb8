package flow

import (
	"fmt"

	"hr-assistant/internal/form"
)

// Phase is a coarse position in a flow.
type Phase int

const (
	PhaseNotStarted Phase = iota
	PhaseAwaitingField
	PhaseCompleted
	PhaseErrored
)

func (p Phase) String() string {
	switch p {
	case PhaseNotStarted:
		return "not_started"
	case PhaseAwaitingField:
		return "awaiting_field"
	case PhaseCompleted:
		return "completed"
	case PhaseErrored:
		return "errored"
	default:
		return fmt.Sprintf("phase(%d)", int(p))
	}
}

// Terminal reports whether no state survives this phase.
func (p Phase) Terminal() bool {
	return p == PhaseCompleted || p == PhaseErrored
}

// Status is a Phase plus, while awaiting, which field.
type Status struct {
	Phase Phase
	// Index into form.Spec.Fields; only meaningful for PhaseAwaitingField.
	Index int
	Field string
}

func (s Status) String() string {
	if s.Phase == PhaseAwaitingField {
		return fmt.Sprintf("%s(%s)", s.Phase, s.Field)
	}
	return s.Phase.String()
}

// NotStarted, Completed and Errored are the field-less statuses.
var (
	NotStarted = Status{Phase: PhaseNotStarted}
	Completed  = Status{Phase: PhaseCompleted}
	Errored    = Status{Phase: PhaseErrored}
)

// AwaitingField is the status waiting on spec.Fields[i].
func AwaitingField(spec form.Spec, i int) Status {
	return Status{Phase: PhaseAwaitingField, Index: i, Field: spec.Fields[i].Key}
}

// transitions lists every allowed phase change. A trigger turn can fill every
// field at once, so NotStarted may go straight to Completed.
var transitions = map[Phase]map[Phase]bool{
	PhaseNotStarted: {
		PhaseAwaitingField: true,
		PhaseCompleted:     true,
		PhaseErrored:       true,
	},
	PhaseAwaitingField: {
		PhaseAwaitingField: true,
		PhaseCompleted:     true,
		PhaseErrored:       true,
	},
	PhaseCompleted: {},
	PhaseErrored:   {},
}

// CanTransition reports whether from -> to is a legal move. The field index
// is not checked: an overwriting merge can change which conditional fields apply.
func CanTransition(from, to Status) bool {
	return transitions[from.Phase][to.Phase]
}

// Derive computes where a flow stands from its collected fields. All fields
// present yields Completed: the terminal action is due.
func Derive(spec form.Spec, fields map[string]string) Status {
	i, missing := spec.Missing(fields)
	if !missing {
		return Completed
	}
	return AwaitingField(spec, i)
}
