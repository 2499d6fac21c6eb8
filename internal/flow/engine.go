package flow

import (
	"context"
	"fmt"

	"hr-assistant/internal/conversation"
	"hr-assistant/internal/form"
	"hr-assistant/internal/model"
)

// Active returns the user's state if it belongs to f.
func (e *Engine) Active(ctx context.Context, userID string, f conversation.Flow) (conversation.State, bool) {
	state, ok, err := e.store.Get(ctx, userID)
	if err != nil {
		e.l.Warnf(ctx, "%s.Active: store.Get: %v", logPrefix, err)
		return conversation.State{}, false
	}
	if !ok || state.Flow != f {
		return conversation.State{}, false
	}
	return state, true
}

// Start replaces any state of the user with a fresh f, applies fields found in
// the trigger query and emits the first prompt (or completes immediately).
func (e *Engine) Start(ctx context.Context, userID string, f conversation.Flow, query string, submit Submitter) model.AgentResponse {
	spec, err := form.SpecFor(f)
	if err != nil {
		e.l.Errorf(ctx, "%s.Start: %v", logPrefix, err)
		return e.fail(ctx, userID, f, NotStarted)
	}

	if err := e.store.Set(ctx, userID, conversation.NewState(userID, f)); err != nil {
		e.l.Errorf(ctx, "%s.Start: store.Set: %v", logPrefix, err)
		return e.fail(ctx, userID, f, NotStarted)
	}

	fields := e.extractor.Extract(query)
	return e.advance(ctx, userID, spec, NotStarted, fields, submit)
}

// Continue applies one more turn to an existing state.
func (e *Engine) Continue(ctx context.Context, userID string, state conversation.State, query string, submit Submitter) model.AgentResponse {
	spec, err := form.SpecFor(state.Flow)
	if err != nil {
		e.l.Errorf(ctx, "%s.Continue: %v", logPrefix, err)
		return e.fail(ctx, userID, state.Flow, NotStarted)
	}

	from := Derive(spec, state.CollectedFields)
	fields, strategy := e.extractor.Matched(query)
	if from.Phase == PhaseAwaitingField {
		fields = e.resolveAwaited(spec.Fields[from.Index], fields, query, isStructured(strategy))
	}
	return e.advance(ctx, userID, spec, from, fields, submit)
}

func (e *Engine) advance(ctx context.Context, userID string, spec form.Spec, from Status, fields map[string]string, submit Submitter) model.AgentResponse {
	state, err := e.merge(ctx, userID, fields)
	if err != nil {
		e.l.Errorf(ctx, "%s.advance: merge: %v", logPrefix, err)
		return e.fail(ctx, userID, spec.Flow, from)
	}

	to := Derive(spec, state.CollectedFields)
	if to.Phase == PhaseAwaitingField {
		e.observe(ctx, spec.Flow, from, to)
		p := spec.Next(state.CollectedFields)
		return model.AgentResponse{Text: p.Text, UI: p.UI}
	}

	resp, err := e.submit(ctx, userID, state.CollectedFields, submit)
	if err != nil {
		e.l.Errorf(ctx, "%s.advance: submit %s: %v", logPrefix, spec.Flow, err)
		return e.fail(ctx, userID, spec.Flow, from)
	}

	e.clear(ctx, userID)
	e.observe(ctx, spec.Flow, from, Completed)
	resp.Completed = true
	resp.UI = model.UI{}
	return resp
}

// merge writes fields through the store. An empty turn still refreshes the TTL.
func (e *Engine) merge(ctx context.Context, userID string, fields map[string]string) (conversation.State, error) {
	return e.store.Update(ctx, userID, fields)
}

func (e *Engine) submit(ctx context.Context, userID string, fields map[string]string, submit Submitter) (resp model.AgentResponse, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("submit panicked: %v", r)
		}
	}()
	if submit == nil {
		return model.AgentResponse{}, fmt.Errorf("no submitter")
	}
	snapshot := make(map[string]string, len(fields))
	for k, v := range fields {
		snapshot[k] = v
	}
	return submit(ctx, userID, snapshot)
}

func (e *Engine) fail(ctx context.Context, userID string, f conversation.Flow, from Status) model.AgentResponse {
	e.clear(ctx, userID)
	e.observe(ctx, f, from, Errored)
	return model.TextResponse(Apology(f))
}

func (e *Engine) clear(ctx context.Context, userID string) {
	if err := e.store.Clear(ctx, userID); err != nil {
		e.l.Errorf(ctx, "%s.clear: %v", logPrefix, err)
	}
}

func (e *Engine) observe(ctx context.Context, f conversation.Flow, from, to Status) {
	if !CanTransition(from, to) {
		e.l.Warnf(ctx, "%s: illegal transition %s -> %s in %s", logPrefix, from, to, f)
	}
	if e.observer != nil {
		e.observer.ObserveTransition(f, from, to)
	}
}

// Awaiting returns the field state is waiting for, if any.
func Awaiting(state conversation.State) (form.Field, bool) {
	spec, err := form.SpecFor(state.Flow)
	if err != nil {
		return form.Field{}, false
	}
	s := Derive(spec, state.CollectedFields)
	if s.Phase != PhaseAwaitingField {
		return form.Field{}, false
	}
	return spec.Fields[s.Index], true
}

// AwaitingText reports whether state waits for a free-text answer. Agents use
// it to keep trigger words inside such answers from restarting the flow.
func AwaitingText(state conversation.State) bool {
	f, ok := Awaiting(state)
	return ok && f.Kind == model.ComponentTextInput
}
