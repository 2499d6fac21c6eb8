package orchestrator

import (
	"context"
	"fmt"

	"hr-assistant/internal/agent"
	"hr-assistant/internal/model"
	"hr-assistant/internal/router"
)

// Route runs the agent registered for intent. It never fails: unknown
// intents, agent errors and agent panics all degrade to the general answer.
func (o *Orchestrator) Route(ctx context.Context, intent router.Intent, req agent.Request) model.AgentResponse {
	if intent != router.IntentGeneral {
		if a, ok := o.registry.Get(string(intent)); ok {
			resp, err := o.handle(ctx, a, req)
			if err == nil {
				return resp
			}
			o.l.Errorf(ctx, "%s: agent %s failed: %v", LogPrefixRoute, a.Name(), err)
		} else {
			o.l.Warnf(ctx, "%s: no agent registered for intent %s", LogPrefixRoute, intent)
		}
	}

	return o.general(ctx, req)
}

func (o *Orchestrator) handle(ctx context.Context, a agent.Agent, req agent.Request) (resp model.AgentResponse, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("agent %s panicked: %v", a.Name(), r)
		}
	}()

	resp, err = a.Handle(ctx, req)
	if err == nil && resp.Text == "" {
		err = fmt.Errorf("agent %s returned an empty response", a.Name())
	}
	return resp, err
}

// general answers with the model, then the static help text.
func (o *Orchestrator) general(ctx context.Context, req agent.Request) (resp model.AgentResponse) {
	defer func() {
		if r := recover(); r != nil {
			o.l.Errorf(ctx, "%s: general fallback panicked: %v", LogPrefixRoute, r)
			resp = model.TextResponse(ApologyText)
		}
	}()

	if !o.augmenter.Available() {
		return model.TextResponse(HelpText)
	}

	text, err := o.augmenter.Generate(ctx, SystemPromptGeneral, req.Turns())
	if err != nil {
		o.l.Warnf(ctx, "%s: general answer failed: %v", LogPrefixRoute, err)
		return model.TextResponse(HelpText)
	}
	return model.TextResponse(text)
}
