package agent

import (
	"context"
	"fmt"
	"strings"

	hragent "hr-assistant/internal/agent"
	"hr-assistant/internal/attendance"
	"hr-assistant/internal/attendance/usecase"
	"hr-assistant/internal/conversation"
	"hr-assistant/internal/flow"
	"hr-assistant/internal/form"
	"hr-assistant/internal/model"
	"hr-assistant/internal/router"
)

// Name implements agent.Agent.
func (a *Agent) Name() string {
	return string(router.IntentAttendance)
}

// Handle implements agent.Agent.
func (a *Agent) Handle(ctx context.Context, req hragent.Request) (model.AgentResponse, error) {
	q := strings.ToLower(req.Query)

	var resp model.AgentResponse
	state, active := a.engine.Active(ctx, req.UserID, conversation.FlowRegularization)
	switch {
	case active && flow.AwaitingText(state):
		resp = a.engine.Continue(ctx, req.UserID, state, req.Query, a.submit)
	case isRegularizeRequest(q):
		resp = a.engine.Start(ctx, req.UserID, conversation.FlowRegularization, req.Query, a.submit)
	case active:
		resp = a.engine.Continue(ctx, req.UserID, state, req.Query, a.submit)
	default:
		return a.status(ctx, req)
	}

	if resp.Completed {
		resp = a.confirm(ctx, req, resp)
	}
	return resp, nil
}

func (a *Agent) status(ctx context.Context, req hragent.Request) (model.AgentResponse, error) {
	summary, err := a.uc.Status(ctx, req.UserID)
	if err != nil {
		return model.AgentResponse{}, fmt.Errorf("%s: %w", logPrefix, err)
	}
	data := usecase.FormatStatus(summary)

	if a.aug.Available() {
		answer, err := a.aug.Generate(ctx, fmt.Sprintf(statusPrompt, data), req.Turns())
		if err == nil {
			return model.TextResponse(answer), nil
		}
		a.l.Warnf(ctx, "%s.status: model unavailable, answering with data: %v", logPrefix, err)
	}
	return model.TextResponse(data + usecase.Tips), nil
}

// confirm puts a conversational confirmation in front of the submission result.
func (a *Agent) confirm(ctx context.Context, req hragent.Request, resp model.AgentResponse) model.AgentResponse {
	if !a.aug.Available() {
		return resp
	}
	answer, err := a.aug.Generate(ctx, confirmationPrompt, req.Turns())
	if err != nil {
		a.l.Warnf(ctx, "%s.confirm: %v", logPrefix, err)
		return resp
	}
	resp.Text = answer + dataSeparator + resp.Text
	return resp
}

func (a *Agent) submit(ctx context.Context, userID string, fields map[string]string) (model.AgentResponse, error) {
	out, err := a.uc.Regularize(ctx, userID, attendance.RegularizeInput{
		Date:         fields[form.FieldDate],
		Reason:       fields[form.FieldReason],
		CustomReason: fields[form.FieldCustomReason],
	})
	if err != nil {
		return model.AgentResponse{}, err
	}
	return model.CompletedResponse(usecase.FormatRegularization(out)), nil
}

func isRegularizeRequest(q string) bool {
	return strings.Contains(q, "regularize") || strings.Contains(q, "regularization")
}
