package agent

import (
	"context"
	"fmt"
	"strings"

	hragent "hr-assistant/internal/agent"
	"hr-assistant/internal/conversation"
	"hr-assistant/internal/flow"
	"hr-assistant/internal/form"
	"hr-assistant/internal/leave"
	"hr-assistant/internal/leave/usecase"
	"hr-assistant/internal/model"
	"hr-assistant/internal/router"
)

// Name implements agent.Agent.
func (a *Agent) Name() string {
	return string(router.IntentLeave)
}

// Handle implements agent.Agent.
func (a *Agent) Handle(ctx context.Context, req hragent.Request) (model.AgentResponse, error) {
	q := strings.ToLower(req.Query)

	state, active := a.engine.Active(ctx, req.UserID, conversation.FlowLeaveApplication)
	switch {
	case active && flow.AwaitingText(state):
		return a.engine.Continue(ctx, req.UserID, state, req.Query, a.submit), nil
	case isApplyRequest(q):
		return a.engine.Start(ctx, req.UserID, conversation.FlowLeaveApplication, req.Query, a.submit), nil
	case active:
		return a.engine.Continue(ctx, req.UserID, state, req.Query, a.submit), nil
	}

	summary, err := a.uc.Summary(ctx, req.UserID)
	if err != nil {
		return model.AgentResponse{}, fmt.Errorf("%s: %w", logPrefix, err)
	}
	data := usecase.FormatSummary(summary)

	if a.aug.Available() {
		answer, err := a.aug.Generate(ctx, fmt.Sprintf(systemPrompt, data), req.Turns())
		if err == nil {
			if containsAny(q, showDataKeywords) {
				return model.TextResponse(answer + dataSeparator + data), nil
			}
			return model.TextResponse(answer), nil
		}
		a.l.Warnf(ctx, "%s.Handle: model unavailable, answering with data: %v", logPrefix, err)
	}

	return model.TextResponse(data + usecase.Tips), nil
}

func (a *Agent) submit(ctx context.Context, userID string, fields map[string]string) (model.AgentResponse, error) {
	app, err := a.uc.Apply(ctx, userID, leave.ApplyInput{
		LeaveType: fields[form.FieldLeaveType],
		FromDate:  fields[form.FieldFromDate],
		ToDate:    fields[form.FieldToDate],
		Reason:    fields[form.FieldReason],
	})
	if err != nil {
		return model.AgentResponse{}, err
	}
	return model.CompletedResponse(usecase.FormatApplication(app)), nil
}

func isApplyRequest(q string) bool {
	return strings.Contains(q, "apply") ||
		strings.Contains(q, "application") ||
		(strings.Contains(q, "leave") && strings.Contains(q, "want"))
}

func containsAny(s string, words []string) bool {
	for _, w := range words {
		if strings.Contains(s, w) {
			return true
		}
	}
	return false
}
