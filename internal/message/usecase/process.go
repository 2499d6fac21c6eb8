package usecase

import (
	"context"
	"fmt"
	"strings"

	"hr-assistant/internal/agent"
	"hr-assistant/internal/conversation"
	"hr-assistant/internal/flow"
	"hr-assistant/internal/message"
	"hr-assistant/internal/model"
	"hr-assistant/internal/router"
)

const logPrefix = "message.usecase.Process"

// flowOwners maps each flow to the intent whose agent runs it.
var flowOwners = map[conversation.Flow]router.Intent{
	conversation.FlowRegularization:   router.IntentAttendance,
	conversation.FlowLeaveApplication: router.IntentLeave,
}

func (uc *implUseCase) Process(ctx context.Context, input message.ProcessInput) (message.ProcessOutput, error) {
	if len(input.Contents) == 0 {
		return message.ProcessOutput{}, message.ErrEmptyContents
	}
	if strings.TrimSpace(input.UserID) == "" {
		return message.ProcessOutput{}, message.ErrMissingUserID
	}

	query := latestQuery(input.Contents)
	route := uc.route(ctx, input.UserID, query, input.Contents)
	if uc.recorder != nil {
		uc.recorder.ObserveIntent(string(route.Intent), string(route.Source))
	}
	uc.l.Infof(ctx, "%s: intent=%s source=%s confidence=%d reason=%q", logPrefix, route.Intent, route.Source, route.Confidence, route.Reasoning)

	resp := uc.orch.Route(ctx, route.Intent, agent.Request{
		UserID:  input.UserID,
		Query:   query,
		History: input.Contents,
	})
	return message.ProcessOutput{Response: resp, Route: route}, nil
}

// route keeps a user inside an open flow unless the query clearly names
// another domain. Free-text answers always stay with the flow.
func (uc *implUseCase) route(ctx context.Context, userID, query string, history []model.Turn) router.RouterOutput {
	if owner, f, ok := uc.activeOwner(ctx, userID, query); ok {
		return router.RouterOutput{
			Intent:     owner,
			Confidence: router.KeywordConfidence,
			Reasoning:  fmt.Sprintf(router.ReasonActiveFlow, f),
			Source:     router.SourceFlow,
		}
	}

	out, err := uc.router.Classify(ctx, query, history)
	if err != nil {
		uc.l.Warnf(ctx, "%s: classify: %v", logPrefix, err)
		return router.RouterOutput{
			Intent:     router.RouterFallbackIntent,
			Confidence: router.RouterFallbackConfidence,
			Reasoning:  router.ReasonLLMFailed,
			Source:     router.SourceFallback,
		}
	}
	return out
}

func (uc *implUseCase) activeOwner(ctx context.Context, userID, query string) (router.Intent, conversation.Flow, bool) {
	state, ok, err := uc.store.Get(ctx, userID)
	if err != nil {
		uc.l.Warnf(ctx, "%s: store.Get: %v", logPrefix, err)
		return "", "", false
	}
	if !ok {
		return "", "", false
	}
	owner, known := flowOwners[state.Flow]
	if !known {
		return "", "", false
	}
	if flow.AwaitingText(state) {
		return owner, state.Flow, true
	}
	if intent, matched := router.MatchKeywords(query); matched && intent != owner {
		return "", "", false
	}
	return owner, state.Flow, true
}

// latestQuery is the text of the last user turn, or of the last turn when
// the client sent none.
func latestQuery(contents []model.Turn) string {
	for i := len(contents) - 1; i >= 0; i-- {
		if contents[i].Role == model.RoleUser {
			return contents[i].Text
		}
	}
	return contents[len(contents)-1].Text
}
