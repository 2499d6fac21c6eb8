package agent

import (
	"context"
	"fmt"
	"strings"

	hragent "hr-assistant/internal/agent"
	"hr-assistant/internal/holiday/usecase"
	"hr-assistant/internal/model"
	"hr-assistant/internal/router"
	"hr-assistant/pkg/datemath"
)

// Name implements agent.Agent.
func (a *Agent) Name() string {
	return string(router.IntentHoliday)
}

// Handle implements agent.Agent.
func (a *Agent) Handle(ctx context.Context, req hragent.Request) (model.AgentResponse, error) {
	q := strings.ToLower(req.Query)

	data, err := a.selection(ctx, req.Query, q)
	if err != nil {
		return model.AgentResponse{}, fmt.Errorf("%s: %w", logPrefix, err)
	}

	if a.aug.Available() {
		answer, err := a.answer(ctx, req)
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

// selection formats the holidays the query asks for.
func (a *Agent) selection(ctx context.Context, query, q string) (string, error) {
	switch {
	case containsAny(q, upcomingKeywords):
		list, err := a.uc.Upcoming(ctx, nextLimit)
		if err != nil {
			return "", err
		}
		return usecase.FormatUpcoming(list), nil

	case containsAny(q, allKeywords):
		list, err := a.uc.All(ctx)
		if err != nil {
			return "", err
		}
		return usecase.FormatList(list, "All Company Holidays"), nil
	}

	if m := monthPattern.FindStringSubmatch(query); m != nil {
		if month, ok := datemath.ParseMonth(m[1]); ok {
			list, err := a.uc.ByMonth(ctx, month)
			if err != nil {
				return "", err
			}
			return usecase.FormatList(list, "Holidays in "+month.String()), nil
		}
	}

	list, err := a.uc.Upcoming(ctx, defaultLimit)
	if err != nil {
		return "", err
	}
	return usecase.FormatUpcoming(list), nil
}

// answer gives the model the whole calendar, whatever was selected.
func (a *Agent) answer(ctx context.Context, req hragent.Request) (string, error) {
	all, err := a.uc.All(ctx)
	if err != nil {
		return "", err
	}
	return a.aug.Generate(ctx, fmt.Sprintf(systemPrompt, usecase.FormatList(all, "All Holidays")), req.Turns())
}

func containsAny(s string, words []string) bool {
	for _, w := range words {
		if strings.Contains(s, w) {
			return true
		}
	}
	return false
}
