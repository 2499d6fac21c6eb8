package router

import (
	"context"
	"fmt"
	"strings"

	"hr-assistant/internal/model"
	"hr-assistant/pkg/llmprovider"
)

// MatchKeywords is the deterministic part of Classify.
func MatchKeywords(message string) (Intent, bool) {
	intent, _, ok := matchKeyword(message)
	return intent, ok
}

func matchKeyword(message string) (Intent, string, bool) {
	lower := strings.ToLower(message)
	for _, g := range keywordTable {
		for _, kw := range g.keywords {
			if strings.Contains(lower, kw) {
				return g.intent, kw, true
			}
		}
	}
	return "", "", false
}

// Classify determines the intent of message. It never returns an error for
// model failures; those fall back to IntentGeneral. history is not sent to the model.
func (r *IntentRouter) Classify(ctx context.Context, message string, history []model.Turn) (RouterOutput, error) {
	if intent, kw, ok := matchKeyword(message); ok {
		return RouterOutput{
			Intent:     intent,
			Confidence: KeywordConfidence,
			Reasoning:  fmt.Sprintf(ReasonKeyword, kw),
			Source:     SourceKeyword,
		}, nil
	}

	if r.llm == nil || !r.llm.Available() {
		return fallback(ReasonNoGenerator), nil
	}

	resp, err := r.llm.GenerateContent(ctx, &llmprovider.Request{
		Messages: []llmprovider.Message{
			{Role: llmprovider.RoleUser, Content: fmt.Sprintf(PromptClassify, message)},
		},
		Temperature: RouterTemperature,
		MaxTokens:   RouterMaxTokens,
	})
	if err != nil {
		r.l.Warnf(ctx, "%s: %s: %v", LogPrefixClassify, ReasonLLMFailed, err)
		return fallback(ReasonLLMFailed), nil
	}

	label := Intent(strings.ToLower(strings.TrimSpace(resp.Content)))
	switch label {
	case IntentLeave, IntentHoliday, IntentAttendance:
		r.l.Infof(ctx, "%s: classified as %s by %s", LogPrefixClassify, label, resp.ProviderName)
		return RouterOutput{
			Intent:     label,
			Confidence: LLMConfidence,
			Reasoning:  ReasonLLM,
			Source:     SourceLLM,
		}, nil
	}

	r.l.Debugf(ctx, "%s: %s: %q", LogPrefixClassify, ReasonUnexpectedText, resp.Content)
	return fallback(ReasonUnexpectedText), nil
}

func fallback(reason string) RouterOutput {
	return RouterOutput{
		Intent:     RouterFallbackIntent,
		Confidence: RouterFallbackConfidence,
		Reasoning:  reason,
		Source:     SourceFallback,
	}
}
