package router

import (
	"context"

	"hr-assistant/internal/model"
	"hr-assistant/pkg/llmprovider"
	"hr-assistant/pkg/log"
)

// Router is the interface for intent classification
type Router interface {
	Classify(ctx context.Context, message string, history []model.Turn) (RouterOutput, error)
}

// Generator is the text generation backend used when no keyword matches.
type Generator interface {
	GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error)
	Available() bool
}

// IntentRouter classifies by keyword first, then by model.
type IntentRouter struct {
	llm Generator
	l   log.Logger
}

var _ Router = (*IntentRouter)(nil)

// New creates an IntentRouter. llm may be nil.
func New(llm Generator, l log.Logger) *IntentRouter {
	return &IntentRouter{
		llm: llm,
		l:   l,
	}
}
