package agent

import (
	"context"
	"errors"
	"strings"
	"time"

	"hr-assistant/internal/model"
	"hr-assistant/pkg/llmprovider"
)

// ErrNotConfigured is returned by Generate when no model is available.
var ErrNotConfigured = errors.New("agent: text generator not configured")

// ErrEmptyAnswer is returned when the model answers with blank text.
var ErrEmptyAnswer = errors.New("agent: empty model answer")

// Generator is the text generation backend.
type Generator interface {
	GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error)
	Available() bool
}

// AugmenterConfig tunes generation.
type AugmenterConfig struct {
	Temperature float64
	MaxTokens   int
	Location    *time.Location
}

// Augmenter wraps domain data in a conversational answer. Agents must treat
// every error as "no augmentation" and fall back to the formatted data.
type Augmenter struct {
	llm Generator
	cfg AugmenterConfig
	now func() time.Time
}

// NewAugmenter builds an Augmenter. llm may be nil.
func NewAugmenter(llm Generator, cfg AugmenterConfig) *Augmenter {
	if cfg.Location == nil {
		cfg.Location = time.UTC
	}
	return &Augmenter{llm: llm, cfg: cfg, now: time.Now}
}

// Available reports whether Generate can succeed at all.
func (a *Augmenter) Available() bool {
	return a != nil && a.llm != nil && a.llm.Available()
}

// Generate sends system plus history. Model turns become assistant turns,
// system turns are appended to the system prompt and blank turns are dropped.
func (a *Augmenter) Generate(ctx context.Context, system string, history []model.Turn) (string, error) {
	if !a.Available() {
		return "", ErrNotConfigured
	}

	var sb strings.Builder
	sb.WriteString(system)
	msgs := make([]llmprovider.Message, 0, len(history))
	for _, t := range history {
		text := strings.TrimSpace(t.Text)
		if text == "" {
			continue
		}
		switch t.Role {
		case model.RoleModel:
			msgs = append(msgs, llmprovider.Message{Role: llmprovider.RoleAssistant, Content: t.Text})
		case model.RoleSystem:
			sb.WriteString("\n\n")
			sb.WriteString(text)
		default:
			msgs = append(msgs, llmprovider.Message{Role: llmprovider.RoleUser, Content: t.Text})
		}
	}
	sb.WriteString(buildTimeContext(a.now().In(a.cfg.Location)))

	resp, err := a.llm.GenerateContent(ctx, &llmprovider.Request{
		System:      sb.String(),
		Messages:    msgs,
		Temperature: a.cfg.Temperature,
		MaxTokens:   a.cfg.MaxTokens,
	})
	if err != nil {
		return "", err
	}

	answer := strings.TrimSpace(resp.Content)
	if answer == "" {
		return "", ErrEmptyAnswer
	}
	return answer, nil
}
