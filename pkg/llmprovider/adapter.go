package llmprovider

import (
	"context"

	"hr-assistant/pkg/gemini"
	"hr-assistant/pkg/openaichat"
)

// GeminiAdapter adapts pkg/gemini to llmprovider.Provider interface
type GeminiAdapter struct {
	client gemini.IGemini
}

// NewGeminiAdapter creates a new Gemini adapter
func NewGeminiAdapter(client gemini.IGemini) *GeminiAdapter {
	return &GeminiAdapter{client: client}
}

// GenerateContent implements Provider interface
func (a *GeminiAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	msgs := make([]gemini.Message, 0, len(req.Messages))
	for _, m := range req.Messages {
		role := gemini.RoleUser
		if m.Role == RoleAssistant {
			role = gemini.RoleModel
		}
		msgs = append(msgs, gemini.Message{Role: role, Text: m.Content})
	}

	resp, err := a.client.GenerateContent(ctx, &gemini.Request{
		SystemInstruction: req.System,
		Messages:          msgs,
		Temperature:       req.Temperature,
		MaxTokens:         req.MaxTokens,
	})
	if err != nil {
		return nil, &ProviderError{Provider: a.Name(), Err: err}
	}

	return &Response{
		Content:      resp.Text,
		ProviderName: a.Name(),
		ModelName:    a.client.Model(),
		Usage: &Usage{
			InputTokens:  resp.Usage.InputTokens,
			OutputTokens: resp.Usage.OutputTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		},
	}, nil
}

// Name returns provider name
func (a *GeminiAdapter) Name() string {
	return "gemini"
}

// Model returns model name
func (a *GeminiAdapter) Model() string {
	return a.client.Model()
}

// ChatAdapter adapts any pkg/openaichat backend (azure, openai, qwen, deepseek).
type ChatAdapter struct {
	client openaichat.IChat
}

// NewChatAdapter creates a new adapter around an OpenAI-compatible client
func NewChatAdapter(client openaichat.IChat) *ChatAdapter {
	return &ChatAdapter{client: client}
}

// GenerateContent implements Provider interface
func (a *ChatAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	msgs := make([]openaichat.Message, 0, len(req.Messages))
	for _, m := range req.Messages {
		role := openaichat.RoleUser
		if m.Role == RoleAssistant {
			role = openaichat.RoleAssistant
		}
		msgs = append(msgs, openaichat.Message{Role: role, Content: m.Content})
	}

	resp, err := a.client.Complete(ctx, &openaichat.Request{
		System:      req.System,
		Messages:    msgs,
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	})
	if err != nil {
		return nil, &ProviderError{Provider: a.Name(), Err: err}
	}

	return &Response{
		Content:      resp.Content,
		ProviderName: a.Name(),
		ModelName:    a.client.Model(),
		Usage: &Usage{
			InputTokens:  resp.Usage.InputTokens,
			OutputTokens: resp.Usage.OutputTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		},
	}, nil
}

// Name returns provider name
func (a *ChatAdapter) Name() string {
	return a.client.Provider()
}

// Model returns model name
func (a *ChatAdapter) Model() string {
	return a.client.Model()
}
