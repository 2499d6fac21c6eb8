package openaichat

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/azure"
	"github.com/openai/openai-go/option"
)

// ErrNoChoices is returned when the completion carries no usable text.
var ErrNoChoices = errors.New("openaichat: no choices returned")

type chatService interface {
	New(ctx context.Context, body openai.ChatCompletionNewParams, opts ...option.RequestOption) (*openai.ChatCompletion, error)
}

type client struct {
	provider string
	model    string
	chat     chatService
}

func newClient(cfg Config) *client {
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}

	opts := []option.RequestOption{
		option.WithHTTPClient(httpClient),
		option.WithRequestTimeout(cfg.Timeout),
		// Retries belong to the provider manager.
		option.WithMaxRetries(0),
	}
	if cfg.Provider == ProviderAzure {
		opts = append(opts,
			azure.WithEndpoint(cfg.BaseURL, cfg.APIVersion),
			azure.WithAPIKey(cfg.APIKey),
		)
	} else {
		opts = append(opts, option.WithAPIKey(cfg.APIKey))
		if cfg.BaseURL != "" {
			opts = append(opts, option.WithBaseURL(withTrailingSlash(cfg.BaseURL)))
		}
	}

	oc := openai.NewClient(opts...)
	return &client{
		provider: cfg.Provider,
		model:    cfg.Model,
		chat:     &oc.Chat.Completions,
	}
}

func (c *client) Provider() string { return c.provider }

func (c *client) Model() string { return c.model }

// Complete sends the system prompt followed by the non-empty history turns.
func (c *client) Complete(ctx context.Context, req *Request) (*Response, error) {
	params := openai.ChatCompletionNewParams{
		Model:    openai.ChatModel(c.model),
		Messages: toParams(req),
	}
	if req.Temperature > 0 {
		params.Temperature = openai.Float(req.Temperature)
	}
	if req.MaxTokens > 0 {
		params.MaxTokens = openai.Int(int64(req.MaxTokens))
	}

	resp, err := c.chat.New(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("openaichat: %s completion: %w", c.provider, err)
	}
	if resp == nil || len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return nil, ErrNoChoices
	}

	return &Response{
		Content: resp.Choices[0].Message.Content,
		Usage: Usage{
			InputTokens:  int(resp.Usage.PromptTokens),
			OutputTokens: int(resp.Usage.CompletionTokens),
			TotalTokens:  int(resp.Usage.TotalTokens),
		},
	}, nil
}

func toParams(req *Request) []openai.ChatCompletionMessageParamUnion {
	out := make([]openai.ChatCompletionMessageParamUnion, 0, len(req.Messages)+1)
	if strings.TrimSpace(req.System) != "" {
		out = append(out, openai.SystemMessage(req.System))
	}
	for _, m := range req.Messages {
		if strings.TrimSpace(m.Content) == "" {
			continue
		}
		if m.Role == RoleAssistant {
			out = append(out, openai.AssistantMessage(m.Content))
		} else {
			out = append(out, openai.UserMessage(m.Content))
		}
	}
	return out
}

// NormalizeAzureEndpoint accepts a resource base URL, a deployment URL or a
// full chat completions URL and returns the resource base URL. The deployment
// name is returned when the URL names one.
func NormalizeAzureEndpoint(raw string) (base string, deployment string, err error) {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil || u.Scheme == "" || u.Host == "" {
		return "", "", fmt.Errorf("openaichat: invalid azure endpoint %q", raw)
	}

	const marker = "/openai/deployments/"
	if i := strings.Index(u.Path, marker); i >= 0 {
		rest := u.Path[i+len(marker):]
		deployment, _, _ = strings.Cut(rest, "/")
	}

	return u.Scheme + "://" + u.Host, deployment, nil
}

func withTrailingSlash(s string) string {
	if strings.HasSuffix(s, "/") {
		return s
	}
	return s + "/"
}
