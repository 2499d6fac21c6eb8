package openaichat

import (
	"errors"
	"fmt"
	"net/http"
	"time"
)

// Config configures one OpenAI-compatible chat completion backend.
type Config struct {
	// Provider is one of the Provider* constants. Empty means openai.
	Provider   string
	APIKey     string
	Model      string
	BaseURL    string
	APIVersion string
	Timeout    time.Duration
	HTTPClient *http.Client
}

// Validate checks required fields and fills provider defaults.
func (c *Config) Validate() error {
	if c.Provider == "" {
		c.Provider = ProviderOpenAI
	}
	if c.APIKey == "" {
		return fmt.Errorf("openaichat: %s API key is required", c.Provider)
	}
	if c.Timeout <= 0 {
		c.Timeout = DefaultTimeout
	}

	switch c.Provider {
	case ProviderOpenAI:
	case ProviderQwen:
		if c.BaseURL == "" {
			c.BaseURL = DefaultQwenBaseURL
		}
	case ProviderDeepSeek:
		if c.BaseURL == "" {
			c.BaseURL = DefaultDeepSeekBaseURL
		}
	case ProviderAzure:
		if c.BaseURL == "" {
			return errors.New("openaichat: azure endpoint is required")
		}
		base, deployment, err := NormalizeAzureEndpoint(c.BaseURL)
		if err != nil {
			return err
		}
		c.BaseURL = base
		if c.Model == "" {
			c.Model = deployment
		}
		if c.APIVersion == "" {
			c.APIVersion = DefaultAzureAPIVersion
		}
	default:
		return fmt.Errorf("openaichat: unknown provider %q", c.Provider)
	}

	if c.Model == "" {
		return fmt.Errorf("openaichat: %s model is required", c.Provider)
	}
	return nil
}

// Message is one chat turn. Role is RoleUser or RoleAssistant.
type Message struct {
	Role    string
	Content string
}

// Request is a text-only chat completion request.
type Request struct {
	System      string
	Messages    []Message
	Temperature float64
	MaxTokens   int
}

// Response carries the first choice's content.
type Response struct {
	Content string
	Usage   Usage
}

type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
