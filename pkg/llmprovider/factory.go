package llmprovider

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"hr-assistant/config"
	"hr-assistant/pkg/gemini"
	"hr-assistant/pkg/openaichat"
)

// InitializeProviders creates Provider instances from config.LLMConfig
// Returns providers sorted by priority (ascending) with disabled providers filtered out
// Skips providers that fail to initialize instead of failing the entire service
func InitializeProviders(cfg *config.LLMConfig) ([]Provider, error) {
	if cfg == nil {
		return nil, fmt.Errorf("LLM config is nil")
	}

	var enabledProviders []config.ProviderConfig
	for _, p := range cfg.Providers {
		if p.Enabled {
			enabledProviders = append(enabledProviders, p)
		}
	}

	if len(enabledProviders) == 0 {
		return nil, ErrNoProvidersConfigured
	}

	sort.SliceStable(enabledProviders, func(i, j int) bool {
		return enabledProviders[i].Priority < enabledProviders[j].Priority
	})

	var providers []Provider
	var initErrors []string

	for _, p := range enabledProviders {
		provider, err := createProvider(p)
		if err != nil {
			initErrors = append(initErrors, fmt.Sprintf("%s (priority %d): %v", p.Name, p.Priority, err))
			continue
		}
		providers = append(providers, provider)
	}

	if len(providers) == 0 {
		return nil, fmt.Errorf("no providers successfully initialized: %s", strings.Join(initErrors, "; "))
	}

	if len(initErrors) > 0 {
		return providers, &PartialInitError{Failed: initErrors}
	}

	return providers, nil
}

// createProvider creates a concrete provider instance based on the provider config
func createProvider(cfg config.ProviderConfig) (Provider, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("provider %s: API key is required", cfg.Name)
	}

	var timeout time.Duration
	if cfg.Timeout != "" {
		d, err := time.ParseDuration(cfg.Timeout)
		if err != nil {
			return nil, fmt.Errorf("provider %s: invalid timeout %q: %w", cfg.Name, cfg.Timeout, err)
		}
		timeout = d
	}

	switch cfg.Name {
	case "gemini":
		client, err := gemini.New(gemini.Config{
			APIKey:  cfg.APIKey,
			Model:   cfg.Model,
			APIURL:  cfg.BaseURL,
			Timeout: timeout,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create gemini client: %w", err)
		}
		return NewGeminiAdapter(client), nil

	case "azure", "openai", "qwen", "alibaba", "deepseek":
		name := cfg.Name
		if name == "alibaba" {
			name = openaichat.ProviderQwen
		}
		client, err := openaichat.New(openaichat.Config{
			Provider:   name,
			APIKey:     cfg.APIKey,
			Model:      cfg.Model,
			BaseURL:    cfg.BaseURL,
			APIVersion: cfg.APIVersion,
			Timeout:    timeout,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create %s client: %w", cfg.Name, err)
		}
		return NewChatAdapter(client), nil

	default:
		return nil, fmt.Errorf("unknown provider: %s", cfg.Name)
	}
}
