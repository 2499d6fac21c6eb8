package openaichat

import "time"

const (
	ProviderOpenAI   = "openai"
	ProviderAzure    = "azure"
	ProviderQwen     = "qwen"
	ProviderDeepSeek = "deepseek"

	// DefaultAzureAPIVersion is sent as api-version on Azure deployments.
	DefaultAzureAPIVersion = "2024-02-15-preview"

	DefaultQwenBaseURL     = "https://dashscope-intl.aliyuncs.com/compatible-mode/v1"
	DefaultDeepSeekBaseURL = "https://api.deepseek.com/v1"

	DefaultTimeout = 30 * time.Second

	RoleUser      = "user"
	RoleAssistant = "assistant"
)
