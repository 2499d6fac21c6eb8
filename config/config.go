package config

import (
	"fmt"
	"os"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig
	RateLimit  RateLimitConfig
	Metrics    MetricsConfig

	// LLM Provider Abstraction
	LLM LLMConfig

	// Conversation state
	Conversation ConversationConfig
	Redis        RedisConfig

	// HR data sources and notifications
	Holiday HolidayConfig
	Teams   TeamsConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port            int
	Mode            string
	ShutdownTimeout time.Duration
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type RateLimitConfig struct {
	Enabled           bool
	RequestsPerMinute int
	Burst             int
	Capacity          int
}

type MetricsConfig struct {
	Enabled bool
	Path    string
}

// LLMConfig holds configuration for the LLM provider abstraction layer
type LLMConfig struct {
	Providers       []ProviderConfig `yaml:"providers"`
	FallbackEnabled bool             `yaml:"fallback_enabled"`
	RetryAttempts   int              `yaml:"retry_attempts"`
	RetryDelay      string           `yaml:"retry_delay"`
	MaxTotalTimeout string           `yaml:"max_total_timeout"` // Global timeout for entire fallback chain
	Temperature     float64          `yaml:"temperature"`
	MaxTokens       int              `yaml:"max_tokens"`
}

// ProviderConfig holds configuration for a single LLM provider
type ProviderConfig struct {
	Name       string `yaml:"name"`
	Enabled    bool   `yaml:"enabled"`
	Priority   int    `yaml:"priority"`
	APIKey     string `yaml:"api_key"`
	BaseURL    string `yaml:"base_url,omitempty"`
	APIVersion string `yaml:"api_version,omitempty"`
	Model      string `yaml:"model"`
	Timeout    string `yaml:"timeout"`
}

type ConversationConfig struct {
	// Backend is "memory" or "redis".
	Backend       string
	TTL           time.Duration
	Capacity      int
	DefaultUserID string
}

type RedisConfig struct {
	Addr      string
	Password  string
	DB        int
	KeyPrefix string
}

type HolidayConfig struct {
	// Year of the holiday calendar; 0 means the current year.
	Year           int
	Timezone       string
	GoogleCalendar GoogleCalendarConfig
}

type GoogleCalendarConfig struct {
	CredentialsPath string
	CalendarID      string
}

type TeamsConfig struct {
	WebhookURL string
	DetailsURL string
}

// Load loads configuration using Viper.
// A .env file in the working directory is applied to the process environment first.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	// Missing .env is fine; real deployments set the environment directly.
	_ = godotenv.Load()

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.HTTPServer.ShutdownTimeout = viper.GetDuration("http_server.shutdown_timeout")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	cfg.RateLimit.Enabled = viper.GetBool("rate_limit.enabled")
	cfg.RateLimit.RequestsPerMinute = viper.GetInt("rate_limit.requests_per_minute")
	cfg.RateLimit.Burst = viper.GetInt("rate_limit.burst")
	cfg.RateLimit.Capacity = viper.GetInt("rate_limit.capacity")

	cfg.Metrics.Enabled = viper.GetBool("metrics.enabled")
	cfg.Metrics.Path = viper.GetString("metrics.path")

	// Conversation state
	cfg.Conversation.Backend = strings.ToLower(viper.GetString("conversation.backend"))
	cfg.Conversation.TTL = viper.GetDuration("conversation.ttl")
	cfg.Conversation.Capacity = viper.GetInt("conversation.capacity")
	cfg.Conversation.DefaultUserID = viper.GetString("conversation.default_user_id")

	cfg.Redis.Addr = viper.GetString("redis.addr")
	cfg.Redis.Password = expandEnvVar(viper.GetString("redis.password"))
	cfg.Redis.DB = viper.GetInt("redis.db")
	cfg.Redis.KeyPrefix = viper.GetString("redis.key_prefix")
	if redisURL := viper.GetString("redis_addr"); redisURL != "" {
		cfg.Redis.Addr = redisURL
	}

	// HR data sources
	cfg.Holiday.Year = viper.GetInt("holiday.year")
	cfg.Holiday.Timezone = viper.GetString("holiday.timezone")
	cfg.Holiday.GoogleCalendar.CredentialsPath = viper.GetString("holiday.google_calendar.credentials_path")
	cfg.Holiday.GoogleCalendar.CalendarID = viper.GetString("holiday.google_calendar.calendar_id")
	if googleCreds := viper.GetString("google_calendar_credentials"); googleCreds != "" {
		cfg.Holiday.GoogleCalendar.CredentialsPath = googleCreds
	}

	cfg.Teams.WebhookURL = expandEnvVar(viper.GetString("teams.webhook_url"))
	cfg.Teams.DetailsURL = viper.GetString("teams.details_url")
	if webhook := viper.GetString("teams_webhook_url"); webhook != "" {
		cfg.Teams.WebhookURL = webhook
	}

	// LLM Provider Abstraction
	cfg.LLM.FallbackEnabled = viper.GetBool("llm.fallback_enabled")
	cfg.LLM.RetryAttempts = viper.GetInt("llm.retry_attempts")
	cfg.LLM.RetryDelay = viper.GetString("llm.retry_delay")
	cfg.LLM.MaxTotalTimeout = viper.GetString("llm.max_total_timeout")
	cfg.LLM.Temperature = viper.GetFloat64("llm.temperature")
	cfg.LLM.MaxTokens = viper.GetInt("llm.max_tokens")

	// Load provider configurations
	if viper.IsSet("llm.providers") {
		providersRaw := viper.Get("llm.providers")
		if providersList, ok := providersRaw.([]interface{}); ok {
			for _, p := range providersList {
				if providerMap, ok := p.(map[string]interface{}); ok {
					provider := ProviderConfig{
						Name:       getStringFromMap(providerMap, "name"),
						Enabled:    getBoolFromMap(providerMap, "enabled"),
						Priority:   getIntFromMap(providerMap, "priority"),
						APIKey:     expandEnvVar(getStringFromMap(providerMap, "api_key")),
						BaseURL:    expandEnvVar(getStringFromMap(providerMap, "base_url")),
						APIVersion: getStringFromMap(providerMap, "api_version"),
						Model:      expandEnvVar(getStringFromMap(providerMap, "model")),
						Timeout:    getStringFromMap(providerMap, "timeout"),
					}
					cfg.LLM.Providers = append(cfg.LLM.Providers, provider)
				}
			}
		}
	}

	// The service runs without AI; only a present but broken provider list is an error.
	if len(cfg.LLM.Providers) > 0 {
		if err := validateLLMConfig(&cfg.LLM); err != nil {
			return nil, fmt.Errorf("invalid llm config: %w", err)
		}
	}
	applyAzureEnv(&cfg.LLM)

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("http_server.shutdown_timeout", "10s")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "development")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	viper.SetDefault("rate_limit.enabled", true)
	viper.SetDefault("rate_limit.requests_per_minute", 60)
	viper.SetDefault("rate_limit.burst", 10)
	viper.SetDefault("rate_limit.capacity", 10000)

	viper.SetDefault("metrics.enabled", true)
	viper.SetDefault("metrics.path", "/metrics")

	viper.SetDefault("conversation.backend", "memory")
	viper.SetDefault("conversation.ttl", "30m")
	viper.SetDefault("conversation.capacity", 10000)
	viper.SetDefault("conversation.default_user_id", "user123")

	viper.SetDefault("redis.addr", "localhost:6379")
	viper.SetDefault("redis.key_prefix", "hr:")

	viper.SetDefault("holiday.year", 0)
	viper.SetDefault("holiday.timezone", "Asia/Kolkata")

	// LLM defaults
	viper.SetDefault("llm.fallback_enabled", true)
	viper.SetDefault("llm.retry_attempts", 2)
	viper.SetDefault("llm.retry_delay", "1s")
	viper.SetDefault("llm.max_total_timeout", "30s")
	viper.SetDefault("llm.temperature", 0.7)
	viper.SetDefault("llm.max_tokens", 1000)
}

// applyAzureEnv adds an azure provider from AZURE_AI_ENDPOINT, AZURE_AI_MODEL_NAME
// and AZURE_AI_API_KEY when all three are set and no azure provider is configured.
// It takes precedence over the configured providers.
func applyAzureEnv(cfg *LLMConfig) {
	endpoint := os.Getenv("AZURE_AI_ENDPOINT")
	model := os.Getenv("AZURE_AI_MODEL_NAME")
	key := os.Getenv("AZURE_AI_API_KEY")
	if endpoint == "" || model == "" || key == "" {
		return
	}

	for _, p := range cfg.Providers {
		if p.Name == "azure" {
			return
		}
	}

	cfg.Providers = append(cfg.Providers, ProviderConfig{
		Name:     "azure",
		Enabled:  true,
		Priority: 0,
		APIKey:   key,
		BaseURL:  endpoint,
		Model:    model,
		Timeout:  "30s",
	})
}

func validate(cfg *Config) error {
	switch cfg.Conversation.Backend {
	case "memory", "redis":
	default:
		return fmt.Errorf("conversation.backend must be memory or redis, got %q", cfg.Conversation.Backend)
	}
	if cfg.Conversation.TTL <= 0 {
		return fmt.Errorf("conversation.ttl must be positive")
	}
	if cfg.Conversation.DefaultUserID == "" {
		return fmt.Errorf("conversation.default_user_id is required")
	}
	if cfg.RateLimit.Enabled && cfg.RateLimit.RequestsPerMinute <= 0 {
		return fmt.Errorf("rate_limit.requests_per_minute must be positive")
	}
	if _, err := time.LoadLocation(cfg.Holiday.Timezone); err != nil {
		return fmt.Errorf("holiday.timezone: %w", err)
	}
	return nil
}

// expandEnvVar expands environment variables in the format ${VAR_NAME}
func expandEnvVar(value string) string {
	if value == "" {
		return value
	}

	// Check if value is in format ${VAR_NAME}
	if strings.HasPrefix(value, "${") && strings.HasSuffix(value, "}") {
		envVar := value[2 : len(value)-1]
		// Try viper first (handles both env and config)
		if envValue := viper.GetString(envVar); envValue != "" {
			return envValue
		}
		// Try lowercase version
		if envValue := viper.GetString(strings.ToLower(envVar)); envValue != "" {
			return envValue
		}
		// Try direct os.Getenv as last resort
		if envValue := os.Getenv(envVar); envValue != "" {
			return envValue
		}
		return ""
	}

	return value
}

// validateLLMConfig validates the LLM configuration
func validateLLMConfig(cfg *LLMConfig) error {
	priorityMap := make(map[int]bool)

	for i, provider := range cfg.Providers {
		if provider.Name == "" {
			return fmt.Errorf("provider %d: name is required", i)
		}
		// Azure can take its deployment from the endpoint URL.
		if provider.Model == "" && provider.Name != "azure" {
			return fmt.Errorf("provider %s: model is required", provider.Name)
		}

		if provider.Enabled {
			if provider.Priority < 0 {
				return fmt.Errorf("provider %s: priority must not be negative", provider.Name)
			}

			if priorityMap[provider.Priority] {
				return fmt.Errorf("provider %s: duplicate priority %d", provider.Name, provider.Priority)
			}
			priorityMap[provider.Priority] = true
		}
	}

	return nil
}

// Helper functions to safely extract values from map[string]interface{}
func getStringFromMap(m map[string]interface{}, key string) string {
	if val, ok := m[key]; ok {
		if str, ok := val.(string); ok {
			return str
		}
	}
	return ""
}

func getBoolFromMap(m map[string]interface{}, key string) bool {
	if val, ok := m[key]; ok {
		if b, ok := val.(bool); ok {
			return b
		}
	}
	return false
}

func getIntFromMap(m map[string]interface{}, key string) int {
	if val, ok := m[key]; ok {
		if i, ok := val.(int); ok {
			return i
		}
		// Handle float64 from JSON unmarshaling
		if f, ok := val.(float64); ok {
			return int(f)
		}
	}
	return 0
}
