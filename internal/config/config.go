package config

import "time"

// LLM provider identifiers accepted in LLMConfig.Provider.
const (
	ProviderGemini = "gemini"
	ProviderOpenAI = "openai"
)

// Default model names per provider, used when LLMConfig.ModelName is empty.
const (
	DefaultGeminiModel = "gemini-2.0-flash"
	DefaultOpenAIModel = "gpt-3.5-turbo"
)

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server ServerConfig `mapstructure:"server" validate:"required"`
	LLM    LLMConfig    `mapstructure:"llm"    validate:"required"`
	Web    WebConfig    `mapstructure:"web"    validate:"required"`
}

// ServerConfig contains the generation API server settings.
type ServerConfig struct {
	Port               int      `mapstructure:"port"                 validate:"required,gt=0,lt=65536"`
	LogLevel           string   `mapstructure:"log_level"            validate:"required,oneof=debug info warn error"`
	CORSAllowedOrigins []string `mapstructure:"cors_allowed_origins" validate:"required,min=1,dive,required"`
}

// LLMConfig contains all LLM integration related settings.
type LLMConfig struct {
	Provider           string  `mapstructure:"provider"             validate:"required,oneof=gemini openai"`
	GeminiAPIKey       string  `mapstructure:"gemini_api_key"       validate:"required_if=Provider gemini"`
	OpenAIAPIKey       string  `mapstructure:"openai_api_key"       validate:"required_if=Provider openai"`
	OpenAIBaseURL      string  `mapstructure:"openai_base_url"      validate:"omitempty,url"`
	ModelName          string  `mapstructure:"model_name"`
	PromptTemplatePath string  `mapstructure:"prompt_template_path"`
	Temperature        float64 `mapstructure:"temperature"          validate:"gte=0,lte=2"`
}

// WebConfig contains the settings of the browser-facing UI server.
type WebConfig struct {
	Port                 int    `mapstructure:"port"                   validate:"required,gt=0,lt=65536"`
	APIBaseURL           string `mapstructure:"api_base_url"           validate:"required,url"`
	NoticeTimeoutSeconds int    `mapstructure:"notice_timeout_seconds" validate:"gt=0"`
	// ClientTimeoutSeconds bounds the generation call. Zero means no timeout.
	ClientTimeoutSeconds int `mapstructure:"client_timeout_seconds" validate:"gte=0"`
}

// NoticeTimeout returns the auto-dismiss interval for user notices.
func (w WebConfig) NoticeTimeout() time.Duration {
	return time.Duration(w.NoticeTimeoutSeconds) * time.Second
}

// ClientTimeout returns the generation call timeout; zero means none.
func (w WebConfig) ClientTimeout() time.Duration {
	return time.Duration(w.ClientTimeoutSeconds) * time.Second
}
