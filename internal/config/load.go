package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable read by Load,
// e.g. FLASHCARDS_SERVER_PORT or FLASHCARDS_LLM_OPENAI_API_KEY.
const EnvPrefix = "FLASHCARDS"

// DotEnvFile is loaded into the process environment before anything else
// when it exists in the working directory.
const DotEnvFile = ".env"

// Load configuration from environment variables and optionally config files.
// Environment variables take precedence over values from config files.
// Returns a populated Config struct or an error if loading/validation fails.
func Load() (*Config, error) {
	return load(Validate)
}

// LoadWeb is Load for the UI binary. The UI never calls an LLM, so the
// llm section is not validated and no provider key is required.
func LoadWeb() (*Config, error) {
	return load(validateWeb)
}

func load(validate func(*Config) error) (*Config, error) {
	if err := godotenv.Load(DotEnvFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load %s: %w", DotEnvFile, err)
	}

	v := viper.New()
	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	cfg.LLM.Provider = strings.ToLower(strings.TrimSpace(cfg.LLM.Provider))
	if cfg.LLM.ModelName == "" {
		cfg.LLM.ModelName = defaultModel(cfg.LLM.Provider)
	}

	if err := validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks cfg against its struct tags.
func Validate(cfg *Config) error {
	if err := validator.New().Struct(cfg); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

func validateWeb(cfg *Config) error {
	if err := validator.New().StructExcept(cfg, "LLM"); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// setDefaults registers a default for every key. Viper only unmarshals
// environment overrides for keys it already knows about.
func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8000)
	v.SetDefault("server.log_level", "info")
	v.SetDefault("server.cors_allowed_origins", []string{"*"})

	v.SetDefault("llm.provider", ProviderOpenAI)
	v.SetDefault("llm.gemini_api_key", "")
	v.SetDefault("llm.openai_api_key", "")
	v.SetDefault("llm.openai_base_url", "")
	v.SetDefault("llm.model_name", "")
	v.SetDefault("llm.prompt_template_path", "")
	v.SetDefault("llm.temperature", 0.7)

	v.SetDefault("web.port", 3000)
	v.SetDefault("web.api_base_url", "http://localhost:8000")
	v.SetDefault("web.notice_timeout_seconds", 6)
	v.SetDefault("web.client_timeout_seconds", 0)
}

func defaultModel(provider string) string {
	switch provider {
	case ProviderGemini:
		return DefaultGeminiModel
	case ProviderOpenAI:
		return DefaultOpenAIModel
	default:
		return ""
	}
}
