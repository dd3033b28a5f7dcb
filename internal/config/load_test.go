package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupEnv sets environment variables for the duration of the test.
// An empty value unsets the variable for Load's purposes.
func setupEnv(t *testing.T, envVars map[string]string) {
	t.Helper()
	for name, value := range envVars {
		t.Setenv(name, value)
	}
}

// TestLoadDefaults verifies the defaults applied when only the required
// provider key is present.
func TestLoadDefaults(t *testing.T) {
	setupEnv(t, map[string]string{
		"FLASHCARDS_LLM_OPENAI_API_KEY": "test-api-key",
		"FLASHCARDS_SERVER_PORT":        "",
		"FLASHCARDS_SERVER_LOG_LEVEL":   "",
	})

	cfg, err := Load()
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, 8000, cfg.Server.Port)
	assert.Equal(t, "info", cfg.Server.LogLevel)
	assert.Equal(t, []string{"*"}, cfg.Server.CORSAllowedOrigins)
	assert.Equal(t, ProviderOpenAI, cfg.LLM.Provider)
	assert.Equal(t, DefaultOpenAIModel, cfg.LLM.ModelName)
	assert.InDelta(t, 0.7, cfg.LLM.Temperature, 1e-9)
	assert.Equal(t, 3000, cfg.Web.Port)
	assert.Equal(t, "http://localhost:8000", cfg.Web.APIBaseURL)
	assert.Equal(t, 6*time.Second, cfg.Web.NoticeTimeout())
	assert.Equal(t, time.Duration(0), cfg.Web.ClientTimeout())
}

// TestLoadFromEnv verifies that environment variables override defaults.
func TestLoadFromEnv(t *testing.T) {
	setupEnv(t, map[string]string{
		"FLASHCARDS_SERVER_PORT":                 "9090",
		"FLASHCARDS_SERVER_LOG_LEVEL":            "debug",
		"FLASHCARDS_SERVER_CORS_ALLOWED_ORIGINS": "http://localhost:3000,https://cards.example.com",
		"FLASHCARDS_LLM_PROVIDER":                "Gemini",
		"FLASHCARDS_LLM_GEMINI_API_KEY":          "gemini-key",
		"FLASHCARDS_WEB_NOTICE_TIMEOUT_SECONDS":  "2",
		"FLASHCARDS_WEB_API_BASE_URL":            "http://api.internal:8000",
	})

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Server.LogLevel)
	assert.Equal(t, []string{"http://localhost:3000", "https://cards.example.com"}, cfg.Server.CORSAllowedOrigins)
	assert.Equal(t, ProviderGemini, cfg.LLM.Provider)
	assert.Equal(t, DefaultGeminiModel, cfg.LLM.ModelName)
	assert.Equal(t, "gemini-key", cfg.LLM.GeminiAPIKey)
	assert.Equal(t, 2*time.Second, cfg.Web.NoticeTimeout())
	assert.Equal(t, "http://api.internal:8000", cfg.Web.APIBaseURL)
}

func TestLoadValidation(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{
			name: "missing key for selected provider",
			env: map[string]string{
				"FLASHCARDS_LLM_PROVIDER":       "gemini",
				"FLASHCARDS_LLM_GEMINI_API_KEY": "",
				"FLASHCARDS_LLM_OPENAI_API_KEY": "present-but-unused",
			},
		},
		{
			name: "unknown provider",
			env: map[string]string{
				"FLASHCARDS_LLM_PROVIDER":       "llama",
				"FLASHCARDS_LLM_OPENAI_API_KEY": "k",
			},
		},
		{
			name: "invalid log level",
			env: map[string]string{
				"FLASHCARDS_SERVER_LOG_LEVEL":   "verbose",
				"FLASHCARDS_LLM_OPENAI_API_KEY": "k",
			},
		},
		{
			name: "port out of range",
			env: map[string]string{
				"FLASHCARDS_SERVER_PORT":        "70000",
				"FLASHCARDS_LLM_OPENAI_API_KEY": "k",
			},
		},
		{
			name: "non-positive notice timeout",
			env: map[string]string{
				"FLASHCARDS_WEB_NOTICE_TIMEOUT_SECONDS": "0",
				"FLASHCARDS_LLM_OPENAI_API_KEY":         "k",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setupEnv(t, tt.env)

			cfg, err := Load()
			assert.Error(t, err)
			assert.Nil(t, cfg)
		})
	}
}

func TestLoadWeb_NoProviderKeyNeeded(t *testing.T) {
	setupEnv(t, map[string]string{
		"FLASHCARDS_LLM_OPENAI_API_KEY":         "",
		"FLASHCARDS_LLM_GEMINI_API_KEY":         "",
		"FLASHCARDS_WEB_PORT":                   "3100",
		"FLASHCARDS_WEB_CLIENT_TIMEOUT_SECONDS": "30",
	})

	_, err := Load()
	require.Error(t, err)

	cfg, err := LoadWeb()
	require.NoError(t, err)
	assert.Equal(t, 3100, cfg.Web.Port)
	assert.Equal(t, 30*time.Second, cfg.Web.ClientTimeout())
	assert.Equal(t, 6*time.Second, cfg.Web.NoticeTimeout())
}

func TestLoadWeb_ValidatesWebSection(t *testing.T) {
	setupEnv(t, map[string]string{
		"FLASHCARDS_WEB_API_BASE_URL": "not a url",
	})

	cfg, err := LoadWeb()
	assert.Error(t, err)
	assert.Nil(t, cfg)
}
