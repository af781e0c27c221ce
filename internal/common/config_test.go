package common

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joseph-ayodele/resume-optimizer/constants"
)

func TestNormalizeAPIKey(t *testing.T) {
	tests := map[string]string{
		` "sk-test-123" `: "sk-test-123",
		`'sk-abc'`:        "sk-abc",
		"\tsk-x\n":        "sk-x",
		`sk-"mid"-q`:      "sk-mid-q",
		`  ""  `:          "",
		"":                "",
	}
	for in, want := range tests {
		assert.Equal(t, want, NormalizeAPIKey(in), in)
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("DEEPSEEK_API_KEY", ` "sk-test-123" `)
	t.Setenv("OPENAI_API_KEY", "")
	t.Setenv("PORT", "")
	t.Setenv("LLM_TIMEOUT", "")
	t.Setenv("MAX_IMAGE_KB", "")

	cfg := LoadConfig("testdata/does-not-exist.env")
	assert.Equal(t, ":3000", cfg.Server.HTTPAddr)
	assert.Equal(t, int64(10<<20), cfg.Server.MaxUploadBytes)
	assert.Equal(t, "sk-test-123", cfg.Primary.APIKey)
	assert.Equal(t, "deepseek", cfg.Primary.Name)
	assert.Equal(t, "deepseek-chat", cfg.Primary.Model)
	assert.Equal(t, "openai", cfg.Secondary.Name)
	assert.Equal(t, "", cfg.Secondary.APIKey)
	assert.Equal(t, 45*time.Second, cfg.Primary.Timeout)
	assert.Equal(t, constants.MaxImageBytesDefault, cfg.Extract.MaxImageBytes)
	assert.Equal(t, 4, cfg.Extract.Workers)
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
	assert.NoError(t, cfg.Validate())
}

func TestLoadConfig_Overrides(t *testing.T) {
	t.Setenv("DEEPSEEK_API_KEY", "k")
	t.Setenv("PORT", "8081")
	t.Setenv("LLM_TEMPERATURE", "0.2")
	t.Setenv("LLM_TIMEOUT", "5s")
	t.Setenv("MAX_UPLOAD_MB", "2")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("EXTRACT_WORKERS", "not-a-number")

	cfg := LoadConfig("testdata/does-not-exist.env")
	assert.Equal(t, ":8081", cfg.Server.HTTPAddr)
	assert.InDelta(t, 0.2, cfg.Secondary.Temperature, 0.0001)
	assert.Equal(t, 5*time.Second, cfg.Secondary.Timeout)
	assert.Equal(t, int64(2<<20), cfg.Server.MaxUploadBytes)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
	assert.Equal(t, 4, cfg.Extract.Workers)
}

func TestConfigValidate_MissingPrimaryKey(t *testing.T) {
	t.Setenv("DEEPSEEK_API_KEY", ` '' `)
	cfg := LoadConfig("testdata/does-not-exist.env")

	err := cfg.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConfiguration)
	assert.ErrorIs(t, err, ErrMissingPrimaryKey)
}
