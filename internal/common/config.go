package common

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/joseph-ayodele/resume-optimizer/constants"
)

// Config holds all application configuration
type Config struct {
	Server    ServerConfig
	Primary   ProviderConfig
	Secondary ProviderConfig
	Extract   ExtractConfig
	LogLevel  slog.Level
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	HTTPAddr       string
	GRPCAddr       string // empty disables the gRPC health endpoint
	MaxUploadBytes int64
	ReadTimeout    time.Duration
}

// ProviderConfig describes one OpenAI-compatible completion backend.
type ProviderConfig struct {
	Name        string
	APIKey      string
	BaseURL     string
	Model       string
	VisionModel string
	Temperature float32
	MaxTokens   int
	Timeout     time.Duration
}

// ExtractConfig holds document-extraction configuration
type ExtractConfig struct {
	Pdftotext         string
	MaxImageBytes     int
	AdvisoryScanBytes int

	// upload worker pool
	Workers    int
	QueueSize  int
	JobTimeout time.Duration
}

// LoadConfig loads configuration from environment variables. A .env file in
// the working directory (or the given files) is applied first when present;
// variables already set in the environment win.
func LoadConfig(envFiles ...string) *Config {
	if err := godotenv.Load(envFiles...); err != nil {
		slog.Debug("no .env file loaded, using process environment", "error", err)
	}

	temperature := getEnvAsFloat32("LLM_TEMPERATURE", 0.7)
	maxTokens := getEnvAsInt("LLM_MAX_TOKENS", 2000)
	timeout := getEnvAsDuration("LLM_TIMEOUT", 45*time.Second)

	return &Config{
		Server: ServerConfig{
			HTTPAddr:       ":" + getEnv("PORT", "3000"),
			GRPCAddr:       getEnv("GRPC_ADDR", ""),
			MaxUploadBytes: int64(getEnvAsInt("MAX_UPLOAD_MB", 10)) << 20,
			ReadTimeout:    getEnvAsDuration("HTTP_READ_TIMEOUT", 30*time.Second),
		},
		Primary: ProviderConfig{
			Name:        "deepseek",
			APIKey:      NormalizeAPIKey(os.Getenv("DEEPSEEK_API_KEY")),
			BaseURL:     getEnv("DEEPSEEK_BASE_URL", "https://api.deepseek.com/v1"),
			Model:       getEnv("DEEPSEEK_MODEL", "deepseek-chat"),
			VisionModel: getEnv("DEEPSEEK_VISION_MODEL", "deepseek-vision"),
			Temperature: temperature,
			MaxTokens:   maxTokens,
			Timeout:     timeout,
		},
		Secondary: ProviderConfig{
			Name:        "openai",
			APIKey:      NormalizeAPIKey(os.Getenv("OPENAI_API_KEY")),
			BaseURL:     getEnv("OPENAI_BASE_URL", "https://api.openai.com/v1"),
			Model:       getEnv("OPENAI_MODEL", "gpt-3.5-turbo"),
			VisionModel: getEnv("OPENAI_VISION_MODEL", "gpt-4o-mini"),
			Temperature: temperature,
			MaxTokens:   maxTokens,
			Timeout:     timeout,
		},
		Extract: ExtractConfig{
			Pdftotext:         getEnv("PDFTOTEXT_BIN", "pdftotext"),
			MaxImageBytes:     getEnvAsInt("MAX_IMAGE_KB", constants.MaxImageBytesDefault/1024) * 1024,
			AdvisoryScanBytes: getEnvAsInt("ADVISORY_SCAN_KB", constants.AdvisoryScanBytesDefault/1024) * 1024,
			Workers:           getEnvAsInt("EXTRACT_WORKERS", 4),
			QueueSize:         getEnvAsInt("EXTRACT_QUEUE_SIZE", 64),
			JobTimeout:        getEnvAsDuration("EXTRACT_TIMEOUT", 2*time.Minute),
		},
		LogLevel: getEnvAsLevel("LOG_LEVEL", slog.LevelInfo),
	}
}

// NormalizeAPIKey trims surrounding whitespace and strips quote characters,
// which commonly sneak in when keys are pasted into .env files.
func NormalizeAPIKey(key string) string {
	key = strings.TrimSpace(key)
	key = strings.NewReplacer(`"`, "", `'`, "").Replace(key)
	return strings.TrimSpace(key)
}

// Helper functions for environment variable parsing
func getEnv(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(strings.TrimSpace(value)); err == nil && intVal > 0 {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsFloat32(key string, defaultValue float32) float32 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(strings.TrimSpace(value), 32); err == nil {
			return float32(floatVal)
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(strings.TrimSpace(value)); err == nil {
			return duration
		}
	}
	return defaultValue
}

func getEnvAsLevel(key string, defaultValue slog.Level) slog.Level {
	if value := os.Getenv(key); value != "" {
		var lvl slog.Level
		if err := lvl.UnmarshalText([]byte(strings.TrimSpace(value))); err == nil {
			return lvl
		}
	}
	return defaultValue
}

// Validate validates the loaded configuration
func (c *Config) Validate() error {
	if c.Primary.APIKey == "" {
		return NewConfigurationError(constants.MsgConfiguration, ErrMissingPrimaryKey)
	}
	if c.Server.HTTPAddr == "" || c.Server.HTTPAddr == ":" {
		return NewConfigurationError(constants.MsgConfiguration, ErrMissingHTTPAddr)
	}
	return nil
}
