package openai

import (
	"time"

	"github.com/joseph-ayodele/resume-optimizer/internal/common"
)

// Config for an OpenAI-compatible client (OpenAI itself, DeepSeek, ...).
type Config struct {
	Name        string        // provider label used in logs and results
	APIKey      string        // normalized again by NewClient
	BaseURL     string        // default https://api.openai.com/v1
	Model       string        // text model, e.g. "deepseek-chat"
	VisionModel string        // model used when a request carries an image
	Temperature float32       // 0..2
	MaxTokens   int           // default output bound
	Timeout     time.Duration // http client timeout

	// DemoWhenUnconfigured turns an empty APIKey into demo mode: canned
	// output, no network. Only meant for the secondary provider.
	DemoWhenUnconfigured bool
}

// ConfigFrom maps the application provider settings onto a client Config.
func ConfigFrom(pc common.ProviderConfig, demoWhenUnconfigured bool) Config {
	return Config{
		Name:                 pc.Name,
		APIKey:               pc.APIKey,
		BaseURL:              pc.BaseURL,
		Model:                pc.Model,
		VisionModel:          pc.VisionModel,
		Temperature:          pc.Temperature,
		MaxTokens:            pc.MaxTokens,
		Timeout:              pc.Timeout,
		DemoWhenUnconfigured: demoWhenUnconfigured,
	}
}
