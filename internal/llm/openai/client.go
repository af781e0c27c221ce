package openai

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"github.com/joseph-ayodele/resume-optimizer/internal/common"
	"github.com/joseph-ayodele/resume-optimizer/internal/llm"
)

var (
	ErrNotConfigured = errors.New("api key not configured")
	ErrNoChoices     = errors.New("no choices in completion response")
)

// Client implements llm.Provider on top of the chat/completions API.
type Client struct {
	cfg    Config
	api    *openai.Client
	logger *slog.Logger
}

var _ llm.Provider = (*Client)(nil)

func NewClient(cfg Config, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	cfg.APIKey = common.NormalizeAPIKey(cfg.APIKey)
	if cfg.Name == "" {
		cfg.Name = "openai"
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://api.openai.com/v1"
	}
	if cfg.Model == "" {
		cfg.Model = "gpt-3.5-turbo"
	}
	if cfg.VisionModel == "" {
		cfg.VisionModel = cfg.Model
	}
	if cfg.MaxTokens <= 0 {
		cfg.MaxTokens = 2000
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 45 * time.Second
	}

	clientConfig := openai.DefaultConfig(cfg.APIKey)
	clientConfig.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	clientConfig.HTTPClient = llm.NewLoggingDoer(&http.Client{Timeout: cfg.Timeout}, cfg.Name, logger)

	return &Client{
		cfg:    cfg,
		api:    openai.NewClientWithConfig(clientConfig),
		logger: logger,
	}
}

func (c *Client) Name() string { return c.cfg.Name }

func (c *Client) Configured() bool {
	return c.cfg.APIKey != "" || c.cfg.DemoWhenUnconfigured
}

// Demo reports whether the client answers with canned output.
func (c *Client) Demo() bool {
	return c.cfg.APIKey == "" && c.cfg.DemoWhenUnconfigured
}

// Complete sends a single chat completion. Non-2xx responses, transport
// errors, and empty choice lists are all returned as errors; there is no retry.
func (c *Client) Complete(ctx context.Context, req llm.CompletionRequest) (string, error) {
	_, rid := common.EnsureRequestID(ctx)

	if c.Demo() {
		c.logger.Warn("llm.complete.demo_mode", "req_id", rid, "provider", c.cfg.Name, "task", req.Task)
		return demoCompletion(req)
	}
	if c.cfg.APIKey == "" {
		return "", ErrNotConfigured
	}

	body := c.buildRequest(req)
	c.logger.Debug("llm.complete.start",
		"req_id", rid,
		"provider", c.cfg.Name,
		"model", body.Model,
		"task", req.Task,
		"prompt_len", len(req.Prompt),
		"has_image", req.Image != nil,
	)

	resp, err := c.api.CreateChatCompletion(ctx, body)
	if err != nil {
		return "", fmt.Errorf("%s chat completion: %w", c.cfg.Name, err)
	}
	if len(resp.Choices) == 0 {
		return "", ErrNoChoices
	}
	return resp.Choices[0].Message.Content, nil
}

func (c *Client) buildRequest(req llm.CompletionRequest) openai.ChatCompletionRequest {
	maxTokens := c.cfg.MaxTokens
	if req.MaxTokens > 0 {
		maxTokens = req.MaxTokens
	}
	temperature := c.cfg.Temperature
	if req.Temperature != nil {
		temperature = *req.Temperature
	}

	msg := openai.ChatCompletionMessage{Role: openai.ChatMessageRoleUser}
	model := c.cfg.Model
	if req.Image != nil {
		model = c.cfg.VisionModel
		msg.MultiContent = []openai.ChatMessagePart{
			{Type: openai.ChatMessagePartTypeText, Text: req.Prompt},
			{
				Type: openai.ChatMessagePartTypeImageURL,
				ImageURL: &openai.ChatMessageImageURL{
					URL:    llm.DataURL(*req.Image),
					Detail: openai.ImageURLDetailAuto,
				},
			},
		}
	} else {
		msg.Content = req.Prompt
	}

	return openai.ChatCompletionRequest{
		Model:       model,
		Messages:    []openai.ChatCompletionMessage{msg},
		Temperature: temperature,
		MaxTokens:   maxTokens,
	}
}
