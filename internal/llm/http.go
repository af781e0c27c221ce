package llm

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/joseph-ayodele/resume-optimizer/internal/common"
)

// LoggingDoer wraps an *http.Client and logs every provider round trip.
// It does not assume any provider; it satisfies the HTTPDoer hook that
// OpenAI-compatible SDK clients accept.
type LoggingDoer struct {
	client   *http.Client
	provider string
	logger   *slog.Logger
}

func NewLoggingDoer(client *http.Client, provider string, logger *slog.Logger) *LoggingDoer {
	if logger == nil {
		logger = slog.Default()
	}
	if client == nil {
		client = &http.Client{Timeout: 45 * time.Second}
	}
	return &LoggingDoer{client: client, provider: provider, logger: logger}
}

func (d *LoggingDoer) Do(req *http.Request) (*http.Response, error) {
	_, reqID := common.EnsureRequestID(req.Context())
	start := time.Now()

	d.logger.Info("llm.http.request",
		"req_id", reqID,
		"provider", d.provider,
		"url", req.URL.Redacted(),
		"content_length", req.ContentLength,
	)

	resp, err := d.client.Do(req)
	if err != nil {
		d.logger.Error("llm.http.send_error",
			"req_id", reqID, "provider", d.provider, "error", err,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return nil, err
	}

	d.logger.Info("llm.http.response",
		"req_id", reqID,
		"provider", d.provider,
		"status", resp.StatusCode,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return resp, nil
}
