package llm

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/joseph-ayodele/resume-optimizer/constants"
	"github.com/joseph-ayodele/resume-optimizer/internal/common"
)

var (
	ErrEmptyContent = errors.New("empty completion content")
	ErrNoVersions   = errors.New("completion contained no versions")
)

// Gateway sends completions to a primary provider and fails over to a
// secondary one. The fallback is the only retry: each provider is called at
// most once per request.
type Gateway struct {
	primary   Provider
	secondary Provider
	logger    *slog.Logger
}

func NewGateway(primary, secondary Provider, logger *slog.Logger) *Gateway {
	if logger == nil {
		logger = slog.Default()
	}
	return &Gateway{primary: primary, secondary: secondary, logger: logger}
}

// Complete runs a text task. See Do.
func (g *Gateway) Complete(ctx context.Context, task Task, prompt string, expectVersions bool) (CompletionResult, error) {
	return g.Do(ctx, CompletionRequest{Task: task, Prompt: prompt}, expectVersions)
}

// Do issues req to the primary provider and, on any failure, once to the
// secondary. A missing primary credential is a ConfigurationError and is
// never failed over.
func (g *Gateway) Do(ctx context.Context, req CompletionRequest, expectVersions bool) (CompletionResult, error) {
	ctx, rid := common.EnsureRequestID(ctx)
	start := time.Now()

	if g.primary == nil || !g.primary.Configured() {
		g.logger.Error("llm.gateway.primary_not_configured", "req_id", rid, "task", req.Task)
		return CompletionResult{}, common.NewConfigurationError(constants.MsgConfiguration, common.ErrMissingPrimaryKey)
	}

	res, err := g.attempt(ctx, g.primary, req, expectVersions)
	if err == nil {
		g.logger.Info("llm.gateway.ok",
			"req_id", rid, "task", req.Task, "provider", res.Provider,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return res, nil
	}
	g.logger.Warn("llm.gateway.primary_failed",
		"req_id", rid, "task", req.Task, "provider", g.primary.Name(), "error", err,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)

	if g.secondary == nil {
		return CompletionResult{}, common.NewProviderError(constants.MsgProviderUnavailable, err)
	}

	res, err = g.attempt(ctx, g.secondary, req, expectVersions)
	if err != nil {
		g.logger.Error("llm.gateway.secondary_failed",
			"req_id", rid, "task", req.Task, "provider", g.secondary.Name(), "error", err,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return CompletionResult{}, common.NewProviderError(constants.MsgProviderUnavailable, err)
	}
	res.Fallback = true
	g.logger.Info("llm.gateway.fallback_ok",
		"req_id", rid, "task", req.Task, "provider", res.Provider,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return res, nil
}

func (g *Gateway) attempt(ctx context.Context, p Provider, req CompletionRequest, expectVersions bool) (CompletionResult, error) {
	raw, err := p.Complete(ctx, req)
	if err != nil {
		return CompletionResult{}, fmt.Errorf("%s: %w", p.Name(), err)
	}
	if strings.TrimSpace(raw) == "" {
		return CompletionResult{}, fmt.Errorf("%s: %w", p.Name(), ErrEmptyContent)
	}

	res := CompletionResult{Raw: raw, Provider: p.Name()}
	if expectVersions {
		res.Versions = SplitVersions(raw)
		if len(res.Versions) == 0 {
			return CompletionResult{}, fmt.Errorf("%s: %w", p.Name(), ErrNoVersions)
		}
	}
	return res, nil
}
