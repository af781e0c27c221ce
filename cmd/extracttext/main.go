package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/joseph-ayodele/resume-optimizer/constants"
	"github.com/joseph-ayodele/resume-optimizer/internal/common"
	"github.com/joseph-ayodele/resume-optimizer/internal/extract"
	"github.com/joseph-ayodele/resume-optimizer/internal/llm"
	"github.com/joseph-ayodele/resume-optimizer/internal/llm/openai"
)

func main() {
	mimeFlag := flag.String("mime", "", "declared MIME type (default: from file extension)")
	timeout := flag.Duration("timeout", 2*time.Minute, "overall timeout")
	flag.Parse()

	cfg := common.LoadConfig()
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel}))
	slog.SetDefault(logger)

	if flag.NArg() != 1 {
		logger.Error("usage", "cmd", "extracttext [-mime type] <file>")
		os.Exit(2)
	}
	path := flag.Arg(0)
	data, err := os.ReadFile(path)
	if err != nil {
		logger.Error("read file", "path", path, "error", err)
		os.Exit(1)
	}
	mimeType := *mimeFlag
	if mimeType == "" {
		mimeType = constants.MIMEFromExt(filepath.Ext(path))
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	gateway := llm.NewGateway(
		openai.NewClient(openai.ConfigFrom(cfg.Primary, false), logger),
		openai.NewClient(openai.ConfigFrom(cfg.Secondary, true), logger),
		logger,
	)
	o := extract.NewOrchestrator(extract.DefaultPlans(cfg.Extract, gateway, nil, logger), logger)

	res, err := o.Extract(ctx, extract.Document{Data: data, MIMEType: mimeType, Filename: filepath.Base(path)})
	for _, a := range res.Attempts {
		logger.Info("stage", "method", a.Method, "runes", a.Runes, "error", a.Error, "duration_ms", a.Duration.Milliseconds())
	}
	if err != nil {
		logger.Error("text extraction failed", "error", err, "duration_ms", res.Duration.Milliseconds())
		fmt.Fprintln(os.Stderr, common.PublicMessage(err))
		os.Exit(1)
	}

	logger.Info("text extraction OK",
		"method", res.Method,
		"runes", len([]rune(res.Text)),
		"duration_ms", res.Duration.Milliseconds(),
	)
	fmt.Println(res.Text)
}
