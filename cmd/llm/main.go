package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/joseph-ayodele/resume-optimizer/internal/common"
	"github.com/joseph-ayodele/resume-optimizer/internal/llm"
	"github.com/joseph-ayodele/resume-optimizer/internal/llm/openai"
	"github.com/joseph-ayodele/resume-optimizer/internal/resume"
)

func main() {
	task := flag.String("task", string(llm.TaskEvaluate), "bio-optimize | evaluate | optimize")
	jobTitle := flag.String("job-title", "", "job title for bio-optimize")
	times := flag.Int("times", 1, "repeat the call N times")
	flag.Parse()

	cfg := common.LoadConfig()
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel}))
	slog.SetDefault(logger)

	// input text from the argument or stdin
	var text string
	if flag.NArg() > 0 {
		text = strings.Join(flag.Args(), " ")
	} else {
		b, err := io.ReadAll(os.Stdin)
		if err != nil {
			logger.Error("read stdin", "error", err)
			os.Exit(2)
		}
		text = string(b)
	}

	gateway := llm.NewGateway(
		openai.NewClient(openai.ConfigFrom(cfg.Primary, false), logger),
		openai.NewClient(openai.ConfigFrom(cfg.Secondary, true), logger),
		logger,
	)
	svc := resume.NewService(gateway, nil, logger)

	for i := 1; i <= *times; i++ {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
		ctx, rid := common.EnsureRequestID(ctx)
		start := time.Now()
		logger.Info("llm.run.start", "iter", i, "task", *task, "req_id", rid)

		out, err := run(ctx, svc, llm.Task(*task), text, *jobTitle)
		cancel()
		if err != nil {
			logger.Error("llm.run.error", "iter", i, "error", err, "public", common.PublicMessage(err))
			os.Exit(1)
		}
		logger.Info("llm.run.ok", "iter", i, "elapsed_ms", time.Since(start).Milliseconds())
		fmt.Println(out)
	}
}

func run(ctx context.Context, svc *resume.Service, task llm.Task, text, jobTitle string) (string, error) {
	switch task {
	case llm.TaskBioOptimize:
		versions, err := svc.OptimizeBio(ctx, text, jobTitle)
		if err != nil {
			return "", err
		}
		var b strings.Builder
		for i, v := range versions {
			fmt.Fprintf(&b, "--- %d ---\n%s\n", i+1, v)
		}
		return b.String(), nil
	case llm.TaskEvaluate:
		return svc.EvaluateResume(ctx, text)
	case llm.TaskOptimize:
		return svc.OptimizeResume(ctx, text)
	default:
		return "", fmt.Errorf("unknown task %q", task)
	}
}
