package main

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/joseph-ayodele/resume-optimizer/internal/async"
	"github.com/joseph-ayodele/resume-optimizer/internal/common"
	"github.com/joseph-ayodele/resume-optimizer/internal/extract"
	"github.com/joseph-ayodele/resume-optimizer/internal/llm"
	"github.com/joseph-ayodele/resume-optimizer/internal/llm/openai"
	"github.com/joseph-ayodele/resume-optimizer/internal/resume"
	"github.com/joseph-ayodele/resume-optimizer/internal/server"
)

func main() {
	cfg := common.LoadConfig()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel}))
	slog.SetDefault(logger)

	// A missing primary key is reported per request as a configuration
	// error; the server still starts so /health and the UI keep working.
	if err := cfg.Validate(); err != nil {
		logger.Warn("config.invalid", "error", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	primary := openai.NewClient(openai.ConfigFrom(cfg.Primary, false), logger)
	secondary := openai.NewClient(openai.ConfigFrom(cfg.Secondary, true), logger)
	if secondary.Demo() {
		logger.Warn("llm.secondary.demo_mode", "provider", secondary.Name())
	}
	gateway := llm.NewGateway(primary, secondary, logger)

	orchestrator := extract.NewOrchestrator(extract.DefaultPlans(cfg.Extract, gateway, nil, logger), logger)
	pool := async.NewPool(orchestrator, logger,
		async.WithWorkers(cfg.Extract.Workers),
		async.WithQueueSize(cfg.Extract.QueueSize),
		async.WithProcessTimeout(cfg.Extract.JobTimeout),
	)

	svc := resume.NewService(gateway, pool, logger)
	handler := server.NewHandler(svc, cfg.Server.MaxUploadBytes, logger)

	httpServer := &http.Server{
		Addr:              cfg.Server.HTTPAddr,
		Handler:           server.NewRouter(handler),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       cfg.Server.ReadTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("http.listening", "addr", httpServer.Addr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	if addr := cfg.Server.GRPCAddr; addr != "" {
		if !strings.Contains(addr, ":") {
			addr = ":" + addr
		}
		lis, err := net.Listen("tcp", addr)
		if err != nil {
			logger.Error("grpc.listen_failed", "addr", addr, "error", err)
			os.Exit(1)
		}
		grpcServer, healthServer := server.NewGRPCServer()
		g.Go(func() error {
			logger.Info("grpc.listening", "addr", addr)
			return grpcServer.Serve(lis)
		})
		g.Go(func() error {
			<-gctx.Done()
			healthServer.SetServingStatus("", healthpb.HealthCheckResponse_NOT_SERVING)
			grpcServer.GracefulStop()
			return nil
		})
	}

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		err := httpServer.Shutdown(shutdownCtx)
		pool.Shutdown(shutdownCtx)
		return err
	})

	if err := g.Wait(); err != nil {
		logger.Error("server.exit", "error", err)
		os.Exit(1)
	}
	logger.Info("stopped")
}
