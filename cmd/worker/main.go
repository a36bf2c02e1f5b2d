package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/accessly/docpipeline/constants"
	v1 "github.com/accessly/docpipeline/gen/proto/docpipe/v1"
	"github.com/accessly/docpipeline/internal/common"
	"github.com/accessly/docpipeline/internal/notify"
	"github.com/accessly/docpipeline/internal/steps"
	"github.com/accessly/docpipeline/internal/worker"
)

// Standalone worker: connects to a pipelined instance over gRPC, claims
// jobs its registry can execute, and reports results back.
func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	serverAddr := os.Getenv("DISPATCH_ADDR")
	if serverAddr == "" {
		serverAddr = "localhost:8080"
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	conn, err := grpc.NewClient(serverAddr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		logger.Error("failed to connect to dispatch service", "addr", serverAddr, "error", err)
		os.Exit(1)
	}
	defer func() { _ = conn.Close() }()

	var notifier notify.Notifier = notify.Noop{}
	if cfg.Notifier.WebhookURL != "" {
		notifier = notify.NewWebhook(cfg.Notifier.WebhookURL, cfg.Notifier.Timeout, logger)
	}

	registry, err := buildRegistry(cfg, notifier, logger)
	if err != nil {
		logger.Error("failed to build step registry", "error", err)
		os.Exit(1)
	}

	dispatcher := worker.NewGRPCDispatcher(v1.NewDispatchServiceClient(conn))
	pool := worker.NewPool(dispatcher, registry, logger,
		worker.WithWorkers(cfg.Worker.Workers),
		worker.WithPollInterval(cfg.Worker.PollInterval),
		worker.WithIDPrefix(hostPrefix()),
	)
	pool.Start()
	logger.Info("worker pool started", "dispatch_addr", serverAddr, "workers", cfg.Worker.Workers, "capabilities", registry.Steps())

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	pool.Shutdown(shutdownCtx)
	cancel()
}

func hostPrefix() string {
	h, err := os.Hostname()
	if err != nil || h == "" {
		return "worker"
	}
	return h
}

func buildRegistry(cfg *common.Config, notifier notify.Notifier, logger *slog.Logger) (steps.Registry, error) {
	var caps []constants.Step
	for _, name := range cfg.Worker.Capabilities {
		step, ok := constants.ParseStep(name)
		if !ok {
			return nil, common.InvalidArgumentErrorf("unknown step in WORKER_CAPABILITIES: %q", name)
		}
		caps = append(caps, step)
	}
	return steps.BuildRegistry(steps.RegistryConfig{
		Capabilities: caps,
		OCR: steps.OCRConfig{
			Binary:      cfg.Worker.OCRBinary,
			ArtifactDir: cfg.Worker.ArtifactDir,
		},
		ArtifactDir:      cfg.Worker.ArtifactDir,
		MinOCRConfidence: cfg.Worker.MinOCRConfidence,
		MinTagCoverage:   cfg.Worker.MinTagCoverage,
		Notifier:         notifier,
		WebhookURL:       cfg.Notifier.WebhookURL,
	}, logger)
}
