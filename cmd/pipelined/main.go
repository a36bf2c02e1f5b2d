package main

import (
	"context"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	"github.com/accessly/docpipeline/constants"
	v1 "github.com/accessly/docpipeline/gen/proto/docpipe/v1"
	"github.com/accessly/docpipeline/internal/common"
	"github.com/accessly/docpipeline/internal/entity"
	"github.com/accessly/docpipeline/internal/ingest"
	"github.com/accessly/docpipeline/internal/notify"
	"github.com/accessly/docpipeline/internal/pipeline"
	repo "github.com/accessly/docpipeline/internal/repository"
	"github.com/accessly/docpipeline/internal/repository/memory"
	svc "github.com/accessly/docpipeline/internal/server"
	"github.com/accessly/docpipeline/internal/steps"
	"github.com/accessly/docpipeline/internal/worker"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	inMemory := os.Getenv("STORE") == "memory"
	if !inMemory {
		if err := cfg.Validate(); err != nil {
			logger.Error("invalid configuration", "error", err)
			os.Exit(2)
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var (
		docRepo repo.DocumentRepository
		jobRepo repo.JobRepository
	)
	if inMemory {
		logger.Info("using in-memory store")
		store := memory.NewStore()
		docRepo, jobRepo = store.Documents(), store.Jobs()
	} else {
		entc, pool, err := repo.Open(ctx, repo.Config{
			DSN:              cfg.Database.DSN,
			MaxConns:         cfg.Database.MaxConns,
			MinConns:         cfg.Database.MinConns,
			MaxConnLifetime:  cfg.Database.MaxConnLifetime,
			MaxConnIdleTime:  cfg.Database.MaxConnIdleTime,
			DialTimeout:      cfg.Database.DialTimeout,
			StatementTimeout: cfg.Database.StatementTimeout,
		}, logger)
		if err != nil {
			logger.Error("failed to open database", "error", err)
			os.Exit(1)
		}
		defer repo.Close(entc, pool, logger)

		if err := repo.Migrate(ctx, entc, logger); err != nil {
			logger.Error("schema migration failed", "error", err)
			os.Exit(1)
		}
		if pool != nil {
			if err := repo.HealthCheck(ctx, pool, 5*time.Second, logger); err != nil {
				logger.Error("database health check failed", "error", err)
				os.Exit(1)
			}
		}
		docRepo = repo.NewDocumentRepository(entc, logger)
		jobRepo = repo.NewJobRepository(entc, logger)
	}

	var notifier notify.Notifier = notify.Noop{}
	if cfg.Notifier.WebhookURL != "" {
		notifier = notify.NewWebhook(cfg.Notifier.WebhookURL, cfg.Notifier.Timeout, logger)
	}

	defaults := pipeline.JobDefaults{
		MaxAttempts: cfg.Pipeline.DefaultMaxAttempts,
		Priority:    cfg.Pipeline.DefaultPriority,
		Retry: entity.RetryPolicy{
			Enabled:           true,
			BackoffMultiplier: cfg.Pipeline.BackoffMultiplier,
			InitialDelaySecs:  int(cfg.Pipeline.InitialRetryDelay.Seconds()),
			MaxDelaySecs:      int(cfg.Pipeline.MaxRetryDelay.Seconds()),
		},
		Timeout: entity.TimeoutPolicy{
			ExecutionTimeoutSecs:  int(cfg.Pipeline.ExecutionTimeout.Seconds()),
			HeartbeatIntervalSecs: int(cfg.Pipeline.HeartbeatInterval.Seconds()),
		},
	}

	router := pipeline.NewRouter(docRepo, jobRepo, notifier, defaults, logger)
	retry := pipeline.NewRetryController(jobRepo, router, cfg.Pipeline.RetryInterval, cfg.Pipeline.RetryJitterFraction, logger)
	scheduler := pipeline.NewScheduler(jobRepo, router, retry, logger)
	monitor := pipeline.NewMonitor(jobRepo, retry, cfg.Pipeline.MonitorInterval, cfg.Pipeline.MissedBeats, logger)

	go func() {
		if err := monitor.Run(ctx); err != nil && ctx.Err() == nil {
			logger.Error("monitor stopped", "error", err)
		}
	}()
	go func() {
		if err := retry.Run(ctx); err != nil && ctx.Err() == nil {
			logger.Error("retry controller stopped", "error", err)
		}
	}()

	// gRPC server
	lis, err := net.Listen("tcp", cfg.Server.GRPCAddr)
	if err != nil {
		logger.Error("failed to listen on address", "addr", cfg.Server.GRPCAddr, "error", err)
		os.Exit(1)
	}
	grpcServer := grpc.NewServer(
		grpc.ChainUnaryInterceptor(svc.UnaryRequestID(logger)),
	)
	v1.RegisterIntakeServiceServer(grpcServer, svc.NewIntakeService(router, docRepo, jobRepo, logger))
	v1.RegisterDispatchServiceServer(grpcServer, svc.NewDispatchService(scheduler, logger))

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	reflection.Register(grpcServer)

	// Drop-directory intake
	if len(cfg.Intake.WatchDirs) > 0 {
		events, errs, err := ingest.StartWatcher(ctx, ingest.WatchConfig{
			Roots:       cfg.Intake.WatchDirs,
			InitialScan: true,
			Debounce:    cfg.Intake.Debounce,
		}, logger)
		if err != nil {
			logger.Error("failed to start intake watcher", "dirs", cfg.Intake.WatchDirs, "error", err)
			os.Exit(1)
		}
		ingestor := ingest.NewDropIngestor(router, cfg.Intake.OwnerID, logger)
		go ingestor.Run(ctx, events, errs)
	}

	// In-process workers. Setting WORKERS=0 turns these off; remote
	// workers then connect over the dispatch service instead.
	var pool *worker.Pool
	if cfg.Worker.Workers > 0 {
		registry, err := buildRegistry(cfg, notifier, logger)
		if err != nil {
			logger.Error("failed to build step registry", "error", err)
			os.Exit(1)
		}
		pool = worker.NewPool(scheduler, registry, logger,
			worker.WithWorkers(cfg.Worker.Workers),
			worker.WithPollInterval(cfg.Worker.PollInterval),
		)
		pool.Start()
	}

	logger.Info("pipelined listening", "addr", cfg.Server.GRPCAddr, "workers", cfg.Worker.Workers)
	go func() {
		if err := grpcServer.Serve(lis); err != nil {
			slog.Error("gRPC serve error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	if pool != nil {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		pool.Shutdown(shutdownCtx)
		cancel()
	}
	grpcServer.GracefulStop()
}

// buildRegistry assembles the executors named in WORKER_CAPABILITIES,
// or all of them when unset.
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
