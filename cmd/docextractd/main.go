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

	v1 "github.com/adeolu-martins/docextract/gen/proto/docextract/v1"
	"github.com/adeolu-martins/docextract/internal/async"
	"github.com/adeolu-martins/docextract/internal/common"
	"github.com/adeolu-martins/docextract/internal/detect"
	"github.com/adeolu-martins/docextract/internal/engine"
	"github.com/adeolu-martins/docextract/internal/export"
	"github.com/adeolu-martins/docextract/internal/extract"
	"github.com/adeolu-martins/docextract/internal/pipeline"
	repo "github.com/adeolu-martins/docextract/internal/repository"
	svc "github.com/adeolu-martins/docextract/internal/server"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	entc, pool, err := svc.ConnectDB(ctx, cfg.Database, logger)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer svc.CloseDB(entc, pool, logger)

	if err := svc.PingDB(ctx, pool, logger, 5*time.Second); err != nil {
		logger.Error("failed to ping database", "error", err)
		os.Exit(1)
	}

	customersRepo := repo.NewCustomerRepository(entc, logger)
	templatesRepo := repo.NewTemplateRepository(entc, logger)
	documentsRepo := repo.NewDocumentRepository(entc, logger)
	jobsRepo := repo.NewJobRepository(entc, logger)
	historyRepo := repo.NewHistoryRepository(entc, logger)

	extractor := extract.NewExtractor(extract.Config{
		Pdftotext:   cfg.Extract.Pdftotext,
		Pdftoppm:    cfg.Extract.Pdftoppm,
		Pdfinfo:     cfg.Extract.Pdfinfo,
		Tesseract:   cfg.Extract.Tesseract,
		TessdataDir: cfg.Extract.TessdataDir,
		DPI:         cfg.Extract.DPI,
		MaxPages:    cfg.Extract.MaxPages,
	}, logger)

	detector := detect.NewDetector(customersRepo, logger)
	if err := detector.Initialize(ctx); err != nil {
		logger.Error("failed to initialize customer detector", "error", err)
		os.Exit(1)
	}
	eng := engine.NewEngine(templatesRepo, logger)
	if err := eng.Initialize(ctx); err != nil {
		logger.Error("failed to initialize template engine", "error", err)
		os.Exit(1)
	}

	processor := pipeline.NewProcessor(pipeline.Config{
		ArtifactDir: cfg.Pipeline.ArtifactDir,
		Timeout:     cfg.Pipeline.ProcessTimeout,
	}, extractor, detector, eng, documentsRepo, jobsRepo, historyRepo, logger)

	queue := async.NewProcessorQueue(processor, logger,
		async.WithWorkers(cfg.Pipeline.QueueWorkers),
		async.WithQueueSize(cfg.Pipeline.QueueSize),
		async.WithProcessTimeout(cfg.Pipeline.ProcessTimeout),
	)

	lis, err := net.Listen("tcp", cfg.Server.GRPCAddr)
	if err != nil {
		logger.Error("failed to listen on address", "addr", cfg.Server.GRPCAddr, "error", err)
		os.Exit(1)
	}
	grpcServer := grpc.NewServer()

	documentsService := svc.NewDocumentsService(documentsRepo, processor, queue, logger)
	v1.RegisterDocumentsServiceServer(grpcServer, documentsService)

	exportService := svc.NewExportServer(export.NewService(documentsRepo, logger), logger)
	v1.RegisterExportServiceServer(grpcServer, exportService)

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	reflection.Register(grpcServer)

	logger.Info("docextract listening", "addr", cfg.Server.GRPCAddr)
	go func() {
		if err := grpcServer.Serve(lis); err != nil {
			slog.Error("gRPC serve error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")
	queue.Shutdown(context.Background())
	grpcServer.GracefulStop()
}
