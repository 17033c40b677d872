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

	v1 "github.com/docufield/docufield/gen/proto/docufield/v1"
	"github.com/docufield/docufield/internal/adapter"
	"github.com/docufield/docufield/internal/common"
	"github.com/docufield/docufield/internal/export"
	"github.com/docufield/docufield/internal/lifecycle"
	"github.com/docufield/docufield/internal/llm"
	"github.com/docufield/docufield/internal/llm/openai"
	"github.com/docufield/docufield/internal/orchestrator"
	"github.com/docufield/docufield/internal/pipeline/extractfields"
	"github.com/docufield/docufield/internal/pipeline/preprocess"
	repo "github.com/docufield/docufield/internal/repository"
	svc "github.com/docufield/docufield/internal/server"
	"github.com/docufield/docufield/internal/storage"
	"github.com/docufield/docufield/internal/verify"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
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

	entc, pool, err := repo.Open(ctx, cfg.Database, logger)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer repo.Close(entc, pool, logger)

	if err := repo.HealthCheck(ctx, pool, 5*time.Second, logger); err != nil {
		logger.Error("failed to ping database", "error", err)
		os.Exit(1)
	}

	store, err := storage.NewStore(cfg.Storage.DataDir, logger)
	if err != nil {
		logger.Error("failed to initialize storage", "data_dir", cfg.Storage.DataDir, "error", err)
		os.Exit(1)
	}

	docsRepo := repo.NewDocumentRepository(entc, logger)
	pagesRepo := repo.NewPageRepository(entc, logger)
	fieldDefsRepo := repo.NewFieldDefinitionRepository(entc, logger)
	templatesRepo := repo.NewTemplateRepository(entc, logger)
	resultsRepo := repo.NewResultRepository(entc, logger)
	auditRepo := repo.NewAuditRepository(entc, logger)
	recorder := repo.NewRecorder(auditRepo, logger)

	machine := lifecycle.NewMachine(docsRepo, recorder, logger)

	adapterCfg := adapter.Config{
		Pdftotext:     cfg.Adapter.Pdftotext,
		Pdftoppm:      cfg.Adapter.Pdftoppm,
		Tesseract:     cfg.Adapter.Tesseract,
		TesseractLang: cfg.Adapter.TesseractLang,
		DPI:           cfg.Adapter.DPI,
		MaxPages:      cfg.Adapter.MaxPages,
		RenderWorkers: cfg.Adapter.RenderWorkers,
	}
	registry := adapter.NewRegistry(
		adapter.NewPDFAdapter(adapterCfg, store, logger),
		adapter.NewImageAdapter(adapterCfg, store, logger),
		adapter.NewWordAdapter(logger),
	)

	var extractor llm.FieldExtractor
	if cfg.LLM.APIKey != "" {
		extractor = openai.NewClient(openai.Config{
			APIKey:      cfg.LLM.APIKey,
			BaseURL:     cfg.LLM.BaseURL,
			Model:       cfg.LLM.Model,
			Temperature: cfg.LLM.Temperature,
			Timeout:     cfg.LLM.Timeout,
		}, logger)
	} else {
		logger.Warn("no model API key configured, using rules extractor")
		extractor = llm.NewRulesExtractor(logger)
	}

	prePipe := preprocess.NewPipeline(docsRepo, pagesRepo, registry, store, machine, recorder, logger)
	extractPipe := &extractfields.Pipeline{
		Docs:      docsRepo,
		Pages:     pagesRepo,
		FieldDefs: fieldDefsRepo,
		Templates: templatesRepo,
		Results:   resultsRepo,
		Extractor: extractor,
		Machine:   machine,
		Recorder:  recorder,
		Log:       logger,
	}

	queue := orchestrator.NewQueue(
		orchestrator.NewDispatcher(prePipe, extractPipe),
		logger,
		orchestrator.WithWorkers(cfg.Queue.Workers),
		orchestrator.WithQueueSize(cfg.Queue.Size),
		orchestrator.WithStageTimeout(cfg.Queue.StageTimeout),
	)

	service := svc.NewDocuFieldService(svc.Deps{
		Store:     store,
		Docs:      docsRepo,
		Pages:     pagesRepo,
		FieldDefs: fieldDefsRepo,
		Templates: templatesRepo,
		Results:   resultsRepo,
		Queue:     queue,
		Machine:   machine,
		Ledger:    verify.NewLedger(resultsRepo, recorder, logger),
		Exporter:  export.NewService(docsRepo, resultsRepo, logger),
		Recorder:  recorder,
		Logger:    logger,
	})

	lis, err := net.Listen("tcp", cfg.Server.GRPCAddr)
	if err != nil {
		logger.Error("failed to listen", "addr", cfg.Server.GRPCAddr, "error", err)
		os.Exit(1)
	}

	grpcServer := grpc.NewServer()
	v1.RegisterDocuFieldServiceServer(grpcServer, service)

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	reflection.Register(grpcServer)

	logger.Info("docufield listening", "addr", cfg.Server.GRPCAddr)
	go func() {
		if err := grpcServer.Serve(lis); err != nil {
			slog.Error("gRPC serve error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	queue.Shutdown(shutdownCtx)
	grpcServer.GracefulStop()
}
