package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	yaegiadapter "github.com/AlejoTorres2001/checker/internal/adapter/yaegi"
	"github.com/AlejoTorres2001/checker/internal/config"
	"github.com/AlejoTorres2001/checker/internal/core/services/batch"
	"github.com/AlejoTorres2001/checker/internal/core/services/grader"
	"github.com/AlejoTorres2001/checker/internal/domain"
	logger2 "github.com/AlejoTorres2001/checker/internal/global/logger"
	http2 "github.com/AlejoTorres2001/checker/internal/http"
)

func main() {
	InitReader()
	logger := logger2.Logger
	logger2.Info("Starting checker service")

	sysCfg := config.NewSystemConfig()

	assignment, err := domain.LoadAssignment(sysCfg.GraderCfg.AssignmentFile)
	if err != nil {
		logger.Error("Failed to load assignment", "file", sysCfg.GraderCfg.AssignmentFile, "error", err)
		os.Exit(1)
	}
	logger.Info("Assignment loaded", "id", assignment.ID, "symbols", len(assignment.Symbols))

	loader := yaegiadapter.NewLoader()
	suiteLoader := yaegiadapter.NewSuiteLoader(loader)
	graderSvc := grader.NewGraderService(
		loader,
		suiteLoader,
		assignment,
		sysCfg.GraderCfg.SuitePath(),
		sysCfg.GraderCfg.TestTimeout,
		logger,
	)
	batchSvc := batch.NewBatchService(graderSvc, sysCfg.GraderCfg.SubmissionsDir, logger)

	if sysCfg.HTTPCfg.Enabled {
		serve(batchSvc, sysCfg)
		return
	}

	report, err := batchSvc.RunBatch(context.Background())
	if err != nil {
		if errors.Is(err, domain.ErrSubmissionsDirNotFound) {
			logger.Error("Exams directory not found", "dir", sysCfg.GraderCfg.SubmissionsDir)
		} else {
			logger.Error("Batch run failed", "error", err)
		}
		os.Exit(1)
	}

	path, err := writeReport(report, sysCfg.GraderCfg.ReportsDir)
	if err != nil {
		logger.Error("Failed to save report", "error", err)
		os.Exit(1)
	}
	logger.Info("Results saved", "path", path, "runId", report.RunID)
}

// serve runs the HTTP façade until interrupted.
func serve(batchSvc batch.IBatchService, sysCfg *config.AppConfig) {
	logger := logger2.Logger

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	serviceProvider := http2.NewServiceProvider(batchSvc)
	httpServer := http2.NewServer(sysCfg.HTTPCfg.Port, "checker", *serviceProvider, logger)
	if err := httpServer.Init(); err != nil {
		logger.Error("Failed to init http server", "error", err)
		os.Exit(1)
	}

	ctxBg := context.Background()
	httpServer.Start(ctxBg)

	<-quit
	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(ctxBg, 5*time.Second)
	defer cancel()
	httpServer.Stop(ctx)

	logger.Info("successfully shutdown server")
}

// writeReport serializes the batch report as indented JSON under the
// reports directory, stamped like the original informes artifacts.
func writeReport(report *domain.BatchReport, reportsDir string) (string, error) {
	if err := os.MkdirAll(reportsDir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create reports directory: %w", err)
	}

	data, err := json.MarshalIndent(report, "", "    ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal report: %w", err)
	}

	path := filepath.Join(reportsDir, fmt.Sprintf("results_%s.json", time.Now().Format("20060102_150405")))
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write report: %w", err)
	}
	return path, nil
}

// InitReader loads environment configuration. An optional first argument
// selects a named env file (e.g. `checker prod` loads prod.env); with no
// argument a plain .env is loaded when present.
func InitReader() {
	if len(os.Args) > 1 {
		environment := os.Args[1]
		if err := godotenv.Load(environment + ".env"); err != nil {
			fmt.Fprintf(os.Stderr, "Error loading %s.env file\n", environment)
			os.Exit(1)
		}
		return
	}
	_ = godotenv.Load()
}
