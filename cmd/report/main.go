package main

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/riskibarqy/premier-league-stats/internal/app"
	"github.com/riskibarqy/premier-league-stats/internal/config"
	"github.com/riskibarqy/premier-league-stats/internal/interfaces/console"
	"github.com/riskibarqy/premier-league-stats/internal/observability"
	"github.com/riskibarqy/premier-league-stats/internal/platform/logging"
	"github.com/riskibarqy/premier-league-stats/internal/usecase"
)

func main() {
	os.Exit(run(os.Stdout))
}

func run(stdout io.Writer) int {
	cfg, err := config.Load()
	if err != nil {
		logging.NewJSON(nil, logging.LevelError).Error("load config", "error", err)
		return 1
	}

	logger := logging.NewJSON(nil, cfg.LogLevel).With(
		"service", cfg.ServiceName,
		"version", cfg.ServiceVersion,
		"env", cfg.AppEnv,
	)
	logging.SetDefault(logger)
	defer func() { _ = logger.Sync() }()

	renderer, err := console.New(cfg.ReportFormat)
	if err != nil {
		logger.Error("build renderer", "error", err)
		return 1
	}

	shutdownTracing, err := observability.InitUptrace(cfg, logger)
	if err != nil {
		logger.Error("init uptrace", "error", err)
		return 1
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracing(ctx); err != nil {
			logger.Warn("shutdown uptrace", "error", err)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	ctx, span := usecase.StartRunSpan(ctx, "report.run")
	defer span.End()

	a, err := app.Build(ctx, cfg, logger)
	if err != nil {
		logger.ErrorContext(ctx, "build app", "error", err)
		return 1
	}
	defer func() {
		if err := a.Close(); err != nil {
			logger.Warn("close app", "error", err)
		}
	}()

	if cfg.ImportEnabled {
		imported, err := a.Import.Import(ctx)
		if err != nil {
			logger.ErrorContext(ctx, "import matches", "error", err, "csv_path", cfg.CSVPath)
			_ = renderer.RenderError(stdout, err)
			return 1
		}
		logger.InfoContext(ctx, "import finished", "matches", imported.Matches, "teams", imported.Teams)
	}

	report, err := a.Statistics.Report(ctx)
	if err != nil {
		logger.ErrorContext(ctx, "generate report", "error", err)
		_ = renderer.RenderError(stdout, err)
		return 1
	}

	if err := renderer.Render(stdout, report); err != nil {
		logger.ErrorContext(ctx, "render report", "error", err)
		return 1
	}
	return 0
}
