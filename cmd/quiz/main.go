// Package main is the entry point for the quiz.
package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/jsamuelsen/quiz-generator/internal/adapters/bank"
	"github.com/jsamuelsen/quiz-generator/internal/adapters/console"
	"github.com/jsamuelsen/quiz-generator/internal/app"
	"github.com/jsamuelsen/quiz-generator/internal/platform/config"
	"github.com/jsamuelsen/quiz-generator/internal/platform/logging"
	"github.com/jsamuelsen/quiz-generator/internal/platform/telemetry"
	"github.com/jsamuelsen/quiz-generator/internal/ports"
)

// Build-time variables, injected via ldflags.
// Example: go build -ldflags "-X main.Version=1.0.0 -X main.Commit=$(git rev-parse HEAD) -X main.BuildTime=$(date -u +%Y-%m-%dT%H:%M:%SZ)"
var (
	// Version is the semantic version of the quiz.
	Version = "dev"

	// Commit is the git commit SHA.
	Commit = "unknown"

	// BuildTime is the timestamp when the binary was built.
	BuildTime = "unknown"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// 1. Optional .env file; a missing file is normal
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("loading .env: %w", err)
	}

	// 2. Determine profile from environment
	profile := os.Getenv(config.EnvPrefix + "APP_ENVIRONMENT")
	if profile == "" {
		profile = "local"
	}

	// 3. Load and validate configuration (fail fast)
	cfg, err := config.Load(profile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	// 4. Initialize logging; stdout belongs to the quiz
	logger := logging.NewWithWriter(&logging.Config{
		Level:   cfg.Log.Level,
		Format:  cfg.Log.Format,
		Service: cfg.App.Name,
		Version: Version,
		File: logging.FileConfig{
			Enabled:    cfg.Log.File.Enabled,
			Path:       cfg.Log.File.Path,
			MaxSizeMB:  cfg.Log.File.MaxSizeMB,
			MaxBackups: cfg.Log.File.MaxBackups,
			MaxAgeDays: cfg.Log.File.MaxAgeDays,
			Compress:   cfg.Log.File.Compress,
		},
	}, logging.OutputWriter(cfg.Log.Output))
	logging.SetDefault(logger)

	logger.Info("starting quiz",
		slog.String("version", Version),
		slog.String("commit", Commit),
		slog.String("build_time", BuildTime),
		slog.String("environment", cfg.App.Environment),
	)

	// 5. Cancel the session on SIGINT/SIGTERM
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// 6. Initialize telemetry (noop if disabled)
	telProvider, err := telemetry.New(ctx, &telemetry.Config{
		Enabled:      cfg.Telemetry.Enabled,
		Endpoint:     cfg.Telemetry.Endpoint,
		ServiceName:  cfg.Telemetry.ServiceName,
		Version:      Version,
		Environment:  cfg.App.Environment,
		SamplingRate: cfg.Telemetry.SamplingRate,
	})
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}

	defer func() {
		// The session context may already be cancelled; flush regardless.
		if shutdownErr := telProvider.Shutdown(context.WithoutCancel(ctx)); shutdownErr != nil {
			logger.Error("telemetry shutdown error", slog.Any("error", shutdownErr))
		}
	}()

	quizMetrics, err := telemetry.NewQuizMetrics(telProvider.MeterProvider())
	if err != nil {
		return fmt.Errorf("creating metrics: %w", err)
	}

	// 7. Build the question bank (fails only if the embedded data is broken)
	questionBank, err := bank.Default()
	if err != nil {
		return fmt.Errorf("loading question bank: %w", err)
	}

	// 8. Wire the console and the quiz service
	term := console.NewConsole(os.Stdin, os.Stdout, logger)
	defer term.Close()

	quiz := app.NewQuizService(app.QuizServiceConfig{
		Bank:    questionBank,
		Console: term,
		Clock:   ports.SystemClock{},
		Metrics: quizMetrics,
		Tracer:  telemetry.Tracer(),
		Logger:  logger,
	})

	// 9. Play until the user stops, input ends or a signal arrives
	runErr := quiz.Run(ctx)

	switch {
	case runErr == nil:
	case errors.Is(runErr, context.Canceled):
		logger.Info("session interrupted")
	default:
		logger.Error("session failed", slog.Any("error", runErr))
	}

	// 10. Export the session's metrics if configured
	if path := cfg.Metrics.TextfilePath; path != "" {
		if err := quizMetrics.WriteTextfile(path); err != nil {
			logger.Warn("metrics export failed", slog.String("path", path), slog.Any("error", err))
		}
	}

	logger.Info("quiz finished")

	return nil
}
