package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"nl-task-parser/config"
	_ "nl-task-parser/docs" // Swagger docs
	"nl-task-parser/internal/httpserver"
	"nl-task-parser/internal/middleware"
	"nl-task-parser/internal/parser/completion"
	parserUC "nl-task-parser/internal/parser/usecase"
	"nl-task-parser/pkg/datemath"
	"nl-task-parser/pkg/llmprovider"
	"nl-task-parser/pkg/log"
)

// @title       Natural Language Task Parser API
// @description Converts free-form text into structured task records using a language model, with a pattern-matching fallback.
// @version     1.0.0
// @host        localhost:8000
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Failed to load config:", err)
		os.Exit(1)
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	if err := run(cfg, logger); err != nil {
		logger.Fatalf(context.Background(), "Server exited with error: %v", err)
	}
}

func run(cfg *config.Config, logger log.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Natural Language Task Parser...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Date math
	dateMathParser, err := datemath.NewParser(cfg.Parser.Timezone)
	if err != nil {
		return fmt.Errorf("timezone %q: %w", cfg.Parser.Timezone, err)
	}
	referenceDate, err := dateMathParser.ParseDate(cfg.Parser.ReferenceDate)
	if err != nil {
		return fmt.Errorf("reference date %q: %w", cfg.Parser.ReferenceDate, err)
	}

	// 4. Completion upstream
	provider, err := llmprovider.New(llmprovider.OpenAIConfig{
		Name:    cfg.OpenAI.Provider,
		APIKey:  cfg.OpenAI.APIKey,
		Model:   cfg.OpenAI.Model,
		BaseURL: cfg.OpenAI.BaseURL,
		Timeout: cfg.OpenAI.RequestTimeout,
	})
	if err != nil {
		return fmt.Errorf("completion provider: %w", err)
	}
	logger.Infof(ctx, "Completion provider: %s model=%s", provider.Name(), provider.Model())

	completer := completion.New(logger, provider, completion.Config{
		MaxTokens:   cfg.OpenAI.MaxTokens,
		Temperature: cfg.OpenAI.Temperature,
		JSONMode:    cfg.OpenAI.JSONMode,
	})

	// 5. Metrics
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	// 6. Parser UseCase
	uc := parserUC.New(logger, completer, dateMathParser, datemath.SystemClock{}, referenceDate, parserUC.NewMetrics(registry))

	// 7. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Host:        cfg.HTTPServer.Host,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		CORS: middleware.CORSConfig{
			AllowedOrigins:   cfg.CORS.AllowedOrigins,
			AllowedMethods:   []string{"GET", "POST"},
			AllowCredentials: true,
		},
		Gatherer:      registry,
		ParserUseCase: uc,
	})
	if err != nil {
		return fmt.Errorf("initialize HTTP server: %w", err)
	}

	// 8. Run
	if err := httpServer.Run(ctx); err != nil {
		return err
	}

	logger.Info(ctx, "Server stopped gracefully")
	return nil
}
