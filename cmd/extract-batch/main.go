package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/planetafiscal/docs-extractor/internal/config"
	"github.com/planetafiscal/docs-extractor/internal/export"
	"github.com/planetafiscal/docs-extractor/internal/llm"
	"github.com/planetafiscal/docs-extractor/internal/llm/openai"
	"github.com/planetafiscal/docs-extractor/internal/pipeline"
	"github.com/planetafiscal/docs-extractor/internal/textextract"
)

// printError prints an error message to stderr, falling back to stdout if stderr fails
func printError(format string, args ...interface{}) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		fmt.Printf(format, args...)
	}
}

func main() {
	// Parse CLI flags
	var (
		dir      = flag.String("dir", "", "input directory with documents (defaults to the configured input dir)")
		out      = flag.String("out", "", "output directory for JSON artifacts (defaults to the configured output dir)")
		xlsxPath = flag.String("xlsx", "", "optional path for an XLSX export of the extracted records")
		cfgPath  = flag.String("config", "", "optional config file path")
		logLevel = flag.String("log-level", "", "log level override (debug, info, warn, error)")
	)
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		printError("Error: load configuration: %v\n", err)
		os.Exit(1)
	}

	// Flags win over file and environment values
	if *dir != "" {
		cfg.Input.Dir = *dir
	}
	if *out != "" {
		cfg.Output.Dir = *out
	}
	if *logLevel != "" {
		cfg.Log.Level = *logLevel
	}

	// Setup logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.Log.Level),
	}))
	slog.SetDefault(logger)

	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Wire the completion client and the extraction pipeline
	client := openai.NewClient(openai.Config{
		APIKey:      cfg.LLM.APIKey,
		BaseURL:     cfg.LLM.BaseURL,
		Model:       cfg.LLM.Model,
		Temperature: cfg.LLM.Temperature,
		Timeout:     cfg.LLM.Timeout,
	}, logger)
	records := llm.NewExtractor(client, logger)
	texts := textextract.NewExtractor(logger)
	processor := pipeline.NewProcessor(logger, texts, records, cfg.Input.Dir, cfg.Output.Dir)

	logger.Info("starting batch",
		"input_dir", cfg.Input.Dir,
		"output_dir", cfg.Output.Dir,
		"model", cfg.LLM.Model,
	)

	summary, err := processor.Run(ctx)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			logger.Warn("batch interrupted, keeping partial artifacts",
				"succeeded", summary.Succeeded,
				"failed", summary.Failed,
			)
			fmt.Printf("Interrupted after %d documents.\n", summary.Succeeded+summary.Failed)
			return
		}
		logger.Error("batch failed", "error", err)
		os.Exit(1)
	}

	if *xlsxPath != "" {
		xlsxBytes, err := export.NewService(logger).RecordsXLSX(summary.Results)
		if err != nil {
			logger.Error("failed to export records", "error", err)
			os.Exit(1)
		}
		if err := os.WriteFile(*xlsxPath, xlsxBytes, 0o644); err != nil {
			logger.Error("failed to write XLSX file", "error", err)
			os.Exit(1)
		}
		logger.Info("xlsx export written", "path", *xlsxPath)
	}

	fmt.Printf("Batch processing complete!\n")
	fmt.Printf("- Documents succeeded: %d\n", summary.Succeeded)
	fmt.Printf("- Documents failed: %d\n", summary.Failed)
	fmt.Printf("- Output: %s\n", cfg.Output.Dir)
}

func parseLogLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
