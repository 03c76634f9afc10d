package processor

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/deepbrainspace/guardy/internal/config"
	"github.com/deepbrainspace/guardy/internal/report"
	"github.com/deepbrainspace/guardy/internal/scanner"
)

// ErrSecretsFound is returned by Process when the scan completed and found
// at least one secret, so the CLI can exit non-zero for hook integrations
// without treating the scan itself as failed.
var ErrSecretsFound = fmt.Errorf("secrets found")

// Process is the main entry point for a scan invocation: it loads
// configuration, sets up logging, runs the scanner over the given paths, and
// renders the report to stdout. Logs go to stderr (or a file) to keep stdout
// clean for report output.
func Process(stdout io.Writer, paths []string, format string) error {
	cfg, err := config.GetConfig()
	if err != nil {
		return fmt.Errorf("failed to load configuration; %w", err)
	}

	logger := setupLogger(cfg)

	s, err := scanner.New(cfg, logger)
	if err != nil {
		return fmt.Errorf("failed to build scanner; %w", err)
	}

	logger.Info("starting scan", "paths", paths)

	result, err := s.Scan(context.Background(), paths)
	if err != nil {
		return fmt.Errorf("scan failed; %w", err)
	}

	if err := report.Write(stdout, &result, format); err != nil {
		return fmt.Errorf("failed to write report; %w", err)
	}

	if result.HasMatches() {
		return ErrSecretsFound
	}

	return nil
}

// setupLogger creates and configures the logger based on configuration.
func setupLogger(cfg *config.Config) *slog.Logger {
	var level slog.Level
	switch cfg.Logging.Level {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	// Report output owns stdout; logs go to stderr or a configured file.
	var output io.Writer = os.Stderr

	if cfg.Logging.LogFile != "" {
		logFile, err := openLogFile(cfg.Logging.LogFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to open log file %s: %v\n", cfg.Logging.LogFile, err)
		} else {
			output = logFile
		}
	}

	var handler slog.Handler
	if cfg.Logging.Format == "json" {
		handler = slog.NewJSONHandler(output, opts)
	} else {
		handler = slog.NewTextHandler(output, opts)
	}

	return slog.New(handler)
}

// openLogFile opens or creates a log file for writing
func openLogFile(path string) (*os.File, error) {
	// Expand ~ to home directory if present
	if len(path) > 0 && path[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get home directory; %w", err)
		}
		path = filepath.Join(home, path[1:])
	}

	// Create parent directory if it doesn't exist
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory; %w", err)
	}

	// Open file in append mode, create if doesn't exist
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file; %w", err)
	}

	return file, nil
}
