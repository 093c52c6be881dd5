package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/oklog/ulid/v2"
	"github.com/spf13/cobra"

	"github.com/lexikit/glovesub/internal/config"
	"github.com/lexikit/glovesub/internal/corpus"
	"github.com/lexikit/glovesub/internal/publish"
	"github.com/lexikit/glovesub/internal/subset"
)

// Version is set at build time via ldflags: -ldflags "-X main.Version=1.0.0"
var Version = "dev"

var configPathOverride string

var rootCmd = &cobra.Command{
	Use:   "glovesub",
	Short: "Glovesub - GloVe word-vector subset generator",
	Long: "Download the GloVe 6B corpus, filter it to the top-K vocabulary plus a " +
		"required-word list, and write the result as a compact word-to-vector JSON file.",
	RunE: run,
}

func init() {
	rootCmd.Version = Version
	rootCmd.PersistentFlags().StringVar(&configPathOverride, "config", "",
		"Config file path (overrides GLOVESUB_CONFIG_PATH)")

	rootCmd.AddCommand(fetchCmd)
	rootCmd.AddCommand(subsetCmd)
	rootCmd.AddCommand(publishCmd)
}

// run executes the full pipeline: acquisition, extraction, optional publish.
func run(cmd *cobra.Command, args []string) error {
	ctx, cancel := signal.NotifyContext(context.Background(),
		syscall.SIGTERM, syscall.SIGINT)
	defer cancel()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger := initLogger(cfg)

	fetcher := corpus.NewFetcher(cfg.Corpus, nil, logger)
	if err := fetcher.EnsureVectorFile(ctx); err != nil {
		return err
	}

	if err := generateSubset(ctx, cfg, logger); err != nil {
		return err
	}

	if cfg.Publish.Bucket == "" {
		return nil
	}
	uploader, err := publish.NewUploader(cfg.Publish)
	if err != nil {
		return err
	}
	if err := uploader.Upload(ctx, cfg.OutputPath()); err != nil {
		return err
	}
	logger.Info("subset published", "bucket", cfg.Publish.Bucket)
	return nil
}

// generateSubset runs the extraction stage against the local vector file and
// writes the JSON output. Shared by the root and subset commands.
func generateSubset(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	vectorPath := cfg.Corpus.VectorPath()
	f, err := os.Open(vectorPath)
	if err != nil {
		return fmt.Errorf("open vector file: %w", err)
	}
	defer f.Close()

	logger.Info("reading corpus", "path", vectorPath)
	builder := subset.NewBuilder(cfg.Subset, logger)
	res, err := builder.Build(ctx, f)
	if err != nil {
		return err
	}
	logger.Info("subset built", "words", len(res.Kept), "lines", res.Lines)

	if len(res.Missing) > 0 {
		logger.Warn("required words missing from corpus",
			"count", len(res.Missing), "words", strings.Join(res.Missing, ", "))
	} else {
		logger.Info("all required words found in corpus")
	}

	outPath := cfg.OutputPath()
	size, err := subset.WriteJSON(outPath, res.Kept)
	if err != nil {
		return err
	}
	logger.Info("subset written", "path", outPath, "size", formatSize(size))
	return nil
}

// loadConfig loads configuration, honoring the --config override.
func loadConfig() (*config.Config, error) {
	if configPathOverride != "" {
		return config.LoadFromFile(configPathOverride)
	}
	return config.Load()
}

// initLogger builds the process logger and installs it as the slog default.
// Every event carries the run's ULID so interleaved runs stay separable.
func initLogger(cfg *config.Config) *slog.Logger {
	opts := &slog.HandlerOptions{Level: parseLogLevel(cfg.Log.Level)}
	var handler slog.Handler
	if cfg.Log.Format == "json" {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}
	logger := slog.New(handler).With("run", ulid.Make().String())
	slog.SetDefault(logger)
	return logger
}

func parseLogLevel(level string) slog.Level {
	switch level {
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

// formatSize returns a human-readable file size.
func formatSize(bytes int64) string {
	const (
		KB = 1024
		MB = 1024 * KB
		GB = 1024 * MB
	)
	switch {
	case bytes >= GB:
		return fmt.Sprintf("%.1f GB", float64(bytes)/float64(GB))
	case bytes >= MB:
		return fmt.Sprintf("%.1f MB", float64(bytes)/float64(MB))
	case bytes >= KB:
		return fmt.Sprintf("%.1f KB", float64(bytes)/float64(KB))
	default:
		return fmt.Sprintf("%d B", bytes)
	}
}
