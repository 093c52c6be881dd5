package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/lexikit/glovesub/internal/corpus"
)

var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Download and extract the corpus",
	Long: "Ensure the plain-text vector file exists locally, downloading and " +
		"extracting the corpus archive if necessary. A no-op when the file is already present.",
	Args: cobra.NoArgs,
	RunE: runFetch,
}

func runFetch(cmd *cobra.Command, args []string) error {
	ctx, cancel := signal.NotifyContext(context.Background(),
		syscall.SIGTERM, syscall.SIGINT)
	defer cancel()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger := initLogger(cfg)

	fetcher := corpus.NewFetcher(cfg.Corpus, nil, logger)
	return fetcher.EnsureVectorFile(ctx)
}
