package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

var subsetCmd = &cobra.Command{
	Use:   "subset",
	Short: "Build the subset JSON from a local vector file",
	Long: "Run the extraction stage only. The plain-text vector file must " +
		"already exist; run 'glovesub fetch' first if it does not.",
	Args: cobra.NoArgs,
	RunE: runSubset,
}

func runSubset(cmd *cobra.Command, args []string) error {
	ctx, cancel := signal.NotifyContext(context.Background(),
		syscall.SIGTERM, syscall.SIGINT)
	defer cancel()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger := initLogger(cfg)

	return generateSubset(ctx, cfg, logger)
}
