package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/lexikit/glovesub/internal/publish"
)

var publishCmd = &cobra.Command{
	Use:   "publish [file]",
	Short: "Upload a subset JSON to S3-compatible storage",
	Long: "Upload an existing subset file to the configured bucket and print a " +
		"pre-signed download URL. Defaults to the configured output file.",
	Args: cobra.MaximumNArgs(1),
	RunE: runPublish,
}

func runPublish(cmd *cobra.Command, args []string) error {
	ctx, cancel := signal.NotifyContext(context.Background(),
		syscall.SIGTERM, syscall.SIGINT)
	defer cancel()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger := initLogger(cfg)

	filePath := cfg.OutputPath()
	if len(args) == 1 {
		filePath = args[0]
	}
	if _, err := os.Stat(filePath); err != nil {
		return fmt.Errorf("subset file %s does not exist; run 'glovesub subset' first", filePath)
	}

	if cfg.Publish.Bucket == "" {
		return publish.ErrNotConfigured
	}
	uploader, err := publish.NewUploader(cfg.Publish)
	if err != nil {
		return err
	}

	if err := uploader.Upload(ctx, filePath); err != nil {
		return err
	}
	logger.Info("subset published", "bucket", cfg.Publish.Bucket, "file", filePath)

	url, expiry, err := uploader.PresignedURL(ctx, filePath)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s\n(valid until %s)\n", url, expiry.Format("2006-01-02 15:04 MST"))
	return nil
}
