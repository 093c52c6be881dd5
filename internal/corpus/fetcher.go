// Package corpus acquires the pretrained word-vector corpus: it downloads
// the compressed archive from its fixed upstream location and extracts the
// single vector text file the subset pass consumes. Both steps are skipped
// when their output already exists on disk.
package corpus

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"

	"github.com/lexikit/glovesub/internal/config"
)

// ErrBadStatus is returned when the corpus server responds with a non-2xx code.
var ErrBadStatus = errors.New("unexpected HTTP status")

// Fetcher downloads and unpacks the corpus archive.
type Fetcher struct {
	cfg    config.CorpusConfig
	client *http.Client
	logger *slog.Logger
}

// NewFetcher creates a Fetcher for the given corpus location.
// A nil client falls back to http.DefaultClient; the transfer carries no
// timeout of its own and is bounded only by the caller's context.
func NewFetcher(cfg config.CorpusConfig, client *http.Client, logger *slog.Logger) *Fetcher {
	if client == nil {
		client = http.DefaultClient
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Fetcher{cfg: cfg, client: client, logger: logger}
}

// EnsureVectorFile guarantees that the plain-text vector file exists at
// VectorPath on successful return. If it is already present the call is a
// no-op and performs no network access. Otherwise the archive is downloaded
// (unless already on disk) and the vector file extracted from it.
//
// Failures are fatal to the run: there is no retry and no cleanup of a
// half-written archive.
func (f *Fetcher) EnsureVectorFile(ctx context.Context) error {
	vectorPath := f.cfg.VectorPath()
	if _, err := os.Stat(vectorPath); err == nil {
		f.logger.Info("vector file already exists, skipping download", "path", vectorPath)
		return nil
	}

	archivePath := f.cfg.ArchivePath()
	if _, err := os.Stat(archivePath); err != nil {
		if err := f.download(ctx, archivePath); err != nil {
			return fmt.Errorf("download corpus archive: %w", err)
		}
	} else {
		f.logger.Info("archive already exists, skipping download", "path", archivePath)
	}

	f.logger.Info("extracting vector file", "archive", archivePath, "member", f.cfg.VectorName)
	if err := extractFile(archivePath, f.cfg.VectorName, vectorPath); err != nil {
		return fmt.Errorf("extract %s: %w", f.cfg.VectorName, err)
	}
	f.logger.Info("extraction complete", "path", vectorPath)

	return nil
}

// download streams the archive from the corpus URL to dest, reporting
// transfer progress along the way.
func (f *Fetcher) download(ctx context.Context, dest string) error {
	f.logger.Info("downloading corpus archive", "url", f.cfg.URL)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.cfg.URL, nil)
	if err != nil {
		return err
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("%w: %s", ErrBadStatus, resp.Status)
	}

	out, err := os.Create(dest)
	if err != nil {
		return err
	}
	defer out.Close()

	pw := newProgressWriter(resp.ContentLength, f.logger)
	if _, err := io.Copy(io.MultiWriter(out, pw), resp.Body); err != nil {
		return err
	}
	pw.finish()

	if err := out.Close(); err != nil {
		return err
	}

	f.logger.Info("download complete", "path", dest)
	return nil
}
