package subset

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/lexikit/glovesub/internal/config"
)

// Builder runs the single-pass extraction over a corpus stream.
type Builder struct {
	vocabSize     int
	dims          int
	precision     int
	progressEvery int
	required      WordSet
	logger        *slog.Logger
}

// NewBuilder creates a Builder from subset configuration. An empty
// required-word list in the config selects the built-in curated set.
func NewBuilder(cfg config.SubsetConfig, logger *slog.Logger) *Builder {
	if logger == nil {
		logger = slog.Default()
	}
	words := cfg.RequiredWords
	if len(words) == 0 {
		words = DefaultRequiredWords()
	}
	return &Builder{
		vocabSize:     cfg.VocabSize,
		dims:          cfg.Dimensions,
		precision:     cfg.Precision,
		progressEvery: cfg.ProgressEvery,
		required:      NewWordSet(words),
		logger:        logger,
	}
}

// Build streams the corpus line by line and accumulates the kept mapping.
// A line is kept when its zero-based position is below the vocabulary size
// or its word is required. Kept lines with a wrong component count are
// dropped and the pass continues; any other parse failure on a kept line is
// fatal. Lines that are not kept are never parsed and cannot fail.
func (b *Builder) Build(ctx context.Context, r io.Reader) (*Result, error) {
	res := &Result{Kept: make(map[string][]float64)}

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			res.Lines++
			continue
		}

		word := fields[0]
		if res.Lines < b.vocabSize || b.required.Contains(word) {
			entry, err := parseFields(word, fields[1:], b.dims, b.precision)
			var dimErr *DimensionError
			switch {
			case errors.As(err, &dimErr):
				b.logger.Warn("dropping malformed line", "word", dimErr.Word,
					"components", dimErr.Got, "want", dimErr.Want)
			case err != nil:
				return nil, fmt.Errorf("line %d: %w", res.Lines+1, err)
			default:
				res.Kept[entry.Word] = entry.Vector
			}
		}
		res.Lines++

		if res.Lines%b.progressEvery == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			b.logger.Info("processing corpus", "lines", res.Lines, "kept", len(res.Kept))
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read corpus: %w", err)
	}

	res.Missing = b.required.Missing(res.Kept)
	return res, nil
}
