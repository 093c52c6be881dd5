// Package subset filters a plain-text word-vector corpus down to a small
// vocabulary and serializes it as a compact JSON mapping. A line survives
// the pass when its frequency-rank position is inside the top-K window or
// its word belongs to the required-word set.
package subset

import "fmt"

// Entry is one parsed corpus line: a word and its embedding vector.
type Entry struct {
	Word   string
	Vector []float64
}

// Result is the outcome of a full extraction pass.
type Result struct {
	// Kept maps each surviving word to its rounded vector.
	Kept map[string][]float64
	// Lines is the total number of corpus lines consumed.
	Lines int
	// Missing lists required words absent from the kept set, sorted.
	Missing []string
}

// DimensionError reports a line whose component count does not match the
// expected embedding dimensionality. Lines failing this check are dropped
// without aborting the pass.
type DimensionError struct {
	Word string
	Got  int
	Want int
}

func (e *DimensionError) Error() string {
	return fmt.Sprintf("word %q: %d vector components, want %d", e.Word, e.Got, e.Want)
}
