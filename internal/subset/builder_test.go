package subset

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/lexikit/glovesub/internal/config"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// corpusLine builds one vector line: the word followed by dims copies of val.
func corpusLine(word string, dims int, val string) string {
	parts := make([]string, 0, dims+1)
	parts = append(parts, word)
	for i := 0; i < dims; i++ {
		parts = append(parts, val)
	}
	return strings.Join(parts, " ")
}

func newTestBuilder(vocabSize, dims int, required []string) *Builder {
	return NewBuilder(config.SubsetConfig{
		VocabSize:     vocabSize,
		Dimensions:    dims,
		Precision:     6,
		ProgressEvery: 50000,
		RequiredWords: required,
	}, testLogger())
}

func build(t *testing.T, b *Builder, lines ...string) *Result {
	t.Helper()
	res, err := b.Build(context.Background(), strings.NewReader(strings.Join(lines, "\n")))
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	return res
}

func TestBuild_KeepPredicate(t *testing.T) {
	// Five lines, top-3 window, "echo" required at position 4.
	b := newTestBuilder(3, 2, []string{"echo"})
	res := build(t, b,
		corpusLine("alpha", 2, "0.1"),
		corpusLine("bravo", 2, "0.1"),
		corpusLine("charlie", 2, "0.1"),
		corpusLine("delta", 2, "0.1"),
		corpusLine("echo", 2, "0.1"),
	)

	for _, w := range []string{"alpha", "bravo", "charlie", "echo"} {
		if _, ok := res.Kept[w]; !ok {
			t.Errorf("expected %q in kept set", w)
		}
	}
	if _, ok := res.Kept["delta"]; ok {
		t.Error("delta is outside the top-K window and not required, must not be kept")
	}
	if len(res.Kept) != 4 {
		t.Errorf("kept %d words, want 4", len(res.Kept))
	}
	if res.Lines != 5 {
		t.Errorf("Lines = %d, want 5", res.Lines)
	}
	if len(res.Missing) != 0 {
		t.Errorf("Missing = %v, want none", res.Missing)
	}
}

func TestBuild_DimensionGuard(t *testing.T) {
	// The malformed line sits inside the top-K window; it is dropped and
	// the pass continues to keep later lines.
	b := newTestBuilder(3, 2, nil)
	res := build(t, b,
		corpusLine("alpha", 2, "0.1"),
		corpusLine("broken", 3, "0.1"),
		corpusLine("charlie", 2, "0.1"),
	)

	if _, ok := res.Kept["broken"]; ok {
		t.Error("line with wrong dimensionality must be excluded")
	}
	if _, ok := res.Kept["charlie"]; !ok {
		t.Error("extraction must continue past a malformed kept line")
	}
	if res.Lines != 3 {
		t.Errorf("Lines = %d, want 3 (malformed line still counts)", res.Lines)
	}
}

func TestBuild_NonNumericKeptLineIsFatal(t *testing.T) {
	b := newTestBuilder(2, 2, nil)
	r := strings.NewReader(corpusLine("alpha", 2, "0.1") + "\nbeta 0.1 oops\n")
	if _, err := b.Build(context.Background(), r); err == nil {
		t.Fatal("Build() expected fatal error for non-numeric component on a kept line")
	}
}

func TestBuild_NonKeptLinesAreNeverParsed(t *testing.T) {
	// Garbage beyond the window and outside the required set must not fail.
	b := newTestBuilder(1, 2, []string{"echo"})
	res := build(t, b,
		corpusLine("alpha", 2, "0.1"),
		"garbage not-a-number also-not",
		corpusLine("echo", 2, "0.1"),
	)
	if len(res.Kept) != 2 {
		t.Errorf("kept %d words, want 2", len(res.Kept))
	}
}

func TestBuild_MissingRequiredWordReported(t *testing.T) {
	b := newTestBuilder(2, 2, []string{"unicorn", "alpha"})
	res := build(t, b,
		corpusLine("alpha", 2, "0.1"),
		corpusLine("bravo", 2, "0.1"),
	)

	if len(res.Missing) != 1 || res.Missing[0] != "unicorn" {
		t.Errorf("Missing = %v, want [unicorn]", res.Missing)
	}
	if _, ok := res.Kept["unicorn"]; ok {
		t.Error("missing word must be omitted from the output mapping")
	}
}

func TestBuild_RequiredWordWithMalformedLine(t *testing.T) {
	// A required word whose only line fails the dimension guard is both
	// excluded from the output and reported missing.
	b := newTestBuilder(1, 2, []string{"echo"})
	res := build(t, b,
		corpusLine("alpha", 2, "0.1"),
		corpusLine("echo", 3, "0.1"),
	)

	if _, ok := res.Kept["echo"]; ok {
		t.Error("malformed required line must be excluded")
	}
	if len(res.Missing) != 1 || res.Missing[0] != "echo" {
		t.Errorf("Missing = %v, want [echo]", res.Missing)
	}
}

func TestBuild_DefaultRequiredSet(t *testing.T) {
	// Empty required list in config selects the built-in curated set.
	b := NewBuilder(config.SubsetConfig{
		VocabSize:     1,
		Dimensions:    2,
		Precision:     6,
		ProgressEvery: 50000,
	}, testLogger())
	res := build(t, b,
		corpusLine("alpha", 2, "0.1"),
		corpusLine("queen", 2, "0.1"),
	)
	if _, ok := res.Kept["queen"]; !ok {
		t.Error("queen is in the default required set and must be kept")
	}
}

func TestBuild_BlankLinesCount(t *testing.T) {
	b := newTestBuilder(10, 2, nil)
	res := build(t, b,
		corpusLine("alpha", 2, "0.1"),
		"",
		corpusLine("bravo", 2, "0.1"),
	)
	if res.Lines != 3 {
		t.Errorf("Lines = %d, want 3", res.Lines)
	}
	if len(res.Kept) != 2 {
		t.Errorf("kept %d words, want 2", len(res.Kept))
	}
}

func TestBuild_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	b := NewBuilder(config.SubsetConfig{
		VocabSize:     10,
		Dimensions:    2,
		Precision:     6,
		ProgressEvery: 1, // check cancellation on every line
	}, testLogger())

	_, err := b.Build(ctx, strings.NewReader(corpusLine("alpha", 2, "0.1")+"\n"))
	if err == nil {
		t.Fatal("Build() expected context error after cancellation")
	}
}

func TestBuild_EndToEndScenario(t *testing.T) {
	// Three 50-dimension lines, top-2 window, required = {king}.
	dims := 50
	b := newTestBuilder(2, dims, []string{"king"})
	res := build(t, b,
		corpusLine("alpha", dims, "0.1"),
		corpusLine("beta", dims, "0.2"),
		corpusLine("king", dims, "0.3"),
	)

	if len(res.Kept) != 3 {
		t.Fatalf("kept %d words, want 3", len(res.Kept))
	}
	for _, w := range []string{"alpha", "beta", "king"} {
		vec, ok := res.Kept[w]
		if !ok {
			t.Errorf("expected %q in output", w)
			continue
		}
		if len(vec) != dims {
			t.Errorf("%s vector length = %d, want %d", w, len(vec), dims)
		}
	}
	if len(res.Missing) != 0 {
		t.Errorf("Missing = %v, want none", res.Missing)
	}
}

func TestBuild_LargeSyntheticCorpus(t *testing.T) {
	// Keep-predicate over a corpus big enough to cross progress intervals.
	var sb strings.Builder
	for i := 0; i < 500; i++ {
		fmt.Fprintf(&sb, "word%03d 0.1 0.2\n", i)
	}

	b := NewBuilder(config.SubsetConfig{
		VocabSize:     100,
		Dimensions:    2,
		Precision:     6,
		ProgressEvery: 50,
		RequiredWords: []string{"word400"},
	}, testLogger())

	res, err := b.Build(context.Background(), strings.NewReader(sb.String()))
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if len(res.Kept) != 101 {
		t.Errorf("kept %d words, want 101", len(res.Kept))
	}
	if _, ok := res.Kept["word400"]; !ok {
		t.Error("required word past the window must be kept")
	}
	if res.Lines != 500 {
		t.Errorf("Lines = %d, want 500", res.Lines)
	}
}
