package subset

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

func TestWriteJSON_RoundTrip(t *testing.T) {
	kept := map[string][]float64{
		"alpha": make([]float64, 50),
		"beta":  make([]float64, 50),
		"king":  make([]float64, 50),
	}
	for i := range kept["king"] {
		kept["king"][i] = 0.123457
	}

	path := filepath.Join(t.TempDir(), "subset.json")
	size, err := WriteJSON(path, kept)
	if err != nil {
		t.Fatalf("WriteJSON() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if int64(len(data)) != size {
		t.Errorf("reported size = %d, file size = %d", size, len(data))
	}

	var got map[string][]float64
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if len(got) != len(kept) {
		t.Fatalf("round-trip has %d keys, want %d", len(got), len(kept))
	}
	for w, vec := range kept {
		gotVec, ok := got[w]
		if !ok {
			t.Errorf("missing key %q after round-trip", w)
			continue
		}
		if len(gotVec) != 50 {
			t.Errorf("%s vector length = %d, want 50", w, len(gotVec))
		}
		for i := range vec {
			if gotVec[i] != vec[i] {
				t.Errorf("%s[%d] = %v, want %v", w, i, gotVec[i], vec[i])
				break
			}
		}
	}
}

func TestWriteJSON_CompactEncoding(t *testing.T) {
	kept := map[string][]float64{
		"alpha": {0.1, -0.25},
		"beta":  {1.5, 2.0},
	}

	path := filepath.Join(t.TempDir(), "subset.json")
	if _, err := WriteJSON(path, kept); err != nil {
		t.Fatalf("WriteJSON() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	for _, c := range data {
		if c == ' ' || c == '\n' || c == '\t' {
			t.Fatalf("output contains whitespace byte %q, want compact encoding", c)
		}
	}
	if data[0] != '{' || data[len(data)-1] != '}' {
		t.Errorf("output is not a single JSON object: %s", data)
	}
}

func TestWriteJSON_BadPath(t *testing.T) {
	if _, err := WriteJSON(filepath.Join(t.TempDir(), "no", "such", "dir.json"), nil); err == nil {
		t.Fatal("WriteJSON() expected error for unwritable path")
	}
}
