package subset

import (
	"encoding/json"
	"fmt"
	"os"
)

// WriteJSON serializes the kept mapping as a single compact JSON object to
// path and returns the number of bytes written. Values are plain arrays of
// numbers; there is no surrounding metadata.
func WriteJSON(path string, kept map[string][]float64) (int64, error) {
	data, err := json.Marshal(kept)
	if err != nil {
		return 0, fmt.Errorf("encode subset: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return 0, fmt.Errorf("write subset: %w", err)
	}
	return int64(len(data)), nil
}
