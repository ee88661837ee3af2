package batch

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// ManifestEntry represents one file in the output manifest.
type ManifestEntry struct {
	Input   string `json:"input"`
	Output  string `json:"output,omitempty"`
	Bytes   int    `json:"bytes"`
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

// WriteManifest writes manifest.json describing a run.
func WriteManifest(path string, results []Result) error {
	entries := make([]ManifestEntry, len(results))
	for i, r := range results {
		entries[i] = ManifestEntry{
			Input:   filepath.Base(r.Input),
			Bytes:   r.Bytes,
			Success: r.Success,
			Error:   r.Error,
		}
		if r.Output != "" {
			entries[i].Output = filepath.Base(r.Output)
		}
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
