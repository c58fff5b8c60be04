// Package ingestion - output.go persists extraction artifacts for inspection
// and reruns.
package ingestion

import (
	"fmt"
	"os"
	"path/filepath"
)

// WriteOutput writes the extracted posting text and its metadata to outDir.
func WriteOutput(outDir string, bodyText string, metadata *Metadata) error {
	// Create output directory if it doesn't exist
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	// Write posting text file
	textPath := filepath.Join(outDir, "job_posting.txt")
	if err := os.WriteFile(textPath, []byte(bodyText), 0644); err != nil {
		return fmt.Errorf("failed to write posting text file: %w", err)
	}

	// Write metadata JSON file
	metaPath := filepath.Join(outDir, "job_posting.meta.json")
	metaJSON, err := metadata.ToJSON()
	if err != nil {
		return fmt.Errorf("failed to marshal metadata: %w", err)
	}
	if err := os.WriteFile(metaPath, metaJSON, 0644); err != nil {
		return fmt.Errorf("failed to write metadata file: %w", err)
	}

	return nil
}
