// Package profile manages the master profile: the JSON file holding the
// user's complete career history, and the LLM-assisted draft generated from
// an existing resume PDF.
package profile

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/thechessguy13/resume-tailor-agent/internal/types"
)

// DefaultPath is where the master profile lives relative to the working directory.
const DefaultPath = "master_profile.json"

// Exists reports whether a profile file is present at path.
func Exists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// Load reads a master profile from a JSON file and validates it. Drafts that
// were never reviewed (missing email, no experience) are rejected here, not
// at generation time.
func Load(path string) (*types.MasterProfile, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{
			Message: fmt.Sprintf("failed to read file %s", path),
			Cause:   err,
		}
	}

	var p types.MasterProfile
	if err := json.Unmarshal(content, &p); err != nil {
		return nil, &LoadError{
			Message: "failed to unmarshal JSON",
			Cause:   err,
		}
	}

	if err := p.Validate(); err != nil {
		return nil, &LoadError{
			Message: fmt.Sprintf("profile %s failed validation", path),
			Cause:   err,
		}
	}

	return &p, nil
}

// Save writes a master profile as indented JSON so it stays hand-editable.
func Save(path string, p *types.MasterProfile) error {
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal profile: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write profile file: %w", err)
	}
	return nil
}
