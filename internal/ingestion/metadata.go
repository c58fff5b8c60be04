package ingestion

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"
)

// Metadata records provenance for an extracted job posting
type Metadata struct {
	Source    string `json:"source"`             // text, url, or file
	URL       string `json:"url,omitempty"`      // Set for url sources
	Timestamp string `json:"timestamp"`          // RFC3339 format
	Hash      string `json:"hash"`               // SHA256 hex digest of the body text
	Platform  string `json:"platform,omitempty"` // Detected job board platform
	Company   string `json:"company,omitempty"`  // Scraped company name
}

// NewMetadata creates a new Metadata instance with current timestamp
func NewMetadata(content string, src Source) *Metadata {
	m := &Metadata{
		Source:    string(src.Kind),
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Hash:      computeHash(content),
	}
	if src.Kind == SourceURL {
		m.URL = src.Value
	}
	return m
}

// computeHash computes SHA256 hash of content and returns hex string
func computeHash(content string) string {
	hash := sha256.Sum256([]byte(content))
	return hex.EncodeToString(hash[:])
}

// ToJSON marshals Metadata to pretty-printed JSON
func (m *Metadata) ToJSON() ([]byte, error) {
	jsonBytes, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal metadata to JSON: %w", err)
	}
	return jsonBytes, nil
}
