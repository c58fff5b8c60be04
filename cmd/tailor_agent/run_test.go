package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thechessguy13/resume-tailor-agent/internal/config"
	"github.com/thechessguy13/resume-tailor-agent/internal/ingestion"
)

func TestSourceFromFlags(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		url      string
		file     string
		wantKind ingestion.SourceKind
		wantErr  string
	}{
		{
			name:     "text only",
			text:     "We are hiring a Go engineer",
			wantKind: ingestion.SourceText,
		},
		{
			name:     "url only",
			url:      "https://example.com/jobs/42",
			wantKind: ingestion.SourceURL,
		},
		{
			name:     "file only",
			file:     "posting.pdf",
			wantKind: ingestion.SourceFile,
		},
		{
			name:    "nothing provided",
			wantErr: "one of --text, --url, or --file must be provided",
		},
		{
			name:    "text and url",
			text:    "posting",
			url:     "https://example.com/jobs/42",
			wantErr: "mutually exclusive",
		},
		{
			name:    "all three",
			text:    "posting",
			url:     "https://example.com/jobs/42",
			file:    "posting.pdf",
			wantErr: "mutually exclusive",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src, err := sourceFromFlags(tt.text, tt.url, tt.file)

			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantKind, src.Kind)
			assert.NotEmpty(t, src.Value)
		})
	}
}

func TestNewExtractor(t *testing.T) {
	cfg := &config.Config{
		LinkedInEmail:    "user@example.com",
		LinkedInPassword: "secret",
		OutputDir:        "output",
	}

	extractor := newExtractor(cfg, true)
	require.NotNil(t, extractor)
}
