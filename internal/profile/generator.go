package profile

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/thechessguy13/resume-tailor-agent/internal/ingestion"
	"github.com/thechessguy13/resume-tailor-agent/internal/llm"
	"github.com/thechessguy13/resume-tailor-agent/internal/prompts"
	"github.com/thechessguy13/resume-tailor-agent/internal/schemas"
	"github.com/thechessguy13/resume-tailor-agent/internal/types"
)

// DefaultSourceDir is where users drop the resume PDF a profile draft is
// generated from.
const DefaultSourceDir = "profile_source"

// Generator creates a master profile draft from a resume PDF using an LLM.
type Generator struct {
	client llm.Client
}

// NewGenerator creates a Generator over the given client.
func NewGenerator(client llm.Client) *Generator {
	return &Generator{client: client}
}

// NewGeminiGenerator creates a generator backed by the Gemini API. Full
// resume parsing runs on the advanced tier.
func NewGeminiGenerator(ctx context.Context, apiKey string) (*Generator, error) {
	client, err := llm.NewGeminiClient(ctx, llm.DefaultGeminiConfig(), apiKey)
	if err != nil {
		return nil, &APICallError{Message: "failed to create LLM client", Cause: err}
	}
	return &Generator{client: client}, nil
}

// Close releases the underlying LLM client.
func (g *Generator) Close() error {
	return g.client.Close()
}

// FindResumePDF returns the single PDF inside sourceDir. Zero or more than
// one PDF is an error so a draft is never built from the wrong document.
func FindResumePDF(sourceDir string) (string, error) {
	entries, err := os.ReadDir(sourceDir)
	if err != nil {
		return "", fmt.Errorf("failed to read source directory %s: %w", sourceDir, err)
	}

	var pdfs []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if strings.EqualFold(filepath.Ext(entry.Name()), ".pdf") {
			pdfs = append(pdfs, entry.Name())
		}
	}

	switch len(pdfs) {
	case 0:
		return "", fmt.Errorf("%w: %s", ErrNoResumePDF, sourceDir)
	case 1:
		return filepath.Join(sourceDir, pdfs[0]), nil
	default:
		sort.Strings(pdfs)
		return "", fmt.Errorf("%w: %s: %s", ErrMultipleResumePDFs, sourceDir, strings.Join(pdfs, ", "))
	}
}

// FromResumePDF extracts the resume text and asks the LLM for a structured
// profile draft. The draft satisfies the profile schema but is meant to be
// reviewed and edited by hand before first use, so struct-level validation
// is deliberately not applied here.
func (g *Generator) FromResumePDF(ctx context.Context, pdfPath string) (*types.MasterProfile, error) {
	resumeText, err := ingestion.DocumentText(pdfPath)
	if err != nil {
		return nil, fmt.Errorf("failed to extract resume text: %w", err)
	}

	template, err := prompts.Get("profile.json", "generate-profile")
	if err != nil {
		return nil, fmt.Errorf("failed to load profile prompt: %w", err)
	}

	schema := llm.MasterProfileSchema()
	prompt := prompts.Format(template, map[string]string{
		"ResumeText":         resumeText,
		"FormatInstructions": schema.FormatInstructions(),
	})

	log.Info().Str("pdf", pdfPath).Int("text_len", len(resumeText)).Msg("generating master profile draft")

	raw, err := g.client.GenerateJSON(ctx, prompt, llm.TierAdvanced)
	if err != nil {
		return nil, &APICallError{Message: "profile generation request failed", Cause: err}
	}

	if err := schemas.Validate(schemas.SchemaMasterProfile, raw); err != nil {
		return nil, &ParseError{Message: "profile response failed schema validation", Cause: err}
	}

	var p types.MasterProfile
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		return nil, &ParseError{Message: "failed to decode profile response", Cause: err}
	}

	log.Info().Str("name", p.ContactInfo.Name).Int("jobs", len(p.WorkExperience)).Msg("master profile draft generated")
	return &p, nil
}
