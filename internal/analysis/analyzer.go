// Package analysis turns extracted job posting text into structured insight
// and tailors master profile content against it using LLMs.
package analysis

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/thechessguy13/resume-tailor-agent/internal/llm"
	"github.com/thechessguy13/resume-tailor-agent/internal/prompts"
	"github.com/thechessguy13/resume-tailor-agent/internal/schemas"
	"github.com/thechessguy13/resume-tailor-agent/internal/types"
)

// Analyzer extracts structure from job postings and tailors resume content
// against them.
type Analyzer interface {
	AnalyzeJob(ctx context.Context, jobText string) (*types.JobAnalysis, error)
	TailorContent(ctx context.Context, jobAnalysis *types.JobAnalysis, profile *types.MasterProfile) (*types.TailoredResume, error)
}

// LLMAnalyzer implements Analyzer over an LLM client. Job analysis runs on
// the lite tier, tailoring on the standard tier.
type LLMAnalyzer struct {
	client llm.Client
}

// NewAnalyzer creates an LLMAnalyzer over the given client.
func NewAnalyzer(client llm.Client) *LLMAnalyzer {
	return &LLMAnalyzer{client: client}
}

// NewOpenAIAnalyzer creates an analyzer backed by the OpenAI API.
func NewOpenAIAnalyzer(apiKey string) (*LLMAnalyzer, error) {
	client, err := llm.NewOpenAIClient(llm.DefaultOpenAIConfig(), apiKey)
	if err != nil {
		return nil, &APICallError{Message: "failed to create LLM client", Cause: err}
	}
	return &LLMAnalyzer{client: client}, nil
}

// Close releases the underlying LLM client.
func (a *LLMAnalyzer) Close() error {
	return a.client.Close()
}

// AnalyzeJob extracts a structured JobAnalysis from raw posting text.
func (a *LLMAnalyzer) AnalyzeJob(ctx context.Context, jobText string) (*types.JobAnalysis, error) {
	if strings.TrimSpace(jobText) == "" {
		return nil, fmt.Errorf("job description text is empty")
	}

	template, err := prompts.Get("analysis.json", "analyze-job")
	if err != nil {
		return nil, fmt.Errorf("failed to load analysis prompt: %w", err)
	}

	schema := llm.JobAnalysisSchema()
	prompt := prompts.Format(template, map[string]string{
		"JobDescription":     jobText,
		"FormatInstructions": schema.FormatInstructions(),
	})

	log.Info().Str("schema", schema.Name).Int("text_len", len(jobText)).Msg("analyzing job description")

	raw, err := a.client.GenerateJSON(ctx, prompt, llm.TierLite)
	if err != nil {
		return nil, &APICallError{Message: "job analysis request failed", Cause: err}
	}

	if err := schemas.Validate(schemas.SchemaJobAnalysis, raw); err != nil {
		return nil, &ParseError{Message: "job analysis response failed schema validation", Cause: err}
	}

	var jobAnalysis types.JobAnalysis
	if err := json.Unmarshal([]byte(raw), &jobAnalysis); err != nil {
		return nil, &ParseError{Message: "failed to decode job analysis response", Cause: err}
	}

	log.Info().Str("job_title", jobAnalysis.JobTitle).Str("company", jobAnalysis.Company).Msg("job analysis complete")
	return &jobAnalysis, nil
}

// TailorContent selects and rewrites master profile content for the analyzed
// job. Companies, roles, and dates pass through untouched; only bullet points
// and descriptions are rewritten.
func (a *LLMAnalyzer) TailorContent(ctx context.Context, jobAnalysis *types.JobAnalysis, profile *types.MasterProfile) (*types.TailoredResume, error) {
	if jobAnalysis == nil {
		return nil, fmt.Errorf("job analysis is required")
	}
	if profile == nil {
		return nil, fmt.Errorf("master profile is required")
	}

	template, err := prompts.Get("analysis.json", "tailor-resume")
	if err != nil {
		return nil, fmt.Errorf("failed to load tailoring prompt: %w", err)
	}

	analysisJSON, err := json.MarshalIndent(jobAnalysis, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal job analysis: %w", err)
	}
	profileJSON, err := json.MarshalIndent(profile, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal master profile: %w", err)
	}

	schema := llm.TailoredResumeSchema()
	prompt := prompts.Format(template, map[string]string{
		"JobAnalysis":        string(analysisJSON),
		"MasterProfile":      string(profileJSON),
		"FormatInstructions": schema.FormatInstructions(),
	})

	log.Info().Str("schema", schema.Name).Str("company", jobAnalysis.Company).Msg("tailoring resume content")

	raw, err := a.client.GenerateJSON(ctx, prompt, llm.TierStandard)
	if err != nil {
		return nil, &APICallError{Message: "resume tailoring request failed", Cause: err}
	}

	if err := schemas.Validate(schemas.SchemaTailoredResume, raw); err != nil {
		return nil, &ParseError{Message: "tailored resume response failed schema validation", Cause: err}
	}

	var tailored types.TailoredResume
	if err := json.Unmarshal([]byte(raw), &tailored); err != nil {
		return nil, &ParseError{Message: "failed to decode tailored resume response", Cause: err}
	}

	return &tailored, nil
}
