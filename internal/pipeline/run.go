// Package pipeline provides the high-level orchestration for the resume tailoring process.
package pipeline

import (
	"context"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/thechessguy13/resume-tailor-agent/internal/analysis"
	"github.com/thechessguy13/resume-tailor-agent/internal/ingestion"
	"github.com/thechessguy13/resume-tailor-agent/internal/observability"
	"github.com/thechessguy13/resume-tailor-agent/internal/profile"
	"github.com/thechessguy13/resume-tailor-agent/internal/render"
	"github.com/thechessguy13/resume-tailor-agent/internal/types"
)

// Step identifiers attached to progress events.
const (
	StepExtraction = "job_extraction"
	StepProfile    = "master_profile"
	StepAnalysis   = "job_analysis"
	StepTailoring  = "tailored_content"
	StepRendering  = "rendered_resume"
)

// Event categories group steps for consumers that filter progress streams.
const (
	CategoryIngestion = "ingestion"
	CategoryAnalysis  = "analysis"
	CategoryRendering = "rendering"
)

// ProgressEvent represents a progress update during pipeline execution
type ProgressEvent struct {
	Step     string `json:"step"`
	Category string `json:"category"`
	Message  string `json:"message"`
	RunID    string `json:"run_id,omitempty"`
	Content  any    `json:"content,omitempty"`
}

// ProgressCallback is called when pipeline progress occurs
type ProgressCallback func(event ProgressEvent)

// JobExtractor pulls job posting text out of a source descriptor.
type JobExtractor interface {
	Extract(ctx context.Context, src ingestion.Source) (*types.ScrapedContent, error)
}

// RunOptions holds configuration and collaborators for running the pipeline
type RunOptions struct {
	// Source selects where the job posting comes from.
	Source ingestion.Source
	// ProfilePath locates the master profile JSON.
	ProfilePath string
	// OutputDir receives the rendered resume.
	OutputDir string

	Extractor JobExtractor
	Analyzer  analysis.Analyzer
	Renderer  render.DocumentRenderer

	Verbose    bool
	OnProgress ProgressCallback
}

// Result summarizes a completed pipeline run.
type Result struct {
	RunID      string
	OutputPath string
	Analysis   *types.JobAnalysis
	Tailored   *types.TailoredResume
}

// emitProgress calls the progress callback if configured
func emitProgress(opts *RunOptions, runID, step, category, message string, content any) {
	if opts.OnProgress != nil {
		opts.OnProgress(ProgressEvent{
			Step:     step,
			Category: category,
			Message:  message,
			RunID:    runID,
			Content:  content,
		})
	}
}

// Run orchestrates the full tailoring pipeline: extract the job posting and
// load the master profile concurrently, then analyze, tailor, and render.
func Run(ctx context.Context, opts RunOptions) (*Result, error) {
	if opts.Extractor == nil || opts.Analyzer == nil || opts.Renderer == nil {
		return nil, fmt.Errorf("pipeline requires an extractor, an analyzer, and a renderer")
	}

	printer := observability.NewPrinter(os.Stdout)
	runID := uuid.New().String()
	started := time.Now()
	log.Info().Str("run_id", runID).Str("source", string(opts.Source.Kind)).Msg("starting tailoring pipeline")

	// Extraction and profile load have no data dependency on each other, so
	// they run as parallel branches.
	fmt.Printf("Step 1/4: Extracting job posting and loading master profile...\n")

	g, gCtx := errgroup.WithContext(ctx)

	var content *types.ScrapedContent
	var masterProfile *types.MasterProfile
	var contentMu, profileMu sync.Mutex // Protect result assignments

	g.Go(func() error {
		extracted, err := opts.Extractor.Extract(gCtx, opts.Source)
		if err != nil {
			return fmt.Errorf("job extraction failed: %w", err)
		}
		contentMu.Lock()
		content = extracted
		contentMu.Unlock()
		return nil
	})

	g.Go(func() error {
		loaded, err := profile.Load(opts.ProfilePath)
		if err != nil {
			return fmt.Errorf("master profile load failed: %w", err)
		}
		profileMu.Lock()
		masterProfile = loaded
		profileMu.Unlock()
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	if opts.Verbose {
		printer.PrintExtractedJob(content, sourceLabel(opts.Source))
		printer.PrintMasterProfile(masterProfile)
	}
	emitProgress(&opts, runID, StepExtraction, CategoryIngestion,
		fmt.Sprintf("Extracted %d characters from %s source", len(content.BodyText), opts.Source.Kind), nil)
	emitProgress(&opts, runID, StepProfile, CategoryIngestion,
		fmt.Sprintf("Loaded master profile for %s", masterProfile.ContactInfo.Name), nil)

	fmt.Printf("Step 2/4: Analyzing job posting...\n")
	jobAnalysis, err := opts.Analyzer.AnalyzeJob(ctx, content.BodyText)
	if err != nil {
		return nil, fmt.Errorf("job analysis failed: %w", err)
	}
	// The DOM-scraped company name backstops the analyzer when the posting
	// text itself never names the employer.
	if jobAnalysis.Company == "" && content.CompanyName != "" {
		jobAnalysis.Company = content.CompanyName
	}
	if opts.Verbose {
		printer.PrintJobAnalysis(jobAnalysis)
	}
	emitProgress(&opts, runID, StepAnalysis, CategoryAnalysis,
		fmt.Sprintf("Analyzed posting: %s at %s", jobAnalysis.JobTitle, jobAnalysis.Company), jobAnalysis)

	fmt.Printf("Step 3/4: Tailoring resume content...\n")
	tailored, err := opts.Analyzer.TailorContent(ctx, jobAnalysis, masterProfile)
	if err != nil {
		return nil, fmt.Errorf("content tailoring failed: %w", err)
	}
	if opts.Verbose {
		printer.PrintTailoredResume(tailored)
	}
	emitProgress(&opts, runID, StepTailoring, CategoryAnalysis,
		fmt.Sprintf("Selected %d experience entries", len(tailored.SelectedExperience)), tailored)

	fmt.Printf("Step 4/4: Rendering resume PDF...\n")
	outputPath, err := opts.Renderer.Render(tailored, masterProfile, jobAnalysis, opts.OutputDir)
	if err != nil {
		return nil, fmt.Errorf("rendering resume failed: %w", err)
	}
	emitProgress(&opts, runID, StepRendering, CategoryRendering,
		fmt.Sprintf("Wrote %s", outputPath), nil)

	if opts.Verbose {
		printer.PrintRunResult(outputPath)
	} else {
		fmt.Printf("Done! Resume written to %s\n", outputPath)
	}
	log.Info().Str("run_id", runID).Dur("elapsed", time.Since(started)).Msg("pipeline complete")

	return &Result{
		RunID:      runID,
		OutputPath: outputPath,
		Analysis:   jobAnalysis,
		Tailored:   tailored,
	}, nil
}

// sourceLabel picks a short description of the source for verbose output.
// Text sources carry the whole posting in Value, which is too long to echo.
func sourceLabel(src ingestion.Source) string {
	if src.Kind == ingestion.SourceText {
		return string(ingestion.SourceText)
	}
	return src.Value
}
