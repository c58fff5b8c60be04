package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thechessguy13/resume-tailor-agent/internal/analysis"
	"github.com/thechessguy13/resume-tailor-agent/internal/config"
	"github.com/thechessguy13/resume-tailor-agent/internal/ingestion"
	"github.com/thechessguy13/resume-tailor-agent/internal/pipeline"
	"github.com/thechessguy13/resume-tailor-agent/internal/profile"
	"github.com/thechessguy13/resume-tailor-agent/internal/render"
	"github.com/thechessguy13/resume-tailor-agent/internal/scrape"
	"github.com/thechessguy13/resume-tailor-agent/internal/session"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the full tailoring pipeline end-to-end",
	Long: `Extracts the job posting, analyzes it, selects and rewrites master profile
content to match, and renders the tailored resume PDF.

The posting source is exactly one of --text, --url, or --file. LinkedIn URLs
are scraped through a logged-in browser session using LINKEDIN_EMAIL and
LINKEDIN_PASSWORD from the environment; other URLs are fetched directly
first, falling back to the browser when the direct fetch fails.`,
	RunE: runTailorPipeline,
}

var (
	runText     string
	runURL      string
	runFile     string
	runProfile  string
	runOut      string
	runHeadless bool
	runVerbose  bool
)

func init() {
	runCmd.Flags().StringVar(&runText, "text", "", "Literal job posting text (mutually exclusive with --url and --file)")
	runCmd.Flags().StringVarP(&runURL, "url", "u", "", "URL to fetch the job posting from")
	runCmd.Flags().StringVarP(&runFile, "file", "f", "", "Path to a PDF job posting")
	runCmd.Flags().StringVarP(&runProfile, "profile", "p", profile.DefaultPath, "Path to the master profile JSON")
	runCmd.Flags().StringVarP(&runOut, "out", "o", "", "Output directory for the rendered resume (defaults to OUTPUT_DIR)")
	runCmd.Flags().BoolVar(&runHeadless, "headless", false, "Run the scraping browser without a visible window")
	runCmd.Flags().BoolVarP(&runVerbose, "verbose", "v", false, "Print detailed progress information")

	rootCmd.AddCommand(runCmd)
}

// sourceFromFlags validates the mutually exclusive source flags and builds
// the source descriptor.
func sourceFromFlags(text, url, file string) (ingestion.Source, error) {
	set := 0
	for _, v := range []string{text, url, file} {
		if v != "" {
			set++
		}
	}
	if set == 0 {
		return ingestion.Source{}, fmt.Errorf("one of --text, --url, or --file must be provided")
	}
	if set > 1 {
		return ingestion.Source{}, fmt.Errorf("--text, --url, and --file are mutually exclusive; provide only one")
	}
	switch {
	case text != "":
		return ingestion.Source{Kind: ingestion.SourceText, Value: text}, nil
	case url != "":
		return ingestion.Source{Kind: ingestion.SourceURL, Value: url}, nil
	default:
		return ingestion.Source{Kind: ingestion.SourceFile, Value: file}, nil
	}
}

// newExtractor wires the URL strategies the orchestrator chooses between.
func newExtractor(cfg *config.Config, headless bool) *ingestion.Orchestrator {
	scraper := scrape.New(scrape.Config{
		Credentials: scrape.Credentials{Email: cfg.LinkedInEmail, Password: cfg.LinkedInPassword},
		Sessions:    session.New(cfg.SessionDir),
		Headless:    headless,
	})
	return ingestion.NewOrchestrator(&ingestion.HTTPFetcher{}, scraper)
}

func runTailorPipeline(_ *cobra.Command, _ []string) error {
	ctx := context.Background()

	src, err := sourceFromFlags(runText, runURL, runFile)
	if err != nil {
		return err
	}

	cfg := config.FromEnv()
	if err := cfg.Validate(); err != nil {
		return err
	}
	outDir := runOut
	if outDir == "" {
		outDir = cfg.OutputDir
	}

	apiKey, err := cfg.RequireOpenAIKey()
	if err != nil {
		return err
	}
	analyzer, err := analysis.NewOpenAIAnalyzer(apiKey)
	if err != nil {
		return fmt.Errorf("failed to create analyzer: %w", err)
	}
	defer analyzer.Close()

	opts := pipeline.RunOptions{
		Source:      src,
		ProfilePath: runProfile,
		OutputDir:   outDir,
		Extractor:   newExtractor(cfg, runHeadless),
		Analyzer:    analyzer,
		Renderer:    render.NewPDFRenderer(),
		Verbose:     runVerbose,
	}

	_, err = pipeline.Run(ctx, opts)
	return err
}
