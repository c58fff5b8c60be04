package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/thechessguy13/resume-tailor-agent/internal/config"
	"github.com/thechessguy13/resume-tailor-agent/internal/fetch"
	"github.com/thechessguy13/resume-tailor-agent/internal/ingestion"
)

var fetchJobCmd = &cobra.Command{
	Use:   "fetch-job",
	Short: "Extract a job posting and save the text with metadata",
	Long: `Extract a job posting from literal text, a PDF, or a URL and write the
posting text plus provenance metadata to the output directory, without
running any analysis. Useful for inspecting what the scraper captured or for
feeding the same posting into repeated runs via --text.`,
	RunE: runFetchJob,
}

var (
	fetchText     string
	fetchURL      string
	fetchFile     string
	fetchOut      string
	fetchHeadless bool
)

func init() {
	fetchJobCmd.Flags().StringVar(&fetchText, "text", "", "Literal job posting text (mutually exclusive with --url and --file)")
	fetchJobCmd.Flags().StringVarP(&fetchURL, "url", "u", "", "URL to fetch the job posting from")
	fetchJobCmd.Flags().StringVarP(&fetchFile, "file", "f", "", "Path to a PDF job posting")
	fetchJobCmd.Flags().StringVarP(&fetchOut, "out", "o", "", "Output directory (defaults to OUTPUT_DIR)")
	fetchJobCmd.Flags().BoolVar(&fetchHeadless, "headless", false, "Run the scraping browser without a visible window")

	rootCmd.AddCommand(fetchJobCmd)
}

func runFetchJob(_ *cobra.Command, _ []string) error {
	ctx := context.Background()

	src, err := sourceFromFlags(fetchText, fetchURL, fetchFile)
	if err != nil {
		return err
	}

	cfg := config.FromEnv()
	if err := cfg.Validate(); err != nil {
		return err
	}
	outDir := fetchOut
	if outDir == "" {
		outDir = cfg.OutputDir
	}

	content, err := newExtractor(cfg, fetchHeadless).Extract(ctx, src)
	if err != nil {
		return fmt.Errorf("failed to extract job posting: %w", err)
	}

	metadata := ingestion.NewMetadata(content.BodyText, src)
	metadata.Company = content.CompanyName
	if src.Kind == ingestion.SourceURL {
		metadata.Platform = string(fetch.DetectPlatform(src.Value))
	}

	if err := ingestion.WriteOutput(outDir, content.BodyText, metadata); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	fmt.Fprintf(os.Stdout, "Successfully extracted job posting\n")
	fmt.Fprintf(os.Stdout, "Posting text: %s/job_posting.txt\n", outDir)
	fmt.Fprintf(os.Stdout, "Metadata: %s/job_posting.meta.json\n", outDir)

	return nil
}
