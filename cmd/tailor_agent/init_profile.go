package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/thechessguy13/resume-tailor-agent/internal/config"
	"github.com/thechessguy13/resume-tailor-agent/internal/profile"
)

var initProfileCmd = &cobra.Command{
	Use:   "init-profile",
	Short: "Generate a master profile draft from a source resume PDF",
	Long: `Reads the single PDF in the source directory, extracts its text, and builds
a structured master profile draft with Gemini. Review the draft by hand and
fill in anything the model missed before running the pipeline; tailoring
refuses profiles with missing required fields.`,
	RunE: runInitProfile,
}

var (
	initSourceDir string
	initOutPath   string
	initForce     bool
)

func init() {
	initProfileCmd.Flags().StringVarP(&initSourceDir, "source", "s", profile.DefaultSourceDir, "Directory containing exactly one source resume PDF")
	initProfileCmd.Flags().StringVarP(&initOutPath, "out", "o", profile.DefaultPath, "Where to write the generated profile JSON")
	initProfileCmd.Flags().BoolVar(&initForce, "force", false, "Overwrite an existing profile file")

	rootCmd.AddCommand(initProfileCmd)
}

func runInitProfile(_ *cobra.Command, _ []string) error {
	ctx := context.Background()

	if profile.Exists(initOutPath) && !initForce {
		return fmt.Errorf("%s already exists; pass --force to overwrite", initOutPath)
	}

	pdfPath, err := profile.FindResumePDF(initSourceDir)
	if err != nil {
		return err
	}

	cfg := config.FromEnv()
	apiKey, err := cfg.RequireGeminiKey()
	if err != nil {
		return err
	}

	generator, err := profile.NewGeminiGenerator(ctx, apiKey)
	if err != nil {
		return fmt.Errorf("failed to create profile generator: %w", err)
	}
	defer generator.Close()

	draft, err := generator.FromResumePDF(ctx, pdfPath)
	if err != nil {
		return fmt.Errorf("failed to generate profile: %w", err)
	}

	if err := profile.Save(initOutPath, draft); err != nil {
		return fmt.Errorf("failed to save profile: %w", err)
	}

	fmt.Fprintf(os.Stdout, "Generated master profile draft: %s\n", initOutPath)
	fmt.Fprintf(os.Stdout, "Review it by hand before running the pipeline.\n")

	return nil
}
