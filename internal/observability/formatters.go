// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/thechessguy13/resume-tailor-agent/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
	// previewLength is how much of a long text field is shown before truncation
	previewLength = 50
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// truncate shortens s to previewLength with an ellipsis marker.
func truncate(s string) string {
	if len(s) > previewLength {
		return s[:previewLength-3] + "..."
	}
	return s
}

// PrintExtractedJob outputs a summary of the job posting text pulled from a
// source, before any analysis has run.
func (p *Printer) PrintExtractedJob(content *types.ScrapedContent, source string) {
	if content == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Company:  %s\n", content.CompanyName))
	sb.WriteString(fmt.Sprintf("Source:   %s\n", source))
	sb.WriteString(fmt.Sprintf("Length:   %d characters\n", len(content.BodyText)))
	sb.WriteString("\n")

	preview := content.BodyText
	if idx := strings.IndexByte(preview, '\n'); idx >= 0 {
		preview = preview[:idx]
	}
	sb.WriteString(fmt.Sprintf("Preview:  %s", truncate(preview)))

	p.printBox("EXTRACTED JOB POSTING", sb.String())
}

// PrintJobAnalysis outputs a human-readable summary of the analyzed job posting.
func (p *Printer) PrintJobAnalysis(analysis *types.JobAnalysis) {
	if analysis == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Company:  %s\n", analysis.Company))
	sb.WriteString(fmt.Sprintf("Role:     %s\n", analysis.JobTitle))
	sb.WriteString(fmt.Sprintf("Level:    %s\n", analysis.ExperienceLevel))
	sb.WriteString("\n")

	if len(analysis.KeySkills) > 0 {
		sb.WriteString("Key Skills:\n")
		count := min(len(analysis.KeySkills), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", analysis.KeySkills[i]))
		}
		if len(analysis.KeySkills) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(analysis.KeySkills)-maxItemsToShow))
		}
		sb.WriteString("\n")
	}

	if len(analysis.CoreResponsibilities) > 0 {
		sb.WriteString("Core Responsibilities:\n")
		count := min(len(analysis.CoreResponsibilities), 3)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", truncate(analysis.CoreResponsibilities[i])))
		}
		if len(analysis.CoreResponsibilities) > 3 {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(analysis.CoreResponsibilities)-3))
		}
	}

	p.printBox("JOB ANALYSIS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintMasterProfile outputs a summary of the loaded master profile.
func (p *Printer) PrintMasterProfile(profile *types.MasterProfile) {
	if profile == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Name:     %s\n", profile.ContactInfo.Name))
	sb.WriteString(fmt.Sprintf("Email:    %s\n", profile.ContactInfo.Email))
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("Work experience entries:  %d\n", len(profile.WorkExperience)))
	sb.WriteString(fmt.Sprintf("Projects:                 %d\n", len(profile.Projects)))
	sb.WriteString(fmt.Sprintf("Education entries:        %d", len(profile.Education)))

	p.printBox("MASTER PROFILE", sb.String())
}

// PrintTailoredResume outputs the selected and rewritten resume content.
func (p *Printer) PrintTailoredResume(tailored *types.TailoredResume) {
	if tailored == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Summary:  %s\n", truncate(tailored.ProfessionalSummary)))
	sb.WriteString("\n")

	if len(tailored.SelectedExperience) > 0 {
		sb.WriteString("Selected Experience:\n")
		for _, job := range tailored.SelectedExperience {
			sb.WriteString(fmt.Sprintf("  • %s, %s (%d bullets)\n", job.Role, job.Company, len(job.RewrittenBulletPoints)))
		}
		sb.WriteString("\n")
	}

	if len(tailored.SelectedProjects) > 0 {
		sb.WriteString("Selected Projects:\n")
		for _, project := range tailored.SelectedProjects {
			sb.WriteString(fmt.Sprintf("  • %s\n", project.Name))
		}
		sb.WriteString("\n")
	}

	if len(tailored.RelevantSkills) > 0 {
		sb.WriteString(fmt.Sprintf("Skill categories: %d\n", len(tailored.RelevantSkills)))
	}
	sb.WriteString(fmt.Sprintf("Education entries: %d", len(tailored.Education)))

	p.printBox("TAILORED CONTENT", sb.String())
}

// PrintRunResult outputs the final artifact path once the pipeline finishes.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintRunResult(outputPath string) {
	fmt.Fprintf(p.out, "┌%s┐\n", strings.Repeat("─", boxWidth-2))
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, "✅ RESUME GENERATED")
	line := outputPath
	if len(line) > boxWidth-4 {
		line = "..." + line[len(line)-(boxWidth-7):]
	}
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	fmt.Fprintf(p.out, "└%s┘\n", strings.Repeat("─", boxWidth-2))
}
