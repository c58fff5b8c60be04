// Package render builds the final resume document from tailored content.
package render

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/jung-kurt/gofpdf"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/thechessguy13/resume-tailor-agent/internal/types"
)

// DocumentRenderer renders a tailored resume into a document on disk and
// returns the path of the written file.
type DocumentRenderer interface {
	Render(tailored *types.TailoredResume, profile *types.MasterProfile, analysis *types.JobAnalysis, outDir string) (string, error)
}

// PDFRenderer renders tailored resume content as a single-column A4 PDF.
type PDFRenderer struct{}

// NewPDFRenderer creates a PDFRenderer.
func NewPDFRenderer() *PDFRenderer {
	return &PDFRenderer{}
}

// bulletPrefix is cp1252-representable and mapped by the document's
// unicode translator.
const bulletPrefix = "• "

// OutputFilename builds the file name for a tailored resume: the company name
// lowercased with spaces and slashes replaced by hyphens, plus today's date.
func OutputFilename(company string, now time.Time) string {
	sanitized := strings.ToLower(company)
	sanitized = strings.ReplaceAll(sanitized, " ", "-")
	sanitized = strings.ReplaceAll(sanitized, "/", "-")
	return fmt.Sprintf("resume-%s-%s.pdf", sanitized, now.Format("2006-01-02"))
}

// Render writes the tailored resume as a PDF under outDir and returns the
// full path of the generated file. The file name is derived from the company
// in the job analysis, so resumes for different postings never collide.
func (r *PDFRenderer) Render(tailored *types.TailoredResume, profile *types.MasterProfile, analysis *types.JobAnalysis, outDir string) (string, error) {
	if tailored == nil || profile == nil || analysis == nil {
		return "", &RenderError{Message: "tailored content, master profile, and job analysis are all required"}
	}
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return "", &RenderError{Message: fmt.Sprintf("failed to create output directory %s", outDir), Cause: err}
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(19, 13, 19)
	pdf.SetAutoPageBreak(true, 13)
	pdf.AddPage()
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pageW, _ := pdf.GetPageSize()
	left, _, right, _ := pdf.GetMargins()
	contentW := pageW - left - right

	writeHeader(pdf, tr, &profile.ContactInfo)

	sectionHeading(pdf, "PROFESSIONAL SUMMARY")
	pdf.MultiCell(0, 5, tr(tailored.ProfessionalSummary), "", "L", false)

	sectionHeading(pdf, "EXPERIENCE")
	for _, job := range tailored.SelectedExperience {
		pdf.Ln(2)
		pdf.SetFont("Helvetica", "B", 10)
		dateW := pdf.GetStringWidth(job.Dates) + 2
		title := fmt.Sprintf("%s – %s", job.Role, job.Company)
		pdf.CellFormat(contentW-dateW, 5, tr(title), "", 0, "L", false, 0, "")
		pdf.CellFormat(dateW, 5, tr(job.Dates), "", 1, "R", false, 0, "")
		pdf.SetFont("Helvetica", "", 10)
		for _, point := range job.RewrittenBulletPoints {
			pdf.MultiCell(0, 5, tr(bulletPrefix+point), "", "L", false)
		}
	}

	sectionHeading(pdf, "SKILLS")
	for _, category := range sortedKeys(tailored.RelevantSkills) {
		items := tailored.RelevantSkills[category]
		if len(items) == 0 {
			continue
		}
		pdf.SetFont("Helvetica", "B", 10)
		pdf.Write(5, tr(bulletPrefix+categoryLabel(category)+": "))
		pdf.SetFont("Helvetica", "", 10)
		pdf.Write(5, tr(strings.Join(items, ", ")))
		pdf.Ln(5)
	}

	if len(tailored.SelectedProjects) > 0 {
		sectionHeading(pdf, "PROJECTS")
		for _, project := range tailored.SelectedProjects {
			pdf.Write(5, tr(bulletPrefix))
			if project.Link != "" {
				pdf.WriteLinkString(5, tr(project.Name), project.Link)
			} else {
				pdf.Write(5, tr(project.Name))
			}
			pdf.Write(5, tr(" - "+project.RewrittenDescription))
			pdf.Ln(5)
		}
	}

	if len(tailored.Education) > 0 {
		sectionHeading(pdf, "EDUCATION")
		for _, edu := range tailored.Education {
			pdf.Ln(2)
			pdf.SetFont("Helvetica", "B", 10)
			dateW := pdf.GetStringWidth(edu.Dates) + 2
			pdf.CellFormat(contentW-dateW, 5, tr(edu.Institution), "", 0, "L", false, 0, "")
			pdf.CellFormat(dateW, 5, tr(edu.Dates), "", 1, "R", false, 0, "")
			pdf.SetFont("Helvetica", "I", 10)
			pdf.Write(5, tr(edu.Degree))
			if edu.GPA != "" {
				pdf.SetFont("Helvetica", "", 10)
				pdf.Write(5, tr(fmt.Sprintf(" (GPA: %s)", edu.GPA)))
			}
			pdf.Ln(5)
			if len(edu.RelevantCourses) > 0 {
				pdf.SetFont("Helvetica", "B", 10)
				pdf.Write(5, tr("Relevant Courses: "))
				pdf.SetFont("Helvetica", "", 10)
				pdf.Write(5, tr(strings.Join(edu.RelevantCourses, ", ")))
				pdf.Ln(5)
			}
		}
	}

	if len(tailored.Accomplishments) > 0 {
		sectionHeading(pdf, "ACCOMPLISHMENTS & AWARDS")
		for _, item := range tailored.Accomplishments {
			pdf.MultiCell(0, 5, tr(bulletPrefix+item), "", "L", false)
		}
	}

	outPath := filepath.Join(outDir, OutputFilename(analysis.Company, time.Now()))
	if err := pdf.OutputFileAndClose(outPath); err != nil {
		return "", &RenderError{Message: fmt.Sprintf("failed to write PDF to %s", outPath), Cause: err}
	}
	return outPath, nil
}

// writeHeader centers the candidate's name and contact line at the top of
// the first page.
func writeHeader(pdf *gofpdf.Fpdf, tr func(string) string, contact *types.ContactInfo) {
	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(0, 7, tr(contact.Name), "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	if contact.Address != "" {
		pdf.CellFormat(0, 5, tr(contact.Address), "", 1, "C", false, 0, "")
	}
	parts := make([]string, 0, 3)
	for _, part := range []string{contact.Email, contact.Phone, contact.LinkedIn} {
		if part != "" {
			parts = append(parts, part)
		}
	}
	if len(parts) > 0 {
		pdf.CellFormat(0, 5, tr(strings.Join(parts, " | ")), "", 1, "C", false, 0, "")
	}
	pdf.Ln(2)
}

// sectionHeading writes a bold heading with a bottom rule and restores the
// body font afterwards.
func sectionHeading(pdf *gofpdf.Fpdf, title string) {
	pdf.Ln(3)
	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(0, 6, title, "B", 1, "L", false, 0, "")
	pdf.Ln(1)
	pdf.SetFont("Helvetica", "", 10)
}

// categoryLabel turns a snake_case skill category key into a display label.
func categoryLabel(category string) string {
	caser := cases.Title(language.English)
	return caser.String(strings.ReplaceAll(category, "_", " "))
}

// sortedKeys returns skill categories in a stable order. Map iteration order
// is random, which would reshuffle the skills section on every run.
func sortedKeys(skills map[string][]string) []string {
	keys := make([]string, 0, len(skills))
	for key := range skills {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
