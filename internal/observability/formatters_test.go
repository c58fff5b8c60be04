package observability

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/thechessguy13/resume-tailor-agent/internal/types"
)

func TestPrintExtractedJob(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	content := &types.ScrapedContent{
		CompanyName: "Acme Corp",
		BodyText:    "We are hiring a Senior Engineer.\nRemote friendly.",
	}

	p.PrintExtractedJob(content, "https://acme.example/jobs/42")
	output := buf.String()

	assert.Contains(t, output, "EXTRACTED JOB POSTING")
	assert.Contains(t, output, "Acme Corp")
	assert.Contains(t, output, "https://acme.example/jobs/42")
	assert.Contains(t, output, "We are hiring a Senior Engineer.")
	assert.NotContains(t, output, "Remote friendly")
}

func TestPrintExtractedJob_Nil(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintExtractedJob(nil, "stdin")

	assert.Empty(t, buf.String())
}

func TestPrintJobAnalysis(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	analysis := &types.JobAnalysis{
		JobTitle:        "Senior Engineer",
		Company:         "Acme Corp",
		ExperienceLevel: "Senior",
		KeySkills:       []string{"Go", "Kubernetes", "PostgreSQL", "Kafka", "Redis", "Terraform"},
		CoreResponsibilities: []string{
			"Design and operate backend services",
			"Mentor junior engineers",
		},
	}

	p.PrintJobAnalysis(analysis)
	output := buf.String()

	assert.Contains(t, output, "JOB ANALYSIS")
	assert.Contains(t, output, "Acme Corp")
	assert.Contains(t, output, "Senior Engineer")
	assert.Contains(t, output, "Go")
	assert.Contains(t, output, "... and 1 more")
	assert.Contains(t, output, "Mentor junior engineers")
	assert.NotContains(t, output, "Terraform")
}

func TestPrintJobAnalysis_Nil(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintJobAnalysis(nil)

	assert.Empty(t, buf.String())
}

func TestPrintMasterProfile(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	profile := &types.MasterProfile{
		ContactInfo: types.ContactInfo{Name: "Alex Doe", Email: "alex@example.com"},
		WorkExperience: []types.WorkExperience{
			{Company: "Initech", Role: "Engineer"},
			{Company: "Globex", Role: "Engineer"},
		},
		Projects:  []types.Project{{Name: "chessviz"}},
		Education: []types.EducationEntry{{Institution: "State University"}},
	}

	p.PrintMasterProfile(profile)
	output := buf.String()

	assert.Contains(t, output, "MASTER PROFILE")
	assert.Contains(t, output, "Alex Doe")
	assert.Contains(t, output, "alex@example.com")
	assert.Contains(t, output, "2")
}

func TestPrintTailoredResume(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	tailored := &types.TailoredResume{
		ProfessionalSummary: "Backend engineer focused on reliability.",
		SelectedExperience: []types.TailoredExperience{
			{Company: "Initech", Role: "Senior Engineer", RewrittenBulletPoints: []string{"a", "b", "c"}},
		},
		SelectedProjects: []types.TailoredProject{{Name: "chessviz"}},
		RelevantSkills:   map[string][]string{"languages": {"Go"}},
		Education:        []types.EducationEntry{{Institution: "State University"}},
	}

	p.PrintTailoredResume(tailored)
	output := buf.String()

	assert.Contains(t, output, "TAILORED CONTENT")
	assert.Contains(t, output, "Backend engineer focused on reliability.")
	assert.Contains(t, output, "Senior Engineer, Initech (3 bullets)")
	assert.Contains(t, output, "chessviz")
	assert.Contains(t, output, "Skill categories: 1")
}

func TestPrintTailoredResume_TruncatesLongSummary(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	tailored := &types.TailoredResume{
		ProfessionalSummary: strings.Repeat("engineer ", 30),
	}

	p.PrintTailoredResume(tailored)

	assert.Contains(t, buf.String(), "...")
}

func TestPrintRunResult(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintRunResult("output/resume-acme-2025-03-14.pdf")
	output := buf.String()

	assert.Contains(t, output, "RESUME GENERATED")
	assert.Contains(t, output, "resume-acme-2025-03-14.pdf")
}

func TestPrintRunResult_TruncatesLongPathFromLeft(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	long := "/very/deeply/nested/output/directory/structure/full/of/segments/resume-acme-2025-03-14.pdf"
	p.PrintRunResult(long)
	output := buf.String()

	// The tail of the path is what identifies the file, so truncation
	// keeps the end and drops the front.
	assert.Contains(t, output, "resume-acme-2025-03-14.pdf")
	assert.Contains(t, output, "...")
}
