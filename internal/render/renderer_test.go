package render

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thechessguy13/resume-tailor-agent/internal/ingestion"
	"github.com/thechessguy13/resume-tailor-agent/internal/types"
)

func tailoredFixture() *types.TailoredResume {
	return &types.TailoredResume{
		ProfessionalSummary: "Backend engineer with eight years of Go and distributed systems experience.",
		SelectedExperience: []types.TailoredExperience{
			{
				Company: "Initech",
				Role:    "Senior Software Engineer",
				Dates:   "2020 - Present",
				RewrittenBulletPoints: []string{
					"Led migration of the billing pipeline to event-driven processing, cutting settlement time by 40%.",
					"Mentored four engineers on service reliability practices.",
				},
			},
		},
		SelectedProjects: []types.TailoredProject{
			{Name: "chessviz", RewrittenDescription: "Opening tree explorer used by two thousand players.", Link: "https://github.com/example/chessviz"},
		},
		RelevantSkills: map[string][]string{
			"programming_languages": {"Go", "Python"},
			"technologies":          {"PostgreSQL", "Kafka"},
		},
		Education: []types.EducationEntry{
			{Institution: "State University", Degree: "BSc Computer Science", Dates: "2012 - 2016", GPA: "3.8"},
		},
		Accomplishments: []string{"Speaker at GopherCon 2024."},
	}
}

func profileFixture() *types.MasterProfile {
	return &types.MasterProfile{
		ContactInfo: types.ContactInfo{
			Name:     "Alex Doe",
			Email:    "alex@example.com",
			Phone:    "+1 555 0100",
			LinkedIn: "linkedin.com/in/alexdoe",
		},
	}
}

func analysisFixture() *types.JobAnalysis {
	return &types.JobAnalysis{JobTitle: "Senior Software Engineer", Company: "Initech"}
}

func TestOutputFilename(t *testing.T) {
	date := time.Date(2025, 3, 14, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		company string
		want    string
	}{
		{name: "simple name", company: "Initech", want: "resume-initech-2025-03-14.pdf"},
		{name: "spaces become hyphens", company: "Dunder Mifflin", want: "resume-dunder-mifflin-2025-03-14.pdf"},
		{name: "slashes become hyphens", company: "Acme/Globex", want: "resume-acme-globex-2025-03-14.pdf"},
		{name: "unknown company placeholder", company: types.UnknownCompany, want: "resume-unknown-company-2025-03-14.pdf"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, OutputFilename(tt.company, date))
		})
	}
}

func TestRender_WritesPDF(t *testing.T) {
	outDir := t.TempDir()
	renderer := NewPDFRenderer()

	path, err := renderer.Render(tailoredFixture(), profileFixture(), analysisFixture(), outDir)
	require.NoError(t, err)

	assert.Equal(t, outDir, filepath.Dir(path))
	base := filepath.Base(path)
	assert.True(t, strings.HasPrefix(base, "resume-initech-"), "unexpected file name %s", base)
	assert.True(t, strings.HasSuffix(base, ".pdf"), "unexpected file name %s", base)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	require.NotEmpty(t, raw)
	assert.True(t, strings.HasPrefix(string(raw), "%PDF-"), "output does not start with a PDF header")
}

func TestRender_ContentSurvivesExtraction(t *testing.T) {
	renderer := NewPDFRenderer()

	path, err := renderer.Render(tailoredFixture(), profileFixture(), analysisFixture(), t.TempDir())
	require.NoError(t, err)

	text, err := ingestion.DocumentText(path)
	require.NoError(t, err)

	assert.Contains(t, text, "Alex Doe")
	assert.Contains(t, text, "PROFESSIONAL SUMMARY")
	assert.Contains(t, text, "EXPERIENCE")
	assert.Contains(t, text, "Initech")
	assert.Contains(t, text, "Programming Languages")
	assert.Contains(t, text, "State University")
	assert.Contains(t, text, "GopherCon")
}

func TestRender_SkipsEmptyOptionalSections(t *testing.T) {
	tailored := tailoredFixture()
	tailored.SelectedProjects = nil
	tailored.Education = nil
	tailored.Accomplishments = nil
	renderer := NewPDFRenderer()

	path, err := renderer.Render(tailored, profileFixture(), analysisFixture(), t.TempDir())
	require.NoError(t, err)

	text, err := ingestion.DocumentText(path)
	require.NoError(t, err)
	assert.NotContains(t, text, "PROJECTS")
	assert.NotContains(t, text, "EDUCATION")
	assert.NotContains(t, text, "ACCOMPLISHMENTS")
	assert.Contains(t, text, "EXPERIENCE")
}

func TestRender_CreatesOutputDir(t *testing.T) {
	outDir := filepath.Join(t.TempDir(), "out", "resumes")
	renderer := NewPDFRenderer()

	path, err := renderer.Render(tailoredFixture(), profileFixture(), analysisFixture(), outDir)
	require.NoError(t, err)

	_, err = os.Stat(path)
	require.NoError(t, err)
}

func TestRender_NilInputsFail(t *testing.T) {
	renderer := NewPDFRenderer()

	_, err := renderer.Render(nil, profileFixture(), analysisFixture(), t.TempDir())
	var renderErr *RenderError
	require.ErrorAs(t, err, &renderErr)

	_, err = renderer.Render(tailoredFixture(), nil, analysisFixture(), t.TempDir())
	assert.Error(t, err)

	_, err = renderer.Render(tailoredFixture(), profileFixture(), nil, t.TempDir())
	assert.Error(t, err)
}

func TestCategoryLabel(t *testing.T) {
	assert.Equal(t, "Programming Languages", categoryLabel("programming_languages"))
	assert.Equal(t, "Technologies", categoryLabel("technologies"))
}
