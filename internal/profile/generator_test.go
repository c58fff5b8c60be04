package profile

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/jung-kurt/gofpdf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thechessguy13/resume-tailor-agent/internal/llm"
)

type fakeLLM struct {
	response string
	err      error
	prompts  []string
	tiers    []llm.ModelTier
}

func (f *fakeLLM) GenerateContent(_ context.Context, prompt string, tier llm.ModelTier) (string, error) {
	f.prompts = append(f.prompts, prompt)
	f.tiers = append(f.tiers, tier)
	return f.response, f.err
}

func (f *fakeLLM) GenerateJSON(_ context.Context, prompt string, tier llm.ModelTier) (string, error) {
	f.prompts = append(f.prompts, prompt)
	f.tiers = append(f.tiers, tier)
	return f.response, f.err
}

func (f *fakeLLM) GetModel(llm.ModelTier) string { return "fake-model" }

func (f *fakeLLM) Close() error { return nil }

const draftProfileJSON = `{
  "contact_info": {
    "name": "Jordan Smith",
    "address": "Lisbon, Portugal",
    "email": "jordan@example.com",
    "phone": "",
    "linkedin": "",
    "github": "",
    "portfolio": ""
  },
  "professional_summary": "Backend engineer with five years of Go experience.",
  "skills": {
    "programming_languages": ["Go"],
    "technologies": ["PostgreSQL"],
    "methodologies": ["Agile"]
  },
  "work_experience": [
    {
      "company": "Initech",
      "role": "Backend Engineer",
      "dates": "2020 - 2024",
      "location": "Remote",
      "accomplishments": []
    }
  ],
  "projects": [],
  "education": [
    {"institution": "State University", "degree": "BSc", "dates": "2012 - 2016", "gpa": ""}
  ],
  "accomplishments_and_awards": []
}`

func writeResumePDF(t *testing.T, dir, name, content string) string {
	t.Helper()

	doc := gofpdf.New("P", "mm", "A4", "")
	doc.SetFont("Helvetica", "", 12)
	doc.AddPage()
	doc.MultiCell(0, 10, content, "", "L", false)

	path := filepath.Join(dir, name)
	require.NoError(t, doc.OutputFileAndClose(path))
	return path
}

func TestFindResumePDF_Single(t *testing.T) {
	dir := t.TempDir()
	writeResumePDF(t, dir, "resume.pdf", "Jordan Smith, Backend Engineer")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("not a resume"), 0644))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "archive"), 0755))

	path, err := FindResumePDF(dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "resume.pdf"), path)
}

func TestFindResumePDF_CaseInsensitiveExtension(t *testing.T) {
	dir := t.TempDir()
	writeResumePDF(t, dir, "Resume.PDF", "Jordan Smith")

	path, err := FindResumePDF(dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "Resume.PDF"), path)
}

func TestFindResumePDF_EmptyDirFails(t *testing.T) {
	_, err := FindResumePDF(t.TempDir())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNoResumePDF)
}

func TestFindResumePDF_MultipleFails(t *testing.T) {
	dir := t.TempDir()
	writeResumePDF(t, dir, "resume_v1.pdf", "old")
	writeResumePDF(t, dir, "resume_v2.pdf", "new")

	_, err := FindResumePDF(dir)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMultipleResumePDFs)
	assert.Contains(t, err.Error(), "resume_v1.pdf")
	assert.Contains(t, err.Error(), "resume_v2.pdf")
}

func TestFindResumePDF_MissingDirFails(t *testing.T) {
	_, err := FindResumePDF(filepath.Join(t.TempDir(), "absent"))
	require.Error(t, err)
}

func TestFromResumePDF_Success(t *testing.T) {
	dir := t.TempDir()
	pdfPath := writeResumePDF(t, dir, "resume.pdf",
		"Jordan Smith. Backend Engineer at Initech since 2020. BSc from State University.")

	fake := &fakeLLM{response: draftProfileJSON}
	generator := NewGenerator(fake)

	draft, err := generator.FromResumePDF(context.Background(), pdfPath)
	require.NoError(t, err)

	assert.Equal(t, "Jordan Smith", draft.ContactInfo.Name)
	require.Len(t, draft.WorkExperience, 1)
	assert.Equal(t, "Initech", draft.WorkExperience[0].Company)

	require.Len(t, fake.prompts, 1)
	assert.Contains(t, fake.prompts[0], "Backend Engineer at Initech", "prompt should carry the resume text")
	assert.Contains(t, fake.prompts[0], `"contact_info"`, "prompt should carry the output contract")
	assert.Equal(t, []llm.ModelTier{llm.TierAdvanced}, fake.tiers)
}

func TestFromResumePDF_MissingFileFailsBeforeCall(t *testing.T) {
	fake := &fakeLLM{response: draftProfileJSON}
	generator := NewGenerator(fake)

	_, err := generator.FromResumePDF(context.Background(), filepath.Join(t.TempDir(), "absent.pdf"))
	require.Error(t, err)
	assert.Empty(t, fake.prompts)
}

func TestFromResumePDF_InvalidResponseRejected(t *testing.T) {
	dir := t.TempDir()
	pdfPath := writeResumePDF(t, dir, "resume.pdf", "Jordan Smith, engineer.")

	fake := &fakeLLM{response: `{"contact_info": {"name": "Jordan Smith", "email": ""}}`}
	generator := NewGenerator(fake)

	_, err := generator.FromResumePDF(context.Background(), pdfPath)
	require.Error(t, err)

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
}

func TestFromResumePDF_APIErrorPropagates(t *testing.T) {
	dir := t.TempDir()
	pdfPath := writeResumePDF(t, dir, "resume.pdf", "Jordan Smith, engineer.")

	apiErr := errors.New("quota exceeded")
	generator := NewGenerator(&fakeLLM{err: apiErr})

	_, err := generator.FromResumePDF(context.Background(), pdfPath)
	require.Error(t, err)

	var callErr *APICallError
	require.ErrorAs(t, err, &callErr)
	assert.ErrorIs(t, err, apiErr)
}

func TestNewGeminiGenerator_RequiresAPIKey(t *testing.T) {
	_, err := NewGeminiGenerator(context.Background(), "")
	require.Error(t, err)

	var callErr *APICallError
	require.ErrorAs(t, err, &callErr)
}
