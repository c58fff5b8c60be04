package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatInstructions(t *testing.T) {
	schema := ExtractionSchema{
		Name: "Example",
		Fields: []SchemaField{
			{Name: "title", Type: "\"string\"", Description: "The title", Required: true},
			{Name: "tags", Type: "[\"string\"]"},
		},
	}

	out := schema.FormatInstructions()

	assert.Contains(t, out, "Return ONLY valid JSON")
	assert.Contains(t, out, `"title": "string" (required) // The title`)
	assert.Contains(t, out, `"tags": ["string"]`)
	assert.NotContains(t, out, `"tags": ["string"] (required)`)
	assert.Contains(t, out, "no markdown")
}

func TestPredefinedSchemas_CoverExpectedFields(t *testing.T) {
	tests := []struct {
		name   string
		schema ExtractionSchema
		fields []string
	}{
		{
			name:   "job analysis",
			schema: JobAnalysisSchema(),
			fields: []string{"job_title", "company", "key_skills", "core_responsibilities", "experience_level"},
		},
		{
			name:   "tailored resume",
			schema: TailoredResumeSchema(),
			fields: []string{"professional_summary", "selected_experience", "selected_projects", "relevant_skills", "education", "accomplishments"},
		},
		{
			name:   "master profile",
			schema: MasterProfileSchema(),
			fields: []string{"contact_info", "professional_summary", "skills", "work_experience", "projects", "education", "accomplishments_and_awards"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			instructions := tt.schema.FormatInstructions()
			for _, field := range tt.fields {
				assert.Contains(t, instructions, `"`+field+`"`)
			}
		})
	}
}
