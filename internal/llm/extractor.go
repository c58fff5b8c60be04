// Package llm - extractor.go defines the JSON output contracts sent to LLMs.
package llm

import (
	"fmt"
	"strings"
)

// ExtractionSchema describes the JSON structure an LLM must return.
type ExtractionSchema struct {
	Name   string        // Schema name (e.g., "JobAnalysis")
	Fields []SchemaField // Expected output fields
}

// SchemaField defines a single field in the extraction output.
type SchemaField struct {
	Name        string // JSON field name
	Type        string // Type hint rendered as a JSON shape
	Description string // Description for the LLM
	Required    bool   // Whether this field is required
}

// FormatInstructions renders the output contract for this schema. Callers
// append the result to their prompts so the model emits exactly the expected
// shape.
func (s ExtractionSchema) FormatInstructions() string {
	var sb strings.Builder

	sb.WriteString("Return ONLY valid JSON matching this exact structure:\n{\n")
	for i, field := range s.Fields {
		typeHint := field.Type
		if typeHint == "" {
			typeHint = "\"string\""
		}
		requiredHint := ""
		if field.Required {
			requiredHint = " (required)"
		}
		sb.WriteString(fmt.Sprintf("  \"%s\": %s%s", field.Name, typeHint, requiredHint))
		if field.Description != "" {
			sb.WriteString(fmt.Sprintf(" // %s", field.Description))
		}
		if i < len(s.Fields)-1 {
			sb.WriteString(",")
		}
		sb.WriteString("\n")
	}
	sb.WriteString("}\n\n")

	sb.WriteString("IMPORTANT:\n")
	sb.WriteString("- Base every field on the provided text, do not invent data.\n")
	sb.WriteString("- Return ONLY the JSON object, no markdown, no explanation, no code blocks.\n")

	return sb.String()
}

// --- Predefined Schemas ---

// JobAnalysisSchema returns the output contract for job description analysis.
func JobAnalysisSchema() ExtractionSchema {
	return ExtractionSchema{
		Name: "JobAnalysis",
		Fields: []SchemaField{
			{
				Name:        "job_title",
				Type:        "\"string\"",
				Description: "The official title of the job position",
				Required:    true,
			},
			{
				Name:        "company",
				Type:        "\"string\"",
				Description: "The name of the company hiring for the position",
				Required:    true,
			},
			{
				Name:        "key_skills",
				Type:        "[\"string\"]",
				Description: "The most important technical skills, tools, or programming languages mentioned",
				Required:    true,
			},
			{
				Name:        "core_responsibilities",
				Type:        "[\"string\"]",
				Description: "Key responsibilities or daily tasks for the role",
				Required:    true,
			},
			{
				Name:        "experience_level",
				Type:        "\"string\"",
				Description: "The required level of experience, e.g. 'Entry-level', '3-5 years', 'Senior', 'Lead'",
				Required:    true,
			},
		},
	}
}

// TailoredResumeSchema returns the output contract for resume tailoring.
func TailoredResumeSchema() ExtractionSchema {
	return ExtractionSchema{
		Name: "TailoredResume",
		Fields: []SchemaField{
			{
				Name:        "professional_summary",
				Type:        "\"string\"",
				Description: "A 2-3 sentence professional summary rewritten to be highly specific and compelling for the target job",
				Required:    true,
			},
			{
				Name:        "selected_experience",
				Type:        "[{\"company\": \"string\", \"role\": \"string\", \"dates\": \"string\", \"rewritten_bullet_points\": [\"string\"]}]",
				Description: "The top 2-3 most relevant work experiences with bullet points tailored to the job",
				Required:    true,
			},
			{
				Name:        "selected_projects",
				Type:        "[{\"name\": \"string\", \"rewritten_description\": \"string\", \"link\": \"string\"}]",
				Description: "The 1-2 most relevant projects with descriptions tailored to the job; empty list if none are relevant",
				Required:    false,
			},
			{
				Name:        "relevant_skills",
				Type:        "{\"category\": [\"string\"]}",
				Description: "Skill categories from the master profile mapped to the skills most relevant to the job",
				Required:    true,
			},
			{
				Name:        "education",
				Type:        "[{\"institution\": \"string\", \"degree\": \"string\", \"dates\": \"string\"}]",
				Description: "Education entries copied from the master profile exactly as they are",
				Required:    true,
			},
			{
				Name:        "accomplishments",
				Type:        "[\"string\"]",
				Description: "1-3 key accomplishments or awards relevant to the job; empty list if none are relevant",
				Required:    false,
			},
		},
	}
}

// MasterProfileSchema returns the output contract for resume-to-profile
// parsing. Nested accomplishment objects carry the detail later tailoring
// passes select from.
func MasterProfileSchema() ExtractionSchema {
	return ExtractionSchema{
		Name: "MasterProfile",
		Fields: []SchemaField{
			{
				Name:        "contact_info",
				Type:        "{\"name\": \"string\", \"address\": \"string\", \"email\": \"string\", \"phone\": \"string\", \"linkedin\": \"string\", \"github\": \"string\", \"portfolio\": \"string\"}",
				Description: "Contact details; use an empty string for anything the resume does not mention",
				Required:    true,
			},
			{
				Name:        "professional_summary",
				Type:        "\"string\"",
				Description: "The professional summary or objective statement from the resume",
				Required:    true,
			},
			{
				Name:        "skills",
				Type:        "{\"programming_languages\": [\"string\"], \"technologies\": [\"string\"], \"methodologies\": [\"string\"]}",
				Description: "All skills found, categorized",
				Required:    true,
			},
			{
				Name:        "work_experience",
				Type:        "[{\"company\": \"string\", \"role\": \"string\", \"dates\": \"string\", \"location\": \"string\", \"accomplishments\": [{\"project_name\": \"string\", \"description\": \"string\", \"technologies_used\": [\"string\"], \"my_responsibilities\": [\"string\"], \"impact\": \"string\"}]}]",
				Description: "Each bullet point becomes a detailed accomplishment object",
				Required:    true,
			},
			{
				Name:        "projects",
				Type:        "[{\"name\": \"string\", \"description\": \"string\", \"technologies_used\": [\"string\"], \"bullet_points\": [\"string\"], \"link\": \"string\"}]",
				Description: "Standalone projects listed on the resume",
				Required:    false,
			},
			{
				Name:        "education",
				Type:        "[{\"institution\": \"string\", \"degree\": \"string\", \"dates\": \"string\", \"gpa\": \"string\", \"relevant_courses\": [\"string\"]}]",
				Description: "Education history",
				Required:    true,
			},
			{
				Name:        "accomplishments_and_awards",
				Type:        "[\"string\"]",
				Description: "Certifications, publications, or awards",
				Required:    false,
			},
		},
	}
}
