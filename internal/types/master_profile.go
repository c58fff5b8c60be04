// Package types provides type definitions for structured data used throughout the resume-tailor-agent system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"github.com/go-playground/validator/v10"
)

// MasterProfile represents the complete career history a tailored resume is built from.
// It is generated once from a source resume and then hand-edited by the user.
type MasterProfile struct {
	ContactInfo              ContactInfo      `json:"contact_info" validate:"required"`
	ProfessionalSummary      string           `json:"professional_summary" validate:"required"`
	Skills                   Skills           `json:"skills"`
	WorkExperience           []WorkExperience `json:"work_experience" validate:"required,min=1,dive"`
	Projects                 []Project        `json:"projects"`
	Education                []EducationEntry `json:"education"`
	AccomplishmentsAndAwards []string         `json:"accomplishments_and_awards"`
}

// ContactInfo represents the resume header block
type ContactInfo struct {
	Name      string `json:"name" validate:"required"`
	Address   string `json:"address"`
	Email     string `json:"email" validate:"required,email"`
	Phone     string `json:"phone"`
	LinkedIn  string `json:"linkedin"`
	GitHub    string `json:"github"`
	Portfolio string `json:"portfolio,omitempty"`
}

// Skills represents skills bucketed by category
type Skills struct {
	ProgrammingLanguages []string `json:"programming_languages"`
	Technologies         []string `json:"technologies"`
	Methodologies        []string `json:"methodologies"`
}

// WorkExperience represents a single role held, with structured accomplishments
type WorkExperience struct {
	Company         string           `json:"company" validate:"required"`
	Role            string           `json:"role" validate:"required"`
	Dates           string           `json:"dates"`
	Location        string           `json:"location"`
	Accomplishments []Accomplishment `json:"accomplishments"`
}

// Accomplishment represents one initiative within a role, decomposed so a
// tailoring pass can recombine responsibilities and impact per job posting
type Accomplishment struct {
	ProjectName      string   `json:"project_name"`
	Description      string   `json:"description"`
	TechnologiesUsed []string `json:"technologies_used"`
	Responsibilities []string `json:"my_responsibilities"`
	Impact           string   `json:"impact"`
}

// Project represents a standalone project in the master profile
type Project struct {
	Name             string   `json:"name" validate:"required"`
	Description      string   `json:"description"`
	TechnologiesUsed []string `json:"technologies_used"`
	BulletPoints     []string `json:"bullet_points"`
	Link             string   `json:"link,omitempty"`
}

// EducationEntry represents one degree or program
type EducationEntry struct {
	Institution     string   `json:"institution"`
	Degree          string   `json:"degree"`
	Dates           string   `json:"dates"`
	GPA             string   `json:"gpa,omitempty"`
	RelevantCourses []string `json:"relevant_courses,omitempty"`
}

// Validate validates the MasterProfile using the validator.
func (p *MasterProfile) Validate() error {
	validate := validator.New()
	return validate.Struct(p)
}
