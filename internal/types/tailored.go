// Package types provides type definitions for structured data used throughout the resume-tailor-agent system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// TailoredResume represents resume content selected from a master profile and
// rewritten against a specific job analysis
type TailoredResume struct {
	ProfessionalSummary string               `json:"professional_summary"`
	SelectedExperience  []TailoredExperience `json:"selected_experience"`
	SelectedProjects    []TailoredProject    `json:"selected_projects"`
	RelevantSkills      map[string][]string  `json:"relevant_skills"`
	Education           []EducationEntry     `json:"education"`
	Accomplishments     []string             `json:"accomplishments"`
}

// TailoredExperience represents one selected work experience with bullet
// points rewritten for the target job. Company, role, and dates are carried
// over from the master profile unchanged.
type TailoredExperience struct {
	Company               string   `json:"company"`
	Role                  string   `json:"role"`
	Dates                 string   `json:"dates"`
	RewrittenBulletPoints []string `json:"rewritten_bullet_points"`
}

// TailoredProject represents one selected project with a rewritten description
type TailoredProject struct {
	Name                 string `json:"name"`
	RewrittenDescription string `json:"rewritten_description"`
	Link                 string `json:"link"`
}
