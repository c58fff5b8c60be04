// Package types provides type definitions for structured data used throughout the resume-tailor-agent system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// JobAnalysis represents the structured summary distilled from a job posting
type JobAnalysis struct {
	JobTitle             string   `json:"job_title"`
	Company              string   `json:"company"`
	KeySkills            []string `json:"key_skills"`
	CoreResponsibilities []string `json:"core_responsibilities"`
	ExperienceLevel      string   `json:"experience_level"`
}
