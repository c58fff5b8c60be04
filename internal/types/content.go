// Package types provides type definitions for structured data used throughout the resume-tailor-agent system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// UnknownCompany is the placeholder company name used when a job page
// yields usable description text but no recognizable company element.
const UnknownCompany = "Unknown Company"

// ScrapedContent represents the usable output of a job page extraction
type ScrapedContent struct {
	CompanyName string `json:"company_name"`
	BodyText    string `json:"body_text"`
}
