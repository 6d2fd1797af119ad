// Package types provides type definitions for structured data used throughout the resume-screener system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// ParsedResume is the canonical extraction result produced by the LLM parser
// and accepted by the schema validator. A ParsedResume is either fully valid
// or rejected outright; no partial records flow downstream.
type ParsedResume struct {
	Name       string           `json:"name"`
	Email      string           `json:"email"`
	Phone      string           `json:"phone"`
	Skills     []string         `json:"skills"`
	Experience []WorkExperience `json:"experience"`
	Education  []Education      `json:"education"`
	Summary    string           `json:"summary"`
}

// WorkExperience represents a single employment entry on a resume.
type WorkExperience struct {
	Title       string `json:"title"`
	Company     string `json:"company"`
	Duration    string `json:"duration"`
	Description string `json:"description"`
}

// Education represents a single education entry on a resume.
type Education struct {
	Degree      string `json:"degree"`
	Institution string `json:"institution"`
	Year        string `json:"year"`
}
