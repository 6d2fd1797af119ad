package types

// NotSpecified is the sentinel used when salary or availability could not be
// read from the resume summary. Callers rely on it never being empty or null.
const NotSpecified = "Not specified"

// SkillAssessment is the per-skill breakdown inside an EnhancedAnalysis.
type SkillAssessment struct {
	Skill       string `json:"skill"`
	Proficiency int    `json:"proficiency"` // 0-100
}

// EnhancedAnalysis is the scoring output for one (ParsedResume, JobCriteria)
// pair. It is derived data: recomputable on demand and never persisted apart
// from its source resume.
type EnhancedAnalysis struct {
	TechnicalSkills   []SkillAssessment `json:"technicalSkills"`
	ExperienceMatch   int               `json:"experienceMatch"`
	EducationFit      int               `json:"educationFit"`
	CulturalFit       int               `json:"culturalFit"`
	OverallScore      int               `json:"overallScore"`
	SalaryExpectation string            `json:"salaryExpectation"`
	AvailabilityDate  string            `json:"availabilityDate"`
	Recommendations   []string          `json:"recommendations"`
	Strengths         []string          `json:"strengths"`
	Weaknesses        []string          `json:"weaknesses"`
}
