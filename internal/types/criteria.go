package types

import "github.com/go-playground/validator/v10"

// Experience levels accepted in JobCriteria.
const (
	LevelEntry  = "entry"
	LevelMid    = "mid"
	LevelSenior = "senior"
)

// Education levels accepted in JobCriteria.
const (
	EduDiploma  = "diploma"
	EduBachelor = "bachelor"
	EduMaster   = "master"
	EduPhD      = "phd"
)

// JobCriteria is the scoring configuration a recruiter supplies per role.
type JobCriteria struct {
	RequiredSkills  []string      `json:"requiredSkills"`
	ExperienceLevel string        `json:"experienceLevel" validate:"omitempty,oneof=entry mid senior"`
	EducationLevel  string        `json:"educationLevel" validate:"omitempty,oneof=diploma bachelor master phd"`
	Industry        string        `json:"industry,omitempty"`
	Weights         *ScoreWeights `json:"weights,omitempty"`
}

// ScoreWeights controls the contribution of each sub-score to the overall score.
// Values are in [0,1] and need not sum to 1.
type ScoreWeights struct {
	TechnicalSkills float64 `json:"technicalSkills" validate:"gte=0,lte=1"`
	Experience      float64 `json:"experience" validate:"gte=0,lte=1"`
	Education       float64 `json:"education" validate:"gte=0,lte=1"`
	Cultural        float64 `json:"cultural" validate:"gte=0,lte=1"`
}

// DefaultWeights returns the weights used when the caller supplies none.
func DefaultWeights() ScoreWeights {
	return ScoreWeights{
		TechnicalSkills: 0.4,
		Experience:      0.3,
		Education:       0.2,
		Cultural:        0.1,
	}
}

// EffectiveWeights merges caller-supplied weights over the defaults.
// A nil Weights pointer yields the defaults unchanged; zero-valued fields
// on a supplied struct are taken literally (a recruiter may zero a factor out).
func (c *JobCriteria) EffectiveWeights() ScoreWeights {
	if c == nil || c.Weights == nil {
		return DefaultWeights()
	}
	return *c.Weights
}

// Validate validates the JobCriteria using the validator.
func (c *JobCriteria) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		return err
	}
	if c.Weights != nil {
		return validate.Struct(c.Weights)
	}
	return nil
}
