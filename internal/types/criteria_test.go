package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultWeights(t *testing.T) {
	w := DefaultWeights()
	assert.Equal(t, 0.4, w.TechnicalSkills)
	assert.Equal(t, 0.3, w.Experience)
	assert.Equal(t, 0.2, w.Education)
	assert.Equal(t, 0.1, w.Cultural)
}

func TestEffectiveWeights_NilCriteria(t *testing.T) {
	var c *JobCriteria
	assert.Equal(t, DefaultWeights(), c.EffectiveWeights())
}

func TestEffectiveWeights_NoOverrides(t *testing.T) {
	c := &JobCriteria{RequiredSkills: []string{"Go"}}
	assert.Equal(t, DefaultWeights(), c.EffectiveWeights())
}

func TestEffectiveWeights_Overrides(t *testing.T) {
	c := &JobCriteria{
		Weights: &ScoreWeights{
			TechnicalSkills: 0.7,
			Experience:      0.1,
			Education:       0.1,
			Cultural:        0.1,
		},
	}
	w := c.EffectiveWeights()
	assert.Equal(t, 0.7, w.TechnicalSkills)
	assert.Equal(t, 0.1, w.Cultural)
}

func TestJobCriteria_Validate(t *testing.T) {
	tests := []struct {
		name      string
		criteria  JobCriteria
		wantError bool
	}{
		{
			name:     "empty criteria is valid",
			criteria: JobCriteria{},
		},
		{
			name: "valid levels",
			criteria: JobCriteria{
				ExperienceLevel: LevelSenior,
				EducationLevel:  EduMaster,
			},
		},
		{
			name:      "unknown experience level",
			criteria:  JobCriteria{ExperienceLevel: "principal"},
			wantError: true,
		},
		{
			name:      "unknown education level",
			criteria:  JobCriteria{EducationLevel: "bootcamp"},
			wantError: true,
		},
		{
			name: "weight out of range",
			criteria: JobCriteria{
				Weights: &ScoreWeights{TechnicalSkills: 1.5},
			},
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.criteria.Validate()
			if tt.wantError {
				require.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
