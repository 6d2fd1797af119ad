package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-screener/internal/types"
)

func sampleResume() *types.ParsedResume {
	return &types.ParsedResume{
		Name:  "Adebayo Okonkwo",
		Email: "adebayo@example.com",
		Phone: "+234 803 123 4567",
		Skills: []string{
			"Go", "PostgreSQL", "Docker", "Kubernetes", "REST APIs",
			"gRPC", "Redis", "CI/CD",
		},
		Experience: []types.WorkExperience{
			{Title: "Backend Engineer", Company: "Flutterwave", Duration: "2021 - 2024", Description: "Payment services."},
			{Title: "Software Engineer", Company: "Acme Corp", Duration: "2019 - 2021", Description: "Internal tooling."},
		},
		Education: []types.Education{
			{Degree: "Bachelor of Science in Computer Science", Institution: "University of Lagos", Year: "2019"},
		},
		Summary: "Backend engineer. Expecting ₦15,000,000 per annum. Available immediately.",
	}
}

func sampleCriteria() *types.JobCriteria {
	return &types.JobCriteria{
		RequiredSkills:  []string{"Go", "PostgreSQL", "Docker"},
		ExperienceLevel: types.LevelMid,
		EducationLevel:  types.EduBachelor,
	}
}

func TestScore_FullAnalysis(t *testing.T) {
	engine := NewEngineWithSeed(42)
	analysis := engine.Score(sampleResume(), sampleCriteria())

	require.NotNil(t, analysis)
	assert.Len(t, analysis.TechnicalSkills, 8)
	assert.Equal(t, "₦15,000,000 per annum", analysis.SalaryExpectation)
	assert.Equal(t, "immediately", analysis.AvailabilityDate)
	assert.NotEmpty(t, analysis.Recommendations)
}

func TestScore_BoundsHold(t *testing.T) {
	engine := NewEngineWithSeed(7)

	resumes := []*types.ParsedResume{
		sampleResume(),
		{Name: "Empty", Email: "e@example.com", Phone: "1", Summary: "x"},
		{
			Name: "Maximal", Email: "m@example.com", Phone: "+2348000000000",
			Skills: []string{"Go", "Go", "Go", "Go", "Go", "Go", "Go", "Go", "Go", "Go"},
			Experience: []types.WorkExperience{
				{Title: "a", Company: "Flutterwave"}, {Title: "b", Company: "Paystack"},
				{Title: "c", Company: "x"}, {Title: "d", Company: "y"}, {Title: "e", Company: "z"},
			},
			Education: []types.Education{{Degree: "PhD in Computing", Institution: "University of Lagos", Year: "2015"}},
			Summary:   "Available immediately.",
		},
	}
	criteriaSet := []*types.JobCriteria{
		sampleCriteria(),
		{},
		{RequiredSkills: []string{"Go"}, ExperienceLevel: types.LevelSenior, Weights: &types.ScoreWeights{TechnicalSkills: 1, Experience: 1, Education: 1, Cultural: 1}},
	}

	for _, resume := range resumes {
		for _, criteria := range criteriaSet {
			analysis := engine.Score(resume, criteria)

			for _, sa := range analysis.TechnicalSkills {
				assert.GreaterOrEqual(t, sa.Proficiency, 0)
				assert.LessOrEqual(t, sa.Proficiency, 100)
			}
			for _, score := range []int{analysis.ExperienceMatch, analysis.EducationFit, analysis.CulturalFit, analysis.OverallScore} {
				assert.GreaterOrEqual(t, score, 0)
				assert.LessOrEqual(t, score, 100)
			}
		}
	}
}

func TestScore_Reproducible(t *testing.T) {
	a := NewEngineWithSeed(99).Score(sampleResume(), sampleCriteria())
	b := NewEngineWithSeed(99).Score(sampleResume(), sampleCriteria())

	assert.Equal(t, a, b)
}

func TestScoreSkills_ZeroRequiredDefaultsTo80(t *testing.T) {
	engine := NewEngineWithSeed(1)

	score, _ := engine.scoreSkills([]string{"Go", "Rust", "Python"}, nil)
	assert.Equal(t, 80, score)

	// Still 80 with no resume skills either
	score, _ = engine.scoreSkills(nil, nil)
	assert.Equal(t, 80, score)
}

func TestScoreSkills_SubstringMatchBothDirections(t *testing.T) {
	engine := NewEngineWithSeed(1)

	// "Go" is a substring of "Golang" and vice versa checks also hold
	score, _ := engine.scoreSkills([]string{"Golang", "PostgreSQL databases"}, []string{"go", "postgresql"})
	assert.Equal(t, 100, score)

	score, _ = engine.scoreSkills([]string{"Java"}, []string{"Go", "Rust"})
	assert.Equal(t, 0, score)

	score, _ = engine.scoreSkills([]string{"Go"}, []string{"Go", "Rust"})
	assert.Equal(t, 50, score)
}

func TestScoreSkills_ProficiencyBands(t *testing.T) {
	engine := NewEngineWithSeed(3)

	for i := 0; i < 50; i++ {
		_, assessments := engine.scoreSkills([]string{"Go", "Cooking"}, []string{"Go"})
		require.Len(t, assessments, 2)

		matched := assessments[0]
		assert.GreaterOrEqual(t, matched.Proficiency, 70)
		assert.LessOrEqual(t, matched.Proficiency, 100)

		unmatched := assessments[1]
		assert.GreaterOrEqual(t, unmatched.Proficiency, 40)
		assert.LessOrEqual(t, unmatched.Proficiency, 80)
	}
}

func TestScoreExperience(t *testing.T) {
	entries := func(n int) []types.WorkExperience {
		out := make([]types.WorkExperience, n)
		for i := range out {
			out[i] = types.WorkExperience{Title: "Engineer", Company: "Acme"}
		}
		return out
	}

	tests := []struct {
		name    string
		entries int
		level   string
		want    int
	}{
		{"entry level met with one entry", 1, types.LevelEntry, 90},
		{"mid level met with two entries", 2, types.LevelMid, 90},
		{"senior level met with four entries", 4, types.LevelSenior, 90},
		{"senior level short", 2, types.LevelSenior, 70},
		{"mid level no experience", 0, types.LevelMid, 45},
		{"senior level no experience", 0, types.LevelSenior, 40},
		{"empty level treated as mid", 2, "", 90},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, scoreExperience(entries(tt.entries), tt.level))
		})
	}
}

func TestScoreEducation(t *testing.T) {
	tests := []struct {
		name      string
		education []types.Education
		want      int
	}{
		{"empty list scores flat 40", nil, 40},
		{
			"foreign school no degree keyword",
			[]types.Education{{Degree: "Diploma in Welding", Institution: "Springfield Tech", Year: "2010"}},
			70,
		},
		{
			"nigerian university bachelor",
			[]types.Education{{Degree: "Bachelor of Science", Institution: "University of Lagos", Year: "2019"}},
			95,
		},
		{
			"nigerian university doctorate capped at 100",
			[]types.Education{{Degree: "PhD in Computer Science", Institution: "Covenant University", Year: "2018"}},
			100,
		},
		{
			"masters foreign school",
			[]types.Education{{Degree: "MSc Software Engineering", Institution: "TU Delft", Year: "2020"}},
			85,
		},
		{
			"first-listed degree drives the bonus",
			[]types.Education{
				{Degree: "Master of Science", Institution: "MIT", Year: "2021"},
				{Degree: "PhD", Institution: "MIT", Year: "2024"},
			},
			85,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, scoreEducation(tt.education))
		})
	}
}

func TestScoreCultural(t *testing.T) {
	tests := []struct {
		name   string
		resume *types.ParsedResume
		want   int
	}{
		{
			"no signals",
			&types.ParsedResume{Phone: "+1 555 0100"},
			70,
		},
		{
			"local phone prefix",
			&types.ParsedResume{Phone: "+2348031234567"},
			80,
		},
		{
			"local phone zero prefix",
			&types.ParsedResume{Phone: "08031234567"},
			80,
		},
		{
			"local employer only",
			&types.ParsedResume{
				Phone:      "+1 555 0100",
				Experience: []types.WorkExperience{{Title: "Engineer", Company: "Paystack"}},
			},
			85,
		},
		{
			"phone and employer",
			&types.ParsedResume{
				Phone:      "+234 803 123 4567",
				Experience: []types.WorkExperience{{Title: "Engineer", Company: "Flutterwave"}},
			},
			95,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, scoreCultural(tt.resume))
		})
	}
}

func TestScore_NigerianProfileScenario(t *testing.T) {
	engine := NewEngineWithSeed(11)
	analysis := engine.Score(sampleResume(), sampleCriteria())

	assert.GreaterOrEqual(t, analysis.EducationFit, 85)
	assert.GreaterOrEqual(t, analysis.CulturalFit, 80)
}

func TestScore_WeightOverrides(t *testing.T) {
	engine := NewEngineWithSeed(5)
	resume := sampleResume()

	// All weight on education: overall equals the education sub-score
	criteria := &types.JobCriteria{
		RequiredSkills: []string{"Go"},
		Weights:        &types.ScoreWeights{TechnicalSkills: 0, Experience: 0, Education: 1, Cultural: 0},
	}
	analysis := engine.Score(resume, criteria)
	assert.Equal(t, analysis.EducationFit, analysis.OverallScore)
}

func TestMatchesAny(t *testing.T) {
	assert.True(t, matchesAny("University of Lagos, Akoka", nigerianUniversities))
	assert.True(t, matchesAny("unilag", nigerianUniversities))
	assert.False(t, matchesAny("Harvard University", nigerianUniversities))
	assert.False(t, matchesAny("", nigerianUniversities))
	assert.False(t, matchesAny("Go", nil))
}
