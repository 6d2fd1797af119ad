// Package scoring computes a weighted suitability analysis for a validated
// resume against a set of job criteria.
package scoring

import (
	"math"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/jonathan/resume-screener/internal/types"
)

// yearsPerEntry approximates total experience from the number of listed
// positions. Resumes rarely carry machine-readable date ranges, so the
// engine estimates rather than parses.
const yearsPerEntry = 1.5

// requiredYears maps an experience level to the years that earn the full 90.
var requiredYears = map[string]float64{
	types.LevelEntry:  1,
	types.LevelMid:    3,
	types.LevelSenior: 5,
}

// levelFloor is the minimum experience score per level. A candidate short of
// the bar still scores above zero, scaled between floor and 90.
var levelFloor = map[string]int{
	types.LevelEntry:  50,
	types.LevelMid:    45,
	types.LevelSenior: 40,
}

// Engine scores resumes. Proficiency values carry deliberate jitter within a
// band per match class; the random source is injected so tests can pin a
// seed. The mutex guards it because batch runs score files concurrently.
type Engine struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewEngine creates an Engine with a time-seeded random source.
func NewEngine() *Engine {
	return NewEngineWithSeed(time.Now().UnixNano())
}

// NewEngineWithSeed creates an Engine with a fixed seed, for reproducible
// scoring in tests.
func NewEngineWithSeed(seed int64) *Engine {
	return &Engine{rng: rand.New(rand.NewSource(seed))}
}

// Score computes the full analysis for one resume against one set of
// criteria. Every sub-score and the overall score is an integer in [0,100].
func (e *Engine) Score(resume *types.ParsedResume, criteria *types.JobCriteria) *types.EnhancedAnalysis {
	skillsScore, assessments := e.scoreSkills(resume.Skills, criteria.RequiredSkills)
	experienceScore := scoreExperience(resume.Experience, criteria.ExperienceLevel)
	educationScore := scoreEducation(resume.Education)
	culturalScore := scoreCultural(resume)

	weights := criteria.EffectiveWeights()
	overall := int(math.Round(
		float64(skillsScore)*weights.TechnicalSkills +
			float64(experienceScore)*weights.Experience +
			float64(educationScore)*weights.Education +
			float64(culturalScore)*weights.Cultural))
	overall = clampScore(overall)

	return &types.EnhancedAnalysis{
		TechnicalSkills:   assessments,
		ExperienceMatch:   experienceScore,
		EducationFit:      educationScore,
		CulturalFit:       culturalScore,
		OverallScore:      overall,
		SalaryExpectation: extractSalary(resume.Summary),
		AvailabilityDate:  extractAvailability(resume.Summary),
		Recommendations:   buildRecommendations(skillsScore, experienceScore, educationScore, culturalScore),
		Strengths:         buildStrengths(resume, skillsScore, experienceScore, culturalScore),
		Weaknesses:        buildWeaknesses(resume, skillsScore, experienceScore, educationScore),
	}
}

// scoreSkills returns the skills sub-score and one proficiency assessment
// per resume skill. A resume skill counts as required when a case-insensitive
// substring relationship holds in either direction with any required skill.
func (e *Engine) scoreSkills(skills, required []string) (int, []types.SkillAssessment) {
	assessments := make([]types.SkillAssessment, 0, len(skills))
	for _, skill := range skills {
		matched := matchesAny(skill, required)
		assessments = append(assessments, types.SkillAssessment{
			Skill:       skill,
			Proficiency: e.proficiency(matched),
		})
	}

	if len(required) == 0 {
		return 80, assessments
	}

	matchedRequired := 0
	for _, req := range required {
		if matchesAny(req, skills) {
			matchedRequired++
		}
	}

	score := int(float64(matchedRequired) / float64(len(required)) * 100)
	if score > 100 {
		score = 100
	}
	return score, assessments
}

// proficiency draws from 70-100 for required skills, 40-80 otherwise.
func (e *Engine) proficiency(required bool) int {
	e.mu.Lock()
	defer e.mu.Unlock()
	if required {
		return 70 + e.rng.Intn(31)
	}
	return 40 + e.rng.Intn(41)
}

func scoreExperience(experience []types.WorkExperience, level string) int {
	years := float64(len(experience)) * yearsPerEntry

	if level == "" {
		level = types.LevelMid
	}
	needed, ok := requiredYears[level]
	if !ok {
		level = types.LevelMid
		needed = requiredYears[level]
	}

	if years >= needed {
		return 90
	}

	floor := levelFloor[level]
	return floor + int(years/needed*float64(90-floor))
}

func scoreEducation(education []types.Education) int {
	if len(education) == 0 {
		return 40
	}

	score := 70

	for _, edu := range education {
		if matchesAny(edu.Institution, nigerianUniversities) {
			score += 15
			break
		}
	}

	// Degree bonus keys off the first-listed (assumed highest) degree.
	degree := strings.ToLower(education[0].Degree)
	switch {
	case strings.Contains(degree, "phd") || strings.Contains(degree, "doctor"):
		score += 20
	case strings.Contains(degree, "master") || strings.Contains(degree, "msc") || strings.Contains(degree, "mba"):
		score += 15
	case strings.Contains(degree, "bachelor") || strings.Contains(degree, "bsc") || strings.Contains(degree, "b.sc"):
		score += 10
	}

	return clampScore(score)
}

func scoreCultural(resume *types.ParsedResume) int {
	score := 70

	phone := strings.TrimSpace(resume.Phone)
	if strings.HasPrefix(phone, "+234") || strings.HasPrefix(phone, "0") {
		score += 10
	}

	for _, exp := range resume.Experience {
		if matchesAny(exp.Company, localCompanies) {
			score += 15
			break
		}
	}

	return clampScore(score)
}

// matchesAny reports whether a case-insensitive substring relationship holds
// in either direction between value and any candidate.
func matchesAny(value string, candidates []string) bool {
	v := strings.ToLower(strings.TrimSpace(value))
	if v == "" {
		return false
	}
	for _, candidate := range candidates {
		c := strings.ToLower(strings.TrimSpace(candidate))
		if c == "" {
			continue
		}
		if strings.Contains(v, c) || strings.Contains(c, v) {
			return true
		}
	}
	return false
}

func clampScore(score int) int {
	if score > 100 {
		return 100
	}
	if score < 0 {
		return 0
	}
	return score
}
