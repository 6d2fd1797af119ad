package scoring

import "github.com/jonathan/resume-screener/internal/types"

// Insight text is fixed and selected by threshold comparisons on the
// sub-scores and the resume itself. No free text is generated here.

func buildRecommendations(skills, experience, education, cultural int) []string {
	recommendations := make([]string, 0, 4)
	if skills < 60 {
		recommendations = append(recommendations, "Candidate is missing several required skills; consider a technical screening call before advancing.")
	}
	if experience < 60 {
		recommendations = append(recommendations, "Experience appears light for this role; probe depth of past projects during interview.")
	}
	if education < 60 {
		recommendations = append(recommendations, "Educational background is below the target for this role; weigh practical experience accordingly.")
	}
	if cultural < 75 {
		recommendations = append(recommendations, "Limited signals of local market familiarity; verify relocation and onboarding expectations.")
	}
	if len(recommendations) == 0 {
		recommendations = append(recommendations, "Strong match across all criteria; recommend advancing to interview.")
	}
	return recommendations
}

func buildStrengths(resume *types.ParsedResume, skills, experience, cultural int) []string {
	strengths := make([]string, 0, 4)
	if len(resume.Skills) >= 8 {
		strengths = append(strengths, "Diverse skill set")
	}
	if skills >= 80 {
		strengths = append(strengths, "Strong coverage of required skills")
	}
	if experience >= 80 {
		strengths = append(strengths, "Solid relevant work experience")
	}
	if cultural >= 85 {
		strengths = append(strengths, "Strong local market familiarity")
	}
	return strengths
}

func buildWeaknesses(resume *types.ParsedResume, skills, experience, education int) []string {
	weaknesses := make([]string, 0, 4)
	if len(resume.Skills) < 5 {
		weaknesses = append(weaknesses, "Limited skill diversity")
	}
	if skills < 50 {
		weaknesses = append(weaknesses, "Significant gaps in required skills")
	}
	if experience < 60 {
		weaknesses = append(weaknesses, "Less experience than the role targets")
	}
	if education == 40 {
		weaknesses = append(weaknesses, "No education history listed")
	}
	return weaknesses
}
