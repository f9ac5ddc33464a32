package match

import (
	"math"
	"strings"
)

// Weighting of the combined score: semantic similarity dominates, skill
// keyword overlap refines.
const (
	semanticWeight = 0.6
	skillWeight    = 0.4
)

// CalculateMatchScores fills in skill-match and combined scores for jobs
// that already carry a semantic similarity score. Matched skills are
// capped at 10 per job.
func CalculateMatchScores(jobs []ScoredJob, candidateSkills []string) []ScoredJob {
	skills := make([]string, 0, len(candidateSkills))
	for _, s := range candidateSkills {
		s = strings.ToLower(strings.TrimSpace(s))
		if s != "" {
			skills = append(skills, s)
		}
	}

	for i := range jobs {
		job := &jobs[i]
		description := strings.ToLower(job.Description)
		title := strings.ToLower(job.Title)

		var matched []string
		for _, skill := range skills {
			if strings.Contains(description, skill) || strings.Contains(title, skill) {
				matched = append(matched, skill)
			}
		}

		skillMatchPct := 0.0
		if len(skills) > 0 {
			skillMatchPct = float64(len(matched)) / float64(len(skills)) * 100
		}

		semanticScore := job.SimilarityScore
		combined := semanticWeight*semanticScore + skillWeight*skillMatchPct

		job.MatchedSkillsCount = len(matched)
		if len(matched) > 10 {
			matched = matched[:10]
		}
		job.MatchedSkills = matched
		job.SkillMatchPct = round1(skillMatchPct)
		job.SemanticScore = round1(semanticScore)
		job.CombinedScore = round1(combined)
	}
	return jobs
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// SimpleMatchInput is the subset of profile and posting fields the
// heuristic scorer looks at.
type SimpleMatchInput struct {
	JobSkills        string
	JobLanguages     string
	JobLocation      string
	JobExperience    int // required years
	SeekerSkills     string
	SeekerLanguages  string
	SeekerLocation   string
	SeekerExperience int // years
	SeekerHasDegree  bool
	JobNeedsDegree   bool
}

// SimpleMatchResult is the outcome of the heuristic match.
type SimpleMatchResult struct {
	MatchScore     int      `json:"match_score"`
	MatchedSkills  []string `json:"matched_skills"`
	Verdict        string   `json:"verdict"`
	Recommendation string   `json:"recommendation"`
	SalaryMatch    string   `json:"salary_match"`
	CultureFit     string   `json:"culture_fit"`
}

// AnalyzeSimpleMatch scores a posting against a profile without any
// model call: base 50 adjusted by skill, language, location and
// experience overlap, clamped to 0..100.
func AnalyzeSimpleMatch(in SimpleMatchInput) SimpleMatchResult {
	score := 50.0

	jobSkills := splitList(in.JobSkills)
	seekerSkills := splitList(in.SeekerSkills)
	var matched []string
	if len(jobSkills) > 0 {
		for _, js := range jobSkills {
			for _, ss := range seekerSkills {
				if js != "" && (strings.Contains(ss, js) || strings.Contains(js, ss)) {
					matched = append(matched, js)
					break
				}
			}
		}
		skillMatch := float64(len(matched)) / float64(len(jobSkills))
		score += skillMatch * 20
	}

	jobLangs := splitList(in.JobLanguages)
	seekerLangs := splitList(in.SeekerLanguages)
	if len(jobLangs) > 0 {
		hits := 0
		for _, jl := range jobLangs {
			for _, sl := range seekerLangs {
				if jl != "" && strings.Contains(sl, jl) {
					hits++
					break
				}
			}
		}
		score += float64(hits) / float64(len(jobLangs)) * 10
	} else {
		score += 10
	}

	if in.JobLocation == "" || in.SeekerLocation == "" ||
		strings.Contains(strings.ToLower(in.SeekerLocation), strings.ToLower(in.JobLocation)) {
		score += 10
	}

	if in.JobExperience > 0 && in.SeekerExperience < in.JobExperience {
		score -= float64(in.JobExperience-in.SeekerExperience) * 5
	} else if in.SeekerExperience >= in.JobExperience {
		score += 10
	}

	if !in.JobNeedsDegree || in.SeekerHasDegree {
		score += 5
	}

	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}

	result := SimpleMatchResult{
		MatchScore:    int(score),
		MatchedSkills: matched,
	}

	switch {
	case score >= 80:
		result.Verdict = "Excellent Match"
		result.Recommendation = "Strongly recommend applying"
	case score >= 60:
		result.Verdict = "Good Match"
		result.Recommendation = "Worth applying"
	default:
		result.Verdict = "Fair Match"
		result.Recommendation = "Consider if other options are limited"
	}

	if score > 70 {
		result.SalaryMatch = "Good"
	} else {
		result.SalaryMatch = "Average"
	}
	if score > 75 {
		result.CultureFit = "High"
	} else {
		result.CultureFit = "Medium"
	}

	return result
}

func splitList(s string) []string {
	parts := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ';' || r == '/'
	})
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.ToLower(strings.TrimSpace(p))
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
