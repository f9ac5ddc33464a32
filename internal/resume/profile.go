package resume

import (
	"context"
	"encoding/json"
	"fmt"

	"careerlens/internal/azure"
)

// Profile is the structured career profile extracted from a resume.
type Profile struct {
	Name                 string `json:"name"`
	Email                string `json:"email"`
	Phone                string `json:"phone"`
	Linkedin             string `json:"linkedin"`
	Summary              string `json:"summary"`
	EducationLevel       string `json:"education_level"`
	Major                string `json:"major"`
	UniversityBackground string `json:"university_background"`
	Languages            string `json:"languages"`
	Certificates         string `json:"certificates"`
	HardSkills           string `json:"hard_skills"`
	SoftSkills           string `json:"soft_skills"`
	WorkExperience       string `json:"work_experience"`
	ProjectExperience    string `json:"project_experience"`
	DetailedExperience   string `json:"detailed_experience"`
	LocationPreference   string `json:"location_preference"`
	IndustryPreference   string `json:"industry_preference"`
	SalaryExpectation    string `json:"salary_expectation"`
}

// RoleAnalysis is the AI read on what jobs a resume should target.
type RoleAnalysis struct {
	PrimaryRole        string   `json:"primary_role"`
	SimpleSearchTerms  []string `json:"simple_search_terms"`
	Confidence         float64  `json:"confidence"`
	SeniorityLevel     string   `json:"seniority_level"`
	Skills             []string `json:"skills"`
	CoreStrengths      []string `json:"core_strengths"`
	JobSearchKeywords  []string `json:"job_search_keywords"`
	OptimalSearchQuery string   `json:"optimal_search_query"`
	LocationPreference string   `json:"location_preference"`
	Industries         []string `json:"industries"`
	AlternativeRoles   []string `json:"alternative_roles"`
}

// Analyzer runs LLM extraction passes over resume text.
type Analyzer struct {
	azure *azure.Client
}

func NewAnalyzer(az *azure.Client) *Analyzer {
	return &Analyzer{azure: az}
}

// ExtractProfile pulls a structured profile out of resume text. When
// verify is set a second pass re-reads the resume and corrects fields
// the first pass got wrong.
func (a *Analyzer) ExtractProfile(ctx context.Context, text string, verify bool) (*Profile, error) {
	trimmed := RelevantSections(text, 6000)

	content, err := a.azure.Chat(ctx, []azure.Message{
		{Role: "system", Content: profileSystemPrompt},
		{Role: "user", Content: fmt.Sprintf("Extract a structured profile from this resume:\n\n%s", trimmed)},
	}, azure.ChatOptions{Temperature: 0.2, MaxTokens: 2000, JSONMode: true})
	if err != nil {
		return nil, fmt.Errorf("profile extraction: %w", err)
	}

	var profile Profile
	if err := json.Unmarshal([]byte(azure.CleanJSON(content)), &profile); err != nil {
		return nil, fmt.Errorf("decode profile: %w", err)
	}

	if verify {
		if verified, err := a.verifyProfile(ctx, &profile, trimmed); err == nil {
			profile = *verified
		}
	}

	return &profile, nil
}

func (a *Analyzer) verifyProfile(ctx context.Context, profile *Profile, text string) (*Profile, error) {
	current, err := json.Marshal(profile)
	if err != nil {
		return nil, err
	}

	content, err := a.azure.Chat(ctx, []azure.Message{
		{Role: "system", Content: verifySystemPrompt},
		{Role: "user", Content: fmt.Sprintf("EXTRACTED PROFILE:\n%s\n\nORIGINAL RESUME:\n%s", current, text)},
	}, azure.ChatOptions{Temperature: 0.1, MaxTokens: 2000, JSONMode: true})
	if err != nil {
		return nil, fmt.Errorf("profile verification: %w", err)
	}

	var verified Profile
	if err := json.Unmarshal([]byte(azure.CleanJSON(content)), &verified); err != nil {
		return nil, fmt.Errorf("decode verified profile: %w", err)
	}
	return &verified, nil
}

// AnalyzeRoles asks the model which roles and search terms fit the
// resume. On model failure an empty analysis is returned together with
// the error so callers can fall back to manual input.
func (a *Analyzer) AnalyzeRoles(ctx context.Context, text string) (*RoleAnalysis, error) {
	snippet := text
	if len(snippet) > 3000 {
		snippet = snippet[:3000]
	}

	content, err := a.azure.Chat(ctx, []azure.Message{
		{Role: "system", Content: roleSystemPrompt},
		{Role: "user", Content: fmt.Sprintf(roleUserPrompt, snippet)},
	}, azure.ChatOptions{Temperature: 0.7, MaxTokens: 2000, JSONMode: true})
	if err != nil {
		return &RoleAnalysis{}, fmt.Errorf("role analysis: %w", err)
	}

	var analysis RoleAnalysis
	if err := json.Unmarshal([]byte(azure.CleanJSON(content)), &analysis); err != nil {
		return &RoleAnalysis{}, fmt.Errorf("decode role analysis: %w", err)
	}
	return &analysis, nil
}
