package match

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"careerlens/internal/azure"
)

var salaryPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)HKD\s*\$?\s*(\d{1,3}(?:,\d{3})*(?:k|K)?)\s*[-–—]\s*\$?\s*(\d{1,3}(?:,\d{3})*(?:k|K)?)`),
	regexp.MustCompile(`(?i)(\d{1,3}(?:,\d{3})*(?:k|K)?)\s*[-–—]\s*(\d{1,3}(?:,\d{3})*(?:k|K)?)\s*HKD`),
	regexp.MustCompile(`(?i)HKD\s*\$?\s*(\d{1,3}(?:,\d{3})*(?:k|K)?)\s*(?:per month|/month|/mth|monthly)`),
	regexp.MustCompile(`(?i)(\d{1,3}(?:,\d{3})*(?:k|K)?)\s*HKD\s*(?:per month|/month|/mth|monthly)`),
	regexp.MustCompile(`\$\s*(\d{1,3}(?:,\d{3})*(?:k|K)?)\s*[-–—]\s*\$?\s*(\d{1,3}(?:,\d{3})*(?:k|K)?)`),
}

// ExtractSalaryRegex pulls a monthly HKD salary range out of free text.
// Returns ok=false when no pattern matches.
func ExtractSalaryRegex(text string) (minSalary, maxSalary int, ok bool) {
	if text == "" {
		return 0, 0, false
	}

	for _, pattern := range salaryPatterns {
		m := pattern.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		switch len(m) {
		case 3:
			lo, err1 := parseAmount(m[1])
			hi, err2 := parseAmount(m[2])
			if err1 == nil && err2 == nil {
				return lo, hi, true
			}
		case 2:
			v, err := parseAmount(m[1])
			if err == nil {
				return v, v, true
			}
		}
	}
	return 0, 0, false
}

func parseAmount(s string) (int, error) {
	s = strings.ReplaceAll(s, ",", "")
	s = strings.ReplaceAll(s, "k", "000")
	s = strings.ReplaceAll(s, "K", "000")
	return strconv.Atoi(s)
}

const salaryExtractionPrompt = `Extract salary information from this job description text.
Look for salary ranges, amounts, and compensation details. Normalize everything to monthly HKD (Hong Kong Dollars).

JOB DESCRIPTION TEXT:
%s

Extract and return salary information as JSON with this structure:
{
    "min_salary_hkd_monthly": <number or null>,
    "max_salary_hkd_monthly": <number or null>,
    "found": true/false,
    "raw_text": "the exact salary text found in the description"
}

Rules:
- Convert all amounts to monthly HKD (multiply annual by 12, weekly by 4.33, daily by 22)
- If only one amount is found, set both min and max to that value
- If no salary is found, set "found": false and return null for min/max
- Always return valid JSON, no extra explanation`

type salaryExtraction struct {
	MinSalaryHKDMonthly *int   `json:"min_salary_hkd_monthly"`
	MaxSalaryHKDMonthly *int   `json:"max_salary_hkd_monthly"`
	Found               bool   `json:"found"`
	RawText             string `json:"raw_text"`
}

// ExtractSalary tries the model first and falls back to regex on any
// failure. az may be nil, in which case only regex runs.
func ExtractSalary(ctx context.Context, az *azure.Client, text string) (minSalary, maxSalary int, ok bool) {
	if text == "" {
		return 0, 0, false
	}
	if az == nil {
		return ExtractSalaryRegex(text)
	}

	snippet := text
	if len(snippet) > 3000 {
		snippet = snippet[:3000]
	}

	content, err := az.Chat(ctx, []azure.Message{
		{Role: "system", Content: "You are a salary extraction expert. Return only valid JSON."},
		{Role: "user", Content: fmt.Sprintf(salaryExtractionPrompt, snippet)},
	}, azure.ChatOptions{Temperature: 0.1, MaxTokens: 300, JSONMode: true})
	if err != nil {
		return ExtractSalaryRegex(text)
	}

	var extracted salaryExtraction
	if err := json.Unmarshal([]byte(azure.CleanJSON(content)), &extracted); err != nil {
		return ExtractSalaryRegex(text)
	}

	if !extracted.Found {
		return ExtractSalaryRegex(text)
	}
	switch {
	case extracted.MinSalaryHKDMonthly != nil && extracted.MaxSalaryHKDMonthly != nil:
		return *extracted.MinSalaryHKDMonthly, *extracted.MaxSalaryHKDMonthly, true
	case extracted.MinSalaryHKDMonthly != nil:
		return *extracted.MinSalaryHKDMonthly, *extracted.MinSalaryHKDMonthly, true
	default:
		return ExtractSalaryRegex(text)
	}
}

// FilterBySalary drops jobs that advertise a range entirely below the
// seeker's minimum expectation. Jobs without detectable salary info are
// kept.
func FilterBySalary(ctx context.Context, az *azure.Client, jobs []ScoredJob, minExpected int) []ScoredJob {
	if minExpected <= 0 {
		return jobs
	}

	filtered := make([]ScoredJob, 0, len(jobs))
	for _, job := range jobs {
		_, maxSal, ok := ExtractSalary(ctx, az, job.Description)
		if !ok || maxSal >= minExpected {
			filtered = append(filtered, job)
		}
	}
	return filtered
}

// SalaryBand labels a monthly HKD range for dashboard grouping.
func SalaryBand(minSalary, maxSalary int) string {
	mid := (minSalary + maxSalary) / 2
	switch {
	case mid <= 0:
		return "Not specified"
	case mid < 20000:
		return "Below 20K"
	case mid < 40000:
		return "20K-40K"
	case mid < 60000:
		return "40K-60K"
	case mid < 80000:
		return "60K-80K"
	default:
		return "80K+"
	}
}
