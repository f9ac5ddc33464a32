package resumegen

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func sampleResume() *Resume {
	return &Resume{
		Header: Header{
			Name:     "Jane Doe",
			Title:    "Senior Data Analyst",
			Email:    "jane@example.com",
			Phone:    "+852 1234 5678",
			Location: "Hong Kong",
		},
		Summary:           "Analyst with 6 years of experience.",
		SkillsHighlighted: []string{"Python", "SQL", "Tableau"},
		Experience: []ExperienceEntry{
			{
				Company: "Acme Ltd",
				Title:   "Data Analyst",
				Dates:   "2019 - 2024",
				Bullets: []string{"Cut reporting time by 40%", "Led a team of 3"},
			},
		},
		Education:      "BSc Computer Science, HKU",
		Certifications: "AWS Certified Data Analytics",
	}
}

func TestFormatText(t *testing.T) {
	out := FormatText(sampleResume())

	assert.Contains(t, out, "Jane Doe\n")
	assert.Contains(t, out, "Senior Data Analyst\n")
	assert.Contains(t, out, "jane@example.com | +852 1234 5678 | Hong Kong")
	assert.Contains(t, out, "PROFESSIONAL SUMMARY")
	assert.Contains(t, out, "Python • SQL • Tableau")
	assert.Contains(t, out, "Data Analyst — Acme Ltd (2019 - 2024)")
	assert.Contains(t, out, "  - Cut reporting time by 40%")
	assert.Contains(t, out, "EDUCATION")
	assert.Contains(t, out, "CERTIFICATIONS")
}

func TestFormatTextSkipsEmptySections(t *testing.T) {
	r := &Resume{Header: Header{Name: "Jane Doe", Email: "jane@example.com"}}
	out := FormatText(r)

	assert.Contains(t, out, "Jane Doe")
	assert.NotContains(t, out, "PROFESSIONAL SUMMARY")
	assert.NotContains(t, out, "KEY SKILLS")
	assert.NotContains(t, out, "EXPERIENCE")
	assert.NotContains(t, out, "EDUCATION")
	assert.NotContains(t, out, "CERTIFICATIONS")
}
