package match

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractSalaryRegexRanges(t *testing.T) {
	cases := []struct {
		text     string
		min, max int
	}{
		{"Salary: HKD 25,000 - 35,000 per month", 25000, 35000},
		{"HKD$30k-40k plus bonus", 30000, 40000},
		{"offering 28,000-32,000 HKD", 28000, 32000},
		{"HKD 45,000 per month", 45000, 45000},
		{"20,000 HKD monthly", 20000, 20000},
		{"$18,000 - $22,000 negotiable", 18000, 22000},
	}
	for _, tc := range cases {
		lo, hi, ok := ExtractSalaryRegex(tc.text)
		assert.True(t, ok, "expected match in %q", tc.text)
		assert.Equal(t, tc.min, lo, "min for %q", tc.text)
		assert.Equal(t, tc.max, hi, "max for %q", tc.text)
	}
}

func TestExtractSalaryRegexNoMatch(t *testing.T) {
	for _, text := range []string{"", "competitive salary", "great benefits package"} {
		_, _, ok := ExtractSalaryRegex(text)
		assert.False(t, ok, "unexpected match in %q", text)
	}
}

func TestFilterBySalaryKeepsUnknown(t *testing.T) {
	jobs := make([]ScoredJob, 3)
	jobs[0].Description = "Salary: HKD 15,000 - 18,000 per month"
	jobs[1].Description = "Salary: HKD 30,000 - 40,000 per month"
	jobs[2].Description = "competitive package"

	filtered := FilterBySalary(context.Background(), nil, jobs, 25000)
	assert.Len(t, filtered, 2)
	assert.Equal(t, jobs[1].Description, filtered[0].Description)
	assert.Equal(t, jobs[2].Description, filtered[1].Description)
}

func TestFilterBySalaryNoExpectation(t *testing.T) {
	jobs := make([]ScoredJob, 1)
	jobs[0].Description = "Salary: HKD 10,000 per month"
	assert.Len(t, FilterBySalary(context.Background(), nil, jobs, 0), 1)
}

func TestSalaryBand(t *testing.T) {
	assert.Equal(t, "Not specified", SalaryBand(0, 0))
	assert.Equal(t, "Below 20K", SalaryBand(15000, 18000))
	assert.Equal(t, "20K-40K", SalaryBand(25000, 35000))
	assert.Equal(t, "40K-60K", SalaryBand(40000, 60000))
	assert.Equal(t, "60K-80K", SalaryBand(60000, 80000))
	assert.Equal(t, "80K+", SalaryBand(90000, 120000))
}
