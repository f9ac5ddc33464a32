package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func scoredJob(title, description, company string) ScoredJob {
	var j ScoredJob
	j.Title = title
	j.Description = description
	j.Company = company
	return j
}

func TestFilterByDomains(t *testing.T) {
	jobs := []ScoredJob{
		scoredJob("Blockchain Engineer", "Build payment rails", "CryptoPay"),
		scoredJob("Primary Teacher", "Teaching at a school", "HK Academy"),
		scoredJob("Sous Chef", "Restaurant kitchen role", "Bistro"),
	}

	filtered := FilterByDomains(jobs, []string{"FinTech"})
	assert.Len(t, filtered, 1)
	assert.Equal(t, "Blockchain Engineer", filtered[0].Title)

	filtered = FilterByDomains(jobs, []string{"FinTech", "Education"})
	assert.Len(t, filtered, 2)
}

func TestFilterByDomainsNoTargets(t *testing.T) {
	jobs := []ScoredJob{scoredJob("Anything", "", "")}
	assert.Equal(t, jobs, FilterByDomains(jobs, nil))
}

func TestFilterByDomainsUnknownDomainFallsBackToLiteral(t *testing.T) {
	jobs := []ScoredJob{
		scoredJob("Marine Biologist", "Research on coral reefs", "Ocean Institute"),
	}
	filtered := FilterByDomains(jobs, []string{"coral"})
	assert.Len(t, filtered, 1)
}

func TestExtractDomain(t *testing.T) {
	assert.Equal(t, "Consulting", ExtractDomain(scoredJob("Strategy Consultant", "advisory work", "BigFour")))
	assert.Equal(t, "Other", ExtractDomain(scoredJob("Zookeeper", "animal care", "Ocean Park")))
}

func TestAvailableDomainsSorted(t *testing.T) {
	domains := AvailableDomains()
	assert.NotEmpty(t, domains)
	for i := 1; i < len(domains); i++ {
		assert.Less(t, domains[i-1], domains[i])
	}
	assert.Contains(t, domains, "FinTech")
}
