package match

import (
	"sort"
	"strings"
)

// DomainKeywords maps industry domains to the keywords that identify
// postings belonging to them.
var DomainKeywords = map[string][]string{
	"FinTech":                {"fintech", "financial technology", "blockchain", "crypto", "payment", "banking technology", "digital banking"},
	"ESG & Sustainability":   {"esg", "sustainability", "environmental", "green", "carbon", "climate", "renewable"},
	"Data Analytics":         {"data analytics", "data analysis", "business intelligence", "bi", "data science", "analytics", "big data"},
	"Digital Transformation": {"digital transformation", "digitalization", "digital strategy", "innovation"},
	"Investment Banking":     {"investment banking", "ib", "m&a", "mergers", "acquisitions", "capital markets", "equity research"},
	"Consulting":             {"consulting", "consultant", "advisory", "strategy consulting", "management consulting"},
	"Technology":             {"software", "technology", "tech", "engineering", "developer", "programming", "it"},
	"Healthcare":             {"healthcare", "medical", "health", "hospital", "clinical", "pharmaceutical", "biotech"},
	"Education":              {"education", "teaching", "academic", "university", "school", "e-learning", "edtech"},
	"Real Estate":            {"real estate", "property", "realty", "property management"},
	"Retail & E-commerce":    {"retail", "e-commerce", "ecommerce", "online retail"},
	"Marketing & Advertising": {"marketing", "advertising", "brand", "digital marketing", "social media"},
	"Legal":            {"legal", "law", "attorney", "lawyer", "compliance", "regulatory"},
	"Human Resources":  {"human resources", "hr", "recruitment", "talent acquisition", "people operations"},
	"Operations":       {"operations", "supply chain", "logistics", "procurement"},
}

// AvailableDomains lists the supported domain names, sorted.
func AvailableDomains() []string {
	names := make([]string, 0, len(DomainKeywords))
	for name := range DomainKeywords {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// FilterByDomains keeps jobs matching at least one of the target
// domains, searching title, description and company. With no targets
// all jobs pass through unchanged.
func FilterByDomains(jobs []ScoredJob, targetDomains []string) []ScoredJob {
	if len(targetDomains) == 0 {
		return jobs
	}

	filtered := make([]ScoredJob, 0, len(jobs))
	for _, job := range jobs {
		combined := strings.ToLower(job.Title + " " + job.Description + " " + job.Company)
		for _, domain := range targetDomains {
			keywords, ok := DomainKeywords[domain]
			if !ok {
				keywords = []string{strings.ToLower(domain)}
			}
			if containsAny(combined, keywords) {
				filtered = append(filtered, job)
				break
			}
		}
	}
	return filtered
}

// ExtractDomain labels a posting with the first domain whose keywords
// appear in it, or "Other".
func ExtractDomain(job ScoredJob) string {
	combined := strings.ToLower(job.Title + " " + job.Description + " " + job.Company)
	for _, domain := range AvailableDomains() {
		if containsAny(combined, DomainKeywords[domain]) {
			return domain
		}
	}
	return "Other"
}

func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, strings.ToLower(kw)) {
			return true
		}
	}
	return false
}
