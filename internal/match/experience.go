package match

import (
	"regexp"
	"strconv"
	"strings"
)

var yearsPattern = regexp.MustCompile(`(\d{1,2})\s*\+?\s*(?:years?|yrs?)`)

// YearsOfExperience pulls the largest "N years" figure out of free text
// such as an experience-level label or a work history blob. Returns 0
// when no figure is found.
func YearsOfExperience(text string) int {
	most := 0
	for _, m := range yearsPattern.FindAllStringSubmatch(strings.ToLower(text), -1) {
		if n, err := strconv.Atoi(m[1]); err == nil && n > most {
			most = n
		}
	}
	return most
}
