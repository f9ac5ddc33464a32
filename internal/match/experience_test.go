package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestYearsOfExperience(t *testing.T) {
	cases := []struct {
		text string
		want int
	}{
		{"5+ years of experience", 5},
		{"Senior (8 years)", 8},
		{"3 yrs backend, 6 years data engineering", 6},
		{"1 year internship", 1},
		{"Entry level", 0},
		{"", 0},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, YearsOfExperience(tc.text), tc.text)
	}
}
