package demo

import "strings"

var categoryKeywords = []struct {
	category string
	keywords []string
}{
	{"technical_skills", []string{"python", "django", "postgresql", "aws", "docker"}},
	{"experience_level", []string{"experience", "years", "senior"}},
	{"team_size", []string{"team", "people", "mentoring"}},
	{"salary", []string{"salary", "120k", "150k"}},
	{"location", []string{"remote", "work"}},
	{"timeline", []string{"months", "timeline"}},
}

// Categorize assigns a requirement category to a statement by keyword.
// The first matching category wins; unmatched statements are culture_fit.
func Categorize(statement string) string {
	lower := strings.ToLower(statement)
	for _, entry := range categoryKeywords {
		for _, kw := range entry.keywords {
			if strings.Contains(lower, kw) {
				return entry.category
			}
		}
	}
	return "culture_fit"
}
