package intake

import (
	"sort"

	"talentintel/intake-gateway/models"
)

// IdentifyMissingInfo returns the labels of every required category not
// covered by requirements, sorted.
func IdentifyMissingInfo(requirements []models.Requirement, required map[string]string) []string {
	covered := make(map[string]bool, len(requirements))
	for _, req := range requirements {
		covered[req.Category] = true
	}

	missing := make([]string, 0, len(required))
	for category, label := range required {
		if !covered[category] {
			missing = append(missing, label)
		}
	}
	sort.Strings(missing)
	return missing
}
