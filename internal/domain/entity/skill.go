package entity

import "strings"

// Skill is an entry of the fixed skill catalog a rescuer may claim.
type Skill struct {
	ID   int
	Name string
}

// RescuerSkillLink associates a rescuer with a catalog skill. It has no identity beyond the pair.
type RescuerSkillLink struct {
	RescuerID string
	SkillID   int
}

// NormalizeSkillNames trims and lowercases skill names, dropping blanks and duplicates
// while keeping the first-seen order.
func NormalizeSkillNames(names []string) []string {
	result := make([]string, 0, len(names))
	seen := make(map[string]struct{}, len(names))
	for _, name := range names {
		n := strings.ToLower(strings.TrimSpace(name))
		if n == "" {
			continue
		}
		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}
		result = append(result, n)
	}

	return result
}
