// Package matching scores candidate skills against job skills and ranks
// jobs for a candidate and candidates for a job.
package matching

import (
	"strings"

	"github.com/jumptake/backend/models"
)

// NormalizeSkill is the comparison form of a skill.
func NormalizeSkill(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Score counts the distinct candidate skills that appear in the job's
// skills, compared case-insensitively. Blank skills never match.
func Score(candidate, job []string) int {
	return len(MatchedSkills(candidate, job))
}

// MatchedSkills returns the candidate skills found in the job's skills, in
// candidate order, keeping the first spelling of each.
func MatchedSkills(candidate, job []string) []string {
	if len(candidate) == 0 || len(job) == 0 {
		return []string{}
	}

	jobSet := make(map[string]struct{}, len(job))
	for _, s := range job {
		if n := NormalizeSkill(s); n != "" {
			jobSet[n] = struct{}{}
		}
	}

	matched := []string{}
	seen := make(map[string]struct{}, len(candidate))
	for _, s := range candidate {
		n := NormalizeSkill(s)
		if n == "" {
			continue
		}
		if _, dup := seen[n]; dup {
			continue
		}
		seen[n] = struct{}{}
		if _, ok := jobSet[n]; ok {
			matched = append(matched, strings.TrimSpace(s))
		}
	}
	return matched
}

// CandidateSkills flattens a profile's skills field into a list.
func CandidateSkills(skills models.TextList) []string {
	return skills.Values()
}
