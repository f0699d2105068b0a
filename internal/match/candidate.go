package match

import (
	"sort"
)

const (
	// SuggestThreshold is the minimum similarity for a name to be suggested.
	SuggestThreshold = 0.6
	// MaxSuggestions caps the names listed in one hint.
	MaxSuggestions = 3
)

// Candidate is a known member name scored against a name that was not found.
type Candidate struct {
	Name string
	// Score is the Similarity to the wanted name, higher is better.
	Score float64
}

// CandidateList is a list of candidates with ranking functionality.
type CandidateList []Candidate

// RankCandidates scores every known name against wanted.
// Returns candidates sorted by score (descending), ties broken by name.
func RankCandidates(wanted string, known []string) CandidateList {
	candidates := make(CandidateList, 0, len(known))
	for _, name := range known {
		candidates = append(candidates, Candidate{
			Name:  name,
			Score: Similarity(wanted, name),
		})
	}

	sort.Sort(candidates)

	return candidates
}

// Suggest returns up to MaxSuggestions known names similar enough to wanted,
// closest first.
func Suggest(wanted string, known []string) []string {
	ranked := RankCandidates(wanted, known).AboveThreshold(SuggestThreshold).Top(MaxSuggestions)

	names := make([]string, 0, len(ranked))
	for _, c := range ranked {
		names = append(names, c.Name)
	}

	return names
}

// Len implements sort.Interface.
func (c CandidateList) Len() int { return len(c) }

// Swap implements sort.Interface.
func (c CandidateList) Swap(i, j int) { c[i], c[j] = c[j], c[i] }

// Less implements sort.Interface (higher score first).
func (c CandidateList) Less(i, j int) bool {
	if c[i].Score != c[j].Score {
		return c[i].Score > c[j].Score
	}

	return c[i].Name < c[j].Name
}

// Top returns the first n candidates.
func (c CandidateList) Top(n int) CandidateList {
	if n >= len(c) {
		return c
	}

	return c[:n]
}

// AboveThreshold returns candidates with score at or above the threshold.
func (c CandidateList) AboveThreshold(threshold float64) CandidateList {
	var result CandidateList

	for _, cand := range c {
		if cand.Score >= threshold {
			result = append(result, cand)
		}
	}

	return result
}
