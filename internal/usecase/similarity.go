package usecase

import (
	"math"
	"strings"

	"github.com/agnivade/levenshtein"
)

// defaultContainmentScore is awarded when one term contains the other:
// a strong but not perfect signal.
const defaultContainmentScore = 85

// Scorer computes a 0-100 likeness score between two free-text terms.
type Scorer struct {
	containmentScore int
}

// NewScorer creates a scorer. A containment score outside 1..100 falls back
// to the default of 85.
func NewScorer(containmentScore int) *Scorer {
	if containmentScore <= 0 || containmentScore > 100 {
		containmentScore = defaultContainmentScore
	}
	return &Scorer{containmentScore: containmentScore}
}

// Score compares two terms after trimming and lowercasing. Exact matches
// score 100, substring containment scores the configured containment value,
// anything else degrades by Levenshtein edit distance relative to the
// longer term, floored at 0. The metric is symmetric.
func (s *Scorer) Score(a, b string) int {
	na := strings.ToLower(strings.TrimSpace(a))
	nb := strings.ToLower(strings.TrimSpace(b))

	if na == nb {
		return 100
	}
	if na == "" || nb == "" {
		return 0
	}
	if strings.Contains(na, nb) || strings.Contains(nb, na) {
		return s.containmentScore
	}

	maxLen := len([]rune(na))
	if lb := len([]rune(nb)); lb > maxLen {
		maxLen = lb
	}

	distance := levenshtein.ComputeDistance(na, nb)
	score := int(math.Round(float64(maxLen-distance) / float64(maxLen) * 100))
	if score < 0 {
		return 0
	}
	return score
}
