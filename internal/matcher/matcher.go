// =============================================================================
// XLSX Header Stamper - Fuzzy Matcher
// =============================================================================
//
// This module picks the roster key that best matches a normalized file name.
// Similarity is the Ratcliff/Obershelp sequence ratio (2*M/T over longest
// matching blocks), computed character-wise with go-difflib. Both sides are
// expected to be pre-normalized; the matcher never normalizes.
//
// The threshold is deliberately permissive (0.3 by default): a semantically
// wrong candidate that scores above it is accepted without any warning. That
// trade-off is inherited from the product; raising the threshold is the only
// guard the configuration offers.
//
// =============================================================================

package matcher

import (
	"strings"

	"github.com/pmezard/go-difflib/difflib"
)

// Match is one scored candidate.
type Match struct {
	// Key is the winning normalized roster key.
	Key string

	// Score is the similarity ratio in [0, 1].
	Score float64
}

// Matcher scores normalized queries against normalized candidate keys.
type Matcher struct {
	// Threshold is the minimum ratio for a candidate to be accepted.
	Threshold float64
}

// New returns a Matcher with the given acceptance threshold.
func New(threshold float64) *Matcher {
	return &Matcher{Threshold: threshold}
}

// Best returns the highest-scoring candidate whose ratio reaches the
// threshold. Candidates are scanned in slice order and only a strictly
// higher score displaces the current best, so on ties the earliest
// candidate wins. Returns false when no candidate reaches the threshold.
func (m *Matcher) Best(query string, keys []string) (Match, bool) {
	best := Match{Score: -1}
	for _, key := range keys {
		score := Ratio(query, key)
		if score > best.Score {
			best = Match{Key: key, Score: score}
		}
	}
	if best.Score < m.Threshold {
		return Match{}, false
	}
	return best, true
}

// Ratio computes the character-level Ratcliff/Obershelp similarity of two
// strings. Identical strings score 1.0; strings with no common characters
// score 0.0.
func Ratio(a, b string) float64 {
	sm := difflib.NewMatcher(strings.Split(a, ""), strings.Split(b, ""))
	return sm.Ratio()
}
