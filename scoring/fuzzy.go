package scoring

import (
	"math"
	"strings"

	"github.com/texttheater/golang-levenshtein/levenshtein"
)

// FuzzyThreshold is the partial ratio a pair must reach to count as a match.
const FuzzyThreshold = 80

// FuzzyMatch reports whether a and b are similar enough, ignoring case.
// An empty input never matches.
func FuzzyMatch(a, b string, threshold int) bool {
	if a == "" || b == "" {
		return false
	}
	return PartialRatio(strings.ToLower(a), strings.ToLower(b)) >= threshold
}

// PartialRatio scores 0-100 how well the shorter string aligns with the best
// matching stretch of the longer one. Windows hanging over either end of the
// longer string are considered too.
func PartialRatio(a, b string) int {
	shorter, longer := []rune(a), []rune(b)
	if len(shorter) > len(longer) {
		shorter, longer = longer, shorter
	}
	if len(shorter) == 0 {
		return 0
	}
	if strings.Contains(string(longer), string(shorter)) {
		return 100
	}

	m, n := len(shorter), len(longer)
	best := 0.0
	consider := func(window []rune) bool {
		if r := ratio(shorter, window); r > best {
			best = r
		}
		return best >= 1
	}

	for i := 0; i+m <= n; i++ {
		if consider(longer[i : i+m]) {
			return 100
		}
	}
	for k := 1; k < m && k <= n; k++ {
		consider(longer[:k])
		consider(longer[n-k:])
	}

	return int(math.Round(best * 100))
}

// ratio is the indel similarity of a and b in [0,1].
func ratio(a, b []rune) float64 {
	sum := len(a) + len(b)
	if sum == 0 {
		return 0
	}
	dist := levenshtein.DistanceForStrings(a, b, levenshtein.DefaultOptions)
	return float64(sum-dist) / float64(sum)
}
