// Package rematch pairs similar lines (or words) across the two sides of a
// change so renderers can highlight what changed inside each pair.
package rematch

import "strings"

// Levenshtein returns the edit distance between a and b counted in runes.
func Levenshtein(a, b string) int {
	ar := []rune(a)
	br := []rune(b)
	if len(ar) == 0 {
		return len(br)
	}
	if len(br) == 0 {
		return len(ar)
	}

	prev := make([]int, len(ar)+1)
	curr := make([]int, len(ar)+1)
	for j := range prev {
		prev[j] = j
	}

	for i, bc := range br {
		curr[0] = i + 1
		for j, ac := range ar {
			cost := prev[j]
			if ac != bc {
				cost++
			}
			curr[j+1] = min(prev[j+1]+1, curr[j]+1, cost)
		}
		prev, curr = curr, prev
	}

	return prev[len(ar)]
}

// StringDistance is the Levenshtein distance of the trimmed strings divided
// by their combined rune count. The result lies in [0, 1].
func StringDistance(a, b string) float64 {
	a = strings.TrimSpace(a)
	b = strings.TrimSpace(b)
	total := len([]rune(a)) + len([]rune(b))
	if total == 0 {
		return 0
	}
	return float64(Levenshtein(a, b)) / float64(total)
}

// NewDistanceFunc builds a StringDistance metric over any item type.
func NewDistanceFunc[T any](str func(T) string) func(T, T) float64 {
	return func(x, y T) float64 {
		return StringDistance(str(x), str(y))
	}
}
