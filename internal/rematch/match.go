package rematch

// Group is a run of items from the old side aligned with a run from the new side.
type Group[T any] struct {
	Old []T
	New []T
}

type bestMatch struct {
	indexA int
	indexB int
	score  float64
}

// Match recursively splits a and b around their closest pair. Concatenating
// the Old (New) halves of the returned groups yields a (b) in order.
func Match[T any](a, b []T, distance func(T, T) float64) []Group[T] {
	return group(a, b, distance)
}

func group[T any](a, b []T, distance func(T, T) float64) []Group[T] {
	bm, ok := findBestMatch(a, b, distance, make(map[[2]int]float64))
	if !ok || len(a)+len(b) < 3 {
		return []Group[T]{{Old: clone(a), New: clone(b)}}
	}

	var groups []Group[T]
	if bm.indexA > 0 || bm.indexB > 0 {
		groups = append(groups, group(a[:bm.indexA], b[:bm.indexB], distance)...)
	}
	groups = append(groups, Group[T]{
		Old: []T{a[bm.indexA]},
		New: []T{b[bm.indexB]},
	})
	if bm.indexA+1 < len(a) || bm.indexB+1 < len(b) {
		groups = append(groups, group(a[bm.indexA+1:], b[bm.indexB+1:], distance)...)
	}
	return groups
}

// findBestMatch returns the first pair with the lowest distance. Distances
// are memoized by coordinate for the current level only.
func findBestMatch[T any](a, b []T, distance func(T, T) float64, cache map[[2]int]float64) (bestMatch, bool) {
	var best bestMatch
	found := false
	for i := range a {
		for j := range b {
			key := [2]int{i, j}
			d, ok := cache[key]
			if !ok {
				d = distance(a[i], b[j])
				cache[key] = d
			}
			if !found || d < best.score {
				best = bestMatch{indexA: i, indexB: j, score: d}
				found = true
			}
		}
	}
	return best, found
}

func clone[T any](s []T) []T {
	out := make([]T, len(s))
	copy(out, s)
	return out
}

// MatchConfig bounds the cost of MatchWithConfig.
type MatchConfig struct {
	// MaxComparisons caps len(a)*len(b).
	MaxComparisons int
	// MaxLineSize caps the length of any single item's content.
	MaxLineSize int
}

// DefaultMatchConfig returns the library defaults.
func DefaultMatchConfig() MatchConfig {
	return MatchConfig{MaxComparisons: 2500, MaxLineSize: 200}
}

// MatchWithConfig behaves like Match but returns a and b as one unsplit
// group when the input exceeds the configured bounds.
func MatchWithConfig[T any](a, b []T, distance func(T, T) float64, cfg MatchConfig, content func(T) string) []Group[T] {
	if len(a)*len(b) > cfg.MaxComparisons {
		return []Group[T]{{Old: clone(a), New: clone(b)}}
	}
	for _, items := range [][]T{a, b} {
		for _, item := range items {
			if len(content(item)) > cfg.MaxLineSize {
				return []Group[T]{{Old: clone(a), New: clone(b)}}
			}
		}
	}
	return Match(a, b, distance)
}
