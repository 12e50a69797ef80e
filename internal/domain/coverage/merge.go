package coverage

import (
	"cmp"
	"slices"

	m "github.com/mouse-blink/sensorgrid/internal/model"
)

// Merge folds intervals into a coverage set: sorted by Lo, with overlapping
// and adjacent intervals joined. The input slice is left untouched.
func Merge(intervals []m.Interval) []m.Interval {
	if len(intervals) == 0 {
		return []m.Interval{}
	}

	sorted := slices.Clone(intervals)
	slices.SortFunc(sorted, func(a, b m.Interval) int {
		return cmp.Compare(a.Lo, b.Lo)
	})

	merged := make([]m.Interval, 0, len(sorted))
	current := sorted[0]

	for _, next := range sorted[1:] {
		if next.Lo <= current.Hi+1 {
			current.Hi = max(current.Hi, next.Hi)
			continue
		}

		merged = append(merged, current)
		current = next
	}

	return append(merged, current)
}

// Exclude removes point from the interval, returning zero, one or two pieces.
func Exclude(iv m.Interval, point int) []m.Interval {
	switch {
	case !iv.Contains(point):
		return []m.Interval{iv}
	case iv.Lo == iv.Hi:
		return nil
	case point == iv.Lo:
		return []m.Interval{{Lo: iv.Lo + 1, Hi: iv.Hi}}
	case point == iv.Hi:
		return []m.Interval{{Lo: iv.Lo, Hi: iv.Hi - 1}}
	default:
		return []m.Interval{{Lo: iv.Lo, Hi: point - 1}, {Lo: point + 1, Hi: iv.Hi}}
	}
}

// ExcludeAll carves every point out of the interval.
func ExcludeAll(iv m.Interval, points ...int) []m.Interval {
	pieces := []m.Interval{iv}

	for _, point := range points {
		next := make([]m.Interval, 0, len(pieces)+1)
		for _, piece := range pieces {
			next = append(next, Exclude(piece, point)...)
		}

		pieces = next
	}

	return pieces
}

// Clip restricts the interval to [lo, hi]. The second result is false when
// the interval lies entirely outside the window.
func Clip(iv m.Interval, lo, hi int) (m.Interval, bool) {
	if iv.Hi < lo || iv.Lo > hi {
		return m.Interval{}, false
	}

	return m.Interval{Lo: max(iv.Lo, lo), Hi: min(iv.Hi, hi)}, true
}

// Total returns the number of cells in a coverage set.
func Total(set []m.Interval) int {
	total := 0
	for _, iv := range set {
		total += iv.Len()
	}

	return total
}

// Gaps returns the uncovered stretches of [lo, hi] left by a coverage set.
// The set must already be merged and clipped to the window.
func Gaps(set []m.Interval, lo, hi int) []m.Interval {
	var gaps []m.Interval

	next := lo
	for _, iv := range set {
		if iv.Lo > next {
			gaps = append(gaps, m.Interval{Lo: next, Hi: iv.Lo - 1})
		}

		next = max(next, iv.Hi+1)
	}

	if next <= hi {
		gaps = append(gaps, m.Interval{Lo: next, Hi: hi})
	}

	return gaps
}
