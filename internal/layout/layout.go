// Package layout implements the multi-track interval layout engine: a greedy
// first-fit assignment of overlapping time intervals to stacked tracks so that
// tasks sharing a person+date cell never collide visually.
package layout

import (
	"fmt"
	"sort"
)

// Interval is a half-open [Start, End) time span in fractional hours. The
// engine only compares the values, so any totally ordered unit works.
type Interval struct {
	Start float64
	End   float64
}

// Overlaps returns true when the two intervals overlap. Intervals that merely
// touch at an endpoint (a.End == b.Start) do not overlap and may share a track.
func Overlaps(a, b Interval) bool {
	return a.Start < b.End && b.Start < a.End
}

// Assignment is the result of a layout pass. Tracks is parallel to the input
// intervals (original order) and holds the 0-based track index for each one.
// TrackCount is the number of distinct tracks used, 0 for empty input.
type Assignment struct {
	Tracks     []int
	TrackCount int
}

// Assign maps every interval to a track so that no two intervals on the same
// track overlap, using the minimum possible number of tracks.
//
// Intervals are processed by ascending start (stable, so equal starts keep
// their input order) and each one is placed on the lowest-indexed track that
// is free by the time it begins, opening a new track when none is. The
// lowest-index preference is a determinism guarantee for callers, not an
// implementation accident: track 0 renders topmost and a stable preference
// avoids lane churn between relayouts of similar data.
//
// The operation is total: it never fails and performs no validation, malformed
// intervals (End <= Start) flow through the same comparisons. Use Validate to
// reject them up front when that matters.
func Assign(intervals []Interval) Assignment {
	tracks := make([]int, len(intervals))
	if len(intervals) == 0 {
		return Assignment{Tracks: tracks}
	}

	order := make([]int, len(intervals))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return intervals[order[a]].Start < intervals[order[b]].Start
	})

	// trackEnds[t] holds the end of the latest interval placed on track t.
	var trackEnds []float64
	for _, idx := range order {
		iv := intervals[idx]

		placed := false
		for t, end := range trackEnds {
			if end <= iv.Start {
				tracks[idx] = t
				trackEnds[t] = iv.End
				placed = true
				break
			}
		}

		if !placed {
			tracks[idx] = len(trackEnds)
			trackEnds = append(trackEnds, iv.End)
		}
	}

	return Assignment{Tracks: tracks, TrackCount: len(trackEnds)}
}

// Validate checks that every interval has a positive length. Assign itself
// accepts degenerate intervals without complaint, this is an opt-in guard for
// callers that want to reject them before layout.
func Validate(intervals []Interval) error {
	for i, iv := range intervals {
		if iv.End <= iv.Start {
			return fmt.Errorf("interval %d has non-positive length (start=%v end=%v)", i, iv.Start, iv.End)
		}
	}
	return nil
}
