package lib

import (
	"github.com/schedm/schedm/internal/layout"
)

// Interval is a half-open time span used by the track layout engine.
type Interval = layout.Interval

// Assignment holds the track layout for a set of intervals.
type Assignment = layout.Assignment

// Geometry converts track counts into pixel heights.
type Geometry = layout.Geometry

// AssignTracks assigns each interval to the lowest non-overlapping track.
//
// The returned assignment's Tracks slice is parallel to the input slice, and
// TrackCount is the number of tracks used, which is the minimum possible
// (equal to the maximum number of intervals covering any single point).
// Intervals that only touch at their endpoints share a track.
//
// The function is total and deterministic: any input, in any order, gets an
// assignment, and equal inputs always get equal outputs. Use
// [ValidateIntervals] first to reject degenerate spans.
func AssignTracks(intervals []Interval) Assignment {
	return layout.Assign(intervals)
}

// ValidateIntervals reports the first degenerate interval (zero or negative
// length) as [ErrNotValid]. Nil means all intervals are well formed.
func ValidateIntervals(intervals []Interval) error {
	err := layout.Validate(intervals)
	if err != nil {
		return joinErrors(err, ErrNotValid)
	}
	return nil
}
