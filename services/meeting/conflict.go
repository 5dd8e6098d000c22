package meeting

import (
	"fmt"
	"time"

	"tutorsched/models"
)

// Overlap shapes, used only to describe a conflict in logs.
const (
	OverlapContains     = "contains"      // candidate covers the whole existing meeting
	OverlapWithin       = "within"        // candidate lies inside the existing meeting
	OverlapStartsInside = "starts-inside" // candidate starts during the existing meeting
	OverlapEndsInside   = "ends-inside"   // candidate ends during the existing meeting
)

// Overlaps reports whether the half-open intervals [s1, e1) and [s2, e2) intersect.
// Meetings that only touch at a boundary do not overlap.
func Overlaps(s1, e1, s2, e2 time.Time) bool {
	return s1.Before(e2) && e1.After(s2)
}

// FirstConflict returns the first candidate, in the given order, whose stored interval
// overlaps [start, end).
func FirstConflict(candidates []models.Meeting, start, end time.Time) (*models.Meeting, error) {
	for i := range candidates {
		cs, ce, err := storedInterval(candidates[i])
		if err != nil {
			return nil, fmt.Errorf("stored meeting %s has unreadable times: %w", candidates[i].ID, err)
		}
		if Overlaps(start, end, cs, ce) {
			return &candidates[i], nil
		}
	}
	return nil, nil
}

// ClassifyOverlap names how [start, end) sits against an overlapping [existingStart, existingEnd).
// The result is meaningless for intervals that do not overlap.
func ClassifyOverlap(existingStart, existingEnd, start, end time.Time) string {
	switch {
	case !start.After(existingStart) && !end.Before(existingEnd):
		return OverlapContains
	case !start.Before(existingStart) && !end.After(existingEnd):
		return OverlapWithin
	case start.After(existingStart):
		return OverlapStartsInside
	default:
		return OverlapEndsInside
	}
}
