// Copyright © 2015 CurveKit Authors.
// Use is governed by a BSD-style license found in the LICENSE file.

package curve

// transition.go encodes the tracking-direction rules and the interactive
// endframe<->keyframe toggle, mirroring 3DEqualizer's SetTrackingFwd /
// SetTrackingBwd / SetTrackingFwdBwd behavior (see SPEC_FULL.md item 1).

// Direction is a tracking direction, carried as point-list metadata
// across endframe<->keyframe conversions.
type Direction int

const (
	Forward Direction = iota
	Backward
	Bidirectional
)

// DirectionState remembers the previously-applied tracking direction so
// a caller driving a sequence of direction changes does not have to
// thread it through by hand — it mirrors the two-argument shape of the
// original update_keyframe_status_for_tracking_direction(curve_data,
// new_direction, previous_direction) call.
type DirectionState struct {
	previous    Direction
	hasPrevious bool
}

// Apply runs UpdateForDirection with the remembered previous direction
// and records new as the previous direction for the next call.
func (d *DirectionState) Apply(points []Point, new Direction) []Point {
	var prev *Direction
	if d.hasPrevious {
		prev = &d.previous
	}
	out := UpdateForDirection(points, new, prev)
	d.previous, d.hasPrevious = new, true
	return out
}

// UpdateForDirection applies the forward, backward, or bidirectional
// direction rules to points and returns a new point list; points is left
// unmodified. previous matters only for Bidirectional; a nil previous is
// treated as Forward there.
//
// spec.md §4.3's "points lacking a status field are treated as Keyframe"
// normalization is a property of the legacy tuple encoding (a bare
// 3-element tuple has no status field at all), not of an already-built
// Point's Status — by the time a []Point exists, an explicit Normal
// status and a defaulted one are indistinguishable unless that
// distinction was preserved at ingestion. So this function does not
// reinterpret Status == Normal as "missing": callers building points from
// legacy tuples that feed tracking-direction updates should construct
// them with PointFromLegacyTrackingInput, which performs the arity-based
// defaulting at the only point where the information still exists.
func UpdateForDirection(points []Point, new Direction, previous *Direction) []Point {
	switch new {
	case Forward:
		return applyForward(points)
	case Backward:
		return applyBackward(points)
	case Bidirectional:
		prev := Forward
		if previous != nil {
			prev = *previous
		}
		if prev != Backward {
			out := make([]Point, len(points))
			copy(out, points) // forward -> bidirectional is a no-op.
			return out
		}
		return applyForward(points)
	default:
		out := make([]Point, len(points))
		copy(out, points)
		return out
	}
}

// applyForward implements: ENDFRAME with a valid next position becomes
// KEYFRAME; KEYFRAME with no valid next position becomes ENDFRAME.
func applyForward(points []Point) []Point {
	out := make([]Point, len(points))
	copy(out, points)
	for i, p := range out {
		if p.Status != Keyframe && p.Status != Endframe {
			continue
		}
		if !p.HasValidPosition() {
			continue
		}
		nextValid := i+1 < len(out) && out[i+1].HasValidPosition()
		if p.Status == Endframe && nextValid {
			out[i] = p.WithStatus(Keyframe)
		} else if p.Status == Keyframe && !nextValid {
			out[i] = p.WithStatus(Endframe)
		}
	}
	return out
}

// applyBackward is the mirror of applyForward, looking at the previous
// index instead of the next.
func applyBackward(points []Point) []Point {
	out := make([]Point, len(points))
	copy(out, points)
	for i, p := range out {
		if p.Status != Keyframe && p.Status != Endframe {
			continue
		}
		if !p.HasValidPosition() {
			continue
		}
		prevValid := i-1 >= 0 && out[i-1].HasValidPosition()
		if p.Status == Endframe && prevValid {
			out[i] = p.WithStatus(Keyframe)
		} else if p.Status == Keyframe && !prevValid {
			out[i] = p.WithStatus(Endframe)
		}
	}
	return out
}

// ToggleStatus changes the status of points[index] and returns a new
// point list with every other point's (x, y, status) preserved exactly
// (spec.md §4.3's data-preservation rule — toggling never discards
// points). The segmentation outcome of the result is a pure function of
// the returned list: callers should rebuild a SegmentedCurve from it to
// see the gap open, close, or shift.
func ToggleStatus(points []Point, index int, newStatus Status) []Point {
	out := make([]Point, len(points))
	copy(out, points)
	if index < 0 || index >= len(out) {
		return out
	}
	out[index] = out[index].WithStatus(newStatus)
	return out
}
