// Copyright © 2013-2014 CurveKit Authors.
// Use is governed by a BSD-style license found in the LICENSE file.

package curve

import (
	"fmt"
	"math"
)

// Point is an immutable per-sample record: a frame number, a 2D position,
// and a status tag. Mutation means replacement — every With* method
// returns a new Point and leaves the receiver unchanged. Equality is
// structural, so plain == works between two Points.
type Point struct {
	Frame  int32
	X, Y   float64
	Status Status
}

// NewPoint constructs a Point with an explicit status.
func NewPoint(frame int32, x, y float64, status Status) Point {
	return Point{Frame: frame, X: x, Y: y, Status: status}
}

// NewNormalPoint constructs a Point with the default Normal status,
// matching the 3-tuple legacy shape.
func NewNormalPoint(frame int32, x, y float64) Point {
	return Point{Frame: frame, X: x, Y: y, Status: Normal}
}

// WithStatus returns a copy of p with a different status.
func (p Point) WithStatus(status Status) Point {
	p.Status = status
	return p
}

// WithCoordinates returns a copy of p with a different position.
func (p Point) WithCoordinates(x, y float64) Point {
	p.X, p.Y = x, y
	return p
}

// WithFrame returns a copy of p with a different frame number.
func (p Point) WithFrame(frame int32) Point {
	p.Frame = frame
	return p
}

// DistanceTo returns the Euclidean distance between p and other in
// sample space.
func (p Point) DistanceTo(other Point) float64 {
	dx := p.X - other.X
	dy := p.Y - other.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// IsEndframe reports whether p is a terminator.
func (p Point) IsEndframe() bool { return p.Status == Endframe }

// KeyframeLike reports whether p is eligible as an interpolation boundary.
func (p Point) KeyframeLike() bool { return p.Status.KeyframeLike() }

// HasValidPosition reports whether p's position is not the (-1, -1)
// "no tracking data" sentinel used by the status-transition rules
// (spec.md §4.3).
func (p Point) HasValidPosition() bool { return p.X != -1 || p.Y != -1 }

// ToLegacy3 renders p as the 3-tuple (frame, x, y) form, discarding
// status. Use ToLegacy when the status must round-trip.
func (p Point) ToLegacy3() (int32, float64, float64) { return p.Frame, p.X, p.Y }

// ToLegacy4 renders p as the 4-tuple (frame, x, y, status) form with
// status in its canonical lowercase text.
func (p Point) ToLegacy4() (int32, float64, float64, string) {
	return p.Frame, p.X, p.Y, p.Status.String()
}

// ToLegacy renders p as a 3-tuple when its status is Normal, and as a
// 4-tuple (with canonical status text) otherwise — the data-preserving
// round-trip form described in spec.md §4.1 and §6.
func (p Point) ToLegacy() []any {
	if p.Status == Normal {
		return []any{p.Frame, p.X, p.Y}
	}
	return []any{p.Frame, p.X, p.Y, p.Status.String()}
}

// PointFromLegacy builds a Point from a 3- or 4-element legacy tuple.
// Coordinate fields accept int or float values; the frame field must be
// integral. A fourth element, if present, is passed to StatusFromLegacy
// (string, bool, or int — unrecognized values degrade to Normal). A
// tuple with fewer than 3 elements is rejected with ErrInvalidPoint.
func PointFromLegacy(tuple []any) (Point, error) {
	if len(tuple) < 3 {
		return Point{}, fmt.Errorf("%w: tuple has %d elements, need at least 3", ErrInvalidPoint, len(tuple))
	}
	frame, ok := toFrame(tuple[0])
	if !ok {
		return Point{}, fmt.Errorf("%w: frame %v is not an integer", ErrInvalidPoint, tuple[0])
	}
	x, ok := toFloat(tuple[1])
	if !ok {
		return Point{}, fmt.Errorf("%w: x %v is not numeric", ErrInvalidPoint, tuple[1])
	}
	y, ok := toFloat(tuple[2])
	if !ok {
		return Point{}, fmt.Errorf("%w: y %v is not numeric", ErrInvalidPoint, tuple[2])
	}
	status := Normal
	if len(tuple) >= 4 {
		status = StatusFromLegacy(tuple[3])
	}
	return Point{Frame: frame, X: x, Y: y, Status: status}, nil
}

// PointFromLegacyTrackingInput builds a Point the same way PointFromLegacy
// does, except a 3-element tuple (one with no status field at all) defaults
// to Keyframe instead of Normal. This mirrors tracking_direction_utils.py's
// own tuple normalization, which happens at the tuple-arity boundary before
// any Status ever exists: a bare (frame, x, y) triple read from a tracking
// file defaults to keyframe, but a 4-tuple carrying an explicit "normal"
// status is left alone. Use this instead of PointFromLegacy when building
// the point list that will be passed to UpdateForDirection; once a Point
// exists, its Status no longer distinguishes "defaulted" from "explicit",
// so the distinction must be made here, at ingestion.
func PointFromLegacyTrackingInput(tuple []any) (Point, error) {
	p, err := PointFromLegacy(tuple)
	if err != nil {
		return Point{}, err
	}
	if len(tuple) == 3 {
		p = p.WithStatus(Keyframe)
	}
	return p, nil
}

func toFrame(v any) (int32, bool) {
	switch n := v.(type) {
	case int32:
		return n, true
	case int:
		return int32(n), true
	case int64:
		return int32(n), true
	case float64:
		if n == math.Trunc(n) {
			return int32(n), true
		}
	case float32:
		if float64(n) == math.Trunc(float64(n)) {
			return int32(n), true
		}
	}
	return 0, false
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	}
	return 0, false
}
