// Copyright © 2015 CurveKit Authors.
// Use is governed by a BSD-style license found in the LICENSE file.

// Package filter provides pluggable curve-smoothing behaviors. The core
// segmentation and transition logic never smooths data on its own —
// spec.md explicitly limits smoothing to "a trivial moving-average
// (treated as a pluggable filter)" — so this package is the one place
// that lives, kept separate so the segmentation engine stays a pure
// function of its input points.
package filter

import "github.com/galvanized/curvekit"

// Filter transforms a point list into a new point list. Implementations
// must not mutate their input, matching curve.Point's own immutability.
type Filter interface {
	Apply(points []curve.Point) []curve.Point
}

// MovingAverage smooths X and Y across a window of Window/2 points on
// each side of each sample (so an even Window spans Window+1 points),
// leaving Frame and Status untouched. A Window of 1 or less is a no-op.
// Endframe points are left unchanged; for every other point the window
// is cut short at the nearest Endframe on either side, excluding the
// Endframe itself, so smoothing never blurs across a terminator.
type MovingAverage struct {
	Window int
}

// Apply returns a new point list with X/Y smoothed by a centered moving
// average. Endframe points are never smoothed — a terminator's position
// is load-bearing for gap holds (spec.md §4.2) and must survive exactly.
func (m MovingAverage) Apply(points []curve.Point) []curve.Point {
	out := make([]curve.Point, len(points))
	copy(out, points)
	if m.Window <= 1 || len(points) == 0 {
		return out
	}
	half := m.Window / 2
	for i, p := range points {
		if p.Status == curve.Endframe {
			continue
		}
		lo := clampIndex(i-half, points)
		hi := clampIndex(i+half, points)
		lo, hi = restrictToSegment(points, i, lo, hi)
		var sx, sy float64
		n := 0
		for j := lo; j <= hi; j++ {
			sx += points[j].X
			sy += points[j].Y
			n++
		}
		if n == 0 {
			continue
		}
		out[i] = p.WithCoordinates(sx/float64(n), sy/float64(n))
	}
	return out
}

func clampIndex(i int, points []curve.Point) int {
	if i < 0 {
		return 0
	}
	if i >= len(points) {
		return len(points) - 1
	}
	return i
}

// restrictToSegment shrinks [lo, hi] so it never crosses a terminator
// on either side of center.
func restrictToSegment(points []curve.Point, center, lo, hi int) (int, int) {
	for j := center - 1; j >= lo; j-- {
		if points[j].Status == curve.Endframe {
			lo = j + 1
			break
		}
	}
	for j := center + 1; j <= hi; j++ {
		if points[j].Status == curve.Endframe {
			hi = j - 1
			break
		}
	}
	return lo, hi
}
