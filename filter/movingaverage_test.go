// Copyright © 2013-2014 CurveKit Authors.
// Use is governed by a BSD-style license found in the LICENSE file.

package filter

import (
	"testing"

	curve "github.com/galvanized/curvekit"
)

func TestMovingAverageWindowOneIsNoOp(t *testing.T) {
	points := []curve.Point{
		curve.NewNormalPoint(1, 1, 1),
		curve.NewNormalPoint(2, 3, 3),
	}
	out := MovingAverage{Window: 1}.Apply(points)
	for i := range points {
		if out[i] != points[i] {
			t.Errorf("index %d: got %+v, want unchanged %+v", i, out[i], points[i])
		}
	}
}

func TestMovingAverageSmoothsInterior(t *testing.T) {
	points := []curve.Point{
		curve.NewNormalPoint(1, 0, 0),
		curve.NewNormalPoint(2, 10, 0),
		curve.NewNormalPoint(3, 20, 0),
	}
	out := MovingAverage{Window: 3}.Apply(points)
	if out[1].X != 10 {
		t.Errorf("center point X: got %v, want 10 (average of 0, 10, 20)", out[1].X)
	}
	if out[1].Frame != points[1].Frame || out[1].Status != points[1].Status {
		t.Errorf("smoothing changed frame/status: got %+v", out[1])
	}
}

func TestMovingAverageNeverCrossesATerminator(t *testing.T) {
	points := []curve.Point{
		curve.NewNormalPoint(1, 0, 0),
		curve.NewPoint(2, 100, 100, curve.Endframe),
		curve.NewNormalPoint(3, 0, 0),
	}
	out := MovingAverage{Window: 3}.Apply(points)
	if out[1].X != 100 || out[1].Y != 100 {
		t.Errorf("Endframe point was smoothed: got %+v, want unchanged (100, 100)", out[1])
	}
	if out[0] != points[0] {
		t.Errorf("point before the terminator should be untouched (no same-side neighbor): got %+v", out[0])
	}
	if out[2] != points[2] {
		t.Errorf("point after the terminator should be untouched (no same-side neighbor): got %+v", out[2])
	}
}
