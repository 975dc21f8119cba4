// Copyright © 2013-2014 CurveKit Authors.
// Use is governed by a BSD-style license found in the LICENSE file.

package curve

import "testing"

// Scenario 5: forward-tracking conversion.
func TestScenarioForwardTrackingConversion(t *testing.T) {
	points := []Point{
		NewPoint(1, 0, 0, Keyframe),
		NewPoint(2, 10, 10, Keyframe),
		NewPoint(3, -1, -1, Normal),
	}
	out := UpdateForDirection(points, Forward, nil)

	if out[1].Status != Endframe {
		t.Errorf("point 2: got status %v, want Endframe", out[1].Status)
	}
	if out[0].Status != Keyframe {
		t.Errorf("point 1: got status %v, want Keyframe (unchanged)", out[0].Status)
	}
}

// An explicit Normal status (a 4-tuple carrying "normal") is not a
// "missing status field" and must not be treated as a Keyframe: the
// forward/backward loops only ever touch Keyframe or Endframe points, so
// an explicit-Normal point at a sequence boundary is left untouched
// regardless of its neighbors' validity, matching
// tracking_direction_utils.py's tuple-arity-based normalization rather
// than a status-value-based one.
func TestUpdateForDirectionLeavesExplicitNormalUntouched(t *testing.T) {
	points := []Point{
		NewPoint(1, 0, 0, Keyframe),
		NewPoint(2, 5, 5, Normal),
	}
	out := UpdateForDirection(points, Forward, nil)
	if out[1].Status != Normal {
		t.Errorf("explicit Normal point: got status %v, want Normal (unchanged)", out[1].Status)
	}
	if out[0].Status != Keyframe {
		t.Errorf("point 1: got status %v, want Keyframe (unchanged, has a valid next point)", out[0].Status)
	}
}

func TestPointFromLegacyTrackingInputDefaultsBareTupleToKeyframe(t *testing.T) {
	p, err := PointFromLegacyTrackingInput([]any{1, 0.0, 0.0})
	if err != nil {
		t.Fatalf("PointFromLegacyTrackingInput: %v", err)
	}
	if p.Status != Keyframe {
		t.Errorf("bare 3-tuple: got status %v, want Keyframe", p.Status)
	}
}

func TestPointFromLegacyTrackingInputLeavesExplicitStatusAlone(t *testing.T) {
	p, err := PointFromLegacyTrackingInput([]any{1, 0.0, 0.0, "normal"})
	if err != nil {
		t.Fatalf("PointFromLegacyTrackingInput: %v", err)
	}
	if p.Status != Normal {
		t.Errorf("explicit normal status: got %v, want Normal (not promoted)", p.Status)
	}
}

func TestUpdateForDirectionBackwardMirrorsForward(t *testing.T) {
	points := []Point{
		NewPoint(1, -1, -1, Normal),
		NewPoint(2, 10, 10, Keyframe),
		NewPoint(3, 0, 0, Keyframe),
	}
	out := UpdateForDirection(points, Backward, nil)

	if out[1].Status != Endframe {
		t.Errorf("point 2: got status %v, want Endframe", out[1].Status)
	}
	if out[2].Status != Keyframe {
		t.Errorf("point 3: got status %v, want Keyframe (unchanged)", out[2].Status)
	}
}

func TestUpdateForDirectionBidirectionalNoOpUnlessPreviouslyBackward(t *testing.T) {
	points := []Point{
		NewPoint(1, 0, 0, Keyframe),
		NewPoint(2, 10, 10, Keyframe),
		NewPoint(3, -1, -1, Normal),
	}
	forward := Forward
	out := UpdateForDirection(points, Bidirectional, &forward)
	if out[1].Status != Keyframe {
		t.Errorf("bidirectional after forward: got %v, want unchanged Keyframe", out[1].Status)
	}

	backward := Backward
	out2 := UpdateForDirection(points, Bidirectional, &backward)
	if out2[1].Status != Endframe {
		t.Errorf("bidirectional after backward: got %v, want Endframe (forward rules applied)", out2[1].Status)
	}
}

func TestDirectionStateRemembersPrevious(t *testing.T) {
	var state DirectionState
	points := []Point{
		NewPoint(1, 0, 0, Keyframe),
		NewPoint(2, 10, 10, Keyframe),
		NewPoint(3, -1, -1, Normal),
	}
	afterBackward := state.Apply(points, Backward)
	afterBidirectional := state.Apply(afterBackward, Bidirectional)

	// Having previously applied Backward, Bidirectional now re-runs the
	// forward rules.
	if afterBidirectional[1].Status != Endframe {
		t.Errorf("got status %v, want Endframe", afterBidirectional[1].Status)
	}
}

func TestToggleStatusPreservesOtherPoints(t *testing.T) {
	points := []Point{
		NewPoint(1, 100, 100, Keyframe),
		NewPoint(5, 140, 120, Keyframe),
		NewPoint(10, 200, 200, Keyframe),
	}
	out := ToggleStatus(points, 1, Endframe)

	if out[0] != points[0] || out[2] != points[2] {
		t.Errorf("ToggleStatus mutated points other than the target index")
	}
	if out[1].Status != Endframe {
		t.Errorf("got status %v, want Endframe", out[1].Status)
	}
	if out[1].X != points[1].X || out[1].Y != points[1].Y {
		t.Errorf("ToggleStatus changed the toggled point's position")
	}
}

func TestToggleStatusOutOfRangeIndexIsNoOp(t *testing.T) {
	points := []Point{NewPoint(1, 0, 0, Keyframe)}
	out := ToggleStatus(points, 5, Endframe)
	if len(out) != 1 || out[0] != points[0] {
		t.Errorf("out-of-range toggle changed the point list: got %+v", out)
	}
}
