// Copyright © 2013-2014 CurveKit Authors.
// Use is governed by a BSD-style license found in the LICENSE file.

package curve

import "testing"

func wantPosition(t *testing.T, c *SegmentedCurve, frame int32, wantX, wantY float64) {
	t.Helper()
	x, y, ok := c.PositionAt(frame)
	if !ok {
		t.Errorf("PositionAt(%d): no position, want (%v, %v)", frame, wantX, wantY)
		return
	}
	if x != wantX || y != wantY {
		t.Errorf("PositionAt(%d): got (%v, %v), want (%v, %v)", frame, x, y, wantX, wantY)
	}
}

// Scenario 1: gap creation via endframe toggle.
func TestScenarioGapCreationViaEndframeToggle(t *testing.T) {
	points := []Point{
		NewPoint(1, 100, 100, Keyframe),
		NewPoint(5, 140, 120, Keyframe),
		NewPoint(10, 200, 200, Keyframe),
	}
	toggled := ToggleStatus(points, 1, Endframe)
	c := BuildSegmentedCurve(toggled)

	wantPosition(t, &c, 6, 140, 120)
	wantPosition(t, &c, 9, 140, 120)
	wantPosition(t, &c, 10, 200, 200)
}

// Scenario 2: interpolation inside an active segment, and holding past a
// trailing endframe.
func TestScenarioInterpolationAndTrailingHold(t *testing.T) {
	points := []Point{
		NewPoint(1, 100, 100, Keyframe),
		NewPoint(5, 200, 200, Keyframe),
		NewPoint(7, 250, 250, Endframe),
	}
	c := BuildSegmentedCurve(points)

	wantPosition(t, &c, 3, 150, 150)
	wantPosition(t, &c, 10, 250, 250)
}

// Scenario 3: a gap with no reactivating keyframe holds indefinitely, even
// though an (inactive) Tracked point exists past the endframe.
func TestScenarioGapExtendsBeyondOriginalData(t *testing.T) {
	points := []Point{
		NewPoint(10, 100, 100, Keyframe),
		NewPoint(20, 200, 200, Endframe),
		NewPoint(30, 300, 300, Tracked),
	}
	c := BuildSegmentedCurve(points)

	wantPosition(t, &c, 30, 300, 300) // exact point always wins
	wantPosition(t, &c, 40, 200, 200)
	wantPosition(t, &c, 100, 200, 200)
}

// Scenario 4: multiple endframes inside one gap stay visible but inactive;
// only a strict Keyframe reopens the gap.
func TestScenarioMultipleEndframesInAGap(t *testing.T) {
	points := []Point{
		NewPoint(1, 0, 0, Keyframe),
		NewPoint(9, 0, 0, Endframe),
		NewPoint(10, 0, 0, Tracked),
		NewPoint(14, 0, 0, Tracked),
		NewPoint(18, 0, 0, Endframe),
		NewPoint(19, 0, 0, Tracked),
		NewPoint(25, 0, 0, Tracked),
		NewPoint(26, 0, 0, Keyframe),
	}
	c := BuildSegmentedCurve(points)

	seg9 := c.SegmentAt(9)
	if seg9 == nil || !seg9.Active {
		t.Fatalf("segment containing frame 9: got %+v, want active", seg9)
	}
	seg18 := c.SegmentAt(18)
	if seg18 == nil {
		t.Fatalf("segment containing frame 18: want present, got nil")
	}
	if seg18.Active {
		t.Errorf("segment containing frame 18: got active, want inactive")
	}
	seg26 := c.SegmentAt(26)
	if seg26 == nil || !seg26.Active {
		t.Fatalf("segment beginning at frame 26: got %+v, want active", seg26)
	}
	if seg26.StartFrame != 26 {
		t.Errorf("segment beginning at frame 26: got start %d, want 26", seg26.StartFrame)
	}
}

func TestBuildSegmentedCurveEmpty(t *testing.T) {
	c := BuildSegmentedCurve(nil)
	if len(c.Segments) != 0 || len(c.AllPoints) != 0 {
		t.Errorf("empty input: got %+v, want zero value", c)
	}
}

func TestSegmentedCurveInvariants(t *testing.T) {
	points := []Point{
		NewPoint(1, 0, 0, Keyframe),
		NewPoint(9, 0, 0, Endframe),
		NewPoint(10, 0, 0, Tracked),
		NewPoint(18, 0, 0, Endframe),
		NewPoint(26, 0, 0, Keyframe),
		NewPoint(30, 0, 0, Keyframe),
	}
	c := BuildSegmentedCurve(points)

	for _, s := range c.Segments {
		if len(s.Points) == 0 {
			t.Errorf("segment %+v is empty", s)
		}
	}
	for i := 1; i < len(c.Segments); i++ {
		if c.Segments[i].StartFrame <= c.Segments[i-1].EndFrame {
			t.Errorf("segments %d and %d overlap or are out of order", i-1, i)
		}
	}

	var total int
	for _, s := range c.Segments {
		total += len(s.Points)
	}
	if total != len(points) {
		t.Errorf("segments carry %d points total, want %d", total, len(points))
	}
}

func TestPositionAtExactPointAlwaysWins(t *testing.T) {
	points := []Point{
		NewPoint(1, 0, 0, Keyframe),
		NewPoint(5, 5, 5, Endframe),
	}
	c := BuildSegmentedCurve(points)
	wantPosition(t, &c, 5, 5, 5)
}

func TestStatusAtTalliesDuplicateFramePoints(t *testing.T) {
	points := []Point{
		NewPoint(1, 0, 0, Keyframe),
		NewPoint(1, 1, 1, Normal),
	}
	c := BuildSegmentedCurve(points)
	fs := c.StatusAt(1)
	if fs.KeyframeCount != 1 || fs.NormalCount != 1 {
		t.Errorf("StatusAt(1): got %+v, want 1 keyframe and 1 normal", fs)
	}
	if fs.TotalPoints() != 2 {
		t.Errorf("TotalPoints: got %d, want 2", fs.TotalPoints())
	}
}
