// Copyright © 2015 CurveKit Authors.
// Use is governed by a BSD-style license found in the LICENSE file.

package curve

// segment.go turns a flat, possibly gappy point list into a sequence of
// active/inactive segments and answers position queries against it.
//
// A segment is active when it is part of the rendered/queried curve and
// inactive when it lies inside a gap opened by a terminator (Endframe)
// point and not yet closed by the next startframe. Segmentation follows
// 3DEqualizer-compatible rules: only a strict Keyframe (never a Tracked
// point) reopens a gap, except that the very first point of the whole
// curve counts as a startframe if it is Keyframe or Tracked.

import "sort"

// Segment is a contiguous, non-empty run of points that is rendered and
// queried as one continuous piece of curve.
type Segment struct {
	StartFrame           int32
	EndFrame             int32
	Points               []Point
	Active               bool
	OriginallyActive     bool
	StartsWithStartframe bool
}

// ContainsFrame reports whether frame falls within this segment's range.
func (s *Segment) ContainsFrame(frame int32) bool {
	return s.StartFrame <= frame && frame <= s.EndFrame
}

// PointAt returns the point stored at exactly frame, if any.
func (s *Segment) PointAt(frame int32) (Point, bool) {
	for _, p := range s.Points {
		if p.Frame == frame {
			return p, true
		}
	}
	return Point{}, false
}

// HasKeyframe reports whether the segment contains a Keyframe or
// Tracked point.
func (s *Segment) HasKeyframe() bool {
	for _, p := range s.Points {
		if p.Status == Keyframe || p.Status == Tracked {
			return true
		}
	}
	return false
}

// FrameStatus tallies the points landing on one frame, recovered from the
// original tool's per-frame timeline marker (see SPEC_FULL.md). Multiple
// points can share a frame only through duplicate-frame input data.
type FrameStatus struct {
	KeyframeCount     int
	InterpolatedCount int
	TrackedCount      int
	EndframeCount     int
	NormalCount       int
	IsStartframe      bool
	IsInactive        bool
}

// TotalPoints is the sum of every per-status count.
func (f FrameStatus) TotalPoints() int {
	return f.KeyframeCount + f.InterpolatedCount + f.TrackedCount + f.EndframeCount + f.NormalCount
}

// IsEmpty reports whether no points land on this frame.
func (f FrameStatus) IsEmpty() bool { return f.TotalPoints() == 0 }

// SegmentedCurve is the immutable result of segmenting a point list: an
// ordered run of segments plus the full, sorted point list they partition.
type SegmentedCurve struct {
	Segments  []Segment
	AllPoints []Point
}

// BuildSegmentedCurve stably sorts points by frame and partitions them into
// segments per spec.md §4.2. Construction never fails: a malformed Point
// cannot exist (PointFromLegacy validates at the boundary), so there is
// nothing left for the builder to reject.
func BuildSegmentedCurve(points []Point) SegmentedCurve {
	if len(points) == 0 {
		return SegmentedCurve{}
	}
	sorted := make([]Point, len(points))
	copy(sorted, points)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Frame < sorted[j].Frame })

	isStart := make([]bool, len(sorted))
	for i := range sorted {
		isStart[i] = isStartframeAt(sorted, i)
	}

	var segments []Segment
	var cur []Point
	curStartsWithStartframe := false
	inGap := false
	for i, p := range sorted {
		opensNew := i == 0 || sorted[i-1].IsEndframe() || (inGap && isStart[i])
		if opensNew && i != 0 {
			segments = append(segments, closeSegment(cur, !inGap, curStartsWithStartframe))
			cur = nil
		}
		if opensNew {
			curStartsWithStartframe = isStart[i]
			switch {
			case i == 0:
				inGap = false // the curve never starts inside a gap.
			case sorted[i-1].IsEndframe():
				inGap = !isStart[i]
			default:
				inGap = false // mid-gap reactivation at a true startframe.
			}
		}
		cur = append(cur, p)
	}
	if len(cur) > 0 {
		segments = append(segments, closeSegment(cur, !inGap, curStartsWithStartframe))
	}

	return SegmentedCurve{Segments: segments, AllPoints: sorted}
}

func closeSegment(points []Point, active, startsWithStartframe bool) Segment {
	pts := make([]Point, len(points))
	copy(pts, points)
	return Segment{
		StartFrame:           pts[0].Frame,
		EndFrame:             pts[len(pts)-1].Frame,
		Points:               pts,
		Active:               active,
		OriginallyActive:     active,
		StartsWithStartframe: startsWithStartframe,
	}
}

// isStartframeAt reports whether sorted[idx] is a startframe: the first
// point in the curve if it is Keyframe or Tracked, or (for any later
// point) a Keyframe whose immediately preceding terminator has no
// intervening Keyframe between it and this point. Tracked points never
// count as a startframe except at index 0 — only a true Keyframe reopens
// a gap (spec.md §3, §8 scenario 4).
func isStartframeAt(sorted []Point, idx int) bool {
	p := sorted[idx]
	if idx == 0 {
		return p.Status == Keyframe || p.Status == Tracked
	}
	if p.Status != Keyframe {
		return false
	}
	lastTerminator := -1
	for j := idx - 1; j >= 0; j-- {
		if sorted[j].IsEndframe() {
			lastTerminator = j
			break
		}
	}
	if lastTerminator == -1 {
		return false
	}
	for j := lastTerminator + 1; j < idx; j++ {
		if sorted[j].Status == Keyframe {
			return false
		}
	}
	return true
}

// ActiveSegments returns only the segments that are part of the rendered
// curve.
func (c *SegmentedCurve) ActiveSegments() []Segment {
	var out []Segment
	for _, s := range c.Segments {
		if s.Active {
			out = append(out, s)
		}
	}
	return out
}

// InactiveSegments returns only the segments that lie inside a gap.
func (c *SegmentedCurve) InactiveSegments() []Segment {
	var out []Segment
	for _, s := range c.Segments {
		if !s.Active {
			out = append(out, s)
		}
	}
	return out
}

// FrameRange returns the first and last frame across every point, or
// false if the curve is empty.
func (c *SegmentedCurve) FrameRange() (int32, int32, bool) {
	if len(c.AllPoints) == 0 {
		return 0, 0, false
	}
	return c.AllPoints[0].Frame, c.AllPoints[len(c.AllPoints)-1].Frame, true
}

// SegmentAt returns the segment containing frame, or nil if frame falls
// in a gap between segment frame ranges.
func (c *SegmentedCurve) SegmentAt(frame int32) *Segment {
	for i := range c.Segments {
		if c.Segments[i].ContainsFrame(frame) {
			return &c.Segments[i]
		}
	}
	return nil
}

// StatusAt tallies the points landing on exactly frame, recovered from the
// original tool's timeline ruler (SPEC_FULL.md item 2).
func (c *SegmentedCurve) StatusAt(frame int32) FrameStatus {
	var fs FrameStatus
	seg := c.SegmentAt(frame)
	fs.IsInactive = seg == nil || !seg.Active
	for _, p := range c.AllPoints {
		if p.Frame != frame {
			continue
		}
		switch p.Status {
		case Keyframe:
			fs.KeyframeCount++
		case Interpolated:
			fs.InterpolatedCount++
		case Tracked:
			fs.TrackedCount++
		case Endframe:
			fs.EndframeCount++
		default:
			fs.NormalCount++
		}
	}
	if seg != nil && seg.StartFrame == frame {
		fs.IsStartframe = seg.StartsWithStartframe
	}
	return fs
}

// InterpolationBoundaries returns the previous and next keyframe-like
// points (Keyframe, Tracked, or Normal — never Interpolated or Endframe)
// usable to interpolate a position at frame. Returns (nil, nil) when
// frame is not inside an active segment.
func (c *SegmentedCurve) InterpolationBoundaries(frame int32) (*Point, *Point) {
	seg := c.SegmentAt(frame)
	if seg == nil || !seg.Active {
		return nil, nil
	}
	var prev, next *Point
	for i := range seg.Points {
		p := &seg.Points[i]
		if !p.KeyframeLike() {
			continue
		}
		if p.Frame < frame {
			prev = p
		} else if p.Frame > frame && next == nil {
			next = p
			break
		}
	}
	return prev, next
}

// PositionAt answers the core position query (spec.md §4.2):
//
//  1. An exact point at frame always wins, regardless of segment activity.
//  2. Inside an active segment, interpolate between bracketing
//     keyframe-like points (or return the lone available side).
//  3. Inside an inactive segment, hold the coordinates of the terminator
//     that opened its gap.
//  4. Outside every segment, hold the most recent terminator not since
//     superseded by a later active segment, or else the last point in the
//     curve if it is not itself a terminator.
func (c *SegmentedCurve) PositionAt(frame int32) (x, y float64, ok bool) {
	for _, p := range c.AllPoints {
		if p.Frame == frame {
			return p.X, p.Y, true
		}
	}

	if seg := c.SegmentAt(frame); seg != nil {
		if seg.Active {
			prev, next := c.InterpolationBoundaries(frame)
			switch {
			case prev != nil && next != nil:
				t := float64(frame-prev.Frame) / float64(next.Frame-prev.Frame)
				return prev.X + t*(next.X-prev.X), prev.Y + t*(next.Y-prev.Y), true
			case prev != nil:
				return prev.X, prev.Y, true
			case next != nil:
				return next.X, next.Y, true
			}
			return 0, 0, false
		}
		if t, ok := c.gapTerminator(seg); ok {
			return t.X, t.Y, true
		}
		return 0, 0, false
	}

	if t, ok := c.holdTerminator(frame); ok {
		return t.X, t.Y, true
	}
	if len(c.AllPoints) > 0 {
		last := c.AllPoints[len(c.AllPoints)-1]
		if !last.IsEndframe() {
			return last.X, last.Y, true
		}
	}
	return 0, 0, false
}

// gapTerminator returns the terminator point that opened the gap seg
// lies in: the last point of the nearest earlier segment ending in an
// Endframe. Every segment strictly between that terminator and seg is
// itself inactive by construction (gap closure invariant, spec.md §3),
// so the nearest one found scanning backwards is always the right one.
func (c *SegmentedCurve) gapTerminator(seg *Segment) (Point, bool) {
	var terminator *Point
	for i := range c.Segments {
		if &c.Segments[i] == seg {
			break
		}
		last := &c.Segments[i].Points[len(c.Segments[i].Points)-1]
		if last.IsEndframe() {
			terminator = last
		}
	}
	if terminator == nil {
		return Point{}, false
	}
	return *terminator, true
}

// holdTerminator implements the "outside every segment" fallback: the
// most recent terminator at or before frame whose hold has not been
// superseded by a later active segment starting at or before frame.
func (c *SegmentedCurve) holdTerminator(frame int32) (Point, bool) {
	var terminator *Point
	for i := range c.Segments {
		seg := &c.Segments[i]
		if seg.StartFrame > frame {
			break
		}
		if seg.Active {
			terminator = nil
		}
		last := &seg.Points[len(seg.Points)-1]
		if last.IsEndframe() && last.Frame <= frame {
			terminator = last
		}
	}
	if terminator == nil {
		return Point{}, false
	}
	return *terminator, true
}
