package bezier

import (
	"fmt"

	"github.com/npillmayer/trajectory"
)

// Nullpath creates an empty path, to be extended by subsequent builder
// calls. The following example builds a path of a straight line followed
// by a smooth curve:
//
//	path := Nullpath().Start(P(0,0), 0).Line().To(P(0,60), 0).
//		SmoothCurve().To(P(60,120), 90).End()
//
// Builder methods panic on structural misuse, e.g. calling To() without
// stating the shape of the segment first.
func Nullpath() *Path {
	return &Path{head: -1}
}

// End finishes building a path. Part of builder functionality.
func (path *Path) End() *Path {
	if path.pending != nil {
		panic("path ends with an unfinished segment")
	}
	return path
}

// Start places the first end control of a path. Part of builder functionality.
func (path *Path) Start(p trajectory.Pair, heading float64) *Path {
	if path.head >= 0 {
		panic("path has already been started")
	}
	path.head = path.newControl(p, EndControl, heading)
	return path
}

// Line states that the next segment is a straight line.
// Part of builder functionality.
func (path *Path) Line() *Path {
	path.expectHead()
	path.pending = &pendingSegment{kind: Linear}
	return path
}

// Curve states that the next segment is a cubic curve with inner
// controls c1 and c2. Part of builder functionality.
func (path *Path) Curve(c1, c2 trajectory.Pair) *Path {
	path.expectHead()
	path.pending = &pendingSegment{kind: Cubic, inner: []trajectory.Pair{c1, c2}}
	return path
}

// SmoothCurve states that the next segment is a cubic curve whose inner
// controls are derived from the headings at both of its ends.
// Part of builder functionality.
func (path *Path) SmoothCurve() *Path {
	path.expectHead()
	path.pending = &pendingSegment{kind: Cubic, smooth: true}
	return path
}

// To places the end control of the segment announced by Line(), Curve()
// or SmoothCurve(). Part of builder functionality.
func (path *Path) To(p trajectory.Pair, heading float64) *Path {
	if path.pending == nil {
		panic("To() needs Line(), Curve() or SmoothCurve() first")
	}
	pend := path.pending
	path.pending = nil
	switch {
	case pend.kind == Linear:
		path.AppendLine(p, heading)
	case pend.smooth:
		path.AppendSmoothCurve(p, heading)
	default:
		path.AppendCurve(pend.inner[0], pend.inner[1], p, heading)
	}
	return path
}

func (path *Path) expectHead() {
	if path.head < 0 {
		panic("cannot add segment to empty path")
	}
	if path.pending != nil {
		panic("previous segment has not been finished with To()")
	}
}

// AppendLine appends a linear segment from the current path end to p.
// An empty path without start control is started at p, without adding a
// segment.
func (path *Path) AppendLine(p trajectory.Pair, heading float64) {
	if path.head < 0 {
		path.head = path.newControl(p, EndControl, heading)
		return
	}
	end := path.newControl(p, EndControl, heading)
	path.appendSegment(path.head, end)
}

// AppendCurve appends a cubic segment with inner controls c1, c2 from the
// current path end to p.
func (path *Path) AppendCurve(c1, c2, p trajectory.Pair, heading float64) {
	if path.head < 0 {
		path.head = path.newControl(p, EndControl, heading)
		return
	}
	start := path.head
	i1 := path.newControl(c1, PlainControl, 0)
	i2 := path.newControl(c2, PlainControl, 0)
	end := path.newControl(p, EndControl, heading)
	path.appendSegment(start, i1, i2, end)
}

// AppendSmoothCurve appends a cubic segment from the current path end to p,
// with inner controls found by SmoothControls.
func (path *Path) AppendSmoothCurve(p trajectory.Pair, heading float64) {
	if path.head < 0 {
		path.head = path.newControl(p, EndControl, heading)
		return
	}
	from := path.arena[path.head]
	c1, c2 := SmoothControls(from.Pos, p, from.Heading, heading)
	path.AppendCurve(c1, c2, p, heading)
}

// RemoveLastSegment drops the last segment. Its end control is retired; the
// end of the predecessor becomes the end of the path again.
func (path *Path) RemoveLastSegment() error {
	if len(path.segments) == 0 {
		return ErrTooFewSegments
	}
	last := path.segments[len(path.segments)-1]
	path.segments = path.segments[:len(path.segments)-1]
	path.head = last.controls[0]
	return nil
}

// ConvertToCurve turns linear segment i into a cubic one, with inner
// controls at a third and two thirds of the chord. Keyframes are kept.
func (path *Path) ConvertToCurve(i int) error {
	seg, err := path.segment(i)
	if err != nil {
		return err
	}
	if seg.Kind() == Cubic {
		return nil
	}
	a, b := path.arena[seg.controls[0]].Pos, path.arena[seg.controls[1]].Pos
	i1 := path.newControl(a.Lerp(b, 1.0/3.0), PlainControl, 0)
	i2 := path.newControl(a.Lerp(b, 2.0/3.0), PlainControl, 0)
	seg.controls = []ControlID{seg.controls[0], i1, i2, seg.controls[1]}
	return nil
}

// ConvertToLine turns cubic segment i into a linear one, retiring its inner
// controls. Keyframes are kept.
func (path *Path) ConvertToLine(i int) error {
	seg, err := path.segment(i)
	if err != nil {
		return err
	}
	if seg.Kind() == Linear {
		return nil
	}
	seg.controls = []ControlID{seg.controls[0], seg.controls[3]}
	return nil
}

func (path *Path) newControl(p trajectory.Pair, kind ControlKind, heading float64) ControlID {
	id := ControlID(len(path.arena))
	c := Control{ID: id, Pos: p, Kind: kind, Visible: true, Heading: noHeading()}
	if kind == EndControl {
		c.Heading = trajectory.NormalizeHeading(heading)
	}
	path.arena = append(path.arena, c)
	return id
}

func (path *Path) appendSegment(ids ...ControlID) {
	seg := &Segment{controls: ids}
	path.segments = append(path.segments, seg)
	path.head = ids[len(ids)-1]
	tracer().Debugf("appended %s segment #%d", seg.Kind(), len(path.segments)-1)
}

func (path *Path) segment(i int) (*Segment, error) {
	if i < 0 || i >= len(path.segments) {
		return nil, fmt.Errorf("%w: %d of %d", ErrSegmentIndex, i, len(path.segments))
	}
	return path.segments[i], nil
}
