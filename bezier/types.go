package bezier

import (
	"errors"
	"math"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/trajectory"
)

// tracer writes to trace with key 'trajectory.bezier'
func tracer() tracing.Trace {
	return tracing.Select("trajectory.bezier")
}

var (
	// ErrNilPath indicates a nil path pointer.
	ErrNilPath = errors.New("path must not be nil")
	// ErrTooFewSegments indicates an operation needing a segment on an empty path.
	ErrTooFewSegments = errors.New("path has too few segments")
	// ErrSegmentIndex indicates a segment index outside the path.
	ErrSegmentIndex = errors.New("segment index out of range")
	// ErrControlCount indicates a segment with neither 2 nor 4 controls.
	ErrControlCount = errors.New("segment must have 2 or 4 controls")
	// ErrNotEndControl indicates a plain control where an end control is required.
	ErrNotEndControl = errors.New("control is not an end control")
	// ErrBrokenChain indicates a segment not starting at its predecessor's last control.
	ErrBrokenChain = errors.New("segment does not start at end of predecessor")
	// ErrUnknownControl indicates a control ID not present in the arena.
	ErrUnknownControl = errors.New("unknown control")
	// ErrKeyframeRange indicates a keyframe position or value outside its unit range.
	ErrKeyframeRange = errors.New("keyframe out of range")
	// ErrKeyframeOrder indicates keyframes not sorted by position.
	ErrKeyframeOrder = errors.New("keyframes not sorted by position")
)

// ControlID identifies a control within the arena of its path. IDs are
// never reused, even after the control has been retired.
type ControlID int

// ControlKind discriminates plain (inner) controls from end controls.
type ControlKind uint8

const (
	// PlainControl is an inner control of a cubic segment.
	PlainControl ControlKind = iota
	// EndControl starts or ends a segment and carries a heading.
	EndControl
)

func (k ControlKind) String() string {
	if k == EndControl {
		return "end"
	}
	return "plain"
}

// Control is a point of a segment's control polygon.
type Control struct {
	ID      ControlID
	Pos     trajectory.Pair
	Kind    ControlKind
	Heading float64 // normalized heading of an end control, NaN for plain controls
	Lock    bool
	Visible bool
}

// IsEnd is a predicate: is c an end control?
func (c Control) IsEnd() bool {
	return c.Kind == EndControl
}

// Keyframe is a user-placed value at a normalized position within a segment.
// XPos is in [0,1), YPos is in [0,1] and is later mapped onto a physical
// range (speed or lookahead limit).
type Keyframe struct {
	XPos           float64 `yaml:"xPos"`
	YPos           float64 `yaml:"yPos"`
	FollowBentRate bool    `yaml:"followBentRate"`
}

// SegmentKind tells linear segments from cubic ones.
type SegmentKind uint8

const (
	// Linear segments have 2 controls.
	Linear SegmentKind = iota
	// Cubic segments have 4 controls.
	Cubic
)

func (k SegmentKind) String() string {
	if k == Cubic {
		return "cubic"
	}
	return "linear"
}

// Segment is one Bézier piece of a path. It refers to its controls by ID
// and owns two independently sorted keyframe lists.
type Segment struct {
	controls  []ControlID
	speed     []Keyframe
	lookahead []Keyframe
}

// Kind returns the kind of the segment, derived from its control count.
func (seg *Segment) Kind() SegmentKind {
	if len(seg.controls) == 4 {
		return Cubic
	}
	return Linear
}

// Path is the aggregate owning controls, segments and keyframes.
// To construct a path, start with Nullpath(), which creates an empty
// path, and then extend it.
type Path struct {
	arena    []Control  // control with ID i is arena[i]
	segments []*Segment // chained: segments[i+1].controls[0] == segments[i].controls[last]
	head     ControlID  // end control where the next segment starts, -1 if none
	pending  *pendingSegment
}

// pendingSegment is the builder state between Line()/Curve() and To().
type pendingSegment struct {
	kind   SegmentKind
	smooth bool
	inner  []trajectory.Pair
}

// Curve is a value snapshot of a segment's geometry. It does not alias the
// path's arena.
type Curve struct {
	Points       []trajectory.Pair // 2 or 4 control positions
	StartHeading float64
	EndHeading   float64
}

func noHeading() float64 {
	return math.NaN()
}
