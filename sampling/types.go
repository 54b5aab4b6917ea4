package sampling

import (
	"math"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/trajectory"
	"github.com/npillmayer/trajectory/bezier"
)

// tracer writes to trace with key 'trajectory.sampling'
func tracer() tracing.Trace {
	return tracing.Select("trajectory.sampling")
}

// NoSegment is the segment of the implicit default keyframe.
const NoSegment = -1

// SamplePoint is a raw, non-uniform sample of a segment.
type SamplePoint struct {
	Pos      trajectory.Pair
	Delta    float64 // step from the previous sample, rescaled per segment
	Integral float64 // arc length from the start of the path
	Segment  int     // index of the sampled segment
	T        float64 // Bézier parameter within the segment
	Heading  float64 // NaN unless the sample sits on an end control
	IsLast   bool    // sample is the final one of its segment
}

// HasHeading is a predicate: does the sample carry a heading?
func (sp SamplePoint) HasHeading() bool {
	return !math.IsNaN(sp.Heading)
}

// SampleResult is the outcome of sampling a whole path.
type SampleResult struct {
	ArcLength float64
	Points    []SamplePoint
	Curves    []bezier.Curve // geometry snapshots, indexed by SamplePoint.Segment
}

// Point is the uniform output unit.
type Point struct {
	Pos       trajectory.Pair
	Segment   int     // segment the point was sampled from
	T         float64 // Bézier parameter within that segment
	Speed     float64
	Lookahead float64
	Heading   float64 // NaN except at segment boundaries and the first point
	IsLast    bool    // final uniform point of some segment
	BentRate  float64 // absolute curvature
}

// HasHeading is a predicate: does the point carry a heading?
func (p Point) HasHeading() bool {
	return !math.IsNaN(p.Heading)
}

// IndexBoundary is the half-open range [From, To) of uniform point indexes
// produced by segment Index. From == To denotes a segment contributing no
// points.
type IndexBoundary struct {
	Index, From, To int
}

// KeyframeIndexing is the absolute point index at which a keyframe takes
// effect. Segment is NoSegment for the implicit default keyframe.
type KeyframeIndexing struct {
	Index    int
	Segment  int
	Keyframe bezier.Keyframe
}

// UniformResult is the outcome of uniform resampling.
type UniformResult struct {
	Points         []Point
	SegmentIndexes []IndexBoundary
}

// PointCalculationResult is everything derived from a path's segments and
// keyframes.
type PointCalculationResult struct {
	ArcLength                float64
	Points                   []Point
	SegmentIndexes           []IndexBoundary
	SpeedKeyframeIndexes     []KeyframeIndexing
	LookaheadKeyframeIndexes []KeyframeIndexing
	OutsideField             []int // indexes of points outside Options.Field
}
