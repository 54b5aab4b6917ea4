package sampling

import (
	"github.com/npillmayer/trajectory"
	"github.com/npillmayer/trajectory/bezier"
)

// ComputePathPoints derives all points of a path: samples it, resamples
// uniformly by density, indexes and processes speed (and, if configured,
// lookahead) keyframes, and finally appends a point exactly at the path's
// last control. That terminal point carries the last control's heading and
// zero speed and lookahead.
//
// opts may be nil, in which case DefaultOptions are used. The result is a
// pure function of the path's current segments and keyframes.
func ComputePathPoints(path *bezier.Path, density float64, opts *Options) PointCalculationResult {
	if opts == nil {
		o := DefaultOptions()
		opts = &o
	}
	sr := samplePath(path, density, opts.Parallel)
	ur := uniformPoints(sr, density, opts.CurvatureScale)
	n := path.N()
	speed := make([][]bezier.Keyframe, n)
	lookahead := make([][]bezier.Keyframe, n)
	for i := 0; i < n; i++ {
		speed[i] = path.SpeedKeyframes(i)
		lookahead[i] = path.LookaheadKeyframes(i)
	}
	result := PointCalculationResult{
		ArcLength:                sr.ArcLength,
		SegmentIndexes:           ur.SegmentIndexes,
		SpeedKeyframeIndexes:     IndexKeyframes(ur.SegmentIndexes, speed),
		LookaheadKeyframeIndexes: IndexKeyframes(ur.SegmentIndexes, lookahead),
	}
	points := ur.Points
	ProcessKeyframes(points, result.SpeedKeyframeIndexes, opts.SpeedLimit,
		opts.BentRateApplicableRange, opts.DefaultFollowBentRate, setSpeed)
	if opts.LookaheadLimit != nil {
		ProcessKeyframes(points, result.LookaheadKeyframeIndexes, *opts.LookaheadLimit,
			opts.BentRateApplicableRange, opts.DefaultFollowBentRate, setLookahead)
	}
	if last, ok := path.Last(); ok {
		points = append(points, Point{
			Pos:     last.Pos,
			Segment: n - 1,
			T:       1,
			Heading: last.Heading,
		})
	}
	result.Points = points
	if opts.Field != nil {
		pos := make([]trajectory.Pair, len(points))
		for i, p := range points {
			pos[i] = p.Pos
		}
		result.OutsideField = opts.Field.Outside(pos)
	}
	return result
}
