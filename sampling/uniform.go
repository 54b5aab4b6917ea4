package sampling

import (
	"math"

	"github.com/npillmayer/trajectory"
	"github.com/npillmayer/trajectory/bezier"
)

// ComputeUniformPoints resamples sr into points spaced evenly by arc
// length, about density apart. At least one point is produced for a
// non-empty sample sequence, and exactly one IndexBoundary per segment.
//
// Sample events (end-control headings and segment ends) are carried over to
// the uniform point whose step consumes them. Where a single step consumes
// several of them, information is lost on purpose:
//
//   - of several headings, the first goes to the previous point (if that has
//     none yet) and the last to the current point; the ones between are dropped.
//   - of several segment ends, the first closes at the previous point (or
//     yields an empty range if that point already ends a segment), the ones
//     between yield empty ranges, and the last closes at the current point.
func ComputeUniformPoints(sr SampleResult, density float64) UniformResult {
	return uniformPoints(sr, density, 1)
}

// maxUniformSteps bounds the number of uniform points of a path.
const maxUniformSteps = 1 << 18

func uniformPoints(sr SampleResult, density, curvatureScale float64) UniformResult {
	if len(sr.Points) == 0 {
		return UniformResult{}
	}
	numOfSteps := math.Max(1, sr.ArcLength/density)
	if !trajectory.IsFinite(numOfSteps) {
		numOfSteps = 1
	} else if numOfSteps > maxUniformSteps {
		tracer().Errorf("density %g too fine for arc length %g, using %d steps",
			density, sr.ArcLength, maxUniformSteps)
		numOfSteps = maxUniformSteps
	}
	interval := 1 / numOfSteps
	r := &resampler{
		samples: sr.Points,
		curves:  sr.Curves,
		scale:   curvatureScale,
		points:  make([]Point, 0, int(numOfSteps)+2),
	}
	for t := 0.0; t < 1 && !trajectory.Is1(t); t += interval {
		r.step(t*sr.ArcLength, false)
	}
	r.step(sr.ArcLength, true)
	first, last := sr.Points[0], sr.Points[len(sr.Points)-1]
	r.points[0].Heading = first.Heading
	r.points[len(r.points)-1].Pos = last.Pos
	tracer().Debugf("resampled %d samples to %d points in %d steps of %.4g",
		len(sr.Points), len(r.points), int(numOfSteps), interval)
	return UniformResult{Points: r.points, SegmentIndexes: r.bounds}
}

// resampler walks a sample sequence with a monotonic cursor.
type resampler struct {
	samples []SamplePoint
	curves  []bezier.Curve
	scale   float64
	next    int // first sample not consumed yet
	points  []Point
	bounds  []IndexBoundary
	from    int // first point of the segment range currently open
}

// step emits the point at arc length integral. Regular steps leave the
// final sample for the final step, which consumes everything left.
func (r *resampler) step(integral float64, final bool) {
	var headings []float64
	splits := 0
	limit := len(r.samples) - 1
	if final {
		limit = len(r.samples)
	}
	for r.next < limit && (final || r.samples[r.next].Integral <= integral) {
		s := r.samples[r.next]
		if s.HasHeading() {
			headings = append(headings, s.Heading)
		}
		if s.IsLast {
			splits++
		}
		r.next++
	}
	i2 := min(r.next, len(r.samples)-1)
	i1 := max(i2-1, 0)
	cur := len(r.points)
	r.points = append(r.points, r.interpolate(r.samples[i1], r.samples[i2], integral))
	r.carryHeadings(cur, headings)
	r.carrySplits(cur, splits)
}

// interpolate places a point between p1 and p2 at arc length integral.
// Coinciding samples fall back to p1.
func (r *resampler) interpolate(p1, p2 SamplePoint, integral float64) Point {
	pt := Point{Heading: math.NaN()}
	ratio := (integral - p1.Integral) / (p2.Integral - p1.Integral)
	if trajectory.IsFinite(ratio) {
		pt.Pos = p1.Pos.Lerp(p2.Pos, ratio)
		pt.Segment, pt.T = p2.Segment, p2.T
		if p1.Segment == p2.Segment {
			pt.T = p1.T + (p2.T-p1.T)*ratio
		}
	} else {
		pt.Pos, pt.Segment, pt.T = p1.Pos, p1.Segment, p1.T
	}
	pt.BentRate = r.bentRate(pt.Segment, pt.T)
	return pt
}

func (r *resampler) bentRate(seg int, t float64) float64 {
	if seg < 0 || seg >= len(r.curves) {
		return 0
	}
	b := math.Abs(r.curves[seg].Curvature(t)) * r.scale
	if !trajectory.IsFinite(b) { // cusp or zero-length segment
		return 0
	}
	return b
}

func (r *resampler) carryHeadings(cur int, headings []float64) {
	switch {
	case len(headings) == 1:
		r.points[cur].Heading = headings[0]
	case len(headings) > 1:
		if cur > 0 && !r.points[cur-1].HasHeading() {
			r.points[cur-1].Heading = headings[0]
		}
		r.points[cur].Heading = headings[len(headings)-1]
	}
}

func (r *resampler) carrySplits(cur, splits int) {
	if splits == 0 {
		return
	}
	if splits > 1 {
		if cur > 0 && !r.points[cur-1].IsLast {
			r.points[cur-1].IsLast = true
			r.closeRange(cur)
		} else {
			r.closeRange(r.from)
		}
		for k := 0; k < splits-2; k++ {
			r.closeRange(r.from)
		}
	}
	r.points[cur].IsLast = true
	r.closeRange(cur + 1)
}

// closeRange ends the open segment range at point index to.
func (r *resampler) closeRange(to int) {
	r.bounds = append(r.bounds, IndexBoundary{Index: len(r.bounds), From: r.from, To: to})
	r.from = to
}
