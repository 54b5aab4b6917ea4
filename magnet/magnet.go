/*
Package magnet snaps a dragged point to directional reference lines.

A reference is an infinite line through a source point along a heading.
Snap first projects the target onto the closest reference; if a second,
non-parallel reference is close as well, the intersection of both lines
wins. Snapping happens only within a distance threshold of the target.

The solver is stateless; an interaction layer calls it once per drag frame.
*/
package magnet

import (
	"math"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/trajectory"
)

// tracer writes to trace with key 'trajectory.magnet'
func tracer() tracing.Trace {
	return tracing.Select("trajectory.magnet")
}

// Reference is a directional line: all points reachable from Source along
// Heading (degrees, compass convention) or its opposite.
type Reference struct {
	Source  trajectory.Pair
	Heading float64
}

// lineFamily reduces a heading to [0,180): parallel lines share a family.
func lineFamily(heading float64) float64 {
	return math.Mod(trajectory.NormalizeHeading(heading), 180)
}

// isVertical is true for lines parallel to the y-axis, where the slope is
// undefined.
func isVertical(ref Reference) bool {
	return lineFamily(ref.Heading) == 0
}

// slope returns m and b of y = m·x + b. Undefined for vertical lines.
func slope(ref Reference) (float64, float64) {
	m := math.Tan(trajectory.HeadingToAngle(ref.Heading))
	return m, ref.Source.Y() - m*ref.Source.X()
}

// ClosestPointOnLine projects target onto the line of ref. A target
// within Epsilon of the line is returned unchanged.
func ClosestPointOnLine(ref Reference, target trajectory.Pair) trajectory.Pair {
	var p trajectory.Pair
	if isVertical(ref) {
		p = trajectory.P(ref.Source.X(), target.Y())
	} else {
		m, b := slope(ref)
		x := (target.X() + m*(target.Y()-b)) / (1 + m*m)
		p = trajectory.P(x, m*x+b)
	}
	if p.Distance(target) <= trajectory.Epsilon {
		return target
	}
	return p
}

// LinesIntersection intersects the lines of a and b. It returns false for
// parallel (or identical) lines.
func LinesIntersection(a, b Reference) (trajectory.Pair, bool) {
	if lineFamily(a.Heading) == lineFamily(b.Heading) {
		return trajectory.Origin, false
	}
	var x, y float64
	switch {
	case isVertical(a):
		m2, b2 := slope(b)
		x = a.Source.X()
		y = m2*x + b2
	case isVertical(b):
		m1, b1 := slope(a)
		x = b.Source.X()
		y = m1*x + b1
	default:
		m1, b1 := slope(a)
		m2, b2 := slope(b)
		x = (b2 - b1) / (m1 - m2)
		y = m1*x + b1
	}
	if !trajectory.IsFinite(x) || !trajectory.IsFinite(y) {
		return trajectory.Origin, false
	}
	return trajectory.P(x, y), true
}

// closest finds the reference whose line is nearest to target. Ties go to
// the earlier reference. It returns -1 for an empty list.
func closest(target trajectory.Pair, refs []Reference) (int, trajectory.Pair, float64) {
	best, bestPos, bestDist := -1, target, math.Inf(1)
	for i, ref := range refs {
		p := ClosestPointOnLine(ref, target)
		if d := p.Distance(target); d < bestDist {
			best, bestPos, bestDist = i, p, d
		}
	}
	return best, bestPos, bestDist
}

// Snap returns the position target snaps to, together with the references
// used. Without a reference within threshold, target is returned unchanged
// with no references.
func Snap(target trajectory.Pair, refs []Reference, threshold float64) (trajectory.Pair, []Reference) {
	i, snapped, dist := closest(target, refs)
	if i < 0 || dist > threshold {
		return target, nil
	}
	first := refs[i]
	rest := make([]Reference, 0, len(refs)-1)
	for j, ref := range refs {
		if j != i && lineFamily(ref.Heading) != lineFamily(first.Heading) {
			rest = append(rest, ref)
		}
	}
	if k, _, _ := closest(snapped, rest); k >= 0 {
		if x, ok := LinesIntersection(first, rest[k]); ok && x.Distance(target) <= threshold {
			if x.Distance(target) <= trajectory.Epsilon {
				x = target
			}
			tracer().Debugf("snap %s to intersection %s", target, x)
			return x, []Reference{first, rest[k]}
		}
	}
	tracer().Debugf("snap %s to line at %s", target, snapped)
	return snapped, []Reference{first}
}
