package sampling

import (
	"math"

	"github.com/npillmayer/trajectory/bezier"
)

// Range is a closed interval of physical values.
type Range struct {
	From float64 `yaml:"from"`
	To   float64 `yaml:"to"`
}

// Diff is To − From.
func (r Range) Diff() float64 {
	return r.To - r.From
}

// IndexKeyframes maps keyframes onto absolute point indexes. keyframes[i]
// holds the keyframes of segment i, sorted by XPos, and bounds[i] the point
// range of segment i. A keyframe at position x takes effect at
// From + ⌊(To−From)·x⌋. Segments without points are skipped.
func IndexKeyframes(bounds []IndexBoundary, keyframes [][]bezier.Keyframe) []KeyframeIndexing {
	var idx []KeyframeIndexing
	for _, b := range bounds {
		if b.From == b.To || b.Index >= len(keyframes) {
			continue
		}
		for _, kf := range keyframes[b.Index] {
			at := b.From + int(math.Floor(float64(b.To-b.From)*kf.XPos))
			idx = append(idx, KeyframeIndexing{Index: at, Segment: b.Index, Keyframe: kf})
		}
	}
	return idx
}

// DefaultKeyframe is the keyframe in effect from the start of every path:
// full value, following the bent rate if requested.
func DefaultKeyframe(followBentRate bool) KeyframeIndexing {
	return KeyframeIndexing{
		Index:    0,
		Segment:  NoSegment,
		Keyframe: bezier.Keyframe{XPos: 0, YPos: 1, FollowBentRate: followBentRate},
	}
}

// ProcessKeyframes assigns a value to every point, written by set.
//
// The default keyframe is prepended to idx. Between a keyframe and its
// successor (or the end of points, whichever comes first), the normalized
// value is interpolated linearly and mapped onto limit. Behind the last keyframe the value stays constant. Keyframes
// following the bent rate additionally bound the value by the point's bent
// rate, mapped from the applicable range onto limit; straight points
// (bent rate exactly 0) are never bounded.
func ProcessKeyframes(points []Point, idx []KeyframeIndexing, limit, applicable Range,
	defaultFollowBentRate bool, set func(*Point, float64)) {
	list := make([]KeyframeIndexing, 0, len(idx)+1)
	list = append(list, DefaultKeyframe(defaultFollowBentRate))
	list = append(list, idx...)
	for k, cur := range list {
		to, yTo := len(points), cur.Keyframe.YPos
		if k+1 < len(list) {
			to, yTo = list[k+1].Index, list[k+1].Keyframe.YPos
		}
		to = min(to, len(points))
		from := max(cur.Index, 0)
		length := to - from
		if length <= 0 {
			continue
		}
		yFrom := cur.Keyframe.YPos
		for i := 0; i < length; i++ {
			p := &points[from+i]
			y := yFrom + (yTo-yFrom)*float64(i)/float64(length)
			value := limit.From + limit.Diff()*y
			if cur.Keyframe.FollowBentRate {
				value = boundByBentRate(value, p.BentRate, limit, applicable)
			}
			set(p, value)
		}
	}
}

// boundByBentRate maps bent rate b from the applicable range onto limit and
// returns the smaller of value and that bound.
func boundByBentRate(value, b float64, limit, applicable Range) float64 {
	if b == 0 {
		return value
	}
	limitDiff, rangeDiff := limit.Diff(), applicable.Diff()
	switch {
	case b < applicable.From:
		return math.Min(value, limit.From)
	case b > applicable.To:
		return math.Min(value, limit.To)
	case limitDiff != 0 && rangeDiff != 0:
		return math.Min(value, limit.From+(b-applicable.From)*(limitDiff/rangeDiff))
	}
	return value
}

func setSpeed(p *Point, v float64) {
	p.Speed = v
}

func setLookahead(p *Point, v float64) {
	p.Lookahead = v
}
