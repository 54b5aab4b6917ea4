package sampling

import (
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/npillmayer/trajectory/bezier"
)

// SamplePath samples all segments of path in order and concatenates the
// samples into one arc-length-indexed sequence. The first sample of every
// segment but the first is dropped, as it coincides with the forced final
// sample of its predecessor.
//
// An empty (or nil) path yields an empty result with ArcLength 0.
func SamplePath(path *bezier.Path, density float64) SampleResult {
	return samplePath(path, density, false)
}

// samplePath optionally samples segments concurrently. Only the stepping
// of positions is done in parallel; arc lengths are accumulated in segment
// order afterwards, so the result is identical to the sequential one.
func samplePath(path *bezier.Path, density float64, parallel bool) SampleResult {
	n := path.N()
	if n == 0 {
		return SampleResult{}
	}
	interval := sampleInterval(density)
	curves := make([]bezier.Curve, n)
	for i := range curves {
		curves[i] = path.CurveAt(i)
	}
	raw := make([][]SamplePoint, n)
	if parallel && n > 1 {
		var g errgroup.Group
		g.SetLimit(runtime.GOMAXPROCS(0))
		for i := range curves {
			i := i // per-iteration copy; go directive is 1.21 (pre-loopvar semantics)
			g.Go(func() error {
				raw[i] = segmentSamples(curves[i], i, interval)
				return nil
			})
		}
		_ = g.Wait() // segment sampling cannot fail
	} else {
		for i := range curves {
			raw[i] = segmentSamples(curves[i], i, interval)
		}
	}
	result := SampleResult{Curves: curves}
	size := 0
	for _, pts := range raw {
		size += len(pts)
	}
	result.Points = make([]SamplePoint, 0, size)
	var integral float64
	for i, pts := range raw {
		integral = integrate(pts, integral, density, interval)
		if i > 0 {
			pts = pts[1:]
		}
		result.Points = append(result.Points, pts...)
	}
	result.ArcLength = result.Points[len(result.Points)-1].Integral
	tracer().Debugf("sampled %d segments: %d samples, arc length %.4g",
		n, len(result.Points), result.ArcLength)
	return result
}
