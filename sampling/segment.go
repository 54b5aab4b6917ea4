package sampling

import (
	"math"

	"github.com/npillmayer/trajectory"
	"github.com/npillmayer/trajectory/bezier"
)

// Sample steps per unit of density: a density d samples every d/200 of the
// Bézier parameter.
const samplesPerDensity = 200

// minSampleInterval bounds the number of samples per segment.
const minSampleInterval = 1e-5

// sampleInterval returns the parameter step for a density, within (0,1].
func sampleInterval(density float64) float64 {
	iv := density / samplesPerDensity
	if !(iv > 0) || math.IsInf(iv, 0) {
		tracer().Errorf("invalid sample density %g, sampling end points only", density)
		return 1
	}
	if iv < minSampleInterval {
		tracer().Errorf("sample density %g too fine, using interval %g", density, minSampleInterval)
		return minSampleInterval
	}
	return math.Min(iv, 1)
}

// SampleSegment samples curve c (segment number seg) by stepping its
// parameter from 0 to 1, continuing the arc length at prevIntegral.
//
// The last sample always sits exactly on the curve's last control, carries
// the end heading and is flagged IsLast; the first one carries the start
// heading. Deltas are rescaled so that segments of different length show the
// same apparent sample density; positions and integrals stay exact.
func SampleSegment(c bezier.Curve, seg int, density, prevIntegral float64) []SamplePoint {
	interval := sampleInterval(density)
	pts := segmentSamples(c, seg, interval)
	integrate(pts, prevIntegral, density, interval)
	return pts
}

// segmentSamples produces positions and raw deltas, but no integrals. It
// only reads c, so segments may be sampled concurrently.
func segmentSamples(c bezier.Curve, seg int, interval float64) []SamplePoint {
	pts := make([]SamplePoint, 0, int(1/interval)+2)
	prev := c.Start()
	for t := 0.0; t <= 1; t += interval {
		p := c.Eval(t)
		pts = append(pts, SamplePoint{
			Pos:     p,
			Delta:   prev.Distance(p),
			Segment: seg,
			T:       t,
			Heading: math.NaN(),
		})
		prev = p
	}
	end := c.End()
	pts = append(pts, SamplePoint{
		Pos:     end,
		Delta:   prev.Distance(end),
		Segment: seg,
		T:       1,
		Heading: c.EndHeading,
		IsLast:  true,
	})
	pts[0].Heading = c.StartHeading
	return pts
}

// integrate accumulates the arc length over pts, starting at prevIntegral,
// and rescales the deltas. It returns the integral at the last sample.
func integrate(pts []SamplePoint, prevIntegral, density, interval float64) float64 {
	integral := prevIntegral
	for i := range pts {
		integral += pts[i].Delta
		pts[i].Integral = integral
	}
	if trajectory.Is0(integral - prevIntegral) { // zero-length segments keep raw deltas
		return integral
	}
	ratio := 1 / interval / ((integral - prevIntegral) / density)
	if trajectory.IsFinite(ratio) {
		for i := range pts {
			pts[i].Delta *= ratio
		}
	}
	return integral
}
