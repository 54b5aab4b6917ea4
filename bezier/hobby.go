package bezier

import (
	"math"
	"math/cmplx"

	"github.com/npillmayer/trajectory"
)

// SmoothControls finds the inner controls of a cubic segment from `from`
// to `to`, leaving `from` with heading hFrom and arriving at `to` with
// heading hTo.
//
// For a single segment with given directions at both ends, Hobby's system
// of equations collapses: the turning angles theta (at the start) and phi
// (at the end) are the angles between the chord and the end directions.
// Tension is 1 at both ends, which gives MetaFont's "..".
//
// A zero-length chord yields the end points themselves as controls.
func SmoothControls(from, to trajectory.Pair, hFrom, hTo float64) (trajectory.Pair, trajectory.Pair) {
	dvec := to.Sub(from)
	if trajectory.Is0(dvec.Length()) {
		return from, to
	}
	chord := dvec.Angle()
	theta := reduceAngle(trajectory.HeadingToAngle(hFrom) - chord)
	phi := -reduceAngle(trajectory.HeadingToAngle(hTo) - chord)
	p2, p3 := controlOffsets(phi, theta, recip(1), recip(1), dvec)
	tracer().Debugf("smooth controls: theta = %.4g, phi = %.4g", rad2deg(theta), rad2deg(phi))
	return from.Add(p2), to.Sub(p3)
}

func hobbyParamsAlphaBeta(theta, phi float64) (float64, float64) {
	constA := 1.41421356     // sqrt(2) -- empiric constants, as explained by J.Hobby
	constB := 0.0625         // 1/16
	constC := 0.38196601125  // (3 - sqrt(5)) / 2
	constCC := 0.61803398875 // 1 - c
	st := math.Sin(theta)    // in-angle
	ct := math.Cos(theta)
	sf := math.Sin(phi) // out-angle
	cf := math.Cos(phi)
	alpha := constA * (st - constB*sf) * (sf - constB*st) * (ct - cf)
	beta := 1 + constCC*ct + constC*cf
	return alpha, beta
}

func hobbyParamsRhoSigma(alpha, beta float64) (float64, float64) {
	rho := (2 + alpha) / beta
	sigma := (2 - alpha) / beta
	return rho, sigma
}

// Offsets of the controls from their end points: the chord dvec rotated by
// theta (leaving) resp. -phi (arriving), scaled by the velocities rho and
// sigma. a and b are the reciprocal tensions.
func controlOffsets(phi, theta, a, b float64, dvec trajectory.Pair) (trajectory.Pair, trajectory.Pair) {
	alpha, beta := hobbyParamsAlphaBeta(theta, phi)
	rho, sigma := hobbyParamsRhoSigma(alpha, beta)
	uv1 := trajectory.C2P(dvec.C() * cmplx.Rect(1, theta))
	uv2 := trajectory.C2P(dvec.C() * cmplx.Rect(1, -phi))
	return uv1.Scaled(a / 3 * rho), uv2.Scaled(b / 3 * sigma)
}

// Reduce an angle to fit into -pi .. pi.
func reduceAngle(a float64) float64 {
	if math.Abs(a) > math.Pi {
		if a > 0 {
			a -= 2 * math.Pi
		} else {
			a += 2 * math.Pi
		}
	}
	return a
}

// Return 1/a for a.
func recip(a float64) float64 {
	if math.IsNaN(a) {
		return 1.0
	}
	return 1.0 / a
}

func rad2deg(a float64) float64 {
	return a * 180 / math.Pi
}
