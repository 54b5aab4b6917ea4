package bezier

import (
	"math"

	"github.com/npillmayer/trajectory"
)

// Kind returns Cubic for 4 controls, Linear otherwise.
func (c Curve) Kind() SegmentKind {
	if len(c.Points) == 4 {
		return Cubic
	}
	return Linear
}

// Start is the first control of the curve.
func (c Curve) Start() trajectory.Pair {
	return c.Points[0]
}

// End is the last control of the curve.
func (c Curve) End() trajectory.Pair {
	return c.Points[len(c.Points)-1]
}

// Eval returns the position at parameter t, by repeated linear
// interpolation over the control polygon (de Casteljau). Coinciding
// controls evaluate to exactly their common position.
func (c Curve) Eval(t float64) trajectory.Pair {
	var buf [4]trajectory.Pair
	pts := append(buf[:0], c.Points...)
	for n := len(pts) - 1; n > 0; n-- {
		for i := 0; i < n; i++ {
			pts[i] = pts[i].Lerp(pts[i+1], t)
		}
	}
	return pts[0]
}

// Derivative returns the first derivative at parameter t.
// Linear curves have the constant derivative end − start.
func (c Curve) Derivative(t float64) trajectory.Pair {
	if c.Kind() == Linear {
		return c.End().Sub(c.Start())
	}
	p0, p1, p2, p3 := c.Points[0], c.Points[1], c.Points[2], c.Points[3]
	mt := 1 - t
	// 3(1-t)²(p1-p0) + 6(1-t)t(p2-p1) + 3t²(p3-p2)
	a := p1.Sub(p0).Scaled(3 * mt * mt)
	b := p2.Sub(p1).Scaled(6 * mt * t)
	d := p3.Sub(p2).Scaled(3 * t * t)
	return a.Add(b).Add(d)
}

// SecondDerivative returns the second derivative at parameter t.
// It is zero for linear curves.
func (c Curve) SecondDerivative(t float64) trajectory.Pair {
	if c.Kind() == Linear {
		return trajectory.Origin
	}
	p0, p1, p2, p3 := c.Points[0], c.Points[1], c.Points[2], c.Points[3]
	// 6(1-t)(p2 - 2p1 + p0) + 6t(p3 - 2p2 + p1)
	a := p2.Sub(p1.Scaled(2)).Add(p0).Scaled(6 * (1 - t))
	b := p3.Sub(p2.Scaled(2)).Add(p1).Scaled(6 * t)
	return a.Add(b)
}

// Curvature returns the signed curvature at parameter t,
//
//	κ = (x'y'' − y'x'') / |(x',y')|³
//
// Where the first derivative vanishes the result is NaN or ±Inf; callers
// decide how to treat such cusps.
func (c Curve) Curvature(t float64) float64 {
	d := c.Derivative(t)
	dd := c.SecondDerivative(t)
	num := d.X()*dd.Y() - d.Y()*dd.X()
	den := math.Pow(d.X()*d.X()+d.Y()*d.Y(), 1.5)
	return num / den
}
