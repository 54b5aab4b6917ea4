/*
Package trajectory implements the numeric primitives for robot motion paths:
2D pairs, headings and affine transformations.

Sub-packages build on these: package bezier holds the path aggregate
(controls, segments, keyframes), package sampling turns a path into a
uniform, speed-annotated sequence of points, package magnet snaps dragged
points to reference lines, and package polygon describes field boundaries.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package trajectory

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'trajectory'
func tracer() tracing.Trace {
	return tracing.Select("trajectory")
}

// === Numeric Data Type =====================================================

// Deg2Rad is a constant for converting from DEG to RAD or vice versa
var Deg2Rad float64 = math.Pi / 180

// Epsilon : numbers below ε are considered 0
var Epsilon float64 = 0.0000001

// Is0 is a predicate: is n = 0 ?
func Is0(n float64) bool {
	return math.Abs(n) <= Epsilon
}

// Is1 is a predicate: is n = 1.0 ?
func Is1(n float64) bool {
	return math.Abs(1-n) <= Epsilon
}

// Zap makes n = 0 if n "means" to be zero
func Zap(n float64) float64 {
	if Is0(n) {
		n = 0
	}
	return n
}

// IsFinite is a predicate: is n neither NaN nor ±Inf ?
func IsFinite(n float64) bool {
	return !math.IsNaN(n) && !math.IsInf(n, 0)
}

// === Headings ==============================================================

// A heading is a bearing in degrees: 0 points to +y, 90 points to +x.
// Headings grow clockwise, as on a compass.

// NormalizeHeading maps h into [0, 360).
func NormalizeHeading(h float64) float64 {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	if h >= 360 { // -0.0000…1 + 360 may round up
		h = 0
	}
	return h
}

// HeadingToAngle converts a heading in degrees to a mathematical angle in
// radians (counter-clockwise from +x).
func HeadingToAngle(h float64) float64 {
	return (90 - h) * Deg2Rad
}

// AngleToHeading converts a mathematical angle in radians to a normalized
// heading in degrees.
func AngleToHeading(theta float64) float64 {
	return NormalizeHeading(90 - theta/Deg2Rad)
}

// HeadingDirection returns the unit vector pointing along heading h.
func HeadingDirection(h float64) Pair {
	theta := HeadingToAngle(h)
	return P(math.Cos(theta), math.Sin(theta))
}

// === Pair Data Type ========================================================

// Pair is a 2D vector / point, stored as a complex number.
//
// Arithmetic on pairs is exact: unlike the convenience transformations
// (Shifted, Rotated, …) the vector operations Add, Sub, Scaled, Lerp and
// Mirrored never round to Epsilon.
type Pair complex128

// Origin represents the frequently used constant (0,0).
var Origin = P(float64(0), float64(0))

// Pretty Stringer for simple pairs.
func (p Pair) String() string {
	return fmt.Sprintf("(%g,%g)", real(p), imag(p))
}

// C returns a Pair as a complex number.
func (p Pair) C() complex128 {
	return complex128(p)
}

// C2P returns a Pair from a complex number.
func C2P(c complex128) Pair {
	if cmplx.IsNaN(c) || cmplx.IsInf(c) {
		tracer().Errorf("created pair for complex.NaN")
		return P(0, 0)
	}
	return P(real(c), imag(c))
}

// P is a quick notation for contructing a pair from floats.
func P(x, y float64) Pair {
	return Pair(complex(x, y))
}

// X is the x-part of a pair.
func (p Pair) X() float64 {
	return real(p)
}

// Y is the y-part of a pair.
func (p Pair) Y() float64 {
	return imag(p)
}

// IsNaN is true if any coordinate is NaN.
func (p Pair) IsNaN() bool {
	return math.IsNaN(p.X()) || math.IsNaN(p.Y())
}

// Zap rounds x-part and y-part to Epsilon.
func (p Pair) Zap() Pair {
	return P(Zap(p.X()), Zap(p.Y()))
}

// IsOrigin is a predicate: is this pair origin?
func (p Pair) IsOrigin() bool {
	return p.Equal(Origin)
}

// Equal compares two pairs, up to Epsilon.
func (p Pair) Equal(p2 Pair) bool {
	p2 = p2.Zap()
	return Is0(p.X()-p2.X()) && Is0(p.Y()-p2.Y())
}

// Add returns p + q.
func (p Pair) Add(q Pair) Pair {
	return P(p.X()+q.X(), p.Y()+q.Y())
}

// Sub returns p - q.
func (p Pair) Sub(q Pair) Pair {
	return P(p.X()-q.X(), p.Y()-q.Y())
}

// Scaled returns a new pair scaled by factor a.
func (p Pair) Scaled(a float64) Pair {
	return P(p.X()*a, p.Y()*a)
}

// Length is the euclidean norm of p.
func (p Pair) Length() float64 {
	return math.Hypot(p.X(), p.Y())
}

// Distance is the euclidean distance between p and q.
func (p Pair) Distance(q Pair) float64 {
	return math.Hypot(q.X()-p.X(), q.Y()-p.Y())
}

// Lerp interpolates linearly between p (t=0) and q (t=1).
func (p Pair) Lerp(q Pair, t float64) Pair {
	return P(p.X()+(q.X()-p.X())*t, p.Y()+(q.Y()-p.Y())*t)
}

// Mirrored reflects p through center c, i.e. returns 2c - p.
// Editors use it to keep the two controls around an end control collinear.
func (p Pair) Mirrored(c Pair) Pair {
	return P(2*c.X()-p.X(), 2*c.Y()-p.Y())
}

// Angle returns the mathematical angle of p in radians.
func (p Pair) Angle() float64 {
	return math.Atan2(p.Y(), p.X())
}

// Shifted returns a new pair translated by v.
func (p Pair) Shifted(v Pair) Pair {
	T := Translation(v)
	return T.Transform(p).Zap()
}

// Rotated returns a new pair rotated around origin by theta (counterclockwise).
func (p Pair) Rotated(theta float64) Pair {
	T := Rotation(theta)
	return T.Transform(p).Zap()
}

// === Affine Transformations ================================================

// AT is an affine transform, a matrix type used for transforming vectors.
type AT []float64 // a 3x3 matrix, flattened by rows

// Internal constructor. Clients implicitely use this as a starting point for
// transform combinations.
func newAT() AT {
	return make([]float64, 9)
}

func (m AT) get(row, col int) float64 {
	return m[row*3+col]
}

func (m AT) set(row, col int, value float64) {
	m[row*3+col] = value
}

func (m AT) row(row int) []float64 {
	return m[row*3 : (row+1)*3]
}

func (m AT) col(col int) []float64 {
	return []float64{m[col], m[3+col], m[6+col]}
}

// Identity transform. Will transform a point onto itself.
func Identity() AT {
	m := newAT()
	m.set(0, 0, 1.0)
	m.set(1, 1, 1.0)
	m.set(2, 2, 1.0)
	return m
}

// Translation transform. Translate a point by (dx,dy).
func Translation(p Pair) AT {
	m := Identity()
	m.set(0, 2, p.X())
	m.set(1, 2, p.Y())
	return m
}

// Rotation transform. Rotate a point counter-clockwise around the origin.
// Argument is in radians.
func Rotation(theta float64) AT {
	m := newAT()
	sin := math.Sin(theta)
	cos := math.Cos(theta)
	m.set(0, 0, cos)
	m.set(0, 1, -sin)
	m.set(1, 0, sin)
	m.set(1, 1, cos)
	m.set(2, 2, 1.0)
	return m
}

// Debug Stringer for an affine transform.
func (m AT) String() string {
	return fmt.Sprintf("[%g,%g,%g|%g,%g,%g|%g,%g,%g]",
		m[0], m[1], m[2], m[3], m[4], m[5], m[6], m[7], m[8])
}

// v1 × v2, v.n = [a,b,c]
func dotProd(vec1, vec2 []float64) float64 {
	return vec1[0]*vec2[0] + vec1[1]*vec2[1] + vec1[2]*vec2[2]
}

// Combine 2 affine transformation to a new one. Returns a new transformation
// without changing the argument(s). The result applies m first, then n.
func (m AT) Combine(n AT) AT {
	o := newAT()
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			o.set(row, col, dotProd(n.row(row), m.col(col)))
		}
	}
	return o
}

// RotationAngle extracts the rotation part of m, in radians
// (counter-clockwise). Only meaningful for rigid transforms.
func (m AT) RotationAngle() float64 {
	return math.Atan2(m.get(1, 0), m.get(0, 0))
}

// Transform a 2D-point. The argument is unchanged and a new pair is returned.
func (m AT) Transform(p Pair) Pair {
	v := []float64{p.X(), p.Y(), 1.0}
	return P(dotProd(m.row(0), v), dotProd(m.row(1), v))
}
