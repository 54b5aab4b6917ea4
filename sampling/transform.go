package sampling

import (
	"github.com/npillmayer/trajectory"
)

// Transform maps points through the rigid transform m, e.g. into the
// coordinate system of downstream motion-control code. Headings are turned
// by the rotation part of m. The input is not modified.
func Transform(points []Point, m trajectory.AT) []Point {
	turn := m.RotationAngle() / trajectory.Deg2Rad
	out := make([]Point, len(points))
	for i, p := range points {
		p.Pos = m.Transform(p.Pos)
		if p.HasHeading() {
			p.Heading = trajectory.NormalizeHeading(p.Heading - turn)
		}
		out[i] = p
	}
	return out
}
