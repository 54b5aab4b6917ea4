/*
Package polygon describes field boundaries as simple closed polygons.

Polygons answer containment queries for sampled path points, can be
clipped against each other, and offer their edges as magnet references so
that dragged controls snap to field walls.
*/
package polygon

import (
	"fmt"
	"strings"

	polyclip "github.com/akavel/polyclip-go"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/trajectory"
	"github.com/npillmayer/trajectory/magnet"
)

// L writes to trace with key 'trajectory.polygon'
func L() tracing.Trace {
	return tracing.Select("trajectory.polygon")
}

// Polygon is a closed polygon given by its knots.
type Polygon struct {
	points []trajectory.Pair
	cycle  bool
}

// NullPolygon creates an empty polygon, to be extended by Knot() and
// closed by Cycle().
func NullPolygon() *Polygon {
	return &Polygon{}
}

// Knot appends a knot. Part of builder functionality.
func (pg *Polygon) Knot(p trajectory.Pair) *Polygon {
	pg.points = append(pg.points, p)
	return pg
}

// Cycle closes the polygon. Part of builder functionality.
func (pg *Polygon) Cycle() *Polygon {
	if len(pg.points) < 3 {
		panic("polygon needs at least 3 knots")
	}
	pg.cycle = true
	return pg
}

// Box creates a rectangle from two opposite corners.
func Box(p1, p2 trajectory.Pair) *Polygon {
	x0, x1 := min(p1.X(), p2.X()), max(p1.X(), p2.X())
	y0, y1 := min(p1.Y(), p2.Y()), max(p1.Y(), p2.Y())
	return NullPolygon().Knot(trajectory.P(x0, y0)).Knot(trajectory.P(x1, y0)).
		Knot(trajectory.P(x1, y1)).Knot(trajectory.P(x0, y1)).Cycle()
}

// N returns the number of knots.
func (pg *Polygon) N() int {
	return len(pg.points)
}

// Z returns the knot at position (i mod N).
func (pg *Polygon) Z(i int) trajectory.Pair {
	n := pg.N()
	return pg.points[((i%n)+n)%n]
}

// IsCycle is a predicate: has the polygon been closed?
func (pg *Polygon) IsCycle() bool {
	return pg.cycle
}

// AsString returns a polygon as a (debugging) string.
func AsString(pg *Polygon) string {
	var s strings.Builder
	for i, p := range pg.points {
		if i > 0 {
			s.WriteString(" -- ")
		}
		s.WriteString(p.String())
	}
	if pg.cycle {
		s.WriteString(" -- cycle")
	}
	return s.String()
}

func (pg *Polygon) contour() polyclip.Contour {
	c := make(polyclip.Contour, 0, len(pg.points))
	for _, p := range pg.points {
		c.Add(polyclip.Point{X: p.X(), Y: p.Y()})
	}
	return c
}

// Contains is a predicate: is p inside the polygon? Points on the border
// may go either way.
func (pg *Polygon) Contains(p trajectory.Pair) bool {
	if !pg.cycle {
		return false
	}
	return pg.contour().Contains(polyclip.Point{X: p.X(), Y: p.Y()})
}

// Outside returns the indexes of all points not contained in pg.
func (pg *Polygon) Outside(points []trajectory.Pair) []int {
	if !pg.cycle {
		return nil
	}
	c := pg.contour()
	var out []int
	for i, p := range points {
		if !c.Contains(polyclip.Point{X: p.X(), Y: p.Y()}) {
			out = append(out, i)
		}
	}
	L().Debugf("%d of %d points outside %d-gon", len(out), len(points), pg.N())
	return out
}

// Intersection clips pg against other. The result may consist of several
// polygons, or none if pg and other do not overlap.
func Intersection(pg, other *Polygon) []*Polygon {
	subject := polyclip.Polygon{pg.contour()}
	clipping := polyclip.Polygon{other.contour()}
	result := subject.Construct(polyclip.INTERSECTION, clipping)
	polygons := make([]*Polygon, 0, len(result))
	for _, c := range result {
		if len(c) < 3 {
			continue
		}
		q := NullPolygon()
		for _, p := range c {
			q.Knot(trajectory.P(p.X, p.Y))
		}
		polygons = append(polygons, q.Cycle())
	}
	return polygons
}

// MagnetReferences returns one reference line per edge, running from each
// knot towards its successor.
func (pg *Polygon) MagnetReferences() []magnet.Reference {
	n := pg.N()
	if n < 2 {
		return nil
	}
	edges := n
	if !pg.cycle {
		edges = n - 1
	}
	refs := make([]magnet.Reference, 0, edges)
	for i := 0; i < edges; i++ {
		d := pg.Z(i + 1).Sub(pg.Z(i))
		if trajectory.Is0(d.Length()) {
			continue
		}
		refs = append(refs, magnet.Reference{
			Source:  pg.Z(i),
			Heading: trajectory.AngleToHeading(d.Angle()),
		})
	}
	return refs
}

// FromPoints builds a closed polygon from coordinate pairs [x, y].
func FromPoints(coords [][]float64) (*Polygon, error) {
	if len(coords) < 3 {
		return nil, fmt.Errorf("polygon needs at least 3 knots, got %d", len(coords))
	}
	pg := NullPolygon()
	for i, xy := range coords {
		if len(xy) != 2 {
			return nil, fmt.Errorf("knot %d has %d coordinates", i, len(xy))
		}
		pg.Knot(trajectory.P(xy[0], xy[1]))
	}
	return pg.Cycle(), nil
}
