package polygon

import (
	"math"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/trajectory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilder(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	pg := NullPolygon().Knot(trajectory.P(0, 0)).Knot(trajectory.P(1, 3)).Knot(trajectory.P(3, 0)).Cycle()
	L().Infof("pg = %s", AsString(pg))
	if pg.N() != 3 || !pg.IsCycle() {
		t.Fail()
	}
	assert.Panics(t, func() {
		NullPolygon().Knot(trajectory.P(0, 0)).Knot(trajectory.P(1, 3)).Cycle()
	})
}

func TestBox(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	box := Box(trajectory.P(0, 5), trajectory.P(4, 1))
	L().Infof("box = %s", AsString(box))
	if box.N() != 4 {
		t.Fail()
	}
	assert.Equal(t, "(0,1) -- (4,1) -- (4,5) -- (0,5) -- cycle", AsString(box))
	assert.Equal(t, trajectory.P(0, 5), box.Z(-1))
	assert.Equal(t, trajectory.P(0, 1), box.Z(4))
}

func TestContains(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	box := Box(trajectory.Origin, trajectory.P(4, 4))
	assert.True(t, box.Contains(trajectory.P(2, 2)))
	assert.False(t, box.Contains(trajectory.P(5, 2)))
	assert.False(t, box.Contains(trajectory.P(2, -0.5)))
	out := box.Outside([]trajectory.Pair{
		trajectory.P(1, 1), trajectory.P(-1, 1), trajectory.P(3, 3.5), trajectory.P(10, 10),
	})
	assert.Equal(t, []int{1, 3}, out)
	open := NullPolygon().Knot(trajectory.Origin).Knot(trajectory.P(4, 0)).Knot(trajectory.P(4, 4))
	assert.False(t, open.Contains(trajectory.P(3, 1)))
	assert.Nil(t, open.Outside([]trajectory.Pair{trajectory.P(3, 1)}))
}

func TestIntersection(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	a := Box(trajectory.Origin, trajectory.P(4, 4))
	b := Box(trajectory.P(2, 2), trajectory.P(6, 6))
	clipped := Intersection(a, b)
	require.Len(t, clipped, 1)
	L().Infof("a ∩ b = %s", AsString(clipped[0]))
	assert.True(t, clipped[0].IsCycle())
	for i := 0; i < clipped[0].N(); i++ {
		p := clipped[0].Z(i)
		assert.InDelta(t, 3.0, p.X(), 1.0+1e-9)
		assert.InDelta(t, 3.0, p.Y(), 1.0+1e-9)
	}
	far := Box(trajectory.P(10, 10), trajectory.P(12, 12))
	assert.Empty(t, Intersection(a, far))
}

func headingsEqual(t *testing.T, expected, actual float64) {
	t.Helper()
	assert.InDelta(t, 0.0, math.Remainder(expected-actual, 360), 1e-9)
}

func TestMagnetReferences(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	box := Box(trajectory.P(0, 5), trajectory.P(4, 1))
	refs := box.MagnetReferences()
	require.Len(t, refs, 4)
	for i, h := range []float64{90, 0, 270, 180} {
		assert.Equal(t, box.Z(i), refs[i].Source)
		headingsEqual(t, h, refs[i].Heading)
	}
	open := NullPolygon().Knot(trajectory.Origin).Knot(trajectory.P(0, 3)).Knot(trajectory.P(0, 3)).Knot(trajectory.P(3, 3))
	refs = open.MagnetReferences()
	require.Len(t, refs, 2, "open polygon, zero-length edge skipped")
	headingsEqual(t, 0, refs[0].Heading)
	headingsEqual(t, 90, refs[1].Heading)
	assert.Nil(t, NullPolygon().MagnetReferences())
}

func TestFromPoints(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	pg, err := FromPoints([][]float64{{0, 0}, {10, 0}, {10, 10}})
	require.NoError(t, err)
	assert.Equal(t, 3, pg.N())
	assert.True(t, pg.IsCycle())
	_, err = FromPoints([][]float64{{0, 0}, {10, 0}})
	assert.Error(t, err)
	_, err = FromPoints([][]float64{{0, 0}, {10}, {10, 10}})
	assert.Error(t, err)
}
