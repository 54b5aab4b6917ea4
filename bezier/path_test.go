package bezier

import (
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/trajectory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustPanic(t *testing.T, f func()) {
	t.Helper()
	defer func() {
		if r := recover(); r == nil {
			t.Fatalf("expected panic, got none")
		}
	}()
	f()
}

func testpath() *Path {
	return Nullpath().Start(trajectory.P(0, 0), 0).Line().To(trajectory.P(0, 60), 0).
		Curve(trajectory.P(0, 80), trajectory.P(20, 100)).To(trajectory.P(40, 100), 90).End()
}

func TestCreatePath(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	path := testpath()
	if path.N() != 2 {
		t.Fail()
	}
	assert.Equal(t, Linear, path.Segment(0).Kind())
	assert.Equal(t, Cubic, path.Segment(1).Kind())
	assert.NoError(t, path.Validate())
}

func TestSegmentsShareEndControl(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	path := testpath()
	first, second := path.ControlIDs(0), path.ControlIDs(1)
	assert.Equal(t, first[len(first)-1], second[0])
	require.NoError(t, path.MoveControl(second[0], trajectory.P(5, 55)))
	assert.Equal(t, trajectory.P(5, 55), path.CurveAt(0).End())
	assert.Equal(t, trajectory.P(5, 55), path.CurveAt(1).Start())
}

func TestBuilderMisuse(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	mustPanic(t, func() { Nullpath().Line() })
	mustPanic(t, func() { Nullpath().Start(trajectory.P(0, 0), 0).To(trajectory.P(1, 1), 0) })
	mustPanic(t, func() { Nullpath().Start(trajectory.P(0, 0), 0).Line().End() })
	mustPanic(t, func() { Nullpath().Start(trajectory.P(0, 0), 0).Start(trajectory.P(1, 0), 0) })
}

func TestHeadingsAreNormalized(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	path := Nullpath().Start(trajectory.P(0, 0), -90).Line().To(trajectory.P(0, 10), 450).End()
	c := path.CurveAt(0)
	assert.Equal(t, 270.0, c.StartHeading)
	assert.Equal(t, 90.0, c.EndHeading)
	ids := path.ControlIDs(0)
	require.NoError(t, path.SetHeading(ids[1], 720))
	assert.Equal(t, 0.0, path.CurveAt(0).EndHeading)
}

func TestSetHeadingOfPlainControl(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	path := testpath()
	inner := path.ControlIDs(1)[1]
	err := path.SetHeading(inner, 10)
	assert.True(t, errors.Is(err, ErrNotEndControl))
	c, ok := path.Control(inner)
	require.True(t, ok)
	assert.True(t, math.IsNaN(c.Heading))
	assert.True(t, errors.Is(path.MoveControl(999, trajectory.Origin), ErrUnknownControl))
}

func TestKeyframesStaySorted(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	path := testpath()
	require.NoError(t, path.AddSpeedKeyframe(1, Keyframe{XPos: 0.5, YPos: 0.5}))
	require.NoError(t, path.AddSpeedKeyframe(1, Keyframe{XPos: 0.1, YPos: 0.2}))
	require.NoError(t, path.AddSpeedKeyframe(1, Keyframe{XPos: 0.5, YPos: 0.9}))
	kfs := path.SpeedKeyframes(1)
	require.Len(t, kfs, 3)
	assert.Equal(t, 0.1, kfs[0].XPos)
	assert.Equal(t, 0.5, kfs[1].YPos) // equal positions keep insertion order
	assert.Equal(t, 0.9, kfs[2].YPos)
	require.NoError(t, path.RemoveSpeedKeyframe(1, 0))
	assert.Len(t, path.SpeedKeyframes(1), 2)
	assert.Empty(t, path.LookaheadKeyframes(1))
	assert.NoError(t, path.Validate())
}

func TestKeyframesAreCopied(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	path := testpath()
	require.NoError(t, path.AddSpeedKeyframe(0, Keyframe{XPos: 0.5, YPos: 0.5}))
	require.NoError(t, path.AddLookaheadKeyframe(0, Keyframe{XPos: 0.5, YPos: 0.5}))
	speed, lookahead := path.SpeedKeyframes(0), path.LookaheadKeyframes(0)
	require.NoError(t, path.AddSpeedKeyframe(0, Keyframe{XPos: 0.1, YPos: 0.1}))
	require.NoError(t, path.AddLookaheadKeyframe(0, Keyframe{XPos: 0.1, YPos: 0.1}))
	assert.Equal(t, []Keyframe{{XPos: 0.5, YPos: 0.5}}, speed)
	assert.Equal(t, []Keyframe{{XPos: 0.5, YPos: 0.5}}, lookahead)
	speed[0].YPos = 1
	assert.Equal(t, 0.5, path.SpeedKeyframes(0)[1].YPos)
}

func TestKeyframeRange(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	path := testpath()
	assert.True(t, errors.Is(path.AddSpeedKeyframe(0, Keyframe{XPos: 1}), ErrKeyframeRange))
	assert.True(t, errors.Is(path.AddLookaheadKeyframe(0, Keyframe{YPos: 1.5}), ErrKeyframeRange))
	assert.True(t, errors.Is(path.AddSpeedKeyframe(7, Keyframe{}), ErrSegmentIndex))
	assert.True(t, errors.Is(path.RemoveLookaheadKeyframe(0, 0), ErrKeyframeRange))
}

func TestValidateBrokenChain(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	path := testpath()
	path.segments[1].controls[0] = path.segments[0].controls[0]
	assert.True(t, errors.Is(path.Validate(), ErrBrokenChain))
	path = testpath()
	path.segments[1].speed = []Keyframe{{XPos: 0.6}, {XPos: 0.2}}
	assert.True(t, errors.Is(path.Validate(), ErrKeyframeOrder))
	path = testpath()
	path.segments[0].controls = path.segments[0].controls[:1]
	assert.True(t, errors.Is(path.Validate(), ErrControlCount))
	var nilpath *Path
	assert.True(t, errors.Is(nilpath.Validate(), ErrNilPath))
}

func TestConvertSegments(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	path := testpath()
	require.NoError(t, path.AddSpeedKeyframe(0, Keyframe{XPos: 0.3, YPos: 0.4}))
	require.NoError(t, path.ConvertToCurve(0))
	c := path.CurveAt(0)
	assert.Equal(t, Cubic, c.Kind())
	assert.InDelta(t, 20.0, c.Points[1].Y(), 1e-9)
	assert.InDelta(t, 40.0, c.Points[2].Y(), 1e-9)
	assert.Len(t, path.SpeedKeyframes(0), 1)
	require.NoError(t, path.ConvertToLine(1))
	assert.Equal(t, Linear, path.CurveAt(1).Kind())
	assert.NoError(t, path.Validate())
	assert.True(t, errors.Is(path.ConvertToLine(2), ErrSegmentIndex))
}

func TestRemoveLastSegment(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	path := testpath()
	require.NoError(t, path.RemoveLastSegment())
	assert.Equal(t, 1, path.N())
	path.AppendLine(trajectory.P(10, 60), 90)
	assert.Equal(t, 2, path.N())
	assert.Equal(t, trajectory.P(0, 60), path.CurveAt(1).Start())
	last, ok := path.Last()
	require.True(t, ok)
	assert.Equal(t, trajectory.P(10, 60), last.Pos)
	require.NoError(t, path.RemoveLastSegment())
	require.NoError(t, path.RemoveLastSegment())
	assert.True(t, errors.Is(path.RemoveLastSegment(), ErrTooFewSegments))
	_, ok = path.First()
	assert.False(t, ok)
}

func TestAsString(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	want := "(0,0){0} -- (0,60){0}\n  .. controls (0.0000,80.0000) and (20.0000,100.0000) .. (40,100){90}"
	if got := AsString(testpath()); got != want {
		t.Fatalf("AsString mismatch:\n got: %s\nwant: %s", got, want)
	}
	assert.Equal(t, "<empty path>", AsString(Nullpath()))
}

// Build a quarter of a circle with radius 10 around (10,0): leave the origin
// heading north, arrive at (10,10) heading east. The inner controls are found
// from the headings alone.
func ExampleSmoothControls() {
	path := Nullpath().Start(trajectory.P(0, 0), 0).SmoothCurve().To(trajectory.P(10, 10), 90).End()
	fmt.Println(AsString(path))
	// Output:
	// (0,0){0} .. controls (0.0000,5.5228) and (4.4772,10.0000) .. (10,10){90}
}
