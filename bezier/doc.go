// Package bezier holds the path aggregate of a robot motion path: end
// controls with headings, inner controls, linear and cubic Bézier segments,
// and the speed and lookahead keyframes attached to each segment.
/*

A path is an ordered chain of segments. Each segment is a Bézier curve
of degree one (two controls) or three (four controls). The first and the
last control of a segment are end controls, which carry a heading: the
bearing the robot should have when passing that control. Consecutive
segments share their joining end control. Controls therefore live in an
arena owned by the path, and segments refer to them by ControlID; moving a
shared end control moves both segments.

Headings are compass bearings in degrees: 0 points to +y, 90 to +x,
normalized to [0, 360).

Usage

Paths are usually built with a kind of builder pattern (package qualifiers
omitted for clarity and brevity):

   Nullpath().Start(P(0,0), 0).Line().To(P(0,60), 0)
      .Curve(P(0,80), P(20,100)).To(P(40,100), 90)
      .SmoothCurve().To(P(100,40), 180).End()

Line() and Curve(c1, c2) state how the next segment is shaped; SmoothCurve()
places the two inner controls itself, from the headings at both ends, by
John Hobby's formula for splines with given end directions:

   Smooth, Easy to Compute Interpolating Splines -- John D. Hobby
   Computer Science Dept. Stanford University
   Report No. STAN-CS-85-1047, Jan 1985

Keyframes are attached per segment and kept sorted by their position:

   path.AddSpeedKeyframe(1, Keyframe{XPos: 0.5, YPos: 0.3})

Evaluating segments is done on value snapshots (type Curve), obtained by
path.CurveAt(i). Snapshots do not alias the arena, so the sampling engine
may read them from several goroutines.


BSD License

Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package bezier

import (
	"fmt"
	"strings"
)

// AsString returns a path as a (debugging) string, including headings of
// end controls and inner controls of cubic segments. The string contains a
// newline for every segment.
//
// Example, a line followed by a curve:
//
//	(0,0){0} -- (0,60){0}
//	  .. controls (0.0000,80.0000) and (20.0000,100.0000) .. (40,100){90}
func AsString(path *Path) string {
	if path == nil || path.N() == 0 {
		return "<empty path>"
	}
	var s strings.Builder
	for i := 0; i < path.N(); i++ {
		c := path.CurveAt(i)
		if i == 0 {
			s.WriteString(fmt.Sprintf("%s{%g}", ptstring(c.Start(), false), round(c.StartHeading)))
		} else {
			s.WriteString("\n ")
		}
		if c.Kind() == Linear {
			s.WriteString(" -- ")
		} else {
			s.WriteString(fmt.Sprintf(" .. controls %s and %s .. ",
				ptstring(c.Points[1], true), ptstring(c.Points[2], true)))
		}
		s.WriteString(fmt.Sprintf("%s{%g}", ptstring(c.End(), false), round(c.EndHeading)))
	}
	return s.String()
}
