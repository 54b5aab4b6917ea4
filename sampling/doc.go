// Package sampling turns a path into a dense, arc-length-uniform sequence of
// points annotated with heading, speed, lookahead and bent rate.
/*

The pipeline has four stages:

   SamplePath            steps the Bézier parameter of every segment and
                         tracks cumulative arc length (non-uniform samples)
   ComputeUniformPoints  walks the samples and emits points evenly spaced
                         by arc length, keeping segment boundaries and
                         end-control headings
   IndexKeyframes        maps per-segment keyframe positions onto absolute
                         point indexes
   ProcessKeyframes      interpolates speed (or lookahead) between keyframes
                         and optionally bounds it by the bent rate

ComputePathPoints runs all stages and appends a terminal point at the
path's last control.

All functions are pure: inputs are never mutated and results may be
discarded and recomputed at any time. Degenerate geometry (zero-length
segments, empty paths) never produces an error; it degrades to a plausible
result instead, as a path which is half-way drawn must still render.


BSD License

Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package sampling
