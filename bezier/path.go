package bezier

import (
	"fmt"
	"sort"

	"github.com/npillmayer/trajectory"
)

// N returns the number of segments of a path.
func (path *Path) N() int {
	if path == nil {
		return 0
	}
	return len(path.segments)
}

// CurveAt returns a geometry snapshot of segment i.
func (path *Path) CurveAt(i int) Curve {
	seg := path.segments[i]
	c := Curve{Points: make([]trajectory.Pair, len(seg.controls))}
	for j, id := range seg.controls {
		c.Points[j] = path.arena[id].Pos
	}
	c.StartHeading = path.arena[seg.controls[0]].Heading
	c.EndHeading = path.arena[seg.controls[len(seg.controls)-1]].Heading
	return c
}

// Segment returns segment i. Callers must not keep it beyond the next
// mutation of the path.
func (path *Path) Segment(i int) *Segment {
	return path.segments[i]
}

// Controls returns copies of the controls of segment i, in polygon order.
func (path *Path) Controls(i int) []Control {
	seg := path.segments[i]
	cs := make([]Control, len(seg.controls))
	for j, id := range seg.controls {
		cs[j] = path.arena[id]
	}
	return cs
}

// ControlIDs returns the IDs of the controls of segment i.
func (path *Path) ControlIDs(i int) []ControlID {
	return append([]ControlID(nil), path.segments[i].controls...)
}

// Control returns a copy of the control with the given ID.
func (path *Path) Control(id ControlID) (Control, bool) {
	if id < 0 || int(id) >= len(path.arena) {
		return Control{}, false
	}
	return path.arena[id], true
}

// First returns the very first end control of the path.
func (path *Path) First() (Control, bool) {
	if path.N() == 0 {
		return Control{}, false
	}
	return path.arena[path.segments[0].controls[0]], true
}

// Last returns the very last end control of the path.
func (path *Path) Last() (Control, bool) {
	if path.N() == 0 {
		return Control{}, false
	}
	ctrls := path.segments[len(path.segments)-1].controls
	return path.arena[ctrls[len(ctrls)-1]], true
}

// MoveControl sets the position of a control. A shared end control moves
// for both segments it belongs to.
func (path *Path) MoveControl(id ControlID, p trajectory.Pair) error {
	if id < 0 || int(id) >= len(path.arena) {
		return fmt.Errorf("%w: %d", ErrUnknownControl, id)
	}
	path.arena[id].Pos = p
	return nil
}

// SetHeading sets the heading of an end control, normalized to [0,360).
func (path *Path) SetHeading(id ControlID, heading float64) error {
	if id < 0 || int(id) >= len(path.arena) {
		return fmt.Errorf("%w: %d", ErrUnknownControl, id)
	}
	if !path.arena[id].IsEnd() {
		return fmt.Errorf("%w: %d", ErrNotEndControl, id)
	}
	path.arena[id].Heading = trajectory.NormalizeHeading(heading)
	return nil
}

// SetLock sets the lock flag of a control.
func (path *Path) SetLock(id ControlID, lock bool) error {
	if id < 0 || int(id) >= len(path.arena) {
		return fmt.Errorf("%w: %d", ErrUnknownControl, id)
	}
	path.arena[id].Lock = lock
	return nil
}

// SetVisible sets the visibility flag of a control.
func (path *Path) SetVisible(id ControlID, visible bool) error {
	if id < 0 || int(id) >= len(path.arena) {
		return fmt.Errorf("%w: %d", ErrUnknownControl, id)
	}
	path.arena[id].Visible = visible
	return nil
}

// --- Keyframes -------------------------------------------------------------

// SpeedKeyframes returns a copy of the speed keyframes of segment i, sorted by XPos.
func (path *Path) SpeedKeyframes(i int) []Keyframe {
	return append([]Keyframe(nil), path.segments[i].speed...)
}

// LookaheadKeyframes returns a copy of the lookahead keyframes of segment i, sorted by XPos.
func (path *Path) LookaheadKeyframes(i int) []Keyframe {
	return append([]Keyframe(nil), path.segments[i].lookahead...)
}

// AddSpeedKeyframe inserts kf into the speed keyframes of segment i,
// keeping them sorted. Keyframes at equal positions keep insertion order.
func (path *Path) AddSpeedKeyframe(i int, kf Keyframe) error {
	seg, err := path.segment(i)
	if err != nil {
		return err
	}
	if err := checkKeyframe(kf); err != nil {
		return err
	}
	seg.speed = insertKeyframe(seg.speed, kf)
	return nil
}

// AddLookaheadKeyframe inserts kf into the lookahead keyframes of segment i,
// keeping them sorted.
func (path *Path) AddLookaheadKeyframe(i int, kf Keyframe) error {
	seg, err := path.segment(i)
	if err != nil {
		return err
	}
	if err := checkKeyframe(kf); err != nil {
		return err
	}
	seg.lookahead = insertKeyframe(seg.lookahead, kf)
	return nil
}

// RemoveSpeedKeyframe removes the k-th speed keyframe of segment i.
func (path *Path) RemoveSpeedKeyframe(i, k int) error {
	seg, err := path.segment(i)
	if err != nil {
		return err
	}
	if k < 0 || k >= len(seg.speed) {
		return fmt.Errorf("%w: keyframe %d of %d", ErrKeyframeRange, k, len(seg.speed))
	}
	seg.speed = append(seg.speed[:k:k], seg.speed[k+1:]...)
	return nil
}

// RemoveLookaheadKeyframe removes the k-th lookahead keyframe of segment i.
func (path *Path) RemoveLookaheadKeyframe(i, k int) error {
	seg, err := path.segment(i)
	if err != nil {
		return err
	}
	if k < 0 || k >= len(seg.lookahead) {
		return fmt.Errorf("%w: keyframe %d of %d", ErrKeyframeRange, k, len(seg.lookahead))
	}
	seg.lookahead = append(seg.lookahead[:k:k], seg.lookahead[k+1:]...)
	return nil
}

func insertKeyframe(kfs []Keyframe, kf Keyframe) []Keyframe {
	at := sort.Search(len(kfs), func(j int) bool {
		return kfs[j].XPos > kf.XPos
	})
	kfs = append(kfs, Keyframe{})
	copy(kfs[at+1:], kfs[at:])
	kfs[at] = kf
	return kfs
}

func checkKeyframe(kf Keyframe) error {
	if !(kf.XPos >= 0 && kf.XPos < 1) || !(kf.YPos >= 0 && kf.YPos <= 1) {
		return fmt.Errorf("%w: x=%g, y=%g", ErrKeyframeRange, kf.XPos, kf.YPos)
	}
	return nil
}

// --- Validation ------------------------------------------------------------

// Validate checks the invariants the sampling engine relies on: every
// segment has 2 or 4 controls, starts and ends with an end control, starts
// where its predecessor ends, and holds keyframes in range and sorted.
// An empty path is valid.
func (path *Path) Validate() error {
	if path == nil {
		return ErrNilPath
	}
	for i, seg := range path.segments {
		n := len(seg.controls)
		if n != 2 && n != 4 {
			return fmt.Errorf("%w: segment %d has %d", ErrControlCount, i, n)
		}
		for _, id := range seg.controls {
			if id < 0 || int(id) >= len(path.arena) {
				return fmt.Errorf("%w: %d in segment %d", ErrUnknownControl, id, i)
			}
		}
		if !path.arena[seg.controls[0]].IsEnd() || !path.arena[seg.controls[n-1]].IsEnd() {
			return fmt.Errorf("%w: segment %d", ErrNotEndControl, i)
		}
		if i > 0 {
			prev := path.segments[i-1].controls
			if prev[len(prev)-1] != seg.controls[0] {
				return fmt.Errorf("%w: segment %d", ErrBrokenChain, i)
			}
		}
		if err := checkKeyframes(seg.speed); err != nil {
			return fmt.Errorf("speed keyframes of segment %d: %w", i, err)
		}
		if err := checkKeyframes(seg.lookahead); err != nil {
			return fmt.Errorf("lookahead keyframes of segment %d: %w", i, err)
		}
	}
	return nil
}

func checkKeyframes(kfs []Keyframe) error {
	for k, kf := range kfs {
		if err := checkKeyframe(kf); err != nil {
			return err
		}
		if k > 0 && kfs[k-1].XPos > kf.XPos {
			return fmt.Errorf("%w at %d", ErrKeyframeOrder, k)
		}
	}
	return nil
}
