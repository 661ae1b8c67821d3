package dragdrop

import (
	"context"
	"errors"
	"log/slog"
)

// Phase is the touch-drag state.
type Phase int

const (
	Idle Phase = iota
	Dragging
)

func (p Phase) String() string {
	if p == Dragging {
		return "dragging"
	}
	return "idle"
}

// ErrAlreadyDragging is returned by Begin while a drag is in progress.
var ErrAlreadyDragging = errors.New("touch drag already in progress")

// TouchState is the ephemeral state of one touch drag.
type TouchState struct {
	PersonID string
	Origin   Point
	Current  Point

	// Card is the dragged card's bounding box at touch start.
	Card Rect
}

// TouchDrag is the state machine for devices without native drag events:
// Begin enters Dragging, Move updates the position, End or Cancel return to Idle.
type TouchDrag struct {
	state *TouchState
}

// Phase returns the current phase.
func (t *TouchDrag) Phase() Phase {
	if t.state == nil {
		return Idle
	}
	return Dragging
}

// State returns a copy of the drag state while dragging.
func (t *TouchDrag) State() (TouchState, bool) {
	if t.state == nil {
		return TouchState{}, false
	}
	return *t.state, true
}

// Begin captures the touched person, the touch point and the card bounds.
func (t *TouchDrag) Begin(personID string, at Point, card Rect) error {
	if t.state != nil {
		return ErrAlreadyDragging
	}
	t.state = &TouchState{PersonID: personID, Origin: at, Current: at, Card: card}
	return nil
}

// Move updates the current position. It reports whether the event belongs
// to a drag, in which case the caller suppresses scrolling.
func (t *TouchDrag) Move(to Point) bool {
	if t.state == nil {
		return false
	}
	t.state.Current = to
	return true
}

// End hit-tests the release point against zones and moves the person when a
// zone is hit. The drag is over afterwards whatever the outcome.
func (t *TouchDrag) End(ctx context.Context, at Point, zones *Zones, m Mover) error {
	st := t.state
	t.state = nil
	if st == nil {
		return nil
	}

	zone, ok := zones.HitTest(at)
	if !ok {
		slog.Debug("Touch drop outside any zone", "person_id", st.PersonID)
		return nil
	}
	group, err := ParseZone(zone)
	if err != nil {
		return err
	}
	return m.MovePerson(ctx, st.PersonID, group)
}

// Cancel abandons the drag.
func (t *TouchDrag) Cancel() {
	t.state = nil
}

// Overlay is where the floating card is drawn: the card's size, centered on
// the current touch point.
func (t *TouchDrag) Overlay() (Rect, bool) {
	if t.state == nil {
		return Rect{}, false
	}
	c := t.state.Card
	return Rect{
		X: t.state.Current.X - c.W/2,
		Y: t.state.Current.Y - c.H/2,
		W: c.W,
		H: c.H,
	}, true
}
