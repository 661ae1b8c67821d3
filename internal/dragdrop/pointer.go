package dragdrop

import (
	"context"
)

// PointerDrag follows a native drag-and-drop gesture. The dragged person's
// id is the only payload.
type PointerDrag struct {
	personID string
}

// Start attaches personID to the gesture.
func (d *PointerDrag) Start(personID string) {
	d.personID = personID
}

// Over reports whether a drop on the hovered target would be accepted.
func (d *PointerDrag) Over() bool {
	return d.personID != ""
}

// Drop moves the dragged person to zone and ends the gesture. A drop with
// no payload does nothing.
func (d *PointerDrag) Drop(ctx context.Context, m Mover, zone string) error {
	id := d.personID
	d.personID = ""
	if id == "" {
		return nil
	}
	group, err := ParseZone(zone)
	if err != nil {
		return err
	}
	return m.MovePerson(ctx, id, group)
}

// Cancel ends the gesture without a move.
func (d *PointerDrag) Cancel() {
	d.personID = ""
}
