// Package dragdrop turns pointer and touch gestures into board moves.
//
// Gestures carry only ephemeral interaction state. The single durable effect
// of a completed gesture is one MovePerson call on the board.
package dragdrop

import (
	"context"
	"fmt"

	"github.com/mmynk/classboard/internal/models"
)

// UnassignedZone is the drop-zone id of the holding area.
const UnassignedZone = "unassigned"

// Mover is the board operation a drop resolves to.
type Mover interface {
	MovePerson(ctx context.Context, id string, group models.GroupID) error
}

// ParseZone maps a drop-zone id to a group. Both "" and UnassignedZone mean
// the holding area; anything else must be a group number.
func ParseZone(zone string) (models.GroupID, error) {
	if zone == UnassignedZone {
		return models.Unassigned, nil
	}
	g, err := models.ParseGroupID(zone)
	if err != nil {
		return models.Unassigned, fmt.Errorf("invalid drop zone %q: %w", zone, err)
	}
	return g, nil
}

// ZoneID is the inverse of ParseZone.
func ZoneID(g models.GroupID) string {
	if !g.IsAssigned() {
		return UnassignedZone
	}
	return g.String()
}

// Point is a position in client coordinates.
type Point struct {
	X, Y float64
}

// Rect is an axis-aligned box with its origin at the top-left corner.
type Rect struct {
	X, Y, W, H float64
}

// Contains reports whether p lies inside r, edges included.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X <= r.X+r.W && p.Y >= r.Y && p.Y <= r.Y+r.H
}

func (r Rect) area() float64 { return r.W * r.H }

// Zones is a registry of drop-zone rectangles.
type Zones struct {
	order []string
	rects map[string]Rect
}

// NewZones returns an empty registry.
func NewZones() *Zones {
	return &Zones{rects: make(map[string]Rect)}
}

// Register adds or moves a zone. Re-registering keeps the zone's original order.
func (z *Zones) Register(id string, r Rect) {
	if _, ok := z.rects[id]; !ok {
		z.order = append(z.order, id)
	}
	z.rects[id] = r
}

// Unregister removes a zone.
func (z *Zones) Unregister(id string) {
	if _, ok := z.rects[id]; !ok {
		return
	}
	delete(z.rects, id)
	for i, o := range z.order {
		if o == id {
			z.order = append(z.order[:i], z.order[i+1:]...)
			break
		}
	}
}

// HitTest returns the zone containing p. Nested zones resolve to the
// innermost (smallest) one; equal sizes resolve to the latest registered.
func (z *Zones) HitTest(p Point) (string, bool) {
	var (
		best  string
		found bool
		area  float64
	)
	for _, id := range z.order {
		r := z.rects[id]
		if !r.Contains(p) {
			continue
		}
		if !found || r.area() <= area {
			best, area, found = id, r.area(), true
		}
	}
	return best, found
}
