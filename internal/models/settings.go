package models

// CapacityClass selects the per-group capacity ceiling.
type CapacityClass string

const (
	CapacityElementaryMiddle CapacityClass = "ELEMENTARY_MIDDLE"
	CapacityHigh             CapacityClass = "HIGH"
)

// CapacityTable maps each capacity class to its per-group ceiling.
type CapacityTable map[CapacityClass]int

// DefaultCapacities returns the two built-in tiers.
func DefaultCapacities() CapacityTable {
	return CapacityTable{
		CapacityElementaryMiddle: 6,
		CapacityHigh:             7,
	}
}

// Capacity returns the ceiling for class and whether the class is known.
func (t CapacityTable) Capacity(class CapacityClass) (int, bool) {
	c, ok := t[class]
	return c, ok
}

// Settings are the global board parameters.
type Settings struct {
	CapacityClass CapacityClass `json:"schoolLevel"`
	GroupCount    int           `json:"classCount"`
}
