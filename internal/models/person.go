package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Gender is optional. The zero value means "not recorded" and is kept as such.
type Gender string

const (
	GenderUnset  Gender = ""
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

// Valid reports whether g is one of the known values (including unset).
func (g Gender) Valid() bool {
	switch g {
	case GenderUnset, GenderMale, GenderFemale:
		return true
	}
	return false
}

// UnmarshalJSON decodes unknown values as unset rather than failing the whole document.
func (g *Gender) UnmarshalJSON(data []byte) error {
	var s string
	if bytes.Equal(data, []byte("null")) {
		*g = GenderUnset
		return nil
	}
	if err := json.Unmarshal(data, &s); err != nil {
		*g = GenderUnset
		return nil
	}
	if v := Gender(s); v.Valid() {
		*g = v
	} else {
		*g = GenderUnset
	}
	return nil
}

// GroupID identifies a group by its 1-based number.
// Unassigned (0) is the holding area and is not a group.
type GroupID int

// Unassigned is the holding area for people not yet placed in a group.
const Unassigned GroupID = 0

// IsAssigned reports whether the id refers to a real group.
func (id GroupID) IsAssigned() bool {
	return id > 0
}

func (id GroupID) String() string {
	if id == Unassigned {
		return "unassigned"
	}
	return strconv.Itoa(int(id))
}

// MarshalJSON writes null for the holding area and a decimal string for groups,
// matching the layout browsers already hold under the local-storage key.
func (id GroupID) MarshalJSON() ([]byte, error) {
	if !id.IsAssigned() {
		return []byte("null"), nil
	}
	return json.Marshal(strconv.Itoa(int(id)))
}

// UnmarshalJSON accepts null, "", "unassigned", decimal strings and bare numbers.
func (id *GroupID) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		*id = Unassigned
		return nil
	}
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("invalid group id: %w", err)
	}
	switch v := raw.(type) {
	case string:
		parsed, err := ParseGroupID(v)
		if err != nil {
			return err
		}
		*id = parsed
	case float64:
		if v < 0 || v != float64(int(v)) {
			return fmt.Errorf("invalid group id: %v", v)
		}
		*id = GroupID(int(v))
	default:
		return fmt.Errorf("invalid group id: %s", string(data))
	}
	return nil
}

// ParseGroupID parses a group identifier as used by drop targets and stored
// documents. The empty string and "unassigned" both mean the holding area.
func ParseGroupID(s string) (GroupID, error) {
	s = strings.TrimSpace(s)
	if s == "" || s == "unassigned" {
		return Unassigned, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return Unassigned, fmt.Errorf("invalid group id: %q", s)
	}
	return GroupID(n), nil
}

// Person is someone to be placed into a group.
type Person struct {
	// ID is assigned at creation and never changes.
	ID string `json:"id"`

	// Name is the display name. Sorting uses locale-aware collation (see SortByName).
	Name string `json:"name"`

	// Gender is optional; GenderUnset is a valid state.
	Gender Gender `json:"gender,omitempty"`

	// LabelIDs is a set of label ids. Order carries no meaning.
	LabelIDs []string `json:"tagIds"`

	// Group is the person's current group, or Unassigned.
	Group GroupID `json:"assignedClassId"`
}

// HasLabel reports whether the person carries the given label.
func (p Person) HasLabel(labelID string) bool {
	for _, id := range p.LabelIDs {
		if id == labelID {
			return true
		}
	}
	return false
}

// Clone returns a copy that shares no slices with p.
func (p Person) Clone() Person {
	p.LabelIDs = cloneStrings(p.LabelIDs)
	return p
}

func cloneStrings(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}
