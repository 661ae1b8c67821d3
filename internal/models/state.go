package models

// AppState is the unit of undo/redo and persistence: settings plus every
// person, label and rule. Nothing else belongs in it.
type AppState struct {
	Settings

	People []Person `json:"students"`
	Labels []Label  `json:"tags"`
	Rules  []Rule   `json:"separationRules"`
}

// Clone returns a deep copy. History snapshots rely on clones never aliasing
// the live state.
func (s AppState) Clone() AppState {
	out := AppState{Settings: s.Settings}
	if s.People != nil {
		out.People = make([]Person, len(s.People))
		for i, p := range s.People {
			out.People[i] = p.Clone()
		}
	}
	if s.Labels != nil {
		out.Labels = make([]Label, len(s.Labels))
		copy(out.Labels, s.Labels)
	}
	if s.Rules != nil {
		out.Rules = make([]Rule, len(s.Rules))
		for i, r := range s.Rules {
			out.Rules[i] = r.Clone()
		}
	}
	return out
}

// Person returns the person with the given id.
func (s AppState) Person(id string) (Person, bool) {
	for _, p := range s.People {
		if p.ID == id {
			return p, true
		}
	}
	return Person{}, false
}

// Label returns the label with the given id.
func (s AppState) Label(id string) (Label, bool) {
	for _, l := range s.Labels {
		if l.ID == id {
			return l, true
		}
	}
	return Label{}, false
}

// InGroup returns the people currently placed in group, in stored order.
func (s AppState) InGroup(group GroupID) []Person {
	var out []Person
	for _, p := range s.People {
		if p.Group == group {
			out = append(out, p)
		}
	}
	return out
}

// LabelNames resolves a person's label ids to display names, skipping ids
// that no longer exist.
func (s AppState) LabelNames(p Person) []string {
	var names []string
	for _, id := range p.LabelIDs {
		if l, ok := s.Label(id); ok {
			names = append(names, l.Label)
		}
	}
	return names
}
