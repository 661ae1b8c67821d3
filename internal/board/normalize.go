package board

import "github.com/mmynk/classboard/internal/models"

// Limits are the configured bounds a board enforces.
type Limits struct {
	MinGroups            int
	MaxGroups            int
	DefaultGroups        int
	DefaultCapacityClass models.CapacityClass
	Capacities           models.CapacityTable
}

// DefaultLimits mirrors the built-in configuration: 1..10 groups, three by default.
func DefaultLimits() Limits {
	return Limits{
		MinGroups:            1,
		MaxGroups:            10,
		DefaultGroups:        3,
		DefaultCapacityClass: models.CapacityElementaryMiddle,
		Capacities:           models.DefaultCapacities(),
	}
}

// ClampGroups bounds n to [MinGroups, MaxGroups].
func (l Limits) ClampGroups(n int) int {
	if n < l.MinGroups {
		return l.MinGroups
	}
	if n > l.MaxGroups {
		return l.MaxGroups
	}
	return n
}

// DefaultState is the state of a board nobody has touched yet.
func (l Limits) DefaultState() models.AppState {
	return models.AppState{
		Settings: models.Settings{
			CapacityClass: l.DefaultCapacityClass,
			GroupCount:    l.DefaultGroups,
		},
		People: []models.Person{},
		Labels: models.DefaultLabels(),
		Rules:  []models.Rule{},
	}
}

// Normalize repairs a state that came from outside the Mutation API (local
// storage, an imported file) so every invariant holds. Missing pieces take
// defaults; dangling references are dropped. Absent genders stay absent.
func Normalize(state models.AppState, limits Limits) models.AppState {
	out := state.Clone()

	if _, ok := limits.Capacities.Capacity(out.CapacityClass); !ok {
		out.CapacityClass = limits.DefaultCapacityClass
	}
	if out.GroupCount == 0 {
		out.GroupCount = limits.DefaultGroups
	}
	out.GroupCount = limits.ClampGroups(out.GroupCount)

	if out.Labels == nil {
		out.Labels = models.DefaultLabels()
	}
	labels := make(map[string]bool, len(out.Labels))
	for _, l := range out.Labels {
		labels[l.ID] = true
	}

	if out.People == nil {
		out.People = []models.Person{}
	}
	people := make(map[string]bool, len(out.People))
	for i := range out.People {
		p := &out.People[i]
		if !p.Gender.Valid() {
			p.Gender = models.GenderUnset
		}
		if int(p.Group) > out.GroupCount || p.Group < 0 {
			p.Group = models.Unassigned
		}
		p.LabelIDs = keepKnown(p.LabelIDs, labels)
		people[p.ID] = true
	}

	rules := make([]models.Rule, 0, len(out.Rules))
	for _, r := range out.Rules {
		r.MemberIDs = keepKnown(r.MemberIDs, people)
		if len(r.MemberIDs) >= 2 {
			rules = append(rules, r)
		}
	}
	out.Rules = rules

	return out
}

// keepKnown de-duplicates ids and drops those not in known. It always returns
// a non-nil slice so documents serialize with [] rather than null.
func keepKnown(ids []string, known map[string]bool) []string {
	out := make([]string, 0, len(ids))
	seen := make(map[string]bool, len(ids))
	for _, id := range ids {
		if known[id] && !seen[id] {
			out = append(out, id)
			seen[id] = true
		}
	}
	return out
}
