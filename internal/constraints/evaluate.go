// Package constraints computes capacity and mutual-exclusion violations.
//
// Everything here is a pure function of its inputs: no caching, no
// incremental state. Callers re-evaluate on every read that needs it.
package constraints

import (
	"fmt"
	"sort"

	"github.com/mmynk/classboard/internal/models"
)

// GroupStatus is the evaluation of one group.
type GroupStatus struct {
	Group        models.GroupID `json:"group"`
	Occupancy    int            `json:"occupancy"`
	Capacity     int            `json:"capacity"`
	OverCapacity bool           `json:"overCapacity"`
	HasViolation bool           `json:"hasViolation"`
}

// Full reports whether the group is exactly at capacity.
func (g GroupStatus) Full() bool {
	return g.Occupancy == g.Capacity
}

// Report is the result of evaluating a board.
type Report struct {
	Capacity   int           `json:"capacity"`
	Groups     []GroupStatus `json:"groups"`
	Unassigned int           `json:"unassigned"`

	// Violating lists every person flagged by at least one rule, sorted by id.
	Violating []string `json:"violating"`

	violating map[string]bool
}

// IsViolating reports whether the person is flagged by any rule.
func (r Report) IsViolating(personID string) bool {
	return r.violating[personID]
}

// Group returns the status of group g (1-based).
func (r Report) Group(g models.GroupID) (GroupStatus, bool) {
	i := int(g) - 1
	if i < 0 || i >= len(r.Groups) {
		return GroupStatus{}, false
	}
	return r.Groups[i], true
}

// Evaluate checks every group 1..settings.GroupCount against capacity and
// every rule. The unassigned holding area is exempt from both checks.
// Violations never block anything; they are only reported.
func Evaluate(people []models.Person, rules []models.Rule, settings models.Settings, capacity int) Report {
	report := Report{
		Capacity:  capacity,
		Groups:    make([]GroupStatus, settings.GroupCount),
		Violating: []string{},
		violating: make(map[string]bool),
	}

	members := make(map[models.GroupID][]string, settings.GroupCount)
	for _, p := range people {
		if !p.Group.IsAssigned() {
			report.Unassigned++
			continue
		}
		members[p.Group] = append(members[p.Group], p.ID)
	}

	for i := range report.Groups {
		g := models.GroupID(i + 1)
		occupancy := len(members[g])
		report.Groups[i] = GroupStatus{
			Group:        g,
			Occupancy:    occupancy,
			Capacity:     capacity,
			OverCapacity: occupancy > capacity,
		}
	}

	for _, rule := range rules {
		for i := range report.Groups {
			var inGroup []string
			for _, id := range members[report.Groups[i].Group] {
				if rule.Has(id) {
					inGroup = append(inGroup, id)
				}
			}
			if len(inGroup) > 1 {
				report.Groups[i].HasViolation = true
				for _, id := range inGroup {
					report.violating[id] = true
				}
			}
		}
	}

	for id := range report.violating {
		report.Violating = append(report.Violating, id)
	}
	sort.Strings(report.Violating)

	return report
}

// EvaluateState evaluates a whole AppState, looking up the capacity for its
// capacity class in table.
func EvaluateState(state models.AppState, table models.CapacityTable) (Report, error) {
	capacity, ok := table.Capacity(state.CapacityClass)
	if !ok {
		return Report{}, fmt.Errorf("unknown capacity class: %q", state.CapacityClass)
	}
	return Evaluate(state.People, state.Rules, state.Settings, capacity), nil
}
