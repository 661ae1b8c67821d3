// Package calculator aggregates per-group figures for a roster.
package calculator

import "github.com/mmynk/classboard/internal/models"

// GroupTally holds the counts for one group.
type GroupTally struct {
	Group  models.GroupID
	Total  int
	Male   int
	Female int

	// Labels maps label id to the number of members carrying it.
	// Labels nobody in the group carries are absent.
	Labels map[string]int
}

// Label returns how many members carry labelID.
func (t GroupTally) Label(labelID string) int {
	return t.Labels[labelID]
}

// Unset is the number of members without a recorded gender.
func (t GroupTally) Unset() int {
	return t.Total - t.Male - t.Female
}

// Tally computes one GroupTally per group 1..groupCount, in group order.
// People in the holding area or in a group beyond groupCount are skipped.
func Tally(people []models.Person, groupCount int) []GroupTally {
	if groupCount < 0 {
		groupCount = 0
	}
	tallies := make([]GroupTally, groupCount)
	for i := range tallies {
		tallies[i] = GroupTally{Group: models.GroupID(i + 1), Labels: make(map[string]int)}
	}

	for _, p := range people {
		if !p.Group.IsAssigned() || int(p.Group) > groupCount {
			continue
		}
		t := &tallies[p.Group-1]
		t.Total++
		switch p.Gender {
		case models.GenderMale:
			t.Male++
		case models.GenderFemale:
			t.Female++
		}
		seen := make(map[string]bool, len(p.LabelIDs))
		for _, id := range p.LabelIDs {
			if !seen[id] {
				t.Labels[id]++
				seen[id] = true
			}
		}
	}
	return tallies
}

// Spread is the difference between the largest and smallest group totals.
// It is zero when there are no groups.
func Spread(tallies []GroupTally) int {
	if len(tallies) == 0 {
		return 0
	}
	lo, hi := tallies[0].Total, tallies[0].Total
	for _, t := range tallies[1:] {
		lo = min(lo, t.Total)
		hi = max(hi, t.Total)
	}
	return hi - lo
}
