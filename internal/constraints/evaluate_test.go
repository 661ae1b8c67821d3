package constraints

import (
	"fmt"
	"testing"

	"github.com/mmynk/classboard/internal/models"
)

func placed(id string, group models.GroupID) models.Person {
	return models.Person{ID: id, Name: id, LabelIDs: []string{}, Group: group}
}

func TestCapacity(t *testing.T) {
	const capacity = 6
	settings := models.Settings{CapacityClass: models.CapacityElementaryMiddle, GroupCount: 3}

	for occupancy := 0; occupancy <= 2*capacity; occupancy++ {
		var people []models.Person
		for i := 0; i < occupancy; i++ {
			people = append(people, placed(fmt.Sprintf("p%d", i), 2))
		}

		report := Evaluate(people, nil, settings, capacity)
		g, ok := report.Group(2)
		if !ok {
			t.Fatal("group 2 missing from report")
		}
		if g.Occupancy != occupancy {
			t.Errorf("occupancy = %d, want %d", g.Occupancy, occupancy)
		}
		if g.OverCapacity != (occupancy > capacity) {
			t.Errorf("occupancy %d: overCapacity = %v, want %v", occupancy, g.OverCapacity, occupancy > capacity)
		}
	}
}

func TestUnassignedIsExempt(t *testing.T) {
	settings := models.Settings{GroupCount: 1}
	var people []models.Person
	for i := 0; i < 10; i++ {
		people = append(people, placed(fmt.Sprintf("p%d", i), models.Unassigned))
	}
	rules := []models.Rule{{ID: "r1", MemberIDs: []string{"p0", "p1"}}}

	report := Evaluate(people, rules, settings, 2)

	if report.Unassigned != 10 {
		t.Errorf("unassigned = %d, want 10", report.Unassigned)
	}
	if len(report.Violating) != 0 {
		t.Errorf("unassigned people must not be flagged, got %v", report.Violating)
	}
	if g, _ := report.Group(1); g.OverCapacity || g.HasViolation {
		t.Errorf("empty group flagged: %+v", g)
	}
}

func TestMutualExclusion(t *testing.T) {
	settings := models.Settings{GroupCount: 3}

	tests := []struct {
		name         string
		people       []models.Person
		rules        []models.Rule
		wantFlagged  []string
		wantGroupBad map[models.GroupID]bool
	}{
		{
			name:         "all three members together",
			people:       []models.Person{placed("A", 1), placed("B", 1), placed("C", 1)},
			rules:        []models.Rule{{ID: "r", MemberIDs: []string{"A", "B", "C"}}},
			wantFlagged:  []string{"A", "B", "C"},
			wantGroupBad: map[models.GroupID]bool{1: true},
		},
		{
			name:         "one member moved away",
			people:       []models.Person{placed("A", 1), placed("B", 1), placed("C", 2)},
			rules:        []models.Rule{{ID: "r", MemberIDs: []string{"A", "B", "C"}}},
			wantFlagged:  []string{"A", "B"},
			wantGroupBad: map[models.GroupID]bool{1: true},
		},
		{
			name:        "members spread out",
			people:      []models.Person{placed("A", 1), placed("B", 2), placed("C", 3)},
			rules:       []models.Rule{{ID: "r", MemberIDs: []string{"A", "B", "C"}}},
			wantFlagged: nil,
		},
		{
			name:   "person flagged by two rules",
			people: []models.Person{placed("A", 1), placed("B", 1), placed("C", 2), placed("D", 2)},
			rules: []models.Rule{
				{ID: "r1", MemberIDs: []string{"A", "B"}},
				{ID: "r2", MemberIDs: []string{"C", "D", "A"}},
			},
			wantFlagged:  []string{"A", "B", "C", "D"},
			wantGroupBad: map[models.GroupID]bool{1: true, 2: true},
		},
		{
			name:        "non-members sharing a group are fine",
			people:      []models.Person{placed("A", 1), placed("X", 1)},
			rules:       []models.Rule{{ID: "r", MemberIDs: []string{"A", "B"}}},
			wantFlagged: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report := Evaluate(tt.people, tt.rules, settings, 6)

			if len(report.Violating) != len(tt.wantFlagged) {
				t.Fatalf("violating = %v, want %v", report.Violating, tt.wantFlagged)
			}
			for i, id := range tt.wantFlagged {
				if report.Violating[i] != id {
					t.Errorf("violating[%d] = %s, want %s", i, report.Violating[i], id)
				}
				if !report.IsViolating(id) {
					t.Errorf("IsViolating(%s) = false", id)
				}
			}
			for _, g := range report.Groups {
				if g.HasViolation != tt.wantGroupBad[g.Group] {
					t.Errorf("group %v hasViolation = %v, want %v", g.Group, g.HasViolation, tt.wantGroupBad[g.Group])
				}
			}
		})
	}
}

func TestEvaluateState(t *testing.T) {
	state := models.AppState{
		Settings: models.Settings{CapacityClass: models.CapacityHigh, GroupCount: 2},
		People:   []models.Person{placed("A", 1)},
	}

	report, err := EvaluateState(state, models.DefaultCapacities())
	if err != nil {
		t.Fatalf("EvaluateState failed: %v", err)
	}
	if report.Capacity != 7 {
		t.Errorf("capacity = %d, want 7", report.Capacity)
	}
	if len(report.Groups) != 2 {
		t.Errorf("groups = %d, want 2", len(report.Groups))
	}

	state.CapacityClass = "MIDDLE_EARTH"
	if _, err := EvaluateState(state, models.DefaultCapacities()); err == nil {
		t.Error("expected error for unknown capacity class")
	}
}

func TestEvaluateIsDeterministic(t *testing.T) {
	people := []models.Person{placed("B", 1), placed("A", 1), placed("C", 1)}
	rules := []models.Rule{{ID: "r", MemberIDs: []string{"C", "B", "A"}}}
	settings := models.Settings{GroupCount: 1}

	first := Evaluate(people, rules, settings, 6)
	for i := 0; i < 20; i++ {
		again := Evaluate(people, rules, settings, 6)
		if fmt.Sprint(again.Violating) != fmt.Sprint(first.Violating) {
			t.Fatalf("run %d: %v != %v", i, again.Violating, first.Violating)
		}
	}
}
