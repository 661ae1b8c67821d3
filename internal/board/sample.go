package board

import (
	"fmt"

	"github.com/mmynk/classboard/internal/models"
)

var samplePeople = []struct {
	name   string
	gender models.Gender
	labels []string
}{
	{"Liam Carter", models.GenderMale, []string{"t3"}},
	{"Sofia Bennett", models.GenderFemale, nil},
	{"Noah Patel", models.GenderMale, []string{"t2", "t9"}},
	{"Ava Morales", models.GenderFemale, []string{"t5"}},
	{"Ethan Brooks", models.GenderMale, []string{"t4"}},
	{"Mia Sullivan", models.GenderFemale, []string{"t6"}},
	{"Lucas Reed", models.GenderMale, nil},
	{"Chloe Nguyen", models.GenderFemale, []string{"t1", "t8"}},
	{"Owen Fischer", models.GenderMale, []string{"t3", "t10"}},
	{"Grace Kim", models.GenderFemale, nil},
	{"Henry Walsh", models.GenderMale, []string{"t5"}},
	{"Zoe Ramirez", models.GenderFemale, []string{"t7"}},
	{"Jack Dawson", models.GenderMale, nil},
	{"Lily Foster", models.GenderFemale, []string{"t4"}},
	{"Mason Clarke", models.GenderMale, []string{"t3"}},
	{"Ella Hughes", models.GenderFemale, []string{"t9"}},
	{"Leo Turner", models.GenderMale, []string{"t2"}},
	{"Ruby Sanders", models.GenderFemale, []string{"t6"}},
	{"Caleb Price", models.GenderMale, nil},
	{"Nora Jensen", models.GenderFemale, []string{"t5"}},
}

// SampleState builds a demo board: twenty unassigned people over the default
// labels, with default settings and no rules.
func SampleState(limits Limits, newID func() string) models.AppState {
	state := limits.DefaultState()
	for i, s := range samplePeople {
		id := newID()
		if id == "" {
			id = fmt.Sprintf("sample-%d", i)
		}
		labels := make([]string, len(s.labels))
		copy(labels, s.labels)
		state.People = append(state.People, models.Person{
			ID:       id,
			Name:     s.name,
			Gender:   s.gender,
			LabelIDs: labels,
			Group:    models.Unassigned,
		})
	}
	return state
}
