package analysis

import (
	"github.com/mmynk/classboard/internal/calculator"
	"github.com/mmynk/classboard/internal/models"
)

// Member is a de-identified person.
type Member struct {
	Name   string        `json:"name"`
	Gender models.Gender `json:"gender,omitempty"`
	Labels []string      `json:"labels,omitempty"`
}

// Group summarizes one group for the prompt.
type Group struct {
	Number  int      `json:"number"`
	Male    int      `json:"male"`
	Female  int      `json:"female"`
	Members []Member `json:"members"`
}

// Input is everything sent to an analyzer. It never carries real names.
type Input struct {
	CapacityClass models.CapacityClass `json:"capacityClass"`
	GroupCount    int                  `json:"groupCount"`
	Capacity      int                  `json:"capacity"`
	Groups        []Group              `json:"groups"`
	Unassigned    []Member             `json:"unassigned"`
	Rules         [][]string           `json:"rules"`

	// SizeSpread is the gap between the largest and smallest group.
	SizeSpread int `json:"sizeSpread"`
}

// BuildInput copies state into a masked Input. People keep their state order.
func BuildInput(state models.AppState, capacity int) Input {
	in := Input{
		CapacityClass: state.CapacityClass,
		GroupCount:    state.GroupCount,
		Capacity:      capacity,
		Groups:        make([]Group, 0, state.GroupCount),
		Unassigned:    []Member{},
		Rules:         make([][]string, 0, len(state.Rules)),
	}

	tallies := calculator.Tally(state.People, state.GroupCount)
	for _, t := range tallies {
		group := Group{Number: int(t.Group), Male: t.Male, Female: t.Female, Members: []Member{}}
		for _, p := range state.InGroup(t.Group) {
			group.Members = append(group.Members, member(state, p))
		}
		in.Groups = append(in.Groups, group)
	}
	in.SizeSpread = calculator.Spread(tallies)

	for _, p := range state.People {
		if !p.Group.IsAssigned() {
			in.Unassigned = append(in.Unassigned, Member{Name: Mask(p.Name), Gender: p.Gender})
		}
	}

	for _, r := range state.Rules {
		names := make([]string, 0, len(r.MemberIDs))
		for _, id := range r.MemberIDs {
			if p, ok := state.Person(id); ok {
				names = append(names, Mask(p.Name))
			}
		}
		in.Rules = append(in.Rules, names)
	}
	return in
}

func member(state models.AppState, p models.Person) Member {
	return Member{
		Name:   Mask(p.Name),
		Gender: p.Gender,
		Labels: state.LabelNames(p),
	}
}
