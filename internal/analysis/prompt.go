package analysis

import (
	"fmt"
	"strings"

	"github.com/mmynk/classboard/internal/models"
)

const promptHeader = `You are an expert in assigning students to special-education classes.
Analyze the current class assignment and reply with a structured JSON report.
`

const promptGuide = `
**How to read the labels (important):**
1. Load-reducing: "Frequent absence", "Can assist teacher" lower the teaching load.
2. Load-increasing: "Aggressive behavior", "Toileting support", "Walking support", "Wheelchair", "Sensitive parent", "Pureed diet" and similar raise the teaching load.
3. Criteria:
   - load-increasing labels should not pile up in one class (riskScore)
   - genders and dispositions should be spread evenly (balanceScore)
   - suggest placements for any unassigned students

**Required output:**
1. riskScore: 0 to 100. Higher when aggressive or high-support students are concentrated.
2. balanceScore: 0 to 100. Higher when gender ratio, headcount and dispositions are well mixed.
3. recommendations: concrete moves or cautions.
`

// Prompt renders in as model instructions.
func Prompt(in Input) string {
	var b strings.Builder
	b.WriteString(promptHeader)

	b.WriteString("\n**Settings:**\n")
	fmt.Fprintf(&b, "- School level: %s\n", levelName(in.CapacityClass, in.Capacity))
	fmt.Fprintf(&b, "- Number of classes: %d\n", in.GroupCount)
	fmt.Fprintf(&b, "- Capacity per class: %d\n", in.Capacity)
	fmt.Fprintf(&b, "- Size gap between largest and smallest class: %d\n", in.SizeSpread)

	b.WriteString(promptGuide)

	b.WriteString("\n**Current assignment:**\n")
	for _, g := range in.Groups {
		fmt.Fprintf(&b, "[Class %d] (%d total - M:%d / F:%d)\n", g.Number, len(g.Members), g.Male, g.Female)
		members := make([]string, len(g.Members))
		for i, m := range g.Members {
			members[i] = describe(m)
		}
		fmt.Fprintf(&b, "Students: %s\n", strings.Join(members, " / "))
	}

	b.WriteString("\n**Unassigned students:**\n")
	if len(in.Unassigned) == 0 {
		b.WriteString("none\n")
	} else {
		names := make([]string, len(in.Unassigned))
		for i, m := range in.Unassigned {
			names[i] = m.Name
			if g := genderCode(m.Gender); g != "" {
				names[i] += "(" + g + ")"
			}
		}
		b.WriteString(strings.Join(names, ", ") + "\n")
	}

	b.WriteString("\n**Separation rules (must not share a class):**\n")
	if len(in.Rules) == 0 {
		b.WriteString("none\n")
	}
	for i, names := range in.Rules {
		fmt.Fprintf(&b, "%d. %s\n", i+1, strings.Join(names, ", "))
	}
	return b.String()
}

func levelName(class models.CapacityClass, capacity int) string {
	switch class {
	case models.CapacityElementaryMiddle:
		return fmt.Sprintf("elementary/middle school (capacity %d)", capacity)
	case models.CapacityHigh:
		return fmt.Sprintf("high school (capacity %d)", capacity)
	}
	return fmt.Sprintf("%s (capacity %d)", class, capacity)
}

func genderCode(g models.Gender) string {
	switch g {
	case models.GenderMale:
		return "M"
	case models.GenderFemale:
		return "F"
	}
	return ""
}

func describe(m Member) string {
	var info []string
	if g := genderCode(m.Gender); g != "" {
		info = append(info, g)
	}
	if len(m.Labels) > 0 {
		info = append(info, strings.Join(m.Labels, ", "))
	}
	return m.Name + "(" + strings.Join(info, ", ") + ")"
}
