package models

// Rule is a mutual-exclusion constraint: no two members may share a group.
// A rule always has at least two members; one that drops below is deleted.
type Rule struct {
	ID        string   `json:"id"`
	MemberIDs []string `json:"studentIds"`
}

// Has reports whether personID is a member of the rule.
func (r Rule) Has(personID string) bool {
	for _, id := range r.MemberIDs {
		if id == personID {
			return true
		}
	}
	return false
}

// Clone returns a copy that shares no slices with r.
func (r Rule) Clone() Rule {
	r.MemberIDs = cloneStrings(r.MemberIDs)
	return r
}
