package models

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// SortByName sorts people in place by name using the collation rules of
// locale (a BCP 47 tag such as "en" or "ko"). Unknown tags fall back to the
// root collation. Ties keep their stored order.
func SortByName(people []Person, locale string) {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.Und
	}
	c := collate.New(tag)
	sort.SliceStable(people, func(i, j int) bool {
		return c.CompareString(people[i].Name, people[j].Name) < 0
	})
}
