// Package analysis de-identifies a board and asks a language model to review it.
package analysis

// MaskRune replaces hidden characters of a name.
const MaskRune = '*'

// Mask hides a name before it leaves the process. One-character names are
// returned as is, two-character names keep the first, and longer names keep
// only the first and last characters.
func Mask(name string) string {
	r := []rune(name)
	switch {
	case len(r) <= 1:
		return name
	case len(r) == 2:
		return string([]rune{r[0], MaskRune})
	}
	out := make([]rune, len(r))
	out[0] = r[0]
	for i := 1; i < len(r)-1; i++ {
		out[i] = MaskRune
	}
	out[len(r)-1] = r[len(r)-1]
	return string(out)
}
