package models

// Color is a background/foreground token pair drawn from Palette.
type Color struct {
	Bg   string `json:"colorBg"`
	Text string `json:"colorText"`
}

// Label is a user-defined tag that can be attached to people.
type Label struct {
	ID string `json:"id"`

	// Label is the display text. It is unique (case-sensitive) among current labels.
	Label string `json:"label"`

	Color
}

// Palette is the fixed set of colors new labels are drawn from.
var Palette = []Color{
	{Bg: "bg-slate-100", Text: "text-slate-800"},
	{Bg: "bg-gray-100", Text: "text-gray-800"},
	{Bg: "bg-zinc-100", Text: "text-zinc-800"},
	{Bg: "bg-neutral-100", Text: "text-neutral-800"},
	{Bg: "bg-stone-100", Text: "text-stone-800"},
	{Bg: "bg-red-100", Text: "text-red-800"},
	{Bg: "bg-orange-100", Text: "text-orange-800"},
	{Bg: "bg-amber-100", Text: "text-amber-800"},
	{Bg: "bg-yellow-100", Text: "text-yellow-800"},
	{Bg: "bg-lime-100", Text: "text-lime-800"},
	{Bg: "bg-green-100", Text: "text-green-800"},
	{Bg: "bg-emerald-100", Text: "text-emerald-800"},
	{Bg: "bg-teal-100", Text: "text-teal-800"},
	{Bg: "bg-cyan-100", Text: "text-cyan-800"},
	{Bg: "bg-sky-100", Text: "text-sky-800"},
	{Bg: "bg-blue-100", Text: "text-blue-800"},
	{Bg: "bg-indigo-100", Text: "text-indigo-800"},
	{Bg: "bg-violet-100", Text: "text-violet-800"},
	{Bg: "bg-purple-100", Text: "text-purple-800"},
	{Bg: "bg-fuchsia-100", Text: "text-fuchsia-800"},
	{Bg: "bg-pink-100", Text: "text-pink-800"},
	{Bg: "bg-rose-100", Text: "text-rose-800"},
}

// DefaultLabels returns the labels a fresh board starts with.
// The ids are fixed so sample data and older saved documents keep resolving.
func DefaultLabels() []Label {
	return []Label{
		{ID: "t3", Label: "Aggressive behavior", Color: Color{Bg: "bg-red-100", Text: "text-red-800"}},
		{ID: "t2", Label: "Wheelchair", Color: Color{Bg: "bg-blue-100", Text: "text-blue-800"}},
		{ID: "t1", Label: "Diapering", Color: Color{Bg: "bg-orange-100", Text: "text-orange-800"}},
		{ID: "t8", Label: "Pureed diet", Color: Color{Bg: "bg-yellow-100", Text: "text-yellow-800"}},
		{ID: "t9", Label: "Toileting support", Color: Color{Bg: "bg-indigo-100", Text: "text-indigo-800"}},
		{ID: "t10", Label: "Walking support", Color: Color{Bg: "bg-teal-100", Text: "text-teal-800"}},
		{ID: "t5", Label: "Can assist teacher", Color: Color{Bg: "bg-green-100", Text: "text-green-800"}},
		{ID: "t6", Label: "Sensitive parent", Color: Color{Bg: "bg-purple-100", Text: "text-purple-800"}},
		{ID: "t4", Label: "Frequent absence", Color: Color{Bg: "bg-gray-100", Text: "text-gray-800"}},
		{ID: "t7", Label: "Bed use", Color: Color{Bg: "bg-pink-100", Text: "text-pink-800"}},
	}
}
