package ports

import "golang.org/x/image/font"

// FontResolver supplies measurable font faces.
type FontResolver interface {
	// Face returns a face for the spec. Unknown families resolve to a
	// generic sans-serif at the same weight and size; Face never fails.
	Face(spec FontSpec) font.Face

	// Families lists the families that can be resolved without fallback.
	Families() []string
}
