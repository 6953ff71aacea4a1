package profile

import "strings"

// Option is a single selectable choice in a multi-select field.
type Option struct {
	Name string
}

// Catalog is the fixed, ordered set of options for one multi-select field.
// Insertion order is display order.
type Catalog []Option

// Names returns the option names in catalog order.
func (c Catalog) Names() []string {
	names := make([]string, len(c))
	for i, o := range c {
		names[i] = o.Name
	}
	return names
}

// Contains reports whether the catalog has an option with exactly this name.
func (c Catalog) Contains(name string) bool {
	for _, o := range c {
		if o.Name == name {
			return true
		}
	}
	return false
}

func catalogOf(names ...string) Catalog {
	c := make(Catalog, len(names))
	for i, n := range names {
		c[i] = Option{Name: n}
	}
	return c
}

// ClimbingStyles is the catalog for preferred climbing style.
var ClimbingStyles = catalogOf(
	"Bouldering",
	"Sport Climbing",
	"Lead Climbing",
	"Top Rope",
	"Trad Climbing",
	"Multi-pitch",
	"Alpine",
	"Ice Climbing",
)

// TrainingFacilities is the catalog for available training facilities.
var TrainingFacilities = catalogOf(
	"Commercial Gym",
	"Home Wall",
	"Hangboard",
	"Campus Board",
	"Board (Moon/Kilter/Tension)",
	"Weights",
	"Pull-up Bar",
	"Outdoor Crag",
)

// FitnessLevels is the catalog for general fitness.
var FitnessLevels = catalogOf(
	"Running",
	"Cycling",
	"Swimming",
	"Yoga",
	"Weightlifting",
	"HIIT",
	"Hiking",
	"Mobility Work",
)

// Selection is a set of chosen option names. It carries no order; use Names
// to get a catalog-ordered view.
type Selection map[string]struct{}

// NewSelection returns a selection holding names.
func NewSelection(names ...string) Selection {
	s := make(Selection, len(names))
	for _, n := range names {
		s[n] = struct{}{}
	}
	return s
}

// Has reports whether name is selected.
func (s Selection) Has(name string) bool {
	_, ok := s[name]
	return ok
}

// Toggle flips the selection state of name.
func (s Selection) Toggle(name string) {
	if s.Has(name) {
		delete(s, name)
		return
	}
	s[name] = struct{}{}
}

// Names returns the selected names in catalog order. Selected names missing
// from the catalog are omitted.
func (s Selection) Names(c Catalog) []string {
	var out []string
	for _, o := range c {
		if s.Has(o.Name) {
			out = append(out, o.Name)
		}
	}
	return out
}

// Join renders the selection as a ", "-joined list in catalog order.
func (s Selection) Join(c Catalog) string {
	return strings.Join(s.Names(c), ", ")
}

// SelectFromList parses a comma-joined list and selects every catalog option
// whose name appears in it. Matching is exact and case-sensitive; tokens not
// in the catalog are dropped.
func SelectFromList(c Catalog, list string) Selection {
	tokens := NewSelection(SplitList(list)...)
	sel := make(Selection)
	for _, o := range c {
		if tokens.Has(o.Name) {
			sel[o.Name] = struct{}{}
		}
	}
	return sel
}

// SplitList splits a comma-joined list, trimming whitespace around each token
// and dropping empty tokens.
func SplitList(list string) []string {
	if strings.TrimSpace(list) == "" {
		return nil
	}
	parts := strings.Split(list, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			out = append(out, t)
		}
	}
	return out
}
