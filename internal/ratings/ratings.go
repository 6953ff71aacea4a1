// Package ratings encodes self-assessed climbing attribute ratings.
//
// Two representations exist for the same information. The current one stores
// every attribute with a 1-5 rating ("Power: 4, Endurance: 2"). The legacy
// one stores two comma-joined name lists, perceived strengths and perceived
// weaknesses. Resolve picks one of them once, at load time.
package ratings

import (
	"fmt"
	"strconv"
	"strings"
)

// Rating bounds.
const (
	MinRating     = 1
	MaxRating     = 5
	DefaultRating = 3

	// StrengthRating and WeaknessRating are what legacy strengths and
	// weaknesses map to, and the thresholds used to derive them back.
	StrengthRating = 4
	WeaknessRating = 2
)

const (
	entrySep = ", "
	valueSep = ": "
)

// Attributes is the fixed, ordered attribute catalog.
var Attributes = []string{
	"Power",
	"Endurance",
	"Technique",
	"Finger Strength",
	"Power Endurance",
	"Flexibility",
	"Core Strength",
	"Footwork",
	"Mental Game",
	"Route Reading",
}

// RatedAttribute is one attribute with its self-assessed rating.
type RatedAttribute struct {
	Name   string
	Rating int
}

// Defaults returns every catalog attribute at DefaultRating.
func Defaults() []RatedAttribute {
	attrs := make([]RatedAttribute, len(Attributes))
	for i, name := range Attributes {
		attrs[i] = RatedAttribute{Name: name, Rating: DefaultRating}
	}
	return attrs
}

// IsKnown reports whether name is in the attribute catalog.
func IsKnown(name string) bool {
	for _, a := range Attributes {
		if a == name {
			return true
		}
	}
	return false
}

// Clamp bounds r to [MinRating, MaxRating].
func Clamp(r int) int {
	if r < MinRating {
		return MinRating
	}
	if r > MaxRating {
		return MaxRating
	}
	return r
}

// Set assigns a clamped rating to the named attribute. Unknown names are ignored.
func Set(attrs []RatedAttribute, name string, rating int) {
	for i := range attrs {
		if attrs[i].Name == name {
			attrs[i].Rating = Clamp(rating)
			return
		}
	}
}

// Serialize renders attrs as "<name>: <rating>" entries joined by ", ",
// preserving the given order.
func Serialize(attrs []RatedAttribute) string {
	parts := make([]string, len(attrs))
	for i, a := range attrs {
		parts[i] = fmt.Sprintf("%s%s%d", a.Name, valueSep, Clamp(a.Rating))
	}
	return strings.Join(parts, entrySep)
}

// Strengths returns the ", "-joined names rated StrengthRating or higher.
func Strengths(attrs []RatedAttribute) string {
	var names []string
	for _, a := range attrs {
		if a.Rating >= StrengthRating {
			names = append(names, a.Name)
		}
	}
	return strings.Join(names, entrySep)
}

// Weaknesses returns the ", "-joined names rated WeaknessRating or lower.
func Weaknesses(attrs []RatedAttribute) string {
	var names []string
	for _, a := range attrs {
		if a.Rating <= WeaknessRating {
			names = append(names, a.Name)
		}
	}
	return strings.Join(names, entrySep)
}

// Parse reads a serialized rating string into a name→rating mapping. Entries
// that are not of the form "<name>: <integer>" are skipped and returned in
// skipped; parsing never fails. Parsed values are clamped.
func Parse(s string) (parsed map[string]int, skipped []string) {
	parsed = make(map[string]int)
	if s == "" {
		return parsed, nil
	}
	for _, entry := range strings.Split(s, entrySep) {
		name, value, ok := strings.Cut(entry, valueSep)
		name = strings.TrimSpace(name)
		if !ok || name == "" {
			skipped = append(skipped, entry)
			continue
		}
		n, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil {
			skipped = append(skipped, entry)
			continue
		}
		parsed[name] = Clamp(n)
	}
	return parsed, skipped
}
