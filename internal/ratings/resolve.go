package ratings

import "strings"

// Source identifies which stored representation a Resolution came from.
type Source int

const (
	SourceNone    Source = iota // nothing stored; ratings stay as they are
	SourceNumeric               // attribute_ratings string
	SourceLegacy                // perceived strengths/weaknesses lists
)

func (s Source) String() string {
	switch s {
	case SourceNumeric:
		return "numeric"
	case SourceLegacy:
		return "legacy"
	default:
		return "none"
	}
}

// Resolution is the canonical rating mapping derived from whichever stored
// representation takes precedence.
type Resolution struct {
	Source  Source
	Ratings map[string]int

	// Skipped holds malformed numeric entries dropped while parsing.
	Skipped []string
}

// Resolve applies the precedence rule between the two stored
// representations:
//
//   - a non-empty attributeRatings wins, and only its parsed entries apply;
//   - otherwise, if either legacy list is non-empty, every catalog attribute
//     is assigned: StrengthRating if listed as a strength, WeaknessRating if
//     listed as a weakness, DefaultRating otherwise;
//   - otherwise nothing applies.
//
// A name listed in both legacy lists counts as a strength.
func Resolve(attributeRatings, strengths, weaknesses string) Resolution {
	if attributeRatings != "" {
		parsed, skipped := Parse(attributeRatings)
		return Resolution{Source: SourceNumeric, Ratings: parsed, Skipped: skipped}
	}

	if strengths == "" && weaknesses == "" {
		return Resolution{Source: SourceNone, Ratings: map[string]int{}}
	}

	strong := listSet(strengths)
	weak := listSet(weaknesses)
	mapped := make(map[string]int, len(Attributes))
	for _, name := range Attributes {
		switch {
		case strong[name]:
			mapped[name] = StrengthRating
		case weak[name]:
			mapped[name] = WeaknessRating
		default:
			mapped[name] = DefaultRating
		}
	}
	return Resolution{Source: SourceLegacy, Ratings: mapped}
}

// Apply writes the resolved ratings onto attrs in place. Attributes missing
// from the mapping keep their current rating.
func (r Resolution) Apply(attrs []RatedAttribute) {
	for i := range attrs {
		if v, ok := r.Ratings[attrs[i].Name]; ok {
			attrs[i].Rating = Clamp(v)
		}
	}
}

func listSet(list string) map[string]bool {
	set := make(map[string]bool)
	for _, part := range strings.Split(list, ",") {
		if t := strings.TrimSpace(part); t != "" {
			set[t] = true
		}
	}
	return set
}
