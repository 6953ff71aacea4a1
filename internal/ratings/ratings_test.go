package ratings

import (
	"reflect"
	"testing"
)

func TestClamp(t *testing.T) {
	tests := []struct {
		in, want int
	}{
		{-3, 1}, {0, 1}, {1, 1}, {3, 3}, {5, 5}, {6, 5}, {99, 5},
	}
	for _, tt := range tests {
		if got := Clamp(tt.in); got != tt.want {
			t.Errorf("Clamp(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestDefaults(t *testing.T) {
	attrs := Defaults()
	if len(attrs) != len(Attributes) {
		t.Fatalf("expected %d attributes, got %d", len(Attributes), len(attrs))
	}
	for i, a := range attrs {
		if a.Name != Attributes[i] {
			t.Errorf("attrs[%d] = %q, want %q", i, a.Name, Attributes[i])
		}
		if a.Rating != DefaultRating {
			t.Errorf("%s rating = %d, want %d", a.Name, a.Rating, DefaultRating)
		}
	}
}

func TestSetClampsAndIgnoresUnknown(t *testing.T) {
	attrs := Defaults()
	Set(attrs, "Power", 9)
	Set(attrs, "Endurance", 0)
	Set(attrs, "Juggling", 5)

	if attrs[0].Rating != 5 {
		t.Errorf("Power = %d, want 5", attrs[0].Rating)
	}
	if attrs[1].Rating != 1 {
		t.Errorf("Endurance = %d, want 1", attrs[1].Rating)
	}
}

func TestSerialize(t *testing.T) {
	attrs := []RatedAttribute{
		{Name: "Power", Rating: 5},
		{Name: "Endurance", Rating: 1},
		{Name: "Technique", Rating: 3},
	}
	want := "Power: 5, Endurance: 1, Technique: 3"
	if got := Serialize(attrs); got != want {
		t.Errorf("Serialize = %q, want %q", got, want)
	}
	if got := Strengths(attrs); got != "Power" {
		t.Errorf("Strengths = %q, want %q", got, "Power")
	}
	if got := Weaknesses(attrs); got != "Endurance" {
		t.Errorf("Weaknesses = %q, want %q", got, "Endurance")
	}
}

func TestStrengthsAndWeaknessesThresholds(t *testing.T) {
	attrs := []RatedAttribute{
		{Name: "A", Rating: 1},
		{Name: "B", Rating: 2},
		{Name: "C", Rating: 3},
		{Name: "D", Rating: 4},
		{Name: "E", Rating: 5},
	}
	if got := Strengths(attrs); got != "D, E" {
		t.Errorf("Strengths = %q", got)
	}
	if got := Weaknesses(attrs); got != "A, B" {
		t.Errorf("Weaknesses = %q", got)
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		want        map[string]int
		wantSkipped int
	}{
		{
			name:  "well formed",
			input: "Power: 5, Endurance: 1",
			want:  map[string]int{"Power": 5, "Endurance": 1},
		},
		{
			name:        "malformed entries skipped",
			input:       "Power 5, : 3, Technique: 4",
			want:        map[string]int{"Technique": 4},
			wantSkipped: 2,
		},
		{
			name:  "out of range clamped",
			input: "Power: 9, Endurance: -2, Technique: 0",
			want:  map[string]int{"Power": 5, "Endurance": 1, "Technique": 1},
		},
		{
			name:        "non integer skipped",
			input:       "Power: high, Footwork: 2",
			want:        map[string]int{"Footwork": 2},
			wantSkipped: 1,
		},
		{
			name:  "splits on first separator only",
			input: "Mental Game: 4",
			want:  map[string]int{"Mental Game": 4},
		},
		{
			name:  "empty",
			input: "",
			want:  map[string]int{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, skipped := Parse(tt.input)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Parse(%q) = %v, want %v", tt.input, got, tt.want)
			}
			if len(skipped) != tt.wantSkipped {
				t.Errorf("skipped = %v, want %d entries", skipped, tt.wantSkipped)
			}
		})
	}
}

func TestSerializeParseIdempotent(t *testing.T) {
	attrs := Defaults()
	for i := range attrs {
		attrs[i].Rating = (i % 5) + 1
	}
	parsed, skipped := Parse(Serialize(attrs))
	if len(skipped) != 0 {
		t.Fatalf("unexpected skipped entries: %v", skipped)
	}
	for _, a := range attrs {
		if parsed[a.Name] != a.Rating {
			t.Errorf("%s = %d, want %d", a.Name, parsed[a.Name], a.Rating)
		}
	}
}

func TestResolveNumericWinsOverLegacy(t *testing.T) {
	res := Resolve("Power: 5, Endurance: 1", "Technique", "")
	if res.Source != SourceNumeric {
		t.Fatalf("source = %v, want numeric", res.Source)
	}

	attrs := Defaults()
	res.Apply(attrs)
	for _, a := range attrs {
		want := DefaultRating
		switch a.Name {
		case "Power":
			want = 5
		case "Endurance":
			want = 1
		}
		if a.Rating != want {
			t.Errorf("%s = %d, want %d", a.Name, a.Rating, want)
		}
	}
}

func TestResolveNumericKeepsUnmentioned(t *testing.T) {
	attrs := Defaults()
	Set(attrs, "Footwork", 5)

	Resolve("Power: 2", "", "").Apply(attrs)

	for _, a := range attrs {
		switch a.Name {
		case "Power":
			if a.Rating != 2 {
				t.Errorf("Power = %d, want 2", a.Rating)
			}
		case "Footwork":
			if a.Rating != 5 {
				t.Errorf("Footwork = %d, want 5 (untouched)", a.Rating)
			}
		}
	}
}

func TestResolveLegacyFallback(t *testing.T) {
	res := Resolve("", "Power, Technique", "Endurance")
	if res.Source != SourceLegacy {
		t.Fatalf("source = %v, want legacy", res.Source)
	}

	attrs := Defaults()
	Set(attrs, "Footwork", 5) // overwritten: legacy is a full overwrite
	res.Apply(attrs)

	for _, a := range attrs {
		want := DefaultRating
		switch a.Name {
		case "Power", "Technique":
			want = StrengthRating
		case "Endurance":
			want = WeaknessRating
		}
		if a.Rating != want {
			t.Errorf("%s = %d, want %d", a.Name, a.Rating, want)
		}
	}
}

func TestResolveNothingStored(t *testing.T) {
	res := Resolve("", "", "")
	if res.Source != SourceNone {
		t.Fatalf("source = %v, want none", res.Source)
	}

	attrs := Defaults()
	Set(attrs, "Power", 1)
	res.Apply(attrs)
	if attrs[0].Rating != 1 {
		t.Errorf("Power = %d, want 1 (unchanged)", attrs[0].Rating)
	}
}

func TestApplyAlwaysWithinBounds(t *testing.T) {
	res := Resolution{Source: SourceNumeric, Ratings: map[string]int{"Power": 42, "Endurance": -7}}
	attrs := Defaults()
	res.Apply(attrs)
	for _, a := range attrs {
		if a.Rating < MinRating || a.Rating > MaxRating {
			t.Errorf("%s = %d out of range", a.Name, a.Rating)
		}
	}
}
