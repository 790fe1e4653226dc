package formula

import "strings"

var (
	Major        = MustNew("wwhwwwh", "Major (Ionian)")
	NaturalMinor = MustNew("whwwhww", "Natural Minor")
	Minor        = NaturalMinor

	// modern modes
	Ionian     = Major
	Dorian     = MustNew("whwwwhw", "Dorian")
	Phrygian   = MustNew("hwwwhww", "Phrygian")
	Lydian     = MustNew("wwwhwwh", "Lydian")
	Mixolydian = MustNew("wwhwwhw", "Mixolydian")
	Aeolian    = NaturalMinor
	Locrian    = MustNew("hwwhwww", "Locrian")

	Chromatic = MustNew("hhhhhhhhhhhh", "Chromatic")
	WholeTone = MustNew("wwwwww", "Whole Tone")
)

// All lists each distinct preset once.
var All = []Formula{
	Major,
	NaturalMinor,
	Dorian,
	Phrygian,
	Lydian,
	Mixolydian,
	Locrian,
	Chromatic,
	WholeTone,
}

var aliases = map[string]Formula{
	"major":         Major,
	"ionian":        Major,
	"minor":         NaturalMinor,
	"natural minor": NaturalMinor,
	"aeolian":       NaturalMinor,
	"whole-tone":    WholeTone,
}

// ByName finds a preset by its display name or a common alias, ignoring case.
func ByName(name string) (Formula, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	if f, ok := aliases[name]; ok {
		return f, true
	}
	for _, f := range All {
		if strings.ToLower(f.Name()) == name {
			return f, true
		}
	}
	return Formula{}, false
}
