package keyboard

import "strings"

var (
	// classic piano with 88 keys
	Classic88 = mustNew("Classic 88 Key Piano", 88, 1, 0)

	// teenage engineering op-1, two octaves starting on F
	OP1 = mustNew("Teenage Engineering OP-1", 24, 6, 0)

	// teenage engineering op-z shares the op-1 layout
	OPZ = OP1.Renamed("Teenage Engineering OP-Z")

	// korg volca keys synthesizer
	VolcaKeys = mustNew("Korg Volca Keys", 27, 6, 0)
)

var All = []Keyboard{Classic88, OP1, OPZ, VolcaKeys}

var aliases = map[string]Keyboard{
	"piano":      Classic88,
	"88":         Classic88,
	"op-1":       OP1,
	"op1":        OP1,
	"op-z":       OPZ,
	"opz":        OPZ,
	"volca":      VolcaKeys,
	"volca-keys": VolcaKeys,
}

// ByName matches a full preset name or a short alias, ignoring case.
func ByName(name string) (Keyboard, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	if kb, ok := aliases[name]; ok {
		return kb, true
	}
	for _, kb := range All {
		if strings.ToLower(kb.Name) == name {
			return kb, true
		}
	}
	return Keyboard{}, false
}
