package interval

import (
	"errors"
	"fmt"
)

var ErrUnknownQuality = errors.New("unknown interval quality")

type Quality uint8

const (
	Perfect Quality = iota + 1
	Major
	Minor
	Diminished
	Augmented
)

var qualityNames = map[Quality][3]string{
	Perfect:    {"Perfect", "perf", "P"},
	Major:      {"Major", "maj", "M"},
	Minor:      {"Minor", "min", "m"},
	Diminished: {"Diminished", "dim", "d"},
	Augmented:  {"Augmented", "aug", "A"},
}

func (q Quality) Name() string {
	return qualityNames[q][0]
}

func (q Quality) ShortName() string {
	return qualityNames[q][1]
}

// Notation is the single letter used in interval names like "M3".
func (q Quality) Notation() string {
	return qualityNames[q][2]
}

func (q Quality) Valid() bool {
	_, ok := qualityNames[q]
	return ok
}

func (q Quality) String() string {
	if !q.Valid() {
		return fmt.Sprintf("Quality(%d)", uint8(q))
	}
	return q.Name()
}

// ParseQuality accepts a notation letter (case sensitive, "M" vs "m"), a short
// name or a full name.
func ParseQuality(s string) (Quality, error) {
	for q, n := range qualityNames {
		if s == n[0] || s == n[1] || s == n[2] {
			return q, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownQuality, s)
}
