// Package formula parses whole/half step patterns into the semitone membership
// map used to build scales from any root.
package formula

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidFormulaToken = errors.New("invalid formula token")
	ErrEmptyFormula        = errors.New("empty formula")
)

// Formula is comparable. The pattern is stored with canonical tokens so
// "WWH", "wwh" and "tts" are the same formula.
type Formula struct {
	pattern string
	name    string
}

func New(pattern string, name string) (Formula, error) {
	if pattern == "" {
		return Formula{}, ErrEmptyFormula
	}
	pattern = canonical.Replace(strings.ToLower(pattern))
	if _, err := membership(pattern); err != nil {
		return Formula{}, err
	}
	if name == "" {
		name = "Unnamed"
	}
	return Formula{pattern: pattern, name: name}, nil
}

var canonical = strings.NewReplacer("t", "w", "s", "h")

func MustNew(pattern string, name string) Formula {
	f, err := New(pattern, name)
	if err != nil {
		panic(err)
	}
	return f
}

// membership starts with the root, then each whole step skips a semitone
// and marks the next one while a half step marks the next one directly.
func membership(pattern string) ([]bool, error) {
	res := []bool{true}
	for i, r := range pattern {
		switch r {
		case 'w', 't':
			res = append(res, false, true)
		case 'h', 's':
			res = append(res, true)
		default:
			return nil, fmt.Errorf("%w: %q at position %v", ErrInvalidFormulaToken, r, i)
		}
	}
	// the last entry is the root an octave up; keeping it would make the
	// wrapping note arrays repeat the root
	return res[:len(res)-1], nil
}

func (f Formula) Pattern() string {
	return f.pattern
}

func (f Formula) Name() string {
	return f.name
}

// Members is indexed by semitone offset from the root. Its length is the
// span of the formula, 12 for the usual heptatonic patterns.
func (f Formula) Members() []bool {
	m, _ := membership(f.pattern)
	return m
}

// Span is the number of semitones the pattern covers.
func (f Formula) Span() int {
	return len(f.Members())
}

// Offsets lists the semitone offsets of the member notes.
func (f Formula) Offsets() []int {
	var offsets []int
	for i, used := range f.Members() {
		if used {
			offsets = append(offsets, i)
		}
	}
	return offsets
}

func (f Formula) String() string {
	return fmt.Sprintf("%v (%v)", f.name, f.pattern)
}
