package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jsphweid/goscales/constants"
	"github.com/jsphweid/goscales/formula"
	"github.com/jsphweid/goscales/keyboard"
	"github.com/jsphweid/goscales/note"
	"github.com/jsphweid/goscales/scale"
)

var (
	ErrUnknownFormula  = errors.New("unknown formula")
	ErrUnknownKeyboard = errors.New("unknown keyboard")
)

// parseNote accepts "C#4" or a bare name, which lands in the fundamental's
// octave.
func parseNote(s string) (note.Note, error) {
	s = strings.TrimSpace(s)
	if n, err := note.Parse(s); err == nil {
		return n, nil
	}
	return note.New(s, constants.FundamentalNoteOctave)
}

// parseFormula looks up a preset by name ("dorian", "natural-minor") and
// falls back to reading s as a step pattern ("wwhwwwh").
func parseFormula(s string) (formula.Formula, error) {
	name := strings.NewReplacer("-", " ", "_", " ").Replace(s)
	if f, ok := formula.ByName(name); ok {
		return f, nil
	}
	if f, err := formula.New(s, ""); err == nil {
		return f, nil
	}
	return formula.Formula{}, fmt.Errorf("%w: %q", ErrUnknownFormula, s)
}

func parseFormulas(names []string) ([]formula.Formula, error) {
	if len(names) == 0 {
		return formula.All, nil
	}
	res := make([]formula.Formula, 0, len(names))
	for _, name := range names {
		f, err := parseFormula(name)
		if err != nil {
			return nil, err
		}
		res = append(res, f)
	}
	return res, nil
}

func parseScale(root, f string) (scale.Scale, error) {
	n, err := parseNote(root)
	if err != nil {
		return scale.Scale{}, err
	}
	parsed, err := parseFormula(f)
	if err != nil {
		return scale.Scale{}, err
	}
	return scale.New(n, parsed), nil
}

func parseKeyboard(name string) (keyboard.Keyboard, error) {
	kb, ok := keyboard.ByName(name)
	if !ok {
		return keyboard.Keyboard{}, fmt.Errorf("%w: %q", ErrUnknownKeyboard, name)
	}
	return kb, nil
}

func noteNames(notes []note.Note) []string {
	res := make([]string, len(notes))
	for i, n := range notes {
		res[i] = n.String()
	}
	return res
}
