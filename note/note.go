// Package note models equal temperament pitches: notes, the semitone distances
// between them, and octave-wrapping note sequences.
package note

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/jsphweid/goscales/constants"
)

var (
	ErrInvalidNoteName = errors.New("invalid note name")
	ErrOutOfRange      = errors.New("midi value out of range")
	ErrInvalidOperand  = errors.New("invalid operand")
	ErrNotFound        = errors.New("note not found")
)

// ChromaticOrder is the pitch class order used for every index computation.
var ChromaticOrder = [constants.SemitonesInOctave]string{
	"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B",
}

var flatToSharp = map[string]string{
	"Db": "C#",
	"Eb": "D#",
	"Gb": "F#",
	"Ab": "G#",
	"Bb": "A#",
}

var sharpToFlat = map[string]string{
	"C#": "Db",
	"D#": "Eb",
	"F#": "Gb",
	"G#": "Ab",
	"A#": "Bb",
}

var pitchClassIndex = func() map[string]int {
	m := make(map[string]int, len(ChromaticOrder))
	for i, name := range ChromaticOrder {
		m[name] = i
	}
	return m
}()

// Note is a pitch class spelled with sharps plus an octave number.
// Notes are comparable with ==.
type Note struct {
	name   string
	octave int
}

// New canonicalizes name (first letter upper case, flats rewritten to their
// sharp equivalent) so New("db", 4) == New("C#", 4).
func New(name string, octave int) (Note, error) {
	if name == "" {
		return Note{}, fmt.Errorf("%w: empty name", ErrInvalidNoteName)
	}
	name = strings.ToUpper(name[:1]) + name[1:]

	if sharp, ok := flatToSharp[name]; ok {
		name = sharp
	}
	if _, ok := pitchClassIndex[name]; !ok {
		return Note{}, fmt.Errorf("%w: %q, valid names include: %v", ErrInvalidNoteName, name, ValidNames())
	}
	return Note{name: name, octave: octave}, nil
}

// MustNew is like New but panics. Intended for presets and tests.
func MustNew(name string, octave int) Note {
	n, err := New(name, octave)
	if err != nil {
		panic(err)
	}
	return n
}

func FromMidi(v int) (Note, error) {
	if v < constants.LowestMidiValue || v > constants.HighestMidiValue {
		return Note{}, fmt.Errorf("%w: %v is not within [%v, %v]", ErrOutOfRange, v,
			constants.LowestMidiValue, constants.HighestMidiValue)
	}
	return Note{
		name:   ChromaticOrder[v%constants.SemitonesInOctave],
		octave: v/constants.SemitonesInOctave - 1,
	}, nil
}

// Parse reads a name immediately followed by an octave, e.g. "C#4", "eb3" or "B-1".
func Parse(s string) (Note, error) {
	split := len(s)
	for i, r := range s {
		if i > 0 && (r == '-' || (r >= '0' && r <= '9')) {
			split = i
			break
		}
	}
	if split == len(s) {
		return Note{}, fmt.Errorf("%w: %q has no octave", ErrInvalidNoteName, s)
	}
	octave, err := strconv.Atoi(s[split:])
	if err != nil {
		return Note{}, fmt.Errorf("%w: bad octave in %q", ErrInvalidNoteName, s)
	}
	return New(s[:split], octave)
}

// ValidNames lists every accepted spelling, sharps and flats included.
func ValidNames() []string {
	var names []string
	for _, name := range ChromaticOrder {
		names = append(names, name)
		if flat, ok := sharpToFlat[name]; ok {
			names = append(names, flat)
		}
	}
	return names
}

func (n Note) Name() string {
	return n.name
}

func (n Note) Octave() int {
	return n.octave
}

// FlatName returns the flat spelling of the pitch class, or the name itself
// for naturals.
func (n Note) FlatName() string {
	if flat, ok := sharpToFlat[n.name]; ok {
		return flat
	}
	return n.name
}

// IsNatural reports whether the pitch class is one of the seven naturals.
func (n Note) IsNatural() bool {
	_, sharp := sharpToFlat[n.name]
	return !sharp
}

// PitchClass is the index of the name in ChromaticOrder.
func (n Note) PitchClass() int {
	return pitchClassIndex[n.name]
}

func (n Note) WithOctave(octave int) Note {
	n.octave = octave
	return n
}

func (n Note) String() string {
	return fmt.Sprintf("%v%v", n.name, n.octave)
}

func (n Note) MidiValue() (int, error) {
	v := constants.SemitonesInOctave*(n.octave+1) + n.PitchClass()
	if v < constants.LowestMidiValue || v > constants.HighestMidiValue {
		return 0, fmt.Errorf("%w: %v has midi value %v", ErrOutOfRange, n, v)
	}
	return v, nil
}

func Fundamental() Note {
	return MustNew(constants.FundamentalNoteName, constants.FundamentalNoteOctave)
}

// Frequency in hz. The fundamental is returned exactly, everything else is
// derived with the twelfth root of two.
func (n Note) Frequency() float64 {
	fundamental := Fundamental()
	if n == fundamental {
		return constants.FundamentalNoteFrequency
	}
	distance := n.DistanceFrom(fundamental).Semitones()
	return constants.FundamentalNoteFrequency * math.Pow(2, float64(distance)/constants.SemitonesInOctave)
}

// Add transposes by d using the chromatic sequence.
func (n Note) Add(d ToneDelta) Note {
	i, _ := chromatic.Index(n)
	return chromatic.At(i + d.Semitones())
}

func (n Note) Subtract(d ToneDelta) Note {
	return n.Add(d.Negate())
}

// DistanceFrom returns the signed semitone distance n - other.
func (n Note) DistanceFrom(other Note) ToneDelta {
	i, _ := chromatic.Index(n)
	j, _ := chromatic.Index(other)
	return ToneDelta(i - j)
}

// Shifter is any distance that knows how to move a note, e.g. intervals.
type Shifter interface {
	ShiftNote(n Note) (Note, error)
}

type Unshifter interface {
	UnshiftNote(n Note) (Note, error)
}

// Shift applies operand to n. Only ToneDelta and Shifter values are accepted.
func Shift(n Note, operand any) (Note, error) {
	switch op := operand.(type) {
	case ToneDelta:
		return n.Add(op), nil
	case Shifter:
		return op.ShiftNote(n)
	default:
		return Note{}, fmt.Errorf("%w: cannot shift a note by %T", ErrInvalidOperand, operand)
	}
}

// Minus is the counterpart of Shift: note - note yields a ToneDelta,
// note - ToneDelta yields a Note and a Shifter is applied in reverse when it
// also implements Unshifter. Anything else fails.
func Minus(n Note, operand any) (any, error) {
	switch op := operand.(type) {
	case Note:
		return n.DistanceFrom(op), nil
	case Unshifter:
		return op.UnshiftNote(n)
	case ToneDelta:
		return n.Subtract(op), nil
	default:
		return nil, fmt.Errorf("%w: cannot subtract %T from a note", ErrInvalidOperand, operand)
	}
}
