// Package interval classifies the distance between two notes by reconciling
// semitones with staff positions, and moves notes diatonically within a scale.
package interval

import (
	"errors"
	"fmt"

	"github.com/jsphweid/goscales/constants"
	"github.com/jsphweid/goscales/note"
	"github.com/jsphweid/goscales/scale"
	"github.com/jsphweid/goscales/util"
)

var (
	ErrQualityMismatch        = errors.New("quality does not match semitones")
	ErrUndefinedInterval      = errors.New("no quality for staff positions and semitones")
	ErrNegativeStaffPositions = errors.New("staff positions must not be negative")
)

// Interval is a zero based staff position difference (0 is a unison, 7 an
// octave) with its quality and semitone size. The quality always agrees with
// the lookup table for (staff mod 7, semitones mod 12).
type Interval struct {
	staff     int
	quality   Quality
	semitones int
}

// New derives the semitones from the quality.
func New(staffPositions int, q Quality) (Interval, error) {
	if err := validate(staffPositions, q); err != nil {
		return Interval{}, err
	}
	semitones, ok := lookupSemitones(q, staffPositions)
	if !ok {
		return Interval{}, fmt.Errorf("%w: %v with %v staff positions", ErrUndefinedInterval, q, staffPositions)
	}
	return Interval{staff: staffPositions, quality: q, semitones: semitones}, nil
}

// FromSemitones derives the quality from the semitones.
func FromSemitones(staffPositions int, semitones int) (Interval, error) {
	if staffPositions < 0 {
		return Interval{}, fmt.Errorf("%w: %v", ErrNegativeStaffPositions, staffPositions)
	}
	q, ok := lookupQuality(staffPositions, semitones)
	if !ok {
		return Interval{}, fmt.Errorf("%w: %v staff positions, %v semitones", ErrUndefinedInterval, staffPositions, semitones)
	}
	return Interval{staff: staffPositions, quality: q, semitones: semitones}, nil
}

// NewExact takes both and fails unless they agree.
func NewExact(staffPositions int, q Quality, semitones int) (Interval, error) {
	if err := validate(staffPositions, q); err != nil {
		return Interval{}, err
	}
	i, err := FromSemitones(staffPositions, semitones)
	if err != nil {
		return Interval{}, err
	}
	if i.quality != q {
		return Interval{}, fmt.Errorf("%w: %v semitones over %v staff positions is %v, not %v",
			ErrQualityMismatch, semitones, staffPositions, i.quality, q)
	}
	return i, nil
}

func mustNew(staffPositions int, q Quality) Interval {
	i, err := New(staffPositions, q)
	if err != nil {
		panic(err)
	}
	return i
}

func validate(staffPositions int, q Quality) error {
	if staffPositions < 0 {
		return fmt.Errorf("%w: %v", ErrNegativeStaffPositions, staffPositions)
	}
	if !q.Valid() {
		return fmt.Errorf("%w: %v", ErrUnknownQuality, q)
	}
	return nil
}

// Between measures note1 against note2 using the staff positions of s. Both
// distances are taken as magnitudes, so the order of the notes does not
// matter. Compound intervals keep their full size; their quality is looked up
// after reducing by octaves.
func Between(note1, note2 note.Note, s scale.Scale) (Interval, error) {
	d1, err := s.Degree(note1)
	if err != nil {
		return Interval{}, err
	}
	d2, err := s.Degree(note2)
	if err != nil {
		return Interval{}, err
	}
	semitones := util.Abs(note1.DistanceFrom(note2).Semitones())
	return FromSemitones(util.Abs(d1-d2), semitones)
}

func (i Interval) StaffPositions() int {
	return i.staff
}

func (i Interval) Quality() Quality {
	return i.quality
}

func (i Interval) Semitones() int {
	return i.semitones
}

// Number is the conventional one based interval number, 3 for a third.
func (i Interval) Number() int {
	return i.staff + 1
}

func (i Interval) IsCompound() bool {
	return i.staff > staffPositionsInOctave
}

// Invert flips a simple interval within the octave: M3 becomes m6.
func (i Interval) Invert() (Interval, error) {
	if i.IsCompound() {
		return Interval{}, fmt.Errorf("%w: cannot invert compound %v", ErrUndefinedInterval, i)
	}
	return FromSemitones(staffPositionsInOctave-i.staff, constants.SemitonesInOctave-i.semitones)
}

func (i Interval) AddToNote(n note.Note) note.Note {
	return n.Add(note.ToneDelta(i.semitones))
}

func (i Interval) SubtractFromNote(n note.Note) note.Note {
	return n.Subtract(note.ToneDelta(i.semitones))
}

func (i Interval) ShiftNote(n note.Note) (note.Note, error) {
	return i.AddToNote(n), nil
}

func (i Interval) UnshiftNote(n note.Note) (note.Note, error) {
	return i.SubtractFromNote(n), nil
}

var ordinals = []string{
	"Unison", "Second", "Third", "Fourth", "Fifth", "Sixth", "Seventh", "Octave",
	"Ninth", "Tenth", "Eleventh", "Twelfth", "Thirteenth", "Fourteenth", "Fifteenth",
}

// Name is the spelled out name, e.g. "Augmented Fourth".
func (i Interval) Name() string {
	if i.staff < len(ordinals) {
		return i.quality.Name() + " " + ordinals[i.staff]
	}
	return fmt.Sprintf("%v %v%v", i.quality.Name(), i.Number(), suffix(i.Number()))
}

func suffix(n int) string {
	if n%100 >= 11 && n%100 <= 13 {
		return "th"
	}
	switch n % 10 {
	case 1:
		return "st"
	case 2:
		return "nd"
	case 3:
		return "rd"
	}
	return "th"
}

// String is the short notation, e.g. "A4".
func (i Interval) String() string {
	return fmt.Sprintf("%v%v", i.quality.Notation(), i.Number())
}
