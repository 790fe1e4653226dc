// Package keyboard lays out piano style keyboards, transposes them and finds
// the transposition that puts a scale on the white keys.
package keyboard

import (
	"errors"
	"fmt"

	"github.com/jsphweid/goscales/constants"
	"github.com/jsphweid/goscales/note"
	"github.com/jsphweid/goscales/scale"
)

var (
	ErrInvalidKeyNumber = errors.New("invalid key number")
	ErrNoKeys           = errors.New("keyboard has no keys")
)

// w b w b w w b w b w b w
var whiteKeys = [constants.SemitonesInOctave]bool{
	true, false, true, false, true, true, false, true, false, true, false, true,
}

// Key is a physical key: its 1 based number within the octave (1 is the C
// key) and the octave it sits in.
type Key struct {
	Number int
	Octave int
}

func NewKey(number, octave int) (Key, error) {
	if number < 1 || number > constants.SemitonesInOctave {
		return Key{}, fmt.Errorf("%w: piano key number should be between 1 and %v (inclusive), not %v",
			ErrInvalidKeyNumber, constants.SemitonesInOctave, number)
	}
	return Key{Number: number, Octave: octave}, nil
}

func (k Key) White() bool {
	return whiteKeys[k.Number-1]
}

func (k Key) Black() bool {
	return !k.White()
}

// Note is what the key plays on an untuned keyboard.
func (k Key) Note() note.Note {
	return note.MustNew(note.ChromaticOrder[k.Number-1], k.Octave)
}

func (k Key) next() Key {
	if k.Number == constants.SemitonesInOctave {
		return Key{Number: 1, Octave: k.Octave + 1}
	}
	return Key{Number: k.Number + 1, Octave: k.Octave}
}

// Keyboard is a run of consecutive keys. Tuning shifts what every key plays
// without moving the keys, which is how a scale gets moved onto white keys.
type Keyboard struct {
	Name           string
	NumberOfKeys   int
	FirstKeyNumber int
	FirstOctave    int
	tuning         int
}

func New(name string, numberOfKeys, firstKeyNumber, firstOctave int) (Keyboard, error) {
	if numberOfKeys < 1 {
		return Keyboard{}, fmt.Errorf("%w: %v", ErrNoKeys, name)
	}
	if _, err := NewKey(firstKeyNumber, firstOctave); err != nil {
		return Keyboard{}, err
	}
	return Keyboard{
		Name:           name,
		NumberOfKeys:   numberOfKeys,
		FirstKeyNumber: firstKeyNumber,
		FirstOctave:    firstOctave,
	}, nil
}

func mustNew(name string, numberOfKeys, firstKeyNumber, firstOctave int) Keyboard {
	kb, err := New(name, numberOfKeys, firstKeyNumber, firstOctave)
	if err != nil {
		panic(err)
	}
	return kb
}

func (kb Keyboard) Tuning() int {
	return kb.tuning
}

// Tune returns a copy playing semitones away from the default layout.
func (kb Keyboard) Tune(semitones int) Keyboard {
	kb.tuning = semitones
	return kb
}

func (kb Keyboard) Renamed(name string) Keyboard {
	kb.Name = name
	return kb
}

func (kb Keyboard) Keys() []Key {
	keys := make([]Key, 0, kb.NumberOfKeys)
	k := Key{Number: kb.FirstKeyNumber, Octave: kb.FirstOctave}
	for i := 0; i < kb.NumberOfKeys; i++ {
		keys = append(keys, k)
		k = k.next()
	}
	return keys
}

// NoteFor is the note k plays with the current tuning.
func (kb Keyboard) NoteFor(k Key) note.Note {
	return k.Note().Add(note.ToneDelta(kb.tuning))
}

// KeysForScale returns the keys that play a note of s.
func (kb Keyboard) KeysForScale(s scale.Scale) []Key {
	var res []Key
	for _, k := range kb.Keys() {
		if s.IsInScale(kb.NoteFor(k)) {
			res = append(res, k)
		}
	}
	return res
}

// OnWhiteKeys reports whether every key playing a note of s is white.
func (kb Keyboard) OnWhiteKeys(s scale.Scale) bool {
	for _, k := range kb.KeysForScale(s) {
		if k.Black() {
			return false
		}
	}
	return true
}

const maxTuneSemitones = 12

// TuneToWhiteKeys finds the smallest transposition, in either direction,
// that puts all of s on white keys. Upward wins ties.
func TuneToWhiteKeys(kb Keyboard, s scale.Scale) (int, bool) {
	for i := 0; i <= maxTuneSemitones; i++ {
		if kb.Tune(i).OnWhiteKeys(s) {
			return i, true
		}
		if kb.Tune(-i).OnWhiteKeys(s) {
			return -i, true
		}
	}
	return 0, false
}

func (kb Keyboard) String() string {
	return fmt.Sprintf("%v (%v keys)", kb.Name, kb.NumberOfKeys)
}
