package note

import (
	"fmt"
	"strings"

	"github.com/jsphweid/goscales/util"
)

// NoteArray is an ordered run of notes, assumed strictly ascending without
// repeated pitch classes. With octave simulation on, any integer index is
// valid: it wraps around the base notes and moves the octave accordingly.
type NoteArray struct {
	notes           []Note
	simulateOctaves bool
}

var chromatic = Chromatic()

// Chromatic is the twelve pitch classes of octave 0, ascending from C.
func Chromatic() NoteArray {
	notes := make([]Note, 0, len(ChromaticOrder))
	for _, name := range ChromaticOrder {
		notes = append(notes, MustNew(name, 0))
	}
	return NewNoteArray(notes, true)
}

func NewNoteArray(notes []Note, simulateOctaves bool) NoteArray {
	cp := make([]Note, len(notes))
	copy(cp, notes)
	return NoteArray{notes: cp, simulateOctaves: simulateOctaves}
}

func (a NoteArray) Len() int {
	return len(a.notes)
}

func (a NoteArray) SimulatesOctaves() bool {
	return a.simulateOctaves
}

// Notes returns a copy of the base notes.
func (a NoteArray) Notes() []Note {
	cp := make([]Note, len(a.notes))
	copy(cp, a.notes)
	return cp
}

// At panics for out of range indexes when octaves are not simulated, the same
// way slice indexing does.
func (a NoteArray) At(i int) Note {
	if !a.simulateOctaves || len(a.notes) == 0 {
		return a.notes[i]
	}
	length := len(a.notes)
	selected := a.notes[util.Mod(i, length)]
	return selected.WithOctave(selected.octave + util.FloorDiv(i, length))
}

// Slice returns the notes in [from, to), across octaves when simulated.
func (a NoteArray) Slice(from, to int) []Note {
	var res []Note
	for i := from; i < to; i++ {
		res = append(res, a.At(i))
	}
	return res
}

// Index inverts At. The position is derived from the matching pitch class in
// the base notes plus the octave difference, so it holds for any octave.
func (a NoteArray) Index(n Note) (int, error) {
	length := len(a.notes)
	for i, m := range a.notes {
		if m.name != n.name {
			continue
		}
		if !a.simulateOctaves {
			if m.octave == n.octave {
				return i, nil
			}
			continue
		}
		candidate := i + (n.octave-m.octave)*length
		if a.At(candidate) == n {
			return candidate, nil
		}
	}
	if a.simulateOctaves {
		if i, ok := a.search(n); ok {
			return i, nil
		}
	}
	return 0, fmt.Errorf("%w: %v in %v", ErrNotFound, n, a)
}

// Contains reports membership without caring about the position.
func (a NoteArray) Contains(n Note) bool {
	_, err := a.Index(n)
	return err == nil
}

const searchRadius = 10

// search scans a fixed window of octaves around the base notes. Only reached
// for arrays that break the ascending assumption.
func (a NoteArray) search(n Note) (int, bool) {
	length := len(a.notes)
	for i := -searchRadius * length; i < searchRadius*length; i++ {
		if a.At(i) == n {
			return i, true
		}
	}
	return 0, false
}

func (a NoteArray) String() string {
	names := make([]string, 0, len(a.notes))
	for _, n := range a.notes {
		names = append(names, n.String())
	}
	return "[" + strings.Join(names, " ") + "]"
}
