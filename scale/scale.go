package scale

import (
	"errors"
	"fmt"

	"github.com/jsphweid/goscales/formula"
	"github.com/jsphweid/goscales/note"
)

var ErrNotInScale = errors.New("note not in scale")

// Scale is a root note plus a formula. It is comparable and every query
// derives its notes again, so equal scales behave identically.
type Scale struct {
	root    note.Note
	formula formula.Formula
}

func New(root note.Note, f formula.Formula) Scale {
	return Scale{root: root, formula: f}
}

func (s Scale) Root() note.Note {
	return s.root
}

func (s Scale) Formula() formula.Formula {
	return s.formula
}

// NotesInScale walks the chromatic notes upward from the root and keeps the
// ones the formula marks. Offsets past the octave land in the next one.
func (s Scale) NotesInScale() note.NoteArray {
	all := note.Chromatic()
	i, _ := all.Index(s.root)

	var res []note.Note
	for offset, used := range s.formula.Members() {
		if used {
			res = append(res, all.At(i+offset))
		}
	}
	return note.NewNoteArray(res, true)
}

// NotesNotInScale lists the chromatic notes of the root octave span that are
// not members.
func (s Scale) NotesNotInScale() []note.Note {
	all := note.Chromatic()
	i, _ := all.Index(s.root)

	var res []note.Note
	for offset, used := range s.formula.Members() {
		if !used {
			res = append(res, all.At(i+offset))
		}
	}
	return res
}

// IsInScale matches in any octave.
func (s Scale) IsInScale(n note.Note) bool {
	return s.NotesInScale().Contains(n)
}

// Degree is the position of n in the scale, counting from the root at 0.
// Notes in other octaves get degrees below 0 or past the scale length.
func (s Scale) Degree(n note.Note) (int, error) {
	i, err := s.NotesInScale().Index(n)
	if err != nil {
		return 0, fmt.Errorf("%w: %v is not in %v", ErrNotInScale, n, s.Name())
	}
	return i, nil
}

func (s Scale) Name() string {
	return fmt.Sprintf("%v %v", s.root.Name(), s.formula.Name())
}

func (s Scale) String() string {
	return s.NotesInScale().String()
}
