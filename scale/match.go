package scale

import (
	"github.com/jsphweid/goscales/formula"
	"github.com/jsphweid/goscales/note"
)

// Matching returns every scale, over all twelve roots and the given formulas,
// that contains all notes. Roots are taken in chromatic order from C.
func Matching(notes []note.Note, formulas []formula.Formula) []Scale {
	var res []Scale
	for _, f := range formulas {
		for _, name := range note.ChromaticOrder {
			s := New(note.MustNew(name, 4), f)
			if containsAll(s, notes) {
				res = append(res, s)
			}
		}
	}
	return res
}

func containsAll(s Scale, notes []note.Note) bool {
	members := s.NotesInScale()
	for _, n := range notes {
		if !members.Contains(n) {
			return false
		}
	}
	return true
}
