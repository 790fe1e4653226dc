package interval

import (
	"fmt"

	"github.com/jsphweid/goscales/note"
	"github.com/jsphweid/goscales/scale"
)

// InScale is a number of scale degrees within one scale. It knows nothing
// about qualities; adding it to a note just walks the scale's notes, so
// negative values go down and values past the scale length change octave.
type InScale struct {
	staff int
	scale scale.Scale
}

func NewInScale(staffPositions int, s scale.Scale) InScale {
	return InScale{staff: staffPositions, scale: s}
}

func (i InScale) StaffPositions() int {
	return i.staff
}

func (i InScale) Scale() scale.Scale {
	return i.scale
}

func (i InScale) Add(other InScale) (InScale, error) {
	if i.scale != other.scale {
		return InScale{}, fmt.Errorf("%w: %v and %v are in different scales",
			note.ErrInvalidOperand, i.scale.Name(), other.scale.Name())
	}
	return InScale{staff: i.staff + other.staff, scale: i.scale}, nil
}

func (i InScale) Sub(other InScale) (InScale, error) {
	return i.Add(other.Negate())
}

func (i InScale) Negate() InScale {
	return InScale{staff: -i.staff, scale: i.scale}
}

// AddToNote fails with scale.ErrNotInScale when n is not a member.
func (i InScale) AddToNote(n note.Note) (note.Note, error) {
	degree, err := i.scale.Degree(n)
	if err != nil {
		return note.Note{}, err
	}
	return i.scale.NotesInScale().At(degree + i.staff), nil
}

func (i InScale) SubtractFromNote(n note.Note) (note.Note, error) {
	return i.Negate().AddToNote(n)
}

func (i InScale) ShiftNote(n note.Note) (note.Note, error) {
	return i.AddToNote(n)
}

func (i InScale) UnshiftNote(n note.Note) (note.Note, error) {
	return i.SubtractFromNote(n)
}

func (i InScale) String() string {
	return fmt.Sprintf("%+d in %v", i.staff, i.scale.Name())
}
