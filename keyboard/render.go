package keyboard

import (
	"strings"

	"github.com/jsphweid/goscales/note"
	"github.com/jsphweid/goscales/scale"
)

const columnWidth = 4

func pad(s string) string {
	if len(s) >= columnWidth {
		return s
	}
	return s + strings.Repeat(" ", columnWidth-len(s))
}

func label(n note.Note, showOctave bool) string {
	if showOctave {
		return n.String()
	}
	return n.Name()
}

func (kb Keyboard) render(cell func(k Key) string) string {
	var b strings.Builder
	for _, k := range kb.Keys() {
		b.WriteString(pad(cell(k)))
	}
	return strings.TrimRight(b.String(), " ")
}

// RenderKeys draws the key colors, "_" for white and "#" for black.
func (kb Keyboard) RenderKeys() string {
	return kb.render(func(k Key) string {
		if k.White() {
			return "_"
		}
		return "#"
	})
}

// RenderNotes labels each key with the note it plays.
func (kb Keyboard) RenderNotes(showOctave bool) string {
	return kb.render(func(k Key) string {
		return label(kb.NoteFor(k), showOctave)
	})
}

// RenderScale labels only the keys that play a note of s.
func (kb Keyboard) RenderScale(s scale.Scale, showOctave bool) string {
	return kb.render(func(k Key) string {
		n := kb.NoteFor(k)
		if !s.IsInScale(n) {
			return ""
		}
		return label(n, showOctave)
	})
}
