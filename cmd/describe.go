package cmd

import (
	"github.com/jsphweid/goscales/interval"
	"github.com/jsphweid/goscales/keyboard"
	"github.com/jsphweid/goscales/model"
	"github.com/jsphweid/goscales/note"
	"github.com/jsphweid/goscales/scale"
)

func describeNote(n note.Note) model.NoteResponse {
	res := model.NoteResponse{
		Name:      n.Name(),
		FlatName:  n.FlatName(),
		Octave:    n.Octave(),
		Frequency: n.Frequency(),
	}
	// notes outside the midi range are still valid notes
	if v, err := n.MidiValue(); err == nil {
		res.Midi = &v
	}
	return res
}

func describeScale(s scale.Scale) model.ScaleResponse {
	return model.ScaleResponse{
		Name:            s.Name(),
		Root:            s.Root().String(),
		Formula:         s.Formula().Name(),
		Pattern:         s.Formula().Pattern(),
		Notes:           noteNames(s.NotesInScale().Notes()),
		NotesNotInScale: noteNames(s.NotesNotInScale()),
	}
}

func describeInterval(i interval.Interval) model.IntervalResponse {
	return model.IntervalResponse{
		Name:           i.Name(),
		Notation:       i.String(),
		Quality:        i.Quality().Name(),
		StaffPositions: i.StaffPositions(),
		Semitones:      i.Semitones(),
		Consonance:     i.Consonance(),
	}
}

// tune finds the white key tuning for s on kb and renders the result.
func tune(kb keyboard.Keyboard, s scale.Scale) (model.TuneResponse, bool) {
	tuning, ok := keyboard.TuneToWhiteKeys(kb, s)
	if !ok {
		return model.TuneResponse{}, false
	}
	tuned := kb.Tune(tuning)
	return model.TuneResponse{
		Keyboard: kb.Name,
		Scale:    s.Name(),
		Tuning:   tuning,
		Keys:     tuned.RenderKeys(),
		Notes:    tuned.RenderScale(s, false),
	}, true
}
