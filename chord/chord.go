// Package chord turns MIDI note on/off streams into the sets of keys that
// sound together.
package chord

import (
	"fmt"
	"strings"

	"github.com/jsphweid/goscales/model"
	"github.com/jsphweid/goscales/util"
	"github.com/sirupsen/logrus"
	"gitlab.com/gomidi/midi/v2/smf"
	"golang.org/x/exp/slices"
)

// OnNotes tracks the keys currently held down on a live input.
type OnNotes = map[uint8]bool

// Keys returns the held keys in ascending order.
func Keys(on OnNotes) model.Notes {
	return util.GetKeys(on)
}

// CreateChordKey joins the sorted notes with "-", e.g. "60-64-67". The
// argument is not modified.
func CreateChordKey(notes model.Notes) string {
	sorted := slices.Clone(notes)
	slices.Sort(sorted)
	parts := make([]string, len(sorted))
	for i, n := range sorted {
		parts[i] = fmt.Sprintf("%v", n)
	}
	return strings.Join(parts, "-")
}

func getChord(pressed map[uint8]int64, offset int64) model.Chord {
	// millis fit 1200 hours in 32 bits
	return model.Chord{Offset: uint32(offset / 1000), Notes: util.GetKeys(pressed)}
}

func reduce(s *smf.SMF) []model.ReducedEvent {
	var reducedEvents []model.ReducedEvent
	for _, events := range s.Tracks {
		var absTicks int64
		for _, event := range events {
			absTicks += int64(event.Delta)
			var channel, key, velocity uint8
			switch {
			case event.Message.GetNoteOn(&channel, &key, &velocity):
				reducedEvents = append(reducedEvents, model.ReducedEvent{
					Offset:    s.TimeAt(absTicks),
					IsNoteOff: velocity == 0,
					Note:      key,
				})
			case event.Message.GetNoteOff(&channel, &key, &velocity):
				reducedEvents = append(reducedEvents, model.ReducedEvent{
					Offset:    s.TimeAt(absTicks),
					IsNoteOff: true,
					Note:      key,
				})
			}
		}
	}

	// smaller offsets first, note offs before note ons at the same offset
	slices.SortStableFunc(reducedEvents, func(a, b model.ReducedEvent) bool {
		if a.Offset != b.Offset {
			return a.Offset < b.Offset
		}
		return a.IsNoteOff && !b.IsNoteOff
	})
	return reducedEvents
}

// GetChords returns every non-empty set of sounding keys in s, one per
// distinct event time, ordered by offset.
func GetChords(s *smf.SMF) ([]model.Chord, error) {
	if s == nil {
		return nil, fmt.Errorf("no midi data")
	}

	pressed := make(map[uint8]int64)
	var chords []model.Chord
	events := reduce(s)
	for i, evt := range events {
		if evt.IsNoteOff {
			if _, ok := pressed[evt.Note]; !ok {
				logrus.Debugf("note off for unpressed key: %d", evt.Note)
			}
			delete(pressed, evt.Note)
		} else {
			if _, ok := pressed[evt.Note]; ok {
				logrus.Debugf("key double pressed: %d", evt.Note)
			}
			pressed[evt.Note] = evt.Offset
		}

		// only the state after the last event at an offset counts
		if i+1 < len(events) && events[i+1].Offset == evt.Offset {
			continue
		}
		if len(pressed) > 0 {
			chords = append(chords, getChord(pressed, evt.Offset))
		}
	}

	if len(pressed) > 0 {
		logrus.Debugf("missing note off for %d keys", len(pressed))
	}
	return chords, nil
}

// Sounding is every key that sounds at least once across chords, ascending.
func Sounding(chords []model.Chord) model.Notes {
	on := make(OnNotes)
	for _, c := range chords {
		for _, n := range c.Notes {
			on[n] = true
		}
	}
	return Keys(on)
}
