// Package midi reads Standard MIDI Files and writes scales as melodies.
package midi

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/jsphweid/goscales/chord"
	"github.com/jsphweid/goscales/constants"
	"github.com/jsphweid/goscales/note"
	"github.com/jsphweid/goscales/scale"
	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
)

var ErrCorruptFile = errors.New("corrupt midi file")

// MaxKey is the highest key a MIDI message can carry.
const MaxKey = 127

type Options struct {
	Channel    uint8
	Velocity   uint8
	Resolution uint16 // ticks per quarter note
	NoteTicks  uint32
	BPM        float64
}

func DefaultOptions() Options {
	return Options{
		Channel:    0,
		Velocity:   100,
		Resolution: 96,
		NoteTicks:  96,
		BPM:        120,
	}
}

func ReadMidiFile(filepath string) (*smf.SMF, error) {
	dat, err := os.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("error reading midi file: %w", err)
	}
	return Read(bytes.NewReader(dat))
}

func Read(r io.Reader) (s *smf.SMF, e error) {
	// handle panics
	// https://github.com/gomidi/midi/issues/20
	defer func() {
		if r := recover(); r != nil {
			s, e = nil, fmt.Errorf("%w: %v", ErrCorruptFile, r)
		}
	}()

	res, err := smf.ReadFrom(r)
	if err != nil {
		return nil, fmt.Errorf("error parsing midi file: %w", err)
	}
	return res, nil
}

// Key is the MIDI key for n, which has to fit in a channel message.
func Key(n note.Note) (uint8, error) {
	v, err := n.MidiValue()
	if err != nil {
		return 0, err
	}
	if v > MaxKey {
		return 0, fmt.Errorf("%w: %v has midi value %v, above %v", note.ErrOutOfRange, n, v, MaxKey)
	}
	return uint8(v), nil
}

// ScaleTrack plays every note of s upward from the root, closing on the root
// an octave higher.
func ScaleTrack(s scale.Scale, opts Options) (smf.Track, error) {
	notes := s.NotesInScale()

	var tr smf.Track
	tr.Add(0, smf.MetaTrackSequenceName(s.Name()))
	tr.Add(0, smf.MetaTempo(opts.BPM))
	for i := 0; i <= notes.Len(); i++ {
		key, err := Key(notes.At(i))
		if err != nil {
			return nil, err
		}
		tr.Add(0, midi.NoteOn(opts.Channel, key, opts.Velocity))
		tr.Add(opts.NoteTicks, midi.NoteOff(opts.Channel, key))
	}
	tr.Close(0)
	return tr, nil
}

// WriteScale writes s as a single track SMF to w.
func WriteScale(w io.Writer, s scale.Scale, opts Options) error {
	tr, err := ScaleTrack(s, opts)
	if err != nil {
		return err
	}

	res := smf.New()
	res.TimeFormat = smf.MetricTicks(opts.Resolution)
	if err := res.Add(tr); err != nil {
		return err
	}
	_, err = res.WriteTo(w)
	return err
}

// WriteScaleFile writes s to path, replacing any existing file.
func WriteScaleFile(path string, s scale.Scale, opts Options) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return WriteScale(f, s, opts)
}

// PitchClass is the pitch class of key, placed in the fundamental's octave.
func PitchClass(key uint8) note.Note {
	return note.MustNew(note.ChromaticOrder[int(key)%constants.SemitonesInOctave], constants.FundamentalNoteOctave)
}

// KeysToPitchClasses lists the distinct pitch classes of keys in chromatic
// order.
func KeysToPitchClasses(keys []uint8) []note.Note {
	var seen [constants.SemitonesInOctave]bool
	for _, key := range keys {
		seen[int(key)%constants.SemitonesInOctave] = true
	}

	var res []note.Note
	for i, ok := range seen {
		if ok {
			res = append(res, PitchClass(uint8(i)))
		}
	}
	return res
}

// PitchClasses lists the distinct pitch classes sounding anywhere in s.
func PitchClasses(s *smf.SMF) ([]note.Note, error) {
	chords, err := chord.GetChords(s)
	if err != nil {
		return nil, err
	}
	return KeysToPitchClasses(chord.Sounding(chords)), nil
}
