package scale

import (
	"testing"

	"github.com/jsphweid/goscales/formula"
	"github.com/jsphweid/goscales/note"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func names(a note.NoteArray) []string {
	var res []string
	for _, n := range a.Notes() {
		res = append(res, n.Name())
	}
	return res
}

func TestNaturalMinorFromA(t *testing.T) {
	s := New(note.MustNew("A", 3), formula.NaturalMinor)
	assert.Equal(t, []string{"A", "B", "C", "D", "E", "F", "G"}, names(s.NotesInScale()))
}

func TestPhrygianFromG(t *testing.T) {
	s := New(note.MustNew("G", 3), formula.Phrygian)
	assert.Equal(t, []string{"G", "G#", "A#", "C", "D", "D#", "F"}, names(s.NotesInScale()))
}

func TestOctaveContinuity(t *testing.T) {
	s := New(note.MustNew("A", 3), formula.NaturalMinor)
	notes := s.NotesInScale().Notes()

	assert.Equal(t, []note.Note{
		note.MustNew("A", 3), note.MustNew("B", 3), note.MustNew("C", 4),
		note.MustNew("D", 4), note.MustNew("E", 4), note.MustNew("F", 4),
		note.MustNew("G", 4),
	}, notes)
}

func TestIsInScaleInAnyOctave(t *testing.T) {
	s := New(note.MustNew("C", 4), formula.Major)
	assert := assert.New(t)

	assert.True(s.IsInScale(note.MustNew("C", 4)))
	assert.True(s.IsInScale(note.MustNew("E", 4)))
	assert.True(s.IsInScale(note.MustNew("B", 1)))
	assert.True(s.IsInScale(note.MustNew("F", 8)))
	assert.True(s.IsInScale(note.MustNew("G", -1)))
	assert.False(s.IsInScale(note.MustNew("C#", 4)))
	assert.False(s.IsInScale(note.MustNew("Bb", 2)))
}

func TestDegree(t *testing.T) {
	s := New(note.MustNew("F#", 4), formula.Minor)
	assert := assert.New(t)

	d, err := s.Degree(note.MustNew("A", 4))
	assert.NoError(err)
	assert.Equal(2, d)

	d, err = s.Degree(note.MustNew("F#", 5))
	assert.NoError(err)
	assert.Equal(7, d)

	d, err = s.Degree(note.MustNew("E", 4))
	assert.NoError(err)
	assert.Equal(-1, d)

	_, err = s.Degree(note.MustNew("F", 4))
	assert.ErrorIs(err, ErrNotInScale)
}

func TestNotesNotInScale(t *testing.T) {
	s := New(note.MustNew("C", 4), formula.Major)
	assert.Equal(t, []note.Note{
		note.MustNew("C#", 4), note.MustNew("D#", 4), note.MustNew("F#", 4),
		note.MustNew("G#", 4), note.MustNew("A#", 4),
	}, s.NotesNotInScale())
}

func TestScaleName(t *testing.T) {
	assert.Equal(t, "A Natural Minor", New(note.MustNew("A", 3), formula.NaturalMinor).Name())
	assert.Equal(t, "C# Dorian", New(note.MustNew("Db", 3), formula.Dorian).Name())
}

func TestEqualScalesAreInterchangeable(t *testing.T) {
	a := New(note.MustNew("Eb", 4), formula.MustNew("WWHWWWH", "Major (Ionian)"))
	b := New(note.MustNew("D#", 4), formula.Major)
	require.Equal(t, a, b)
	assert.Equal(t, a.NotesInScale(), b.NotesInScale())
	assert.Equal(t, a.String(), b.String())
}

func TestMatching(t *testing.T) {
	// only white keys: C major and A minor
	notes := []note.Note{
		note.MustNew("C", 4), note.MustNew("D", 4), note.MustNew("E", 4),
		note.MustNew("F", 4), note.MustNew("G", 4), note.MustNew("A", 4),
		note.MustNew("B", 4),
	}
	res := Matching(notes, []formula.Formula{formula.Major, formula.NaturalMinor})

	var got []string
	for _, s := range res {
		got = append(got, s.Name())
	}
	assert.Equal(t, []string{"C Major (Ionian)", "A Natural Minor"}, got)
}

func TestMatchingNoNotesMatchesEverything(t *testing.T) {
	res := Matching(nil, []formula.Formula{formula.Major})
	assert.Len(t, res, 12)
}
