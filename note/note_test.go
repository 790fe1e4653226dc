package note

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlatsAreCanonicalizedToSharps(t *testing.T) {
	cases := map[string]string{
		"Db": "C#",
		"Eb": "D#",
		"Gb": "F#",
		"Ab": "G#",
		"Bb": "A#",
		"db": "C#",
		"c#": "C#",
		"e":  "E",
	}

	for in, want := range cases {
		t.Run(in, func(t *testing.T) {
			n, err := New(in, 4)
			require.NoError(t, err)
			assert.Equal(t, want, n.Name())
			assert.Equal(t, 4, n.Octave())
		})
	}

	assert.Equal(t, MustNew("Db", 4), MustNew("C#", 4))
}

func TestInvalidNoteNames(t *testing.T) {
	for _, name := range []string{"", "H", "Cb", "E#", "DB", "C##", "x"} {
		t.Run(fmt.Sprintf("%q", name), func(t *testing.T) {
			_, err := New(name, 4)
			assert.ErrorIs(t, err, ErrInvalidNoteName)
		})
	}
}

func TestValidNamesHasSeventeenSpellings(t *testing.T) {
	names := ValidNames()
	assert.Len(t, names, 17)
	for _, name := range names {
		_, err := New(name, 0)
		assert.NoError(t, err)
	}
}

func TestMidiValue(t *testing.T) {
	assert := assert.New(t)

	v, err := MustNew("C", 4).MidiValue()
	assert.NoError(err)
	assert.Equal(60, v)

	v, err = MustNew("B", 9).MidiValue()
	assert.NoError(err)
	assert.Equal(131, v)

	v, err = MustNew("A", 4).MidiValue()
	assert.NoError(err)
	assert.Equal(69, v)

	_, err = MustNew("A#", -1).MidiValue()
	assert.ErrorIs(err, ErrOutOfRange)

	_, err = MustNew("C#", 10).MidiValue()
	assert.ErrorIs(err, ErrOutOfRange)
}

func TestFromMidi(t *testing.T) {
	assert := assert.New(t)

	n, err := FromMidi(60)
	assert.NoError(err)
	assert.Equal(MustNew("C", 4), n)

	n, err = FromMidi(11)
	assert.NoError(err)
	assert.Equal(MustNew("B", -1), n)

	n, err = FromMidi(132)
	assert.NoError(err)
	assert.Equal(MustNew("C", 10), n)

	_, err = FromMidi(10)
	assert.ErrorIs(err, ErrOutOfRange)
	_, err = FromMidi(133)
	assert.ErrorIs(err, ErrOutOfRange)
}

func TestMidiRoundTrip(t *testing.T) {
	for _, name := range ValidNames() {
		for octave := 0; octave <= 9; octave++ {
			n := MustNew(name, octave)
			v, err := n.MidiValue()
			require.NoError(t, err)
			back, err := FromMidi(v)
			require.NoError(t, err)
			assert.Equal(t, n, back, "round trip of %v", n)
		}
	}
}

func TestFundamentalFrequencyIsExact(t *testing.T) {
	a4 := MustNew("A", 4)
	assert.Equal(t, "A", a4.Name())
	assert.Equal(t, 4, a4.Octave())
	assert.Equal(t, 440.0, a4.Frequency())
}

func TestFrequencyOfVariousNotes(t *testing.T) {
	cases := []struct {
		name   string
		octave int
		freq   float64
	}{
		{"A", 5, 880},
		{"C", 5, 523.25},
		{"C", 6, 1046.5},
		{"F#", 2, 92.5},
		{"A", 1, 55},
		{"G", 1, 49},
		{"G", 4, 392},
		{"F", 5, 698.46},
	}

	for _, c := range cases {
		t.Run(fmt.Sprintf("%v%v", c.name, c.octave), func(t *testing.T) {
			n := MustNew(c.name, c.octave)
			assert.Equal(t, c.name, n.Name())
			assert.InDelta(t, c.freq, n.Frequency(), 0.01)
		})
	}
}

func TestAddAndSubtractToneDelta(t *testing.T) {
	assert := assert.New(t)
	c4 := MustNew("C", 4)

	assert.Equal(MustNew("D", 4), c4.Add(ToneDelta(2)))
	assert.Equal(MustNew("C", 5), c4.Add(ToneDelta(12)))
	assert.Equal(MustNew("B", 3), c4.Add(ToneDelta(-1)))
	assert.Equal(MustNew("A", 3), c4.Subtract(ToneDelta(3)))
	assert.Equal(MustNew("C", 2), c4.Subtract(ToneDelta(24)))
	assert.Equal(c4, c4.Add(ToneDelta(0)))
}

func TestDistanceFrom(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(ToneDelta(2), MustNew("D", 4).DistanceFrom(MustNew("C", 4)))
	assert.Equal(ToneDelta(-6), MustNew("F", 4).DistanceFrom(MustNew("B", 4)))
	assert.Equal(ToneDelta(12), MustNew("A", 5).DistanceFrom(MustNew("A", 4)))
	assert.Equal(ToneDelta(-27), MustNew("F#", 2).DistanceFrom(Fundamental()))
}

type octaveUp struct{}

func (octaveUp) ShiftNote(n Note) (Note, error) {
	return n.WithOctave(n.Octave() + 1), nil
}

func TestShiftAcceptsOnlyDistances(t *testing.T) {
	assert := assert.New(t)
	c4 := MustNew("C", 4)

	n, err := Shift(c4, ToneDelta(7))
	assert.NoError(err)
	assert.Equal(MustNew("G", 4), n)

	n, err = Shift(c4, octaveUp{})
	assert.NoError(err)
	assert.Equal(MustNew("C", 5), n)

	_, err = Shift(c4, MustNew("D", 4))
	assert.ErrorIs(err, ErrInvalidOperand)

	_, err = Shift(c4, 3)
	assert.ErrorIs(err, ErrInvalidOperand)
}

func TestMinus(t *testing.T) {
	assert := assert.New(t)
	c4 := MustNew("C", 4)

	res, err := Minus(c4, MustNew("A", 3))
	assert.NoError(err)
	assert.Equal(ToneDelta(3), res)

	res, err = Minus(c4, ToneDelta(1))
	assert.NoError(err)
	assert.Equal(MustNew("B", 3), res)

	_, err = Minus(c4, "C4")
	assert.ErrorIs(err, ErrInvalidOperand)
}

func TestParse(t *testing.T) {
	assert := assert.New(t)

	n, err := Parse("C#4")
	assert.NoError(err)
	assert.Equal(MustNew("C#", 4), n)

	n, err = Parse("eb3")
	assert.NoError(err)
	assert.Equal(MustNew("D#", 3), n)

	n, err = Parse("B-1")
	assert.NoError(err)
	assert.Equal(MustNew("B", -1), n)

	_, err = Parse("C")
	assert.ErrorIs(err, ErrInvalidNoteName)
	_, err = Parse("H2")
	assert.ErrorIs(err, ErrInvalidNoteName)
	_, err = Parse("C4x")
	assert.ErrorIs(err, ErrInvalidNoteName)
}

func TestSpellings(t *testing.T) {
	assert := assert.New(t)
	assert.Equal("Db", MustNew("C#", 1).FlatName())
	assert.Equal("C", MustNew("C", 1).FlatName())
	assert.True(MustNew("E", 1).IsNatural())
	assert.False(MustNew("Bb", 1).IsNatural())
	assert.Equal("A#3", MustNew("Bb", 3).String())
	assert.Equal(10, MustNew("Bb", 3).PitchClass())
}

func TestToneDelta(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(ToneDelta(5), ToneDelta(2).Add(ToneDelta(3)))
	assert.Equal(ToneDelta(-6), ToneDelta(2).Mul(-3))
	assert.Equal(ToneDelta(0), ToneDelta(4).Add(ToneDelta(4).Negate()))
	assert.Equal(4, ToneDelta(4).Semitones())
	assert.Equal("+4 semitones", ToneDelta(4).String())
}
