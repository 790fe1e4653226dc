package interval

import (
	"github.com/jsphweid/goscales/constants"
	"github.com/jsphweid/goscales/util"
)

const staffPositionsInOctave = 7

type tableKey struct {
	staff     int // staff position difference mod 7
	semitones int // semitone difference mod 12
}

type inverseKey struct {
	quality Quality
	staff   int
}

type tableEntry struct {
	staff     int
	quality   Quality
	semitones int
}

// The naming of interval qualities is irregular, so it is looked up rather
// than computed. semitones is the size of the simple interval; the octave row
// uses -1 for the diminished unison so that a diminished octave comes out at
// 11 once the octave is added back.
var entries = []tableEntry{
	{0, Diminished, -1},
	{0, Perfect, 0},
	{0, Augmented, 1},

	{1, Diminished, 0},
	{1, Minor, 1},
	{1, Major, 2},
	{1, Augmented, 3},

	{2, Diminished, 2},
	{2, Minor, 3},
	{2, Major, 4},
	{2, Augmented, 5},

	{3, Diminished, 4},
	{3, Perfect, 5},
	{3, Augmented, 6},

	{4, Diminished, 6},
	{4, Perfect, 7},
	{4, Augmented, 8},

	{5, Diminished, 7},
	{5, Minor, 8},
	{5, Major, 9},
	{5, Augmented, 10},

	{6, Diminished, 9},
	{6, Minor, 10},
	{6, Major, 11},
	{6, Augmented, 12},
}

var qualityTable = func() map[tableKey]Quality {
	m := make(map[tableKey]Quality, len(entries))
	for _, e := range entries {
		k := tableKey{e.staff, util.Mod(e.semitones, constants.SemitonesInOctave)}
		if _, dup := m[k]; dup {
			panic("duplicate interval table key")
		}
		m[k] = e.quality
	}
	return m
}()

var semitonesTable = func() map[inverseKey]int {
	m := make(map[inverseKey]int, len(entries))
	for _, e := range entries {
		m[inverseKey{e.quality, e.staff}] = e.semitones
	}
	return m
}()

func lookupQuality(staff int, semitones int) (Quality, bool) {
	q, ok := qualityTable[tableKey{
		util.Mod(staff, staffPositionsInOctave),
		util.Mod(semitones, constants.SemitonesInOctave),
	}]
	return q, ok
}

// lookupSemitones adds a full octave for every 7 staff positions.
func lookupSemitones(q Quality, staff int) (int, bool) {
	s, ok := semitonesTable[inverseKey{q, util.Mod(staff, staffPositionsInOctave)}]
	if !ok {
		return 0, false
	}
	return s + staff/staffPositionsInOctave*constants.SemitonesInOctave, true
}
