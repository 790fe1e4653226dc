package model

type Notes = []uint8

// Chord is the set of keys held down at Offset (millis from the start of the
// file).
type Chord struct {
	Offset uint32
	Notes  Notes
}

// ReducedEvent keeps only what chord building needs from a note on/off.
type ReducedEvent struct {
	Offset    int64
	IsNoteOff bool
	Note      uint8
}
