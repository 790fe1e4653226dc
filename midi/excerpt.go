package midi

import (
	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
)

func isNote(m smf.Message) bool {
	return m.Is(midi.NoteOnMsg) || m.Is(midi.NoteOffMsg)
}

func isNoteStart(m smf.Message) bool {
	var ch, key, vel uint8
	return m.GetNoteOn(&ch, &key, &vel) && vel > 0
}

// Excerpt copies s keeping the events at or after fromTicks, with at most
// maxNotes note starts per track (0 means no limit). Non note events before
// fromTicks, such as tempo and meter, are moved to the start.
func Excerpt(s *smf.SMF, fromTicks uint64, maxNotes int) *smf.SMF {
	res := smf.New()
	res.TimeFormat = s.TimeFormat

	for _, track := range s.Tracks {
		var newTrack smf.Track
		var absTicks uint64
		lastTicks := fromTicks
		var numNotes int
	TrackEventLoop:
		for _, evt := range track {
			absTicks += uint64(evt.Delta)
			switch {
			case evt.Message.Is(smf.MetaEndOfTrackMsg):
				break TrackEventLoop
			case absTicks < fromTicks:
				if !isNote(evt.Message) {
					newTrack = append(newTrack, smf.Event{Delta: 0, Message: evt.Message})
				}
				continue
			case isNoteStart(evt.Message):
				if maxNotes > 0 && numNotes >= maxNotes {
					break TrackEventLoop
				}
				numNotes++
			}
			newTrack = append(newTrack, smf.Event{Delta: uint32(absTicks - lastTicks), Message: evt.Message})
			lastTicks = absTicks
		}
		newTrack.Close(0)
		res.Tracks = append(res.Tracks, newTrack)
	}
	return res
}
