package sample

import (
	"github.com/jsphweid/harmonykit/harmony"
	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
)

const (
	TicksPerQuarter = 960
	velocity        = 100
)

// Create renders c as a one-track SMF. With arpeggio set, each tone is played
// alone for a quarter note before the block chord. The block chord lasts a
// whole note.
func Create(c harmony.Contents, baseOctave int, arpeggio bool) (*smf.SMF, error) {
	notes, err := c.MIDINotes(baseOctave)
	if err != nil {
		return nil, err
	}
	s := smf.New()
	s.TimeFormat = smf.MetricTicks(TicksPerQuarter)

	var track smf.Track
	if arpeggio {
		for _, n := range notes {
			track.Add(0, midi.NoteOn(0, n, velocity))
			track.Add(TicksPerQuarter, midi.NoteOff(0, n))
		}
	}
	for _, n := range notes {
		track.Add(0, midi.NoteOn(0, n, velocity))
	}
	for i, n := range notes {
		var delta uint32
		if i == 0 {
			delta = 4 * TicksPerQuarter
		}
		track.Add(delta, midi.NoteOff(0, n))
	}
	track.Close(0)
	s.Add(track)
	return s, nil
}
