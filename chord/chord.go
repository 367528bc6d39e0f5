package chord

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/jsphweid/harmonykit/constants"
	"github.com/jsphweid/harmonykit/harmony"
	"github.com/jsphweid/harmonykit/model"
	"github.com/jsphweid/harmonykit/pitch"
	"github.com/jsphweid/harmonykit/transpose"
	"github.com/jsphweid/harmonykit/util"
	"github.com/pkg/errors"
	"gitlab.com/gomidi/midi/v2/smf"
	"golang.org/x/exp/slices"
)

// PitchClassSet reduces MIDI notes to pitch classes. The lowest note's class
// comes first, the remaining distinct classes follow in ascending order.
func PitchClassSet(notes []uint8) model.Notes {
	if len(notes) == 0 {
		return nil
	}
	bass := notes[0]
	for _, n := range notes {
		if n < bass {
			bass = n
		}
	}
	return withBass(bass%12, notes)
}

func withBass(bass uint8, classes []uint8) model.Notes {
	var seen [12]bool
	seen[bass] = true
	var rest model.Notes
	for _, n := range classes {
		pc := n % 12
		if !seen[pc] {
			seen[pc] = true
			rest = append(rest, pc)
		}
	}
	slices.Sort(rest)
	return append(model.Notes{bass}, rest...)
}

// CreateChordKey is the index key for a set of sounding MIDI notes.
func CreateChordKey(notes []uint8) string {
	return KeyFromPitchClasses(PitchClassSet(notes))
}

func KeyFromPitchClasses(pcs model.Notes) string {
	var res string
	for i, pc := range pcs {
		res += fmt.Sprintf("%v", pc)
		if i < len(pcs)-1 {
			res += "-"
		}
	}
	return res
}

func ParseChordKey(key string) (model.Notes, error) {
	var res model.Notes
	for _, part := range strings.Split(key, "-") {
		pc, err := strconv.Atoi(part)
		if err != nil || pc < 0 || pc > 11 {
			return nil, errors.Errorf("bad chord key %q", key)
		}
		res = append(res, uint8(pc))
	}
	return res, nil
}

// FromContents keys a realized harmony by the tone that sounds lowest. In
// inversions of ninth chords and up that is not always the first tone, since
// a root raised an octave can still sit below a thirteenth.
func FromContents(c harmony.Contents) model.Chord {
	classes := make([]uint8, 0, len(c.Tones))
	lowest, bass := 0, uint8(0)
	for i, t := range c.Tones {
		pc := uint8(t.Pitch.PitchClass())
		classes = append(classes, pc)
		height := pitch.SemiTonesPitchAndOctave{Pitch: t.Pitch, Octave: pitch.DefaultOctave + t.RelativeOctave}.MIDINote()
		if i == 0 || height < lowest {
			lowest, bass = height, pc
		}
	}
	var notes model.Notes
	if len(classes) > 0 {
		notes = withBass(bass, classes)
	}
	return model.Chord{
		Notes:     notes,
		Root:      uint8(c.Root),
		Kind:      uint8(c.Kind),
		Inversion: uint8(c.Inversion),
	}
}

// All realizes every kind in every inversion above every supported root.
func All() []model.Chord {
	var res []model.Chord
	for _, root := range transpose.SupportedRoots() {
		for _, k := range harmony.Kinds() {
			s, err := harmony.Build(k)
			if err != nil {
				util.Tracef("skipping %v: %v", k, err)
				continue
			}
			for inv := 0; inv < s.Size(); inv++ {
				c, err := harmony.RealizeInversion(k, root, inv)
				if err != nil {
					util.Tracef("skipping %v %v inversion %d: %v", root, k, inv, err)
					continue
				}
				res = append(res, FromContents(c))
			}
		}
	}
	return res
}

func Serialize(c model.Chord) [constants.ChordSize]byte {
	var res [constants.ChordSize]byte
	res[0] = c.Root
	res[1] = c.Kind
	res[2] = c.Inversion
	n := util.Min(len(c.Notes), 12)
	res[3] = uint8(n)
	copy(res[4:], c.Notes[:n])
	return res
}

func Deserialize(buf []byte) model.Chord {
	n := util.Min(int(buf[3]), 12)
	notes := make(model.Notes, n)
	copy(notes, buf[4:4+n])
	return model.Chord{
		Notes:     notes,
		Root:      buf[0],
		Kind:      buf[1],
		Inversion: buf[2],
	}
}

func Describe(c model.Chord, lang pitch.Language) model.Match {
	root := pitch.SemiTonesPitch(c.Root)
	k := harmony.Kind(c.Kind)
	return model.Match{
		Root:      root.Name(lang),
		Kind:      k.ShortName(),
		Inversion: int(c.Inversion),
		Name:      root.Name(lang) + " " + k.ShortName(),
	}
}

func getChord(offset int64, pressed map[uint8]bool) model.SoundingChord {
	notes := make(model.Notes, 0, len(pressed))
	for note := range pressed {
		notes = append(notes, note)
	}
	slices.Sort(notes)
	// millis give about 1200 hours of range in 32 bits
	return model.SoundingChord{Offset: uint32(offset / 1000), Notes: notes}
}

// GetChords lists every distinct set of held notes in s, ordered by time.
func GetChords(s *smf.SMF) (chords []model.SoundingChord, e error) {
	defer func() {
		if r := recover(); r != nil {
			e = errors.Errorf("could not read chords: %v", r)
		}
	}()

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

	// smaller offsets first, then note offs
	sort.SliceStable(reducedEvents, func(i, j int) bool {
		if reducedEvents[i].Offset != reducedEvents[j].Offset {
			return reducedEvents[i].Offset < reducedEvents[j].Offset
		}
		return reducedEvents[i].IsNoteOff && !reducedEvents[j].IsNoteOff
	})

	timestampToChords := make(map[int64]model.SoundingChord)
	pressed := make(map[uint8]bool)
	for _, evt := range reducedEvents {
		if evt.IsNoteOff {
			delete(pressed, evt.Note)
		} else {
			pressed[evt.Note] = true
		}
		timestampToChords[evt.Offset] = getChord(evt.Offset, pressed)
	}

	for _, offset := range util.SortedKeys(timestampToChords) {
		if c := timestampToChords[offset]; len(c.Notes) > 0 {
			chords = append(chords, c)
		}
	}
	return chords, nil
}
