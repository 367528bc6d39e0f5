package harmony

import (
	"github.com/jsphweid/harmonykit/hkerr"
	"github.com/jsphweid/harmonykit/pitch"
	"github.com/jsphweid/harmonykit/transpose"
)

// Tone is one realized chord tone. RelativeOctave counts octaves above the
// root's octave, with octaves changing at C.
type Tone struct {
	Pitch          pitch.SemiTonesPitch
	RelativeOctave int
}

// Contents is a harmony realized against a concrete root, tones listed from
// the bass up.
type Contents struct {
	Root      pitch.SemiTonesPitch
	Kind      Kind
	Inversion int
	Tones     []Tone
}

// RealizeStructure resolves every interval of s against root.
func RealizeStructure(s Structure, root pitch.SemiTonesPitch) ([]Tone, error) {
	base := pitch.SemiTonesPitchAndOctave{Pitch: root}
	tones := make([]Tone, 0, s.Size())
	for _, h := range s.Intervals {
		p, err := transpose.NoteAtHarmonyInterval(h, base)
		if err != nil {
			return nil, err
		}
		tones = append(tones, Tone{Pitch: p.Pitch, RelativeOctave: p.Octave})
	}
	return tones, nil
}

// Realize expands k in root position above root.
func Realize(k Kind, root pitch.SemiTonesPitch) (Contents, error) {
	return RealizeInversion(k, root, 0)
}

func RealizeInversion(k Kind, root pitch.SemiTonesPitch, inversion int) (Contents, error) {
	s, err := Build(k)
	if err != nil {
		return Contents{}, err
	}
	s, err = Invert(s, inversion)
	if err != nil {
		return Contents{}, err
	}
	tones, err := RealizeStructure(s, root)
	if err != nil {
		return Contents{}, err
	}
	return Contents{Root: root, Kind: k, Inversion: inversion, Tones: tones}, nil
}

// RealizeQuarterTones expands k above a quarter-tones root, such as a
// semi-sharp, that has no semitones spelling.
func RealizeQuarterTones(k Kind, root pitch.QuarterTonesPitch) ([]pitch.QuarterTonesPitch, error) {
	s, err := Build(k)
	if err != nil {
		return nil, err
	}
	res := make([]pitch.QuarterTonesPitch, 0, s.Size())
	for _, h := range s.Intervals {
		q, err := transpose.QuarterTonesNoteAtInterval(h.Interval, root)
		if err != nil {
			return nil, err
		}
		res = append(res, q)
	}
	return res, nil
}

// BassPitchForInversion is the pitch that sounds lowest when k above root is
// played in the given inversion.
func BassPitchForInversion(k Kind, root pitch.SemiTonesPitch, inversion int) (pitch.SemiTonesPitch, error) {
	s, err := Build(k)
	if err != nil {
		return pitch.NoSemiTonesPitch, err
	}
	h, err := BassIntervalForInversion(s, inversion)
	if err != nil {
		return pitch.NoSemiTonesPitch, err
	}
	return transpose.NoteAtInterval(h.Interval, root)
}

func (c Contents) Pitches() []pitch.SemiTonesPitch {
	res := make([]pitch.SemiTonesPitch, 0, len(c.Tones))
	for _, t := range c.Tones {
		res = append(res, t.Pitch)
	}
	return res
}

func (c Contents) BassPitch() pitch.SemiTonesPitch {
	if len(c.Tones) == 0 {
		return pitch.NoSemiTonesPitch
	}
	return c.Tones[0].Pitch
}

// MIDINotes places the root's octave at baseOctave, so 4 puts a C root on 60.
// It fails when a tone lands outside 0..127.
func (c Contents) MIDINotes(baseOctave int) ([]uint8, error) {
	res := make([]uint8, 0, len(c.Tones))
	for _, t := range c.Tones {
		p := pitch.SemiTonesPitchAndOctave{Pitch: t.Pitch, Octave: baseOctave + t.RelativeOctave}
		n := p.MIDINote()
		if n < 0 || n > 127 {
			return nil, hkerr.New("midi notes", p, hkerr.ErrNoteOutOfRange)
		}
		res = append(res, uint8(n))
	}
	return res, nil
}

func (c Contents) Names(lang pitch.Language) []string {
	res := make([]string, 0, len(c.Tones))
	for _, t := range c.Tones {
		res = append(res, t.Pitch.Name(lang))
	}
	return res
}
