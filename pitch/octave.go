package pitch

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/jsphweid/harmonykit/hkerr"
)

// Octave of a LilyPond name with no ' or , marks: c is C3, c' is middle C.
const DefaultOctave = 3

var pitchAndOctaveRegexp = regexp.MustCompile(`^([[:lower:]]+)([,']*)$`)

type SemiTonesPitchAndOctave struct {
	Pitch  SemiTonesPitch
	Octave int
}

type QuarterTonesPitchAndOctave struct {
	Pitch  QuarterTonesPitch
	Octave int
}

func parseOctaveMarks(input string) (string, int, error) {
	m := pitchAndOctaveRegexp.FindStringSubmatch(input)
	if m == nil {
		return "", 0, hkerr.New("parse pitch and octave", input, hkerr.ErrUnknownPitchName)
	}
	octave := DefaultOctave + strings.Count(m[2], "'") - strings.Count(m[2], ",")
	return m[1], octave, nil
}

func octaveMarks(octave int) string {
	switch {
	case octave > DefaultOctave:
		return strings.Repeat("'", octave-DefaultOctave)
	case octave < DefaultOctave:
		return strings.Repeat(",", DefaultOctave-octave)
	}
	return ""
}

// ParseSemiTonesPitchAndOctave reads names such as "bes,," or "cis'".
func ParseSemiTonesPitchAndOctave(input string, lang Language) (SemiTonesPitchAndOctave, error) {
	name, octave, err := parseOctaveMarks(input)
	if err != nil {
		return SemiTonesPitchAndOctave{}, err
	}
	p, err := ParseSemiTonesPitch(name, lang)
	if err != nil {
		return SemiTonesPitchAndOctave{}, err
	}
	return SemiTonesPitchAndOctave{Pitch: p, Octave: octave}, nil
}

func (p SemiTonesPitchAndOctave) IncrementOctave() SemiTonesPitchAndOctave {
	return SemiTonesPitchAndOctave{Pitch: p.Pitch, Octave: p.Octave + 1}
}

func (p SemiTonesPitchAndOctave) DecrementOctave() SemiTonesPitchAndOctave {
	return SemiTonesPitchAndOctave{Pitch: p.Pitch, Octave: p.Octave - 1}
}

// MIDINote uses C4 = 60. The octave belongs to the letter, so C flat 4 is 59
// and B sharp 3 is 60.
func (p SemiTonesPitchAndOctave) MIDINote() int {
	return (p.Octave+1)*12 + p.Pitch.Semitones()
}

func (p SemiTonesPitchAndOctave) Name(lang Language) string {
	return p.Pitch.Name(lang) + octaveMarks(p.Octave)
}

func (p SemiTonesPitchAndOctave) String() string {
	return fmt.Sprintf("%v%d", p.Pitch, p.Octave)
}

func ParseQuarterTonesPitchAndOctave(input string, lang Language) (QuarterTonesPitchAndOctave, error) {
	name, octave, err := parseOctaveMarks(input)
	if err != nil {
		return QuarterTonesPitchAndOctave{}, err
	}
	p, err := ParseQuarterTonesPitch(name, lang)
	if err != nil {
		return QuarterTonesPitchAndOctave{}, err
	}
	return QuarterTonesPitchAndOctave{Pitch: p, Octave: octave}, nil
}

func (p QuarterTonesPitchAndOctave) IncrementOctave() QuarterTonesPitchAndOctave {
	return QuarterTonesPitchAndOctave{Pitch: p.Pitch, Octave: p.Octave + 1}
}

func (p QuarterTonesPitchAndOctave) DecrementOctave() QuarterTonesPitchAndOctave {
	return QuarterTonesPitchAndOctave{Pitch: p.Pitch, Octave: p.Octave - 1}
}

// QuarterTones is the height in quarter tones above C0.
func (p QuarterTonesPitchAndOctave) QuarterTones() int {
	return p.Octave*24 + p.Pitch.QuarterTones()
}

func (p QuarterTonesPitchAndOctave) Name(lang Language) string {
	return p.Pitch.Name(lang) + octaveMarks(p.Octave)
}

func (p QuarterTonesPitchAndOctave) String() string {
	return fmt.Sprintf("%v%d", p.Pitch, p.Octave)
}
