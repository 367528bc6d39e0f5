package pitch

import (
	"math"

	"github.com/jsphweid/harmonykit/hkerr"
)

type DiatonicPitch int

const (
	DiatonicNone DiatonicPitch = iota
	A
	B
	C
	D
	E
	F
	G
)

var diatonicNames = [...]string{"NoDiatonicPitch", "A", "B", "C", "D", "E", "F", "G"}

// semitone height of each natural above C, indexed by StepsFromC
var naturalHeights = [7]int{0, 2, 4, 5, 7, 9, 11}

var diatonicsFromC = [7]DiatonicPitch{C, D, E, F, G, A, B}

func (d DiatonicPitch) String() string {
	if d < DiatonicNone || d > G {
		return diatonicNames[DiatonicNone]
	}
	return diatonicNames[d]
}

// StepsFromC is the letter's position in C D E F G A B, or -1 for DiatonicNone.
func (d DiatonicPitch) StepsFromC() int {
	switch d {
	case C:
		return 0
	case D:
		return 1
	case E:
		return 2
	case F:
		return 3
	case G:
		return 4
	case A:
		return 5
	case B:
		return 6
	}
	return -1
}

// DiatonicFromStepsFromC wraps steps into the octave.
func DiatonicFromStepsFromC(steps int) DiatonicPitch {
	return diatonicsFromC[((steps%7)+7)%7]
}

// NaturalSemitones is the height of the natural above C.
func (d DiatonicPitch) NaturalSemitones() int {
	steps := d.StepsFromC()
	if steps < 0 {
		return 0
	}
	return naturalHeights[steps]
}

type Alteration int

const (
	AlterationNone Alteration = iota
	TripleFlat
	DoubleFlat
	SesquiFlat
	Flat
	SemiFlat
	Natural
	SemiSharp
	Sharp
	SesquiSharp
	DoubleSharp
	TripleSharp
)

var alterationInfo = [...]struct {
	name         string
	quarterTones int
}{
	{"noAlteration", 0},
	{"tripleFlat", -6},
	{"doubleFlat", -4},
	{"sesquiFlat", -3},
	{"flat", -2},
	{"semiFlat", -1},
	{"natural", 0},
	{"semiSharp", 1},
	{"sharp", 2},
	{"sesquiSharp", 3},
	{"doubleSharp", 4},
	{"tripleSharp", 6},
}

// Alterations lists the concrete alterations from lowest to highest.
var Alterations = []Alteration{
	TripleFlat, DoubleFlat, SesquiFlat, Flat, SemiFlat, Natural,
	SemiSharp, Sharp, SesquiSharp, DoubleSharp, TripleSharp,
}

func (a Alteration) valid() bool {
	return a > AlterationNone && a <= TripleSharp
}

func (a Alteration) String() string {
	if !a.valid() {
		return alterationInfo[AlterationNone].name
	}
	return alterationInfo[a].name
}

// QuarterTones is the signed offset from natural in quarter tones.
func (a Alteration) QuarterTones() int {
	if !a.valid() {
		return 0
	}
	return alterationInfo[a].quarterTones
}

// IsQuarterToneOnly reports semi- and sesqui- alterations.
func (a Alteration) IsQuarterToneOnly() bool {
	return a.valid() && a.QuarterTones()%2 != 0
}

// Semitones is the offset in semitones; false for quarter-tone-only and unset
// alterations.
func (a Alteration) Semitones() (int, bool) {
	if !a.valid() || a.IsQuarterToneOnly() {
		return 0, false
	}
	return a.QuarterTones() / 2, true
}

func AlterationFromQuarterTones(units int) (Alteration, bool) {
	for _, a := range Alterations {
		if a.QuarterTones() == units {
			return a, true
		}
	}
	return AlterationNone, false
}

func AlterationFromSemitones(semis int) (Alteration, bool) {
	return AlterationFromQuarterTones(semis * 2)
}

// MusicXML is the value of a MusicXML <alter> element.
func (a Alteration) MusicXML() float64 {
	return float64(a.QuarterTones()) / 2
}

// AlterationFromMusicXML accepts 0, ±0.5, ±1, ±1.5, ±2 and ±3.
func AlterationFromMusicXML(alter float64) (Alteration, error) {
	units := alter * 2
	if units != math.Trunc(units) {
		return AlterationNone, hkerr.New("alteration from MusicXML", alter, hkerr.ErrInvalidMusicXMLAlter)
	}
	a, ok := AlterationFromQuarterTones(int(units))
	if !ok {
		return AlterationNone, hkerr.New("alteration from MusicXML", alter, hkerr.ErrInvalidMusicXMLAlter)
	}
	return a, nil
}
