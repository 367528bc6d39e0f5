package pitch

import (
	"github.com/jsphweid/harmonykit/hkerr"
)

// QuarterTonesPitch is the finest spelling: a letter with any of the eleven
// alterations, or one of the rest/skip sentinels.
type QuarterTonesPitch int

const (
	NoQuarterTonesPitch QuarterTonesPitch = iota
	Rest
	Skip

	QATripleFlat
	QADoubleFlat
	QASesquiFlat
	QAFlat
	QASemiFlat
	QANatural
	QASemiSharp
	QASharp
	QASesquiSharp
	QADoubleSharp
	QATripleSharp

	QBTripleFlat
	QBDoubleFlat
	QBSesquiFlat
	QBFlat
	QBSemiFlat
	QBNatural
	QBSemiSharp
	QBSharp
	QBSesquiSharp
	QBDoubleSharp
	QBTripleSharp

	QCTripleFlat
	QCDoubleFlat
	QCSesquiFlat
	QCFlat
	QCSemiFlat
	QCNatural
	QCSemiSharp
	QCSharp
	QCSesquiSharp
	QCDoubleSharp
	QCTripleSharp

	QDTripleFlat
	QDDoubleFlat
	QDSesquiFlat
	QDFlat
	QDSemiFlat
	QDNatural
	QDSemiSharp
	QDSharp
	QDSesquiSharp
	QDDoubleSharp
	QDTripleSharp

	QETripleFlat
	QEDoubleFlat
	QESesquiFlat
	QEFlat
	QESemiFlat
	QENatural
	QESemiSharp
	QESharp
	QESesquiSharp
	QEDoubleSharp
	QETripleSharp

	QFTripleFlat
	QFDoubleFlat
	QFSesquiFlat
	QFFlat
	QFSemiFlat
	QFNatural
	QFSemiSharp
	QFSharp
	QFSesquiSharp
	QFDoubleSharp
	QFTripleSharp

	QGTripleFlat
	QGDoubleFlat
	QGSesquiFlat
	QGFlat
	QGSemiFlat
	QGNatural
	QGSemiSharp
	QGSharp
	QGSesquiSharp
	QGDoubleSharp
	QGTripleSharp
)

const alterationsPerLetter = 11

// SemiTonesPitch is the semitone-resolution spelling.
type SemiTonesPitch int

const (
	NoSemiTonesPitch SemiTonesPitch = iota

	CTripleFlat
	CDoubleFlat
	CFlat
	CNatural
	CSharp
	CDoubleSharp
	CTripleSharp

	DTripleFlat
	DDoubleFlat
	DFlat
	DNatural
	DSharp
	DDoubleSharp
	DTripleSharp

	ETripleFlat
	EDoubleFlat
	EFlat
	ENatural
	ESharp
	EDoubleSharp
	ETripleSharp

	FTripleFlat
	FDoubleFlat
	FFlat
	FNatural
	FSharp
	FDoubleSharp
	FTripleSharp

	GTripleFlat
	GDoubleFlat
	GFlat
	GNatural
	GSharp
	GDoubleSharp
	GTripleSharp

	ATripleFlat
	ADoubleFlat
	AFlat
	ANatural
	ASharp
	ADoubleSharp
	ATripleSharp

	BTripleFlat
	BDoubleFlat
	BFlat
	BNatural
	BSharp
	BDoubleSharp
	BTripleSharp
)

const semiTonesAlterationsPerLetter = 7

// QuarterTonesPitches lists every spelled quarter-tones pitch in declaration order.
func QuarterTonesPitches() []QuarterTonesPitch {
	res := make([]QuarterTonesPitch, 0, QGTripleSharp-QATripleFlat+1)
	for q := QATripleFlat; q <= QGTripleSharp; q++ {
		res = append(res, q)
	}
	return res
}

// SemiTonesPitches lists every spelled semitones pitch in declaration order.
func SemiTonesPitches() []SemiTonesPitch {
	res := make([]SemiTonesPitch, 0, BTripleSharp)
	for s := CTripleFlat; s <= BTripleSharp; s++ {
		res = append(res, s)
	}
	return res
}

func (q QuarterTonesPitch) IsPitch() bool {
	return q >= QATripleFlat && q <= QGTripleSharp
}

func (s SemiTonesPitch) IsPitch() bool {
	return s >= CTripleFlat && s <= BTripleSharp
}

// QuarterTonesPitchFrom combines a letter and an alteration.
func QuarterTonesPitchFrom(d DiatonicPitch, a Alteration) (QuarterTonesPitch, error) {
	if !a.valid() {
		return NoQuarterTonesPitch, hkerr.New("quarter-tones pitch from diatonic", a, hkerr.ErrInvalidAlteration)
	}
	if d < A || d > G {
		return NoQuarterTonesPitch, hkerr.New("quarter-tones pitch from diatonic", d, hkerr.ErrNotAPitch)
	}
	return QATripleFlat + QuarterTonesPitch(int(d-A)*alterationsPerLetter+int(a-TripleFlat)), nil
}

// DiatonicAndAlteration splits q into its letter and alteration.
func (q QuarterTonesPitch) DiatonicAndAlteration() (DiatonicPitch, Alteration, error) {
	if !q.IsPitch() {
		return DiatonicNone, AlterationNone, hkerr.New("diatonic and alteration", q, hkerr.ErrNotAPitch)
	}
	offset := int(q - QATripleFlat)
	return A + DiatonicPitch(offset/alterationsPerLetter), TripleFlat + Alteration(offset%alterationsPerLetter), nil
}

func (q QuarterTonesPitch) Diatonic() DiatonicPitch {
	d, _, _ := q.DiatonicAndAlteration()
	return d
}

func (q QuarterTonesPitch) Alteration() Alteration {
	_, a, _ := q.DiatonicAndAlteration()
	return a
}

// SemiTones drops to semitone resolution. It fails for the semi- and
// sesqui- alterations, which have no semitones spelling.
func (q QuarterTonesPitch) SemiTones() (SemiTonesPitch, error) {
	d, a, err := q.DiatonicAndAlteration()
	if err != nil {
		return NoSemiTonesPitch, err
	}
	if a.IsQuarterToneOnly() {
		return NoSemiTonesPitch, hkerr.New("semitones pitch from quarter-tones pitch", q, hkerr.ErrQuarterToneOnly)
	}
	return SemiTonesPitchFrom(d, a)
}

// QuarterTones returns the height above C natural in quarter tones. The
// result is outside 0..23 for spellings such as C flat or B sharp.
func (q QuarterTonesPitch) QuarterTones() int {
	d, a, err := q.DiatonicAndAlteration()
	if err != nil {
		return 0
	}
	return 2*d.NaturalSemitones() + a.QuarterTones()
}

func (q QuarterTonesPitch) String() string {
	switch {
	case q == Rest:
		return "Rest"
	case q == Skip:
		return "Skip"
	case !q.IsPitch():
		return "NoQuarterTonesPitch"
	}
	d, a, _ := q.DiatonicAndAlteration()
	return d.String() + "_" + capitalize(a.String())
}

// SemiTonesPitchFrom combines a letter and an integer-semitone alteration.
func SemiTonesPitchFrom(d DiatonicPitch, a Alteration) (SemiTonesPitch, error) {
	if !a.valid() {
		return NoSemiTonesPitch, hkerr.New("semitones pitch from diatonic", a, hkerr.ErrInvalidAlteration)
	}
	if a.IsQuarterToneOnly() {
		return NoSemiTonesPitch, hkerr.New("semitones pitch from diatonic", a, hkerr.ErrQuarterToneOnly)
	}
	steps := d.StepsFromC()
	if steps < 0 {
		return NoSemiTonesPitch, hkerr.New("semitones pitch from diatonic", d, hkerr.ErrNotAPitch)
	}
	semis, _ := a.Semitones()
	return CTripleFlat + SemiTonesPitch(steps*semiTonesAlterationsPerLetter+semis+3), nil
}

func (s SemiTonesPitch) Diatonic() DiatonicPitch {
	if !s.IsPitch() {
		return DiatonicNone
	}
	return DiatonicFromStepsFromC(int(s-CTripleFlat) / semiTonesAlterationsPerLetter)
}

func (s SemiTonesPitch) Alteration() Alteration {
	if !s.IsPitch() {
		return AlterationNone
	}
	a, _ := AlterationFromSemitones(int(s-CTripleFlat)%semiTonesAlterationsPerLetter - 3)
	return a
}

// AlterationSemitones is the signed accidental, -3..3.
func (s SemiTonesPitch) AlterationSemitones() int {
	semis, _ := s.Alteration().Semitones()
	return semis
}

// QuarterTones never fails for a spelled pitch.
func (s SemiTonesPitch) QuarterTones() QuarterTonesPitch {
	if !s.IsPitch() {
		return NoQuarterTonesPitch
	}
	q, _ := QuarterTonesPitchFrom(s.Diatonic(), s.Alteration())
	return q
}

// Semitones returns the height above C natural, -3..14.
func (s SemiTonesPitch) Semitones() int {
	if !s.IsPitch() {
		return 0
	}
	return s.Diatonic().NaturalSemitones() + s.AlterationSemitones()
}

// PitchClass is the height reduced to 0..11.
func (s SemiTonesPitch) PitchClass() int {
	return ((s.Semitones() % 12) + 12) % 12
}

func (s SemiTonesPitch) String() string {
	if !s.IsPitch() {
		return "NoSemiTonesPitch"
	}
	return s.Diatonic().String() + "_" + capitalize(s.Alteration().String())
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return string(s[0]-'a'+'A') + s[1:]
}
