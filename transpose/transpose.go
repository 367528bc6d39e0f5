package transpose

import (
	"sync"

	"github.com/jsphweid/harmonykit/hkerr"
	"github.com/jsphweid/harmonykit/interval"
	"github.com/jsphweid/harmonykit/pitch"
	"github.com/jsphweid/harmonykit/util"
)

type semiTonesNote struct {
	pitch   pitch.SemiTonesPitch
	octaves int
	ok      bool
}

type quarterTonesNote struct {
	pitch   pitch.QuarterTonesPitch
	octaves int
	ok      bool
}

var (
	tablesOnce        sync.Once
	semiTonesTable    [pitch.BTripleSharp + 1][interval.AugmentedThirteenth + 1]semiTonesNote
	quarterTonesTable [pitch.QGTripleSharp + 1][interval.AugmentedThirteenth + 1]quarterTonesNote
)

// letterAbove moves steps letters up from root and reports how many octave
// boundaries (at C) were crossed.
func letterAbove(root pitch.DiatonicPitch, steps int) (pitch.DiatonicPitch, int) {
	raw := root.StepsFromC() + steps
	return pitch.DiatonicFromStepsFromC(raw), raw / 7
}

func buildTables() {
	for _, root := range pitch.SemiTonesPitches() {
		if !SupportedRoot(root) {
			continue
		}
		for _, i := range interval.All() {
			d, octaves := letterAbove(root.Diatonic(), i.Number()-1)
			alter := root.Semitones() + i.Semitones() - (d.NaturalSemitones() + 12*octaves)
			a, ok := pitch.AlterationFromSemitones(alter)
			if !ok {
				util.Tracef("no semitones spelling for %v above %v", i, root)
				continue
			}
			p, err := pitch.SemiTonesPitchFrom(d, a)
			if err != nil {
				continue
			}
			semiTonesTable[root][i] = semiTonesNote{pitch: p, octaves: octaves, ok: true}
		}
	}

	for _, root := range pitch.QuarterTonesPitches() {
		if !SupportedQuarterTonesRoot(root) {
			continue
		}
		for _, i := range interval.All() {
			d, octaves := letterAbove(root.Diatonic(), i.Number()-1)
			units := root.QuarterTones() + 2*i.Semitones() - 2*(d.NaturalSemitones()+12*octaves)
			a, ok := pitch.AlterationFromQuarterTones(units)
			if !ok {
				util.Tracef("no quarter-tones spelling for %v above %v", i, root)
				continue
			}
			p, err := pitch.QuarterTonesPitchFrom(d, a)
			if err != nil {
				continue
			}
			quarterTonesTable[root][i] = quarterTonesNote{pitch: p, octaves: octaves, ok: true}
		}
	}
}

// SupportedRoot reports whether intervals can be computed from s: flats,
// naturals and sharps are supported, double and triple accidentals are not.
func SupportedRoot(s pitch.SemiTonesPitch) bool {
	switch s.Alteration() {
	case pitch.Flat, pitch.Natural, pitch.Sharp:
		return true
	}
	return false
}

// SupportedQuarterTonesRoot additionally accepts semi-flats and semi-sharps.
func SupportedQuarterTonesRoot(q pitch.QuarterTonesPitch) bool {
	switch q.Alteration() {
	case pitch.Flat, pitch.SemiFlat, pitch.Natural, pitch.SemiSharp, pitch.Sharp:
		return true
	}
	return false
}

func SupportedRoots() []pitch.SemiTonesPitch {
	var res []pitch.SemiTonesPitch
	for _, s := range pitch.SemiTonesPitches() {
		if SupportedRoot(s) {
			res = append(res, s)
		}
	}
	return res
}

// NoteAndOctaveAtInterval returns the pitch i above root and the number of
// octaves, counted at C, between root's octave and the result's.
func NoteAndOctaveAtInterval(i interval.Interval, root pitch.SemiTonesPitch) (pitch.SemiTonesPitch, int, error) {
	if !root.IsPitch() {
		return pitch.NoSemiTonesPitch, 0, hkerr.New("note at interval", root, hkerr.ErrNotAPitch)
	}
	if !SupportedRoot(root) {
		return pitch.NoSemiTonesPitch, 0, hkerr.New("note at interval", root, hkerr.ErrUnsupportedPitchForInterval)
	}
	if !i.Valid() {
		return pitch.NoSemiTonesPitch, 0, hkerr.New("note at interval", i, hkerr.ErrUnrepresentableInterval)
	}

	tablesOnce.Do(buildTables)
	n := semiTonesTable[root][i]
	if !n.ok {
		return pitch.NoSemiTonesPitch, 0, hkerr.New("note at interval", i.String()+" above "+root.String(), hkerr.ErrUnrepresentableInterval)
	}
	return n.pitch, n.octaves, nil
}

func NoteAtInterval(i interval.Interval, root pitch.SemiTonesPitch) (pitch.SemiTonesPitch, error) {
	p, _, err := NoteAndOctaveAtInterval(i, root)
	return p, err
}

// NoteAtHarmonyInterval places h above a root in a given octave.
func NoteAtHarmonyInterval(h interval.HarmonyInterval, root pitch.SemiTonesPitchAndOctave) (pitch.SemiTonesPitchAndOctave, error) {
	p, octaves, err := NoteAndOctaveAtInterval(h.Interval, root.Pitch)
	if err != nil {
		return pitch.SemiTonesPitchAndOctave{}, err
	}
	return pitch.SemiTonesPitchAndOctave{Pitch: p, Octave: root.Octave + octaves + h.RelativeOctave}, nil
}

func QuarterTonesNoteAndOctaveAtInterval(i interval.Interval, root pitch.QuarterTonesPitch) (pitch.QuarterTonesPitch, int, error) {
	if !root.IsPitch() {
		return pitch.NoQuarterTonesPitch, 0, hkerr.New("quarter-tones note at interval", root, hkerr.ErrNotAPitch)
	}
	if !SupportedQuarterTonesRoot(root) {
		return pitch.NoQuarterTonesPitch, 0, hkerr.New("quarter-tones note at interval", root, hkerr.ErrUnsupportedPitchForInterval)
	}
	if !i.Valid() {
		return pitch.NoQuarterTonesPitch, 0, hkerr.New("quarter-tones note at interval", i, hkerr.ErrUnrepresentableInterval)
	}

	tablesOnce.Do(buildTables)
	n := quarterTonesTable[root][i]
	if !n.ok {
		return pitch.NoQuarterTonesPitch, 0, hkerr.New("quarter-tones note at interval", i.String()+" above "+root.String(), hkerr.ErrUnrepresentableInterval)
	}
	return n.pitch, n.octaves, nil
}

func QuarterTonesNoteAtInterval(i interval.Interval, root pitch.QuarterTonesPitch) (pitch.QuarterTonesPitch, error) {
	p, _, err := QuarterTonesNoteAndOctaveAtInterval(i, root)
	return p, err
}

func below(a, b pitch.SemiTonesPitch) bool {
	if a.Semitones() != b.Semitones() {
		return a.Semitones() < b.Semitones()
	}
	return a.Diatonic().StepsFromC() <= b.Diatonic().StepsFromC()
}

// IntervalBetween is the interval from up to to, within one octave. The
// operands are ordered by sounding height; when to lies below from, the
// upward interval is computed the other way round and inverted.
func IntervalBetween(from, to pitch.SemiTonesPitch) (interval.Interval, error) {
	if !from.IsPitch() {
		return interval.NoInterval, hkerr.New("interval between", from, hkerr.ErrNotAPitch)
	}
	if !to.IsPitch() {
		return interval.NoInterval, hkerr.New("interval between", to, hkerr.ErrNotAPitch)
	}

	lo, hi := from, to
	swapped := false
	if !below(from, to) {
		lo, hi = to, from
		swapped = true
	}

	steps := hi.Diatonic().StepsFromC() - lo.Diatonic().StepsFromC()
	h, err := interval.Lookup(steps, hi.Semitones()-lo.Semitones())
	if err != nil {
		return interval.NoInterval, err
	}
	if swapped {
		return interval.Invert(h.Interval), nil
	}
	return h.Interval, nil
}
