package interval

import "fmt"

// HarmonyInterval places an interval above a chord root, RelativeOctave
// octaves higher.
type HarmonyInterval struct {
	Interval       Interval
	RelativeOctave int
}

func New(i Interval) HarmonyInterval {
	return HarmonyInterval{Interval: i}
}

// Normalize reduces an interval wider than AugmentedSeventh by one octave and
// moves that octave into RelativeOctave.
func (h HarmonyInterval) Normalize() HarmonyInterval {
	if h.Interval > AugmentedSeventh && h.Interval.Valid() {
		return HarmonyInterval{Interval: h.Interval - octaveSpan, RelativeOctave: h.RelativeOctave + 1}
	}
	return h
}

// Denormalize undoes Normalize for RelativeOctave 1. Sevenths have no
// compound spelling and are returned unchanged.
func (h HarmonyInterval) Denormalize() HarmonyInterval {
	if h.RelativeOctave != 1 || !h.Interval.Valid() || h.Interval > AugmentedSeventh {
		return h
	}
	compound := h.Interval + octaveSpan
	if compound > AugmentedThirteenth {
		return h
	}
	return HarmonyInterval{Interval: compound, RelativeOctave: 0}
}

// Semitones is the distance above the root.
func (h HarmonyInterval) Semitones() int {
	return h.Interval.Semitones() + 12*h.RelativeOctave
}

// Steps is the diatonic distance above the root, 0 for a unison.
func (h HarmonyInterval) Steps() int {
	return h.Interval.Number() - 1 + 7*h.RelativeOctave
}

func (h HarmonyInterval) String() string {
	if h.RelativeOctave == 0 {
		return h.Interval.String()
	}
	return fmt.Sprintf("%s%+d", h.Interval, h.RelativeOctave)
}

// Short renders the chord-symbol form with octave marks, e.g. "3'" for a
// third one octave up.
func (h HarmonyInterval) Short() string {
	res := h.Interval.Short()
	for o := 0; o < h.RelativeOctave; o++ {
		res += "'"
	}
	for o := 0; o > h.RelativeOctave; o-- {
		res += ","
	}
	return res
}
