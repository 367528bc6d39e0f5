package harmony

import (
	"fmt"
	"io"
	"strings"

	"github.com/jsphweid/harmonykit/interval"
	"github.com/jsphweid/harmonykit/pitch"
	"github.com/jsphweid/harmonykit/transpose"
	"github.com/jsphweid/harmonykit/util"
)

func joinTones(tones []Tone, lang pitch.Language) string {
	parts := make([]string, 0, len(tones))
	for _, t := range tones {
		p := pitch.SemiTonesPitchAndOctave{Pitch: t.Pitch, Octave: pitch.DefaultOctave + t.RelativeOctave}
		parts = append(parts, p.Name(lang))
	}
	return strings.Join(parts, " ")
}

// PrintAllStructures dumps every kind with all of its inversions.
func PrintAllStructures(w io.Writer) {
	for _, k := range Kinds() {
		s, err := Build(k)
		if err != nil {
			fmt.Fprintf(w, "%s: %v\n", k.ShortName(), err)
			continue
		}
		fmt.Fprintf(w, "%s (%s)\n", k.ShortName(), k)
		for inv := 0; inv < s.Size(); inv++ {
			inverted, err := Invert(s, inv)
			if err != nil {
				fmt.Fprintf(w, "  inversion %d: %v\n", inv, err)
				continue
			}
			fmt.Fprintf(w, "  inversion %d: %s\n", inv, inverted)
		}
	}
}

// PrintAllContents realizes every kind above root. Kinds that cannot be
// realized are reported and skipped.
func PrintAllContents(w io.Writer, root pitch.SemiTonesPitch, lang pitch.Language) {
	for _, k := range Kinds() {
		c, err := Realize(k, root)
		if err != nil {
			util.Tracef("skipping %v above %v: %v", k, root, err)
			fmt.Fprintf(w, "  %-12s %v\n", k.ShortName(), err)
			continue
		}
		fmt.Fprintf(w, "  %-12s %s\n", k.ShortName(), joinTones(c.Tones, lang))
	}
}

// PrintAllKnownContents runs PrintAllContents for every supported root.
func PrintAllKnownContents(w io.Writer, lang pitch.Language) {
	for _, root := range transpose.SupportedRoots() {
		fmt.Fprintf(w, "%s\n", root.Name(lang))
		PrintAllContents(w, root, lang)
	}
}

// PrintDetails shows the structure of k and its realization above root in
// every inversion.
func PrintDetails(w io.Writer, root pitch.SemiTonesPitch, k Kind, lang pitch.Language) error {
	s, err := Build(k)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "%s %s (%s)\n", root.Name(lang), k.ShortName(), k)
	for inv := 0; inv < s.Size(); inv++ {
		inverted, err := Invert(s, inv)
		if err != nil {
			return err
		}
		tones, err := RealizeStructure(inverted, root)
		if err != nil {
			return err
		}
		bass, err := BassIntervalForInversion(s, inv)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "  inversion %d\n", inv)
		fmt.Fprintf(w, "    intervals: %s\n", inverted)
		fmt.Fprintf(w, "    notes:     %s\n", joinTones(tones, lang))
		fmt.Fprintf(w, "    bass:      %s (%s)\n", tones[0].Pitch.Name(lang), bass.Interval)
	}
	return nil
}

// PrintAnalysis shows one inversion of k above root with the interval
// between every pair of its tones.
func PrintAnalysis(w io.Writer, root pitch.SemiTonesPitch, k Kind, inversion int, lang pitch.Language) error {
	s, err := Build(k)
	if err != nil {
		return err
	}
	inverted, err := Invert(s, inversion)
	if err != nil {
		return err
	}
	tones, err := RealizeStructure(inverted, root)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "%s %s, inversion %d\n", root.Name(lang), k.ShortName(), inversion)
	fmt.Fprintf(w, "  intervals: %s\n", inverted)
	fmt.Fprintf(w, "  notes:     %s\n", joinTones(tones, lang))

	for i := 0; i < len(tones); i++ {
		for j := i + 1; j < len(tones); j++ {
			lower, upper := tones[i].Pitch.Name(lang), tones[j].Pitch.Name(lang)
			diff, err := interval.Difference(inverted.Intervals[j], inverted.Intervals[i])
			if err != nil {
				fmt.Fprintf(w, "  %s -> %s: %v\n", lower, upper, err)
				continue
			}
			fmt.Fprintf(w, "  %s -> %s: %s (%s)\n", lower, upper, diff, diff.Short())
		}
	}
	return nil
}
