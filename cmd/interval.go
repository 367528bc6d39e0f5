package cmd

import (
	"fmt"

	"github.com/jsphweid/harmonykit/interval"
	"github.com/jsphweid/harmonykit/pitch"
	"github.com/jsphweid/harmonykit/transpose"
	"github.com/spf13/cobra"
)

func init() {
	intervalCmd.AddCommand(invertCmd)
	intervalCmd.AddCommand(sumCmd)
	intervalCmd.AddCommand(diffCmd)
	intervalCmd.AddCommand(betweenCmd)
	intervalCmd.AddCommand(transposeCmd)
	rootCmd.AddCommand(intervalCmd)
}

var intervalCmd = &cobra.Command{
	Use:   "interval",
	Short: "Interval arithmetic",
	Long:  `Interval arithmetic. Intervals are given by long name ("majorThird") or short name ("3", "b7", "#11").`,
}

func printInterval(cmd *cobra.Command, h interval.HarmonyInterval) {
	fmt.Fprintf(cmd.OutOrStdout(), "%s (%s, %d semitones)\n", h, h.Short(), h.Semitones())
}

var invertCmd = &cobra.Command{
	Use:   "invert <interval>",
	Short: "Inverts an interval",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		i, err := interval.Parse(args[0])
		if err != nil {
			return err
		}
		printInterval(cmd, interval.New(interval.Invert(i)))
		return nil
	},
}

func parseTwoIntervals(args []string) (interval.HarmonyInterval, interval.HarmonyInterval, error) {
	a, err := interval.Parse(args[0])
	if err != nil {
		return interval.HarmonyInterval{}, interval.HarmonyInterval{}, err
	}
	b, err := interval.Parse(args[1])
	if err != nil {
		return interval.HarmonyInterval{}, interval.HarmonyInterval{}, err
	}
	return interval.New(a), interval.New(b), nil
}

var sumCmd = &cobra.Command{
	Use:   "sum <interval> <interval>",
	Short: "Stacks two intervals",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, b, err := parseTwoIntervals(args)
		if err != nil {
			return err
		}
		h, err := interval.Sum(a, b)
		if err != nil {
			return err
		}
		printInterval(cmd, h)
		return nil
	},
}

var diffCmd = &cobra.Command{
	Use:   "diff <interval> <interval>",
	Short: "Distance between two intervals above the same root",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, b, err := parseTwoIntervals(args)
		if err != nil {
			return err
		}
		h, err := interval.Difference(a, b)
		if err != nil {
			return err
		}
		printInterval(cmd, h)
		return nil
	},
}

var betweenCmd = &cobra.Command{
	Use:   "between <pitch> <pitch>",
	Short: "Interval from one pitch up to another",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		lang, err := language()
		if err != nil {
			return err
		}
		from, err := pitch.ParseSemiTonesPitch(args[0], lang)
		if err != nil {
			return err
		}
		to, err := pitch.ParseSemiTonesPitch(args[1], lang)
		if err != nil {
			return err
		}
		i, err := transpose.IntervalBetween(from, to)
		if err != nil {
			return err
		}
		printInterval(cmd, interval.New(i))
		return nil
	},
}

var transposeCmd = &cobra.Command{
	Use:   "transpose <pitch> <interval>",
	Short: "Pitch at an interval above another",
	Long: `Pitch at an interval above another. The pitch may carry octave marks
("c'", "bes,"), and may be a quarter-tone pitch such as "cih".`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		lang, err := language()
		if err != nil {
			return err
		}
		i, err := interval.Parse(args[1])
		if err != nil {
			return err
		}

		p, err := pitch.ParseSemiTonesPitchAndOctave(args[0], lang)
		if err == nil {
			res, err := transpose.NoteAtHarmonyInterval(interval.New(i), p)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), res.Name(lang))
			return nil
		}

		q, qerr := pitch.ParseQuarterTonesPitchAndOctave(args[0], lang)
		if qerr != nil {
			return err
		}
		res, octaves, err := transpose.QuarterTonesNoteAndOctaveAtInterval(i, q.Pitch)
		if err != nil {
			return err
		}
		out := pitch.QuarterTonesPitchAndOctave{Pitch: res, Octave: q.Octave + octaves}
		fmt.Fprintln(cmd.OutOrStdout(), out.Name(lang))
		return nil
	},
}
