package cmd

import (
	"fmt"
	"os"

	"github.com/jsphweid/harmonykit/constants"
	"github.com/jsphweid/harmonykit/pitch"
	"github.com/jsphweid/harmonykit/styles"
	"github.com/jsphweid/harmonykit/util"
	"github.com/spf13/cobra"
)

var (
	languageName string
	traceOn      bool
)

var rootCmd = &cobra.Command{
	Use:   "harmonykit",
	Short: "Pitches, intervals and harmonies",
	Long: `harmonykit spells pitches in several naming languages, does interval
arithmetic and expands harmony names such as "c maj7" into their notes.
It can also index every known harmony by pitch classes and identify the
harmonies sounding in MIDI files, over HTTP or from a live MIDI port.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		util.SetTrace(traceOn || constants.TraceEnabled())
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&languageName, "language", "l", constants.GetLanguage(), "pitch names language")
	rootCmd.PersistentFlags().BoolVar(&traceOn, "trace", false, "log skipped entries and table building")
}

func language() (pitch.Language, error) {
	return pitch.ParseLanguage(languageName)
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, styles.RenderError(err.Error()))
		os.Exit(1)
	}
}
