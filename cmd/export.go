package cmd

import (
	"github.com/google/uuid"
	"github.com/jsphweid/harmonykit/constants"
	"github.com/jsphweid/harmonykit/midi"
	"github.com/jsphweid/harmonykit/sample"
	"github.com/spf13/cobra"
)

var (
	exportOut      string
	exportOctave   int
	exportArpeggio bool
)

func init() {
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "file to write, a random name when empty")
	exportCmd.Flags().IntVar(&exportOctave, "octave", constants.MIDIBaseOctave, "octave of the root")
	exportCmd.Flags().BoolVar(&exportArpeggio, "arpeggio", false, "play the tones one by one before the chord")
	rootCmd.AddCommand(exportCmd)
}

var exportCmd = &cobra.Command{
	Use:   "export <root> <harmony> [inversion]",
	Short: "Writes a harmony to a MIDI file",
	Long:  `Writes one inversion of a harmony to a standard MIDI file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		lang, err := language()
		if err != nil {
			return err
		}

		c, err := realizeRequest(args, lang)
		if err != nil {
			return err
		}

		out := exportOut
		if out == "" {
			out = uuid.New().String() + ".mid"
		}
		s, err := sample.Create(c, exportOctave, exportArpeggio)
		if err != nil {
			return err
		}
		return midi.WriteMidiFile(out, s)
	},
}
