package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jsphweid/harmonykit/chord"
	"github.com/jsphweid/harmonykit/chunk"
	"github.com/jsphweid/harmonykit/constants"
	"github.com/jsphweid/harmonykit/midi"
	"github.com/jsphweid/harmonykit/model"
	"github.com/jsphweid/harmonykit/pitch"
	"github.com/jsphweid/harmonykit/styles"
	"github.com/jsphweid/harmonykit/util"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var identifyMax int

func init() {
	identifyCmd.Flags().IntVarP(&identifyMax, "max", "n", 0, "stop after this many files, 0 for all")
	rootCmd.AddCommand(identifyCmd)
}

var identifyCmd = &cobra.Command{
	Use:   "identify <midi file or directory>",
	Short: "Names the harmonies sounding in MIDI files",
	Long:  `Names the harmonies sounding in MIDI files, using the index built by the index command.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		lang, err := language()
		if err != nil {
			return err
		}
		ix, err := loadIndex()
		if err != nil {
			return err
		}
		return identify(cmd.OutOrStdout(), ix, args[0], lang)
	},
}

func loadIndex() (*chunk.Index, error) {
	ix, err := chunk.Load(constants.GetIndexDir())
	return ix, errors.Wrap(err, "no usable index, run the index command first")
}

func formatMatches(chords []model.Chord, lang pitch.Language) string {
	if len(chords) == 0 {
		return styles.HintStyle.Render("no known harmony")
	}
	names := make([]string, 0, len(chords))
	for _, c := range chords {
		m := chord.Describe(c, lang)
		name := m.Name
		if m.Inversion > 0 {
			name += fmt.Sprintf("/%d", m.Inversion)
		}
		names = append(names, name)
	}
	return styles.MatchStyle.Render(strings.Join(names, ", "))
}

func identify(w io.Writer, ix *chunk.Index, path string, lang pitch.Language) error {
	info, err := os.Stat(path)
	if err != nil {
		return errors.Wrap(err, "could not read input")
	}
	paths := []string{path}
	if info.IsDir() {
		paths = util.GatherAllMidiPaths(path, identifyMax)
	}

	for i, p := range paths {
		fmt.Fprintln(w, styles.TitleStyle.Render(fmt.Sprintf("%v (%v of %v)", p, i+1, len(paths))))
		s, err := midi.ReadMidiFile(p)
		if err != nil {
			fmt.Fprintf(w, "Skipping %v because: %v\n", p, err)
			continue
		}
		chords, err := chord.GetChords(s)
		if err != nil {
			fmt.Fprintf(w, "Skipping %v because: %v\n", p, err)
			continue
		}
		for _, c := range chords {
			matches, err := ix.FindNotes(c.Notes)
			if err != nil {
				return err
			}
			fmt.Fprintf(w, "  %9.3fs  %-24v %s\n", float64(c.Offset)/1000, c.Notes, formatMatches(matches, lang))
		}
	}
	return nil
}
