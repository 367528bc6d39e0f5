package cmd

import (
	"fmt"
	"strings"

	"github.com/jsphweid/harmonykit/harmony"
	"github.com/jsphweid/harmonykit/interval"
	"github.com/jsphweid/harmonykit/pitch"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(detailCmd)
	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(structuresCmd)
	rootCmd.AddCommand(contentsCmd)
	rootCmd.AddCommand(namesCmd)
}

var detailCmd = &cobra.Command{
	Use:     "detail <root> <harmony>",
	Short:   "Shows a harmony in every inversion",
	Long:    `Shows the intervals and notes of a harmony such as "c maj7" in every inversion.`,
	Example: `  harmonykit detail bes dom9
  harmonykit -l english detail "bf dom9"`,
	RunE: func(cmd *cobra.Command, args []string) error {
		lang, err := language()
		if err != nil {
			return err
		}
		root, k, err := parseDetailRequest(args, lang)
		if err != nil {
			return err
		}
		return harmony.PrintDetails(cmd.OutOrStdout(), root, k, lang)
	},
}

var analyzeCmd = &cobra.Command{
	Use:   "analyze <root> <harmony> <inversion>",
	Short: "Shows the intervals between the tones of one inversion",
	Long:  `Realizes one inversion of a harmony and names the interval between every pair of its tones.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		lang, err := language()
		if err != nil {
			return err
		}
		root, k, inversion, err := parseAnalysisRequest(args, lang)
		if err != nil {
			return err
		}
		return harmony.PrintAnalysis(cmd.OutOrStdout(), root, k, inversion, lang)
	},
}

var structuresCmd = &cobra.Command{
	Use:   "structures",
	Short: "Lists every harmony structure",
	Long:  `Lists the interval stack of every known harmony in every inversion.`,
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		harmony.PrintAllStructures(cmd.OutOrStdout())
	},
}

var contentsCmd = &cobra.Command{
	Use:   "contents [root]",
	Short: "Realizes every harmony above a root",
	Long:  `Realizes every known harmony above root, or above every supported root when none is given.`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		lang, err := language()
		if err != nil {
			return err
		}
		if len(args) == 0 {
			harmony.PrintAllKnownContents(cmd.OutOrStdout(), lang)
			return nil
		}
		root, err := pitch.ParseSemiTonesPitch(args[0], lang)
		if err != nil {
			return err
		}
		harmony.PrintAllContents(cmd.OutOrStdout(), root, lang)
		return nil
	},
}

var namesCmd = &cobra.Command{
	Use:   "names",
	Short: "Lists the accepted names",
	Long:  `Lists the languages, the pitch names of the selected language, the harmony names and the interval names.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		lang, err := language()
		if err != nil {
			return err
		}
		w := cmd.OutOrStdout()

		var languages []string
		for _, l := range pitch.Languages() {
			languages = append(languages, l.String())
		}
		fmt.Fprintf(w, "languages: %s\n", strings.Join(languages, " "))
		fmt.Fprintf(w, "pitches (%v): %s\n", lang, strings.Join(pitch.PitchNames(lang), " "))

		fmt.Fprintln(w, "harmonies:")
		for _, k := range harmony.Kinds() {
			fmt.Fprintf(w, "  %-12s %-40s %s\n", k.ShortName(), k, k.JazzName())
		}

		fmt.Fprintln(w, "intervals:")
		for _, i := range interval.All() {
			fmt.Fprintf(w, "  %-6s %s\n", i.Short(), i)
		}
		return nil
	},
}
