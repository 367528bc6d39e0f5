package cmd

import (
	"fmt"

	"github.com/jsphweid/harmonykit/chord"
	"github.com/jsphweid/harmonykit/constants"
	"github.com/jsphweid/harmonykit/db"
	"github.com/jsphweid/harmonykit/model"
	"github.com/spf13/cobra"
)

var lookupLocal bool

func init() {
	lookupCmd.Flags().BoolVar(&lookupLocal, "local", false, "read the chunk files instead of DynamoDB")
	rootCmd.AddCommand(lookupCmd)
}

var lookupCmd = &cobra.Command{
	Use:   "lookup <midi note>...",
	Short: "Names the harmonies formed by MIDI notes",
	Long: `Names the harmonies formed by a set of MIDI notes, the lowest being the
bass. Reads the DynamoDB mirror written by "index --dynamodb" unless --local
is given.`,
	Example: `  harmonykit lookup 52 60 67`,
	Args:    cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		lang, err := language()
		if err != nil {
			return err
		}
		notes, err := parseMidiNotes(args)
		if err != nil {
			return err
		}
		key := chord.CreateChordKey(notes)

		var lookup func(string) ([]model.Chord, error)
		if lookupLocal {
			ix, err := loadIndex()
			if err != nil {
				return err
			}
			lookup = ix.Find
		} else {
			client, err := db.New(constants.GetDynamoDBEndpoint(), constants.GetDynamoDBRegion(), constants.GetDynamoDBTable())
			if err != nil {
				return err
			}
			lookup = client.Lookup
		}

		matches, err := lookup(key)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%v: %s\n", key, formatMatches(matches, lang))
		return nil
	},
}
