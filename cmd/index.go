package cmd

import (
	"fmt"

	"github.com/jsphweid/harmonykit/bucket"
	"github.com/jsphweid/harmonykit/chord"
	"github.com/jsphweid/harmonykit/chunk"
	"github.com/jsphweid/harmonykit/constants"
	"github.com/jsphweid/harmonykit/db"
	"github.com/jsphweid/harmonykit/util"
	"github.com/spf13/cobra"
)

var (
	indexDynamoDB    bool
	indexKeepBuckets bool
)

func init() {
	indexCmd.Flags().BoolVar(&indexDynamoDB, "dynamodb", false, "also mirror the index to DynamoDB")
	indexCmd.Flags().BoolVar(&indexKeepBuckets, "keep-buckets", true, "keep the bucket files for the report command")
	rootCmd.AddCommand(indexCmd)
}

var indexCmd = &cobra.Command{
	Use:   "index",
	Short: "Creates index",
	Long: `Realizes every harmony in every inversion above every supported root and
indexes them by pitch classes, bass first, under HARMONYKIT_INDEX_PATH.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := Index(constants.GetIndexDir(), indexKeepBuckets, indexDynamoDB)
		return err
	},
}

// Index rebuilds the index in dir and returns the number of harmonies in it.
func Index(dir string, keepBuckets bool, mirror bool) (int, error) {
	if err := util.RecreateOutputDir(dir); err != nil {
		return 0, err
	}
	chords := chord.All()
	fmt.Printf("Indexing %v harmonies\n", len(chords))
	if _, err := chunk.Build(dir, chords, constants.GetChunkSize()); err != nil {
		return 0, err
	}
	if !keepBuckets {
		if err := bucket.DeleteAll(dir); err != nil {
			return 0, err
		}
	}

	if mirror {
		client, err := db.New(constants.GetDynamoDBEndpoint(), constants.GetDynamoDBRegion(), constants.GetDynamoDBTable())
		if err != nil {
			return 0, err
		}
		if err := client.EnsureTable(); err != nil {
			return 0, err
		}
		if err := client.PutChords(chords); err != nil {
			return 0, err
		}
	}
	return len(chords), nil
}
