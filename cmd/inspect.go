package cmd

import (
	"fmt"

	"github.com/jsphweid/harmonykit/chunk"
	"github.com/jsphweid/harmonykit/constants"
	"github.com/jsphweid/harmonykit/util"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(inspectCmd)
}

var inspectCmd = &cobra.Command{
	Use:   "inspect <chunk file>",
	Short: "Inspects a chunk",
	Long:  `Prints every key of a chunk file with the byte range and number of its records.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		inspect(cmd, args[0])
	},
}

func inspect(cmd *cobra.Command, path string) {
	f := util.OpenFileOrPanic(path)
	defer f.Close()

	index, _ := chunk.ReadIndexOrPanic(f)
	for _, key := range util.SortedKeys(index) {
		val := index[key]
		fmt.Fprintf(cmd.OutOrStdout(), "key: %v\n", key)
		fmt.Fprintf(cmd.OutOrStdout(), "val: %v (%v harmonies)\n", val, (val.End-val.Start)/constants.RecordSize)
	}
}
