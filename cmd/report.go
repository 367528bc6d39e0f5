package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/jsphweid/harmonykit/bucket"
	"github.com/jsphweid/harmonykit/chunk"
	"github.com/jsphweid/harmonykit/constants"
	"github.com/jsphweid/harmonykit/util"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(reportCmd)
}

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Creates a report",
	Long:  `Compares the bucket files and the chunk files of the index.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return report(cmd.OutOrStdout(), constants.GetIndexDir())
	},
}

type bucketsReport struct {
	numChords int64
	numFiles  int64
	numBytes  int64
}

type chunksReport struct {
	avgIndexPercent float32
	indexPercents   []float32
	chordsInIndexes []int64
	numFiles        int64
	numChords       int64
	numKeys         int64
	totalBytes      int64
	dataBytes       int64
}

func analyzeBuckets(dir string) (bucketsReport, error) {
	var report bucketsReport

	paths, err := bucket.Paths(dir)
	if err != nil {
		return report, err
	}
	for _, path := range paths {
		stats, err := os.Stat(path)
		if err != nil {
			return report, errors.Wrap(err, "could not get file stats")
		}
		report.numFiles += 1
		report.numBytes += stats.Size()
		report.numChords += stats.Size() / constants.ChordSize
	}
	return report, nil
}

func analyzeChunks(dir string) (chunksReport, error) {
	var report chunksReport
	files, err := os.ReadDir(dir)
	if err != nil {
		return report, errors.Wrap(err, "could not read dir")
	}

	for _, file := range files {
		if !chunk.FilenamePattern.MatchString(file.Name()) {
			continue
		}
		report.numFiles += 1

		f, err := os.Open(filepath.Join(dir, file.Name()))
		if err != nil {
			return report, errors.Wrap(err, "could not open chunk")
		}
		index, indexLength, err := chunk.ReadIndex(f)
		if err != nil {
			f.Close()
			return report, err
		}
		stats, err := f.Stat()
		f.Close()
		if err != nil {
			return report, errors.Wrap(err, "could not get file stats")
		}

		var chordsInIndex int64
		for _, v := range index {
			chordsInIndex += int64(v.End-v.Start) / constants.RecordSize
		}
		report.chordsInIndexes = append(report.chordsInIndexes, chordsInIndex)
		report.numKeys += int64(len(index))

		report.totalBytes += stats.Size()
		report.indexPercents = append(report.indexPercents, float32(indexLength+4)/float32(stats.Size()))

		dataBytes := stats.Size() - int64(indexLength+4)
		report.dataBytes += dataBytes
		report.numChords += dataBytes / constants.RecordSize
	}
	if report.totalBytes > 0 {
		report.avgIndexPercent = float32(report.totalBytes-report.dataBytes) / float32(report.totalBytes)
	}
	return report, nil
}

func report(w io.Writer, dir string) error {
	bucketsReport, err := analyzeBuckets(dir)
	if err != nil {
		return err
	}
	chunksReport, err := analyzeChunks(dir)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "bucketsReport.numFiles: %v\n", bucketsReport.numFiles)
	fmt.Fprintf(w, "chunksReport.numFiles: %v\n", chunksReport.numFiles)
	fmt.Fprintf(w, "chunksReport.numKeys: %v\n", chunksReport.numKeys)
	if bucketsReport.numBytes > 0 {
		fmt.Fprintf(w, "dataBytes is this many times more than bucketed size (should be less than 1) %v\n", float32(chunksReport.dataBytes)/float32(bucketsReport.numBytes))
	}
	fmt.Fprintf(w, "chunksReport.avgIndexPercent: %v\n", chunksReport.avgIndexPercent)
	fmt.Fprintf(w, "chunksReport.chordsInIndexes: %v\n", chunksReport.chordsInIndexes)

	fmt.Fprintf(w, "bucketsReport.numChords: %v\n", bucketsReport.numChords)
	fmt.Fprintf(w, "chunksReport.numChords: %v\n", chunksReport.numChords)
	fmt.Fprintf(w, "numCalcedChords from indexes: %v\n", util.Sum(chunksReport.chordsInIndexes))

	fmt.Fprintf(w, "bucketsReport.numBytes: %v\n", bucketsReport.numBytes)
	fmt.Fprintf(w, "chunksReport.totalBytes: %v\n", chunksReport.totalBytes)
	return nil
}
