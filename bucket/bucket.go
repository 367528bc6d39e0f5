package bucket

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"

	"github.com/jsphweid/harmonykit/chord"
	"github.com/jsphweid/harmonykit/constants"
	"github.com/jsphweid/harmonykit/model"
	"github.com/jsphweid/harmonykit/util"
	"github.com/pkg/errors"
)

var bucketName = regexp.MustCompile(`^\d\d\.dat$`)

// PathFor is the bucket that holds every chord with the given bass class.
func PathFor(dir string, bass uint8) string {
	return filepath.Join(dir, fmt.Sprintf("%02d.dat", bass))
}

func PutChord(dir string, c model.Chord) error {
	if len(c.Notes) == 0 || len(c.Notes) > 12 {
		util.Tracef("not bucketing chord with %d pitch classes", len(c.Notes))
		return nil
	}

	bytes := chord.Serialize(c)
	filename := PathFor(dir, c.Notes[0])
	f, err := os.OpenFile(filename, os.O_APPEND|os.O_WRONLY|os.O_CREATE, 0666)
	if err != nil {
		return errors.Wrap(err, "could not open bucket")
	}
	defer f.Close()

	_, err = f.Write(bytes[:])
	return errors.Wrap(err, "could not write chord to bucket")
}

// ProcessAll appends chords to their buckets in dir.
func ProcessAll(dir string, chords []model.Chord) error {
	for i, c := range chords {
		if (i+1)%500 == 0 || i+1 == len(chords) {
			fmt.Printf("Bucketed %v of %v chords\n", i+1, len(chords))
		}
		if err := PutChord(dir, c); err != nil {
			return err
		}
	}
	return nil
}

// Paths lists the bucket files in dir in name order.
func Paths(dir string) ([]string, error) {
	files, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.Wrap(err, "could not read index dir")
	}

	var res []string
	for _, file := range files {
		if bucketName.MatchString(file.Name()) {
			res = append(res, filepath.Join(dir, file.Name()))
		}
	}
	return res, nil
}

func DeleteAll(dir string) error {
	paths, err := Paths(dir)
	if err != nil {
		return err
	}
	for _, path := range paths {
		if err := os.Remove(path); err != nil {
			return errors.Wrap(err, "could not delete bucket")
		}
	}
	return nil
}

func ReadChords(path string) []model.Chord {
	var res []model.Chord
	bucketFile := util.OpenFileOrPanic(path)
	defer bucketFile.Close()

	bucketReader := bufio.NewReader(bucketFile)
	for {
		buf := make([]byte, constants.ChordSize)
		_, err := io.ReadFull(bucketReader, buf)
		if err == io.EOF {
			break
		}
		if err != nil {
			panic("Could not read chord from file: " + err.Error())
		}
		res = append(res, chord.Deserialize(buf))
	}
	return res
}
