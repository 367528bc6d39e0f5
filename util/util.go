package util

import (
	"bytes"
	"encoding/gob"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"

	"github.com/jsphweid/harmonykit/constants"
	"github.com/pkg/errors"
	"golang.org/x/exp/constraints"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

var trace int32

func init() {
	SetTrace(constants.TraceEnabled())
}

func SetTrace(on bool) {
	var v int32
	if on {
		v = 1
	}
	atomic.StoreInt32(&trace, v)
}

func TraceOn() bool {
	return atomic.LoadInt32(&trace) == 1
}

// Tracef logs through the standard logger when tracing is on.
func Tracef(format string, args ...any) {
	if TraceOn() {
		log.Printf("trace: "+format, args...)
	}
}

// RecreateOutputDir wipes dir and creates it again, empty.
func RecreateOutputDir(dir string) error {
	if err := os.RemoveAll(dir); err != nil {
		return errors.Wrapf(err, "could not remove %v", dir)
	}
	return errors.Wrapf(os.MkdirAll(dir, 0777), "could not create %v", dir)
}

// GatherAllMidiPaths walks path for .mid/.midi files. A maxNum of 0 means
// no limit.
func GatherAllMidiPaths(path string, maxNum int) []string {
	var res []string
	walk := func(s string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			lower := strings.ToLower(s)
			if strings.HasSuffix(lower, ".mid") || strings.HasSuffix(lower, ".midi") {
				if maxNum == 0 || len(res) < maxNum {
					res = append(res, s)
				}
			}
		}
		return nil
	}
	if err := filepath.WalkDir(path, walk); err != nil {
		Tracef("walking %v stopped: %v", path, err)
	}
	return res
}

func SortedKeys[A constraints.Ordered, B any](m map[A]B) []A {
	keys := maps.Keys(m)
	slices.Sort(keys)
	return keys
}

func CreateBinary(filename string, data any) error {
	fmt.Printf("Creating binary for filename: %v\n", filename)
	buf := new(bytes.Buffer)
	if err := gob.NewEncoder(buf).Encode(data); err != nil {
		return errors.Wrapf(err, "could not encode %v", filename)
	}
	return errors.Wrapf(os.WriteFile(filename, buf.Bytes(), 0666), "write failed for %v", filename)
}

func ReadBinary[A any](path string) (A, error) {
	var data A
	f, err := os.Open(path)
	if err != nil {
		return data, errors.Wrap(err, "could not load binary file")
	}
	defer f.Close()

	if err := gob.NewDecoder(f).Decode(&data); err != nil {
		return data, errors.Wrapf(err, "could not decode %v", path)
	}
	return data, nil
}

func ReadBinaryOrPanic[A any](path string) A {
	data, err := ReadBinary[A](path)
	if err != nil {
		panic(err.Error())
	}
	return data
}

func OpenFileOrPanic(path string) *os.File {
	f, err := os.Open(path)
	if err != nil {
		panic("Couldn't read file: " + err.Error())
	}
	return f
}

func Min[A constraints.Integer](num1 A, num2 A) A {
	if num1 > num2 {
		return num2
	}
	return num1
}

func Sum[A constraints.Integer](nums []A) uint64 {
	var total uint64
	for _, v := range nums {
		total += uint64(v)
	}
	return total
}
