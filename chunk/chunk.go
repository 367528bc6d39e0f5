package chunk

import (
	"bytes"
	"encoding/binary"
	"encoding/gob"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"

	"github.com/google/uuid"
	"github.com/jsphweid/harmonykit/bucket"
	"github.com/jsphweid/harmonykit/chord"
	"github.com/jsphweid/harmonykit/constants"
	"github.com/jsphweid/harmonykit/model"
	"github.com/jsphweid/harmonykit/util"
	"github.com/pkg/errors"
)

type ChordKeyToChords = map[string][]model.Chord

var FilenamePattern = regexp.MustCompile(`^[0-9a-fA-F]{8}-([0-9a-fA-F]{4}-){3}[0-9a-fA-F]{12}\.dat$`)

func makeChunkOverview(sortedKeys []string) model.ChunkOverview {
	var c model.ChunkOverview
	c.Filename = uuid.New().String() + ".dat"
	c.Start = sortedKeys[0]
	c.End = sortedKeys[len(sortedKeys)-1]
	return c
}

func makeChunk(dir string, m ChordKeyToChords, sortedKeys []string) (model.ChunkOverview, error) {
	c := makeChunkOverview(sortedKeys)
	chunkIndex := make(model.ChunkIndex)

	// fill up data section
	dataBuf := new(bytes.Buffer)
	for _, key := range sortedKeys {
		p := model.Pair{Start: uint32(dataBuf.Len())}
		for _, ch := range m[key] {
			dataBuf.Write([]byte{ch.Root, ch.Kind, ch.Inversion})
		}
		p.End = uint32(dataBuf.Len())
		chunkIndex[key] = p
	}

	indexBuf := new(bytes.Buffer)
	if err := gob.NewEncoder(indexBuf).Encode(chunkIndex); err != nil {
		return c, errors.Wrap(err, "error making chunk, couldn't encode index")
	}

	// size header, index, data
	finalBytes := make([]byte, 4, 4+indexBuf.Len()+dataBuf.Len())
	binary.LittleEndian.PutUint32(finalBytes, uint32(indexBuf.Len()))
	finalBytes = append(finalBytes, indexBuf.Bytes()...)
	finalBytes = append(finalBytes, dataBuf.Bytes()...)

	filename := filepath.Join(dir, c.Filename)
	if err := os.WriteFile(filename, finalBytes, 0666); err != nil {
		return c, errors.Wrap(err, "write failed for chunk file")
	}
	return c, nil
}

// maybeMakeChunks packs sorted keys into chunks of roughly preferredSize
// bytes and removes them from m. Leftovers stay in m unless force is set.
func maybeMakeChunks(dir string, m ChordKeyToChords, force bool, preferredSize int) ([]model.ChunkOverview, error) {
	var size int
	var currKeys []string
	var createdChunks []model.ChunkOverview

	sortedKeys := util.SortedKeys(m)
	for i, key := range sortedKeys {
		currKeys = append(currKeys, key)
		size += len(m[key]) * constants.RecordSize
		// NOTE: approximate, the index is a gob encoded map
		size += len(key) + 8

		isLast := len(sortedKeys)-1 == i
		if size > preferredSize || (isLast && force) {
			c, err := makeChunk(dir, m, currKeys)
			if err != nil {
				return createdChunks, err
			}
			createdChunks = append(createdChunks, c)
			for _, k := range currKeys {
				delete(m, k)
			}
			size = 0
			currKeys = currKeys[:0]
		}
	}
	return createdChunks, nil
}

// CreateAll turns the buckets in dir into chunk files. Chunks are cut on
// bucket boundaries and the last bucket flushes whatever is left.
func CreateAll(dir string, preferredSize int) ([]model.ChunkOverview, error) {
	m := make(ChordKeyToChords)
	var res []model.ChunkOverview

	buckets, err := bucket.Paths(dir)
	if err != nil {
		return nil, err
	}
	for i, bucketPath := range buckets {
		fmt.Printf("Processing %v of %v buckets\n", i+1, len(buckets))
		for _, c := range bucket.ReadChords(bucketPath) {
			key := chord.KeyFromPitchClasses(c.Notes)
			m[key] = append(m[key], c)
		}

		isLastBucket := len(buckets)-1 == i
		chunks, err := maybeMakeChunks(dir, m, isLastBucket, preferredSize)
		if err != nil {
			return nil, err
		}
		res = append(res, chunks...)
	}
	return res, nil
}

// ReadIndex reads a chunk's header and index, leaving r at the start of the
// data section.
func ReadIndex(r io.Reader) (model.ChunkIndex, uint32, error) {
	buf := make([]byte, 4)
	if _, err := io.ReadFull(r, buf); err != nil {
		return nil, 0, errors.Wrap(err, "could not read index length")
	}
	indexLength := binary.LittleEndian.Uint32(buf)

	buf = make([]byte, indexLength)
	if _, err := io.ReadFull(r, buf); err != nil {
		return nil, 0, errors.Wrap(err, "could not read index")
	}

	var index model.ChunkIndex
	if err := gob.NewDecoder(bytes.NewReader(buf)).Decode(&index); err != nil {
		return nil, 0, errors.Wrap(err, "could not decode index")
	}
	return index, indexLength, nil
}

func ReadIndexOrPanic(f io.Reader) (model.ChunkIndex, uint32) {
	index, length, err := ReadIndex(f)
	if err != nil {
		panic(err.Error())
	}
	return index, length
}

func parseRecords(notes model.Notes, buf []byte) []model.Chord {
	res := make([]model.Chord, 0, len(buf)/constants.RecordSize)
	for i := 0; i+constants.RecordSize <= len(buf); i += constants.RecordSize {
		res = append(res, model.Chord{
			Notes:     notes,
			Root:      buf[i],
			Kind:      buf[i+1],
			Inversion: buf[i+2],
		})
	}
	return res
}

// FindInChunk returns the chords stored under key, or nil when the chunk
// does not hold it.
func FindInChunk(path string, key string) ([]model.Chord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "could not open chunk")
	}
	defer f.Close()

	index, _, err := ReadIndex(f)
	if err != nil {
		return nil, errors.Wrapf(err, "bad chunk %v", path)
	}
	val, ok := index[key]
	if !ok {
		return nil, nil
	}

	notes, err := chord.ParseChordKey(key)
	if err != nil {
		return nil, err
	}
	if _, err := f.Seek(int64(val.Start), io.SeekCurrent); err != nil {
		return nil, errors.Wrap(err, "could not seek in chunk")
	}
	buf := make([]byte, val.End-val.Start)
	if _, err := io.ReadFull(f, buf); err != nil {
		return nil, errors.Wrap(err, "could not read from seeked position")
	}
	return parseRecords(notes, buf), nil
}

// Index answers key lookups against the chunk files of one directory.
type Index struct {
	dir    string
	chunks []model.ChunkOverview
}

func NewIndex(dir string, chunks []model.ChunkOverview) *Index {
	return &Index{dir: dir, chunks: chunks}
}

// Load reads the chunk overview written by the index command.
func Load(dir string) (*Index, error) {
	chunks, err := util.ReadBinary[[]model.ChunkOverview](filepath.Join(dir, constants.AllChunksFilename))
	if err != nil {
		return nil, err
	}
	return NewIndex(dir, chunks), nil
}

func (ix *Index) Chunks() []model.ChunkOverview {
	return ix.chunks
}

// Find checks every chunk whose key range covers key. Ranges can overlap
// because chunks are cut per bucket.
func (ix *Index) Find(key string) ([]model.Chord, error) {
	if key == "" {
		return nil, nil
	}
	for _, c := range ix.chunks {
		if key < c.Start || key > c.End {
			continue
		}
		res, err := FindInChunk(filepath.Join(ix.dir, c.Filename), key)
		if err != nil {
			return nil, err
		}
		if res != nil {
			return res, nil
		}
	}
	util.Tracef("no chunk holds %v", key)
	return nil, nil
}

// FindNotes looks up the chord formed by a set of sounding MIDI notes.
func (ix *Index) FindNotes(notes []uint8) ([]model.Chord, error) {
	return ix.Find(chord.CreateChordKey(notes))
}

// Build buckets chords into dir, packs the buckets into chunks and saves the
// overview. dir must exist and hold no buckets yet.
func Build(dir string, chords []model.Chord, preferredSize int) (*Index, error) {
	if err := bucket.ProcessAll(dir, chords); err != nil {
		return nil, err
	}
	chunks, err := CreateAll(dir, preferredSize)
	if err != nil {
		return nil, err
	}
	if err := util.CreateBinary(filepath.Join(dir, constants.AllChunksFilename), chunks); err != nil {
		return nil, err
	}
	return NewIndex(dir, chunks), nil
}
