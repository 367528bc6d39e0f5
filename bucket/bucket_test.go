package bucket

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jsphweid/harmonykit/constants"
	"github.com/jsphweid/harmonykit/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChordsLandInTheirBassBucket(t *testing.T) {
	dir := t.TempDir()
	chords := []model.Chord{
		{Notes: model.Notes{0, 4, 7}, Root: 1, Kind: 1},
		{Notes: model.Notes{4, 0, 7}, Root: 1, Kind: 1, Inversion: 1},
		{Notes: model.Notes{0, 3, 7}, Root: 1, Kind: 2},
		{Notes: model.Notes{11, 2, 5, 7}, Root: 2, Kind: 5, Inversion: 1},
	}
	require.NoError(t, ProcessAll(dir, chords))

	paths, err := Paths(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{PathFor(dir, 0), PathFor(dir, 4), PathFor(dir, 11)}, paths)

	got := ReadChords(PathFor(dir, 0))
	assert.Equal(t, []model.Chord{chords[0], chords[2]}, got)

	info, err := os.Stat(PathFor(dir, 11))
	require.NoError(t, err)
	assert.Equal(t, int64(constants.ChordSize), info.Size())
}

func TestEmptyChordsAreSkipped(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, PutChord(dir, model.Chord{}))
	paths, err := Paths(dir)
	require.NoError(t, err)
	assert.Empty(t, paths)
}

func TestDeleteAllKeepsOtherFiles(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, PutChord(dir, model.Chord{Notes: model.Notes{2, 5, 9}}))
	other := filepath.Join(dir, constants.AllChunksFilename)
	require.NoError(t, os.WriteFile(other, nil, 0666))

	require.NoError(t, DeleteAll(dir))
	paths, err := Paths(dir)
	require.NoError(t, err)
	assert.Empty(t, paths)
	assert.FileExists(t, other)
}
