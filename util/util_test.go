package util

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSortedKeys(t *testing.T) {
	m := map[string]int{"b": 1, "a": 2, "c": 3}
	assert.Equal(t, []string{"a", "b", "c"}, SortedKeys(m))
}

func TestMinAndSum(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(3, Min(3, 7))
	assert.Equal(uint8(2), Min(uint8(9), uint8(2)))
	assert.Equal(uint64(10), Sum([]int64{1, 2, 3, 4}))
}

func TestBinaryRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.dat")
	require.NoError(t, CreateBinary(path, map[string][]int{"0-4-7": {1, 2}}))

	got, err := ReadBinary[map[string][]int](path)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, got["0-4-7"])

	_, err = ReadBinary[int](filepath.Join(t.TempDir(), "missing.dat"))
	assert.Error(t, err)
}

func TestGatherAllMidiPaths(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"a.mid", "b.MIDI", "c.txt", "sub/d.mid"} {
		path := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0777))
		require.NoError(t, os.WriteFile(path, nil, 0666))
	}

	assert.Len(t, GatherAllMidiPaths(dir, 0), 3)
	assert.Len(t, GatherAllMidiPaths(dir, 2), 2)
}

func TestRecreateOutputDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	require.NoError(t, os.MkdirAll(dir, 0777))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "stale.dat"), nil, 0666))

	require.NoError(t, RecreateOutputDir(dir))
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestTrace(t *testing.T) {
	SetTrace(true)
	assert.True(t, TraceOn())
	SetTrace(false)
	assert.False(t, TraceOn())
}
