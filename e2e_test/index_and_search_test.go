//go:build e2e
// +build e2e

package e2e_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/jsphweid/harmonykit/chord"
	"github.com/jsphweid/harmonykit/chunk"
	"github.com/jsphweid/harmonykit/cmd"
	"github.com/jsphweid/harmonykit/harmony"
	"github.com/jsphweid/harmonykit/midi"
	"github.com/jsphweid/harmonykit/model"
	"github.com/jsphweid/harmonykit/pitch"
	"github.com/jsphweid/harmonykit/sample"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var router http.Handler

func TestMain(m *testing.M) {
	dir, err := os.MkdirTemp("", "harmonykit-e2e")
	if err != nil {
		panic(err.Error())
	}
	defer os.RemoveAll(dir)

	indexDir := filepath.Join(dir, "index")
	os.Setenv("HARMONYKIT_INDEX_PATH", indexDir)
	if _, err := cmd.Index(indexDir, true, false); err != nil {
		panic(err.Error())
	}
	ix, err := chunk.Load(indexDir)
	if err != nil {
		panic(err.Error())
	}
	router = cmd.NewRouter(ix, pitch.Nederlands)

	os.Exit(m.Run())
}

func search(t *testing.T, chords ...[]int) []model.SearchResult {
	data, err := json.Marshal(model.SearchRequestBody{Chords: chords})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/search", bytes.NewReader(data))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	resp := w.Result()
	respBody, _ := io.ReadAll(resp.Body)
	require.Equal(t, http.StatusOK, resp.StatusCode, string(respBody))

	var res []model.SearchResult
	require.NoError(t, json.Unmarshal(respBody, &res))
	require.Len(t, res, len(chords))
	return res
}

func TestBasicCChordE2E(t *testing.T) {
	res := search(t, []int{60, 64, 67})
	assert.Equal(t, "0-4-7", res[0].Key)
	assert.Contains(t, res[0].Matches, model.Match{Root: "c", Kind: "maj", Name: "c maj"})
	assert.Contains(t, res[0].Matches, model.Match{Root: "bis", Kind: "maj", Name: "bis maj"})
}

func TestBasicFChordE2E(t *testing.T) {
	res := search(t, []int{60, 65, 69})
	assert.Equal(t, "0-5-9", res[0].Key)
	assert.Contains(t, res[0].Matches, model.Match{Root: "f", Kind: "maj", Inversion: 2, Name: "f maj"})
}

func TestClusterHasNoHarmonyE2E(t *testing.T) {
	res := search(t, []int{60, 61, 62})
	assert.Empty(t, res[0].Matches)
}

func TestExportedSampleIsFoundE2E(t *testing.T) {
	c, err := harmony.RealizeInversion(harmony.DominantNinth, pitch.DNatural, 0)
	require.NoError(t, err)

	s, err := sample.Create(c, 3, true)
	require.NoError(t, err)
	dat, err := midi.Encode(s)
	require.NoError(t, err)
	s, err = midi.Decode(dat)
	require.NoError(t, err)
	chords, err := chord.GetChords(s)
	require.NoError(t, err)
	require.NotEmpty(t, chords)

	last := chords[len(chords)-1]
	notes := make([]int, 0, len(last.Notes))
	for _, n := range last.Notes {
		notes = append(notes, int(n))
	}
	res := search(t, notes)
	assert.Contains(t, res[0].Matches, model.Match{Root: "d", Kind: "dom9", Name: "d dom9"})
}
