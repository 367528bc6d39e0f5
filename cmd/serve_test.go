package cmd

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/jsphweid/harmonykit/chord"
	"github.com/jsphweid/harmonykit/chunk"
	"github.com/jsphweid/harmonykit/constants"
	"github.com/jsphweid/harmonykit/midi"
	"github.com/jsphweid/harmonykit/model"
	"github.com/jsphweid/harmonykit/pitch"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T) http.Handler {
	ix, err := chunk.Build(t.TempDir(), chord.All(), constants.PreferredChunkSize)
	require.NoError(t, err)
	return NewRouter(ix, pitch.Nederlands)
}

func do(t *testing.T, h http.Handler, method, target string, body io.Reader) *http.Response {
	req := httptest.NewRequest(method, target, body)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w.Result()
}

func decode[A any](t *testing.T, resp *http.Response) A {
	var res A
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&res))
	return res
}

func TestGetHarmony(t *testing.T) {
	h := NewRouter(nil, pitch.Nederlands)

	resp := do(t, h, http.MethodGet, "/harmonies/c/maj7", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, model.HarmonyResponse{
		Root:      "c",
		Kind:      "maj7",
		KindName:  "majorSeventh",
		Intervals: []string{"u", "3", "5", "∆7"},
		Notes:     []string{"c", "e", "g", "b"},
		MidiNotes: []int{60, 64, 67, 71},
	}, decode[model.HarmonyResponse](t, resp))

	resp = do(t, h, http.MethodGet, "/harmonies/bf/dom?language=english&inversion=1", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, model.HarmonyResponse{
		Root:      "bf",
		Kind:      "dom",
		KindName:  "dominant",
		Inversion: 1,
		Intervals: []string{"3", "5", "7", "u'"},
		Notes:     []string{"d", "f", "af", "bf"},
		MidiNotes: []int{74, 77, 80, 82},
	}, decode[model.HarmonyResponse](t, resp))
}

func TestGetHarmonyErrors(t *testing.T) {
	h := NewRouter(nil, pitch.Nederlands)

	resp := do(t, h, http.MethodGet, "/harmonies/c/nope", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	e := decode[model.ErrorResponse](t, resp)
	assert.Contains(t, e.Error, "unknown harmony name")
	assert.Contains(t, e.Valid, "maj7")

	for _, target := range []string{
		"/harmonies/c/maj?inversion=3",
		"/harmonies/c/maj?inversion=first",
		"/harmonies/h/maj",
		"/harmonies/c/maj?language=klingon",
	} {
		resp := do(t, h, http.MethodGet, target, nil)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode, target)
	}
}

func TestGetHarmonyMidi(t *testing.T) {
	h := NewRouter(nil, pitch.Nederlands)

	resp := do(t, h, http.MethodGet, "/harmonies/c/maj/midi?inversion=2", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "audio/midi", resp.Header.Get("Content-Type"))

	dat, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	s, err := midi.Decode(dat)
	require.NoError(t, err)
	chords, err := chord.GetChords(s)
	require.NoError(t, err)
	require.Len(t, chords, 1)
	assert.Equal(t, []uint8{67, 72, 76}, chords[0].Notes)
}

func TestGetHarmonyMidiNamedInRequestLanguage(t *testing.T) {
	h := NewRouter(nil, pitch.Nederlands)

	resp := do(t, h, http.MethodGet, "/harmonies/bes/dom/midi", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, `attachment; filename="bes-dom.mid"`, resp.Header.Get("Content-Disposition"))

	resp = do(t, h, http.MethodGet, "/harmonies/bf/dom/midi?language=english", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, `attachment; filename="bf-dom.mid"`, resp.Header.Get("Content-Disposition"))
}

func searchBody(t *testing.T, chords ...[]int) io.Reader {
	data, err := json.Marshal(model.SearchRequestBody{Chords: chords})
	require.NoError(t, err)
	return bytes.NewReader(data)
}

func TestSearch(t *testing.T) {
	h := newTestRouter(t)

	resp := do(t, h, http.MethodPost, "/search", searchBody(t, []int{64, 67, 72}, []int{60, 61}))
	require.Equal(t, http.StatusOK, resp.StatusCode)

	res := decode[[]model.SearchResult](t, resp)
	require.Len(t, res, 2)
	assert.Equal(t, "4-0-7", res[0].Key)
	assert.Contains(t, res[0].Matches, model.Match{Root: "c", Kind: "maj", Inversion: 1, Name: "c maj"})
	assert.Equal(t, "0-1", res[1].Key)
	assert.Empty(t, res[1].Matches)

	resp = do(t, h, http.MethodPost, "/search?language=english", searchBody(t, []int{58, 62, 65, 68}))
	require.Equal(t, http.StatusOK, resp.StatusCode)
	res = decode[[]model.SearchResult](t, resp)
	assert.Contains(t, res[0].Matches, model.Match{Root: "bf", Kind: "dom", Name: "bf dom"})
}

func TestSearchRejectsBadBodies(t *testing.T) {
	h := newTestRouter(t)

	for _, body := range []string{`{"chords": []}`, `{"chords": [[200]]}`, `{"chords": [[]]}`, `not json`} {
		resp := do(t, h, http.MethodPost, "/search", strings.NewReader(body))
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode, body)
	}

	resp := do(t, NewRouter(nil, pitch.Nederlands), http.MethodPost, "/search", searchBody(t, []int{60, 64, 67}))
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
}
