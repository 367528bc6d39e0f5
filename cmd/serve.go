package cmd

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/jsphweid/harmonykit/chord"
	"github.com/jsphweid/harmonykit/chunk"
	"github.com/jsphweid/harmonykit/constants"
	"github.com/jsphweid/harmonykit/harmony"
	"github.com/jsphweid/harmonykit/hkerr"
	"github.com/jsphweid/harmonykit/midi"
	"github.com/jsphweid/harmonykit/model"
	"github.com/jsphweid/harmonykit/pitch"
	"github.com/jsphweid/harmonykit/sample"
	"github.com/pkg/errors"
	"github.com/rs/cors"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves harmonies and index search over HTTP",
	Long: `Serves harmonies and index search over HTTP on HARMONYKIT_ADDR.

  GET  /harmonies/{root}/{kind}?inversion=&language=
  GET  /harmonies/{root}/{kind}/midi?inversion=&arpeggio=
  POST /search  {"chords": [[60, 64, 67]]}`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		lang, err := language()
		if err != nil {
			return err
		}
		ix, err := loadIndex()
		if err != nil {
			log.Printf("search disabled: %v", err)
		}
		addr := constants.GetAddr()
		fmt.Printf("Listening on %v\n", addr)
		log.Fatal(http.ListenAndServe(addr, NewRouter(ix, lang)))
		return nil
	},
}

type server struct {
	index *chunk.Index
	lang  pitch.Language
}

// NewRouter serves harmonies in lang unless a request asks for another
// language. A nil index disables /search.
func NewRouter(ix *chunk.Index, lang pitch.Language) http.Handler {
	s := &server{index: ix, lang: lang}
	router := mux.NewRouter().StrictSlash(true)
	router.HandleFunc("/harmonies/{root}/{kind}", s.handleHarmony).Methods("GET")
	router.HandleFunc("/harmonies/{root}/{kind}/midi", s.handleHarmonyMidi).Methods("GET")
	router.HandleFunc("/search", s.handleSearch).Methods("POST")
	return cors.Default().Handler(router)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("could not write response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, model.ErrorResponse{Error: err.Error(), Valid: hkerr.ValidNames(err)})
}

func (s *server) requestLanguage(r *http.Request) (pitch.Language, error) {
	if name := r.URL.Query().Get("language"); name != "" {
		return pitch.ParseLanguage(name)
	}
	return s.lang, nil
}

// contents resolves the root, kind and inversion of a harmony request.
func (s *server) contents(r *http.Request) (harmony.Contents, pitch.Language, error) {
	lang, err := s.requestLanguage(r)
	if err != nil {
		return harmony.Contents{}, lang, err
	}
	vars := mux.Vars(r)
	root, k, err := parseRootAndKind(vars["root"], vars["kind"], lang)
	if err != nil {
		return harmony.Contents{}, lang, err
	}

	inversion := 0
	if v := r.URL.Query().Get("inversion"); v != "" {
		inversion, err = strconv.Atoi(v)
		if err != nil {
			return harmony.Contents{}, lang, hkerr.New("parse inversion", v, hkerr.ErrInvalidInversion)
		}
	}
	c, err := harmony.RealizeInversion(k, root, inversion)
	return c, lang, err
}

func harmonyResponse(c harmony.Contents, lang pitch.Language) (model.HarmonyResponse, error) {
	s, err := harmony.Build(c.Kind)
	if err != nil {
		return model.HarmonyResponse{}, err
	}
	s, err = harmony.Invert(s, c.Inversion)
	if err != nil {
		return model.HarmonyResponse{}, err
	}

	res := model.HarmonyResponse{
		Root:      c.Root.Name(lang),
		Kind:      c.Kind.ShortName(),
		KindName:  c.Kind.String(),
		Inversion: c.Inversion,
		Notes:     c.Names(lang),
	}
	for _, h := range s.Intervals {
		res.Intervals = append(res.Intervals, h.Short())
	}
	notes, err := c.MIDINotes(constants.MIDIBaseOctave)
	if err != nil {
		return model.HarmonyResponse{}, err
	}
	for _, n := range notes {
		res.MidiNotes = append(res.MidiNotes, int(n))
	}
	return res, nil
}

func (s *server) handleHarmony(w http.ResponseWriter, r *http.Request) {
	c, lang, err := s.contents(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	res, err := harmonyResponse(c, lang)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func (s *server) handleHarmonyMidi(w http.ResponseWriter, r *http.Request) {
	c, lang, err := s.contents(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	arpeggio, _ := strconv.ParseBool(r.URL.Query().Get("arpeggio"))
	sm, err := sample.Create(c, constants.MIDIBaseOctave, arpeggio)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	dat, err := midi.Encode(sm)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	w.Header().Set("Content-Type", "audio/midi")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", downloadName(c, lang)))
	if _, err := w.Write(dat); err != nil {
		log.Printf("could not write midi response: %v", err)
	}
}

func downloadName(c harmony.Contents, lang pitch.Language) string {
	return c.Root.Name(lang) + "-" + c.Kind.ShortName() + ".mid"
}

var errNoChords = errors.New("chords must hold at least one chord of MIDI notes 0-127")

func (s *server) handleSearch(w http.ResponseWriter, r *http.Request) {
	if s.index == nil {
		writeError(w, http.StatusServiceUnavailable, errors.New("no index loaded"))
		return
	}
	lang, err := s.requestLanguage(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	var input model.SearchRequestBody
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, errors.Wrap(err, "could not unmarshal request body"))
		return
	}
	if len(input.Chords) == 0 {
		writeError(w, http.StatusBadRequest, errNoChords)
		return
	}

	res := make([]model.SearchResult, 0, len(input.Chords))
	for _, c := range input.Chords {
		notes := make([]uint8, 0, len(c))
		for _, n := range c {
			if n < 0 || n > 127 {
				writeError(w, http.StatusBadRequest, errNoChords)
				return
			}
			notes = append(notes, uint8(n))
		}
		if len(notes) == 0 {
			writeError(w, http.StatusBadRequest, errNoChords)
			return
		}

		key := chord.CreateChordKey(notes)
		matches, err := s.index.Find(key)
		if err != nil {
			writeError(w, http.StatusInternalServerError, err)
			return
		}
		result := model.SearchResult{Key: key, Matches: make([]model.Match, 0, len(matches))}
		for _, m := range matches {
			result.Matches = append(result.Matches, chord.Describe(m, lang))
		}
		res = append(res, result)
	}
	writeJSON(w, http.StatusOK, res)
}
