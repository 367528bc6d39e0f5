package model

type HarmonyResponse struct {
	Root      string   `json:"root"`
	Kind      string   `json:"kind"`
	KindName  string   `json:"kind_name"`
	Inversion int      `json:"inversion"`
	Intervals []string `json:"intervals"`
	Notes     []string `json:"notes"`
	MidiNotes []int    `json:"midi_notes"`
}

type Match struct {
	Root      string `json:"root"`
	Kind      string `json:"kind"`
	Inversion int    `json:"inversion"`
	Name      string `json:"name"`
}

type SearchResult struct {
	Key     string  `json:"key"`
	Matches []Match `json:"matches"`
}

type SearchRequestBody struct {
	Chords [][]int `json:"chords"`
}

type ErrorResponse struct {
	Error string   `json:"detail"`
	Valid []string `json:"valid,omitempty"`
}
