package model

type Notes = []uint8

// Chord is one indexed harmony. Notes holds its pitch classes with the bass
// first; Root, Kind and Inversion are the raw pitch.SemiTonesPitch,
// harmony.Kind and inversion values.
type Chord struct {
	Notes     Notes
	Root      uint8
	Kind      uint8
	Inversion uint8
}

// SoundingChord is the set of keys held at one moment of a MIDI file.
type SoundingChord struct {
	// milliseconds from the start of the file
	Offset uint32
	Notes  Notes
}

type ReducedEvent struct {
	// microseconds
	Offset    int64
	IsNoteOff bool
	Note      uint8
}
