package constants

import (
	"os"
	"strconv"
	"strings"
)

func getEnv(name, fallback string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return fallback
}

func GetIndexDir() string {
	return getEnv("HARMONYKIT_INDEX_PATH", "./out")
}

// GetLanguage is the pitch-naming language used when --language is not set.
func GetLanguage() string {
	return getEnv("HARMONYKIT_LANGUAGE", "nederlands")
}

func TraceEnabled() bool {
	switch strings.ToLower(os.Getenv("HARMONYKIT_TRACE")) {
	case "1", "true", "yes", "on":
		return true
	}
	return false
}

// GetChunkSize falls back to PreferredChunkSize when the variable is unset
// or not a positive integer.
func GetChunkSize() int {
	v, err := strconv.Atoi(os.Getenv("HARMONYKIT_CHUNK_SIZE"))
	if err != nil || v <= 0 {
		return PreferredChunkSize
	}
	return v
}

func GetAddr() string {
	return getEnv("HARMONYKIT_ADDR", ":8080")
}

func GetDynamoDBEndpoint() string {
	return getEnv("HARMONYKIT_DYNAMODB_ENDPOINT", "http://localhost:8000")
}

func GetDynamoDBRegion() string {
	return getEnv("HARMONYKIT_DYNAMODB_REGION", "localhost")
}

func GetDynamoDBTable() string {
	return getEnv("HARMONYKIT_DYNAMODB_TABLE", "harmonykit-index")
}

// 3 for root/kind/inversion, 1 for pitch-class count, 12 for pitch classes
const ChordSize = 16

// root, kind, inversion
const RecordSize = 3

const PreferredChunkSize = 64 * 1024

const AllChunksFilename = "allChunks.dat"

// Octave that a realized root is placed in when harmonies become MIDI notes.
const MIDIBaseOctave = 4
