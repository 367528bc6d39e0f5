package hkerr

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for the pitch, interval and harmony packages
var (
	ErrInvalidAlteration           = errors.New("invalid alteration")
	ErrNotAPitch                   = errors.New("not a pitch")
	ErrQuarterToneOnly             = errors.New("quarter-tone pitch has no semitones spelling")
	ErrUnsupportedPitchForInterval = errors.New("computing intervals from this pitch is not supported")
	ErrUnknownPitchName            = errors.New("unknown pitch name")
	ErrUnknownHarmonyName          = errors.New("unknown harmony name")
	ErrUnknownIntervalName         = errors.New("unknown interval name")
	ErrUnknownLanguage             = errors.New("unknown pitch names language")
	ErrInvalidInversion            = errors.New("invalid inversion")
	ErrUnrepresentableInterval     = errors.New("no named interval for this combination")
	ErrInvalidHarmonyKind          = errors.New("invalid harmony kind")
	ErrInvalidMusicXMLAlter        = errors.New("invalid MusicXML alter value")
	ErrNoteOutOfRange              = errors.New("MIDI note out of range 0-127")
)

// Error carries the operation and offending value alongside one of the
// sentinels above. Valid lists the accepted names when the failure comes from
// a name lookup.
type Error struct {
	Op    string
	Value string
	Valid []string
	Err   error
}

func (e *Error) Error() string {
	msg := fmt.Sprintf("%s: %v", e.Op, e.Err)
	if e.Value != "" {
		msg += fmt.Sprintf(" %q", e.Value)
	}
	if len(e.Valid) > 0 {
		msg += " (valid: " + strings.Join(e.Valid, ", ") + ")"
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// New creates an Error. value is rendered with %v.
func New(op string, value any, err error) *Error {
	return &Error{
		Op:    op,
		Value: fmt.Sprintf("%v", value),
		Err:   err,
	}
}

// WithValid attaches the accepted names and returns e.
func (e *Error) WithValid(valid []string) *Error {
	e.Valid = valid
	return e
}

// ValidNames returns the accepted names carried by err, if any.
func ValidNames(err error) []string {
	var e *Error
	if errors.As(err, &e) {
		return e.Valid
	}
	return nil
}
