package midi

import (
	"bytes"
	"fmt"
	"os"

	"github.com/pkg/errors"
	"gitlab.com/gomidi/midi/v2/smf"
)

func ReadMidiFile(filepath string) (s *smf.SMF, e error) {
	// smf.ReadFrom can panic on malformed input
	defer func() {
		if r := recover(); r != nil {
			s = nil
			e = errors.Errorf("error parsing midi file %v: %v", filepath, r)
		}
	}()

	dat, err := os.ReadFile(filepath)
	if err != nil {
		return nil, errors.Wrap(err, "error reading midi file")
	}
	return Decode(dat)
}

func Decode(dat []byte) (*smf.SMF, error) {
	res, err := smf.ReadFrom(bytes.NewReader(dat))
	if err != nil {
		return nil, errors.Wrap(err, "error parsing midi file")
	}
	return res, nil
}

func Encode(s *smf.SMF) ([]byte, error) {
	var buf bytes.Buffer
	if _, err := s.WriteTo(&buf); err != nil {
		return nil, errors.Wrap(err, "error encoding midi file")
	}
	return buf.Bytes(), nil
}

func WriteMidiFile(filepath string, s *smf.SMF) error {
	dat, err := Encode(s)
	if err != nil {
		return err
	}
	if err := os.WriteFile(filepath, dat, 0666); err != nil {
		return errors.Wrapf(err, "error writing midi file %v", filepath)
	}
	fmt.Printf("Wrote %v\n", filepath)
	return nil
}
