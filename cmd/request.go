package cmd

import (
	"strconv"
	"strings"

	"github.com/jsphweid/harmonykit/harmony"
	"github.com/jsphweid/harmonykit/pitch"
	"github.com/pkg/errors"
)

// requestFields accepts a request either as one quoted argument or as
// separate arguments.
func requestFields(args []string) []string {
	return strings.Fields(strings.Join(args, " "))
}

// parseDetailRequest reads "<root> <harmony>".
func parseDetailRequest(args []string, lang pitch.Language) (pitch.SemiTonesPitch, harmony.Kind, error) {
	fields := requestFields(args)
	if len(fields) != 2 {
		return pitch.NoSemiTonesPitch, harmony.KindNone, errors.Errorf("expected \"<root> <harmony>\", got %q", strings.Join(fields, " "))
	}
	return parseRootAndKind(fields[0], fields[1], lang)
}

// parseAnalysisRequest reads "<root> <harmony> <inversion>".
func parseAnalysisRequest(args []string, lang pitch.Language) (pitch.SemiTonesPitch, harmony.Kind, int, error) {
	fields := requestFields(args)
	if len(fields) != 3 {
		return pitch.NoSemiTonesPitch, harmony.KindNone, 0, errors.Errorf("expected \"<root> <harmony> <inversion>\", got %q", strings.Join(fields, " "))
	}
	root, k, err := parseRootAndKind(fields[0], fields[1], lang)
	if err != nil {
		return pitch.NoSemiTonesPitch, harmony.KindNone, 0, err
	}
	inversion, err := strconv.Atoi(fields[2])
	if err != nil {
		return pitch.NoSemiTonesPitch, harmony.KindNone, 0, errors.Wrapf(err, "bad inversion %q", fields[2])
	}
	return root, k, inversion, nil
}

func parseRootAndKind(rootName, kindName string, lang pitch.Language) (pitch.SemiTonesPitch, harmony.Kind, error) {
	root, err := pitch.ParseSemiTonesPitch(rootName, lang)
	if err != nil {
		return pitch.NoSemiTonesPitch, harmony.KindNone, err
	}
	k, err := harmony.KindFromString(kindName)
	if err != nil {
		return pitch.NoSemiTonesPitch, harmony.KindNone, err
	}
	return root, k, nil
}

// parseMidiNotes reads note numbers such as "60 64 67".
func parseMidiNotes(args []string) ([]uint8, error) {
	var res []uint8
	for _, f := range requestFields(args) {
		n, err := strconv.Atoi(f)
		if err != nil || n < 0 || n > 127 {
			return nil, errors.Errorf("bad MIDI note %q", f)
		}
		res = append(res, uint8(n))
	}
	if len(res) == 0 {
		return nil, errors.New("no MIDI notes given")
	}
	return res, nil
}

// realizeRequest accepts both request forms, the inversion defaulting to 0.
func realizeRequest(args []string, lang pitch.Language) (harmony.Contents, error) {
	fields := requestFields(args)
	if len(fields) == 3 {
		root, k, inversion, err := parseAnalysisRequest(fields, lang)
		if err != nil {
			return harmony.Contents{}, err
		}
		return harmony.RealizeInversion(k, root, inversion)
	}
	root, k, err := parseDetailRequest(fields, lang)
	if err != nil {
		return harmony.Contents{}, err
	}
	return harmony.Realize(k, root)
}
