package sample

import (
	"errors"
	"testing"

	"github.com/jsphweid/harmonykit/chord"
	"github.com/jsphweid/harmonykit/harmony"
	"github.com/jsphweid/harmonykit/hkerr"
	"github.com/jsphweid/harmonykit/midi"
	"github.com/jsphweid/harmonykit/pitch"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBlockChordSurvivesEncoding(t *testing.T) {
	c, err := harmony.RealizeInversion(harmony.Major, pitch.CNatural, 1)
	require.NoError(t, err)

	s, err := Create(c, 4, false)
	require.NoError(t, err)
	dat, err := midi.Encode(s)
	require.NoError(t, err)
	s, err = midi.Decode(dat)
	require.NoError(t, err)

	chords, err := chord.GetChords(s)
	require.NoError(t, err)
	require.Len(t, chords, 1)
	assert.Equal(t, uint32(0), chords[0].Offset)
	assert.Equal(t, []uint8{64, 67, 72}, chords[0].Notes)
	assert.Equal(t, "4-0-7", chord.CreateChordKey(chords[0].Notes))
}

func TestArpeggioPlaysEachToneAlone(t *testing.T) {
	c, err := harmony.Realize(harmony.Dominant, pitch.GNatural)
	require.NoError(t, err)

	s, err := Create(c, 3, true)
	require.NoError(t, err)
	dat, err := midi.Encode(s)
	require.NoError(t, err)
	s, err = midi.Decode(dat)
	require.NoError(t, err)

	chords, err := chord.GetChords(s)
	require.NoError(t, err)
	require.Len(t, chords, 5)

	assert := assert.New(t)
	// G3 B3 D4 F4 alone, then the block chord building up at one instant
	assert.Equal([]uint8{55}, chords[0].Notes)
	assert.Equal([]uint8{59}, chords[1].Notes)
	assert.Equal([]uint8{62}, chords[2].Notes)
	assert.Equal([]uint8{65}, chords[3].Notes)
	assert.Equal([]uint8{55, 59, 62, 65}, chords[4].Notes)
	assert.Greater(chords[4].Offset, chords[3].Offset)
}

func TestCreateRejectsOctavesOffTheKeyboard(t *testing.T) {
	c, err := harmony.Realize(harmony.DominantThirteenth, pitch.CNatural)
	require.NoError(t, err)

	for _, octave := range []int{9, -2} {
		s, err := Create(c, octave, false)
		assert.True(t, errors.Is(err, hkerr.ErrNoteOutOfRange), octave)
		assert.Nil(t, s)
	}
}

func TestExportedInversionsKeepTheirIndexKey(t *testing.T) {
	for _, inv := range []int{0, 3, 4, 6} {
		c, err := harmony.RealizeInversion(harmony.DominantThirteenth, pitch.BNatural, inv)
		require.NoError(t, err)

		s, err := Create(c, 2, false)
		require.NoError(t, err)
		dat, err := midi.Encode(s)
		require.NoError(t, err)
		s, err = midi.Decode(dat)
		require.NoError(t, err)
		chords, err := chord.GetChords(s)
		require.NoError(t, err)
		require.Len(t, chords, 1)

		want := chord.KeyFromPitchClasses(chord.FromContents(c).Notes)
		assert.Equal(t, want, chord.CreateChordKey(chords[0].Notes), "inversion %d", inv)
	}
}
