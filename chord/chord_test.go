package chord

import (
	"testing"

	"github.com/jsphweid/harmonykit/harmony"
	"github.com/jsphweid/harmonykit/model"
	"github.com/jsphweid/harmonykit/pitch"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPitchClassSetPutsBassFirst(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(model.Notes{0, 4, 7}, PitchClassSet([]uint8{67, 60, 64, 72}))
	assert.Equal(model.Notes{4, 0, 7}, PitchClassSet([]uint8{64, 67, 72}))
	assert.Equal(model.Notes{7, 2, 5, 11}, PitchClassSet([]uint8{55, 59, 62, 65, 67}))
	assert.Nil(PitchClassSet(nil))
}

func TestCreateChordKey(t *testing.T) {
	assert := assert.New(t)
	assert.Equal("0-4-7", CreateChordKey([]uint8{60, 64, 67}))
	assert.Equal("0-4-7", CreateChordKey([]uint8{48, 76, 67, 64}))
	assert.Equal("4-0-7", CreateChordKey([]uint8{52, 60, 67}))
	assert.Equal("", CreateChordKey(nil))
}

func TestParseChordKey(t *testing.T) {
	notes, err := ParseChordKey("9-0-2-4")
	assert.NoError(t, err)
	assert.Equal(t, model.Notes{9, 0, 2, 4}, notes)

	for _, bad := range []string{"", "0-x", "12", "0--4"} {
		_, err := ParseChordKey(bad)
		assert.Error(t, err, bad)
	}
}

func TestFromContentsKeysByTheLowestSoundingTone(t *testing.T) {
	c, err := harmony.RealizeInversion(harmony.Major, pitch.CNatural, 1)
	require.NoError(t, err)
	assert.Equal(t, model.Notes{4, 0, 7}, FromContents(c).Notes)

	// the thirteenth is listed first but the raised B sounds an octave lower
	c, err = harmony.RealizeInversion(harmony.DominantThirteenth, pitch.BNatural, 6)
	require.NoError(t, err)
	assert.Equal(t, pitch.GSharp, c.BassPitch())
	assert.Equal(t, model.Notes{11, 1, 3, 4, 6, 8, 9}, FromContents(c).Notes)

	c, err = harmony.RealizeInversion(harmony.DominantThirteenth, pitch.CNatural, 6)
	require.NoError(t, err)

	got := FromContents(c)
	assert.Equal(t, model.Notes{0, 2, 4, 5, 7, 9, 10}, got.Notes)
	assert.Equal(t, uint8(pitch.CNatural), got.Root)
	assert.Equal(t, uint8(harmony.DominantThirteenth), got.Kind)
	assert.Equal(t, uint8(6), got.Inversion)
}

func TestSerialize(t *testing.T) {
	c := model.Chord{Notes: model.Notes{4, 0, 7}, Root: uint8(pitch.CNatural), Kind: uint8(harmony.Major), Inversion: 1}
	buf := Serialize(c)
	assert.Equal(t, uint8(3), buf[3])
	assert.Equal(t, c, Deserialize(buf[:]))
}

func TestAll(t *testing.T) {
	all := All()
	// 167 structure tones over 39 kinds, each an inversion, for 21 roots
	assert.Len(t, all, 21*167)

	keys := make(map[string]bool)
	for _, c := range all {
		keys[KeyFromPitchClasses(c.Notes)] = true
	}
	assert.True(t, keys["0-4-7"])
	assert.True(t, keys["4-0-7"])
	assert.True(t, keys["10-0-4-7"])
}

func TestDescribe(t *testing.T) {
	m := Describe(model.Chord{Root: uint8(pitch.BFlat), Kind: uint8(harmony.MajorSeventh), Inversion: 2}, pitch.Nederlands)
	assert.Equal(t, model.Match{Root: "bes", Kind: "maj7", Inversion: 2, Name: "bes maj7"}, m)

	m = Describe(model.Chord{Root: uint8(pitch.BFlat), Kind: uint8(harmony.Minor)}, pitch.English)
	assert.Equal(t, "bf min", m.Name)
}
