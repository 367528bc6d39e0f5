package interval

import (
	"errors"
	"testing"

	"github.com/jsphweid/harmonykit/hkerr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(HarmonyInterval{MinorSecond, 1}, New(MinorNinth).Normalize())
	assert.Equal(HarmonyInterval{PerfectUnison, 1}, New(PerfectOctave).Normalize())
	assert.Equal(HarmonyInterval{AugmentedSixth, 1}, New(AugmentedThirteenth).Normalize())
	assert.Equal(HarmonyInterval{MajorThird, 0}, New(MajorThird).Normalize())
	assert.Equal(HarmonyInterval{AugmentedSeventh, 0}, New(AugmentedSeventh).Normalize())

	// idempotent once reduced
	n := New(MajorThirteenth).Normalize()
	assert.Equal(n, n.Normalize())
}

func TestDenormalize(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(HarmonyInterval{MinorNinth, 0}, HarmonyInterval{MinorSecond, 1}.Denormalize())
	assert.Equal(HarmonyInterval{PerfectOctave, 0}, HarmonyInterval{PerfectUnison, 1}.Denormalize())
	assert.Equal(HarmonyInterval{MajorSeventh, 1}, HarmonyInterval{MajorSeventh, 1}.Denormalize())
	assert.Equal(HarmonyInterval{MajorThird, 2}, HarmonyInterval{MajorThird, 2}.Denormalize())
	assert.Equal(HarmonyInterval{MajorThird, 0}, HarmonyInterval{MajorThird, 0}.Denormalize())
}

func TestDenormalizeUndoesNormalize(t *testing.T) {
	for _, i := range All() {
		h := New(i)
		assert.Equal(t, h, h.Normalize().Denormalize(), i.String())
	}

	// one octave up the round trip keeps the sound but may respell
	for _, i := range All() {
		h := HarmonyInterval{Interval: i, RelativeOctave: 1}
		assert.Equal(t, h.Semitones(), h.Normalize().Denormalize().Semitones(), i.String())
	}
}

func TestDifference(t *testing.T) {
	cases := []struct {
		name string
		a, b HarmonyInterval
		want HarmonyInterval
	}{
		{"fifth over third", New(PerfectFifth), New(MajorThird), New(MinorThird)},
		{"third under fifth inverts", New(MajorThird), New(PerfectFifth), New(MajorSixth)},
		{"seventh over root", New(MinorSeventh), New(PerfectUnison), New(MinorSeventh)},
		{"ninth over third", New(MajorNinth), New(MajorThird), New(MinorSeventh)},
		{"unison", New(PerfectFifth), New(PerfectFifth), New(PerfectUnison)},
		{"tristan", New(AugmentedNinth), New(AugmentedFourth), New(MajorSixth)},
		{"dim seventh over dim fifth", New(DiminishedSeventh), New(DiminishedFifth), New(MinorThird)},
		{"octave over root", New(PerfectOctave), New(PerfectUnison), New(PerfectOctave)},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := Difference(c.a, c.b)
			require.NoError(t, err)
			assert.Equal(t, c.want, got)
		})
	}
}

func TestDifferenceWithoutANamedInterval(t *testing.T) {
	_, err := Difference(New(DiminishedSecond), New(AugmentedUnison))
	assert.True(t, errors.Is(err, hkerr.ErrUnrepresentableInterval))
}

func TestSum(t *testing.T) {
	cases := []struct {
		name string
		a, b HarmonyInterval
		want HarmonyInterval
	}{
		{"two thirds make a fifth", New(MajorThird), New(MinorThird), New(PerfectFifth)},
		{"two major thirds", New(MajorThird), New(MajorThird), New(AugmentedFifth)},
		{"two fifths make a ninth", New(PerfectFifth), New(PerfectFifth), New(MajorNinth)},
		{"fifth and minor seventh", New(PerfectFifth), New(MinorSeventh), New(PerfectEleventh)},
		{"major seventh and minor second", New(MajorSeventh), New(MinorSecond), New(PerfectOctave)},
		{"two octaves", New(PerfectOctave), New(PerfectOctave), HarmonyInterval{PerfectUnison, 2}},
		{"unison is neutral", New(MajorSixth), New(PerfectUnison), New(MajorSixth)},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := Sum(c.a, c.b)
			require.NoError(t, err)
			assert.Equal(t, c.want, got)

			swapped, err := Sum(c.b, c.a)
			require.NoError(t, err)
			assert.Equal(t, got, swapped)
		})
	}
}

func TestSumWithoutANamedInterval(t *testing.T) {
	_, err := Sum(New(AugmentedSeventh), New(AugmentedSeventh))
	assert.True(t, errors.Is(err, hkerr.ErrUnrepresentableInterval))
}

func TestLookup(t *testing.T) {
	assert := assert.New(t)

	h, err := Lookup(6, 12)
	assert.NoError(err)
	assert.Equal(New(AugmentedSeventh), h)

	h, err = Lookup(0, -1)
	assert.NoError(err)
	assert.Equal(New(DiminishedUnison), h)

	_, err = Lookup(-1, 0)
	assert.True(errors.Is(err, hkerr.ErrUnrepresentableInterval))
}
