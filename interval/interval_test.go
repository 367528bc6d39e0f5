package interval

import (
	"errors"
	"testing"

	"github.com/jsphweid/harmonykit/hkerr"
	"github.com/stretchr/testify/assert"
)

func TestSemitones(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(-1, DiminishedUnison.Semitones())
	assert.Equal(3, MinorThird.Semitones())
	assert.Equal(3, AugmentedSecond.Semitones())
	assert.Equal(6, AugmentedFourth.Semitones())
	assert.Equal(6, DiminishedFifth.Semitones())
	assert.Equal(12, PerfectOctave.Semitones())
	assert.Equal(22, AugmentedThirteenth.Semitones())

	for _, i := range All() {
		assert.GreaterOrEqual(i.Semitones(), -1, i.String())
		assert.LessOrEqual(i.Semitones(), 22, i.String())
	}
}

func TestCompoundIntervalsAreAnOctaveAboveTheirReduction(t *testing.T) {
	for _, i := range All() {
		if i <= AugmentedSeventh {
			continue
		}
		reduced := i - octaveSpan
		assert.Equal(t, i.Semitones(), reduced.Semitones()+12, i.String())
		assert.Equal(t, i.Number(), reduced.Number()+7, i.String())
		assert.Equal(t, i.Quality(), reduced.Quality(), i.String())
	}
}

func TestNames(t *testing.T) {
	assert := assert.New(t)
	assert.Equal("majorThird", MajorThird.String())
	assert.Equal("diminishedUnison", DiminishedUnison.String())
	assert.Equal("noInterval", NoInterval.String())
	assert.Equal("3", MajorThird.Short())
	assert.Equal("∆7", MajorSeventh.Short())
	assert.Equal("∆∆7", AugmentedSeventh.Short())
	assert.Equal("#4", AugmentedFourth.Short())
	assert.Equal("#5", AugmentedFifth.Short())
	assert.Equal("b9", MinorNinth.Short())
}

func TestShortNamesAreUnique(t *testing.T) {
	seen := make(map[string]Interval)
	for _, i := range All() {
		prev, dup := seen[i.Short()]
		assert.False(t, dup, "%q names both %v and %v", i.Short(), prev, i)
		seen[i.Short()] = i
	}
}

func TestParse(t *testing.T) {
	assert := assert.New(t)

	i, err := Parse("minorSeventh")
	assert.NoError(err)
	assert.Equal(MinorSeventh, i)

	i, err = Parse("#11")
	assert.NoError(err)
	assert.Equal(AugmentedEleventh, i)

	_, err = Parse("ninth")
	assert.True(errors.Is(err, hkerr.ErrUnknownIntervalName))
	assert.Contains(hkerr.ValidNames(err), "majorNinth")
}

func TestInvertExamples(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(MajorSixth, Invert(MinorThird))
	assert.Equal(PerfectUnison, Invert(PerfectUnison))
	assert.Equal(DiminishedOctave, Invert(AugmentedUnison))
	assert.Equal(AugmentedOctave, Invert(DiminishedUnison))
	assert.Equal(DiminishedFifth, Invert(AugmentedFourth))
	assert.Equal(MajorSeventh, Invert(MinorNinth))
	assert.Equal(NoInterval, Invert(NoInterval))
}

func TestInvertIsAnInvolution(t *testing.T) {
	for _, i := range All() {
		if !i.IsSimple() {
			continue
		}
		t.Run(i.String(), func(t *testing.T) {
			assert.Equal(t, i, Invert(Invert(i)))
		})
	}
}

func TestInvertComplementsToAnOctave(t *testing.T) {
	for _, i := range All() {
		if !i.IsSimple() || i == PerfectUnison || i == PerfectOctave {
			continue
		}
		assert.Equal(t, 12, i.Semitones()+Invert(i).Semitones(), i.String())
	}

	// the unison and octave invert to themselves
	assert.Equal(t, 0, PerfectUnison.Semitones()+Invert(PerfectUnison).Semitones())
	assert.Equal(t, 24, PerfectOctave.Semitones()+Invert(PerfectOctave).Semitones())

	// the -1 convention for the diminished unison pairs it with the augmented octave
	assert.Equal(t, 12, DiminishedUnison.Semitones()+AugmentedOctave.Semitones())
}
