package pitch

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jsphweid/harmonykit/hkerr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSemiTonesRoundTrip(t *testing.T) {
	for _, s := range SemiTonesPitches() {
		t.Run(s.String(), func(t *testing.T) {
			back, err := s.QuarterTones().SemiTones()
			require.NoError(t, err)
			assert.Equal(t, s, back)
		})
	}
}

func TestQuarterTonesPartialRoundTrip(t *testing.T) {
	for _, q := range QuarterTonesPitches() {
		s, err := q.SemiTones()
		if q.Alteration().IsQuarterToneOnly() {
			assert.True(t, errors.Is(err, hkerr.ErrQuarterToneOnly), q.String())
			assert.Equal(t, NoSemiTonesPitch, s)
			continue
		}
		require.NoError(t, err, q.String())
		assert.Equal(t, q, s.QuarterTones(), q.String())
	}
}

func TestQuarterTonesPitchFromDiatonicAndAlteration(t *testing.T) {
	assert := assert.New(t)

	q, err := QuarterTonesPitchFrom(C, Natural)
	assert.NoError(err)
	assert.Equal(QCNatural, q)

	q, err = QuarterTonesPitchFrom(G, TripleSharp)
	assert.NoError(err)
	assert.Equal(QGTripleSharp, q)

	q, err = QuarterTonesPitchFrom(E, SemiFlat)
	assert.NoError(err)
	assert.Equal(QESemiFlat, q)

	_, err = QuarterTonesPitchFrom(C, AlterationNone)
	assert.True(errors.Is(err, hkerr.ErrInvalidAlteration))

	_, err = QuarterTonesPitchFrom(DiatonicNone, Natural)
	assert.True(errors.Is(err, hkerr.ErrNotAPitch))
}

func TestEveryLetterAndAlterationIsABijection(t *testing.T) {
	seen := make(map[QuarterTonesPitch]bool)
	for d := A; d <= G; d++ {
		for _, a := range Alterations {
			q, err := QuarterTonesPitchFrom(d, a)
			require.NoError(t, err)
			assert.False(t, seen[q])
			seen[q] = true

			gotD, gotA, err := q.DiatonicAndAlteration()
			require.NoError(t, err)
			assert.Equal(t, d, gotD)
			assert.Equal(t, a, gotA)
		}
	}
	assert.Len(t, seen, 77)
}

func TestSentinelsAreNotPitches(t *testing.T) {
	for _, q := range []QuarterTonesPitch{NoQuarterTonesPitch, Rest, Skip} {
		_, _, err := q.DiatonicAndAlteration()
		assert.True(t, errors.Is(err, hkerr.ErrNotAPitch), q.String())

		_, err = q.SemiTones()
		assert.True(t, errors.Is(err, hkerr.ErrNotAPitch), q.String())
	}
	assert.Equal(t, NoQuarterTonesPitch, NoSemiTonesPitch.QuarterTones())
}

func TestSemiTonesHeights(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(0, CNatural.Semitones())
	assert.Equal(-1, CFlat.Semitones())
	assert.Equal(12, BSharp.Semitones())
	assert.Equal(10, BFlat.Semitones())
	assert.Equal(4, FFlat.Semitones())
	assert.Equal(11, CFlat.PitchClass())
	assert.Equal(0, BSharp.PitchClass())
	assert.Equal(-6, QCTripleFlat.QuarterTones())
	assert.Equal(9, QESemiSharp.QuarterTones())
}

func TestTags(t *testing.T) {
	assert := assert.New(t)
	assert.Equal("C_Natural", CNatural.String())
	assert.Equal("B_Flat", BFlat.String())
	assert.Equal("E_SesquiSharp", QESesquiSharp.String())
	assert.Equal("Rest", Rest.String())
	assert.Equal("NoSemiTonesPitch", NoSemiTonesPitch.String())
}

func TestEnharmonic(t *testing.T) {
	cases := []struct {
		in, out SemiTonesPitch
	}{
		{CSharp, DFlat},
		{DFlat, CSharp},
		{CFlat, BNatural},
		{BSharp, CNatural},
		{ESharp, FNatural},
		{FFlat, ENatural},
		{DDoubleFlat, CNatural},
		{GNatural, GNatural},
	}

	for _, c := range cases {
		t.Run(fmt.Sprintf("%v", c.in), func(t *testing.T) {
			assert.Equal(t, c.out, c.in.Enharmonic())
		})
	}
}

func TestRespell(t *testing.T) {
	assert := assert.New(t)

	res, ok := GSharp.Respell(Flat)
	assert.True(ok)
	assert.Equal(AFlat, res)

	res, ok = CNatural.Respell(DoubleFlat)
	assert.True(ok)
	assert.Equal(DDoubleFlat, res)

	_, ok = CNatural.Respell(SemiSharp)
	assert.False(ok)
}

func TestMusicXMLAlter(t *testing.T) {
	assert := assert.New(t)

	for _, a := range Alterations {
		back, err := AlterationFromMusicXML(a.MusicXML())
		assert.NoError(err)
		assert.Equal(a, back)
	}

	a, err := AlterationFromMusicXML(-1.5)
	assert.NoError(err)
	assert.Equal(SesquiFlat, a)

	_, err = AlterationFromMusicXML(0.25)
	assert.True(errors.Is(err, hkerr.ErrInvalidMusicXMLAlter))

	_, err = AlterationFromMusicXML(2.5)
	assert.True(errors.Is(err, hkerr.ErrInvalidMusicXMLAlter))
}
