package pitch

// Respell returns the spelling of s's pitch class that uses the alteration
// prefer, if one exists.
func (s SemiTonesPitch) Respell(prefer Alteration) (SemiTonesPitch, bool) {
	want, ok := prefer.Semitones()
	if !ok || !s.IsPitch() {
		return NoSemiTonesPitch, false
	}
	pc := s.PitchClass()
	for _, d := range diatonicsFromC {
		alter := pc - d.NaturalSemitones()
		if alter >= 6 {
			alter -= 12
		} else if alter < -6 {
			alter += 12
		}
		if alter == want {
			res, err := SemiTonesPitchFrom(d, prefer)
			if err != nil {
				return NoSemiTonesPitch, false
			}
			return res, true
		}
	}
	return NoSemiTonesPitch, false
}

// Enharmonic returns the simplest other spelling of s: a natural when there is
// one, otherwise the single accidental on the opposite side (C♯ to D♭), and so
// on outwards. Naturals are returned unchanged.
func (s SemiTonesPitch) Enharmonic() SemiTonesPitch {
	semis := s.AlterationSemitones()
	if !s.IsPitch() || semis == 0 {
		return s
	}

	opposite, same := Flat, Sharp
	oppositeDouble, sameDouble := DoubleFlat, DoubleSharp
	if semis < 0 {
		opposite, same = Sharp, Flat
		oppositeDouble, sameDouble = DoubleSharp, DoubleFlat
	}

	for _, prefer := range []Alteration{Natural, opposite, same, oppositeDouble, sameDouble} {
		if res, ok := s.Respell(prefer); ok && res != s {
			return res
		}
	}
	return s
}
