package interval

// inversions pairs each simple interval with its octave complement.
var inversions = map[Interval]Interval{
	DiminishedUnison: AugmentedOctave,
	PerfectUnison:    PerfectUnison,
	AugmentedUnison:  DiminishedOctave,

	DiminishedSecond: AugmentedSeventh,
	MinorSecond:      MajorSeventh,
	MajorSecond:      MinorSeventh,
	AugmentedSecond:  DiminishedSeventh,

	DiminishedThird: AugmentedSixth,
	MinorThird:      MajorSixth,
	MajorThird:      MinorSixth,
	AugmentedThird:  DiminishedSixth,

	DiminishedFourth: AugmentedFifth,
	PerfectFourth:    PerfectFifth,
	AugmentedFourth:  DiminishedFifth,

	DiminishedFifth: AugmentedFourth,
	PerfectFifth:    PerfectFourth,
	AugmentedFifth:  DiminishedFourth,

	DiminishedSixth: AugmentedThird,
	MinorSixth:      MajorThird,
	MajorSixth:      MinorThird,
	AugmentedSixth:  DiminishedThird,

	DiminishedSeventh: AugmentedSecond,
	MinorSeventh:      MajorSecond,
	MajorSeventh:      MinorSecond,
	AugmentedSeventh:  DiminishedSecond,

	DiminishedOctave: AugmentedUnison,
	PerfectOctave:    PerfectOctave,
	AugmentedOctave:  DiminishedUnison,
}

// Invert returns the interval that completes i to an octave. It is an
// involution on simple intervals. A compound interval is reduced by octaves
// first, so Invert(MinorNinth) is MajorSeventh.
func Invert(i Interval) Interval {
	if !i.Valid() {
		return NoInterval
	}
	for i > AugmentedOctave {
		i -= octaveSpan
	}
	return inversions[i]
}
