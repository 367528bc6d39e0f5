package interval

import (
	"sort"
	"sync"

	"github.com/jsphweid/harmonykit/hkerr"
)

type Interval int

const (
	NoInterval Interval = iota

	DiminishedUnison
	PerfectUnison
	AugmentedUnison

	DiminishedSecond
	MinorSecond
	MajorSecond
	AugmentedSecond

	DiminishedThird
	MinorThird
	MajorThird
	AugmentedThird

	DiminishedFourth
	PerfectFourth
	AugmentedFourth

	DiminishedFifth
	PerfectFifth
	AugmentedFifth

	DiminishedSixth
	MinorSixth
	MajorSixth
	AugmentedSixth

	DiminishedSeventh
	MinorSeventh
	MajorSeventh
	AugmentedSeventh

	DiminishedOctave
	PerfectOctave
	AugmentedOctave

	DiminishedNinth
	MinorNinth
	MajorNinth
	AugmentedNinth

	DiminishedTenth
	MinorTenth
	MajorTenth
	AugmentedTenth

	DiminishedEleventh
	PerfectEleventh
	AugmentedEleventh

	DiminishedTwelfth
	PerfectTwelfth
	AugmentedTwelfth

	DiminishedThirteenth
	MinorThirteenth
	MajorThirteenth
	AugmentedThirteenth
)

// octaveSpan is the ordinal distance between a compound interval and the
// simple one it reduces to, e.g. MinorNinth and MinorSecond.
const octaveSpan = DiminishedOctave - DiminishedUnison

type Quality int

const (
	NoQuality Quality = iota
	Diminished
	Minor
	Perfect
	Major
	Augmented
)

var qualityNames = [...]string{"noQuality", "diminished", "minor", "perfect", "major", "augmented"}

func (q Quality) String() string {
	if q < NoQuality || q > Augmented {
		return qualityNames[NoQuality]
	}
	return qualityNames[q]
}

var intervals = [...]struct {
	name      string
	short     string
	number    int
	quality   Quality
	semitones int
}{
	NoInterval: {"noInterval", "noInterval", 0, NoQuality, 0},

	DiminishedUnison: {"diminishedUnison", "bu", 1, Diminished, -1},
	PerfectUnison:    {"perfectUnison", "u", 1, Perfect, 0},
	AugmentedUnison:  {"augmentedUnison", "#u", 1, Augmented, 1},

	DiminishedSecond: {"diminishedSecond", "bb2", 2, Diminished, 0},
	MinorSecond:      {"minorSecond", "b2", 2, Minor, 1},
	MajorSecond:      {"majorSecond", "2", 2, Major, 2},
	AugmentedSecond:  {"augmentedSecond", "#2", 2, Augmented, 3},

	DiminishedThird: {"diminishedThird", "bb3", 3, Diminished, 2},
	MinorThird:      {"minorThird", "b3", 3, Minor, 3},
	MajorThird:      {"majorThird", "3", 3, Major, 4},
	AugmentedThird:  {"augmentedThird", "#3", 3, Augmented, 5},

	DiminishedFourth: {"diminishedFourth", "b4", 4, Diminished, 4},
	PerfectFourth:    {"perfectFourth", "4", 4, Perfect, 5},
	AugmentedFourth:  {"augmentedFourth", "#4", 4, Augmented, 6},

	DiminishedFifth: {"diminishedFifth", "b5", 5, Diminished, 6},
	PerfectFifth:    {"perfectFifth", "5", 5, Perfect, 7},
	AugmentedFifth:  {"augmentedFifth", "#5", 5, Augmented, 8},

	DiminishedSixth: {"diminishedSixth", "bb6", 6, Diminished, 7},
	MinorSixth:      {"minorSixth", "b6", 6, Minor, 8},
	MajorSixth:      {"majorSixth", "6", 6, Major, 9},
	AugmentedSixth:  {"augmentedSixth", "#6", 6, Augmented, 10},

	DiminishedSeventh: {"diminishedSeventh", "b7", 7, Diminished, 9},
	MinorSeventh:      {"minorSeventh", "7", 7, Minor, 10},
	MajorSeventh:      {"majorSeventh", "∆7", 7, Major, 11},
	AugmentedSeventh:  {"augmentedSeventh", "∆∆7", 7, Augmented, 12},

	DiminishedOctave: {"diminishedOctave", "b8", 8, Diminished, 11},
	PerfectOctave:    {"perfectOctave", "8", 8, Perfect, 12},
	AugmentedOctave:  {"augmentedOctave", "#8", 8, Augmented, 13},

	DiminishedNinth: {"diminishedNinth", "bb9", 9, Diminished, 12},
	MinorNinth:      {"minorNinth", "b9", 9, Minor, 13},
	MajorNinth:      {"majorNinth", "9", 9, Major, 14},
	AugmentedNinth:  {"augmentedNinth", "#9", 9, Augmented, 15},

	DiminishedTenth: {"diminishedTenth", "bb10", 10, Diminished, 14},
	MinorTenth:      {"minorTenth", "b10", 10, Minor, 15},
	MajorTenth:      {"majorTenth", "10", 10, Major, 16},
	AugmentedTenth:  {"augmentedTenth", "#10", 10, Augmented, 17},

	DiminishedEleventh: {"diminishedEleventh", "b11", 11, Diminished, 16},
	PerfectEleventh:    {"perfectEleventh", "11", 11, Perfect, 17},
	AugmentedEleventh:  {"augmentedEleventh", "#11", 11, Augmented, 18},

	DiminishedTwelfth: {"diminishedTwelfth", "b12", 12, Diminished, 18},
	PerfectTwelfth:    {"perfectTwelfth", "12", 12, Perfect, 19},
	AugmentedTwelfth:  {"augmentedTwelfth", "#12", 12, Augmented, 20},

	DiminishedThirteenth: {"diminishedThirteenth", "bb13", 13, Diminished, 19},
	MinorThirteenth:      {"minorThirteenth", "b13", 13, Minor, 20},
	MajorThirteenth:      {"majorThirteenth", "13", 13, Major, 21},
	AugmentedThirteenth:  {"augmentedThirteenth", "#13", 13, Augmented, 22},
}

// All lists the intervals from DiminishedUnison to AugmentedThirteenth.
func All() []Interval {
	res := make([]Interval, 0, AugmentedThirteenth)
	for i := DiminishedUnison; i <= AugmentedThirteenth; i++ {
		res = append(res, i)
	}
	return res
}

func (i Interval) Valid() bool {
	return i >= DiminishedUnison && i <= AugmentedThirteenth
}

func (i Interval) info() int {
	if !i.Valid() {
		return int(NoInterval)
	}
	return int(i)
}

func (i Interval) String() string {
	return intervals[i.info()].name
}

// Short is the chord-symbol form: "3", "b7", "#11", "∆7".
func (i Interval) Short() string {
	return intervals[i.info()].short
}

// Number is the generic size, 1 for unisons up to 13.
func (i Interval) Number() int {
	return intervals[i.info()].number
}

func (i Interval) Quality() Quality {
	return intervals[i.info()].quality
}

// Semitones spans -1 (DiminishedUnison) to 22 (AugmentedThirteenth).
func (i Interval) Semitones() int {
	return intervals[i.info()].semitones
}

// IsSimple reports intervals up to and including the octave.
func (i Interval) IsSimple() bool {
	return i.Valid() && i <= AugmentedOctave
}

var (
	namesOnce sync.Once
	byName    map[string]Interval
	names     []string
)

func buildNames() {
	byName = make(map[string]Interval, 2*len(intervals))
	for _, i := range All() {
		byName[i.String()] = i
		byName[i.Short()] = i
	}
	for name := range byName {
		names = append(names, name)
	}
	sort.Strings(names)
}

// Parse accepts both the long ("minorSeventh") and short ("7") forms.
func Parse(name string) (Interval, error) {
	namesOnce.Do(buildNames)
	if i, ok := byName[name]; ok {
		return i, nil
	}
	return NoInterval, hkerr.New("parse interval", name, hkerr.ErrUnknownIntervalName).WithValid(names)
}
