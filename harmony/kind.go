package harmony

import (
	"sort"
	"sync"

	"github.com/jsphweid/harmonykit/hkerr"
)

type Kind int

const (
	KindNone Kind = iota

	Major
	Minor
	Augmented
	Diminished

	Dominant
	MajorSeventh
	MinorSeventh
	DiminishedSeventh
	AugmentedSeventh
	HalfDiminished
	MinorMajorSeventh

	MajorSixth
	MinorSixth

	DominantNinth
	MajorNinth
	MinorNinth

	DominantEleventh
	MajorEleventh
	MinorEleventh

	DominantThirteenth
	MajorThirteenth
	MinorThirteenth

	SuspendedSecond
	SuspendedFourth

	Neapolitan
	Italian
	French
	German

	Pedal
	Power
	Tristan

	MinorMajorNinth
	DominantSuspendedFourth
	DominantAugmentedFifth
	DominantMinorNinth
	DominantAugmentedNinthDiminishedFifth
	DominantAugmentedNinthAugmentedFifth
	DominantAugmentedEleventh
	MajorSeventhAugmentedEleventh

	KindOther
)

var kinds = [...]struct {
	name  string
	short string
	jazz  string
}{
	KindNone: {"noHarmony", "none", ""},

	Major:      {"major", "maj", ""},
	Minor:      {"minor", "min", ""},
	Augmented:  {"augmented", "aug", ""},
	Diminished: {"diminished", "dim", ""},

	Dominant:          {"dominant", "dom", ""},
	MajorSeventh:      {"majorSeventh", "maj7", ""},
	MinorSeventh:      {"minorSeventh", "min7", ""},
	DiminishedSeventh: {"diminishedSeventh", "dim7", ""},
	AugmentedSeventh:  {"augmentedSeventh", "aug7", ""},
	HalfDiminished:    {"halfDiminished", "halfdim", ""},
	MinorMajorSeventh: {"minorMajorSeventh", "minmaj7", ""},

	MajorSixth: {"majorSixth", "maj6", ""},
	MinorSixth: {"minorSixth", "min6", ""},

	DominantNinth: {"dominantNinth", "dom9", ""},
	MajorNinth:    {"majorNinth", "maj9", ""},
	MinorNinth:    {"minorNinth", "min9", ""},

	DominantEleventh: {"dominantEleventh", "dom11", ""},
	MajorEleventh:    {"majorEleventh", "maj11", ""},
	MinorEleventh:    {"minorEleventh", "min11", ""},

	DominantThirteenth: {"dominantThirteenth", "dom13", ""},
	MajorThirteenth:    {"majorThirteenth", "maj13", ""},
	MinorThirteenth:    {"minorThirteenth", "min13", ""},

	SuspendedSecond: {"suspendedSecond", "sus2", ""},
	SuspendedFourth: {"suspendedFourth", "sus4", ""},

	Neapolitan: {"neapolitan", "neapolitan", ""},
	Italian:    {"italian", "italian", ""},
	French:     {"french", "french", ""},
	German:     {"german", "german", ""},

	Pedal:   {"pedal", "pedal", ""},
	Power:   {"power", "power", ""},
	Tristan: {"tristan", "tristan", ""},

	MinorMajorNinth:                       {"minorMajorNinth", "minmaj9", "-maj9"},
	DominantSuspendedFourth:               {"dominantSuspendedFourth", "domsus4", "7sus4"},
	DominantAugmentedFifth:                {"dominantAugmentedFifth", "domaug5", "7#5"},
	DominantMinorNinth:                    {"dominantMinorNinth", "dommin9", "7b9"},
	DominantAugmentedNinthDiminishedFifth: {"dominantAugmentedNinthDiminishedFifth", "domaug9dim5", "7#9b5"},
	DominantAugmentedNinthAugmentedFifth:  {"dominantAugmentedNinthAugmentedFifth", "domaug9aug5", "7#9#5"},
	DominantAugmentedEleventh:             {"dominantAugmentedEleventh", "domaug11", "7#11"},
	MajorSeventhAugmentedEleventh:         {"majorSeventhAugmentedEleventh", "maj7aug11", "maj7#11"},

	KindOther: {"otherHarmony", "other", ""},
}

// Kinds lists the buildable kinds in declaration order.
func Kinds() []Kind {
	res := make([]Kind, 0, KindOther-1)
	for k := Major; k < KindOther; k++ {
		res = append(res, k)
	}
	return res
}

func (k Kind) valid() bool {
	return k > KindNone && k < KindOther
}

func (k Kind) String() string {
	if k < KindNone || k > KindOther {
		return kinds[KindNone].name
	}
	return kinds[k].name
}

// ShortName is the name used in requests such as "c maj7".
func (k Kind) ShortName() string {
	if k < KindNone || k > KindOther {
		return kinds[KindNone].short
	}
	return kinds[k].short
}

// JazzName is the chord-symbol alias, empty when there is none.
func (k Kind) JazzName() string {
	if !k.valid() {
		return ""
	}
	return kinds[k].jazz
}

var (
	kindNamesOnce sync.Once
	kindsByName   map[string]Kind
	shortNames    []string
)

func buildKindNames() {
	kindsByName = make(map[string]Kind)
	for _, k := range Kinds() {
		kindsByName[k.ShortName()] = k
		kindsByName[k.String()] = k
		if k.JazzName() != "" {
			kindsByName[k.JazzName()] = k
		}
		shortNames = append(shortNames, k.ShortName())
	}
	sort.Strings(shortNames)
}

// KindFromString accepts short names ("dommin9"), long names
// ("dominantMinorNinth") and the jazz aliases ("7b9").
func KindFromString(name string) (Kind, error) {
	kindNamesOnce.Do(buildKindNames)
	if k, ok := kindsByName[name]; ok {
		return k, nil
	}
	return KindNone, hkerr.New("parse harmony", name, hkerr.ErrUnknownHarmonyName).WithValid(shortNames)
}

// ShortNames returns the accepted short names, sorted.
func ShortNames() []string {
	kindNamesOnce.Do(buildKindNames)
	res := make([]string, len(shortNames))
	copy(res, shortNames)
	return res
}
