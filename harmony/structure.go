package harmony

import (
	"fmt"
	"strings"
	"sync"

	"github.com/jsphweid/harmonykit/hkerr"
	"github.com/jsphweid/harmonykit/interval"
)

// Structure is the stack of intervals above the root that defines a kind.
// Build always puts PerfectUnison first; inverted structures start with the
// bass.
type Structure struct {
	Kind      Kind
	Intervals []interval.HarmonyInterval
}

var stacks = map[Kind][]interval.Interval{
	Major:      {interval.PerfectUnison, interval.MajorThird, interval.PerfectFifth},
	Minor:      {interval.PerfectUnison, interval.MinorThird, interval.PerfectFifth},
	Augmented:  {interval.PerfectUnison, interval.MajorThird, interval.AugmentedFifth},
	Diminished: {interval.PerfectUnison, interval.MinorThird, interval.DiminishedFifth},

	Dominant:          {interval.PerfectUnison, interval.MajorThird, interval.PerfectFifth, interval.MinorSeventh},
	MajorSeventh:      {interval.PerfectUnison, interval.MajorThird, interval.PerfectFifth, interval.MajorSeventh},
	MinorSeventh:      {interval.PerfectUnison, interval.MinorThird, interval.PerfectFifth, interval.MinorSeventh},
	DiminishedSeventh: {interval.PerfectUnison, interval.MinorThird, interval.DiminishedFifth, interval.DiminishedSeventh},
	AugmentedSeventh:  {interval.PerfectUnison, interval.MajorThird, interval.AugmentedFifth, interval.MinorSeventh},
	HalfDiminished:    {interval.PerfectUnison, interval.MinorThird, interval.DiminishedFifth, interval.MinorSeventh},
	MinorMajorSeventh: {interval.PerfectUnison, interval.MinorThird, interval.PerfectFifth, interval.MajorSeventh},

	MajorSixth: {interval.PerfectUnison, interval.MajorThird, interval.PerfectFifth, interval.MajorSixth},
	MinorSixth: {interval.PerfectUnison, interval.MinorThird, interval.PerfectFifth, interval.MajorSixth},

	DominantNinth: {interval.PerfectUnison, interval.MajorThird, interval.PerfectFifth, interval.MinorSeventh, interval.MajorNinth},
	MajorNinth:    {interval.PerfectUnison, interval.MajorThird, interval.PerfectFifth, interval.MajorSeventh, interval.MajorNinth},
	MinorNinth:    {interval.PerfectUnison, interval.MinorThird, interval.PerfectFifth, interval.MinorSeventh, interval.MajorNinth},

	DominantEleventh: {interval.PerfectUnison, interval.MajorThird, interval.PerfectFifth, interval.MinorSeventh, interval.MajorNinth, interval.PerfectEleventh},
	MajorEleventh:    {interval.PerfectUnison, interval.MajorThird, interval.PerfectFifth, interval.MajorSeventh, interval.MajorNinth, interval.PerfectEleventh},
	MinorEleventh:    {interval.PerfectUnison, interval.MinorThird, interval.PerfectFifth, interval.MinorSeventh, interval.MajorNinth, interval.PerfectEleventh},

	DominantThirteenth: {interval.PerfectUnison, interval.MajorThird, interval.PerfectFifth, interval.MinorSeventh, interval.MajorNinth, interval.PerfectEleventh, interval.MajorThirteenth},
	MajorThirteenth:    {interval.PerfectUnison, interval.MajorThird, interval.PerfectFifth, interval.MajorSeventh, interval.MajorNinth, interval.PerfectEleventh, interval.MajorThirteenth},
	MinorThirteenth:    {interval.PerfectUnison, interval.MinorThird, interval.PerfectFifth, interval.MinorSeventh, interval.MajorNinth, interval.PerfectEleventh, interval.MajorThirteenth},

	SuspendedSecond: {interval.PerfectUnison, interval.MajorSecond, interval.PerfectFifth},
	SuspendedFourth: {interval.PerfectUnison, interval.PerfectFourth, interval.PerfectFifth},

	Neapolitan: {interval.PerfectUnison, interval.MinorThird, interval.MinorSixth},
	Italian:    {interval.PerfectUnison, interval.MajorThird, interval.AugmentedSixth},
	French:     {interval.PerfectUnison, interval.MajorThird, interval.AugmentedFourth, interval.AugmentedSixth},
	German:     {interval.PerfectUnison, interval.MajorThird, interval.PerfectFifth, interval.AugmentedSixth},

	Pedal:   {interval.PerfectUnison},
	Power:   {interval.PerfectUnison, interval.PerfectFifth},
	Tristan: {interval.PerfectUnison, interval.AugmentedFourth, interval.AugmentedSixth, interval.AugmentedNinth},

	MinorMajorNinth:                       {interval.PerfectUnison, interval.MinorThird, interval.PerfectFifth, interval.MajorSeventh, interval.MajorNinth},
	DominantSuspendedFourth:               {interval.PerfectUnison, interval.PerfectFourth, interval.PerfectFifth, interval.MinorSeventh},
	DominantAugmentedFifth:                {interval.PerfectUnison, interval.MajorThird, interval.AugmentedFifth, interval.MinorSeventh},
	DominantMinorNinth:                    {interval.PerfectUnison, interval.MajorThird, interval.PerfectFifth, interval.MinorSeventh, interval.MinorNinth},
	DominantAugmentedNinthDiminishedFifth: {interval.PerfectUnison, interval.MajorThird, interval.DiminishedFifth, interval.MinorSeventh, interval.AugmentedNinth},
	DominantAugmentedNinthAugmentedFifth:  {interval.PerfectUnison, interval.MajorThird, interval.AugmentedFifth, interval.MinorSeventh, interval.AugmentedNinth},
	DominantAugmentedEleventh:             {interval.PerfectUnison, interval.MajorThird, interval.PerfectFifth, interval.MinorSeventh, interval.AugmentedEleventh},
	MajorSeventhAugmentedEleventh:         {interval.PerfectUnison, interval.MajorThird, interval.PerfectFifth, interval.MajorSeventh, interval.AugmentedEleventh},
}

var (
	structuresOnce sync.Once
	structures     map[Kind]Structure
)

func buildStructures() {
	structures = make(map[Kind]Structure, len(stacks))
	for k, stack := range stacks {
		s := Structure{Kind: k, Intervals: make([]interval.HarmonyInterval, 0, len(stack))}
		for _, i := range stack {
			s.Intervals = append(s.Intervals, interval.New(i))
		}
		structures[k] = s
	}
}

// Build returns the root-position structure of k. The result is a copy and
// may be modified by the caller.
func Build(k Kind) (Structure, error) {
	structuresOnce.Do(buildStructures)
	s, ok := structures[k]
	if !ok {
		return Structure{}, hkerr.New("build harmony structure", k, hkerr.ErrInvalidHarmonyKind)
	}
	return s.clone(), nil
}

func (s Structure) clone() Structure {
	res := Structure{Kind: s.Kind, Intervals: make([]interval.HarmonyInterval, len(s.Intervals))}
	copy(res.Intervals, s.Intervals)
	return res
}

func (s Structure) Size() int {
	return len(s.Intervals)
}

func (s Structure) checkInversion(op string, inversion int) error {
	if inversion < 0 || inversion >= s.Size() {
		return hkerr.New(op, fmt.Sprintf("%d of %v", inversion, s.Kind), hkerr.ErrInvalidInversion)
	}
	return nil
}

// Invert rotates the stack left by inversion places; the intervals moved to
// the top go up one octave. Inversion 0 returns s itself.
func Invert(s Structure, inversion int) (Structure, error) {
	if err := s.checkInversion("invert harmony structure", inversion); err != nil {
		return Structure{}, err
	}
	if inversion == 0 {
		return s, nil
	}

	res := Structure{Kind: s.Kind, Intervals: make([]interval.HarmonyInterval, 0, s.Size())}
	res.Intervals = append(res.Intervals, s.Intervals[inversion:]...)
	for _, h := range s.Intervals[:inversion] {
		h.RelativeOctave++
		res.Intervals = append(res.Intervals, h)
	}
	return res, nil
}

// BassIntervalForInversion is the interval that ends up in the bass.
func BassIntervalForInversion(s Structure, inversion int) (interval.HarmonyInterval, error) {
	if err := s.checkInversion("bass interval for inversion", inversion); err != nil {
		return interval.HarmonyInterval{}, err
	}
	return s.Intervals[inversion], nil
}

// Semitones lists each interval's distance above the root.
func (s Structure) Semitones() []int {
	res := make([]int, 0, s.Size())
	for _, h := range s.Intervals {
		res = append(res, h.Semitones())
	}
	return res
}

func (s Structure) String() string {
	parts := make([]string, 0, s.Size())
	for _, h := range s.Intervals {
		parts = append(parts, h.Short())
	}
	return s.Kind.ShortName() + " [" + strings.Join(parts, " ") + "]"
}
