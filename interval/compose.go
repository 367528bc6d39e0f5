package interval

import (
	"fmt"
	"sync"

	"github.com/jsphweid/harmonykit/hkerr"
)

type stepsAndSemitones struct {
	steps, semitones int
}

var (
	simpleOnce sync.Once
	simple     map[stepsAndSemitones]Interval
)

func buildSimple() {
	simple = make(map[stepsAndSemitones]Interval)
	for i := DiminishedUnison; i <= AugmentedSeventh; i++ {
		simple[stepsAndSemitones{i.Number() - 1, i.Semitones()}] = i
	}
}

// Lookup names the interval spanning steps letters and semitones half steps,
// normalized: the interval is at most AugmentedSeventh and whole octaves of
// steps go to RelativeOctave.
func Lookup(steps, semitones int) (HarmonyInterval, error) {
	simpleOnce.Do(buildSimple)
	if steps < 0 {
		return HarmonyInterval{}, hkerr.New("interval lookup", fmt.Sprintf("%d steps, %d semitones", steps, semitones), hkerr.ErrUnrepresentableInterval)
	}
	octaves := steps / 7
	i, ok := simple[stepsAndSemitones{steps % 7, semitones - 12*octaves}]
	if !ok {
		return HarmonyInterval{}, hkerr.New("interval lookup", fmt.Sprintf("%d steps, %d semitones", steps, semitones), hkerr.ErrUnrepresentableInterval)
	}
	return HarmonyInterval{Interval: i, RelativeOctave: octaves}, nil
}

func above(a, b HarmonyInterval) bool {
	if a.Steps() != b.Steps() {
		return a.Steps() > b.Steps()
	}
	return a.Semitones() > b.Semitones()
}

// Difference is the interval from b up to a. When b lies above a the
// operands are swapped and the result is inverted, so Difference(MajorThird,
// PerfectFifth) is a MajorSixth rather than a descending minor third.
func Difference(a, b HarmonyInterval) (HarmonyInterval, error) {
	hi, lo := a.Normalize(), b.Normalize()
	swapped := false
	if above(lo, hi) {
		hi, lo = lo, hi
		swapped = true
	}

	res, err := Lookup(hi.Steps()-lo.Steps(), hi.Semitones()-lo.Semitones())
	if err != nil {
		return HarmonyInterval{}, err
	}
	if swapped {
		res.Interval = Invert(res.Interval)
	}
	return res.Denormalize(), nil
}

// Sum stacks b on top of a.
func Sum(a, b HarmonyInterval) (HarmonyInterval, error) {
	a, b = a.Normalize(), b.Normalize()
	res, err := Lookup(a.Steps()+b.Steps(), a.Semitones()+b.Semitones())
	if err != nil {
		return HarmonyInterval{}, err
	}
	return res.Denormalize(), nil
}
