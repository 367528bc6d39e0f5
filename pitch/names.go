package pitch

import (
	"sort"
	"strings"
	"sync"

	"github.com/jsphweid/harmonykit/hkerr"
)

// Language selects the table used to name pitches.
type Language int

const (
	Nederlands Language = iota
	Catalan
	Deutsch
	English
	Espanol
	Francais
	Italiano
	Norsk
	Portugues
	Suomi
	Svenska
	Vlaams
	Arabic
)

var languageNames = [...]string{
	"nederlands", "catalan", "deutsch", "english", "espanol", "francais",
	"italiano", "norsk", "portugues", "suomi", "svenska", "vlaams", "arabic",
}

func (l Language) String() string {
	if l < Nederlands || l > Arabic {
		return "unknownLanguage"
	}
	return languageNames[l]
}

func Languages() []Language {
	res := make([]Language, 0, len(languageNames))
	for l := Nederlands; l <= Arabic; l++ {
		res = append(res, l)
	}
	return res
}

func ParseLanguage(name string) (Language, error) {
	for l, n := range languageNames {
		if strings.EqualFold(n, name) {
			return Language(l), nil
		}
	}
	return Nederlands, hkerr.New("parse language", name, hkerr.ErrUnknownLanguage).WithValid(languageNames[:])
}

var (
	letterStems  = map[DiatonicPitch]string{A: "a", B: "b", C: "c", D: "d", E: "e", F: "f", G: "g"}
	solfegeStems = map[DiatonicPitch]string{A: "la", B: "si", C: "do", D: "re", E: "mi", F: "fa", G: "sol"}
)

// spelling generates one language's names as stem + suffix, with per-pitch
// overrides for the irregular ones. Alterations missing from suffixes have no
// name in that language.
type spelling struct {
	stems     map[DiatonicPitch]string
	suffixes  map[Alteration]string
	overrides map[QuarterTonesPitch]string
}

var dutchSuffixes = map[Alteration]string{
	DoubleFlat: "eses", SesquiFlat: "eseh", Flat: "es", SemiFlat: "eh", Natural: "",
	SemiSharp: "ih", Sharp: "is", SesquiSharp: "isih", DoubleSharp: "isis",
}

var germanOverrides = map[QuarterTonesPitch]string{
	QADoubleFlat: "asas", QASesquiFlat: "asah", QAFlat: "as", QASemiFlat: "ah",
	QEDoubleFlat: "eses", QESesquiFlat: "eseh", QEFlat: "es", QESemiFlat: "eh",
	QBDoubleFlat: "heses", QBSesquiFlat: "heseh", QBFlat: "b", QBSemiFlat: "beh",
	QBNatural: "h", QBSemiSharp: "hih", QBSharp: "his", QBSesquiSharp: "hisih", QBDoubleSharp: "hisis",
}

func semiTonesOnly(suffixes map[Alteration]string) map[Alteration]string {
	res := make(map[Alteration]string)
	for a, s := range suffixes {
		if !a.IsQuarterToneOnly() {
			res[a] = s
		}
	}
	return res
}

var spellings = map[Language]spelling{
	Nederlands: {stems: letterStems, suffixes: dutchSuffixes},
	Catalan: {stems: solfegeStems, suffixes: map[Alteration]string{
		DoubleFlat: "bb", Flat: "b", Natural: "", Sharp: "d", DoubleSharp: "dd",
	}},
	Deutsch: {stems: letterStems, suffixes: dutchSuffixes, overrides: germanOverrides},
	English: {stems: letterStems, suffixes: map[Alteration]string{
		DoubleFlat: "ff", SesquiFlat: "tqf", Flat: "f", SemiFlat: "qf", Natural: "",
		SemiSharp: "qs", Sharp: "s", SesquiSharp: "tqs", DoubleSharp: "x",
	}},
	Espanol: {stems: solfegeStems, suffixes: map[Alteration]string{
		DoubleFlat: "bb", SesquiFlat: "tcb", Flat: "b", SemiFlat: "cb", Natural: "",
		SemiSharp: "cs", Sharp: "s", SesquiSharp: "tcs", DoubleSharp: "x",
	}},
	Francais: {stems: solfegeStems, suffixes: map[Alteration]string{
		DoubleFlat: "bb", SesquiFlat: "btqt", Flat: "b", SemiFlat: "bqt", Natural: "",
		SemiSharp: "sqt", Sharp: "d", SesquiSharp: "stqt", DoubleSharp: "ss",
	}},
	Italiano: {stems: solfegeStems, suffixes: map[Alteration]string{
		DoubleFlat: "bb", SesquiFlat: "bsb", Flat: "b", SemiFlat: "sb", Natural: "",
		SemiSharp: "sd", Sharp: "d", SesquiSharp: "dsd", DoubleSharp: "dd",
	}},
	Norsk: {stems: letterStems, suffixes: semiTonesOnly(dutchSuffixes)},
	Portugues: {stems: solfegeStems, suffixes: map[Alteration]string{
		DoubleFlat: "bb", SesquiFlat: "btqt", Flat: "b", SemiFlat: "sb", Natural: "",
		SemiSharp: "sd", Sharp: "d", SesquiSharp: "dsd", DoubleSharp: "dd",
	}},
	Suomi: {stems: letterStems, suffixes: semiTonesOnly(dutchSuffixes), overrides: map[QuarterTonesPitch]string{
		QADoubleFlat: "asas", QAFlat: "as",
		QEDoubleFlat: "eses", QEFlat: "es",
		QBDoubleFlat: "bes", QBFlat: "b", QBNatural: "h", QBSharp: "his", QBDoubleSharp: "hisis",
	}},
	Svenska: {stems: letterStems, suffixes: map[Alteration]string{
		DoubleFlat: "essess", Flat: "ess", Natural: "", Sharp: "iss", DoubleSharp: "ississ",
	}, overrides: map[QuarterTonesPitch]string{
		QADoubleFlat: "assess", QAFlat: "ass",
		QEDoubleFlat: "essess", QEFlat: "ess",
		QBDoubleFlat: "hessess", QBFlat: "b", QBNatural: "h", QBSharp: "hiss", QBDoubleSharp: "hississ",
	}},
	Vlaams: {stems: solfegeStems, suffixes: map[Alteration]string{
		DoubleFlat: "bb", Flat: "b", Natural: "", Sharp: "k", DoubleSharp: "kk",
	}},
	Arabic: {stems: solfegeStems, suffixes: map[Alteration]string{
		DoubleFlat: "bb", Flat: "b", Natural: "", Sharp: "k", DoubleSharp: "kk",
	}},
}

type nameTable struct {
	byPitch map[QuarterTonesPitch]string
	byName  map[string]QuarterTonesPitch
	names   []string
}

var (
	nameTablesOnce sync.Once
	nameTables     map[Language]*nameTable
)

func buildNameTables() {
	nameTables = make(map[Language]*nameTable, len(spellings))
	for lang, sp := range spellings {
		t := &nameTable{
			byPitch: map[QuarterTonesPitch]string{Rest: "r", Skip: "s"},
			byName:  map[string]QuarterTonesPitch{"r": Rest, "s": Skip},
		}
		for _, q := range QuarterTonesPitches() {
			d, a, _ := q.DiatonicAndAlteration()
			name, ok := sp.overrides[q]
			if !ok {
				suffix, known := sp.suffixes[a]
				if !known {
					continue
				}
				name = sp.stems[d] + suffix
			}
			t.byPitch[q] = name
			if _, taken := t.byName[name]; !taken {
				t.byName[name] = q
			}
		}
		for name := range t.byName {
			t.names = append(t.names, name)
		}
		sort.Strings(t.names)
		nameTables[lang] = t
	}
}

func tableFor(lang Language) *nameTable {
	nameTablesOnce.Do(buildNameTables)
	if t, ok := nameTables[lang]; ok {
		return t
	}
	return nameTables[Nederlands]
}

// LocalizedName names q in lang, falling back to the canonical tag for
// spellings the language has no name for.
func LocalizedName(q QuarterTonesPitch, lang Language) string {
	if name, ok := tableFor(lang).byPitch[q]; ok {
		return name
	}
	return q.String()
}

func (s SemiTonesPitch) Name(lang Language) string {
	if !s.IsPitch() {
		return s.String()
	}
	return LocalizedName(s.QuarterTones(), lang)
}

func (q QuarterTonesPitch) Name(lang Language) string {
	return LocalizedName(q, lang)
}

// PitchNames returns the sorted names lang accepts, rest and skip included.
func PitchNames(lang Language) []string {
	names := tableFor(lang).names
	res := make([]string, len(names))
	copy(res, names)
	return res
}

func ParseQuarterTonesPitch(name string, lang Language) (QuarterTonesPitch, error) {
	t := tableFor(lang)
	if q, ok := t.byName[name]; ok {
		return q, nil
	}
	return NoQuarterTonesPitch, hkerr.New("parse "+lang.String()+" pitch", name, hkerr.ErrUnknownPitchName).WithValid(PitchNames(lang))
}

func ParseSemiTonesPitch(name string, lang Language) (SemiTonesPitch, error) {
	q, err := ParseQuarterTonesPitch(name, lang)
	if err != nil {
		return NoSemiTonesPitch, err
	}
	return q.SemiTones()
}
