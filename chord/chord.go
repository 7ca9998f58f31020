package chord

import (
	"sort"
	"strings"

	"github.com/jsphweid/chromatic/note"
	"github.com/jsphweid/chromatic/util"
)

type Quality int

const (
	Major Quality = iota
	Minor
	Augmented
	Diminished
	SuspendedFourth
	SuspendedSecond
)

type qualityDef struct {
	second   note.Interval
	third    note.Interval
	fullName string
	suffix   string
}

var qualities = map[Quality]qualityDef{
	Major:           {note.MajorThird, note.Fifth, "Major", ""},
	Minor:           {note.MinorThird, note.Fifth, "Minor", "m"},
	Augmented:       {note.MajorThird, note.Fifth + 1, "Augmented", "a"},
	Diminished:      {note.MinorThird, note.Fifth - 1, "Diminished", "o"},
	SuspendedFourth: {note.Fourth, note.Fifth, "Suspended Fourth", "sus4"},
	SuspendedSecond: {note.MajorSecond, note.Fifth, "Suspended Second", "sus2"},
}

// Qualities lists every quality in declaration order.
var Qualities = []Quality{Major, Minor, Augmented, Diminished, SuspendedFourth, SuspendedSecond}

func (q Quality) String() string {
	return qualities[q].fullName
}

func (q Quality) Suffix() string {
	return qualities[q].suffix
}

// Offsets returns the semitone distances of the second and third note from
// the root.
func (q Quality) Offsets() (note.Interval, note.Interval) {
	d := qualities[q]
	return d.second, d.third
}

// Triad is a three note chord. Display strings are rendered once by New, so
// a Triad can be copied and shared freely.
type Triad struct {
	Root    note.PitchClass
	Quality Quality
	Second  note.PitchClass
	Third   note.PitchClass

	name string
	str  string
}

func New(root note.PitchClass, quality Quality) Triad {
	second, third := quality.Offsets()
	t := Triad{
		Root:    root,
		Quality: quality,
		Second:  root.Add(second),
		Third:   root.Add(third),
	}
	t.name = t.Root.SharpName() + " " + quality.String()
	t.str = CreateChordKey(t.Notes())
	return t
}

func (t Triad) Notes() []note.PitchClass {
	return []note.PitchClass{t.Root, t.Second, t.Third}
}

// Name is e.g. "C# Minor".
func (t Triad) Name() string {
	return t.name
}

// String is the hyphen joined notes, e.g. "C#-E-G#".
func (t Triad) String() string {
	return t.str
}

// Symbol is the shorthand form accepted by Parse, e.g. "C#m".
func (t Triad) Symbol() string {
	return t.Root.SharpName() + t.Quality.Suffix()
}

// CreateChordKey joins sharp note names with hyphens, in the given order.
func CreateChordKey(notes []note.PitchClass) string {
	return strings.Join(note.Names(notes), "-")
}

func pitchSet(notes []note.PitchClass) []note.PitchClass {
	var set []note.PitchClass
	for _, n := range notes {
		set = append(set, note.New(int(n)))
	}
	set = util.Unique(set)
	sort.Slice(set, func(i, j int) bool {
		return set[i] < set[j]
	})
	return set
}

// Identify returns every triad whose pitch classes are exactly the given set,
// ordered by root then quality. Duplicates in notes are ignored.
func Identify(notes []note.PitchClass) []Triad {
	want := pitchSet(notes)
	if len(want) != 3 {
		return nil
	}

	var res []Triad
	for root := note.C; root <= note.B; root++ {
		for _, q := range Qualities {
			t := New(root, q)
			if CreateChordKey(pitchSet(t.Notes())) == CreateChordKey(want) {
				res = append(res, t)
			}
		}
	}
	return res
}
