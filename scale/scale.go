package scale

import (
	"strings"

	"github.com/jsphweid/chromatic/chord"
	"github.com/jsphweid/chromatic/note"
	"github.com/jsphweid/chromatic/util"
)

type Mode int

const (
	Major Mode = iota
	NaturalMinor
)

// Length is the number of notes in a diatonic scale.
const Length = 7

type modeDef struct {
	name      string
	steps     [Length]note.Interval
	qualities [Length]chord.Quality
	labels    [Length]string
}

var modes = map[Mode]modeDef{
	Major: {
		name:  "Major",
		steps: [Length]note.Interval{2, 2, 1, 2, 2, 2, 1},
		qualities: [Length]chord.Quality{
			chord.Major, chord.Minor, chord.Minor, chord.Major, chord.Major, chord.Minor, chord.Diminished,
		},
		labels: [Length]string{"I", "ii", "iii", "IV", "V", "vi", "vii"},
	},
	NaturalMinor: {
		name:  "Minor",
		steps: [Length]note.Interval{2, 1, 2, 2, 1, 2, 2},
		qualities: [Length]chord.Quality{
			chord.Minor, chord.Diminished, chord.Major, chord.Minor, chord.Minor, chord.Major, chord.Major,
		},
		labels: [Length]string{"i", "ii", "III", "iv", "v", "VI", "VII"},
	},
}

var Modes = []Mode{Major, NaturalMinor}

func (m Mode) String() string {
	return modes[m].name
}

// Steps is the whole/half step pattern, the last step closing the octave.
func (m Mode) Steps() [Length]note.Interval {
	return modes[m].steps
}

type Degree int

const (
	Tonic Degree = iota
	Supertonic
	Mediant
	Subdominant
	Dominant
	Submediant
	Subtonic
)

var degreeNames = [Length]string{
	"Tonic", "Supertonic", "Mediant", "Subdominant", "Dominant", "Submediant", "Subtonic",
}

var Degrees = []Degree{Tonic, Supertonic, Mediant, Subdominant, Dominant, Submediant, Subtonic}

func (d Degree) String() string {
	if d < Tonic || d > Subtonic {
		return "Unknown"
	}
	return degreeNames[d]
}

// Diatonic is a seven note scale; Notes[0] is the root.
type Diatonic struct {
	Root  note.PitchClass
	Mode  Mode
	Notes [Length]note.PitchClass
}

func New(root note.PitchClass, mode Mode) Diatonic {
	s := Diatonic{Root: root, Mode: mode}
	steps := mode.Steps()
	s.Notes[0] = root
	for i := 1; i < Length; i++ {
		s.Notes[i] = s.Notes[i-1].Add(steps[i-1])
	}
	return s
}

// wrap folds degrees outside Tonic..Subtonic back into the scale, so 7 is
// the tonic again and -1 the subtonic.
func (d Degree) wrap() Degree {
	return util.Mod(d, Length)
}

// Label is the roman numeral of a degree, upper case for major chords.
func (s Diatonic) Label(d Degree) string {
	return modes[s.Mode].labels[d.wrap()]
}

func (s Diatonic) Triad(d Degree) chord.Triad {
	d = d.wrap()
	return chord.New(s.Notes[d], modes[s.Mode].qualities[d])
}

func (s Diatonic) Triads() []chord.Triad {
	res := make([]chord.Triad, 0, Length)
	for _, d := range Degrees {
		res = append(res, s.Triad(d))
	}
	return res
}

// Name is e.g. "A Minor".
func (s Diatonic) Name() string {
	return s.Root.SharpName() + " " + s.Mode.String()
}

func (s Diatonic) String() string {
	return strings.Join(note.Names(s.Notes[:]), "-")
}

// Contains reports whether p is one of the scale's notes.
func (s Diatonic) Contains(p note.PitchClass) bool {
	for _, n := range s.Notes {
		if n == p {
			return true
		}
	}
	return false
}
