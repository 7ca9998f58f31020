package note

import (
	"strings"

	"github.com/jsphweid/chromatic/model"
	"github.com/jsphweid/chromatic/util"
)

// PitchClass is one of the 12 equal-tempered notes of an octave, C = 0.
// Every constructor and operation keeps it within [0,11].
type PitchClass int

const (
	C PitchClass = iota
	CSharp
	D
	DSharp
	E
	F
	FSharp
	G
	GSharp
	A
	ASharp
	B
)

const (
	DFlat = CSharp
	EFlat = DSharp
	GFlat = FSharp
	AFlat = GSharp
	BFlat = ASharp
)

// Count is the number of pitch classes in an octave.
const Count = 12

// Interval is a semitone distance, used as a named constant set.
type Interval = int

const (
	First Interval = iota
	MinorSecond
	MajorSecond
	MinorThird
	MajorThird
	Fourth
	Tritone
	Fifth
	MinorSixth
	MajorSixth
	MinorSeventh
	MajorSeventh
	Octave
)

var sharpNames = [Count]string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}

var flatNames = [Count]string{"C", "Db", "D", "Eb", "E", "F", "Gb", "G", "Ab", "A", "Bb", "B"}

// New normalizes any integer into a pitch class.
func New(n int) PitchClass {
	return PitchClass(util.Mod(n, Count))
}

func Add(p PitchClass, n int) PitchClass {
	return New(int(p) + n)
}

func Sub(p PitchClass, n int) PitchClass {
	return New(int(p) - n)
}

func (p PitchClass) Add(n int) PitchClass { return Add(p, n) }
func (p PitchClass) Sub(n int) PitchClass { return Sub(p, n) }
func (p PitchClass) Increment() PitchClass { return Add(p, 1) }
func (p PitchClass) Decrement() PitchClass { return Sub(p, 1) }

func (p PitchClass) SharpName() string {
	return sharpNames[New(int(p))]
}

func (p PitchClass) FlatName() string {
	return flatNames[New(int(p))]
}

// String is the sharp spelling; output never uses flats.
func (p PitchClass) String() string {
	return p.SharpName()
}

func Names(ps []PitchClass) []string {
	res := make([]string, len(ps))
	for i, p := range ps {
		res[i] = p.SharpName()
	}
	return res
}

func lookup(text string) (PitchClass, bool) {
	for i := 0; i < Count; i++ {
		if strings.EqualFold(text, sharpNames[i]) || strings.EqualFold(text, flatNames[i]) {
			return PitchClass(i), true
		}
	}
	return C, false
}

// Parse matches text case-insensitively against the sharp and flat names.
// Text that matches neither falls back to C.
func Parse(text string) PitchClass {
	p, _ := lookup(text)
	return p
}

func ParseStrict(text string) (PitchClass, error) {
	if text == "" {
		return C, &model.ParseError{Kind: model.EmptyInput}
	}
	p, ok := lookup(text)
	if !ok {
		return C, &model.ParseError{Kind: model.UnrecognizedNote, Input: text}
	}
	return p, nil
}
