package note

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jsphweid/chromatic/model"
	"github.com/stretchr/testify/assert"
)

func TestAddSubRoundTripAndRange(t *testing.T) {
	for p := C; p <= B; p++ {
		for n := -50; n <= 50; n++ {
			added := Add(p, n)
			subbed := Sub(p, n)
			if added < 0 || added > 11 || subbed < 0 || subbed > 11 {
				t.Fatalf("out of range: Add(%v, %v)=%v Sub(%v, %v)=%v", p, n, added, p, n, subbed)
			}
			if Add(Sub(p, n), n) != p {
				t.Fatalf("Add(Sub(%v, %v), %v) != %v", p, n, n, p)
			}
		}
	}
}

func TestArithmeticWraps(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(C, B.Increment())
	assert.Equal(B, C.Decrement())
	assert.Equal(E, A.Add(Fifth))
	assert.Equal(A, C.Sub(MinorThird))
	assert.Equal(D, Add(D, Octave*7))
	assert.Equal(FSharp, Sub(C, -1000*Octave-Tritone))
	assert.Equal(B, New(-1))
}

func TestParseRoundTrip(t *testing.T) {
	for p := C; p <= B; p++ {
		t.Run(fmt.Sprintf("pitch class %v", int(p)), func(t *testing.T) {
			assert := assert.New(t)
			assert.Equal(p, Parse(p.SharpName()))
			assert.Equal(p, Parse(p.FlatName()))
		})
	}
}

func TestParseIsCaseInsensitive(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(DSharp, Parse("d#"))
	assert.Equal(BFlat, Parse("BB"))
	assert.Equal(EFlat, Parse("eb"))
}

func TestParseFallsBackToC(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(C, Parse("H"))
	assert.Equal(C, Parse(""))
	assert.Equal(C, Parse("C##"))
}

func TestParseStrict(t *testing.T) {
	p, err := ParseStrict("Gb")
	assert.NoError(t, err)
	assert.Equal(t, FSharp, p)

	_, err = ParseStrict("H")
	var pe *model.ParseError
	assert.True(t, errors.As(err, &pe))
	assert.Equal(t, model.UnrecognizedNote, pe.Kind)
	assert.Equal(t, "H", pe.Input)

	_, err = ParseStrict("")
	assert.True(t, errors.As(err, &pe))
	assert.Equal(t, model.EmptyInput, pe.Kind)
}

func TestNamesUseSharps(t *testing.T) {
	assert.Equal(t, []string{"C#", "D#", "A#"}, Names([]PitchClass{DFlat, EFlat, BFlat}))
	assert.Equal(t, "G#", AFlat.String())
}
