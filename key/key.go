// Package key estimates which diatonic scale a set of chords belongs to by
// correlating their pitch class histogram with Krumhansl-Kessler key profiles.
package key

import (
	"math"
	"sort"

	"github.com/jsphweid/chromatic/chord"
	"github.com/jsphweid/chromatic/note"
	"github.com/jsphweid/chromatic/scale"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Krumhansl-Kessler probe tone ratings, indexed by semitones above the tonic.
var profiles = map[scale.Mode][]float64{
	scale.Major:        {6.35, 2.23, 3.48, 2.33, 4.38, 4.09, 2.52, 5.19, 2.39, 3.66, 2.29, 2.88},
	scale.NaturalMinor: {6.33, 2.68, 3.52, 5.38, 2.60, 3.53, 2.54, 4.75, 3.98, 2.69, 3.34, 3.17},
}

type Candidate struct {
	Scale scale.Diatonic
	Score float64

	// Diatonic is true when every note of every chord is in the scale.
	Diatonic bool
}

// Histogram counts the notes of all chords per pitch class, normalized so the
// weights sum to 1. It is all zeros for no chords.
func Histogram(chords []chord.Triad) []float64 {
	h := make([]float64, note.Count)
	for _, c := range chords {
		for _, n := range c.Notes() {
			h[n]++
		}
	}
	if total := floats.Sum(h); total > 0 {
		floats.Scale(1/total, h)
	}
	return h
}

func rotate(profile []float64, root note.PitchClass) []float64 {
	res := make([]float64, note.Count)
	for p := note.C; p <= note.B; p++ {
		res[p] = profile[p.Sub(int(root))]
	}
	return res
}

func fits(s scale.Diatonic, chords []chord.Triad) bool {
	for _, c := range chords {
		for _, n := range c.Notes() {
			if !s.Contains(n) {
				return false
			}
		}
	}
	return true
}

// Estimate ranks all 24 major and minor scales, best first. Ties keep major
// before minor and lower roots first. No chords means no estimate.
func Estimate(chords []chord.Triad) []Candidate {
	if len(chords) == 0 {
		return nil
	}

	h := Histogram(chords)
	var res []Candidate
	for _, mode := range scale.Modes {
		for root := note.C; root <= note.B; root++ {
			score := stat.Correlation(h, rotate(profiles[mode], root), nil)
			if math.IsNaN(score) {
				score = 0
			}
			s := scale.New(root, mode)
			res = append(res, Candidate{Scale: s, Score: score, Diatonic: fits(s, chords)})
		}
	}

	sort.SliceStable(res, func(i, j int) bool {
		return res[i].Score > res[j].Score
	})
	return res
}

// Best is the top candidate of Estimate; ok is false for no chords.
func Best(chords []chord.Triad) (Candidate, bool) {
	res := Estimate(chords)
	if len(res) == 0 {
		return Candidate{}, false
	}
	return res[0], true
}
