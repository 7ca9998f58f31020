package render

import (
	"fmt"
	"strings"

	"github.com/jsphweid/chromatic/chord"
	"github.com/jsphweid/chromatic/key"
	"github.com/jsphweid/chromatic/note"
	"github.com/jsphweid/chromatic/progression"
	"github.com/jsphweid/chromatic/sample"
	"github.com/jsphweid/chromatic/scale"
)

// headerFunc decorates the heading lines of a text block.
type headerFunc func(string) string

func plain(s string) string { return s }

func chordText(t chord.Triad, header headerFunc) string {
	var b strings.Builder
	b.WriteString(header(fmt.Sprintf("Chord %s:", t.Name())) + "\n")
	fmt.Fprintf(&b, "- %s\n", t.String())
	return b.String()
}

func scaleText(s scale.Diatonic, header headerFunc) string {
	var b strings.Builder
	b.WriteString(header(fmt.Sprintf("Scale %s:", s.Name())) + "\n")
	fmt.Fprintf(&b, "- %s\n", s.String())
	b.WriteString(header(fmt.Sprintf("Chords in %s:", s.Name())) + "\n")
	for _, t := range s.Triads() {
		fmt.Fprintf(&b, "- %s\n", t.Name())
	}
	return b.String()
}

func triadLines(b *strings.Builder, t chord.Triad) {
	fmt.Fprintf(b, "- %s\n", t.Name())
	fmt.Fprintf(b, "  %s\n", t.String())
}

func progressionText(p progression.Progression, header headerFunc) string {
	var b strings.Builder
	b.WriteString(header(fmt.Sprintf("Chord progression %s in %s:", p.Labels(), p.Scale.Name())) + "\n")
	for _, st := range p.Steps {
		triadLines(&b, st.Chord)
	}
	return b.String()
}

func identificationText(notes []note.PitchClass, matches []chord.Triad, header headerFunc) string {
	joined := chord.CreateChordKey(notes)
	if len(matches) == 0 {
		return header(fmt.Sprintf("No triad matches %s", joined)) + "\n"
	}
	var b strings.Builder
	b.WriteString(header(fmt.Sprintf("Chords with %s:", joined)) + "\n")
	for _, t := range matches {
		triadLines(&b, t)
	}
	return b.String()
}

func keyText(chords []chord.Triad, cands []key.Candidate, top int, header headerFunc) string {
	symbols := make([]string, len(chords))
	for i, c := range chords {
		symbols[i] = c.Symbol()
	}

	var b strings.Builder
	b.WriteString(header(fmt.Sprintf("Key of %s:", strings.Join(symbols, " "))) + "\n")
	for i, c := range cands {
		if top > 0 && i >= top {
			break
		}
		fit := "chromatic"
		if c.Diatonic {
			fit = "diatonic"
		}
		fmt.Fprintf(&b, "- %s (%.3f, %s)\n", c.Scale.Name(), c.Score, fit)
	}
	return b.String()
}

func soundingText(name string, found []sample.Sounding, header headerFunc) string {
	var b strings.Builder
	b.WriteString(header(fmt.Sprintf("Chords in %s:", name)) + "\n")
	for _, f := range found {
		for _, t := range f.Triads {
			fmt.Fprintf(&b, "- %.3fs %s\n", f.Offset.Seconds(), t.Name())
			fmt.Fprintf(&b, "  %s\n", t.String())
		}
	}
	return b.String()
}

func ChordText(t chord.Triad) string { return chordText(t, plain) }

func ScaleText(s scale.Diatonic) string { return scaleText(s, plain) }

func ProgressionText(p progression.Progression) string { return progressionText(p, plain) }

func IdentificationText(notes []note.PitchClass, matches []chord.Triad) string {
	return identificationText(notes, matches, plain)
}

func KeyText(chords []chord.Triad, cands []key.Candidate, top int) string {
	return keyText(chords, cands, top, plain)
}
