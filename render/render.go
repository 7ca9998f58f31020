package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/jsphweid/chromatic/chord"
	"github.com/jsphweid/chromatic/key"
	"github.com/jsphweid/chromatic/note"
	"github.com/jsphweid/chromatic/progression"
	"github.com/jsphweid/chromatic/sample"
	"github.com/jsphweid/chromatic/scale"
	"gopkg.in/yaml.v3"
)

type Format string

const (
	Text Format = "text"
	JSON Format = "json"
	YAML Format = "yaml"
)

func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case Text, JSON, YAML:
		return f, nil
	case "yml":
		return YAML, nil
	default:
		return Text, fmt.Errorf("unknown format %q, want text, json or yaml", s)
	}
}

var (
	ColorCyan = lipgloss.Color("#00FFFF")

	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorCyan)
)

// Printer writes results to w in one format. Styled only affects text
// headers.
type Printer struct {
	w      io.Writer
	format Format
	styled bool
}

func NewPrinter(w io.Writer, format Format, styled bool) *Printer {
	return &Printer{w: w, format: format, styled: styled}
}

func (p *Printer) header(s string) string {
	if !p.styled {
		return s
	}
	return HeaderStyle.Render(s)
}

func (p *Printer) write(text string, view any) error {
	switch p.format {
	case JSON:
		enc := json.NewEncoder(p.w)
		enc.SetIndent("", "  ")
		return enc.Encode(view)
	case YAML:
		enc := yaml.NewEncoder(p.w)
		enc.SetIndent(2)
		if err := enc.Encode(view); err != nil {
			return err
		}
		return enc.Close()
	default:
		_, err := io.WriteString(p.w, text)
		return err
	}
}

func (p *Printer) Chord(t chord.Triad) error {
	return p.write(chordText(t, p.header), ChordView(t))
}

func (p *Printer) Scale(s scale.Diatonic) error {
	return p.write(scaleText(s, p.header), ScaleView(s))
}

func (p *Printer) Progression(pr progression.Progression) error {
	return p.write(progressionText(pr, p.header), ProgressionView(pr))
}

func (p *Printer) Identification(notes []note.PitchClass, matches []chord.Triad) error {
	return p.write(identificationText(notes, matches, p.header), IdentificationView(notes, matches))
}

func (p *Printer) Key(chords []chord.Triad, cands []key.Candidate, top int) error {
	return p.write(keyText(chords, cands, top, p.header), KeyView(cands, top))
}

func (p *Printer) Soundings(name string, found []sample.Sounding) error {
	return p.write(soundingText(name, found, p.header), SoundingViews(found))
}
