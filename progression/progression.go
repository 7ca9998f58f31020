package progression

import (
	"strings"

	"github.com/jsphweid/chromatic/chord"
	"github.com/jsphweid/chromatic/model"
	"github.com/jsphweid/chromatic/scale"
)

const Delimiter = "-"

var numerals = map[string]scale.Degree{
	"i":   scale.Tonic,
	"ii":  scale.Supertonic,
	"iii": scale.Mediant,
	"iv":  scale.Subdominant,
	"v":   scale.Dominant,
	"vi":  scale.Submediant,
	"vii": scale.Subtonic,
}

// Step is one chord of a progression. Label comes from the scale, not from
// the token the caller wrote.
type Step struct {
	Label string
	Chord chord.Triad
}

type Progression struct {
	Scale scale.Diatonic
	Steps []Step

	// Skipped holds unrecognized tokens in input order.
	Skipped []string
}

func tokenize(text string) []string {
	var tokens []string
	for _, tok := range strings.Split(text, Delimiter) {
		if tok != "" {
			tokens = append(tokens, tok)
		}
	}
	return tokens
}

// Degree resolves a roman numeral token, ignoring case.
func Degree(token string) (scale.Degree, bool) {
	d, ok := numerals[strings.ToLower(token)]
	return d, ok
}

func step(s scale.Diatonic, d scale.Degree) Step {
	return Step{Label: s.Label(d), Chord: s.Triad(d)}
}

// Parse resolves tokens like "i-IV-v" against s. Unrecognized tokens are left
// out of Steps and listed in Skipped.
func Parse(s scale.Diatonic, text string) Progression {
	p := Progression{Scale: s}
	for _, tok := range tokenize(text) {
		d, ok := Degree(tok)
		if !ok {
			p.Skipped = append(p.Skipped, tok)
			continue
		}
		p.Steps = append(p.Steps, step(s, d))
	}
	return p
}

func ParseStrict(s scale.Diatonic, text string) (Progression, error) {
	tokens := tokenize(text)
	if len(tokens) == 0 {
		return Progression{}, &model.ParseError{Kind: model.EmptyInput}
	}
	p := Progression{Scale: s}
	for _, tok := range tokens {
		d, ok := Degree(tok)
		if !ok {
			return Progression{}, &model.ParseError{Kind: model.UnrecognizedProgressionToken, Input: tok}
		}
		p.Steps = append(p.Steps, step(s, d))
	}
	return p, nil
}

// Labels joins the step labels, e.g. "I-IV-V".
func (p Progression) Labels() string {
	labels := make([]string, len(p.Steps))
	for i, st := range p.Steps {
		labels[i] = st.Label
	}
	return strings.Join(labels, Delimiter)
}

func (p Progression) Chords() []chord.Triad {
	res := make([]chord.Triad, len(p.Steps))
	for i, st := range p.Steps {
		res[i] = st.Chord
	}
	return res
}
