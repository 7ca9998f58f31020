package cmd

import (
	"strings"

	"github.com/jsphweid/chromatic/chord"
	"github.com/jsphweid/chromatic/logging"
	"github.com/jsphweid/chromatic/note"
	"github.com/jsphweid/chromatic/progression"
	"github.com/jsphweid/chromatic/scale"
)

func parseChord(token string, strict bool) (chord.Triad, error) {
	if strict {
		return chord.ParseStrict(token)
	}
	return chord.Parse(token), nil
}

func parseScale(token string, strict bool) (scale.Diatonic, error) {
	if strict {
		return scale.ParseStrict(token)
	}
	return scale.Parse(token), nil
}

func parseNote(token string, strict bool) (note.PitchClass, error) {
	if strict {
		return note.ParseStrict(token)
	}
	return note.Parse(token), nil
}

func parseProgression(s scale.Diatonic, text string, strict bool) (progression.Progression, error) {
	if strict {
		return progression.ParseStrict(s, text)
	}
	p := progression.Parse(s, text)
	if len(p.Skipped) > 0 {
		logging.Warn("skipped unrecognized progression tokens", logging.Fields{
			"tokens": strings.Join(p.Skipped, ","),
		})
	}
	return p, nil
}

// splitList splits comma separated values across all args, dropping empty
// entries, so "C,E G" and "C E G" read the same.
func splitList(args ...string) []string {
	var res []string
	for _, arg := range args {
		for _, v := range strings.Split(arg, ",") {
			if v = strings.TrimSpace(v); v != "" {
				res = append(res, v)
			}
		}
	}
	return res
}

func parseNotes(tokens []string, strict bool) ([]note.PitchClass, error) {
	var res []note.PitchClass
	for _, tok := range tokens {
		n, err := parseNote(tok, strict)
		if err != nil {
			return nil, err
		}
		res = append(res, n)
	}
	return res, nil
}

func parseChords(tokens []string, strict bool) ([]chord.Triad, error) {
	var res []chord.Triad
	for _, tok := range tokens {
		c, err := parseChord(tok, strict)
		if err != nil {
			return nil, err
		}
		res = append(res, c)
	}
	return res, nil
}
