package scale

import (
	"strings"

	"github.com/jsphweid/chromatic/model"
	"github.com/jsphweid/chromatic/note"
)

func splitToken(token string) (string, Mode) {
	if strings.HasSuffix(token, "m") || strings.HasSuffix(token, "M") {
		return token[:len(token)-1], NaturalMinor
	}
	return token, Major
}

// Parse reads "C", "Ebm" and the like: a trailing m selects the natural minor.
// Empty or unrecognized notes resolve to C.
func Parse(token string) Diatonic {
	text, mode := splitToken(token)
	return New(note.Parse(text), mode)
}

func ParseStrict(token string) (Diatonic, error) {
	if token == "" {
		return Diatonic{}, &model.ParseError{Kind: model.EmptyInput}
	}
	text, mode := splitToken(token)
	root, err := note.ParseStrict(text)
	if err != nil {
		return Diatonic{}, &model.ParseError{Kind: model.UnrecognizedNote, Input: token}
	}
	return New(root, mode), nil
}
