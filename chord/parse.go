package chord

import (
	"strings"

	"github.com/jsphweid/chromatic/model"
	"github.com/jsphweid/chromatic/note"
)

var longSuffixes = []Quality{SuspendedFourth, SuspendedSecond}

var shortSuffixes = []Quality{Minor, Augmented, Diminished}

// splitToken separates a chord token into its note text and quality. It never
// fails: a token without a known suffix is a major chord.
func splitToken(token string) (string, Quality) {
	if len(token) > 4 {
		tail := token[len(token)-4:]
		for _, q := range longSuffixes {
			if strings.EqualFold(tail, q.Suffix()) {
				return token[:len(token)-4], q
			}
		}
	}

	if len(token) > 1 {
		tail := token[len(token)-1:]
		for _, q := range shortSuffixes {
			if strings.EqualFold(tail, q.Suffix()) {
				return token[:len(token)-1], q
			}
		}
	}

	return token, Major
}

// Parse reads shorthand like "C", "C#m", "Ebsus4" or "Ao". A note it does not
// recognize resolves to C.
func Parse(token string) Triad {
	text, q := splitToken(token)
	return New(note.Parse(text), q)
}

func ParseStrict(token string) (Triad, error) {
	if token == "" {
		return Triad{}, &model.ParseError{Kind: model.EmptyInput}
	}
	text, q := splitToken(token)
	root, err := note.ParseStrict(text)
	if err != nil {
		return Triad{}, &model.ParseError{Kind: model.UnrecognizedNote, Input: token}
	}
	return New(root, q), nil
}
