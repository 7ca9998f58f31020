package model

import "fmt"

type ParseErrorKind int

const (
	UnrecognizedNote ParseErrorKind = iota
	UnrecognizedProgressionToken
	EmptyInput
)

func (k ParseErrorKind) String() string {
	switch k {
	case UnrecognizedNote:
		return "unrecognized note"
	case UnrecognizedProgressionToken:
		return "unrecognized progression token"
	case EmptyInput:
		return "empty input"
	default:
		return "unknown parse error"
	}
}

// ParseError is returned by the strict parsers. Input holds the offending
// text as the caller wrote it.
type ParseError struct {
	Kind  ParseErrorKind
	Input string
}

func (e *ParseError) Error() string {
	if e.Kind == EmptyInput {
		return e.Kind.String()
	}
	return fmt.Sprintf("%v: %q", e.Kind, e.Input)
}
