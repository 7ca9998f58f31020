package model

type Notes = []string

// Chord is the serializable view of a triad.
type Chord struct {
	Name    string `json:"name" yaml:"name"`
	Symbol  string `json:"symbol" yaml:"symbol"`
	Quality string `json:"quality" yaml:"quality"`
	Notes   Notes  `json:"notes" yaml:"notes"`
	Display string `json:"display" yaml:"display"`
}

type Scale struct {
	Name    string  `json:"name" yaml:"name"`
	Mode    string  `json:"mode" yaml:"mode"`
	Notes   Notes   `json:"notes" yaml:"notes"`
	Display string  `json:"display" yaml:"display"`
	Chords  []Chord `json:"chords" yaml:"chords"`
}

type ProgressionStep struct {
	Label string `json:"label" yaml:"label"`
	Chord Chord  `json:"chord" yaml:"chord"`
}

type Progression struct {
	Labels  string            `json:"labels" yaml:"labels"`
	Scale   string            `json:"scale" yaml:"scale"`
	Steps   []ProgressionStep `json:"steps" yaml:"steps"`
	Skipped []string          `json:"skipped,omitempty" yaml:"skipped,omitempty"`
}

type KeyCandidate struct {
	Scale string  `json:"scale" yaml:"scale"`
	Score float64 `json:"score" yaml:"score"`
}

type KeyEstimate struct {
	Best       string         `json:"best" yaml:"best"`
	Candidates []KeyCandidate `json:"candidates" yaml:"candidates"`
}

type Identification struct {
	Notes   Notes   `json:"notes" yaml:"notes"`
	Matches []Chord `json:"matches" yaml:"matches"`
}

// SoundingChord is a triad found in a MIDI file, Offset in seconds.
type SoundingChord struct {
	Offset float32 `json:"offset" yaml:"offset"`
	Chord  Chord   `json:"chord" yaml:"chord"`
}
