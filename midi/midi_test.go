package midi

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jsphweid/chromatic/chord"
	"github.com/jsphweid/chromatic/note"
	"github.com/jsphweid/chromatic/sample"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteThenReadMidiFile(t *testing.T) {
	s, err := sample.Triad(chord.New(note.D, chord.Minor), sample.Options{Octave: 4, Tempo: 120, BeatsPerChord: 4, Velocity: 90})
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "dm.mid")
	require.NoError(t, WriteMidiFile(path, s))

	read, err := ReadMidiFile(path)
	require.NoError(t, err)

	found := sample.Extract(read)
	require.Len(t, found, 1)
	assert.Equal(t, []uint8{62, 65, 69}, found[0].Keys)
	assert.Equal(t, []chord.Triad{chord.New(note.D, chord.Minor)}, found[0].Triads)
}

func TestReadMissingFile(t *testing.T) {
	_, err := ReadMidiFile(filepath.Join(t.TempDir(), "nope.mid"))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "Error reading midi file")
}

func TestReadGarbage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "garbage.mid")
	require.NoError(t, os.WriteFile(path, []byte("definitely not midi"), 0644))

	_, err := ReadMidiFile(path)
	assert.Error(t, err)
}

func TestWriteToMissingDir(t *testing.T) {
	s, err := sample.Triad(chord.New(note.C, chord.Major), sample.DefaultOptions())
	require.NoError(t, err)

	err = WriteMidiFile(filepath.Join(t.TempDir(), "missing", "c.mid"), s)
	assert.Error(t, err)
}
