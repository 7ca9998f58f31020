package cmd

import (
	"bytes"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jsphweid/chromatic/midi"
	"github.com/jsphweid/chromatic/model"
	"github.com/jsphweid/chromatic/sample"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomidi "gitlab.com/gomidi/midi/v2"
)

// resetFlags puts every flag back to its default, since rootCmd and the
// variables it binds outlive a single Execute.
func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		f.Value.Set(f.DefValue)
		f.Changed = false
	}
	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("CHROMATIC_LOG_LEVEL", "error")
	resetFlags(rootCmd)

	// nil args make cobra fall back to os.Args
	if args == nil {
		args = []string{}
	}

	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestChordCommand(t *testing.T) {
	out, err := execute(t, "chord", "Cm")
	require.NoError(t, err)
	assert.Equal(t, "Chord C Minor:\n- C-D#-G\n", out)
}

func TestCommandNamesIgnoreCase(t *testing.T) {
	out, err := execute(t, "CHORD", "Bbo")
	require.NoError(t, err)
	assert.Equal(t, "Chord A# Diminished:\n- A#-C#-E\n", out)
}

func TestScaleCommand(t *testing.T) {
	out, err := execute(t, "scale", "Am")
	require.NoError(t, err)
	want := `Scale A Minor:
- A-B-C-D-E-F-G
Chords in A Minor:
- A Minor
- B Diminished
- C Major
- D Minor
- E Minor
- F Major
- G Major
`
	assert.Equal(t, want, out)
}

func TestProgressionCommand(t *testing.T) {
	out, err := execute(t, "progression", "i-iv-v", "C")
	require.NoError(t, err)
	want := `Chord progression I-IV-V in C Major:
- C Major
  C-E-G
- F Major
  F-A-C
- G Major
  G-B-D
`
	assert.Equal(t, want, out)
}

func TestProgressionSkipsUnknownTokens(t *testing.T) {
	out, err := execute(t, "progression", "i-x-v", "C")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "Chord progression I-V in C Major:\n"))
}

func TestStrictParsing(t *testing.T) {
	tests := []struct {
		name string
		args []string
		kind model.ParseErrorKind
	}{
		{"chord", []string{"chord", "Xm", "--strict"}, model.UnrecognizedNote},
		{"scale", []string{"scale", "Hm", "--strict"}, model.UnrecognizedNote},
		{"progression", []string{"progression", "i-x", "C", "--strict"}, model.UnrecognizedProgressionToken},
		{"identify", []string{"identify", "C", "Q", "--strict"}, model.UnrecognizedNote},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, tt.args...)
			var perr *model.ParseError
			require.True(t, errors.As(err, &perr))
			assert.Equal(t, tt.kind, perr.Kind)
		})
	}
}

func TestStrictFlagDoesNotLeak(t *testing.T) {
	_, err := execute(t, "chord", "Xm", "--strict")
	require.Error(t, err)

	out, err := execute(t, "chord", "Xm")
	require.NoError(t, err)
	assert.Equal(t, "Chord C Minor:\n- C-D#-G\n", out)
}

func TestUsageErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"no action", nil},
		{"unknown action", []string{"frobnicate"}},
		{"missing chord", []string{"chord"}},
		{"missing scale", []string{"progression", "i-iv"}},
		{"bad format", []string{"chord", "C", "--format", "xml"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, tt.args...)
			assert.Error(t, err)
		})
	}
}

func TestJSONFormat(t *testing.T) {
	out, err := execute(t, "chord", "Dsus4", "--format", "json")
	require.NoError(t, err)
	assert.Contains(t, out, `"name": "D Suspended Fourth"`)
	assert.Contains(t, out, `"display": "D-G-A"`)
}

func TestYAMLFormat(t *testing.T) {
	out, err := execute(t, "scale", "G", "--format", "yaml")
	require.NoError(t, err)
	assert.Contains(t, out, "name: G Major\n")
	assert.Contains(t, out, "G-A-B-C-D-E-F#")
}

func TestIdentifyCommand(t *testing.T) {
	out, err := execute(t, "identify", "C", "E", "G")
	require.NoError(t, err)
	assert.Equal(t, "Chords with C-E-G:\n- C Major\n  C-E-G\n", out)

	out, err = execute(t, "identify", "C,D")
	require.NoError(t, err)
	assert.Equal(t, "No triad matches C-D\n", out)
}

func TestKeyCommand(t *testing.T) {
	out, err := execute(t, "key", "C", "F", "G", "Am", "--top", "1")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "Key of C F G Am:", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "- C Major ("))
	assert.True(t, strings.HasSuffix(lines[1], ", diatonic)"))
}

func TestMidiExportAndInspect(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("CHROMATIC_OUT_DIR", dir)

	_, err := execute(t, "progression", "i-iv-v", "C", "--midi", "songs/prog.mid", "--tempo", "60")
	require.NoError(t, err)

	path := filepath.Join(dir, "songs", "prog.mid")
	s, err := midi.ReadMidiFile(path)
	require.NoError(t, err)
	found := sample.Extract(s)
	require.Len(t, found, 3)
	// four beats at 60 bpm
	assert.InDelta(t, 4, found[1].Offset.Seconds(), 0.001)

	out, err := execute(t, "inspect", path)
	require.NoError(t, err)
	want := `Chords in prog.mid:
- 0.000s C Major
  C-E-G
- 4.000s F Major
  F-A-C
- 8.000s G Major
  G-B-D
`
	assert.Equal(t, want, out)
}

func TestMidiExportOctaveFromEnv(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("CHROMATIC_OUT_DIR", dir)
	t.Setenv("CHROMATIC_OCTAVE", "2")

	_, err := execute(t, "chord", "C", "--midi", "c.mid")
	require.NoError(t, err)

	s, err := midi.ReadMidiFile(filepath.Join(dir, "c.mid"))
	require.NoError(t, err)
	found := sample.Extract(s)
	require.Len(t, found, 1)
	assert.Equal(t, []uint8{36, 40, 43}, found[0].Keys)
}

func TestMidiExportRejectsBadTempo(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("CHROMATIC_OUT_DIR", dir)

	for _, tempo := range []string{"0", "-5"} {
		_, err := execute(t, "chord", "C", "--midi", "c.mid", "--tempo="+tempo)
		assert.Error(t, err, "tempo %v", tempo)
		assert.NoFileExists(t, filepath.Join(dir, "c.mid"))
	}
}

func TestMidiExportRejectsScaleAboveTopKey(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("CHROMATIC_OUT_DIR", dir)

	_, err := execute(t, "scale", "B", "--octave", "8", "--midi", "b.mid")
	assert.Error(t, err)
	assert.NoFileExists(t, filepath.Join(dir, "b.mid"))
}

func TestInspectMissingFile(t *testing.T) {
	_, err := execute(t, "inspect", filepath.Join(t.TempDir(), "nope.mid"))
	assert.Error(t, err)
}

func TestHeldKeys(t *testing.T) {
	held := newHeldKeys()

	assert := assert.New(t)
	assert.True(held.handle(gomidi.NoteOn(0, 67, 100)))
	assert.True(held.handle(gomidi.NoteOn(0, 60, 100)))
	assert.True(held.handle(gomidi.NoteOn(0, 64, 90)))
	assert.Equal([]uint8{60, 64, 67}, held.snapshot())

	// velocity 0 releases like a note off
	assert.True(held.handle(gomidi.NoteOn(0, 64, 0)))
	assert.True(held.handle(gomidi.NoteOff(0, 67)))
	assert.Equal([]uint8{60}, held.snapshot())

	assert.False(held.handle(gomidi.ControlChange(0, 64, 127)))
}

func TestSplitList(t *testing.T) {
	assert.Equal(t, []string{"C", "E", "G"}, splitList("C, E", "", "G,"))
	assert.Nil(t, splitList(""))
}
