package constants

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaults(t *testing.T) {
	t.Setenv("CHROMATIC_OUT_DIR", "")
	t.Setenv("CHROMATIC_ADDR", "")
	t.Setenv("CHROMATIC_OCTAVE", "")
	t.Setenv("CHROMATIC_TEMPO", "")
	t.Setenv("CHROMATIC_LOG_LEVEL", "")

	assert := assert.New(t)
	assert.Equal("./out", GetOutDir())
	assert.Equal(":8080", GetAddr())
	assert.Equal(DefaultOctave, GetOctave())
	assert.Equal(DefaultTempo, GetTempo())
	assert.Equal("info", GetLogLevel())
}

func TestOverrides(t *testing.T) {
	t.Setenv("CHROMATIC_OUT_DIR", "/tmp/midi")
	t.Setenv("CHROMATIC_ADDR", "127.0.0.1:9000")
	t.Setenv("CHROMATIC_OCTAVE", "3")
	t.Setenv("CHROMATIC_TEMPO", "90")
	t.Setenv("CHROMATIC_MIDI_PORT", "2")

	assert := assert.New(t)
	assert.Equal("/tmp/midi", GetOutDir())
	assert.Equal("127.0.0.1:9000", GetAddr())
	assert.Equal(3, GetOctave())
	assert.Equal(90, GetTempo())
	assert.Equal(2, GetMidiPort())
}

func TestInvalidNumbersFallBack(t *testing.T) {
	t.Setenv("CHROMATIC_OCTAVE", "12")
	t.Setenv("CHROMATIC_TEMPO", "-5")

	assert.Equal(t, DefaultOctave, GetOctave())
	assert.Equal(t, DefaultTempo, GetTempo())

	t.Setenv("CHROMATIC_TEMPO", "fast")
	assert.Equal(t, DefaultTempo, GetTempo())
}

func TestLoadEnv(t *testing.T) {
	dir := t.TempDir()
	wd, err := os.Getwd()
	assert.NoError(t, err)
	defer os.Chdir(wd)
	assert.NoError(t, os.Chdir(dir))

	// no .env is fine
	assert.NoError(t, LoadEnv())

	t.Setenv("CHROMATIC_TEMPO", "")
	os.Unsetenv("CHROMATIC_TEMPO")
	err = os.WriteFile(filepath.Join(dir, ".env"), []byte("CHROMATIC_TEMPO=75\n"), 0644)
	assert.NoError(t, err)
	assert.NoError(t, LoadEnv())
	assert.Equal(t, 75, GetTempo())
}
