package constants

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

const Version = "0.3.0"

// LoadEnv reads .env from the working directory when it exists. Variables
// already set in the environment win.
func LoadEnv() error {
	if _, err := os.Stat(".env"); os.IsNotExist(err) {
		return nil
	}
	return godotenv.Load()
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	n, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return n
}

// GetOutDir is where relative MIDI export paths are written.
func GetOutDir() string {
	return getEnv("CHROMATIC_OUT_DIR", "./out")
}

func GetAddr() string {
	return getEnv("CHROMATIC_ADDR", ":8080")
}

func GetLogLevel() string {
	return getEnv("CHROMATIC_LOG_LEVEL", "info")
}

// GetOctave is the octave of chord roots in exported MIDI, C4 = 60.
func GetOctave() int {
	n := getEnvInt("CHROMATIC_OCTAVE", DefaultOctave)
	if n < 0 || n > MaxOctave {
		return DefaultOctave
	}
	return n
}

func GetTempo() int {
	n := getEnvInt("CHROMATIC_TEMPO", DefaultTempo)
	if n <= 0 {
		return DefaultTempo
	}
	return n
}

func GetMidiPort() int {
	return getEnvInt("CHROMATIC_MIDI_PORT", 0)
}

const (
	DefaultOctave = 4
	MaxOctave     = 8
	DefaultTempo  = 120

	// ticks per quarter note of exported files
	Resolution = 480

	// each chord of an export lasts this many quarter notes
	BeatsPerChord = 4

	Velocity = 100
)
