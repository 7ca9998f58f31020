package cmd

import (
	"github.com/jsphweid/chromatic/constants"
	"github.com/jsphweid/chromatic/logging"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

type options struct {
	format string
	strict bool
	octave int
	tempo  int
}

var opts options

func init() {
	cobra.EnableCaseInsensitive = true

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&opts.format, "format", "text", "output format: text, json or yaml")
	flags.BoolVar(&opts.strict, "strict", false, "fail on unrecognized input instead of falling back")
	flags.IntVar(&opts.octave, "octave", constants.DefaultOctave, "octave of chord roots in exported midi")
	flags.IntVar(&opts.tempo, "tempo", constants.DefaultTempo, "tempo of exported midi in bpm")
}

var rootCmd = &cobra.Command{
	Use:   "chromatic",
	Short: "Spells chords, scales and chord progressions",
	Long: `chromatic spells triads from shorthand like C#m or Fsus4, diatonic
scales like Am and chord progressions like i-iv-v in a scale.`,
	PersistentPreRunE: setup,
	// cobra prints usage after the error
	RunE: func(cmd *cobra.Command, args []string) error {
		return errors.New("missing action")
	},
}

// setup loads .env and lets the environment fill in flags left unset.
func setup(cmd *cobra.Command, args []string) error {
	if err := constants.LoadEnv(); err != nil {
		return errors.Wrap(err, "could not load .env")
	}

	level, err := logging.ParseLevel(constants.GetLogLevel())
	if err != nil {
		logging.Warn("falling back to info logging", logging.Fields{"error": err.Error()})
	}
	logging.SetLevel(level)

	flags := cmd.Flags()
	if !flags.Changed("octave") {
		opts.octave = constants.GetOctave()
	}
	if !flags.Changed("tempo") {
		opts.tempo = constants.GetTempo()
	}
	return nil
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}
