package cmd

import (
	"github.com/jsphweid/chromatic/sample"
	"github.com/spf13/cobra"
	"gitlab.com/gomidi/midi/v2/smf"
)

func init() {
	addMidiFlag(chordCmd)
	rootCmd.AddCommand(chordCmd)
}

var chordCmd = &cobra.Command{
	Use:   "chord <token>",
	Short: "Spells a chord",
	Long: `Spells a triad written as a note followed by an optional quality:
m (minor), a (augmented), o (diminished), sus4 or sus2. E.g. C#m, Bbo, Fsus4.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		t, err := parseChord(args[0], opts.strict)
		if err != nil {
			return err
		}

		err = exportMidi(func(o sample.Options) (*smf.SMF, error) {
			return sample.Triad(t, o)
		})
		if err != nil {
			return err
		}

		p, err := printer(cmd)
		if err != nil {
			return err
		}
		return p.Chord(t)
	},
}
