package cmd

import (
	"github.com/jsphweid/chromatic/sample"
	"github.com/spf13/cobra"
	"gitlab.com/gomidi/midi/v2/smf"
)

func init() {
	addMidiFlag(progressionCmd)
	rootCmd.AddCommand(progressionCmd)
}

var progressionCmd = &cobra.Command{
	Use:   "progression <tokens> <scale>",
	Short: "Spells a chord progression in a scale",
	Long: `Spells roman numeral degrees joined by hyphens, e.g. i-iv-v, in a scale
like C or Am. Numerals are case-insensitive.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := parseScale(args[1], opts.strict)
		if err != nil {
			return err
		}
		prog, err := parseProgression(s, args[0], opts.strict)
		if err != nil {
			return err
		}

		err = exportMidi(func(o sample.Options) (*smf.SMF, error) {
			return sample.Progression(prog, o)
		})
		if err != nil {
			return err
		}

		p, err := printer(cmd)
		if err != nil {
			return err
		}
		return p.Progression(prog)
	},
}
