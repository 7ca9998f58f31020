package cmd

import (
	"github.com/jsphweid/chromatic/sample"
	"github.com/spf13/cobra"
	"gitlab.com/gomidi/midi/v2/smf"
)

func init() {
	addMidiFlag(scaleCmd)
	rootCmd.AddCommand(scaleCmd)
}

var scaleCmd = &cobra.Command{
	Use:   "scale <token>",
	Short: "Spells a scale and its chords",
	Long:  `Spells a major (C) or natural minor (Cm) scale and the triad on each degree.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := parseScale(args[0], opts.strict)
		if err != nil {
			return err
		}

		err = exportMidi(func(o sample.Options) (*smf.SMF, error) {
			return sample.Scale(s, o)
		})
		if err != nil {
			return err
		}

		p, err := printer(cmd)
		if err != nil {
			return err
		}
		return p.Scale(s)
	},
}
