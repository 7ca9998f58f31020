package cmd

import (
	"github.com/jsphweid/chromatic/chord"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(identifyCmd)
}

var identifyCmd = &cobra.Command{
	Use:   "identify <note>...",
	Short: "Names the triads made of the given notes",
	Long:  `Names the triads made of exactly the given notes, e.g. identify C E G or identify C,E,G.`,
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		notes, err := parseNotes(splitList(args...), opts.strict)
		if err != nil {
			return err
		}

		p, err := printer(cmd)
		if err != nil {
			return err
		}
		return p.Identification(notes, chord.Identify(notes))
	},
}
