package cmd

import (
	"github.com/jsphweid/chromatic/key"
	"github.com/spf13/cobra"
)

var keyTop int

func init() {
	keyCmd.Flags().IntVar(&keyTop, "top", 3, "number of candidate keys to show, 0 for all")
	rootCmd.AddCommand(keyCmd)
}

var keyCmd = &cobra.Command{
	Use:   "key <chord>...",
	Short: "Estimates the key of a set of chords",
	Long: `Ranks the major and natural minor scales by how well their key profile
correlates with the notes of the given chords.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		chords, err := parseChords(splitList(args...), opts.strict)
		if err != nil {
			return err
		}

		p, err := printer(cmd)
		if err != nil {
			return err
		}
		return p.Key(chords, key.Estimate(chords), keyTop)
	},
}
