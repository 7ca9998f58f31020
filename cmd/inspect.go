package cmd

import (
	"path/filepath"

	"github.com/jsphweid/chromatic/logging"
	"github.com/jsphweid/chromatic/midi"
	"github.com/jsphweid/chromatic/sample"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(inspectCmd)
}

var inspectCmd = &cobra.Command{
	Use:   "inspect <file.mid>",
	Short: "Lists the triads sounding in a midi file",
	Long:  `Lists the triads sounding in a midi file with their offsets in seconds.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := midi.ReadMidiFile(args[0])
		if err != nil {
			return err
		}

		found := sample.Extract(s)
		logging.Debug("extracted soundings", logging.Fields{
			"file":   args[0],
			"tracks": len(s.Tracks),
			"count":  len(found),
		})

		p, err := printer(cmd)
		if err != nil {
			return err
		}
		return p.Soundings(filepath.Base(args[0]), found)
	},
}
