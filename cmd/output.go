package cmd

import (
	"os"

	"github.com/jsphweid/chromatic/constants"
	"github.com/jsphweid/chromatic/logging"
	"github.com/jsphweid/chromatic/midi"
	"github.com/jsphweid/chromatic/render"
	"github.com/jsphweid/chromatic/sample"
	"github.com/jsphweid/chromatic/util"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"gitlab.com/gomidi/midi/v2/smf"
)

// midiPath is shared by every command that can export.
var midiPath string

func addMidiFlag(cmd *cobra.Command) {
	cmd.Flags().StringVar(&midiPath, "midi", "", "also write a .mid file, relative paths land in CHROMATIC_OUT_DIR")
}

func printer(cmd *cobra.Command) (*render.Printer, error) {
	format, err := render.ParseFormat(opts.format)
	if err != nil {
		return nil, err
	}
	out := cmd.OutOrStdout()
	styled := format == render.Text && out == os.Stdout
	return render.NewPrinter(out, format, styled), nil
}

func sampleOptions() sample.Options {
	o := sample.DefaultOptions()
	o.Octave = opts.octave
	o.Tempo = opts.tempo
	return o
}

func exportMidi(build func(sample.Options) (*smf.SMF, error)) error {
	if midiPath == "" {
		return nil
	}

	s, err := build(sampleOptions())
	if err != nil {
		return errors.Wrap(err, "could not build midi")
	}

	path, err := util.ResolvePath(constants.GetOutDir(), midiPath)
	if err != nil {
		return errors.Wrapf(err, "could not resolve %v", midiPath)
	}
	if err := midi.WriteMidiFile(path, s); err != nil {
		return err
	}
	logging.Info("wrote midi file", logging.Fields{"path": path})
	return nil
}
