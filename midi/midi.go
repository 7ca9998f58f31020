package midi

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
	"gitlab.com/gomidi/midi/v2/smf"
)

func ReadMidiFile(filepath string) (s *smf.SMF, e error) {
	// handle panics
	// https://github.com/gomidi/midi/issues/20
	defer func() {
		if r := recover(); r != nil {
			s = nil
			e = fmt.Errorf("Error parsing midi file... %v", r)
		}
	}()

	dat, err := os.ReadFile(filepath)
	if err != nil {
		return nil, errors.Wrap(err, "Error reading midi file...")
	}

	res, err := smf.ReadFrom(bytes.NewReader(dat))
	if err != nil {
		return nil, errors.Wrap(err, "Error parsing midi file...")
	}
	return res, nil
}

func WriteMidi(w io.Writer, s *smf.SMF) error {
	if _, err := s.WriteTo(w); err != nil {
		return errors.Wrap(err, "Error writing midi...")
	}
	return nil
}

func WriteMidiFile(filepath string, s *smf.SMF) error {
	f, err := os.Create(filepath)
	if err != nil {
		return errors.Wrapf(err, "Couldn't create file %v", filepath)
	}
	defer f.Close()

	if err := WriteMidi(f, s); err != nil {
		return err
	}
	return f.Close()
}
