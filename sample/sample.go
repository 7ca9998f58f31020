package sample

import (
	"github.com/jsphweid/chromatic/chord"
	"github.com/jsphweid/chromatic/constants"
	"github.com/jsphweid/chromatic/note"
	"github.com/jsphweid/chromatic/progression"
	"github.com/jsphweid/chromatic/scale"
	"github.com/pkg/errors"
	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
)

type Options struct {
	Octave        int
	Tempo         int
	BeatsPerChord int
	Velocity      uint8
	Channel       uint8
}

func DefaultOptions() Options {
	return Options{
		Octave:        constants.GetOctave(),
		Tempo:         constants.GetTempo(),
		BeatsPerChord: constants.BeatsPerChord,
		Velocity:      constants.Velocity,
	}
}

// Key is the MIDI key of p in the given octave, C4 = 60.
func Key(p note.PitchClass, octave int) uint8 {
	return uint8((octave+1)*note.Octave + int(p))
}

// Voicing stacks the triad in close position above its root.
func Voicing(t chord.Triad, octave int) []uint8 {
	root := Key(t.Root, octave)
	return []uint8{
		root,
		root + uint8(t.Second.Sub(int(t.Root))),
		root + uint8(t.Third.Sub(int(t.Root))),
	}
}

func newTrack(name string, tempo int) smf.Track {
	var tr smf.Track
	tr.Add(0, smf.MetaTrackSequenceName(name))
	tr.Add(0, smf.MetaTempo(float64(tempo)))
	return tr
}

func finish(tr smf.Track) (*smf.SMF, error) {
	s := smf.New()
	s.TimeFormat = smf.MetricTicks(constants.Resolution)
	tr.Close(0)
	if err := s.Add(tr); err != nil {
		return nil, errors.Wrap(err, "could not add track")
	}
	return s, nil
}

// MaxKey is the highest MIDI key number.
const MaxKey = 127

func (o Options) validate() error {
	if o.Octave < 0 || o.Octave > constants.MaxOctave {
		return errors.Errorf("octave %v out of range", o.Octave)
	}
	if o.Tempo <= 0 {
		return errors.Errorf("tempo %v out of range", o.Tempo)
	}
	return nil
}

// addChord sounds all keys together for length ticks.
func addChord(tr *smf.Track, keys []uint8, length uint32, opts Options) {
	for _, k := range keys {
		tr.Add(0, midi.NoteOn(opts.Channel, k, opts.Velocity))
	}
	for i, k := range keys {
		var delta uint32
		if i == 0 {
			delta = length
		}
		tr.Add(delta, midi.NoteOff(opts.Channel, k))
	}
}

// Chords plays the triads one after another, each held for
// opts.BeatsPerChord quarter notes.
func Chords(name string, chords []chord.Triad, opts Options) (*smf.SMF, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	length := smf.MetricTicks(constants.Resolution).Ticks4th() * uint32(opts.BeatsPerChord)

	tr := newTrack(name, opts.Tempo)
	for _, c := range chords {
		addChord(&tr, Voicing(c, opts.Octave), length, opts)
	}
	return finish(tr)
}

func Triad(t chord.Triad, opts Options) (*smf.SMF, error) {
	return Chords(t.Name(), []chord.Triad{t}, opts)
}

func Progression(p progression.Progression, opts Options) (*smf.SMF, error) {
	return Chords(p.Labels()+" in "+p.Scale.Name(), p.Chords(), opts)
}

// Scale plays the scale ascending in quarter notes, then its seven triads.
// The ascending run must not go past MaxKey.
func Scale(s scale.Diatonic, opts Options) (*smf.SMF, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}

	root := int(Key(s.Root, opts.Octave))
	run := make([]uint8, 0, len(s.Notes))
	for _, n := range s.Notes {
		k := root + int(n.Sub(int(s.Root)))
		if k > MaxKey {
			return nil, errors.Errorf("%v does not fit in octave %v", s.Name(), opts.Octave)
		}
		run = append(run, uint8(k))
	}

	quarter := smf.MetricTicks(constants.Resolution).Ticks4th()
	tr := newTrack(s.Name(), opts.Tempo)
	for _, k := range run {
		addChord(&tr, []uint8{k}, quarter, opts)
	}

	length := quarter * uint32(opts.BeatsPerChord)
	for _, c := range s.Triads() {
		addChord(&tr, Voicing(c, opts.Octave), length, opts)
	}
	return finish(tr)
}
