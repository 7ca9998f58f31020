package render

import (
	"github.com/jsphweid/chromatic/chord"
	"github.com/jsphweid/chromatic/key"
	"github.com/jsphweid/chromatic/model"
	"github.com/jsphweid/chromatic/note"
	"github.com/jsphweid/chromatic/progression"
	"github.com/jsphweid/chromatic/sample"
	"github.com/jsphweid/chromatic/scale"
)

func ChordView(t chord.Triad) model.Chord {
	return model.Chord{
		Name:    t.Name(),
		Symbol:  t.Symbol(),
		Quality: t.Quality.String(),
		Notes:   note.Names(t.Notes()),
		Display: t.String(),
	}
}

func chordViews(ts []chord.Triad) []model.Chord {
	res := make([]model.Chord, 0, len(ts))
	for _, t := range ts {
		res = append(res, ChordView(t))
	}
	return res
}

func ScaleView(s scale.Diatonic) model.Scale {
	return model.Scale{
		Name:    s.Name(),
		Mode:    s.Mode.String(),
		Notes:   note.Names(s.Notes[:]),
		Display: s.String(),
		Chords:  chordViews(s.Triads()),
	}
}

func ProgressionView(p progression.Progression) model.Progression {
	steps := make([]model.ProgressionStep, 0, len(p.Steps))
	for _, st := range p.Steps {
		steps = append(steps, model.ProgressionStep{Label: st.Label, Chord: ChordView(st.Chord)})
	}
	return model.Progression{
		Labels:  p.Labels(),
		Scale:   p.Scale.Name(),
		Steps:   steps,
		Skipped: p.Skipped,
	}
}

func KeyView(cands []key.Candidate, top int) model.KeyEstimate {
	res := model.KeyEstimate{Candidates: []model.KeyCandidate{}}
	if len(cands) == 0 {
		return res
	}
	res.Best = cands[0].Scale.Name()
	for i, c := range cands {
		if top > 0 && i >= top {
			break
		}
		res.Candidates = append(res.Candidates, model.KeyCandidate{Scale: c.Scale.Name(), Score: c.Score})
	}
	return res
}

func IdentificationView(notes []note.PitchClass, matches []chord.Triad) model.Identification {
	return model.Identification{
		Notes:   note.Names(notes),
		Matches: chordViews(matches),
	}
}

func SoundingViews(found []sample.Sounding) []model.SoundingChord {
	var res []model.SoundingChord
	for _, f := range found {
		for _, t := range f.Triads {
			res = append(res, model.SoundingChord{
				Offset: float32(f.Offset.Seconds()),
				Chord:  ChordView(t),
			})
		}
	}
	return res
}
