package sample

import (
	"sort"
	"time"

	"github.com/jsphweid/chromatic/chord"
	"github.com/jsphweid/chromatic/note"
	"github.com/jsphweid/chromatic/util"
	"gitlab.com/gomidi/midi/v2/smf"
)

type reducedEvent struct {
	offset    int64
	isNoteOff bool
	key       uint8
}

// Sounding is the set of keys held from Offset until the next change.
type Sounding struct {
	Offset time.Duration
	Keys   []uint8
	Triads []chord.Triad
}

func PitchClasses(keys []uint8) []note.PitchClass {
	res := make([]note.PitchClass, len(keys))
	for i, k := range keys {
		res[i] = note.New(int(k))
	}
	return res
}

func reduce(s *smf.SMF) []reducedEvent {
	var events []reducedEvent
	for _, track := range s.Tracks {
		var absTicks int64
		for _, event := range track {
			absTicks += int64(event.Delta)
			var channel, key, velocity uint8
			switch {
			case event.Message.GetNoteOn(&channel, &key, &velocity):
				// note on with velocity 0 is a note off
				events = append(events, reducedEvent{
					offset:    s.TimeAt(absTicks),
					isNoteOff: velocity == 0,
					key:       key,
				})
			case event.Message.GetNoteOff(&channel, &key, &velocity):
				events = append(events, reducedEvent{
					offset:    s.TimeAt(absTicks),
					isNoteOff: true,
					key:       key,
				})
			}
		}
	}

	// prioritize smaller offset values then note off
	sort.SliceStable(events, func(i, j int) bool {
		if events[i].offset != events[j].offset {
			return events[i].offset < events[j].offset
		}
		return events[i].isNoteOff && !events[j].isNoteOff
	})
	return events
}

// Extract walks every track of s and returns what is held after each change,
// in time order. Silences are left out.
func Extract(s *smf.SMF) []Sounding {
	timestampToKeys := make(map[int64][]uint8)
	pressed := make(map[uint8]bool)
	for _, evt := range reduce(s) {
		if evt.isNoteOff {
			delete(pressed, evt.key)
		} else {
			pressed[evt.key] = true
		}
		timestampToKeys[evt.offset] = util.GetKeysSorted(pressed)
	}

	var res []Sounding
	for _, ts := range util.GetKeysSorted(timestampToKeys) {
		keys := timestampToKeys[ts]
		if len(keys) == 0 {
			continue
		}
		res = append(res, Sounding{
			Offset: time.Duration(ts) * time.Microsecond,
			Keys:   keys,
			Triads: chord.Identify(PitchClasses(keys)),
		})
	}
	return res
}
