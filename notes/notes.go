// Package notes turns chord descriptions into the note numbers they sound.
package notes

import (
	"github.com/jsphweid/chordcompanion/constants"
	"github.com/jsphweid/chordcompanion/model"
	"github.com/jsphweid/chordcompanion/util"
	"github.com/pkg/errors"
)

var (
	ErrOverflow     = errors.New("note out of range")
	ErrInvalidChord = errors.New("invalid chord")
)

// Intervals returns the semitones above the root of every chord tone, in
// stacking order.
func Intervals(q model.Quality, c model.Color) ([]uint8, error) {
	if !q.Valid() {
		return nil, errors.Wrapf(ErrInvalidChord, "unknown quality %d", uint8(q))
	}
	if !c.Valid() {
		return nil, errors.Wrapf(ErrInvalidChord, "unknown color %d", uint8(c))
	}

	res := []uint8{0}

	if q == model.Minor {
		res = append(res, constants.MinorThird)
	} else {
		res = append(res, constants.MajorThird)
	}

	res = append(res, constants.PerfectFifth)

	switch c {
	case model.Sixth:
		res = append(res, constants.MajorSixth)
	case model.Seventh, model.Ninth, model.Eleventh:
		// a dominant seventh is the minor seventh interval
		if q == model.Major {
			res = append(res, constants.MajorSeventh)
		} else {
			res = append(res, constants.MinorSeventh)
		}
	}

	if c == model.Ninth || c == model.Eleventh {
		res = append(res, constants.MajorNinth)
	}

	if c == model.Eleventh {
		res = append(res, constants.Eleventh)
	}

	return res, nil
}

// Generate stacks the chord's intervals on its root and then applies the
// inversion: the front note is raised an octave and moved to the back,
// Inversion times. The result is not sorted. Any note above 255 is an error.
func Generate(c model.Chord) (model.Notes, error) {
	intervals, err := Intervals(c.Quality, c.Color)
	if err != nil {
		return model.Notes{}, err
	}

	var stacked model.Notes
	for _, interval := range intervals {
		note, ok := util.AddChecked(c.Root, interval)
		if !ok {
			return model.Notes{}, errors.Wrapf(ErrOverflow, "%v: root %d + %d", c, c.Root, interval)
		}
		if err := stacked.Push(note); err != nil {
			return model.Notes{}, err
		}
	}

	return invert(c, stacked)
}

func invert(c model.Chord, notes model.Notes) (model.Notes, error) {
	n := notes.Len()
	// ring buffer over the stacked notes; each step raises the front note
	ring := notes.Slice()
	start := 0
	for i := 0; i < int(c.Inversion); i++ {
		raised, ok := util.AddChecked(ring[start], uint8(constants.Octave))
		if !ok {
			return model.Notes{}, errors.Wrapf(ErrOverflow, "%v: inversion step %d raises %d past 255", c, i+1, ring[start])
		}
		ring[start] = raised
		start = (start + 1) % n
	}

	var res model.Notes
	for i := 0; i < n; i++ {
		if err := res.Push(ring[(start+i)%n]); err != nil {
			return model.Notes{}, err
		}
	}
	return res, nil
}

// MustGenerate is like Generate but panics on error.
func MustGenerate(c model.Chord) model.Notes {
	res, err := Generate(c)
	if err != nil {
		panic(err)
	}
	return res
}

// InMIDIRange reports whether every note fits in a MIDI message.
func InMIDIRange(n model.Notes) bool {
	for i := 0; i < n.Len(); i++ {
		if n.At(i) > constants.MaxMidiNote {
			return false
		}
	}
	return true
}
