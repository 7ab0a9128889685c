package midi

import (
	"io"

	"github.com/jsphweid/chordcompanion/model"
	"github.com/pkg/errors"
	"gitlab.com/gomidi/midi/v2/smf"
)

type SampleOptions struct {
	Voice           Voice
	TicksPerQuarter uint16
	BPM             float64
	// Quarters is how long the chord is held.
	Quarters uint32
}

// Sample builds a single track SMF that holds the chord for opts.Quarters
// quarter notes.
func Sample(c model.Chord, n model.Notes, opts SampleOptions) (*smf.SMF, error) {
	ons, err := NoteOns(n, opts.Voice)
	if err != nil {
		return nil, err
	}
	offs, err := NoteOffs(n, opts.Voice)
	if err != nil {
		return nil, err
	}

	ticks := smf.MetricTicks(opts.TicksPerQuarter)
	res := smf.New()
	res.TimeFormat = ticks

	var track smf.Track
	track.Add(0, smf.MetaTrackSequenceName(c.String()))
	track.Add(0, smf.MetaTempo(opts.BPM))
	for _, msg := range ons {
		track.Add(0, msg)
	}
	for i, msg := range offs {
		var delta uint32
		if i == 0 {
			delta = ticks.Ticks4th() * opts.Quarters
		}
		track.Add(delta, msg)
	}
	track.Close(0)

	if err := res.Add(track); err != nil {
		return nil, errors.Wrap(err, "could not add track to sample")
	}
	return res, nil
}

func WriteSample(w io.Writer, c model.Chord, n model.Notes, opts SampleOptions) error {
	s, err := Sample(c, n, opts)
	if err != nil {
		return err
	}
	if _, err := s.WriteTo(w); err != nil {
		return errors.Wrap(err, "could not write sample")
	}
	return nil
}
