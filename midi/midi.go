package midi

import (
	"bytes"

	"github.com/jsphweid/chordcompanion/model"
	"github.com/jsphweid/chordcompanion/notes"
	"github.com/pkg/errors"
	gomidi "gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
)

var ErrOutOfRange = errors.New("value out of MIDI range")

// Voice is where and how loud notes are played.
type Voice struct {
	Channel  uint8
	Velocity uint8
}

func (v Voice) validate() error {
	if v.Channel > 15 {
		return errors.Wrapf(ErrOutOfRange, "channel %d", v.Channel)
	}
	if v.Velocity == 0 || v.Velocity > 127 {
		return errors.Wrapf(ErrOutOfRange, "velocity %d", v.Velocity)
	}
	return nil
}

func checkNotes(n model.Notes) error {
	if !notes.InMIDIRange(n) {
		return errors.Wrapf(ErrOutOfRange, "notes %v", n.Slice())
	}
	return nil
}

// NoteOns returns one NoteOn message per note, in sequence order.
func NoteOns(n model.Notes, v Voice) ([]gomidi.Message, error) {
	if err := v.validate(); err != nil {
		return nil, err
	}
	if err := checkNotes(n); err != nil {
		return nil, err
	}

	res := make([]gomidi.Message, 0, n.Len())
	for i := 0; i < n.Len(); i++ {
		res = append(res, gomidi.NoteOn(v.Channel, n.At(i), v.Velocity))
	}
	return res, nil
}

// NoteOffs releases the notes in the same order NoteOns pressed them.
func NoteOffs(n model.Notes, v Voice) ([]gomidi.Message, error) {
	if err := v.validate(); err != nil {
		return nil, err
	}
	if err := checkNotes(n); err != nil {
		return nil, err
	}

	res := make([]gomidi.Message, 0, n.Len())
	for i := 0; i < n.Len(); i++ {
		res = append(res, gomidi.NoteOff(v.Channel, n.At(i)))
	}
	return res, nil
}

// ReadNotes returns the keys of every note start in an SMF, in file order.
func ReadNotes(data []byte) (res []uint8, e error) {
	// handle panics
	// https://github.com/gomidi/midi/issues/20
	defer func() {
		if r := recover(); r != nil {
			res = nil
			e = errors.Errorf("error parsing midi data: %v", r)
		}
	}()

	s, err := smf.ReadFrom(bytes.NewReader(data))
	if err != nil {
		return nil, errors.Wrap(err, "error parsing midi data")
	}

	for _, track := range s.Tracks {
		for _, evt := range track {
			var channel, key, velocity uint8
			if gomidi.Message(evt.Message).GetNoteStart(&channel, &key, &velocity) {
				res = append(res, key)
			}
		}
	}
	return res, nil
}
