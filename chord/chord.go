package chord

import (
	"github.com/jsphweid/chordcompanion/constants"
	"github.com/jsphweid/chordcompanion/model"
	"github.com/pkg/errors"
)

var ErrDecode = errors.New("could not decode chord")

// Serialize writes one byte per field: root, inversion, quality, color.
func Serialize(c model.Chord) [constants.ChordSize]byte {
	return [constants.ChordSize]byte{c.Root, c.Inversion, uint8(c.Quality), uint8(c.Color)}
}

// Deserialize is the inverse of Serialize. It never returns a partially
// filled chord.
func Deserialize(buf []byte) (model.Chord, error) {
	if len(buf) != constants.ChordSize {
		return model.Chord{}, errors.Wrapf(ErrDecode, "expected %d bytes, got %d", constants.ChordSize, len(buf))
	}

	quality := model.Quality(buf[2])
	if !quality.Valid() {
		return model.Chord{}, errors.Wrapf(ErrDecode, "unknown quality %d", buf[2])
	}
	color := model.Color(buf[3])
	if !color.Valid() {
		return model.Chord{}, errors.Wrapf(ErrDecode, "unknown color %d", buf[3])
	}

	return model.Chord{
		Root:      buf[0],
		Inversion: buf[1],
		Quality:   quality,
		Color:     color,
	}, nil
}

// SerializeMany concatenates the frames of every chord.
func SerializeMany(chords []model.Chord) []byte {
	res := make([]byte, 0, len(chords)*constants.ChordSize)
	for _, c := range chords {
		frame := Serialize(c)
		res = append(res, frame[:]...)
	}
	return res
}

func DeserializeMany(buf []byte) ([]model.Chord, error) {
	if len(buf)%constants.ChordSize != 0 {
		return nil, errors.Wrapf(ErrDecode, "stream length %d is not a multiple of %d", len(buf), constants.ChordSize)
	}

	res := make([]model.Chord, 0, len(buf)/constants.ChordSize)
	for i := 0; i < len(buf); i += constants.ChordSize {
		c, err := Deserialize(buf[i : i+constants.ChordSize])
		if err != nil {
			return nil, errors.Wrapf(err, "frame %d", i/constants.ChordSize)
		}
		res = append(res, c)
	}
	return res, nil
}
