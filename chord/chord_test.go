package chord

import (
	"fmt"
	"testing"

	"github.com/jsphweid/chordcompanion/model"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestSerializeLayout(t *testing.T) {
	c := model.Chord{Root: 69, Inversion: 2, Quality: model.Minor, Color: model.Ninth}

	assert := assert.New(t)
	assert.Equal([4]byte{69, 2, 2, 3}, Serialize(c))
	assert.Equal([4]byte{0, 0, 0, 0}, Serialize(model.Chord{}))
}

func TestChordSerializeDeserialize(t *testing.T) {
	qualities := []model.Quality{model.Major, model.Dominant, model.Minor}
	colors := []model.Color{model.None, model.Sixth, model.Seventh, model.Ninth, model.Eleventh}

	for _, q := range qualities {
		for _, c := range colors {
			for _, root := range []uint8{0, 60, 255} {
				chord := model.Chord{Root: root, Inversion: root / 3, Quality: q, Color: c}
				name := fmt.Sprintf("round trip for %v", chord)
				t.Run(name, func(t *testing.T) {
					frame := Serialize(chord)
					res, err := Deserialize(frame[:])
					assert.NoError(t, err)
					assert.Equal(t, chord, res)
				})
			}
		}
	}
}

func TestDeserializeRejectsMalformedFrames(t *testing.T) {
	cases := map[string][]byte{
		"empty":           {},
		"too short":       {0, 0, 0},
		"too long":        {0, 0, 0, 0, 0},
		"unknown quality": {0, 0, 5, 0},
		"unknown color":   {0, 0, 0, 5},
	}

	for name, buf := range cases {
		t.Run(name, func(t *testing.T) {
			res, err := Deserialize(buf)
			assert.True(t, errors.Is(err, ErrDecode))
			assert.Equal(t, model.Chord{}, res)
		})
	}
}

func TestSerializeManyDeserializeMany(t *testing.T) {
	chords := []model.Chord{
		{Root: 60},
		{Root: 62, Quality: model.Minor, Color: model.Seventh},
		{Root: 67, Inversion: 1, Quality: model.Dominant, Color: model.Ninth},
	}

	buf := SerializeMany(chords)

	assert := assert.New(t)
	assert.Equal([]byte{60, 0, 0, 0, 62, 0, 2, 2, 67, 1, 1, 3}, buf)

	res, err := DeserializeMany(buf)
	assert.NoError(err)
	assert.Equal(chords, res)
}

func TestDeserializeManyRejectsBadStreams(t *testing.T) {
	assert := assert.New(t)

	_, err := DeserializeMany([]byte{60, 0, 0, 0, 62})
	assert.True(errors.Is(err, ErrDecode))

	_, err = DeserializeMany([]byte{60, 0, 0, 0, 62, 0, 9, 0})
	assert.True(errors.Is(err, ErrDecode))
	assert.Contains(err.Error(), "frame 1")

	res, err := DeserializeMany(nil)
	assert.NoError(err)
	assert.Empty(res)
}
