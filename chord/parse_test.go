package chord

import (
	"testing"

	"github.com/jsphweid/chordcompanion/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		expected model.Chord
	}{
		{"C4", model.Chord{Root: 60}},
		{"C-1", model.Chord{Root: 0}},
		{"A3m7", model.Chord{Root: 57, Quality: model.Minor, Color: model.Seventh}},
		{"Eb4dom9/2", model.Chord{Root: 63, Inversion: 2, Quality: model.Dominant, Color: model.Ninth}},
		{"G5maj11", model.Chord{Root: 79, Quality: model.Major, Color: model.Eleventh}},
		{"F4m6", model.Chord{Root: 65, Quality: model.Minor, Color: model.Sixth}},
		{"G47", model.Chord{Root: 67, Quality: model.Dominant, Color: model.Seventh}},
		{"C46", model.Chord{Root: 60, Quality: model.Major, Color: model.Sixth}},
		{"f#2m", model.Chord{Root: 42, Quality: model.Minor}},
		{"B9/255", model.Chord{Root: 131, Inversion: 255}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := Parse(tt.name)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, c)
		})
	}
}

func TestParseRejects(t *testing.T) {
	for _, name := range []string{"", "H4", "C", "C4x", "C4m13", "Cb-1", "C4/256", "C4/"} {
		t.Run(name, func(t *testing.T) {
			_, err := Parse(name)
			assert.ErrorIs(t, err, ErrParse)
		})
	}
}

func TestParseReadsChordString(t *testing.T) {
	chords := []model.Chord{
		{Root: 60},
		{Root: 61, Quality: model.Minor},
		{Root: 62, Quality: model.Dominant},
		{Root: 64, Quality: model.Major, Color: model.Seventh},
		{Root: 66, Inversion: 3, Quality: model.Dominant, Color: model.Sixth},
		{Root: 0, Quality: model.Minor, Color: model.Eleventh},
	}

	for _, c := range chords {
		t.Run(c.String(), func(t *testing.T) {
			res, err := Parse(c.String())
			require.NoError(t, err)
			assert.Equal(t, c, res)
		})
	}
}
