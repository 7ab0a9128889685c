package model

import "fmt"

type Quality uint8

const (
	Major Quality = iota
	Dominant
	Minor
)

func (q Quality) Valid() bool {
	return q <= Minor
}

func (q Quality) String() string {
	switch q {
	case Major:
		return "maj"
	case Dominant:
		return "dom"
	case Minor:
		return "m"
	}
	return fmt.Sprintf("Quality(%d)", uint8(q))
}

type Color uint8

const (
	None Color = iota
	Sixth
	Seventh
	Ninth
	Eleventh
)

func (c Color) Valid() bool {
	return c <= Eleventh
}

func (c Color) String() string {
	switch c {
	case None:
		return ""
	case Sixth:
		return "6"
	case Seventh:
		return "7"
	case Ninth:
		return "9"
	case Eleventh:
		return "11"
	}
	return fmt.Sprintf("Color(%d)", uint8(c))
}

// Chord describes a chord by its root, inversion, quality and color. The zero
// values of Quality and Color are the defaults (Major, None).
type Chord struct {
	Root      uint8
	Inversion uint8
	Quality   Quality
	Color     Color
}

var pitchClasses = [12]string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}

// PitchName renders a MIDI note number with C4 = 60.
func PitchName(note uint8) string {
	return fmt.Sprintf("%s%d", pitchClasses[note%12], int(note)/12-1)
}

// String renders the chord in the form accepted by chord.Parse, e.g. "C4",
// "A3m7" or "D#4dom9/2". A plain major triad carries no quality.
func (c Chord) String() string {
	res := PitchName(c.Root)
	if c.Quality != Major || c.Color != None {
		res += c.Quality.String()
	}
	res += c.Color.String()
	if c.Inversion > 0 {
		res += fmt.Sprintf("/%d", c.Inversion)
	}
	return res
}
