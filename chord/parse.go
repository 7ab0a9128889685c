package chord

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/jsphweid/chordcompanion/constants"
	"github.com/jsphweid/chordcompanion/model"
	"github.com/pkg/errors"
)

var ErrParse = errors.New("could not parse chord name")

// letter, accidental, octave, quality, color, inversion
var nameRegexp = regexp.MustCompile(`^([A-Ga-g])([#b]?)(-1|[0-9])(maj|dom|m)?(6|7|9|11)?(?:/([0-9]{1,3}))?$`)

var letterOffsets = map[string]int{"C": 0, "D": 2, "E": 4, "F": 5, "G": 7, "A": 9, "B": 11}

var colorNames = map[string]model.Color{
	"":   model.None,
	"6":  model.Sixth,
	"7":  model.Seventh,
	"9":  model.Ninth,
	"11": model.Eleventh,
}

// Parse reads names such as "C4", "A3m7", "Eb4dom9/2" or "G5maj11". The
// octave follows MIDI numbering where C4 is 60. A seventh, ninth or eleventh
// without a quality is a dominant chord, everything else defaults to major.
func Parse(name string) (model.Chord, error) {
	m := nameRegexp.FindStringSubmatch(strings.TrimSpace(name))
	if m == nil {
		return model.Chord{}, errors.Wrapf(ErrParse, "%q", name)
	}

	root := letterOffsets[strings.ToUpper(m[1])]
	switch m[2] {
	case "#":
		root++
	case "b":
		root--
	}
	octave, _ := strconv.Atoi(m[3])
	root += (octave + 1) * constants.Octave
	if root < 0 || root > 255 {
		return model.Chord{}, errors.Wrapf(ErrParse, "%q: root %d out of range", name, root)
	}

	color := colorNames[m[5]]

	var quality model.Quality
	switch m[4] {
	case "maj":
		quality = model.Major
	case "dom":
		quality = model.Dominant
	case "m":
		quality = model.Minor
	default:
		if color >= model.Seventh {
			quality = model.Dominant
		}
	}

	var inversion uint64
	if m[6] != "" {
		var err error
		inversion, err = strconv.ParseUint(m[6], 10, 8)
		if err != nil {
			return model.Chord{}, errors.Wrapf(ErrParse, "%q: inversion %s out of range", name, m[6])
		}
	}

	return NewBuilder().
		Root(uint8(root)).
		Inversion(uint8(inversion)).
		Quality(quality).
		Color(color).
		Build()
}
