package cmd

import (
	"github.com/jsphweid/chordcompanion/chord"
	"github.com/jsphweid/chordcompanion/model"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var qualities = map[string]model.Quality{
	"maj": model.Major,
	"dom": model.Dominant,
	"m":   model.Minor,
}

var colors = map[string]model.Color{
	"none": model.None,
	"6":    model.Sixth,
	"7":    model.Seventh,
	"9":    model.Ninth,
	"11":   model.Eleventh,
}

// chordFlags lets a chord be given field by field instead of by name.
type chordFlags struct {
	root      uint8
	inversion uint8
	quality   string
	color     string
}

func (f *chordFlags) register(cmd *cobra.Command) {
	cmd.Flags().Uint8Var(&f.root, "root", 0, "root note number, used when no chord name is given")
	cmd.Flags().Uint8Var(&f.inversion, "inversion", 0, "inversion")
	cmd.Flags().StringVar(&f.quality, "quality", "maj", "maj, dom or m")
	cmd.Flags().StringVar(&f.color, "color", "none", "none, 6, 7, 9 or 11")
}

func (f *chordFlags) chord(cmd *cobra.Command, args []string) (model.Chord, error) {
	if len(args) == 1 {
		return chord.Parse(args[0])
	}

	q, ok := qualities[f.quality]
	if !ok {
		return model.Chord{}, errors.Errorf("unknown quality %q", f.quality)
	}
	c, ok := colors[f.color]
	if !ok {
		return model.Chord{}, errors.Errorf("unknown color %q", f.color)
	}

	b := chord.NewBuilder().Inversion(f.inversion).Quality(q).Color(c)
	if cmd.Flags().Changed("root") {
		b.Root(f.root)
	}
	return b.Build()
}
