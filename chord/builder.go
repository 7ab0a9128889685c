package chord

import (
	"github.com/jsphweid/chordcompanion/model"
	"github.com/pkg/errors"
)

var ErrMissingRoot = errors.New("chord root was not set")

// Builder fills unset fields with defaults: inversion 0, Major, no color.
// Root has no default.
type Builder struct {
	chord   model.Chord
	hasRoot bool
}

func NewBuilder() *Builder {
	return &Builder{}
}

func (b *Builder) Root(root uint8) *Builder {
	b.chord.Root = root
	b.hasRoot = true
	return b
}

func (b *Builder) Inversion(inversion uint8) *Builder {
	b.chord.Inversion = inversion
	return b
}

func (b *Builder) Quality(q model.Quality) *Builder {
	b.chord.Quality = q
	return b
}

func (b *Builder) Color(c model.Color) *Builder {
	b.chord.Color = c
	return b
}

func (b *Builder) Build() (model.Chord, error) {
	if !b.hasRoot {
		return model.Chord{}, ErrMissingRoot
	}
	return b.chord, nil
}
