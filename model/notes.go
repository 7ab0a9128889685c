package model

import "github.com/pkg/errors"

// NotesCapacity is the most notes a Notes value can hold. A chord never
// produces more than 6.
const NotesCapacity = 8

var ErrCapacity = errors.New("notes capacity exceeded")

// Notes is a fixed capacity, ordered sequence of note numbers.
type Notes struct {
	buf [NotesCapacity]uint8
	n   int
}

func NewNotes(notes ...uint8) (Notes, error) {
	var res Notes
	for _, note := range notes {
		if err := res.Push(note); err != nil {
			return Notes{}, err
		}
	}
	return res, nil
}

func (n *Notes) Push(note uint8) error {
	if n.n == NotesCapacity {
		return ErrCapacity
	}
	n.buf[n.n] = note
	n.n++
	return nil
}

func (n Notes) Len() int { return n.n }

func (n Notes) At(i int) uint8 { return n.buf[i] }

// Slice returns a copy of the notes.
func (n Notes) Slice() []uint8 {
	res := make([]uint8, n.n)
	copy(res, n.buf[:n.n])
	return res
}

// Equal compares the used part of both sequences only.
func (n Notes) Equal(other Notes) bool {
	if n.n != other.n {
		return false
	}
	for i := 0; i < n.n; i++ {
		if n.buf[i] != other.buf[i] {
			return false
		}
	}
	return true
}
