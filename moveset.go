package main // import "github.com/tonobo/nomadsnake"

import "strings"

// MoveSet is an immutable set of directions.
type MoveSet uint8

const (
	NoMoves  MoveSet = 0
	AllMoves MoveSet = 1<<len(Directions) - 1
)

func bit(d Direction) MoveSet {
	for i, dir := range Directions {
		if dir == d {
			return 1 << uint(i)
		}
	}
	return 0
}

func NewMoveSet(dirs ...Direction) MoveSet {
	var s MoveSet
	for _, d := range dirs {
		s |= bit(d)
	}
	return s
}

func (s MoveSet) Has(d Direction) bool {
	b := bit(d)
	return b != 0 && s&b == b
}

func (s MoveSet) With(d Direction) MoveSet    { return s | bit(d) }
func (s MoveSet) Without(d Direction) MoveSet { return s &^ bit(d) }
func (s MoveSet) Intersect(o MoveSet) MoveSet { return s & o }
func (s MoveSet) Empty() bool                 { return s&AllMoves == 0 }

func (s MoveSet) Len() int {
	n := 0
	for _, d := range Directions {
		if s.Has(d) {
			n++
		}
	}
	return n
}

// Directions lists the members in canonical order.
func (s MoveSet) Directions() []Direction {
	dirs := make([]Direction, 0, len(Directions))
	for _, d := range Directions {
		if s.Has(d) {
			dirs = append(dirs, d)
		}
	}
	return dirs
}

func (s MoveSet) String() string {
	dirs := s.Directions()
	parts := make([]string, len(dirs))
	for i, d := range dirs {
		parts[i] = string(d)
	}
	return "[" + strings.Join(parts, ",") + "]"
}
