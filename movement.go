package main // import "github.com/tonobo/nomadsnake"

import (
	"fmt"

	"github.com/joonazan/vec2"
)

type Direction string

const (
	Up    Direction = "up"
	Down  Direction = "down"
	Left  Direction = "left"
	Right Direction = "right"
)

// Directions is the canonical order used wherever iteration order matters.
var Directions = [4]Direction{Up, Down, Left, Right}

// Direction2Vector holds the offset that is subtracted from a position to
// step one cell in that direction.
var Direction2Vector = map[Direction]vec2.Vector{
	Left:  {X: 1, Y: 0},
	Up:    {X: 0, Y: -1},
	Right: {X: -1, Y: 0},
	Down:  {X: 0, Y: 1},
}

func ParseDirection(s string) (Direction, error) {
	switch d := Direction(s); d {
	case Up, Down, Left, Right:
		return d, nil
	}
	return "", fmt.Errorf("unknown direction %q", s)
}

type Movement struct {
	Direction Direction
	Target    Coord
	Magnitude float64
	Score     int
}

type Movements []*Movement

func (p Movements) Len() int { return len(p) }
func (p Movements) Less(i, j int) bool {
	if p[i].Score != p[j].Score {
		return p[i].Score < p[j].Score
	}
	return p[i].Magnitude < p[j].Magnitude
}
func (p Movements) Swap(i, j int) { p[i], p[j] = p[j], p[i] }

// Best returns the leading movements that tie with the first one. p must be
// sorted.
func (p Movements) Best() Movements {
	if len(p) == 0 {
		return p
	}
	n := 1
	for n < len(p) && !p.Less(0, n) {
		n++
	}
	return p[:n]
}
