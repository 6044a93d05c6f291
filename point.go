package main // import "github.com/tonobo/nomadsnake"

import "github.com/joonazan/vec2"

// Coord is a board cell. (0,0) is the bottom-left corner.
type Coord struct {
	X int `json:"x"`
	Y int `json:"y"`
}

func (c Coord) Vec() vec2.Vector {
	return vec2.Vector{X: float64(c.X), Y: float64(c.Y)}
}

func CoordFromVec(v vec2.Vector) Coord {
	return Coord{X: int(v.X), Y: int(v.Y)}
}

// Step returns the cell one move away from c in direction d.
func (c Coord) Step(d Direction) Coord {
	return CoordFromVec(c.Vec().Minus(Direction2Vector[d]))
}

func (c Coord) Manhattan(o Coord) int {
	return abs(c.X-o.X) + abs(c.Y-o.Y)
}

func abs(i int) int {
	if i < 0 {
		return -i
	}
	return i
}
