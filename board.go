package main // import "github.com/tonobo/nomadsnake"

import (
	"fmt"
	"io"
	"strings"

	"github.com/joonazan/vec2"
)

type Board struct {
	Height  int      `json:"height"`
	Width   int      `json:"width"`
	Food    []Coord  `json:"food"`
	Hazards []Coord  `json:"hazards"`
	Snakes  []*Snake `json:"snakes"`
}

// Outside reports whether vec lies off the board. Width bounds x, height
// bounds y.
func (b *Board) Outside(vec vec2.Vector) bool {
	if vec.X > float64(b.Width-1) || vec.X < 0.0 {
		return true
	}
	if vec.Y > float64(b.Height-1) || vec.Y < 0.0 {
		return true
	}
	return false
}

func (b *Board) FoodOn(c Coord) bool {
	return contains(b.Food, c)
}

func (b *Board) HazardOn(c Coord) bool {
	return contains(b.Hazards, c)
}

// FoodAround reports whether food lies one step from c.
func (b *Board) FoodAround(c Coord) bool {
	for _, d := range Directions {
		next := c.Step(d)
		if b.Outside(next.Vec()) {
			continue
		}
		if b.FoodOn(next) {
			return true
		}
	}
	return false
}

// HeadsAround returns the snakes other than you whose head is one step from c.
func (b *Board) HeadsAround(c Coord, you *Snake) []*Snake {
	snakes := []*Snake{}
	for _, d := range Directions {
		next := c.Step(d)
		if b.Outside(next.Vec()) {
			continue
		}
		for _, s := range b.Snakes {
			if s.Enemy(you) && len(s.Body) > 0 && s.Body[0] == next {
				snakes = append(snakes, s)
			}
		}
	}
	return snakes
}

// AllSnakes returns the board snakes, adding you when the board does not
// carry it.
func (b *Board) AllSnakes(you *Snake) []*Snake {
	for _, s := range b.Snakes {
		if s.ID == you.ID {
			return b.Snakes
		}
	}
	return append(append([]*Snake{}, b.Snakes...), you)
}

// Blocked reports whether moving you onto c ends the game this turn.
func (b *Board) Blocked(c Coord, you *Snake) bool {
	if b.Outside(c.Vec()) {
		return true
	}
	for _, s := range b.AllSnakes(you) {
		if len(s.Body) == 0 {
			continue
		}
		grows := s.Grows(b)
		if !s.Enemy(you) {
			grows = b.FoodOn(c)
		}
		if contains(s.Occupied(grows), c) {
			return true
		}
	}
	return false
}

func contains(cs []Coord, c Coord) bool {
	for _, x := range cs {
		if x == c {
			return true
		}
	}
	return false
}

var SnakeIDList = []string{"a", "b", "c", "d", "e", "g", "h", "j", "k"}

// PrintGrid draws the board top row first. You are M/m, other snakes get a
// letter each, F is food and x a hazard.
func PrintGrid(file io.Writer, b *Board, you *Snake) {
	grid := make([][]string, b.Height)
	for y := range grid {
		grid[y] = make([]string, b.Width)
		for x := range grid[y] {
			grid[y][x] = "-"
		}
	}
	set := func(c Coord, s string) {
		if b.Outside(c.Vec()) {
			return
		}
		grid[c.Y][c.X] = s
	}
	for _, c := range b.Hazards {
		set(c, "x")
	}
	for _, c := range b.Food {
		set(c, "F")
	}
	enemy := 0
	for _, s := range b.AllSnakes(you) {
		id := "m"
		if s.Enemy(you) {
			id = SnakeIDList[enemy%len(SnakeIDList)]
			enemy++
		}
		for i := len(s.Body) - 1; i >= 0; i-- {
			if i == 0 {
				set(s.Body[i], strings.ToUpper(id))
			} else {
				set(s.Body[i], id)
			}
		}
	}
	for y := b.Height - 1; y >= 0; y-- {
		fmt.Fprintln(file, strings.Join(grid[y], ""))
	}
	fmt.Fprint(file, "\n")
}
