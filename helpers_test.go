package main

import (
	"bytes"
	"io"

	"github.com/google/uuid"
)

func newSnake(id string, body ...Coord) *Snake {
	s := &Snake{ID: id, Name: id, Health: 90, Body: body}
	s.Init()
	return s
}

func newTurn(width, height int, you *Snake, others ...*Snake) *Turn {
	return &Turn{
		Game:  &Game{ID: "g1"},
		Board: &Board{Width: width, Height: height, Snakes: append([]*Snake{you}, others...)},
		You:   you,
	}
}

// fixedRand always draws the same index, modulo n.
type fixedRand int

func (r fixedRand) Intn(n int) int { return int(r) % n }

func withRand(d *Decider, r Rand) *Decider {
	d.NewRand = func(uuid.UUID) Rand { return r }
	return d
}

func withLog(d *Decider, buf *bytes.Buffer) *Decider {
	d.Logs = func(*Game, *Snake) io.WriteCloser { return nopCloser{buf} }
	return d
}
