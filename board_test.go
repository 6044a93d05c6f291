package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoardOutside(t *testing.T) {
	b := &Board{Width: 7, Height: 12}
	assert.False(t, b.Outside(Coord{X: 0, Y: 0}.Vec()))
	assert.False(t, b.Outside(Coord{X: 6, Y: 11}.Vec()))
	assert.True(t, b.Outside(Coord{X: 7, Y: 0}.Vec()))
	assert.True(t, b.Outside(Coord{X: 0, Y: 12}.Vec()))
	assert.True(t, b.Outside(Coord{X: -1, Y: 3}.Vec()))
}

func TestBoardAllSnakes(t *testing.T) {
	you := newSnake("me", Coord{X: 1, Y: 1}, Coord{X: 1, Y: 0})
	other := newSnake("them", Coord{X: 3, Y: 3}, Coord{X: 3, Y: 2})
	b := &Board{Width: 5, Height: 5, Snakes: []*Snake{other}}
	assert.Len(t, b.AllSnakes(you), 2)
	assert.Len(t, b.Snakes, 1)

	b.Snakes = append(b.Snakes, you)
	assert.Len(t, b.AllSnakes(you), 2)
}

func TestPrintGrid(t *testing.T) {
	you := newSnake("me", Coord{X: 0, Y: 0}, Coord{X: 1, Y: 0})
	other := newSnake("them", Coord{X: 2, Y: 1}, Coord{X: 1, Y: 1})
	b := &Board{
		Width:   3,
		Height:  3,
		Food:    []Coord{{X: 2, Y: 2}},
		Hazards: []Coord{{X: 0, Y: 2}},
		Snakes:  []*Snake{you, other},
	}
	var buf bytes.Buffer
	PrintGrid(&buf, b, you)
	assert.Equal(t, "x-F\n-aA\nMm-\n\n", buf.String())
}

func TestSnakeInit(t *testing.T) {
	s := &Snake{ID: "me", Body: []Coord{{X: 2, Y: 2}, {X: 2, Y: 1}, {X: 2, Y: 0}}}
	s.Init()
	assert.Equal(t, Coord{X: 2, Y: 2}, s.Head)
	assert.Equal(t, 3, s.Length)
	neck, ok := s.Neck()
	assert.True(t, ok)
	assert.Equal(t, Coord{X: 2, Y: 1}, neck)
	assert.Len(t, s.Occupied(false), 2)
	assert.Len(t, s.Occupied(true), 3)
}

func TestGameLogFile(t *testing.T) {
	dir := t.TempDir()
	LogDir = dir
	defer func() { LogDir = "" }()

	game := &Game{ID: "g42"}
	you := &Snake{Name: "nomad"}
	Start(game, 0, &Board{Width: 1, Height: 1}, you)
	End(game, 9, &Board{Width: 1, Height: 1, Snakes: []*Snake{{ID: "x"}}}, you)

	w := AccessLog(game, you)
	_, err := w.Write([]byte("{}\n"))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	body, err := os.ReadFile(filepath.Join(dir, "snake-nomad-g42.log"))
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(body)), "\n")
	assert.Equal(t, []string{"g42 START", "g42 END turn=9 result=lost"}, lines)

	body, err = os.ReadFile(filepath.Join(dir, "access-snake-nomad-g42.log"))
	require.NoError(t, err)
	assert.Equal(t, "{}\n", string(body))
}

func TestGameLogFile_StaysInLogDir(t *testing.T) {
	root := t.TempDir()
	dir := filepath.Join(root, "logs")
	require.NoError(t, os.Mkdir(dir, 0755))
	LogDir = dir
	defer func() { LogDir = "" }()

	Start(&Game{ID: "../../g1"}, 0, &Board{Width: 1, Height: 1}, &Snake{Name: "x/../../escaped"})

	entries, err := os.ReadDir(root)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "logs", entries[0].Name())

	entries, err = os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "snake-x_______escaped-______g1.log", entries[0].Name())
}

func TestResult(t *testing.T) {
	you := &Snake{ID: "me"}
	assert.Equal(t, "won", result(&Board{Snakes: []*Snake{you}}, you))
	assert.Equal(t, "draw", result(&Board{}, you))
	assert.Equal(t, "lost", result(&Board{Snakes: []*Snake{{ID: "x"}}}, you))
	assert.Equal(t, "unfinished", result(&Board{Snakes: []*Snake{you, {ID: "x"}}}, you))
}
