package main // import "github.com/tonobo/nomadsnake"

import "fmt"

type InfoResponse struct {
	APIVersion string `json:"apiversion"`
	Author     string `json:"author"`
	Color      string `json:"color"`
	Head       string `json:"head"`
	Tail       string `json:"tail"`
	Version    string `json:"version,omitempty"`
}

// Info describes the snake to the engine. It never depends on game state.
func Info() InfoResponse {
	return InfoResponse{
		APIVersion: APIVersion,
		Author:     Author,
		Color:      Color,
		Head:       HeadIcon,
		Tail:       TailIcon,
		Version:    Version,
	}
}

func Start(game *Game, turn int, board *Board, you *Snake) {
	w := GameLog(game, you)
	defer w.Close()
	fmt.Fprintf(w, "%s START\n", game.ID)
}

func End(game *Game, turn int, board *Board, you *Snake) {
	w := GameLog(game, you)
	defer w.Close()
	fmt.Fprintf(w, "%s END turn=%d result=%s\n", game.ID, turn, result(board, you))
}

// result is won only for the sole survivor. An end with several snakes
// alive, you among them, is unfinished.
func result(board *Board, you *Snake) string {
	alive := false
	for _, s := range board.Snakes {
		if s.ID == you.ID {
			alive = true
		}
	}
	switch {
	case len(board.Snakes) == 0:
		return "draw"
	case !alive:
		return "lost"
	case len(board.Snakes) == 1:
		return "won"
	}
	return "unfinished"
}
