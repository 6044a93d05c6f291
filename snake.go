package main // import "github.com/tonobo/nomadsnake"

type Snake struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Health  int     `json:"health"`
	Body    []Coord `json:"body"`
	Head    Coord   `json:"head"`
	Length  int     `json:"length"`
	Latency string  `json:"latency"`
	Shout   string  `json:"shout"`
	Squad   string  `json:"squad"`
}

// Init fills in the fields older engines leave out of the payload.
func (s *Snake) Init() {
	if len(s.Body) > 0 {
		s.Head = s.Body[0]
	}
	if s.Length == 0 {
		s.Length = len(s.Body)
	}
}

func (s *Snake) Neck() (Coord, bool) {
	if len(s.Body) < 2 {
		return Coord{}, false
	}
	return s.Body[1], true
}

// Grows reports whether the snake may eat this turn, in which case its tail
// does not vacate.
func (s *Snake) Grows(b *Board) bool {
	return b.FoodAround(s.Body[0])
}

// Occupied returns the cells this snake will still cover after it moves.
// The tail is released unless grows is set. A stacked tail stays covered by
// its duplicate segment.
func (s *Snake) Occupied(grows bool) []Coord {
	if grows {
		return s.Body
	}
	return s.Body[:len(s.Body)-1]
}

func (s *Snake) Enemy(you *Snake) bool {
	return s.ID != you.ID
}
