package main // import "github.com/tonobo/nomadsnake"

// Turn is everything a filter or ranker may look at for one decision.
type Turn struct {
	Game   *Game
	Number int
	Board  *Board
	You    *Snake
}

// A MoveFilter returns the directions it allows. The decider intersects the
// answers of all its filters, so a filter never sees what another rejected.
type MoveFilter interface {
	Name() string
	Allowed(t *Turn) MoveSet
}

// NeckFilter forbids reversing onto the snake's own neck.
type NeckFilter struct{}

func (NeckFilter) Name() string { return "neck" }

func (NeckFilter) Allowed(t *Turn) MoveSet {
	neck, ok := t.You.Neck()
	if !ok {
		return AllMoves
	}
	head := t.You.Body[0]
	switch {
	case neck.X < head.X:
		return AllMoves.Without(Left)
	case neck.X > head.X:
		return AllMoves.Without(Right)
	case neck.Y < head.Y:
		return AllMoves.Without(Down)
	case neck.Y > head.Y:
		return AllMoves.Without(Up)
	}
	return AllMoves
}

// BoundaryFilter forbids leaving the board.
type BoundaryFilter struct{}

func (BoundaryFilter) Name() string { return "boundary" }

func (BoundaryFilter) Allowed(t *Turn) MoveSet {
	allowed := NoMoves
	head := t.You.Body[0]
	for _, d := range Directions {
		if validMove(head.Step(d), t.Board) {
			allowed = allowed.With(d)
		}
	}
	return allowed
}

// validMove reports whether spot is a cell of the board.
func validMove(spot Coord, board *Board) bool {
	return !board.Outside(spot.Vec())
}

// CollisionFilter forbids landing on any snake body, your own included. Tails
// that vacate this turn are free.
type CollisionFilter struct{}

func (CollisionFilter) Name() string { return "collision" }

func (CollisionFilter) Allowed(t *Turn) MoveSet {
	allowed := NoMoves
	head := t.You.Body[0]
	for _, d := range Directions {
		if !t.Board.Blocked(head.Step(d), t.You) {
			allowed = allowed.With(d)
		}
	}
	return allowed
}
