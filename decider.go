package main // import "github.com/tonobo/nomadsnake"

import (
	"encoding/binary"
	"fmt"
	"math/rand"

	"github.com/google/uuid"
)

// Decision is the outcome of one Evaluate call.
type Decision struct {
	ID        uuid.UUID
	Direction Direction
	Safe      MoveSet

	// Cornered is set when no direction survived the filters and Direction
	// is the fallback.
	Cornered bool
}

// Decider runs the filters, lets the ranker choose among the survivors and
// falls back to Fallback when nothing survives. It holds no per-game state
// and is safe for concurrent use.
type Decider struct {
	Filters  []MoveFilter
	Ranker   MoveRanker
	Fallback Direction

	// NewRand returns the random source for one decision. Each decision gets
	// a fresh source seeded from its id.
	NewRand func(id uuid.UUID) Rand
	Logs    LogSink
}

// NewBaselineDecider avoids the neck and the walls and moves at random.
func NewBaselineDecider() *Decider {
	return &Decider{
		Filters:  []MoveFilter{NeckFilter{}, BoundaryFilter{}},
		Ranker:   RandomRanker{},
		Fallback: FallbackDirection,
		NewRand:  seededRand,
		Logs:     GameLog,
	}
}

// NewSmartDecider adds body collisions and food seeking to the baseline.
func NewSmartDecider() *Decider {
	d := NewBaselineDecider()
	d.Filters = append(d.Filters, CollisionFilter{})
	d.Ranker = FoodRanker{}
	return d
}

var Strategies = map[string]func() *Decider{
	"baseline": NewBaselineDecider,
	"smart":    NewSmartDecider,
}

func NewDecider(strategy string) (*Decider, error) {
	f, ok := Strategies[strategy]
	if !ok {
		return nil, fmt.Errorf("unknown strategy %q", strategy)
	}
	return f(), nil
}

func seededRand(id uuid.UUID) Rand {
	return rand.New(rand.NewSource(int64(binary.BigEndian.Uint64(id[:8]))))
}

// SafeMoves intersects what every filter allows.
func (d *Decider) SafeMoves(t *Turn) MoveSet {
	safe := AllMoves
	for _, f := range d.Filters {
		safe = safe.Intersect(f.Allowed(t))
	}
	return safe
}

func (d *Decider) Decide(game *Game, turn int, board *Board, you *Snake) Direction {
	return d.Evaluate(game, turn, board, you).Direction
}

func (d *Decider) Evaluate(game *Game, turn int, board *Board, you *Snake) Decision {
	t := &Turn{Game: game, Number: turn, Board: board, You: you}
	dec := Decision{ID: uuid.New(), Safe: d.SafeMoves(t)}
	if dec.Safe.Empty() {
		dec.Direction = d.Fallback
		dec.Cornered = true
	} else {
		dec.Direction = d.Ranker.Choose(t, dec.Safe, d.NewRand(dec.ID))
	}
	d.log(t, dec)
	return dec
}

func (d *Decider) log(t *Turn, dec Decision) {
	if d.Logs == nil {
		return
	}
	w := d.Logs(t.Game, t.You)
	defer w.Close()
	cornered := ""
	if dec.Cornered {
		cornered = " NO SAFE MOVE"
	}
	fmt.Fprintf(w, "%s MOVE %s decision=%s turn=%d safe=%s%s\n",
		t.Game.ID, dec.Direction, dec.ID, t.Number, dec.Safe, cornered)
	if Debug {
		PrintGrid(w, t.Board, t.You)
	}
}
