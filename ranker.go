package main // import "github.com/tonobo/nomadsnake"

import (
	"sort"

	"github.com/nickdavies/go-astar/astar"
)

// Rand is the randomness a ranker draws from. *math/rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
}

// A MoveRanker picks one direction out of a non-empty safe set.
type MoveRanker interface {
	Name() string
	Choose(t *Turn, safe MoveSet, rng Rand) Direction
}

// RandomRanker picks uniformly among the safe directions.
type RandomRanker struct{}

func (RandomRanker) Name() string { return "random" }

func (RandomRanker) Choose(t *Turn, safe MoveSet, rng Rand) Direction {
	dirs := safe.Directions()
	return dirs[rng.Intn(len(dirs))]
}

// FoodRanker heads for the nearest food once health drops below
// FoodHealthLimit and keeps away from the heads of snakes at least as long
// as you. Equal scores are broken at random.
type FoodRanker struct{}

func (FoodRanker) Name() string { return "food" }

func (r FoodRanker) Choose(t *Turn, safe MoveSet, rng Rand) Direction {
	moves := r.Rank(t, safe)
	best := moves.Best()
	return best[rng.Intn(len(best))].Direction
}

// Rank scores every safe direction, lowest first.
func (r FoodRanker) Rank(t *Turn, safe MoveSet) Movements {
	hungry := t.You.Health < FoodHealthLimit && len(t.Board.Food) > 0
	var grid astar.AStar
	if hungry {
		grid = r.grid(t)
	}
	head := t.You.Body[0]
	moves := Movements{}
	for _, d := range safe.Directions() {
		next := head.Step(d)
		m := &Movement{Direction: d, Target: next}
		for _, s := range t.Board.HeadsAround(next, t.You) {
			if len(s.Body) >= len(t.You.Body) {
				m.Score += EnemyHeadPenalty
			}
		}
		if hungry {
			steps, food := r.nearestFood(grid, t.Board, next)
			m.Score += steps
			m.Magnitude = next.Vec().Minus(food.Vec()).Length()
		}
		moves = append(moves, m)
	}
	sort.Stable(moves)
	return moves
}

// grid builds the pathing map: snake bodies are walls, hazards cost extra.
func (FoodRanker) grid(t *Turn) astar.AStar {
	a := astar.NewAStar(t.Board.Height, t.Board.Width)
	for _, c := range t.Board.Hazards {
		if validMove(c, t.Board) {
			a.FillTile(tile(c), HazardWeight)
		}
	}
	for _, s := range t.Board.AllSnakes(t.You) {
		for _, c := range s.Occupied(false) {
			if validMove(c, t.Board) {
				a.FillTile(tile(c), -1)
			}
		}
	}
	return a
}

// nearestFood returns the cost of reaching the closest food from c and that
// food. Unreachable food is costed by Manhattan distance plus the board size.
func (FoodRanker) nearestFood(a astar.AStar, b *Board, c Coord) (int, Coord) {
	best, target := -1, Coord{}
	for _, food := range b.Food {
		cost := pathCost(a, b, c, food)
		if cost < 0 {
			cost = c.Manhattan(food) + b.Width*b.Height
		}
		if best < 0 || cost < best {
			best, target = cost, food
		}
	}
	return best, target
}

// pathCost walks the A* path from c to food counting steps and hazard
// surcharges. It returns -1 when there is no path.
func pathCost(a astar.AStar, b *Board, c, food Coord) int {
	if c == food {
		return 0
	}
	path := a.FindPath(astar.NewPointToPoint(), []astar.Point{tile(c)}, []astar.Point{tile(food)})
	if path == nil {
		return -1
	}
	cost := -1
	for p := path; p != nil; p = p.Parent {
		cost++
		if b.HazardOn(Coord{X: p.Col, Y: p.Row}) {
			cost += HazardWeight
		}
	}
	return cost
}

func tile(c Coord) astar.Point {
	return astar.Point{Row: c.Y, Col: c.X}
}
