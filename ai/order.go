package ai

import (
	"golang.org/x/exp/slices"

	"github.com/Yossefnasser/pente-game/game"
)

// sortedCandidates orders the candidate set deterministically: by Chebyshev
// distance to the last move, then row, then column. On an untouched board
// the single center candidate passes through as is.
func sortedCandidates(g *game.Game, radius int) []game.Move {
	moves := g.Candidates(radius)
	last, ok := g.LastMove()
	if !ok {
		return moves
	}
	slices.SortStableFunc(moves, func(a, b game.Move) int {
		da, db := chebyshev(a, last), chebyshev(b, last)
		if da != db {
			return da - db
		}
		if a.Y != b.Y {
			return a.Y - b.Y
		}
		return a.X - b.X
	})
	return moves
}

func chebyshev(a, b game.Move) int {
	dx, dy := a.X-b.X, a.Y-b.Y
	if dx < 0 {
		dx = -dx
	}
	if dy < 0 {
		dy = -dy
	}
	if dx > dy {
		return dx
	}
	return dy
}

// orderByEval plays each move for mover, scores the resulting position with
// the engine's evaluator from mover's point of view, undoes it, and returns
// the moves best first, truncated to width.
func (e *Engine) orderByEval(g *game.Game, moves []game.Move, mover game.PlayerColor, width int) []game.Move {
	type scored struct {
		move  game.Move
		value float64
	}
	ranked := make([]scored, 0, len(moves))
	for _, move := range moves {
		if !g.Apply(move, mover) {
			continue
		}
		value := e.evaluate(g, mover)
		g.Undo(move)
		ranked = append(ranked, scored{move: move, value: value})
	}
	slices.SortStableFunc(ranked, func(a, b scored) int {
		if a.value > b.value {
			return -1
		}
		if a.value < b.value {
			return 1
		}
		return 0
	})
	if width > 0 && len(ranked) > width {
		ranked = ranked[:width]
	}
	out := make([]game.Move, len(ranked))
	for i, s := range ranked {
		out[i] = s.move
	}
	return out
}

func truncate(moves []game.Move, width int) []game.Move {
	if width > 0 && len(moves) > width {
		return moves[:width]
	}
	return moves
}
