package ai

import "github.com/Yossefnasser/pente-game/game"

// minimaxRoot explores every kept root candidate to the configured depth
// and returns the best one. Candidates never come back empty here: BestMove
// already ruled out the full-board case.
func (e *Engine) minimaxRoot(g *game.Game, candidates []game.Move) game.Move {
	player := e.cfg.Player
	moves := truncate(sortedCandidates(g, e.cfg.CandidateRadius), e.cfg.RootWidth)
	if len(moves) == 0 {
		moves = candidates
	}

	best := moves[0]
	bestValue := -2.0 * winScore
	for _, move := range moves {
		if !g.Apply(move, player) {
			continue
		}
		value := e.minimax(g, e.cfg.Depth-1, game.Opponent(player))
		g.Undo(move)
		if value > bestValue {
			bestValue = value
			best = move
		}
	}
	return best
}

// minimax scores the position for the engine's player with mover to act.
// Terminal positions short-circuit to the dominant win sentinel so that a
// forced line always outranks any heuristic value.
func (e *Engine) minimax(g *game.Game, depth int, mover game.PlayerColor) float64 {
	e.stats.Nodes++
	player := e.cfg.Player
	if winner, decided := g.Winner(); decided {
		if winner == player {
			return winScore
		}
		return -winScore
	}
	if depth <= 0 || g.IsFull() {
		return e.evaluate(g, player)
	}

	moves := truncate(sortedCandidates(g, e.cfg.CandidateRadius), e.cfg.NodeWidth)
	if len(moves) == 0 {
		return e.evaluate(g, player)
	}

	maximizing := mover == player
	best := -2.0 * winScore
	if !maximizing {
		best = 2.0 * winScore
	}
	for _, move := range moves {
		if !g.Apply(move, mover) {
			continue
		}
		value := e.minimax(g, depth-1, game.Opponent(mover))
		g.Undo(move)
		if maximizing {
			if value > best {
				best = value
			}
		} else {
			if value < best {
				best = value
			}
		}
	}
	return best
}
