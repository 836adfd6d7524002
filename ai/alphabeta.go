package ai

import "github.com/Yossefnasser/pente-game/game"

// alphaBetaRoot orders root candidates by one-ply evaluation before the
// deep search so that strong moves tighten the window early.
func (e *Engine) alphaBetaRoot(g *game.Game, candidates []game.Move) game.Move {
	player := e.cfg.Player
	moves := e.orderByEval(g, sortedCandidates(g, e.cfg.CandidateRadius), player, e.cfg.RootWidth)
	if len(moves) == 0 {
		moves = candidates
	}

	best := moves[0]
	alpha := -2.0 * winScore
	beta := 2.0 * winScore
	for _, move := range moves {
		if !g.Apply(move, player) {
			continue
		}
		value := e.alphaBeta(g, e.cfg.Depth-1, alpha, beta, game.Opponent(player))
		g.Undo(move)
		if value > alpha {
			alpha = value
			best = move
		}
	}
	return best
}

// alphaBeta is fail-hard: values never escape the [alpha, beta] window, and
// every cutoff bumps the pruned counter once for the branches it skips.
func (e *Engine) alphaBeta(g *game.Game, depth int, alpha, beta float64, mover game.PlayerColor) float64 {
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

	if mover == player {
		best := -2.0 * winScore
		for _, move := range moves {
			if !g.Apply(move, mover) {
				continue
			}
			value := e.alphaBeta(g, depth-1, alpha, beta, game.Opponent(mover))
			g.Undo(move)
			if value > best {
				best = value
			}
			if best > alpha {
				alpha = best
			}
			if beta <= alpha {
				e.stats.Pruned++
				break
			}
		}
		return best
	}

	best := 2.0 * winScore
	for _, move := range moves {
		if !g.Apply(move, mover) {
			continue
		}
		value := e.alphaBeta(g, depth-1, alpha, beta, game.Opponent(mover))
		g.Undo(move)
		if value < best {
			best = value
		}
		if best < beta {
			beta = best
		}
		if beta <= alpha {
			e.stats.Pruned++
			break
		}
	}
	return best
}
