package ai

import (
	"time"

	"github.com/Yossefnasser/pente-game/game"
)

type evalFunc func(*game.Game, game.PlayerColor) float64

// SearchStats describes the last BestMove call.
type SearchStats struct {
	Nodes      int64         `json:"nodes"`
	Pruned     int64         `json:"pruned"`
	Elapsed    time.Duration `json:"elapsed"`
	OverBudget bool          `json:"over_budget"`
	Forced     bool          `json:"forced"`
}

// Engine runs adversarial search for one seat. The algorithm and heuristic
// are resolved once at construction; BestMove mutates the game it is handed
// and restores it before returning, so callers keep exclusive ownership of
// the game for the duration of a call.
type Engine struct {
	cfg      Config
	evaluate evalFunc
	stats    SearchStats
}

func NewEngine(cfg Config) *Engine {
	cfg = cfg.withDefaults()
	eval := evaluateAggressive
	if cfg.Heuristic == H2 {
		eval = evaluateStrategic
	}
	return &Engine{cfg: cfg, evaluate: eval}
}

func (e *Engine) Config() Config {
	return e.cfg
}

// Stats returns the counters from the most recent BestMove call.
func (e *Engine) Stats() SearchStats {
	return e.stats
}

// BestMove picks a move for the configured player. It first runs a one-ply
// forced-move scan: an immediate win is taken on the spot, and an immediate
// opponent win is blocked, both without descending into the tree. The
// second return is false only when the board has no playable cell.
func (e *Engine) BestMove(g *game.Game) (game.Move, bool) {
	e.stats = SearchStats{}
	start := time.Now()
	defer func() {
		e.stats.Elapsed = time.Since(start)
		if e.cfg.TimeBudget > 0 && e.stats.Elapsed > e.cfg.TimeBudget {
			e.stats.OverBudget = true
		}
	}()

	if g.IsFull() {
		return game.Move{}, false
	}

	player := e.cfg.Player
	opponent := game.Opponent(player)
	candidates := g.Candidates(e.cfg.CandidateRadius)
	if len(candidates) == 0 {
		return game.Move{}, false
	}

	for _, move := range candidates {
		if e.winsImmediately(g, move, player) {
			e.stats.Forced = true
			return move, true
		}
	}
	for _, move := range candidates {
		if e.winsImmediately(g, move, opponent) {
			e.stats.Forced = true
			return move, true
		}
	}

	if e.cfg.Algorithm == AlphaBeta {
		return e.alphaBetaRoot(g, candidates), true
	}
	return e.minimaxRoot(g, candidates), true
}

// winsImmediately applies the move for mover, checks the winner, and undoes
// the move before answering.
func (e *Engine) winsImmediately(g *game.Game, move game.Move, mover game.PlayerColor) bool {
	if !g.Apply(move, mover) {
		return false
	}
	winner, decided := g.Winner()
	g.Undo(move)
	return decided && winner == mover
}
