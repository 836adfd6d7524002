package ai

import (
	"fmt"
	"time"

	"github.com/Yossefnasser/pente-game/game"
)

type Algorithm int

const (
	Minimax Algorithm = iota
	AlphaBeta
)

type Heuristic int

const (
	// H1 is the aggressive evaluator: heavy capture differential plus a
	// run scan biased toward the mover's own sequences.
	H1 Heuristic = iota
	// H2 is the strategic evaluator: decided-game short circuit, lighter
	// capture differential, centrality bonus, and a run scan that
	// penalizes opponent sequences harder than it rewards its own.
	H2
)

// Config selects the search behavior once, at engine construction. The
// width and radius knobs default per algorithm when left at zero; root and
// node widths are independently tunable. TimeBudget is advisory only: it is
// reported in the stats but never cuts a search short.
type Config struct {
	Algorithm       Algorithm
	Heuristic       Heuristic
	Depth           int
	Player          game.PlayerColor
	CandidateRadius int
	RootWidth       int
	NodeWidth       int
	TimeBudget      time.Duration
}

const (
	defaultDepth = 2

	minimaxRadius    = 1
	minimaxRootWidth = 8
	minimaxNodeWidth = 5

	alphaBetaRadius    = 2
	alphaBetaRootWidth = 15
	alphaBetaNodeWidth = 10
)

func (c Config) withDefaults() Config {
	if c.Depth <= 0 {
		c.Depth = defaultDepth
	}
	if c.CandidateRadius <= 0 {
		if c.Algorithm == AlphaBeta {
			c.CandidateRadius = alphaBetaRadius
		} else {
			c.CandidateRadius = minimaxRadius
		}
	}
	if c.RootWidth <= 0 {
		if c.Algorithm == AlphaBeta {
			c.RootWidth = alphaBetaRootWidth
		} else {
			c.RootWidth = minimaxRootWidth
		}
	}
	if c.NodeWidth <= 0 {
		if c.Algorithm == AlphaBeta {
			c.NodeWidth = alphaBetaNodeWidth
		} else {
			c.NodeWidth = minimaxNodeWidth
		}
	}
	return c
}

func (a Algorithm) String() string {
	if a == AlphaBeta {
		return "alphabeta"
	}
	return "minimax"
}

func (h Heuristic) String() string {
	if h == H2 {
		return "h2"
	}
	return "h1"
}

func ParseAlgorithm(s string) (Algorithm, error) {
	switch s {
	case "minimax":
		return Minimax, nil
	case "alphabeta":
		return AlphaBeta, nil
	default:
		return Minimax, fmt.Errorf("unknown algorithm %q", s)
	}
}

func ParseHeuristic(s string) (Heuristic, error) {
	switch s {
	case "h1":
		return H1, nil
	case "h2":
		return H2, nil
	default:
		return H1, fmt.Errorf("unknown heuristic %q", s)
	}
}
