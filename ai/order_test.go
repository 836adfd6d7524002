package ai

import (
	"testing"

	"github.com/Yossefnasser/pente-game/game"
)

func TestSortedCandidatesDeterministic(t *testing.T) {
	g := midgamePosition(t)
	first := sortedCandidates(g, 2)
	second := sortedCandidates(g, 2)
	if len(first) == 0 {
		t.Fatalf("no candidates on a midgame position")
	}
	if len(first) != len(second) {
		t.Fatalf("candidate counts differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("order differs at %d: %v vs %v", i, first[i], second[i])
		}
	}
}

func TestSortedCandidatesNearLastMoveFirst(t *testing.T) {
	g := game.NewGame(game.DefaultBoardSize)
	mustApply(t, g, 5, 5, game.PlayerWhite)
	mustApply(t, g, 12, 12, game.PlayerBlack)

	moves := sortedCandidates(g, 1)
	last := game.Move{X: 12, Y: 12}
	previous := -1
	for _, m := range moves {
		d := chebyshev(m, last)
		if d < previous {
			t.Fatalf("move %v at distance %d after distance %d", m, d, previous)
		}
		previous = d
	}
	if chebyshev(moves[0], last) != 1 {
		t.Fatalf("first candidate %v is not adjacent to the last move", moves[0])
	}
}

func TestOrderByEvalTruncates(t *testing.T) {
	g := midgamePosition(t)
	engine := NewEngine(Config{Algorithm: AlphaBeta, Heuristic: H1, Depth: 2, Player: game.PlayerWhite})
	moves := sortedCandidates(g, 2)
	if len(moves) <= 4 {
		t.Fatalf("need more than 4 candidates, got %d", len(moves))
	}
	ordered := engine.orderByEval(g, moves, game.PlayerWhite, 4)
	if len(ordered) != 4 {
		t.Fatalf("ordered length = %d, want 4", len(ordered))
	}
	if g.MoveCount() != 6 {
		t.Fatalf("ordering mutated the game: move count %d", g.MoveCount())
	}
}

func TestOrderByEvalPrefersWinningMove(t *testing.T) {
	g := fourInARow(t)
	engine := NewEngine(Config{Algorithm: AlphaBeta, Heuristic: H2, Depth: 2, Player: game.PlayerWhite})
	moves := sortedCandidates(g, 2)
	ordered := engine.orderByEval(g, moves, game.PlayerWhite, 0)
	if len(ordered) == 0 {
		t.Fatalf("no ordered moves")
	}
	if !isWinningCompletion(ordered[0]) {
		t.Fatalf("best ordered move = %v, want a five completion", ordered[0])
	}
}
