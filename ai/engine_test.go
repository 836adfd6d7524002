package ai

import (
	"testing"

	"github.com/Yossefnasser/pente-game/game"
)

func mustApply(t *testing.T, g *game.Game, x, y int, player game.PlayerColor) {
	t.Helper()
	if !g.Apply(game.NewMove(x, y), player) {
		t.Fatalf("apply (%d,%d) for %s failed", x, y, player)
	}
}

// fourInARow sets up white stones (3,9)..(6,9) with black replies far from
// the white line. White to move wins at (2,9) or (7,9).
func fourInARow(t *testing.T) *game.Game {
	t.Helper()
	g := game.NewGame(game.DefaultBoardSize)
	blackReplies := [][2]int{{14, 14}, {14, 15}, {15, 14}, {15, 15}}
	for i := 0; i < 4; i++ {
		mustApply(t, g, 3+i, 9, game.PlayerWhite)
		mustApply(t, g, blackReplies[i][0], blackReplies[i][1], game.PlayerBlack)
	}
	return g
}

func isWinningCompletion(m game.Move) bool {
	return m.Y == 9 && (m.X == 2 || m.X == 7)
}

func TestForcedWinShortCircuits(t *testing.T) {
	for _, algo := range []Algorithm{Minimax, AlphaBeta} {
		for _, heur := range []Heuristic{H1, H2} {
			g := fourInARow(t)
			engine := NewEngine(Config{
				Algorithm: algo,
				Heuristic: heur,
				Depth:     3,
				Player:    game.PlayerWhite,
			})
			move, ok := engine.BestMove(g)
			if !ok {
				t.Fatalf("%s/%s: no move returned", algo, heur)
			}
			if !isWinningCompletion(move) {
				t.Fatalf("%s/%s: move = %v, want a five completion", algo, heur, move)
			}
			stats := engine.Stats()
			if !stats.Forced {
				t.Fatalf("%s/%s: forced flag not set", algo, heur)
			}
			if stats.Nodes != 0 {
				t.Fatalf("%s/%s: searched %d nodes on a forced move", algo, heur, stats.Nodes)
			}
		}
	}
}

func TestForcedBlock(t *testing.T) {
	g := fourInARow(t)
	engine := NewEngine(Config{
		Algorithm: AlphaBeta,
		Heuristic: H2,
		Depth:     2,
		Player:    game.PlayerBlack,
	})
	move, ok := engine.BestMove(g)
	if !ok {
		t.Fatalf("no move returned")
	}
	if !isWinningCompletion(move) {
		t.Fatalf("move = %v, want a block on the open four", move)
	}
	if !engine.Stats().Forced {
		t.Fatalf("forced flag not set on a block")
	}
}

func TestBestMoveRestoresGame(t *testing.T) {
	g := game.NewGame(game.DefaultBoardSize)
	mustApply(t, g, 9, 9, game.PlayerWhite)
	mustApply(t, g, 10, 9, game.PlayerBlack)
	snapshot := g.Clone()

	engine := NewEngine(Config{Algorithm: AlphaBeta, Heuristic: H1, Depth: 2, Player: game.PlayerWhite})
	if _, ok := engine.BestMove(g); !ok {
		t.Fatalf("no move returned")
	}

	if g.MoveCount() != snapshot.MoveCount() {
		t.Fatalf("move count = %d, want %d", g.MoveCount(), snapshot.MoveCount())
	}
	for y := 0; y < g.Size(); y++ {
		for x := 0; x < g.Size(); x++ {
			if g.At(x, y) != snapshot.At(x, y) {
				t.Fatalf("cell (%d,%d) changed during search", x, y)
			}
		}
	}
	gotLast, gotOK := g.LastMove()
	wantLast, wantOK := snapshot.LastMove()
	if gotOK != wantOK || gotLast != wantLast {
		t.Fatalf("last move after search = %v/%v, want %v/%v", gotLast, gotOK, wantLast, wantOK)
	}
}

func TestEmptyBoardPlaysCenter(t *testing.T) {
	g := game.NewGame(game.DefaultBoardSize)
	engine := NewEngine(Config{Algorithm: Minimax, Heuristic: H1, Depth: 2, Player: game.PlayerWhite})
	move, ok := engine.BestMove(g)
	if !ok {
		t.Fatalf("no move returned on an empty board")
	}
	if move.X != 9 || move.Y != 9 {
		t.Fatalf("move = %v, want center", move)
	}
}

func TestFullBoardReturnsNoMove(t *testing.T) {
	g := game.NewGame(4)
	// 2x2 color blocks tile the board without captures or runs of five.
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			if (x/2+y/2)%2 == 0 {
				mustApply(t, g, x, y, game.PlayerWhite)
			}
		}
	}
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			if (x/2+y/2)%2 == 1 {
				mustApply(t, g, x, y, game.PlayerBlack)
			}
		}
	}
	if !g.IsFull() {
		t.Fatalf("board not full after tiling")
	}

	engine := NewEngine(Config{Algorithm: AlphaBeta, Heuristic: H2, Depth: 2, Player: game.PlayerWhite})
	if move, ok := engine.BestMove(g); ok {
		t.Fatalf("move = %v on a full board, want none", move)
	}
}

func TestAlphaBetaSearchesNoMoreThanMinimax(t *testing.T) {
	base := Config{
		Heuristic:       H1,
		Depth:           3,
		Player:          game.PlayerWhite,
		CandidateRadius: 1,
		RootWidth:       6,
		NodeWidth:       4,
	}

	mm := base
	mm.Algorithm = Minimax
	ab := base
	ab.Algorithm = AlphaBeta

	gMM := midgamePosition(t)
	minimaxEngine := NewEngine(mm)
	if _, ok := minimaxEngine.BestMove(gMM); !ok {
		t.Fatalf("minimax returned no move")
	}

	gAB := midgamePosition(t)
	alphaBetaEngine := NewEngine(ab)
	if _, ok := alphaBetaEngine.BestMove(gAB); !ok {
		t.Fatalf("alphabeta returned no move")
	}

	mmNodes := minimaxEngine.Stats().Nodes
	abNodes := alphaBetaEngine.Stats().Nodes
	if abNodes > mmNodes {
		t.Fatalf("alphabeta visited %d nodes, minimax %d", abNodes, mmNodes)
	}
	if alphaBetaEngine.Stats().Pruned == 0 {
		t.Logf("no cutoffs on this position (nodes %d vs %d)", abNodes, mmNodes)
	}
}

func midgamePosition(t *testing.T) *game.Game {
	t.Helper()
	g := game.NewGame(game.DefaultBoardSize)
	mustApply(t, g, 9, 9, game.PlayerWhite)
	mustApply(t, g, 10, 9, game.PlayerBlack)
	mustApply(t, g, 9, 10, game.PlayerWhite)
	mustApply(t, g, 10, 10, game.PlayerBlack)
	mustApply(t, g, 8, 8, game.PlayerWhite)
	mustApply(t, g, 11, 11, game.PlayerBlack)
	return g
}

func TestStatsReportElapsed(t *testing.T) {
	g := midgamePosition(t)
	engine := NewEngine(Config{Algorithm: AlphaBeta, Heuristic: H2, Depth: 2, Player: game.PlayerWhite})
	if _, ok := engine.BestMove(g); !ok {
		t.Fatalf("no move returned")
	}
	stats := engine.Stats()
	if stats.Elapsed <= 0 {
		t.Fatalf("elapsed = %v, want > 0", stats.Elapsed)
	}
	if stats.Nodes == 0 {
		t.Fatalf("nodes = 0 after a deep search")
	}
}
