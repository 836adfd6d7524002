package ai

import (
	"testing"

	"github.com/Yossefnasser/pente-game/game"
)

func TestRunScoreTable(t *testing.T) {
	cases := []struct {
		length, openEnds, want int
	}{
		{5, 0, scoreFive},
		{6, 2, scoreFive},
		{4, 2, scoreOpenFour},
		{4, 1, scoreFour},
		{4, 0, 0},
		{3, 2, scoreOpenThree},
		{3, 1, scoreThree},
		{3, 0, 0},
		{2, 2, scoreOpenTwo},
		{2, 1, scoreClosedTwo},
		{2, 0, 0},
	}
	for _, tc := range cases {
		if got := runScore(tc.length, tc.openEnds); got != tc.want {
			t.Fatalf("runScore(%d, %d) = %d, want %d", tc.length, tc.openEnds, got, tc.want)
		}
	}
}

func TestScanRunsCountsEachRunOnce(t *testing.T) {
	g := game.NewGame(game.DefaultBoardSize)
	mustApply(t, g, 5, 9, game.PlayerWhite)
	mustApply(t, g, 15, 15, game.PlayerBlack)
	mustApply(t, g, 6, 9, game.PlayerWhite)
	mustApply(t, g, 16, 16, game.PlayerBlack)
	mustApply(t, g, 7, 9, game.PlayerWhite)

	// One open three for white. Black holds an open two.
	got := scanRuns(g, game.PlayerWhite, 1.0, 1.0)
	want := float64(scoreOpenThree - scoreOpenTwo)
	if got != want {
		t.Fatalf("scanRuns = %v, want %v", got, want)
	}
}

func TestAggressiveFavorsCaptures(t *testing.T) {
	captureBoard := game.NewGame(game.DefaultBoardSize)
	mustApply(t, captureBoard, 5, 9, game.PlayerWhite)
	mustApply(t, captureBoard, 6, 9, game.PlayerBlack)
	mustApply(t, captureBoard, 9, 5, game.PlayerWhite)
	mustApply(t, captureBoard, 7, 9, game.PlayerBlack)
	mustApply(t, captureBoard, 8, 9, game.PlayerWhite)
	if captureBoard.Captures(game.PlayerWhite) != 1 {
		t.Fatalf("capture setup did not fire")
	}

	openTwoBoard := game.NewGame(game.DefaultBoardSize)
	mustApply(t, openTwoBoard, 5, 9, game.PlayerWhite)
	mustApply(t, openTwoBoard, 15, 15, game.PlayerBlack)
	mustApply(t, openTwoBoard, 6, 9, game.PlayerWhite)
	mustApply(t, openTwoBoard, 16, 16, game.PlayerBlack)
	mustApply(t, openTwoBoard, 9, 5, game.PlayerWhite)

	capScore := evaluateAggressive(captureBoard, game.PlayerWhite)
	runScoreVal := evaluateAggressive(openTwoBoard, game.PlayerWhite)
	if capScore <= runScoreVal {
		t.Fatalf("capture position scored %v, open two scored %v", capScore, runScoreVal)
	}
}

func TestStrategicShortCircuitsDecidedGames(t *testing.T) {
	g := game.NewGame(game.DefaultBoardSize)
	for i := 0; i < 4; i++ {
		mustApply(t, g, 3+i, 9, game.PlayerWhite)
		mustApply(t, g, 3+i, 14, game.PlayerBlack)
	}
	mustApply(t, g, 7, 9, game.PlayerWhite)
	if _, ok := g.Winner(); !ok {
		t.Fatalf("expected a decided game")
	}

	if got := evaluateStrategic(g, game.PlayerWhite); got != scoreFive {
		t.Fatalf("winner side scored %v, want %v", got, float64(scoreFive))
	}
	if got := evaluateStrategic(g, game.PlayerBlack); got != -scoreFive {
		t.Fatalf("loser side scored %v, want %v", got, float64(-scoreFive))
	}
}

func TestCenterControlCountsOwnStonesOnly(t *testing.T) {
	g := game.NewGame(game.DefaultBoardSize)
	mustApply(t, g, 9, 9, game.PlayerWhite)
	if got := centerControl(g, game.PlayerWhite); got != 20 {
		t.Fatalf("center stone bonus = %v, want 20", got)
	}
	if got := centerControl(g, game.PlayerBlack); got != 0 {
		t.Fatalf("opponent view = %v, want 0", got)
	}

	mustApply(t, g, 0, 0, game.PlayerBlack)
	if got := centerControl(g, game.PlayerWhite); got != 20 {
		t.Fatalf("opponent stone changed the bonus: %v, want 20", got)
	}
	// A corner stone sits 18 manhattan steps from center.
	if got := centerControl(g, game.PlayerBlack); got != 2 {
		t.Fatalf("corner stone bonus = %v, want 2", got)
	}
}

func TestStrategicPunishesOpponentRunsHarder(t *testing.T) {
	// Mirror-symmetric runs: white and black each hold an identical open
	// three. The strategic evaluator weighs the opponent's run at 1.5x,
	// so both sides see a negative position.
	g := game.NewGame(game.DefaultBoardSize)
	mustApply(t, g, 2, 2, game.PlayerWhite)
	mustApply(t, g, 2, 16, game.PlayerBlack)
	mustApply(t, g, 3, 2, game.PlayerWhite)
	mustApply(t, g, 3, 16, game.PlayerBlack)
	mustApply(t, g, 4, 2, game.PlayerWhite)
	mustApply(t, g, 4, 16, game.PlayerBlack)

	whiteRuns := scanRuns(g, game.PlayerWhite, 1.0, 1.5)
	blackRuns := scanRuns(g, game.PlayerBlack, 1.0, 1.5)
	if whiteRuns >= 0 || blackRuns >= 0 {
		t.Fatalf("symmetric threats scored %v/%v, want both negative", whiteRuns, blackRuns)
	}
}
