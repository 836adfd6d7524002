package ai

import "github.com/Yossefnasser/pente-game/game"

// Score table for contiguous runs found by scanRuns. winScore sits far
// above anything a heuristic can produce so that a forced out-of-search
// outcome always dominates positional judgment.
const (
	winScore = 1_000_000_000

	scoreFive       = 1_000_000
	scoreCaptureWin = 500_000
	scoreOpenFour   = 100_000
	scoreFour       = 50_000
	scoreOpenThree  = 10_000
	scoreThree      = 1_000
	scoreOpenTwo    = 500
	scoreClosedTwo  = 10

	captureWeightAggressive = 10_000
	captureWeightStrategic  = 5_000
)

var runDirections = [4][2]int{{1, 0}, {0, 1}, {1, 1}, {1, -1}}

func runScore(length int, openEnds int) int {
	if length >= game.WinLength {
		return scoreFive
	}
	switch length {
	case 4:
		if openEnds == 2 {
			return scoreOpenFour
		}
		if openEnds == 1 {
			return scoreFour
		}
	case 3:
		if openEnds == 2 {
			return scoreOpenThree
		}
		if openEnds == 1 {
			return scoreThree
		}
	case 2:
		if openEnds == 2 {
			return scoreOpenTwo
		}
		if openEnds == 1 {
			return scoreClosedTwo
		}
	}
	return 0
}

// scanRuns walks every contiguous run of stones on the board once per
// direction, scoring it for whichever side owns it. A run is only counted
// from its starting stone: if the predecessor cell holds the same color the
// run was already seen. ownWeight and oppWeight bias the totals toward
// offense or defense.
func scanRuns(g *game.Game, player game.PlayerColor, ownWeight, oppWeight float64) float64 {
	size := g.Size()
	own := game.CellFromPlayer(player)
	total := 0.0
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			cell := g.At(x, y)
			if cell == game.CellEmpty {
				continue
			}
			for _, dir := range runDirections {
				px, py := x-dir[0], y-dir[1]
				if g.InBounds(px, py) && g.At(px, py) == cell {
					continue
				}
				length := 1
				nx, ny := x+dir[0], y+dir[1]
				for g.InBounds(nx, ny) && g.At(nx, ny) == cell {
					length++
					nx += dir[0]
					ny += dir[1]
				}
				if length < 2 {
					continue
				}
				openEnds := 0
				if g.InBounds(px, py) && g.At(px, py) == game.CellEmpty {
					openEnds++
				}
				if g.InBounds(nx, ny) && g.At(nx, ny) == game.CellEmpty {
					openEnds++
				}
				score := float64(runScore(length, openEnds))
				if cell == own {
					total += ownWeight * score
				} else {
					total -= oppWeight * score
				}
			}
		}
	}
	return total
}

// evaluateAggressive favors capture races: the capture differential is
// weighted an order of magnitude over run structure, and opponent runs are
// discounted rather than feared.
func evaluateAggressive(g *game.Game, player game.PlayerColor) float64 {
	opponent := game.Opponent(player)
	score := float64(captureWeightAggressive * (g.Captures(player) - g.Captures(opponent)))
	score += scanRuns(g, player, 1.0, 0.75)
	return score
}

// evaluateStrategic reads the whole position: decided games dominate,
// captures matter half as much as for the aggressive evaluator, central
// stones earn a small bonus, and opponent runs are weighted heavier than
// the player's own.
func evaluateStrategic(g *game.Game, player game.PlayerColor) float64 {
	if winner, ok := g.Winner(); ok {
		if winner == player {
			return scoreFive
		}
		return -scoreFive
	}
	opponent := game.Opponent(player)
	score := float64(captureWeightStrategic * (g.Captures(player) - g.Captures(opponent)))
	score += centerControl(g, player)
	score += scanRuns(g, player, 1.0, 1.5)
	return score
}

// centerControl awards each of the player's own stones 20 minus its
// manhattan distance to the board center. Opponent stones are ignored;
// their placement is judged by the run scan alone.
func centerControl(g *game.Game, player game.PlayerColor) float64 {
	size := g.Size()
	center := size / 2
	own := game.CellFromPlayer(player)
	total := 0.0
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			if g.At(x, y) != own {
				continue
			}
			dx, dy := x-center, y-center
			if dx < 0 {
				dx = -dx
			}
			if dy < 0 {
				dy = -dy
			}
			total += float64(20 - dx - dy)
		}
	}
	return total
}
