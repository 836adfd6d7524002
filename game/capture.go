package game

// CaptureRecord is one entry of the capture-history stack: everything a
// single Apply removed from the board, consolidated across directions.
// A record with Pairs == 0 means the move captured nothing. Popping the
// record and putting Stones back is the only way Undo can restore capture
// side effects; the grid alone does not remember them.
type CaptureRecord struct {
	By     PlayerColor
	Pairs  int
	Stones []Move

	// Last-move state from before the apply, carried so Undo can put the
	// whole game back, not just the grid.
	prevMove    Move
	hadPrevMove bool
}

func (r CaptureRecord) Empty() bool {
	return r.Pairs == 0
}

// 4 axes, both signs. Each direction is checked independently so a single
// move can close several flanked pairs at once.
var captureDirections = [8][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}, {1, 1}, {-1, -1}, {1, -1}, {-1, 1}}

// captureAround fires the custodial-capture rule around the just-played
// stone: offsets +1 and +2 hold the opponent, offset +3 holds the mover's
// own color. Flanked pairs are cleared immediately and accumulated into a
// single consolidated record.
func (g *Game) captureAround(move Move, player PlayerColor) CaptureRecord {
	record := CaptureRecord{By: player}
	own := CellFromPlayer(player)
	opp := CellFromPlayer(Opponent(player))
	for i := 0; i < 8; i++ {
		dx := captureDirections[i][0]
		dy := captureDirections[i][1]
		x1 := move.X + dx
		y1 := move.Y + dy
		x2 := move.X + 2*dx
		y2 := move.Y + 2*dy
		x3 := move.X + 3*dx
		y3 := move.Y + 3*dy
		if !g.board.InBounds(x3, y3) || !g.board.InBounds(x2, y2) || !g.board.InBounds(x1, y1) {
			continue
		}
		if g.board.At(x1, y1) == opp && g.board.At(x2, y2) == opp && g.board.At(x3, y3) == own {
			g.board.Remove(x1, y1)
			g.board.Remove(x2, y2)
			record.Stones = append(record.Stones, Move{X: x1, Y: y1}, Move{X: x2, Y: y2})
			record.Pairs++
		}
	}
	if record.Pairs > 0 {
		g.captures[player] += record.Pairs
	}
	return record
}
