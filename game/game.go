package game

const (
	DefaultBoardSize = 19
	WinLength        = 5
	CaptureWinPairs  = 5
)

// Game owns the grid, the move counter, the per-color capture tallies and
// the capture-history stack. Apply and Undo are exact inverses as long as
// undos come in LIFO order; calling Undo out of order corrupts the capture
// ledger and is a caller contract violation, not a checked error.
type Game struct {
	board       Board
	moveCount   int
	captures    [2]int
	captureLog  []CaptureRecord
	lastMove    Move
	hasLastMove bool
	winner      PlayerColor
	hasWinner   bool
	winningLine []Move
}

func NewGame(boardSize int) *Game {
	if boardSize <= 0 {
		boardSize = DefaultBoardSize
	}
	g := &Game{board: NewBoard(boardSize)}
	g.lastMove = Move{X: -1, Y: -1}
	return g
}

func (g *Game) IsLegal(move Move) bool {
	return move.IsValid(g.board.size) && g.board.At(move.X, move.Y) == CellEmpty
}

// Apply plays a stone, runs capture detection and win detection keyed off
// the just-played cell, and pushes exactly one capture record. An illegal
// target is rejected with no side effects.
func (g *Game) Apply(move Move, player PlayerColor) bool {
	if !g.IsLegal(move) {
		return false
	}
	prevMove, hadPrevMove := g.lastMove, g.hasLastMove
	g.board.Set(move.X, move.Y, CellFromPlayer(player))
	g.lastMove = move
	g.hasLastMove = true
	g.moveCount++
	record := g.captureAround(move, player)
	record.prevMove = prevMove
	record.hadPrevMove = hadPrevMove
	g.captureLog = append(g.captureLog, record)
	g.updateWinner(player)
	return true
}

// Undo reverts the most recent Apply: the cell is cleared, the win state is
// dropped unconditionally, and the top capture record is popped to restore
// the captured stones and the previous last move. The move must be the one
// Apply last played.
func (g *Game) Undo(move Move) {
	g.board.Remove(move.X, move.Y)
	g.moveCount--
	g.hasWinner = false
	g.winner = PlayerWhite
	g.winningLine = nil
	if n := len(g.captureLog); n > 0 {
		record := g.captureLog[n-1]
		g.captureLog = g.captureLog[:n-1]
		g.lastMove = record.prevMove
		g.hasLastMove = record.hadPrevMove
		if !record.Empty() {
			opp := CellFromPlayer(Opponent(record.By))
			for _, stone := range record.Stones {
				g.board.Set(stone.X, stone.Y, opp)
			}
			g.captures[record.By] -= record.Pairs
		}
	}
}

// Candidates returns every empty cell within the given Chebyshev radius of
// any occupied cell, or just the center cell on an empty board. The order
// is the board scan order; callers that need a specific order sort
// themselves.
func (g *Game) Candidates(radius int) []Move {
	size := g.board.size
	if g.moveCount == 0 {
		center := size / 2
		return []Move{{X: center, Y: center}}
	}
	seen := make([]bool, size*size)
	moves := make([]Move, 0, 64)
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			if g.board.At(x, y) == CellEmpty {
				continue
			}
			for dy := -radius; dy <= radius; dy++ {
				for dx := -radius; dx <= radius; dx++ {
					nx := x + dx
					ny := y + dy
					if !g.board.IsEmpty(nx, ny) {
						continue
					}
					idx := ny*size + nx
					if !seen[idx] {
						seen[idx] = true
						moves = append(moves, Move{X: nx, Y: ny})
					}
				}
			}
		}
	}
	return moves
}

var runDirections = [4][2]int{{1, 0}, {0, 1}, {1, 1}, {1, -1}}

// updateWinner checks the capture-count win first, then rescans the whole
// board for a run of WinLength stones of the mover's color. The first run
// found wins; there is no canonical-run requirement.
func (g *Game) updateWinner(player PlayerColor) {
	if g.captures[player] >= CaptureWinPairs {
		g.winner = player
		g.hasWinner = true
		g.winningLine = nil
		return
	}
	cell := CellFromPlayer(player)
	size := g.board.size
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			if g.board.At(x, y) != cell {
				continue
			}
			for i := 0; i < 4; i++ {
				dx := runDirections[i][0]
				dy := runDirections[i][1]
				line := make([]Move, 1, WinLength)
				line[0] = Move{X: x, Y: y}
				for step := 1; step < WinLength; step++ {
					nx := x + dx*step
					ny := y + dy*step
					if !g.board.InBounds(nx, ny) || g.board.At(nx, ny) != cell {
						break
					}
					line = append(line, Move{X: nx, Y: ny})
				}
				if len(line) >= WinLength {
					g.winner = player
					g.hasWinner = true
					g.winningLine = line
					return
				}
			}
		}
	}
}

func (g *Game) Clone() *Game {
	clone := &Game{
		board:       g.board.Clone(),
		moveCount:   g.moveCount,
		captures:    g.captures,
		lastMove:    g.lastMove,
		hasLastMove: g.hasLastMove,
		winner:      g.winner,
		hasWinner:   g.hasWinner,
		winningLine: append([]Move(nil), g.winningLine...),
	}
	clone.captureLog = make([]CaptureRecord, len(g.captureLog))
	for i, record := range g.captureLog {
		clone.captureLog[i] = record
		clone.captureLog[i].Stones = append([]Move(nil), record.Stones...)
	}
	return clone
}

func (g *Game) At(x, y int) Cell {
	return g.board.At(x, y)
}

func (g *Game) Size() int {
	return g.board.size
}

func (g *Game) InBounds(x, y int) bool {
	return g.board.InBounds(x, y)
}

func (g *Game) MoveCount() int {
	return g.moveCount
}

// Captures reports the number of captured pairs credited to a color.
func (g *Game) Captures(player PlayerColor) int {
	return g.captures[player]
}

func (g *Game) Winner() (PlayerColor, bool) {
	return g.winner, g.hasWinner
}

func (g *Game) WinningLine() []Move {
	return append([]Move(nil), g.winningLine...)
}

func (g *Game) LastMove() (Move, bool) {
	return g.lastMove, g.hasLastMove
}

// LastCapture returns the capture record of the most recent move. The
// record is empty when that move captured nothing.
func (g *Game) LastCapture() (CaptureRecord, bool) {
	if len(g.captureLog) == 0 {
		return CaptureRecord{}, false
	}
	record := g.captureLog[len(g.captureLog)-1]
	record.Stones = append([]Move(nil), record.Stones...)
	return record, true
}

// ToMove derives the side to move from the move counter: White plays first.
func (g *Game) ToMove() PlayerColor {
	if g.moveCount%2 == 0 {
		return PlayerWhite
	}
	return PlayerBlack
}

func (g *Game) IsFull() bool {
	return g.board.CountEmpty() == 0
}
