package main

import (
	"log"
	"sync"
	"time"

	"github.com/Yossefnasser/pente-game/ai"
	"github.com/Yossefnasser/pente-game/game"
)

type SeatType int

const (
	SeatHuman SeatType = iota
	SeatAI
)

type GameSettings struct {
	WhiteSeat SeatType
	BlackSeat SeatType
	WhiteAI   *SeatAIConfig
	BlackAI   *SeatAIConfig
}

// SeatAIConfig overrides the global AI config for one seat. Nil fields
// fall back to the server config.
type SeatAIConfig struct {
	Algorithm string `json:"algorithm"`
	Heuristic string `json:"heuristic"`
	Depth     int    `json:"depth"`
}

func DefaultGameSettings() GameSettings {
	return GameSettings{WhiteSeat: SeatHuman, BlackSeat: SeatAI}
}

type HistoryEntry struct {
	Move      game.Move
	Player    game.PlayerColor
	ElapsedMs float64
	IsAi      bool
	Captured  []game.Move
	Nodes     int64
	Pruned    int64
}

// GameController owns the authoritative game. All mutation goes through the
// mutex; AI seats search on a clone in the background and submit the result
// back through submitAIMove, which re-validates against the live game.
type GameController struct {
	mu          sync.Mutex
	game        *game.Game
	settings    GameSettings
	engines     map[game.PlayerColor]*ai.Engine
	seatStats   map[game.PlayerColor]ai.SearchStats
	history     []HistoryEntry
	started     bool
	aiThinking  bool
	epoch       int
	turnStarted time.Time
	onChange    func()
}

func NewGameController(settings GameSettings) *GameController {
	config := GetConfig()
	return &GameController{
		game:      game.NewGame(config.BoardSize),
		settings:  settings,
		engines:   make(map[game.PlayerColor]*ai.Engine),
		seatStats: make(map[game.PlayerColor]ai.SearchStats),
	}
}

func (c *GameController) SetOnChange(fn func()) {
	c.mu.Lock()
	c.onChange = fn
	c.mu.Unlock()
}

// StartGame resets the board, rebuilds the AI seats from the current config
// and kicks off the first AI turn when one is seated to move.
func (c *GameController) StartGame(settings GameSettings) {
	c.mu.Lock()
	config := GetConfig()
	c.game = game.NewGame(config.BoardSize)
	c.settings = settings
	c.history = nil
	c.started = true
	c.aiThinking = false
	c.epoch++
	c.turnStarted = time.Now()
	c.engines = make(map[game.PlayerColor]*ai.Engine)
	c.seatStats = make(map[game.PlayerColor]ai.SearchStats)
	for _, color := range []game.PlayerColor{game.PlayerWhite, game.PlayerBlack} {
		if c.seatFor(color) == SeatAI {
			searchConfig := config.searchConfig()
			searchConfig.Player = color
			applySeatOverride(&searchConfig, c.seatOverride(color))
			c.engines[color] = ai.NewEngine(searchConfig)
		}
	}
	c.mu.Unlock()
	c.scheduleAI()
}

func (c *GameController) Stop() {
	c.mu.Lock()
	c.started = false
	c.epoch++
	c.aiThinking = false
	c.mu.Unlock()
}

func (c *GameController) seatFor(color game.PlayerColor) SeatType {
	if color == game.PlayerWhite {
		return c.settings.WhiteSeat
	}
	return c.settings.BlackSeat
}

func (c *GameController) seatOverride(color game.PlayerColor) *SeatAIConfig {
	if color == game.PlayerWhite {
		return c.settings.WhiteAI
	}
	return c.settings.BlackAI
}

func applySeatOverride(cfg *ai.Config, override *SeatAIConfig) {
	if override == nil {
		return
	}
	if override.Algorithm != "" {
		if algorithm, err := ai.ParseAlgorithm(override.Algorithm); err == nil {
			cfg.Algorithm = algorithm
		}
	}
	if override.Heuristic != "" {
		if heuristic, err := ai.ParseHeuristic(override.Heuristic); err == nil {
			cfg.Heuristic = heuristic
		}
	}
	if override.Depth > 0 {
		cfg.Depth = override.Depth
	}
}

// ApplyHumanMove plays a move for the seat to act. It rejects moves when
// the game is over, when an AI seat is to act, or when the cell is taken.
func (c *GameController) ApplyHumanMove(move game.Move) (bool, string) {
	c.mu.Lock()
	if !c.started {
		c.mu.Unlock()
		return false, "game not started"
	}
	if _, over := c.game.Winner(); over {
		c.mu.Unlock()
		return false, "game is over"
	}
	player := c.game.ToMove()
	if c.seatFor(player) != SeatHuman {
		c.mu.Unlock()
		return false, "not your turn"
	}
	if !c.game.IsLegal(move) {
		c.mu.Unlock()
		return false, "illegal move"
	}
	c.recordMoveLocked(move, player, false, 0, 0)
	c.mu.Unlock()
	c.notify()
	c.scheduleAI()
	return true, ""
}

// recordMoveLocked applies the move on the live game and appends the
// history entry including the stones the move captured.
func (c *GameController) recordMoveLocked(move game.Move, player game.PlayerColor, isAI bool, nodes, pruned int64) {
	capturesBefore := c.game.Captures(player)
	elapsed := time.Since(c.turnStarted)
	c.game.Apply(move, player)
	entry := HistoryEntry{
		Move:      move,
		Player:    player,
		ElapsedMs: float64(elapsed) / float64(time.Millisecond),
		IsAi:      isAI,
		Nodes:     nodes,
		Pruned:    pruned,
	}
	if c.game.Captures(player) > capturesBefore {
		if record, ok := c.game.LastCapture(); ok {
			entry.Captured = record.Stones
		}
	}
	c.history = append(c.history, entry)
	c.turnStarted = time.Now()
}

// scheduleAI launches a background search when an AI seat is to move. The
// search runs on a clone; an epoch counter detects restarts so a stale
// result is dropped instead of landing on a new game.
func (c *GameController) scheduleAI() {
	c.mu.Lock()
	if !c.started || c.aiThinking {
		c.mu.Unlock()
		return
	}
	if _, over := c.game.Winner(); over {
		c.mu.Unlock()
		return
	}
	if c.game.IsFull() {
		c.mu.Unlock()
		return
	}
	player := c.game.ToMove()
	engine, ok := c.engines[player]
	if !ok {
		c.mu.Unlock()
		return
	}
	c.aiThinking = true
	epoch := c.epoch
	snapshot := c.game.Clone()
	c.mu.Unlock()

	go func() {
		move, found := engine.BestMove(snapshot)
		stats := engine.Stats()
		if !found {
			c.mu.Lock()
			c.aiThinking = false
			c.mu.Unlock()
			return
		}
		log.Printf("[server] %s plays (%d,%d) in %s (%d nodes, %d pruned)",
			player, move.X, move.Y, stats.Elapsed.Round(time.Millisecond), stats.Nodes, stats.Pruned)
		c.submitAIMove(epoch, player, move, stats)
	}()
}

func (c *GameController) submitAIMove(epoch int, player game.PlayerColor, move game.Move, stats ai.SearchStats) {
	c.mu.Lock()
	c.aiThinking = false
	if epoch != c.epoch || !c.started {
		c.mu.Unlock()
		return
	}
	if c.game.ToMove() != player || !c.game.IsLegal(move) {
		c.mu.Unlock()
		return
	}
	c.recordMoveLocked(move, player, true, stats.Nodes, stats.Pruned)
	c.seatStats[player] = stats
	c.mu.Unlock()
	c.notify()
	c.scheduleAI()
}

func (c *GameController) notify() {
	c.mu.Lock()
	fn := c.onChange
	c.mu.Unlock()
	if fn != nil {
		fn()
	}
}

func (c *GameController) Settings() GameSettings {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.settings
}

func (c *GameController) History() []HistoryEntry {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]HistoryEntry(nil), c.history...)
}

// Snapshot returns an independent copy of the live game plus the flags the
// status DTO needs.
func (c *GameController) Snapshot() (*game.Game, bool, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.game.Clone(), c.started, c.aiThinking
}

// SeatStats reports the last search stats for each AI seat.
func (c *GameController) SeatStats() map[game.PlayerColor]ai.SearchStats {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make(map[game.PlayerColor]ai.SearchStats, len(c.seatStats))
	for color, stats := range c.seatStats {
		out[color] = stats
	}
	return out
}
