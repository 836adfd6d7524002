package main

import (
	"github.com/Yossefnasser/pente-game/ai"
	"github.com/Yossefnasser/pente-game/game"
)

type StatusResponse struct {
	Settings    GameSettingsDTO           `json:"settings"`
	Config      Config                    `json:"config"`
	Board       [][]int                   `json:"board"`
	NextPlayer  int                       `json:"next_player"`
	Winner      int                       `json:"winner"`
	WinReason   string                    `json:"win_reason"`
	WinningLine []game.Move               `json:"winning_line"`
	Captures    map[string]int            `json:"captures"`
	BoardSize   int                       `json:"board_size"`
	MoveCount   int                       `json:"move_count"`
	Status      string                    `json:"status"`
	AiThinking  bool                      `json:"ai_thinking"`
	AiStats     map[string]ai.SearchStats `json:"ai_stats"`
	History     []historyEntryDTO         `json:"history"`
}

type GameSettingsDTO struct {
	Mode        string        `json:"mode"`
	HumanPlayer int           `json:"human_player"`
	WhiteAI     *SeatAIConfig `json:"white_ai,omitempty"`
	BlackAI     *SeatAIConfig `json:"black_ai,omitempty"`
}

type apiMove struct {
	X int `json:"x"`
	Y int `json:"y"`
}

type historyEntryDTO struct {
	X         int         `json:"x"`
	Y         int         `json:"y"`
	Player    int         `json:"player"`
	ElapsedMs float64     `json:"elapsed_ms"`
	IsAi      bool        `json:"is_ai"`
	Captured  []game.Move `json:"captured_positions"`
	Nodes     int64       `json:"nodes"`
	Pruned    int64       `json:"pruned"`
}

func controllerStatus(controller *GameController) StatusResponse {
	g, started, aiThinking := controller.Snapshot()
	settings := controller.Settings()
	winner := 0
	winReason := ""
	status := "running"
	if !started {
		status = "not_started"
	}
	if w, over := g.Winner(); over {
		winner = playerToInt(w)
		if len(g.WinningLine()) > 0 {
			winReason = "alignment"
		} else {
			winReason = "capture"
		}
		if w == game.PlayerWhite {
			status = "white_won"
		} else {
			status = "black_won"
		}
	} else if g.IsFull() {
		status = "draw"
	}
	return StatusResponse{
		Settings:    settingsToDTO(settings),
		Config:      GetConfig(),
		Board:       boardToSlice(g),
		NextPlayer:  playerToInt(g.ToMove()),
		Winner:      winner,
		WinReason:   winReason,
		WinningLine: g.WinningLine(),
		Captures: map[string]int{
			"white": g.Captures(game.PlayerWhite),
			"black": g.Captures(game.PlayerBlack),
		},
		BoardSize:  g.Size(),
		MoveCount:  g.MoveCount(),
		Status:     status,
		AiThinking: aiThinking,
		AiStats:    seatStatsToDTO(controller.SeatStats()),
		History:    historyToDTO(controller.History()),
	}
}

func seatStatsToDTO(stats map[game.PlayerColor]ai.SearchStats) map[string]ai.SearchStats {
	out := make(map[string]ai.SearchStats, len(stats))
	for color, s := range stats {
		out[color.String()] = s
	}
	return out
}

func settingsFromDTO(dto GameSettingsDTO, base GameSettings) GameSettings {
	settings := base
	switch dto.Mode {
	case "ai_vs_ai":
		settings.WhiteSeat = SeatAI
		settings.BlackSeat = SeatAI
	case "human_vs_human":
		settings.WhiteSeat = SeatHuman
		settings.BlackSeat = SeatHuman
	case "ai_vs_human":
		if dto.HumanPlayer == 2 {
			settings.WhiteSeat = SeatAI
			settings.BlackSeat = SeatHuman
		} else {
			settings.WhiteSeat = SeatHuman
			settings.BlackSeat = SeatAI
		}
	}
	settings.WhiteAI = dto.WhiteAI
	settings.BlackAI = dto.BlackAI
	return settings
}

func settingsToDTO(settings GameSettings) GameSettingsDTO {
	mode := "ai_vs_human"
	humanPlayer := 1
	switch {
	case settings.WhiteSeat == SeatAI && settings.BlackSeat == SeatAI:
		mode = "ai_vs_ai"
		humanPlayer = 0
	case settings.WhiteSeat == SeatHuman && settings.BlackSeat == SeatHuman:
		mode = "human_vs_human"
	case settings.WhiteSeat == SeatAI:
		humanPlayer = 2
	}
	return GameSettingsDTO{Mode: mode, HumanPlayer: humanPlayer}
}

func historyToDTO(history []HistoryEntry) []historyEntryDTO {
	result := make([]historyEntryDTO, 0, len(history))
	for _, entry := range history {
		result = append(result, historyEntryDTO{
			X:         entry.Move.X,
			Y:         entry.Move.Y,
			Player:    playerToInt(entry.Player),
			ElapsedMs: entry.ElapsedMs,
			IsAi:      entry.IsAi,
			Captured:  append([]game.Move(nil), entry.Captured...),
			Nodes:     entry.Nodes,
			Pruned:    entry.Pruned,
		})
	}
	return result
}

func boardToSlice(g *game.Game) [][]int {
	size := g.Size()
	rows := make([][]int, size)
	for y := 0; y < size; y++ {
		rows[y] = make([]int, size)
		for x := 0; x < size; x++ {
			rows[y][x] = cellToInt(g.At(x, y))
		}
	}
	return rows
}

func cellToInt(cell game.Cell) int {
	switch cell {
	case game.CellWhite:
		return 1
	case game.CellBlack:
		return 2
	default:
		return 0
	}
}

func playerToInt(player game.PlayerColor) int {
	if player == game.PlayerBlack {
		return 2
	}
	return 1
}
