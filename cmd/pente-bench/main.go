package main

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/Yossefnasser/pente-game/ai"
	"github.com/Yossefnasser/pente-game/game"
)

type benchPosition struct {
	Name  string
	Moves []seededMove
}

type seededMove struct {
	X      int
	Y      int
	Player game.PlayerColor
}

type benchResult struct {
	Position  string  `json:"position"`
	Algorithm string  `json:"algorithm"`
	Heuristic string  `json:"heuristic"`
	Depth     int     `json:"depth"`
	Player    string  `json:"player"`
	MoveX     int     `json:"move_x"`
	MoveY     int     `json:"move_y"`
	Nodes     int64   `json:"nodes"`
	Pruned    int64   `json:"pruned"`
	ElapsedMs float64 `json:"elapsed_ms"`
	Forced    bool    `json:"forced"`
}

func main() {
	tag := getenv("BENCH_TAG", "bench")
	outDir := getenv("BENCH_OUT_DIR", "results")
	workers := getenvInt("BENCH_WORKERS", runtime.NumCPU())
	maxDepth := getenvInt("BENCH_MAX_DEPTH", 3)
	if maxDepth < 1 {
		maxDepth = 1
	}

	positions := benchPositions()
	algorithms := []ai.Algorithm{ai.Minimax, ai.AlphaBeta}
	heuristics := []ai.Heuristic{ai.H1, ai.H2}
	colors := []game.PlayerColor{game.PlayerWhite, game.PlayerBlack}

	type cell struct {
		position  benchPosition
		algorithm ai.Algorithm
		heuristic ai.Heuristic
		depth     int
		player    game.PlayerColor
	}
	var cells []cell
	for _, position := range positions {
		for _, algorithm := range algorithms {
			for _, heuristic := range heuristics {
				for depth := 1; depth <= maxDepth; depth++ {
					for _, player := range colors {
						cells = append(cells, cell{position, algorithm, heuristic, depth, player})
					}
				}
			}
		}
	}
	log.Printf("[bench] running %d cells with %d workers", len(cells), workers)

	var mu sync.Mutex
	results := make([]benchResult, 0, len(cells))

	var group errgroup.Group
	group.SetLimit(workers)
	for _, c := range cells {
		c := c
		group.Go(func() error {
			result, err := runCell(c.position, c.algorithm, c.heuristic, c.depth, c.player)
			if err != nil {
				return err
			}
			mu.Lock()
			results = append(results, result)
			mu.Unlock()
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		log.Fatalf("[bench] run failed: %v", err)
	}

	stamp := time.Now().Format("20060102-150405")
	base := filepath.Join(outDir, fmt.Sprintf("%s-%s", tag, stamp))
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		log.Fatalf("[bench] create output dir: %v", err)
	}
	if err := writeJSONFile(base+".json", results); err != nil {
		log.Fatalf("[bench] write json: %v", err)
	}
	if err := writeCSVFile(base+".csv", results); err != nil {
		log.Fatalf("[bench] write csv: %v", err)
	}
	aggregated := filepath.Join(outDir, fmt.Sprintf("%s-aggregated-%s.csv", tag, stamp))
	rows := aggregateResults(results)
	if err := writeAggregatedCSV(aggregated, rows); err != nil {
		log.Fatalf("[bench] write aggregated csv: %v", err)
	}

	printSummary(rows)
	log.Printf("[bench] wrote %s.json, %s.csv and %s", base, base, aggregated)
}

func runCell(position benchPosition, algorithm ai.Algorithm, heuristic ai.Heuristic, depth int, player game.PlayerColor) (benchResult, error) {
	g := game.NewGame(game.DefaultBoardSize)
	for _, sm := range position.Moves {
		if !g.Apply(game.Move{X: sm.X, Y: sm.Y}, sm.Player) {
			return benchResult{}, fmt.Errorf("position %s: seed move (%d,%d) rejected", position.Name, sm.X, sm.Y)
		}
	}

	engine := ai.NewEngine(ai.Config{
		Algorithm: algorithm,
		Heuristic: heuristic,
		Depth:     depth,
		Player:    player,
	})
	move, ok := engine.BestMove(g)
	if !ok {
		return benchResult{}, fmt.Errorf("position %s: no move for %s/%s depth %d", position.Name, algorithm, heuristic, depth)
	}
	stats := engine.Stats()
	return benchResult{
		Position:  position.Name,
		Algorithm: algorithm.String(),
		Heuristic: heuristic.String(),
		Depth:     depth,
		Player:    player.String(),
		MoveX:     move.X,
		MoveY:     move.Y,
		Nodes:     stats.Nodes,
		Pruned:    stats.Pruned,
		ElapsedMs: float64(stats.Elapsed) / float64(time.Millisecond),
		Forced:    stats.Forced,
	}, nil
}

// benchPositions seeds the two reference positions: a contested center
// opening and a vertical open three that forces tactical play.
func benchPositions() []benchPosition {
	return []benchPosition{
		{
			Name: "center",
			Moves: []seededMove{
				{9, 9, game.PlayerWhite},
				{9, 10, game.PlayerBlack},
				{10, 9, game.PlayerWhite},
				{8, 9, game.PlayerBlack},
			},
		},
		{
			Name: "open_three",
			Moves: []seededMove{
				{5, 5, game.PlayerWhite},
				{9, 9, game.PlayerBlack},
				{5, 6, game.PlayerWhite},
				{6, 6, game.PlayerBlack},
				{5, 7, game.PlayerWhite},
			},
		},
	}
}

func writeJSONFile(path string, results []benchResult) error {
	raw, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return err
	}
	raw = append(raw, '\n')
	return os.WriteFile(path, raw, 0o644)
}

var csvHeader = []string{
	"position", "algorithm", "heuristic", "depth", "player",
	"move_x", "move_y", "nodes", "pruned", "elapsed_ms", "forced",
}

func writeCSVFile(path string, results []benchResult) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	w := csv.NewWriter(f)
	if err := w.Write(csvHeader); err != nil {
		return err
	}
	for _, r := range results {
		if err := w.Write(resultRow(r)); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

type aggregatedRow struct {
	Position    string
	Player      string
	Heuristic   string
	MinimaxN    int64
	AlphaBetaN  int64
	MinimaxMs   float64
	AlphaBetaMs float64
}

func (r aggregatedRow) nodeDelta() int64 {
	return r.MinimaxN - r.AlphaBetaN
}

func (r aggregatedRow) msDelta() float64 {
	return r.MinimaxMs - r.AlphaBetaMs
}

// aggregateResults sums minimax vs alpha-beta nodes and time for each
// (position, player, heuristic) triple across all depths.
func aggregateResults(results []benchResult) []aggregatedRow {
	type key struct {
		position  string
		player    string
		heuristic string
	}
	agg := make(map[key]*aggregatedRow)
	var order []key
	for _, r := range results {
		k := key{r.Position, r.Player, r.Heuristic}
		row, ok := agg[k]
		if !ok {
			row = &aggregatedRow{Position: r.Position, Player: r.Player, Heuristic: r.Heuristic}
			agg[k] = row
			order = append(order, k)
		}
		if r.Algorithm == "alphabeta" {
			row.AlphaBetaN += r.Nodes
			row.AlphaBetaMs += r.ElapsedMs
		} else {
			row.MinimaxN += r.Nodes
			row.MinimaxMs += r.ElapsedMs
		}
	}
	rows := make([]aggregatedRow, 0, len(order))
	for _, k := range order {
		rows = append(rows, *agg[k])
	}
	return rows
}

var aggregatedHeader = []string{
	"position", "player", "heuristic",
	"minimax_nodes", "alphabeta_nodes", "node_delta",
	"minimax_ms", "alphabeta_ms", "ms_delta",
}

func writeAggregatedCSV(path string, rows []aggregatedRow) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	w := csv.NewWriter(f)
	if err := w.Write(aggregatedHeader); err != nil {
		return err
	}
	for _, r := range rows {
		record := []string{
			r.Position,
			r.Player,
			r.Heuristic,
			strconv.FormatInt(r.MinimaxN, 10),
			strconv.FormatInt(r.AlphaBetaN, 10),
			strconv.FormatInt(r.nodeDelta(), 10),
			strconv.FormatFloat(r.MinimaxMs, 'f', 3, 64),
			strconv.FormatFloat(r.AlphaBetaMs, 'f', 3, 64),
			strconv.FormatFloat(r.msDelta(), 'f', 3, 64),
		}
		if err := w.Write(record); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

func resultRow(r benchResult) []string {
	return []string{
		r.Position,
		r.Algorithm,
		r.Heuristic,
		strconv.Itoa(r.Depth),
		r.Player,
		strconv.Itoa(r.MoveX),
		strconv.Itoa(r.MoveY),
		strconv.FormatInt(r.Nodes, 10),
		strconv.FormatInt(r.Pruned, 10),
		strconv.FormatFloat(r.ElapsedMs, 'f', 3, 64),
		strconv.FormatBool(r.Forced),
	}
}

// printSummary prints the minimax vs alpha-beta deltas per position,
// player and heuristic.
func printSummary(rows []aggregatedRow) {
	var b strings.Builder
	fmt.Fprintf(&b, "%-12s %-6s %-4s %12s %12s %12s %10s\n",
		"position", "player", "eval", "mm_nodes", "ab_nodes", "node_delta", "ms_delta")
	for _, r := range rows {
		fmt.Fprintf(&b, "%-12s %-6s %-4s %12d %12d %12d %10.1f\n",
			r.Position, r.Player, r.Heuristic, r.MinimaxN, r.AlphaBetaN, r.nodeDelta(), r.msDelta())
	}
	log.Printf("[bench] summary:\n%s", b.String())
}

func getenv(key, fallback string) string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	return value
}

func getenvInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil || parsed <= 0 {
		return fallback
	}
	return parsed
}
