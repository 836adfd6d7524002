package main

import (
	"os"
	"strconv"
	"sync"
	"time"

	"github.com/Yossefnasser/pente-game/ai"
)

type Config struct {
	BoardSize      int    `json:"board_size"`
	AiAlgorithm    string `json:"ai_algorithm"`
	AiHeuristic    string `json:"ai_heuristic"`
	AiDepth        int    `json:"ai_depth"`
	AiTimeBudgetMs int    `json:"ai_time_budget_ms"`
}

type ConfigStore struct {
	mu     sync.RWMutex
	config Config
}

func DefaultConfig() Config {
	return Config{
		BoardSize:      19,
		AiAlgorithm:    "alphabeta",
		AiHeuristic:    "h2",
		AiDepth:        2,
		AiTimeBudgetMs: 2000,
	}
}

var configStore = &ConfigStore{config: DefaultConfig()}

func GetConfig() Config {
	return configStore.Get()
}

func (c *ConfigStore) Get() Config {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.config
}

func (c *ConfigStore) Update(newConfig Config) {
	c.mu.Lock()
	c.config = newConfig
	c.mu.Unlock()
}

func (c Config) searchConfig() ai.Config {
	algorithm, err := ai.ParseAlgorithm(c.AiAlgorithm)
	if err != nil {
		algorithm = ai.AlphaBeta
	}
	heuristic, err := ai.ParseHeuristic(c.AiHeuristic)
	if err != nil {
		heuristic = ai.H2
	}
	return ai.Config{
		Algorithm:  algorithm,
		Heuristic:  heuristic,
		Depth:      c.AiDepth,
		TimeBudget: time.Duration(c.AiTimeBudgetMs) * time.Millisecond,
	}
}

func getenvString(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getenvInt(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return fallback
}
