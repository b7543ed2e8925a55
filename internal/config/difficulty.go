package config

import "fmt"

// Difficulty selects the AI opponent's tracking behavior.
// It only has an effect in vs-AI mode.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// ParseDifficulty validates a user-supplied difficulty name.
// An empty string selects medium.
func ParseDifficulty(s string) (Difficulty, error) {
	switch Difficulty(s) {
	case "":
		return DifficultyMedium, nil
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return Difficulty(s), nil
	default:
		return "", fmt.Errorf("unknown difficulty %q (want easy, medium or hard)", s)
	}
}

// Level returns the AI parameters for this difficulty.
func (d Difficulty) Level(cfg PongConfig) AILevel {
	switch d {
	case DifficultyEasy:
		return cfg.AI.Easy
	case DifficultyHard:
		return cfg.AI.Hard
	default:
		return cfg.AI.Medium
	}
}
