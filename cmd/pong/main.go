// pong is a terminal pong game with an AI opponent, power-ups and
// match replays.
//
// Usage:
//
//	pong play                - Play a match (menu picks mode/difficulty)
//	pong replays             - List recorded match replays
//	pong replay <id>         - Watch a recorded match
//	pong serve               - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible matches
//	--db <path>     - Set database path (default: ~/.pong/replays.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "pong",
	Short: "Terminal pong with an AI opponent and match replays",
	Long: `Pong is a terminal game: first to 5 points wins. Play against a
predictive AI opponent on three difficulties, or share a keyboard in
two-player mode. Finished matches are recorded and can be replayed.

Available commands:
  play     - Play a match
  replays  - List recorded replays
  replay   - Watch a recorded match
  serve    - Start SSH server for remote play

Examples:
  pong play
  pong play --mode vs-ai --difficulty hard
  pong play --mode 2p
  pong replays
  pong replay 3
  pong serve --ssh :2222`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (ticks per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.pong/replays.db", "Path to replays database")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(replaysCmd)
	rootCmd.AddCommand(replayCmd)
	rootCmd.AddCommand(serveCmd)
}
