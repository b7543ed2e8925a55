package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-pong/internal/config"
	"github.com/vovakirdan/tui-pong/internal/core"
	"github.com/vovakirdan/tui-pong/internal/platform/tui"
	"github.com/vovakirdan/tui-pong/internal/sim"
	"github.com/vovakirdan/tui-pong/internal/storage"
)

var (
	flagConfig     string
	flagMode       string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a match",
	Long: `Start a pong match. With no flags an interactive menu picks the
mode and difficulty.

Controls:
  W/S        - Move your paddle (arrows also work in vs-AI)
  Up/Down    - Move player 2's paddle (two-player mode)
  P/Esc      - Pause
  R          - Restart (after game over)
  Q/Ctrl+C   - Quit

Examples:
  pong play
  pong play --mode vs-ai --difficulty easy
  pong play --mode 2p
  pong play --config ./my-pong.yaml --seed 42`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagMode, "mode", "", "Match mode: vs-ai, 2p")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "AI difficulty: easy, medium, hard")
}

// terminalSize returns the current terminal size, with fallbacks.
func terminalSize() (int, int) {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return width, height
}

func runPlay(cmd *cobra.Command, args []string) {
	pongCfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	width, height := terminalSize()
	rt := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	mode, ok := sim.ParseMode(flagMode)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q (want vs-ai or 2p)\n", flagMode)
		os.Exit(1)
	}
	diff, err := config.ParseDifficulty(flagDifficulty)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// With no explicit mode, show the interactive menu.
	if flagMode == "" && flagDifficulty == "" {
		result, menuErr := tui.RunMenu(rt)
		if menuErr != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", menuErr)
			os.Exit(1)
		}
		if result.Quit {
			return
		}
		rt = result.Config
		if result.WantReplays {
			runReplayBrowser(pongCfg, rt)
			return
		}
		mode = result.Mode
		diff = result.Difficulty
	}

	// Open replay storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open replays database: %v\n", err)
		// Continue without storage - the match still works
		store = nil
	}

	runErr := tui.Run(pongCfg, mode, diff, store, rt)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running match: %v\n", runErr)
		os.Exit(1)
	}
}
