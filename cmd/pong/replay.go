package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-pong/internal/config"
	"github.com/vovakirdan/tui-pong/internal/core"
	"github.com/vovakirdan/tui-pong/internal/platform/tui"
	"github.com/vovakirdan/tui-pong/internal/replay"
	"github.com/vovakirdan/tui-pong/internal/storage"
)

var flagReplayLimit int

var replaysCmd = &cobra.Command{
	Use:   "replays",
	Short: "Browse recorded match replays",
	Long: `Open the interactive replay browser. Pick a replay to watch it,
or press D to delete one.

Examples:
  pong replays
  pong replays --limit 50`,
	Args: cobra.NoArgs,
	Run:  runReplays,
}

var replayCmd = &cobra.Command{
	Use:   "replay <id>",
	Short: "Watch a recorded match",
	Long: `Replay a recorded match by ID. The match is re-simulated from its
seed and input trace, so it plays back exactly as it was played.
Matches played under a custom game config replay correctly only with
that same config loaded.

Playback controls:
  P/Esc      - Pause
  R          - Restart playback
  Q/Ctrl+C   - Quit

Examples:
  pong replay 3`,
	Args: cobra.ExactArgs(1),
	Run:  runReplay,
}

func init() {
	replaysCmd.Flags().IntVar(&flagReplayLimit, "limit", 20, "How many replays to list")
}

func runReplays(cmd *cobra.Command, args []string) {
	pongCfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	width, height := terminalSize()
	rt := core.RuntimeConfig{ScreenW: width, ScreenH: height, TickRate: flagFPS}
	runReplayBrowser(pongCfg, rt)
}

// runReplayBrowser runs the browser/playback loop until the user quits.
func runReplayBrowser(pongCfg config.PongConfig, rt core.RuntimeConfig) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not open replays database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	for {
		id, goBack, err := tui.RunReplayBrowser(store, rt.ScreenW, rt.ScreenH)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		if id == 0 || goBack {
			return
		}

		if err := watchReplay(pongCfg, store, id, rt); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}
}

func runReplay(cmd *cobra.Command, args []string) {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid replay ID %q\n", args[0])
		os.Exit(1)
	}

	pongCfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not open replays database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	width, height := terminalSize()
	rt := core.RuntimeConfig{ScreenW: width, ScreenH: height, TickRate: flagFPS}

	if err := watchReplay(pongCfg, store, id, rt); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// watchReplay loads, decodes and plays back one stored replay.
func watchReplay(pongCfg config.PongConfig, store *storage.Store, id int64, rt core.RuntimeConfig) error {
	entry, err := store.ReplayByID(id)
	if err != nil {
		return err
	}
	if entry == nil {
		return fmt.Errorf("no replay with ID %d", id)
	}

	rec, err := replay.Unmarshal(entry.Data)
	if err != nil {
		return fmt.Errorf("replay %d is corrupt: %w", id, err)
	}

	return tui.RunPlayback(pongCfg, rec, rt.ScreenW, rt.ScreenH)
}
