package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-pong/internal/config"
	"github.com/vovakirdan/tui-pong/internal/core"
	"github.com/vovakirdan/tui-pong/internal/replay"
	"github.com/vovakirdan/tui-pong/internal/sim"
)

// PlaybackModel replays a recorded match. It rebuilds the engine from
// the recording's seed and feeds the recorded input trace back in, one
// frame per tick, so the match unfolds exactly as it was played.
type PlaybackModel struct {
	engine *sim.Engine
	player *replay.Player
	screen *core.Screen
	config core.RuntimeConfig
	snap   sim.Snapshot

	keyMapper *KeyMapper
	finished  bool
	paused    bool
	quitting  bool
	backing   bool
}

// NewPlaybackModel creates a playback model for a decoded recording.
// Returns an error if the recording's mode is not recognized.
func NewPlaybackModel(pongCfg config.PongConfig, rec *replay.Recording, screenW, screenH int) (PlaybackModel, error) {
	mode, ok := sim.ParseMode(rec.Mode)
	if !ok {
		return PlaybackModel{}, fmt.Errorf("tui: replay has unknown mode %q", rec.Mode)
	}
	diff, err := config.ParseDifficulty(rec.Difficulty)
	if err != nil {
		return PlaybackModel{}, fmt.Errorf("tui: replay has unknown difficulty: %w", err)
	}

	rt := core.RuntimeConfig{
		ScreenW:  screenW,
		ScreenH:  screenH,
		TickRate: rec.TickRate,
		Seed:     rec.Seed,
	}

	engine := sim.New(pongCfg, mode, diff)
	engine.Reset(rt)

	return PlaybackModel{
		engine:    engine,
		player:    replay.NewPlayer(rec),
		screen:    core.NewScreen(screenW, screenH),
		config:    rt,
		snap:      engine.Snapshot(),
		keyMapper: NewKeyMapper(),
	}, nil
}

// Init starts the tick loop.
func (m PlaybackModel) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and advances playback.
func (m PlaybackModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil
	case TickMsg:
		return m.handleTick()
	}
	return m, nil
}

// handleKey processes playback controls: pause, restart, back, quit.
func (m PlaybackModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	switch action {
	case core.ActionPause:
		m.paused = !m.paused
	case core.ActionRestart:
		m.player.Rewind()
		m.engine.Reset(m.config)
		m.snap = m.engine.Snapshot()
		m.finished = false
	case core.ActionBack:
		m.backing = true
		return m, tea.Quit
	}

	return m, nil
}

// handleTick feeds the next recorded frame into the engine.
func (m PlaybackModel) handleTick() (tea.Model, tea.Cmd) {
	if m.paused || m.finished {
		return m, tickCmd(m.config.TickRate)
	}

	in, ok := m.player.Next()
	if !ok {
		m.finished = true
		return m, tickCmd(m.config.TickRate)
	}

	m.snap = m.engine.Step(in).Snapshot
	return m, tickCmd(m.config.TickRate)
}

// View renders the current snapshot with a playback banner.
func (m PlaybackModel) View() string {
	if m.quitting || m.backing {
		return ""
	}

	drawMatch(m.screen, m.snap, courtGeometry{
		W:       m.engine.CourtWidth(),
		H:       m.engine.CourtHeight(),
		PaddleH: m.engine.PaddleHeight(),
	})

	banner := fmt.Sprintf("REPLAY %d/%d", m.player.Pos(), m.player.Len())
	if m.finished {
		banner = "REPLAY FINISHED  (R: again, B: back, Q: quit)"
	} else if m.paused {
		banner = "REPLAY PAUSED"
	}
	m.screen.DrawTextColored(2, 0, banner, core.ColorCyan)

	return RenderScreen(m.screen)
}

// IsQuitting returns true if user requested to quit entirely.
func (m PlaybackModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to the browser.
func (m PlaybackModel) BackToMenu() bool {
	return m.backing
}

// RunPlayback runs a standalone playback program for a recording.
func RunPlayback(pongCfg config.PongConfig, rec *replay.Recording, screenW, screenH int) error {
	model, err := NewPlaybackModel(pongCfg, rec, screenW, screenH)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err = p.Run()
	return err
}
