package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-pong/internal/config"
	"github.com/vovakirdan/tui-pong/internal/core"
	"github.com/vovakirdan/tui-pong/internal/replay"
	"github.com/vovakirdan/tui-pong/internal/sim"
	"github.com/vovakirdan/tui-pong/internal/storage"
)

// GameModel is the Bubble Tea model for a live match. It drives the
// engine at a fixed tick rate, records the input trace for the replay
// store, and renders snapshots.
type GameModel struct {
	engine *sim.Engine
	screen *core.Screen
	store  *storage.Store
	config core.RuntimeConfig
	diff   config.Difficulty

	keyMapper  *KeyMapper
	inputFrame core.InputFrame
	snap       sim.Snapshot

	// Paddle targets in court units, resynced from the snapshot each
	// tick so repeated key presses cannot drift past the clamp.
	leftTarget  float64
	rightTarget float64

	recorder    *replay.Recording
	replaySaved bool

	quitting   bool
	backToMenu bool
}

// NewGameModel creates a model for the given match parameters.
func NewGameModel(pongCfg config.PongConfig, mode sim.Mode, diff config.Difficulty, store *storage.Store, rt core.RuntimeConfig) GameModel {
	if rt.Seed == 0 {
		rt.Seed = time.Now().UnixNano()
	}

	engine := sim.New(pongCfg, mode, diff)
	engine.Reset(rt)

	return GameModel{
		engine:     engine,
		screen:     core.NewScreen(rt.ScreenW, rt.ScreenH),
		store:      store,
		config:     rt,
		diff:       diff,
		keyMapper:  NewKeyMapper(),
		inputFrame: core.NewInputFrame(),
		snap:       engine.Snapshot(),
		recorder:   newRecorder(engine.Mode(), diff, rt),
	}
}

func newRecorder(mode sim.Mode, diff config.Difficulty, rt core.RuntimeConfig) *replay.Recording {
	return &replay.Recording{
		Mode:       string(mode),
		Difficulty: string(diff),
		Seed:       rt.Seed,
		TickRate:   rt.TickRate,
	}
}

// Init starts the tick loop.
func (m GameModel) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
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

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	if action == core.ActionBack && (m.snap.GameOver || m.snap.Paused) {
		m.backToMenu = true
		return m, nil
	}
	if action != core.ActionNone {
		// Restart only makes sense after game over; the engine ignores
		// it otherwise, so no need to filter here.
		m.inputFrame.Set(action)
		return m, nil
	}

	twoPlayer := m.engine.Mode() == sim.ModeTwoPlayer
	switch side, delta := m.keyMapper.MapPaddleKey(msg, twoPlayer); side {
	case core.SideLeft:
		m.leftTarget += delta
		m.inputFrame.SetPaddleY(core.SideLeft, m.leftTarget)
	case core.SideRight:
		if twoPlayer {
			m.rightTarget += delta
			m.inputFrame.SetPaddleY(core.SideRight, m.rightTarget)
		}
	}

	return m, nil
}

// handleTick advances the simulation by one tick.
func (m GameModel) handleTick() (tea.Model, tea.Cmd) {
	// Restart with a fresh seed and a fresh recording. Reseeding here
	// (rather than relying on the engine's own restart) keeps every
	// recording replayable from its seed.
	if m.snap.GameOver && m.inputFrame.Has(core.ActionRestart) {
		m.config.Seed = time.Now().UnixNano()
		m.engine.Reset(m.config)
		m.snap = m.engine.Snapshot()
		m.recorder = newRecorder(m.engine.Mode(), m.diff, m.config)
		m.replaySaved = false
		m.leftTarget = 0
		m.rightTarget = 0
		m.inputFrame.Clear()
		return m, tickCmd(m.config.TickRate)
	}

	m.recorder.Append(m.inputFrame)
	result := m.engine.Step(m.inputFrame)
	m.snap = result.Snapshot
	m.inputFrame.Clear()

	// Resync paddle targets with the clamped positions.
	m.leftTarget = m.snap.LeftY
	m.rightTarget = m.snap.RightY

	if m.snap.GameOver && !m.replaySaved {
		m.saveReplay()
		m.replaySaved = true
	}

	return m, tickCmd(m.config.TickRate)
}

// saveReplay persists the finished match. Best effort: a storage
// failure never interrupts play.
func (m *GameModel) saveReplay() {
	if m.store == nil {
		return
	}
	data, err := m.recorder.Marshal()
	if err != nil {
		return
	}
	//nolint:errcheck // Best-effort save, game continues regardless
	m.store.SaveReplay(storage.ReplayEntry{
		Mode:       m.recorder.Mode,
		Difficulty: m.recorder.Difficulty,
		Seed:       m.recorder.Seed,
		TickRate:   m.recorder.TickRate,
		Ticks:      m.snap.Tick,
		LeftScore:  m.snap.LeftScore,
		RightScore: m.snap.RightScore,
		Winner:     m.snap.Winner.String(),
		Data:       data,
	})
}

// View renders the current snapshot.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	drawMatch(m.screen, m.snap, courtGeometry{
		W:       m.engine.CourtWidth(),
		H:       m.engine.CourtHeight(),
		PaddleH: m.engine.PaddleHeight(),
	})
	return RenderScreen(m.screen)
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to the menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// Run starts a standalone Bubble Tea program for a single match.
func Run(pongCfg config.PongConfig, mode sim.Mode, diff config.Difficulty, store *storage.Store, rt core.RuntimeConfig) error {
	model := NewGameModel(pongCfg, mode, diff, store, rt)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
