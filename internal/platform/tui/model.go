package tui

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-fireworks/internal/config"
	"github.com/vovakirdan/tui-fireworks/internal/core"
	"github.com/vovakirdan/tui-fireworks/internal/debug"
	"github.com/vovakirdan/tui-fireworks/internal/fireworks"
	"github.com/vovakirdan/tui-fireworks/internal/registry"
)

// Options configures a Model.
type Options struct {
	Config  *config.FireworksConfig
	Source  registry.Source
	Runtime core.RuntimeConfig
	Logger  *log.Logger
}

// viewport tracks the terminal size and reports it in pixels.
// It is shared by pointer with the scheduler, since Model is copied on every update.
type viewport struct {
	cols, rows int
	cfg        *config.FireworksConfig
}

// Bounds implements fireworks.BoundsProvider.
func (v *viewport) Bounds() core.Box {
	return core.NewBox(core.Zero, core.NewVector(
		float64(v.cols)*v.cfg.CellWidth,
		float64(v.rows)*v.cfg.CellHeight,
	))
}

// Model is the Bubble Tea model running the fireworks.
type Model struct {
	cfg      *config.FireworksConfig
	runtime  core.RuntimeConfig
	source   registry.Source
	view     *viewport
	loop     *fireworks.FrameLoop
	sched    *fireworks.Scheduler
	recorder *debug.Recorder
	konami   *debug.Konami
	keys     KeyMap
	overlay  *Overlay
	screen   *core.Screen
	renderer *Renderer
	logger   *log.Logger

	origin      time.Time
	lastTick    time.Time
	sized       bool
	showOverlay bool
	quitting    bool
}

// NewModel creates a model. The scheduler starts when the program starts.
func NewModel(opts Options) Model {
	cfg := opts.Runtime
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	view := &viewport{cols: cfg.ScreenW, rows: cfg.ScreenH, cfg: opts.Config}
	opts.Source.Reset(view.Bounds(), cfg.Seed)

	recorder := debug.NewRecorder()
	loop := fireworks.NewFrameLoop(0)
	sched := fireworks.NewScheduler(opts.Config, cfg.Seed, fireworks.Collaborators{
		Driver:   loop,
		Bounds:   view,
		Pointer:  opts.Source,
		Observer: debug.Multi{recorder, debug.LogObserver{Logger: logger}},
		Logger:   logger,
	})

	keys := DefaultKeyMap()
	now := time.Now()
	return Model{
		cfg:      opts.Config,
		runtime:  cfg,
		source:   opts.Source,
		view:     view,
		loop:     loop,
		sched:    sched,
		recorder: recorder,
		konami:   debug.NewKonami(),
		keys:     keys,
		overlay:  NewOverlay(keys),
		screen:   core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		renderer: NewRenderer(opts.Config),
		logger:   logger,
		origin:   now,
		lastTick: now,
	}
}

// Scheduler exposes the simulation driven by the model.
func (m Model) Scheduler() *fireworks.Scheduler {
	return m.sched
}

// Init starts the simulation and the tick loop.
func (m Model) Init() tea.Cmd {
	m.sched.Start()
	return tickCmd(m.runtime.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		m.source.MoveTo(core.CellCenter(msg.X, msg.Y, m.cfg.CellWidth, m.cfg.CellHeight))
		return m, nil

	case tea.FocusMsg:
		if m.cfg.ToggleOnFocusBlur {
			m.sched.Start()
		}
		return m, nil

	case tea.BlurMsg:
		if m.cfg.ToggleOnFocusBlur {
			m.sched.Stop()
		}
		return m, nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.konami.Press(msg.String()) {
		m.showOverlay = !m.showOverlay
		m.logger.Info("debug overlay", "visible", m.showOverlay)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Toggle):
		m.sched.Toggle()
	case key.Matches(msg, m.keys.Fill):
		n := m.sched.Fill()
		m.logger.Debug("fill", "added", n)
	case key.Matches(msg, m.keys.Clear):
		m.sched.State().Reset()
	case key.Matches(msg, m.keys.Help):
		m.overlay.ToggleHelp()
	default:
		if dx, dy, ok := m.keys.Nudge(msg); ok {
			step := core.NewVector(float64(dx)*m.cfg.CellWidth, float64(dy)*m.cfg.CellHeight)
			m.source.MoveTo(m.view.Bounds().ClampPoint(m.source.Position().Add(step)))
		}
	}
	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.runtime.ScreenW = msg.Width
	m.runtime.ScreenH = msg.Height
	m.view.cols, m.view.rows = msg.Width, msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	// The first size report is the real one; place the pointer for it
	if !m.sized {
		m.source.Reset(m.view.Bounds(), m.runtime.Seed)
		m.sized = true
	}
	return m, nil
}

// handleTick moves the pointer source and fires the pending frame.
func (m Model) handleTick(t time.Time) (tea.Model, tea.Cmd) {
	elapsed := millisSince(m.lastTick, t)
	m.lastTick = t
	m.source.Step(elapsed, m.view.Bounds())
	m.loop.Fire(millisSince(m.origin, t))

	return m, tickCmd(m.runtime.TickRate)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.screen.Clear()
	m.renderer.Draw(m.screen, m.sched.State().Stars())

	if m.showOverlay {
		m.overlay.SetRows(m.recorder.Entries(),
			debug.Entry{Name: "SOURCE", Value: m.source.ID()},
			debug.Entry{Name: "POINTER", Value: m.source.Position().Floor().String()},
			debug.Entry{Name: "MAX_STARS", Value: fmt.Sprint(m.cfg.MaxStarCount)},
			debug.Entry{Name: "SPAWN_INTERVAL", Value: fmt.Sprint(m.cfg.SpawnInterval)},
		)
		m.overlay.Draw(m.screen)
	}

	return m.renderer.Render(m.screen)
}

// Run starts the Bubble Tea program with the given options.
func Run(opts Options) error {
	model := NewModel(opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(), // Stars follow the pointer without a button held
		tea.WithReportFocus(),
	)

	_, err := p.Run()
	return err
}
