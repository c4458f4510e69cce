package tui

import (
	"fmt"
	"io"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-sweeper/internal/autoplay"
	"github.com/vovakirdan/tui-sweeper/internal/core"
	"github.com/vovakirdan/tui-sweeper/internal/mines"
	"github.com/vovakirdan/tui-sweeper/internal/registry"
	"github.com/vovakirdan/tui-sweeper/internal/storage"
)

// Options configures a game session.
type Options struct {
	Config        core.RuntimeConfig // grid already fitted to the terminal
	Solver        string             // registry name used when autoplay is on
	Autoplay      bool               // start with the solver playing
	RestartOnLoss bool               // autoplay starts a new board after a loss
	StopOnWin     bool               // autoplay stays on a cleared board
	Store         *storage.Store     // nil disables recording
	Logger        *log.Logger
}

// Model is the Bubble Tea model for one sweeper session.
type Model struct {
	opts   Options
	config core.RuntimeConfig
	seeds  *rand.Rand
	logger *log.Logger

	game   *mines.Game
	seed   int64
	driver *autoplay.Driver
	solved bool // the solver played on the current board
	paused bool

	screen *core.Screen
	keys   GameKeyMap
	help   help.Model
	input  core.InputFrame
	cursor core.Point

	started time.Time
	saved   bool // outcome recorded for the current board
	wins    int
	losses  int

	quitting bool
	back     bool
	err      error
}

// NewModel creates a session model and deals the first board.
func NewModel(opts Options) (Model, error) {
	cfg := opts.Config
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if opts.Solver == "" {
		opts.Solver = "probability"
	}
	if !registry.Exists(opts.Solver) {
		return Model{}, fmt.Errorf("tui: unknown solver %q", opts.Solver)
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	h := help.New()
	h.ShowAll = false

	m := Model{
		opts:   opts,
		config: cfg,
		seeds:  rand.New(rand.NewSource(cfg.Seed)),
		logger: logger,
		screen: core.NewScreen(max(cfg.Columns*cfg.CellWidth, cfg.ScreenW), cfg.Rows+boardTop),
		keys:   DefaultGameKeyMap(),
		help:   h,
		input:  core.NewInputFrame(),
	}
	if err := m.newBoard(); err != nil {
		return Model{}, err
	}
	if opts.Autoplay {
		if err := m.startAutoplay(); err != nil {
			return Model{}, err
		}
	}
	return m, nil
}

// newBoard deals a fresh board with the next session seed.
func (m *Model) newBoard() error {
	if m.driver != nil {
		m.driver.Stop()
	}
	m.seed = m.seeds.Int63()
	g, err := mines.NewGame(mines.Params{
		Width:   m.config.Columns,
		Height:  m.config.Rows,
		Density: m.config.Density,
		Seed:    m.seed,
	})
	if err != nil {
		return fmt.Errorf("tui: new board: %w", err)
	}
	m.game = g
	m.saved = false
	m.solved = false
	m.started = time.Now()
	m.cursor = core.Pt(g.Width()/2, g.Height()/2)
	if m.driver != nil {
		m.driver = nil
		return m.startAutoplay()
	}
	return nil
}

// startAutoplay hands the current board to the configured solver.
func (m *Model) startAutoplay() error {
	s, err := registry.Create(m.opts.Solver, m.seed)
	if err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	m.driver = autoplay.New(m.game, s, autoplay.Options{
		Delay:  m.config.MoveDelay,
		Seed:   m.seed,
		Logger: m.logger,
	})
	m.solved = true
	m.paused = false
	return nil
}

func (m *Model) stopAutoplay() {
	if m.driver != nil {
		m.driver.Stop()
		m.driver = nil
	}
	m.paused = false
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.MoveDelay)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.input.Clear()
	if m.keys.MapKeyToFrame(msg, &m.input) {
		m.stopAutoplay()
		m.quitting = true
		return m, tea.Quit
	}
	if key.Matches(msg, m.keys.Help) {
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}
	return m.applyInput()
}

// handleMouse maps a left click to a reveal of the clicked cell.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}
	p := core.Pt(msg.X/m.config.CellWidth, msg.Y-boardTop)
	if !p.In(m.game.Width(), m.game.Height()) {
		return m, nil
	}
	m.input.Clear()
	m.input.SetTarget(p)
	return m.applyInput()
}

// applyInput acts on the current input frame.
func (m Model) applyInput() (tea.Model, tea.Cmd) {
	f := m.input
	switch {
	case f.Has(core.ActionBack):
		m.stopAutoplay()
		m.back = true
		return m, tea.Quit

	case f.Has(core.ActionRestart):
		if err := m.newBoard(); err != nil {
			m.err = err
			return m, tea.Quit
		}

	case f.Has(core.ActionAutoplay):
		if m.driver != nil {
			m.stopAutoplay()
		} else if !m.game.Status().Over() {
			if err := m.startAutoplay(); err != nil {
				m.err = err
				return m, tea.Quit
			}
		}

	case f.Has(core.ActionPause):
		if m.driver != nil {
			m.paused = !m.paused
		}

	case f.Has(core.ActionUp):
		m.moveCursor(0, -1)
	case f.Has(core.ActionDown):
		m.moveCursor(0, 1)
	case f.Has(core.ActionLeft):
		m.moveCursor(-1, 0)
	case f.Has(core.ActionRight):
		m.moveCursor(1, 0)

	case f.Has(core.ActionReveal):
		target := m.cursor
		if f.HasTarget {
			target = f.Target
			m.cursor = target
		}
		if _, err := m.game.Reveal(target); err != nil {
			m.logger.Warn("reveal rejected", "x", target.X, "y", target.Y, "error", err)
		}
		m.recordOutcome()
	}
	return m, nil
}

func (m *Model) moveCursor(dx, dy int) {
	m.cursor = core.Pt(
		core.Clamp(m.cursor.X+dx, 0, m.game.Width()-1),
		core.Clamp(m.cursor.Y+dy, 0, m.game.Height()-1),
	)
}

// handleResize keeps the grid fixed and only resizes the screen buffer.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(max(m.game.Width()*m.config.CellWidth, msg.Width), m.game.Height()+boardTop)
	m.help.Width = msg.Width
	return m, nil
}

// handleTick advances autoplay by one move.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	next := tickCmd(m.config.MoveDelay)
	if m.driver == nil || m.paused {
		return m, next
	}

	if m.game.Status().Over() {
		if m.shouldRedeal() {
			if err := m.newBoard(); err != nil {
				m.err = err
				return m, tea.Quit
			}
		}
		return m, next
	}

	var err error
	switch m.driver.State() {
	case autoplay.NotStarted:
		_, err = m.driver.Start()
	case autoplay.Running:
		_, err = m.driver.Step()
	}
	if err != nil {
		m.logger.Error("autoplay failed", "error", err)
		m.stopAutoplay()
		return m, next
	}
	if m.driver.State() == autoplay.Stopped && m.driver.Reason() == autoplay.ReasonNoMove {
		m.logger.Warn("solver found no move", "solver", m.opts.Solver)
		m.stopAutoplay()
	}
	m.recordOutcome()
	return m, next
}

// shouldRedeal reports whether autoplay continues on a new board.
func (m Model) shouldRedeal() bool {
	switch m.game.Status() {
	case mines.Lost:
		return m.opts.RestartOnLoss
	case mines.Won:
		return !m.opts.StopOnWin
	}
	return false
}

// recordOutcome stores the result of a finished board once.
func (m *Model) recordOutcome() {
	st := m.game.Status()
	if !st.Over() || m.saved {
		return
	}
	m.saved = true

	outcome := storage.OutcomeLost
	if st == mines.Won {
		outcome = storage.OutcomeWon
		m.wins++
	} else {
		m.losses++
	}

	r := storage.Result{
		Seed:     m.seed,
		Width:    m.game.Width(),
		Height:   m.game.Height(),
		Mines:    m.game.Mines(),
		Mode:     storage.ModePlay,
		Outcome:  outcome,
		Moves:    m.game.Moves(),
		Revealed: m.game.RevealedCount(),
		Duration: time.Since(m.started),
	}
	if m.solved {
		r.Solver = m.opts.Solver
		r.Mode = storage.ModeAuto
	}
	m.logger.Info("game over",
		"outcome", outcome,
		"solver", r.Solver,
		"seed", r.Seed,
		"moves", r.Moves,
		"revealed", r.Revealed,
	)

	if m.opts.Store == nil {
		return
	}
	if _, err := m.opts.Store.SaveResult(r); err != nil {
		m.logger.Error("cannot record result", "error", err)
	}
}

// saveScreenshot saves the current board as text.
func (m *Model) saveScreenshot() {
	m.draw()

	dir := filepath.Join(os.Getenv("HOME"), ".sweeper", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("sweeper_%s.txt", timestamp))

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "error", err)
	}
}

func (m *Model) draw() {
	m.screen.Clear()
	hud := HUD{
		Mines:      mines.MineCount(m.config.Density, m.game.Width(), m.game.Height()),
		Wins:       m.wins,
		Losses:     m.losses,
		Paused:     m.paused,
		ShowCursor: m.driver == nil,
	}
	if m.driver != nil {
		hud.Solver = m.opts.Solver
		if mv, ok := m.driver.LastMove(); ok {
			hud.LastScore = mv.Score
			hud.HasScore = true
		}
	}
	DrawHUD(m.screen, m.game, hud)
	DrawBoard(m.screen, m.game, m.config.CellWidth, m.cursor, hud.ShowCursor)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting || m.back {
		return ""
	}

	m.draw()

	var b strings.Builder
	b.WriteString(RenderScreen(m.screen))
	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))
	return b.String()
}

// Game returns the current board.
func (m Model) Game() *mines.Game { return m.game }

// Cursor returns the keyboard cursor position.
func (m Model) Cursor() core.Point { return m.cursor }

// Autoplaying reports whether the solver is attached.
func (m Model) Autoplaying() bool { return m.driver != nil }

// Paused reports whether autoplay is paused.
func (m Model) Paused() bool { return m.paused }

// Session returns wins and losses so far.
func (m Model) Session() (wins, losses int) { return m.wins, m.losses }

// IsGoingBack returns true if the user asked for the menu.
func (m Model) IsGoingBack() bool { return m.back }

// Err returns the error that ended the session, if any.
func (m Model) Err() error { return m.err }

// Run starts the Bubble Tea program for a session.
// Returns true if the user asked to go back to the menu.
func Run(opts Options) (goBack bool, err error) {
	model, err := NewModel(opts)
	if err != nil {
		return false, err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Click to open cells
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}
	m, ok := finalModel.(Model)
	if !ok {
		return false, nil
	}
	return m.IsGoingBack(), m.Err()
}
