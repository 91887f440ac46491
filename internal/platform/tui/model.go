package tui

import (
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/starcatch/internal/catch"
	"github.com/vovakirdan/starcatch/internal/config"
	"github.com/vovakirdan/starcatch/internal/core"
	"github.com/vovakirdan/starcatch/internal/storage"
)

// topScoresShown is the number of rows in the game-over score table.
const topScoresShown = 5

// Options configures a Model.
type Options struct {
	Player    string // Name recorded on the score board
	HoldTicks int    // Frames a key press keeps its direction held
	Logger    *log.Logger
}

// Model is the Bubble Tea model for a Star Catch session. It is the input,
// rendering and UI-text collaborator of a catch.Round, and owns the frame
// and countdown drivers as tea.Tick commands.
type Model struct {
	round    *catch.Round
	board    *storage.Board
	player   string
	screen   *core.Screen
	config   core.RuntimeConfig
	keys     KeyMap
	help     help.Model
	pending  core.InputFrame // Keys pressed since the last frame
	latch    *HoldLatch
	logger   *log.Logger
	scores   HUDScores
	top      []storage.ScoreEntry
	quitting bool
}

// NewModel creates a new model with an idle round.
// The board may be nil, in which case only the session best is tracked.
func NewModel(cfg config.CatchConfig, board *storage.Board, rt core.RuntimeConfig, opts Options) Model {
	// Use time-based seed if not specified
	if rt.Seed == 0 {
		rt.Seed = time.Now().UnixNano()
	}
	if rt.TickRate <= 0 {
		rt.TickRate = core.DefaultConfig().TickRate
	}
	if opts.Player == "" {
		opts.Player = "player"
	}
	if opts.HoldTicks <= 0 {
		opts.HoldTicks = core.Max(rt.TickRate/6, 1)
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}

	round := catch.NewRound(cfg, rand.New(rand.NewSource(rt.Seed)))
	round.AddListener(&scoreRecorder{board: board, player: opts.Player, logger: opts.Logger})

	m := Model{
		round:   round,
		board:   board,
		player:  opts.Player,
		screen:  core.NewScreen(rt.ScreenW, core.Max(rt.ScreenH-1, 1)),
		config:  rt,
		keys:    DefaultKeyMap(),
		help:    help.New(),
		pending: core.NewInputFrame(),
		latch:   NewHoldLatch(opts.HoldTicks),
		logger:  opts.Logger,
	}
	m.refreshScores()
	return m
}

// Init starts in the idle phase; nothing ticks until a round starts.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, core.Max(msg.Height-1, 1))
		m.help.Width = msg.Width
		return m, nil

	case FrameMsg:
		return m.handleFrame(msg)

	case SecondMsg:
		return m.handleSecond(msg)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch action := m.keys.MapKey(msg); action {
	case core.ActionQuit:
		m.quitting = true
		m.round.End()
		return m, tea.Quit
	case core.ActionStart:
		if m.round.Phase() == catch.PhaseRunning && msg.String() != "r" {
			// Space and enter steer nothing mid-round; only r restarts
			return m, nil
		}
		return m.startRound()
	case core.ActionHelp:
		m.help.ShowAll = !m.help.ShowAll
	case core.ActionLeft, core.ActionRight:
		m.pending.Set(action)
	}
	return m, nil
}

// startRound resets the round and starts both drivers for the new
// generation. Drivers of the previous generation stop on their next message.
func (m Model) startRound() (tea.Model, tea.Cmd) {
	m.latch.Release()
	m.pending.Clear()
	m.round.Start()
	gen := m.round.Generation()
	return m, tea.Batch(frameCmd(m.config.TickRate, gen), secondCmd(gen))
}

// handleFrame runs one simulation tick.
func (m Model) handleFrame(msg FrameMsg) (tea.Model, tea.Cmd) {
	if !m.isLive(msg.Gen) {
		return m, nil // Stale or stopped driver: do not reschedule
	}
	m.latch.Press(m.pending)
	m.pending.Clear()
	m.round.Tick(m.latch.Intent())
	m.latch.Decay()
	return m, frameCmd(m.config.TickRate, msg.Gen)
}

// handleSecond runs one countdown second.
func (m Model) handleSecond(msg SecondMsg) (tea.Model, tea.Cmd) {
	if !m.isLive(msg.Gen) {
		return m, nil
	}
	m.round.SecondTick()
	if m.round.Phase() != catch.PhaseRunning {
		m.refreshScores()
		return m, nil
	}
	return m, secondCmd(msg.Gen)
}

// isLive reports whether a driver message belongs to the running round.
func (m Model) isLive(gen int) bool {
	return gen == m.round.Generation() && m.round.Phase() == catch.PhaseRunning
}

// refreshScores reloads the high score and top table from the board.
func (m *Model) refreshScores() {
	if m.board == nil {
		if s := m.round.Score(); s > m.scores.Best {
			m.scores.Best = s
			m.scores.Personal = s
		}
		return
	}

	high, err := m.board.HighScore()
	if err != nil {
		m.logger.Error("cannot read high score", "error", err)
		return
	}
	m.scores.Best = high

	mine, err := m.board.PlayerBest(m.player)
	if err != nil {
		m.logger.Error("cannot read player best", "player", m.player, "error", err)
		return
	}
	m.scores.Personal = mine

	top, err := m.board.TopScores(topScoresShown)
	if err != nil {
		m.logger.Error("cannot read top scores", "error", err)
		return
	}
	m.top = top
}

// State returns a snapshot of the round, for tests and tooling.
func (m Model) State() catch.State {
	return m.round.Snapshot()
}

// HighScore returns the best score known to this session.
func (m Model) HighScore() int {
	return m.scores.Best
}

// PersonalBest returns the best score of this session's player.
func (m Model) PersonalBest() int {
	return m.scores.Personal
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	s := m.round.Snapshot()
	DrawField(m.screen, s, m.scores)
	view := RenderScreen(m.screen)

	if s.Phase == catch.PhaseEnded && len(m.top) > 0 {
		view = lipgloss.JoinVertical(lipgloss.Left, view, m.scoreTable())
	}
	return lipgloss.JoinVertical(lipgloss.Left, view, m.help.View(m.keys))
}

// scoreTable renders the top rounds of the board.
func (m Model) scoreTable() string {
	columns := []table.Column{
		{Title: "Rank", Width: 6},
		{Title: "Player", Width: 16},
		{Title: "Score", Width: 8},
		{Title: "Caught/Missed", Width: 14},
	}

	rows := make([]table.Row, len(m.top))
	for i, e := range m.top {
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			e.Player,
			fmt.Sprintf("%d", e.Score),
			fmt.Sprintf("%d/%d", e.Caught, e.Missed),
		}
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithHeight(len(rows)+1),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = lipgloss.NewStyle()
	t.SetStyles(s)

	return t.View()
}

// scoreRecorder writes finished rounds to the board. It is the high-score
// collaborator that receives the final score when a round ends.
type scoreRecorder struct {
	board  *storage.Board
	player string
	logger *log.Logger
}

func (r *scoreRecorder) RoundStarted(s catch.State) {
	r.logger.Debug("round started", "player", r.player, "generation", s.Generation)
}

func (r *scoreRecorder) Scored(catch.State, int) {}

func (r *scoreRecorder) RoundEnded(s catch.State) {
	r.logger.Info("round ended", "player", r.player, "score", s.Score, "caught", s.Caught, "missed", s.Missed)
	if r.board == nil || s.Score == 0 {
		return
	}
	if _, err := r.board.SaveScore(r.player, s.Score, s.Caught, s.Missed); err != nil {
		r.logger.Error("cannot save score", "player", r.player, "error", err)
	}
}

// Run starts a local Bubble Tea program.
func Run(cfg config.CatchConfig, board *storage.Board, rt core.RuntimeConfig, opts Options) error {
	model := NewModel(cfg, board, rt, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
