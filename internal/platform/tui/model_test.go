package tui

import (
	"math/rand"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/starcatch/internal/catch"
	"github.com/vovakirdan/starcatch/internal/config"
	"github.com/vovakirdan/starcatch/internal/core"
	"github.com/vovakirdan/starcatch/internal/storage"
)

func testRuntime() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 42}
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, expected Model", next)
	}
	return nm, cmd
}

func enterKey() tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyEnter}
}

func TestModelStartsIdle(t *testing.T) {
	m := NewModel(config.DefaultCatchConfig(), nil, testRuntime(), Options{})

	if m.State().Phase != catch.PhaseIdle {
		t.Errorf("phase = %v, expected idle", m.State().Phase)
	}
	if cmd := m.Init(); cmd != nil {
		t.Error("idle model should not schedule drivers")
	}
	if !strings.Contains(m.View(), "Press Enter to start") {
		t.Error("idle view should prompt to start")
	}
}

func TestModelStartSchedulesDrivers(t *testing.T) {
	m := NewModel(config.DefaultCatchConfig(), nil, testRuntime(), Options{})

	m, cmd := update(t, m, enterKey())
	if m.State().Phase != catch.PhaseRunning {
		t.Fatalf("phase = %v, expected running", m.State().Phase)
	}
	if cmd == nil {
		t.Error("starting a round should schedule the drivers")
	}
}

func TestModelDropsStaleDriverMessages(t *testing.T) {
	m := NewModel(config.DefaultCatchConfig(), nil, testRuntime(), Options{})
	m, _ = update(t, m, enterKey())
	oldGen := m.State().Generation

	// Restart mid-round with r
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'r'}})
	if m.State().Generation != oldGen+1 {
		t.Fatalf("generation = %d, expected %d", m.State().Generation, oldGen+1)
	}

	before := m.State()
	m, cmd := update(t, m, FrameMsg{Gen: oldGen})
	if cmd != nil {
		t.Error("stale frame must not reschedule")
	}
	m, cmd = update(t, m, SecondMsg{Gen: oldGen})
	if cmd != nil {
		t.Error("stale second must not reschedule")
	}
	after := m.State()
	if after.Ticks != before.Ticks || after.TimeRemaining != before.TimeRemaining {
		t.Error("stale driver messages must not change the round")
	}
}

func TestModelEnterDoesNotRestartRunningRound(t *testing.T) {
	m := NewModel(config.DefaultCatchConfig(), nil, testRuntime(), Options{})
	m, _ = update(t, m, enterKey())
	gen := m.State().Generation

	m, _ = update(t, m, enterKey())
	if m.State().Generation != gen {
		t.Error("enter should only start a round when none is running")
	}
}

func TestModelRoundLifecycle(t *testing.T) {
	board, err := storage.Open()
	if err != nil {
		t.Fatalf("storage.Open() failed: %v", err)
	}
	defer board.Close()

	m := NewModel(config.DefaultCatchConfig(), board, testRuntime(), Options{Player: "tester"})
	m, _ = update(t, m, enterKey())
	gen := m.State().Generation

	// Guarantee one catch
	m.round.Pool().Add(catch.FallingObject{X: 380, Y: 543, Size: 15, Speed: 2})

	var cmd tea.Cmd
	m, cmd = update(t, m, FrameMsg{Gen: gen})
	if cmd == nil {
		t.Fatal("live frame should reschedule")
	}
	if m.State().Score != 1 {
		t.Fatalf("score = %d, expected 1", m.State().Score)
	}

	for i := 0; i < 59; i++ {
		m, cmd = update(t, m, SecondMsg{Gen: gen})
		if cmd == nil {
			t.Fatalf("second %d: countdown stopped early", i+1)
		}
	}
	m, cmd = update(t, m, SecondMsg{Gen: gen})
	if cmd != nil {
		t.Error("countdown should stop when the round ends")
	}
	if m.State().Phase != catch.PhaseEnded {
		t.Fatalf("phase = %v, expected ended", m.State().Phase)
	}

	// Frame driver dies on its next message
	if _, cmd = update(t, m, FrameMsg{Gen: gen}); cmd != nil {
		t.Error("frame driver should stop after the round ends")
	}

	if m.HighScore() != 1 {
		t.Errorf("HighScore() = %d, expected 1", m.HighScore())
	}
	if m.PersonalBest() != 1 {
		t.Errorf("PersonalBest() = %d, expected 1", m.PersonalBest())
	}
	view := m.View()
	if !strings.Contains(view, "TIME'S UP") || !strings.Contains(view, "tester") {
		t.Error("game-over view should show the overlay and the score table")
	}
}

func TestModelMovementLatch(t *testing.T) {
	m := NewModel(config.DefaultCatchConfig(), nil, testRuntime(), Options{HoldTicks: 3})
	m, _ = update(t, m, enterKey())
	gen := m.State().Generation

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	for i := 0; i < 5; i++ {
		m, _ = update(t, m, FrameMsg{Gen: gen})
	}

	// Held for 3 frames at 5px each
	if x := m.State().Collector.X; x != 335 {
		t.Errorf("collector X = %f, expected 335", x)
	}
}

func TestModelKeysBetweenFramesShareOneFrame(t *testing.T) {
	m := NewModel(config.DefaultCatchConfig(), nil, testRuntime(), Options{HoldTicks: 1})
	m, _ = update(t, m, enterKey())
	gen := m.State().Generation

	// Left and right before the same frame cancel out
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRight})
	m, _ = update(t, m, FrameMsg{Gen: gen})
	if x := m.State().Collector.X; x != 350 {
		t.Errorf("collector X = %f, expected 350", x)
	}

	// Repeated presses before one frame move only one step
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRight})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRight})
	m, _ = update(t, m, FrameMsg{Gen: gen})
	m, _ = update(t, m, FrameMsg{Gen: gen})
	if x := m.State().Collector.X; x != 355 {
		t.Errorf("collector X = %f, expected 355", x)
	}
}

func TestModelQuit(t *testing.T) {
	m := NewModel(config.DefaultCatchConfig(), nil, testRuntime(), Options{})
	m, _ = update(t, m, enterKey())

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Fatal("quit should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("quit command should produce tea.QuitMsg")
	}
	if m.View() != "" {
		t.Error("quitting model should render nothing")
	}
}

func TestHoldLatch(t *testing.T) {
	h := NewHoldLatch(2)
	f := core.NewInputFrame()
	f.Set(core.ActionLeft)
	f.Set(core.ActionRight)
	h.Press(f)

	if h.Intent().Direction() != core.DirBoth {
		t.Errorf("Intent() = %+v, expected both", h.Intent())
	}
	h.Decay()
	h.Decay()
	if h.Intent() != core.IntentNone {
		t.Errorf("Intent() after decay = %+v, expected none", h.Intent())
	}

	f.Clear()
	f.Set(core.ActionStart) // ignored
	h.Press(f)
	if h.Intent() != core.IntentNone {
		t.Errorf("non-movement press: Intent() = %+v, expected none", h.Intent())
	}

	f.Set(core.ActionRight)
	h.Press(f)
	h.Release()
	if h.Intent() != core.IntentNone {
		t.Error("Release should drop held directions")
	}
}

func TestKeyMapMapKey(t *testing.T) {
	km := DefaultKeyMap()
	tests := []struct {
		msg      tea.KeyMsg
		expected core.Action
	}{
		{tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'d'}}, core.ActionRight},
		{tea.KeyMsg{Type: tea.KeyEnter}, core.ActionStart},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}}, core.ActionQuit},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'?'}}, core.ActionHelp},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'z'}}, core.ActionNone},
	}

	for _, tc := range tests {
		if got := km.MapKey(tc.msg); got != tc.expected {
			t.Errorf("MapKey(%q) = %v, expected %v", tc.msg.String(), got, tc.expected)
		}
	}
}

func TestDrawField(t *testing.T) {
	r := catch.NewRound(config.DefaultCatchConfig(), rand.New(rand.NewSource(1)))
	r.Start()
	r.Pool().Add(catch.FallingObject{X: 392.5, Y: 292.5, Size: 15, Speed: 2})
	r.Pool().Add(catch.FallingObject{X: 10, Y: -20, Size: 15, Speed: 2}) // not visible yet

	// Two HUD rows leave a 80x24 field
	dst := core.NewScreen(80, 26)
	DrawField(dst, r.Snapshot(), HUDScores{Best: 7, Personal: 3})

	hud := dst.Row(0)
	for _, want := range []string{"Score: 0", "Time: 60", "Best: 7", "You: 3", "Speed: 2.0"} {
		if !strings.Contains(hud, want) {
			t.Errorf("HUD row = %q, missing %q", hud, want)
		}
	}
	if got := dst.Row(1); got != strings.Repeat(string(HUDLineChar), 80) {
		t.Errorf("HUD line = %q", got)
	}
	if c := dst.GetCell(0, 1); c.Color != core.ColorGray {
		t.Errorf("HUD line color = %v, expected gray", c.Color)
	}

	// Star centred at (400, 300) maps to the middle of the field
	if got := dst.Get(40, 2+12); got != StarChar {
		t.Errorf("expected star at (40, 14), got %q", got)
	}
	stars := strings.Count(dst.String(), string(StarChar))
	if stars != 1 {
		t.Errorf("expected exactly one visible star, got %d", stars)
	}

	// Basket spans x 350..450 on the row for y=565
	basketY := 565.0 / 600 * 24
	basketRow := dst.Row(2 + int(basketY))
	if !strings.ContainsRune(basketRow, BasketLeft) || !strings.ContainsRune(basketRow, BasketRight) {
		t.Errorf("basket row = %q", basketRow)
	}
}

func TestDrawFieldLowTimeClock(t *testing.T) {
	tests := []struct {
		name      string
		remaining int
		expected  core.Color
	}{
		{"plenty of time", 11, core.ColorWhite},
		{"last seconds", 10, core.ColorOrange},
		{"final second", 1, core.ColorOrange},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := catch.State{
				Phase:         catch.PhaseRunning,
				TimeRemaining: tc.remaining,
				FieldW:        800,
				FieldH:        600,
			}
			dst := core.NewScreen(80, 26)
			DrawField(dst, s, HUDScores{})

			x := strings.Index(dst.Row(0), "Time:")
			if x < 0 {
				t.Fatalf("HUD row = %q", dst.Row(0))
			}
			if c := dst.GetCell(x, 0).Color; c != tc.expected {
				t.Errorf("clock color = %v, expected %v", c, tc.expected)
			}
		})
	}
}
