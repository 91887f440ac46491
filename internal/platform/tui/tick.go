// Package tui provides the Bubble Tea integration for Star Catch: key
// mapping, the frame and countdown drivers, rendering, and the SSH server.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/starcatch/internal/core"
)

// FrameMsg triggers one simulation tick of round generation Gen.
type FrameMsg struct {
	Gen int
}

// SecondMsg triggers one countdown second of round generation Gen.
type SecondMsg struct {
	Gen int
}

// frameCmd schedules the next frame for the given round generation.
func frameCmd(tickRate, gen int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(time.Time) tea.Msg {
		return FrameMsg{Gen: gen}
	})
}

// secondCmd schedules the next countdown second for the given generation.
func secondCmd(gen int) tea.Cmd {
	return tea.Tick(time.Second, func(time.Time) tea.Msg {
		return SecondMsg{Gen: gen}
	})
}

// HoldLatch turns key presses into held directions. Terminals report key
// presses and auto-repeat but never key release, so each press keeps its
// direction active for a number of frames.
type HoldLatch struct {
	frames int
	left   int
	right  int
}

// NewHoldLatch creates a latch that holds each press for the given frames.
func NewHoldLatch(frames int) *HoldLatch {
	if frames < 1 {
		frames = 1
	}
	return &HoldLatch{frames: frames}
}

// Press refreshes every direction pressed in the frame. Non-movement
// actions are ignored.
func (h *HoldLatch) Press(f core.InputFrame) {
	if f.Has(core.ActionLeft) {
		h.left = h.frames
	}
	if f.Has(core.ActionRight) {
		h.right = h.frames
	}
}

// Intent returns the directions currently held.
func (h *HoldLatch) Intent() core.Intent {
	return core.Intent{Left: h.left > 0, Right: h.right > 0}
}

// Decay ages held directions by one frame.
func (h *HoldLatch) Decay() {
	if h.left > 0 {
		h.left--
	}
	if h.right > 0 {
		h.right--
	}
}

// Release drops all held directions.
func (h *HoldLatch) Release() {
	h.left = 0
	h.right = 0
}
