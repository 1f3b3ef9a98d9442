package app

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func newTestHarness(t *testing.T) *Harness {
	t.Helper()
	m := NewModel(Config{Width: 60, Height: 16, ShowFooter: true})
	return NewHarness(m)
}

func keyPress(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEscape}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestViewShowsRootMenu(t *testing.T) {
	h := newTestHarness(t)
	view := h.View()
	for _, label := range []string{"Volume", "Brightness", "Beep", "Settings"} {
		if !strings.Contains(view, label) {
			t.Fatalf("expected view to contain %q:\n%s", label, view)
		}
	}
	if !strings.Contains(view, "Control Panel") {
		t.Fatalf("expected header with menu title:\n%s", view)
	}
}

func TestCursorMovesThroughView(t *testing.T) {
	h := newTestHarness(t)
	h.Send(keyPress("down"))
	if !strings.Contains(h.View(), ">Brightness") {
		t.Fatalf("expected selection on Brightness:\n%s", h.View())
	}
	h.Send(keyPress("up"))
	if !strings.Contains(h.View(), ">Volume") {
		t.Fatalf("expected selection back on Volume:\n%s", h.View())
	}
}

func TestEditFlowThroughKeys(t *testing.T) {
	h := newTestHarness(t)
	h.Send(keyPress("enter")) // edit Volume
	if !h.Model().rt.Editing() {
		t.Fatalf("expected edit mode")
	}
	if !strings.Contains(h.View(), "(edit)") {
		t.Fatalf("expected edit marker in view:\n%s", h.View())
	}
	h.Send(keyPress("up"))
	h.Send(keyPress("enter")) // commit
	if h.Model().panel.volume != defaultVolume+1 {
		t.Fatalf("expected committed volume %d, got %d", defaultVolume+1, h.Model().panel.volume)
	}
}

func TestSubmenuNavigationThroughKeys(t *testing.T) {
	h := newTestHarness(t)
	for i := 0; i < 3; i++ {
		h.Send(keyPress("down"))
	}
	h.Send(keyPress("enter")) // open Settings
	if h.Model().rt.Depth() != 1 {
		t.Fatalf("expected submenu open, depth %d", h.Model().rt.Depth())
	}
	if !strings.Contains(h.View(), "Contrast") {
		t.Fatalf("expected Settings items:\n%s", h.View())
	}
	h.Send(keyPress("esc"))
	if h.Model().rt.Depth() != 0 {
		t.Fatalf("expected back at root, depth %d", h.Model().rt.Depth())
	}
}

func TestBeepAction(t *testing.T) {
	h := newTestHarness(t)
	h.Send(keyPress("down"))
	h.Send(keyPress("down"))
	h.Send(keyPress("enter"))
	if h.Model().panel.beeps != 1 {
		t.Fatalf("expected one beep, got %d", h.Model().panel.beeps)
	}
}

func TestFuzzyJump(t *testing.T) {
	h := newTestHarness(t)
	h.Send(keyPress("/"))
	if !h.Model().filtering {
		t.Fatalf("expected filter prompt open")
	}
	for _, r := range "brig" {
		h.Send(keyPress(string(r)))
	}
	h.Send(keyPress("enter"))
	if h.Model().filtering {
		t.Fatalf("expected filter prompt closed")
	}
	if got := h.Model().rt.Selected(); got != 1 {
		t.Fatalf("expected jump to Brightness (1), got %d", got)
	}
}

func TestFuzzyJumpMissKeepsSelection(t *testing.T) {
	h := newTestHarness(t)
	h.Send(keyPress("/"))
	for _, r := range "zzz" {
		h.Send(keyPress(string(r)))
	}
	h.Send(keyPress("enter"))
	if got := h.Model().rt.Selected(); got != 0 {
		t.Fatalf("expected selection unchanged on miss, got %d", got)
	}
}

func TestWindowResizeForcesRender(t *testing.T) {
	h := newTestHarness(t)
	h.Send(tea.WindowSizeMsg{Width: 30, Height: 10})
	if h.Model().width != 60 {
		t.Fatalf("expected fixed width preserved, got %d", h.Model().width)
	}
	m := NewModel(Config{ShowFooter: true})
	h2 := NewHarness(m)
	h2.Send(tea.WindowSizeMsg{Width: 30, Height: 10})
	if m.width != 30 || m.height != 10 {
		t.Fatalf("expected dynamic size adopted, got %dx%d", m.width, m.height)
	}
	if !strings.Contains(h2.View(), "Volume") {
		t.Fatalf("expected menu rendered after resize:\n%s", h2.View())
	}
}

func TestFooterHints(t *testing.T) {
	h := newTestHarness(t)
	if !strings.Contains(h.View(), "enter select") {
		t.Fatalf("expected navigation footer:\n%s", h.View())
	}
	h.Send(keyPress("enter")) // edit Volume
	if !strings.Contains(h.View(), "enter save") {
		t.Fatalf("expected edit footer:\n%s", h.View())
	}
}
