package live_test

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/san-kum/qrand/internal/live"
	"github.com/san-kum/qrand/internal/source"
)

func advance(t *testing.T, m tea.Model, ticks int) tea.Model {
	t.Helper()
	for i := 0; i < ticks; i++ {
		m, _ = m.Update(live.TickMsg(time.Now()))
	}
	return m
}

func TestModelAccumulatesUpToLimit(t *testing.T) {
	m := tea.Model(live.NewModel(source.NewCoin(7), 10, "coin toss"))
	m = advance(t, m, 20)

	got := m.(live.Model)
	if n := len(got.Sequence()); n != 10 {
		t.Fatalf("expected 10 samples after saturation, got %d", n)
	}

	view := got.View()
	if !strings.Contains(view, "10 / 10") {
		t.Errorf("view should report sample progress:\n%s", view)
	}
	if !strings.Contains(view, "coin toss") {
		t.Errorf("view should carry the title:\n%s", view)
	}
}

func TestModelPauseAndReset(t *testing.T) {
	m := tea.Model(live.NewModel(source.NewCoin(7), 100, "coin toss"))
	m = advance(t, m, 3)

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{' '}})
	paused := len(m.(live.Model).Sequence())
	m = advance(t, m, 5)
	if got := len(m.(live.Model).Sequence()); got != paused {
		t.Fatalf("paused model kept sampling: %d -> %d", paused, got)
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'r'}})
	if got := len(m.(live.Model).Sequence()); got != 0 {
		t.Fatalf("reset should clear the sequence, got %d samples", got)
	}
	m = advance(t, m, 2)
	if got := len(m.(live.Model).Sequence()); got == 0 {
		t.Fatal("reset model should resume sampling")
	}
}

func TestModelQuitKey(t *testing.T) {
	m := tea.Model(live.NewModel(source.NewCoin(7), 10, "coin toss"))
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Fatal("q should produce a quit command")
	}
}
