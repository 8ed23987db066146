package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/geowars/internal/core"
	"github.com/vovakirdan/geowars/internal/registry"
)

const sessionGameID = "tui_session_stub"

func init() {
	registry.Register(sessionGameID, func(registry.Deps) registry.Game {
		return &stubGame{}
	})
}

func updateSession(t *testing.T, m SessionModel, msg tea.Msg) (SessionModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	sm, ok := next.(SessionModel)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return sm, cmd
}

func TestSessionFlow(t *testing.T) {
	m := NewSessionModel(sessionGameID, core.DefaultConfig(), registry.Deps{}, Options{})
	if m.title != "Stub" {
		t.Errorf("title = %q", m.title)
	}

	m, cmd := updateSession(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.screen != screenGame || m.game == nil || cmd == nil {
		t.Fatal("enter on Play should start the game")
	}

	// Esc on the start screen returns to the menu without quitting
	m, _ = updateSession(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.screen != screenMenu || m.quitting {
		t.Fatalf("esc should return to the menu, screen=%v quitting=%v", m.screen, m.quitting)
	}

	m, _ = updateSession(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m, _ = updateSession(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.screen != screenScores {
		t.Fatal("second item should open the scoreboard")
	}
	if m.View() == "" {
		t.Error("scoreboard view should not be empty")
	}

	m, _ = updateSession(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.screen != screenMenu {
		t.Fatal("esc should leave the scoreboard")
	}

	m, _ = updateSession(t, m, runeKey('q'))
	if !m.quitting || m.View() != "" {
		t.Error("q in the menu should end the session")
	}
}

func TestSessionResizeReachesGame(t *testing.T) {
	m := NewSessionModel(sessionGameID, core.DefaultConfig(), registry.Deps{}, Options{})
	m, _ = updateSession(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m, _ = updateSession(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})

	g, ok := m.game.game.(*stubGame)
	if !ok {
		t.Fatalf("game is %T", m.game.game)
	}
	if g.w != 120 || g.h != 40 {
		t.Errorf("game size = %dx%d", g.w, g.h)
	}
	if m.config.ScreenW != 120 {
		t.Error("session config should track the window")
	}
}

func TestNewSSHServerRejectsUnknownGame(t *testing.T) {
	cfg := DefaultSSHServerConfig()
	cfg.GameID = "no_such_game"
	if _, err := NewSSHServer(cfg); err == nil {
		t.Error("expected an error for an unknown game")
	}
}
