package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/geowars/internal/core"
	"github.com/vovakirdan/geowars/internal/storage"
)

func TestMenuNavigation(t *testing.T) {
	m := NewMenuModel(nil, "stub", core.DefaultConfig(), false)

	steps := []struct {
		msg  tea.KeyMsg
		want int
	}{
		{tea.KeyMsg{Type: tea.KeyUp}, 0},
		{tea.KeyMsg{Type: tea.KeyDown}, 1},
		{tea.KeyMsg{Type: tea.KeyDown}, 2},
		{tea.KeyMsg{Type: tea.KeyDown}, 2},
		{runeKey('k'), 1},
	}
	for i, s := range steps {
		next, _ := m.Update(s.msg)
		m = next.(MenuModel)
		if m.cursor != s.want {
			t.Fatalf("step %d: cursor %d, expected %d", i, m.cursor, s.want)
		}
	}

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(MenuModel)
	if m.Choice() != ChoiceScores || cmd == nil {
		t.Errorf("enter on the second item should pick scores, got %v", m.Choice())
	}
}

func TestMenuView(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatal(err)
	}
	defer store.Close()
	store.SaveRun(storage.Run{GameID: "stub", Score: 420}) //nolint:errcheck

	m := NewMenuModel(store, "stub", core.DefaultConfig(), false)
	out := m.View()
	for _, want := range []string{"G E O M E T R Y", "High score: 420", "Play", "High Scores", "Quit", "Observer offline"} {
		if !strings.Contains(out, want) {
			t.Errorf("menu missing %q", want)
		}
	}

	if out := NewMenuModel(nil, "stub", core.DefaultConfig(), true).View(); strings.Contains(out, "Observer offline") {
		t.Error("online observer should not warn")
	}
}

func TestMenuQuit(t *testing.T) {
	m := NewMenuModel(nil, "stub", core.DefaultConfig(), false)
	next, _ := m.Update(runeKey('q'))
	if next.(MenuModel).Choice() != ChoiceQuit {
		t.Error("q should quit the menu")
	}
}

func TestScoreboardView(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatal(err)
	}
	defer store.Close()

	empty := NewScoreboardModel(store, "stub", "Stub", 80, 24)
	if !strings.Contains(empty.View(), "No scores recorded yet") {
		t.Error("empty scoreboard should say so")
	}

	store.SaveRun(storage.Run{GameID: "stub", Score: 300, Level: 3, Kills: 30, Player: "bob"}) //nolint:errcheck
	store.SaveRun(storage.Run{GameID: "stub", Score: 100, Level: 1, Kills: 10})                //nolint:errcheck

	sb := NewScoreboardModel(store, "stub", "Stub", 80, 24)
	rows := sb.table.Rows()
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	if rows[0][1] != "300" || rows[0][4] != "bob" || rows[1][4] != "-" {
		t.Errorf("rows = %v", rows)
	}
	if !strings.Contains(sb.View(), "HIGH SCORES - Stub") {
		t.Error("title missing")
	}

	narrow := NewScoreboardModel(store, "stub", "Stub", 50, 24)
	if n := len(narrow.table.Rows()[0]); n != 5 {
		t.Errorf("narrow rows should drop the player column, got %d cells", n)
	}

	next, _ := sb.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if !next.(ScoreboardModel).IsGoingBack() {
		t.Error("esc should go back")
	}
}
