package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-shooter/internal/storage"
)

func TestShortRunID(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"", "-"},
		{"legacy", "legacy"},
		{"0b1e2c3d-aaaa-bbbb-cccc-dddddddddddd", "0b1e2c3d"},
	}
	for _, tt := range tests {
		if got := shortRunID(tt.in); got != tt.want {
			t.Errorf("shortRunID(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestScoreboardShowsRunsAndStats(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer store.Close()

	for i, score := range []int{120, 300} {
		if _, err := store.SaveRun("shooter", []string{"aaaa-1", "bbbb-2"}[i], score); err != nil {
			t.Fatalf("save run: %v", err)
		}
	}
	if err := store.SaveBest("shooter", 300); err != nil {
		t.Fatalf("save best: %v", err)
	}

	m := NewScoreboardModel(store, 80, 24)
	if m.Mode() != "shooter" {
		t.Fatalf("first mode = %q, want shooter", m.Mode())
	}
	view := m.View()
	for _, want := range []string{"HIGH SCORES", "300", "bbbb", "Best 300", "2 runs", "avg 210"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q:\n%s", want, view)
		}
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(ScoreboardModel)
	if m.Mode() != "shooter_arcade" {
		t.Fatalf("after tab mode = %q, want shooter_arcade", m.Mode())
	}
	if !strings.Contains(m.View(), "No runs recorded yet") {
		t.Errorf("arcade board should be empty")
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	if next.(ScoreboardModel).Mode() != "shooter" {
		t.Errorf("mode cursor should wrap")
	}
}

func TestScoreboardQuit(t *testing.T) {
	m := NewScoreboardModel(nil, 80, 24)
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Fatal("quit should return a command")
	}
	if next.(ScoreboardModel).View() != "" {
		t.Errorf("closed scoreboard should render nothing")
	}
}
