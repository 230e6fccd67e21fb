package tui

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-zoo/internal/core"
	"github.com/vovakirdan/tui-zoo/internal/registry"
	"github.com/vovakirdan/tui-zoo/internal/storage"
)

func init() {
	registry.Register("fake", func() registry.Game { return &fakeGame{} })
	registry.Register("fake_endless", func() registry.Game { return &fakeGame{endless: true} })
}

func menuItem(t *testing.T, m MenuModel, id string) MenuItem {
	t.Helper()
	for _, it := range m.items {
		if it.GameID == id {
			return it
		}
	}
	t.Fatalf("menu has no item %q", id)
	return MenuItem{}
}

func TestMenuPlayerBest(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("storage.Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	for _, r := range []storage.Result{
		{GameID: "fake", Player: "ada", Score: 120},
		{GameID: "fake", Player: "bob", Score: 300},
		{GameID: "fake_endless", Player: "ada", Score: 40},
	} {
		if _, err := store.SaveResult(r); err != nil {
			t.Fatalf("SaveResult() failed: %v", err)
		}
	}

	cfg := core.RuntimeConfig{ScreenW: 80, ScreenH: 24}
	m := NewMenuModel(store, cfg)
	if got := menuItem(t, m, "fake"); got.Best != 300 || got.Mine != 0 {
		t.Errorf("anonymous menu item = %+v, expected best 300 and no personal best", got)
	}

	m = m.WithPlayer("ada")
	tests := []struct {
		id         string
		best, mine int
	}{
		{"fake", 300, 120},
		{"fake_endless", 40, 40},
	}
	for _, tt := range tests {
		got := menuItem(t, m, tt.id)
		if got.Best != tt.best || got.Mine != tt.mine {
			t.Errorf("%s: best %d mine %d, expected %d and %d", tt.id, got.Best, got.Mine, tt.best, tt.mine)
		}
	}

	view := m.View()
	for _, want := range []string{"Playing as ada", "you 120"} {
		if !strings.Contains(view, want) {
			t.Errorf("View() missing %q", want)
		}
	}

	if got := menuItem(t, m.WithPlayer("cy"), "fake"); got.Mine != 0 {
		t.Errorf("player without rounds has best %d", got.Mine)
	}
}

func TestMenuWithoutStore(t *testing.T) {
	m := NewMenuModel(nil, core.RuntimeConfig{ScreenW: 80, ScreenH: 24}).WithPlayer("ada")
	if got := menuItem(t, m, "fake"); got.Best != 0 || got.Mine != 0 {
		t.Errorf("menu without store = %+v", got)
	}
	if !strings.Contains(m.View(), "Playing as ada") {
		t.Error("View() should name the player")
	}
}
