package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"

	"github.com/vovakirdan/tui-zoo/internal/core"
)

func TestRenderScreenText(t *testing.T) {
	s := core.NewScreen(8, 2)
	s.DrawText(0, 0, "ab")
	s.DrawTextColor(2, 0, "[Pa]", core.ColorBrightYellow)
	s.DrawTextColor(0, 1, "xy", core.ColorGray)

	out := RenderScreen(s)
	lines := strings.Split(ansi.Strip(out), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	if lines[0] != "ab[Pa]  " {
		t.Errorf("line 0 = %q", lines[0])
	}
	if lines[1] != "xy      " {
		t.Errorf("line 1 = %q", lines[1])
	}
}

func TestTickInterval(t *testing.T) {
	tests := []struct {
		rate int
		want string
	}{
		{60, "16.666666ms"},
		{30, "33.333333ms"},
		{0, "16.666666ms"},
	}
	for _, tt := range tests {
		if got := tickInterval(tt.rate).String(); got != tt.want {
			t.Errorf("tickInterval(%d) = %s, expected %s", tt.rate, got, tt.want)
		}
	}
}
