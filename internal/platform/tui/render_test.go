package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/slide-maze/internal/core"
)

func TestRenderScreenKeepsLayout(t *testing.T) {
	s := core.NewScreen(6, 3)
	s.DrawText(0, 0, "ab")
	s.DrawTextColored(2, 0, "cd", core.ColorCyan)
	s.DrawTextColored(0, 2, "@", core.ColorBrightYellow)

	out := RenderScreen(s)

	if n := strings.Count(out, "\n"); n != 2 {
		t.Errorf("newlines = %d, expected 2", n)
	}
	for _, want := range []string{"ab", "cd", "@"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestStyleForUnknownColor(t *testing.T) {
	if got := styleFor(core.Color(200)).Render("x"); got != "x" {
		t.Errorf("unknown color rendered %q, expected plain text", got)
	}
}

func TestEveryColorHasStyle(t *testing.T) {
	colors := []core.Color{
		core.ColorDefault, core.ColorRed, core.ColorGreen, core.ColorYellow,
		core.ColorBlue, core.ColorMagenta, core.ColorCyan, core.ColorWhite,
		core.ColorBrightYellow, core.ColorBrightCyan, core.ColorOrange,
		core.ColorGray, core.ColorDim,
	}
	for _, c := range colors {
		if _, ok := colorStyles[c]; !ok {
			t.Errorf("color %d has no style", c)
		}
	}
}
