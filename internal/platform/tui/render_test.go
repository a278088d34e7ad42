package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/gros-nounours/internal/core"
)

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(20, 3)
	s.DrawTextColor(2, 1, "Bonjour", core.ColorBrightYellow)
	s.DrawText(12, 1, "ok")

	out := RenderScreen(s)
	if !strings.Contains(out, "Bonjour") {
		t.Errorf("rendered output lost the text:\n%s", out)
	}
	if got := strings.Count(out, "\n"); got != 2 {
		t.Errorf("expected 2 line breaks, got %d", got)
	}
}

func TestRenderPlain(t *testing.T) {
	s := core.NewScreen(10, 4)
	s.DrawText(0, 0, "ab")
	s.DrawText(3, 1, "cd")

	got := RenderPlain(s)
	want := "ab\n   cd\n"
	if got != want {
		t.Errorf("RenderPlain() = %q, expected %q", got, want)
	}
}

func TestStyleForUnknownColor(t *testing.T) {
	if styleFor(core.Color(200)).Render("x") != "x" {
		t.Error("unknown colours should render unstyled")
	}
}

func TestEveryColorHasStyle(t *testing.T) {
	for c := core.ColorDefault; c < core.ColorCount; c++ {
		if _, ok := colorStyles[c]; !ok {
			t.Errorf("color %d has no style", c)
		}
	}
}
