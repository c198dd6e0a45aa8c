package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/ballsort/internal/core"
	"github.com/vovakirdan/ballsort/internal/i18n"
)

func TestEveryColorHasStyle(t *testing.T) {
	for c := core.ColorDefault; c <= core.ColorDarkYellow; c++ {
		if _, ok := colorStyles[c]; !ok {
			t.Errorf("color %d has no style", c)
		}
	}
}

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(12, 2)
	s.DrawTextColored(0, 0, "Moves: 3", core.ColorBrightRed)
	s.DrawText(0, 1, "ok")

	out := RenderScreen(s)
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("RenderScreen() has %d lines, expected 2", len(lines))
	}
	if !strings.Contains(lines[0], "Moves: 3") {
		t.Errorf("line 0 = %q, expected it to contain %q", lines[0], "Moves: 3")
	}
	if !strings.Contains(lines[1], "ok") {
		t.Errorf("line 1 = %q, expected it to contain %q", lines[1], "ok")
	}
}

func TestSessionLocale(t *testing.T) {
	tests := []struct {
		name     string
		environ  []string
		expected string
	}{
		{"no env", nil, "en"},
		{"lang", []string{"TERM=xterm", "LANG=ru_RU.UTF-8"}, "ru_RU.UTF-8"},
		{"lc_all wins", []string{"LANG=en_US.UTF-8", "LC_ALL=ru_RU.UTF-8"}, "ru_RU.UTF-8"},
		{"posix ignored", []string{"LANG=C"}, "en"},
		{"empty ignored", []string{"LANG="}, "en"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := sessionLocale(tt.environ, "en"); got != tt.expected {
				t.Errorf("sessionLocale() = %q, expected %q", got, tt.expected)
			}
		})
	}
}

func TestSessionCatalog(t *testing.T) {
	tests := []struct {
		environ  []string
		expected string
	}{
		{[]string{"LANG=ru_RU.UTF-8"}, "ru"},
		{[]string{"LANG=de_DE.UTF-8"}, "en"}, // No catalog, falls back
		{nil, "en"},
	}

	for _, tt := range tests {
		c := i18n.MustLoad(sessionLocale(tt.environ, "en"))
		if c.Locale() != tt.expected {
			t.Errorf("catalog for %v = %q, expected %q", tt.environ, c.Locale(), tt.expected)
		}
	}
}
