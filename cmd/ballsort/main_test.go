package main

import (
	"path/filepath"
	"testing"

	"github.com/vovakirdan/ballsort/internal/games/ballsort"
	"github.com/vovakirdan/ballsort/internal/storage"
)

func TestPort(t *testing.T) {
	tests := []struct {
		addr     string
		expected string
	}{
		{":23234", "23234"},
		{"localhost:2222", "2222"},
		{"[::1]:22", "22"},
		{"noport", "noport"},
	}

	for _, tt := range tests {
		if got := port(tt.addr); got != tt.expected {
			t.Errorf("port(%q) = %q, expected %q", tt.addr, got, tt.expected)
		}
	}
}

func TestFormatTicks(t *testing.T) {
	tests := []struct {
		ticks    uint64
		rate     int
		expected string
	}{
		{120, 60, "2.0s"},
		{45, 30, "1.5s"},
		{60, 0, "1.0s"},
	}

	for _, tt := range tests {
		if got := formatTicks(tt.ticks, tt.rate); got != tt.expected {
			t.Errorf("formatTicks(%d, %d) = %q, expected %q", tt.ticks, tt.rate, got, tt.expected)
		}
	}
}

func TestSubcommandsRegistered(t *testing.T) {
	for _, name := range []string{"play", "window", "serve", "scores"} {
		cmd, _, err := rootCmd.Find([]string{name})
		if err != nil || cmd.Name() != name {
			t.Errorf("rootCmd.Find(%q) = %v, %v", name, cmd, err)
		}
	}
}

func TestListSolves(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "records.db"))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer store.Close()

	for _, s := range []storage.Solve{
		{GameID: ballsort.ID, SessionID: "a", Moves: 30, Seed: 1},
		{GameID: ballsort.ID, SessionID: "b", Moves: 20, Seed: 2},
		{GameID: ballsort.ID, SessionID: "a", Moves: 25, Seed: 3},
	} {
		if _, err := store.SaveSolve(s); err != nil {
			t.Fatalf("SaveSolve() error = %v", err)
		}
	}

	defer func() { flagScoresSession, flagScoresRecent, flagScoresLimit = "", false, 10 }()

	tests := []struct {
		session  string
		recent   bool
		heading  string
		expected []int64 // Seeds in listing order
	}{
		{"", false, "Best Solves", []int64{2, 3, 1}},
		{"", true, "Recent Solves", []int64{3, 2, 1}},
		{"a", false, "Session a", []int64{1, 3}},
	}

	for _, tt := range tests {
		flagScoresSession, flagScoresRecent, flagScoresLimit = tt.session, tt.recent, 10

		solves, heading, err := listSolves(store)
		if err != nil {
			t.Fatalf("listSolves() error = %v", err)
		}
		if heading != tt.heading {
			t.Errorf("heading = %q, expected %q", heading, tt.heading)
		}
		if len(solves) != len(tt.expected) {
			t.Fatalf("%s: got %d solves, expected %d", tt.heading, len(solves), len(tt.expected))
		}
		for i, s := range solves {
			if s.Seed != tt.expected[i] {
				t.Errorf("%s: solve %d seed = %d, expected %d", tt.heading, i, s.Seed, tt.expected[i])
			}
		}
	}
}
