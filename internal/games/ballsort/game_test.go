package ballsort

import (
	"strings"
	"testing"

	"github.com/vovakirdan/ballsort/internal/core"
	bcore "github.com/vovakirdan/ballsort/internal/games/ballsort/core"
	"github.com/vovakirdan/ballsort/internal/i18n"
	"github.com/vovakirdan/ballsort/internal/registry"
)

type fakeAudio struct {
	played       []core.Sound
	music, sound bool
}

func newFakeAudio() *fakeAudio {
	return &fakeAudio{music: true, sound: true}
}

func (a *fakeAudio) Play(s core.Sound)  { a.played = append(a.played, s) }
func (a *fakeAudio) ToggleMusic()       { a.music = !a.music }
func (a *fakeAudio) ToggleSound()       { a.sound = !a.sound }
func (a *fakeAudio) MusicEnabled() bool { return a.music }
func (a *fakeAudio) SoundEnabled() bool { return a.sound }

func (a *fakeAudio) count(s core.Sound) int {
	n := 0
	for _, p := range a.played {
		if p == s {
			n++
		}
	}
	return n
}

// newTestGame returns a game reset on an 80x24 terminal with a fixed seed.
// HOME is redirected so no user config leaks in.
func newTestGame(t *testing.T) (*Game, *fakeAudio) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())

	audio := newFakeAudio()
	g := New(audio, nil)
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 42})
	return g, audio
}

// setTubes replaces the dealt level with fixed contents.
func setTubes(g *Game, contents ...string) {
	tubes := make([]*bcore.Tube, len(contents))
	for i, s := range contents {
		items := make([]bcore.Color, 0, len(s))
		for _, r := range s {
			items = append(items, bcore.Color(r-'A'))
		}
		o := g.layout.board.Origin(i)
		tubes[i] = bcore.NewTube(o.X, o.Y, g.layout.board.Geometry, items...)
	}
	g.puzzle = bcore.NewPuzzle(tubes, g.cfg.Animation.Step, g.audio)
}

func tubeCenter(g *Game, i int) core.Point {
	t := g.puzzle.Tube(i)
	geom := t.Geometry()
	return core.Pt(t.X+geom.TubeWidth/2, t.Y+geom.TubeHeight/2)
}

func stepUntilIdle(g *Game) (solvedTicks int) {
	for i := 0; i < 1000 && g.puzzle.Transfer().Active(); i++ {
		if g.Step(core.NewInputFrame()).JustSolved {
			solvedTicks++
		}
	}
	return solvedTicks
}

func TestGameRegistered(t *testing.T) {
	if !registry.Exists(ID) {
		t.Fatalf("%q should be registered", ID)
	}
	g, err := registry.Create(ID, registry.Services{})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if g.ID() != ID {
		t.Errorf("ID() = %q, expected %q", g.ID(), ID)
	}
	if g.Title() != "Ball Sort" {
		t.Errorf("Title() = %q, expected %q", g.Title(), "Ball Sort")
	}
}

func TestResetDealsReproducibleLevel(t *testing.T) {
	g1, _ := newTestGame(t)
	g2, _ := newTestGame(t)

	p := g1.Puzzle()
	if p.TotalItems() != bcore.TotalBalls {
		t.Errorf("TotalItems() = %d, expected %d", p.TotalItems(), bcore.TotalBalls)
	}
	for i := range p.NumTubes() {
		if a, b := p.Tube(i).String(), g2.Puzzle().Tube(i).String(); a != b {
			t.Errorf("tube %d: %s vs %s with the same seed", i, a, b)
		}
	}

	st := g1.State()
	if st.Moves != 0 || st.Solved || st.Ticks != 0 || st.Seed != 42 {
		t.Errorf("State() after Reset = %+v", st)
	}
}

func TestClickMovesBall(t *testing.T) {
	g, audio := newTestGame(t)
	top, _ := g.puzzle.Tube(0).Top()

	in := core.NewInputFrame()
	in.Click(tubeCenter(g, 0))
	in.Click(tubeCenter(g, 4))
	g.Step(in)

	if !g.puzzle.Transfer().Active() {
		t.Fatal("two clicks should start a transfer")
	}
	stepUntilIdle(g)

	if got, _ := g.puzzle.Tube(4).Top(); g.puzzle.Tube(4).Len() != 1 || got != top {
		t.Errorf("tube 4 = %s, expected the top of tube 0", g.puzzle.Tube(4))
	}
	if g.State().Moves != 1 {
		t.Errorf("Moves = %d, expected 1", g.State().Moves)
	}
	if audio.count(core.SoundSelect) != 1 || audio.count(core.SoundMove) != 1 {
		t.Errorf("played = %v, expected one select and one move", audio.played)
	}
}

func TestClickMissIsIgnored(t *testing.T) {
	g, audio := newTestGame(t)

	if out := g.HandleClick(core.Pt(0, 0)); out != bcore.OutcomeIgnored {
		t.Errorf("HandleClick() = %v, expected ignored", out)
	}
	if _, ok := g.puzzle.Selected(); ok {
		t.Error("a miss should not select anything")
	}
	if len(audio.played) != 0 {
		t.Errorf("a miss should be silent, played %v", audio.played)
	}
}

func TestInputIgnoredDuringTransfer(t *testing.T) {
	g, _ := newTestGame(t)

	in := core.NewInputFrame()
	in.Pick(0)
	in.Pick(4)
	g.Step(in)
	if !g.puzzle.Transfer().Active() {
		t.Fatal("picks should start a transfer")
	}

	if out := g.HandleClick(tubeCenter(g, 1)); out != bcore.OutcomeIgnored {
		t.Errorf("click during transfer = %v, expected ignored", out)
	}
	if out := g.Pick(1); out != bcore.OutcomeIgnored {
		t.Errorf("pick during transfer = %v, expected ignored", out)
	}
	if g.State().Moves != 1 {
		t.Errorf("Moves = %d, expected 1", g.State().Moves)
	}
}

func TestToggleKeys(t *testing.T) {
	g, audio := newTestGame(t)

	in := core.NewInputFrame()
	in.Set(core.ActionToggleMusic)
	g.Step(in)
	if audio.music {
		t.Error("M should turn music off")
	}

	in = core.NewInputFrame()
	in.Set(core.ActionToggleSound)
	g.Step(in)
	if audio.sound {
		t.Error("S should turn sound off")
	}

	s := core.NewScreen(80, 24)
	g.Render(s)
	if row := s.Row(0); !strings.Contains(row, "Music: OFF") {
		t.Errorf("HUD row 0 = %q, expected music status", row)
	}
	if row := s.Row(1); !strings.Contains(row, "Sound: OFF") {
		t.Errorf("HUD row 1 = %q, expected sound status", row)
	}
}

func TestRestartDealsNewLevel(t *testing.T) {
	g, _ := newTestGame(t)
	g.Pick(0)
	g.Pick(4)
	firstSeed := g.State().Seed

	in := core.NewInputFrame()
	in.Set(core.ActionRestart)
	g.Step(in)

	st := g.State()
	if st.Moves != 0 {
		t.Errorf("Moves after restart = %d, expected 0", st.Moves)
	}
	if st.Seed == firstSeed {
		t.Error("restart should deal from a new seed")
	}
	if g.puzzle.Transfer().Active() {
		t.Error("restart should cancel the ball in flight")
	}
	if g.puzzle.TotalItems() != bcore.TotalBalls {
		t.Errorf("TotalItems() = %d, expected %d", g.puzzle.TotalItems(), bcore.TotalBalls)
	}
}

func TestSolveLatchesOnce(t *testing.T) {
	g, audio := newTestGame(t)
	setTubes(g, "AAA", "A", "BBBB", "CCCC", "DDDD", "")

	g.Pick(1)
	g.Pick(0)
	if solved := stepUntilIdle(g); solved != 1 {
		t.Errorf("JustSolved fired %d times, expected 1", solved)
	}

	st := g.State()
	if !st.Solved {
		t.Fatal("puzzle should be solved")
	}
	frozen := st.Ticks
	for range 30 {
		if g.Step(core.NewInputFrame()).JustSolved {
			t.Error("JustSolved must not repeat")
		}
	}
	if g.State().Ticks != frozen {
		t.Errorf("Ticks moved from %d to %d after solving", frozen, g.State().Ticks)
	}
	if audio.count(core.SoundWin) != 1 {
		t.Errorf("win played %d times, expected 1", audio.count(core.SoundWin))
	}

	s := core.NewScreen(80, 24)
	g.Render(s)
	if !strings.Contains(s.String(), "Level complete!") || !strings.Contains(s.String(), "Press R to restart") {
		t.Errorf("overlay missing:\n%s", s.String())
	}
}

func TestRenderBoard(t *testing.T) {
	g, _ := newTestGame(t)
	s := core.NewScreen(80, 24)
	g.Render(s)

	if row := s.Row(0); !strings.Contains(row, "Moves: 0") {
		t.Errorf("row 0 = %q, expected move counter", row)
	}

	t0 := g.puzzle.Tube(0)
	x, y := int(t0.X), int(t0.Y)
	if s.Get(x, y) != '╭' {
		t.Errorf("tube 0 corner at (%d, %d) = %q:\n%s", x, y, s.Get(x, y), s.String())
	}

	// Bottom ball of tube 0, drawn in its display color
	bottom := t0.Items()[0]
	bx, by := t0.ItemPosition(0).Cell()
	if cell := s.GetCell(bx, by); cell.Rune != '█' || cell.Color != BallColor(bottom) {
		t.Errorf("bottom ball cell = %+v, expected %v block", cell, BallColor(bottom))
	}

	// Tube numbers sit right under each tube
	labelY := y + int(t0.Geometry().TubeHeight)
	if !strings.Contains(s.Row(labelY), "1") || !strings.Contains(s.Row(labelY), "6") {
		t.Errorf("label row = %q", s.Row(labelY))
	}
}

func TestRenderHidesMovingBall(t *testing.T) {
	g, _ := newTestGame(t)
	setTubes(g, "AB", "", "", "", "", "")

	g.Pick(0)
	g.Pick(1)

	s := core.NewScreen(80, 24)
	g.Render(s)

	t0 := g.puzzle.Tube(0)
	x, y := t0.ItemPosition(1).Cell()
	// The ball in flight starts exactly where the hidden top ball was
	if cell := s.GetCell(x, y); cell.Color != BallColor(bcore.ColorB) {
		t.Errorf("in-flight ball missing at start: %+v", cell)
	}

	for range 10 {
		g.Step(core.NewInputFrame())
	}
	s.Clear()
	g.Render(s)
	if cell := s.GetCell(x, y); cell.Rune == '█' {
		t.Errorf("source top slot should be empty mid-flight, got %+v", cell)
	}
}

func TestTooSmallTerminal(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	g := New(nil, nil)
	g.Reset(core.RuntimeConfig{ScreenW: 40, ScreenH: 10, Seed: 1})

	s := core.NewScreen(40, 10)
	g.Render(s)
	if !strings.Contains(s.String(), "Terminal too small") {
		t.Errorf("expected size warning:\n%s", s.String())
	}
	if out := g.Pick(0); out != bcore.OutcomeIgnored {
		t.Errorf("Pick() on a tiny terminal = %v, expected ignored", out)
	}
}

func TestWindowLayout(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	g := New(nil, nil)
	g.Reset(core.RuntimeConfig{ScreenW: 800, ScreenH: 600, Pixels: true, Seed: 1})

	tests := []struct {
		tube int
		x, y float64
	}{
		{0, 100, 250},
		{1, 220, 250},
		{5, 700, 250},
	}
	for _, tc := range tests {
		tube := g.puzzle.Tube(tc.tube)
		if tube.X != tc.x || tube.Y != tc.y {
			t.Errorf("tube %d at (%v, %v), expected (%v, %v)", tc.tube, tube.X, tube.Y, tc.x, tc.y)
		}
	}

	// Pixel clicks resolve to tubes
	if i, ok := g.puzzle.TubeAt(260, 300); !ok || i != 1 {
		t.Errorf("TubeAt(260, 300) = (%d, %v), expected (1, true)", i, ok)
	}
}

func TestLocalizedHUD(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	g := New(nil, i18n.MustLoad("ru"))
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, Seed: 1})

	if g.Title() != "Сортировка колб" {
		t.Errorf("Title() = %q", g.Title())
	}
	s := core.NewScreen(80, 24)
	g.Render(s)
	if row := s.Row(0); !strings.Contains(row, "Ходы: 0") {
		t.Errorf("row 0 = %q, expected localized move counter", row)
	}
}

func TestResizeKeepsPuzzle(t *testing.T) {
	g, _ := newTestGame(t)
	before := g.puzzle.Tube(0).String()

	in := core.NewInputFrame()
	in.Pick(0)
	in.Pick(4)
	g.Step(in)
	stepUntilIdle(g)

	g.Resize(100, 30)

	if g.State().Moves != 1 {
		t.Errorf("Moves after Resize = %d, expected 1", g.State().Moves)
	}
	if got := g.puzzle.Tube(0).String(); got == before {
		t.Errorf("tube 0 = %s, expected one ball less than %s", got, before)
	}
	if g.puzzle.Tube(0).X != 18 {
		t.Errorf("tube 0 X = %v, expected 18 on a 100-column terminal", g.puzzle.Tube(0).X)
	}
	if g.puzzle.Tube(0).Y != 9 {
		t.Errorf("tube 0 Y = %v, expected 9 on a 30-row terminal", g.puzzle.Tube(0).Y)
	}
}
