package ballsort

import (
	"strconv"

	"github.com/vovakirdan/ballsort/internal/core"
	bcore "github.com/vovakirdan/ballsort/internal/games/ballsort/core"
)

// Display colors.
const (
	tubeColor     = core.ColorGray
	selectedColor = core.ColorGreen
	hudColor      = core.ColorDefault
	overlayColor  = core.ColorBrightWhite
)

// selectedOutline is the width of the selection border.
const selectedOutline = 3

// ballColors maps symbolic ball colors to display colors.
var ballColors = map[bcore.Color]core.Color{
	bcore.ColorA: core.ColorBrightRed,
	bcore.ColorB: core.ColorBrightGreen,
	bcore.ColorC: core.ColorBrightBlue,
	bcore.ColorD: core.ColorBrightYellow,
}

// BallColor returns the display color of a ball.
func BallColor(c bcore.Color) core.Color {
	if col, ok := ballColors[c]; ok {
		return col
	}
	return core.ColorWhite
}

// Render draws the game into a terminal cell buffer.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	g.Draw(core.NewCellCanvas(dst))
}

// Draw paints tubes, balls, the ball in flight, the HUD and, once the
// puzzle is solved, the completion overlay.
func (g *Game) Draw(c core.Canvas) {
	if g.layout.tooSmall {
		g.drawTooSmall(c)
		return
	}

	p := g.puzzle
	tr := p.Transfer()
	sel, hasSel := p.Selected()

	for i := range p.NumTubes() {
		g.drawTube(c, p.Tube(i), i, hasSel && sel == i, tr)
	}

	// Ball in flight goes over everything else
	if tr.Active() {
		drawBall(c, tr.Position(), g.layout.board.ItemRadius, tr.Color())
	}

	g.drawHUD(c)

	if p.IsComplete() {
		g.drawOverlay(c)
	}
}

func (g *Game) drawTube(c core.Canvas, t *bcore.Tube, index int, selected bool, tr *bcore.Transfer) {
	geom := t.Geometry()

	c.RoundedRect(t.X, t.Y, geom.TubeWidth, geom.TubeHeight, geom.CornerRadius, tubeColor, 0)
	if selected {
		c.RoundedRect(t.X, t.Y, geom.TubeWidth, geom.TubeHeight, geom.CornerRadius, selectedColor, selectedOutline)
	}

	items := t.Items()
	for i, item := range items {
		if i == len(items)-1 && tr.Hides(t) {
			continue
		}
		drawBall(c, t.ItemPosition(i), geom.ItemRadius, item)
	}

	label := core.Pt(t.X+geom.TubeWidth/2, t.Y+geom.TubeHeight+g.layout.labelGap)
	c.Text(strconv.Itoa(index+1), label, core.TextStyle{
		Color: tubeColor,
		Align: core.AlignCenter,
		Size:  core.TextSmall,
	})
}

func drawBall(c core.Canvas, pos core.Point, radius float64, item bcore.Color) {
	col := BallColor(item)
	c.FillCircle(pos, radius, col)
	c.StrokeCircle(pos, radius, col.Outline())
}

func (g *Game) drawHUD(c core.Canvas) {
	l := g.layout

	c.Text(g.text.Get("Moves: %d", g.puzzle.Moves()), core.Pt(l.hudLeft, l.hudTop), core.TextStyle{
		Color: hudColor,
	})

	status := core.TextStyle{Color: hudColor, Align: l.statusAlign, Size: core.TextSmall}
	c.Text(g.text.Get("Music: %s", g.onOff(g.audio.MusicEnabled())), core.Pt(l.statusX, l.hudTop), status)
	c.Text(g.text.Get("Sound: %s", g.onOff(g.audio.SoundEnabled())), core.Pt(l.statusX, l.hudTop+l.hudLine), status)
}

func (g *Game) drawOverlay(c core.Canvas) {
	l := g.layout
	c.Dim()

	midX, midY := l.width/2, l.height/2
	c.Text(g.text.Get("Level complete!"), core.Pt(midX, midY+l.overlayTitle), core.TextStyle{
		Color: overlayColor,
		Align: core.AlignCenter,
	})
	c.Text(g.text.Get("Press R to restart"), core.Pt(midX, midY+l.overlayHint), core.TextStyle{
		Color: overlayColor,
		Align: core.AlignCenter,
		Size:  core.TextSmall,
	})
}

func (g *Game) drawTooSmall(c core.Canvas) {
	l := g.layout
	midX, midY := l.width/2, l.height/2

	c.Text(g.text.Get("Terminal too small"), core.Pt(midX, midY-1), core.TextStyle{
		Color: core.ColorRed,
		Align: core.AlignCenter,
	})
	need := g.text.Get("Need %dx%d, have %dx%d", l.minW, l.minH, int(l.width), int(l.height))
	c.Text(need, core.Pt(midX, midY), core.TextStyle{
		Color: hudColor,
		Align: core.AlignCenter,
	})
}

func (g *Game) onOff(on bool) string {
	if on {
		return g.text.Get("ON")
	}
	return g.text.Get("OFF")
}
