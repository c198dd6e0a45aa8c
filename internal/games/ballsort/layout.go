package ballsort

import (
	"math"

	"github.com/vovakirdan/ballsort/internal/config"
	"github.com/vovakirdan/ballsort/internal/core"
	bcore "github.com/vovakirdan/ballsort/internal/games/ballsort/core"
)

// Terminal chrome around the board, in rows.
const (
	hudRows   = 2
	labelRows = 1
)

// layout positions the board, HUD and overlay for one frontend.
type layout struct {
	board    bcore.Layout
	width    float64
	height   float64
	labelGap float64 // Space between a tube's bottom and its number

	hudLeft     float64
	hudTop      float64
	hudLine     float64 // Distance between the two status lines
	statusX     float64
	statusAlign core.TextAlign

	overlayTitle float64 // Offsets of the overlay lines from mid-screen
	overlayHint  float64

	tooSmall   bool
	minW, minH int
}

func geometry(l config.TubeLayout) bcore.Geometry {
	return bcore.Geometry{
		TubeWidth:    l.TubeWidth,
		TubeHeight:   l.TubeHeight,
		ItemRadius:   l.ItemRadius,
		ItemSpacing:  l.ItemSpacing,
		CornerRadius: l.CornerRadius,
	}
}

func computeLayout(cfg config.BallSortConfig, rt core.RuntimeConfig) layout {
	if rt.Pixels {
		return windowLayout(cfg.Window)
	}
	return terminalLayout(cfg.Terminal, rt.ScreenW, rt.ScreenH)
}

// windowLayout uses fixed pixel positions.
func windowLayout(w config.WindowConfig) layout {
	return layout{
		board: bcore.Layout{
			Geometry: geometry(w.Layout),
			Left:     w.Left,
			Top:      w.Top,
			Gap:      w.Layout.Gap,
		},
		width:        float64(w.Width),
		height:       float64(w.Height),
		labelGap:     8,
		hudLeft:      20,
		hudTop:       20,
		hudLine:      30,
		statusX:      float64(w.Width) - 150,
		statusAlign:  core.AlignLeft,
		overlayTitle: -30,
		overlayHint:  10,
	}
}

// terminalLayout centers the board below the HUD.
func terminalLayout(t config.TubeLayout, screenW, screenH int) layout {
	board := bcore.Layout{Geometry: geometry(t), Gap: t.Gap}

	boardW := board.Width(bcore.NumTubes)
	minW := int(math.Ceil(boardW)) + 2
	minH := hudRows + int(math.Ceil(t.TubeHeight)) + labelRows + 1

	board.Left = math.Floor((float64(screenW) - boardW) / 2)
	spare := float64(screenH-hudRows-labelRows) - t.TubeHeight
	board.Top = hudRows + math.Max(0, math.Floor(spare/2))

	return layout{
		board:        board,
		width:        float64(screenW),
		height:       float64(screenH),
		labelGap:     0,
		hudLeft:      1,
		hudTop:       0,
		hudLine:      1,
		statusX:      float64(screenW) - 1,
		statusAlign:  core.AlignRight,
		overlayTitle: -1,
		overlayHint:  1,
		tooSmall:     screenW < minW || screenH < minH,
		minW:         minW,
		minH:         minH,
	}
}
