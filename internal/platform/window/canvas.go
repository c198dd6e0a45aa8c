package window

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/vovakirdan/ballsort/internal/core"
)

var (
	whiteImage    = ebiten.NewImage(3, 3)
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
)

func init() {
	whiteImage.Fill(palette[core.ColorBrightWhite])
}

// faces holds the two font sizes the game draws with.
type faces struct {
	regular *text.GoTextFace
	small   *text.GoTextFace
}

func loadFaces(size, small float64) (faces, error) {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return faces{}, fmt.Errorf("window: cannot load font: %w", err)
	}
	return faces{
		regular: &text.GoTextFace{Source: src, Size: size},
		small:   &text.GoTextFace{Source: src, Size: small},
	}, nil
}

// vectorCanvas implements core.Canvas on an ebiten image.
type vectorCanvas struct {
	dst   *ebiten.Image
	faces faces
}

func (c *vectorCanvas) Size() (float64, float64) {
	b := c.dst.Bounds()
	return float64(b.Dx()), float64(b.Dy())
}

func (c *vectorCanvas) FillCircle(center core.Point, radius float64, col core.Color) {
	vector.DrawFilledCircle(c.dst, float32(center.X), float32(center.Y), float32(radius), rgba(col), true)
}

func (c *vectorCanvas) StrokeCircle(center core.Point, radius float64, col core.Color) {
	vector.StrokeCircle(c.dst, float32(center.X), float32(center.Y), float32(radius), 1, rgba(col), true)
}

func (c *vectorCanvas) RoundedRect(x, y, w, h, radius float64, col core.Color, outline float64) {
	path := roundedRectPath(float32(x), float32(y), float32(w), float32(h), float32(radius))

	var vs []ebiten.Vertex
	var is []uint16
	if outline > 0 {
		vs, is = path.AppendVerticesAndIndicesForStroke(nil, nil, &vector.StrokeOptions{
			Width:    float32(outline),
			LineJoin: vector.LineJoinRound,
		})
	} else {
		vs, is = path.AppendVerticesAndIndicesForFilling(nil, nil)
	}
	drawVertices(c.dst, vs, is, rgba(col))
}

func (c *vectorCanvas) Text(s string, p core.Point, style core.TextStyle) {
	face := c.faces.regular
	if style.Size == core.TextSmall {
		face = c.faces.small
	}

	op := &text.DrawOptions{}
	op.GeoM.Translate(p.X, p.Y)
	op.ColorScale.ScaleWithColor(rgba(style.Color))
	op.PrimaryAlign = primaryAlign(style.Align)
	text.Draw(c.dst, s, face, op)
}

func (c *vectorCanvas) Dim() {
	w, h := c.Size()
	vector.DrawFilledRect(c.dst, 0, 0, float32(w), float32(h), dimColor, false)
}

func primaryAlign(a core.TextAlign) text.Align {
	switch a {
	case core.AlignCenter:
		return text.AlignCenter
	case core.AlignRight:
		return text.AlignEnd
	default:
		return text.AlignStart
	}
}

// roundedRectPath outlines a rectangle with corners of radius r, clamped
// to half the shorter side.
func roundedRectPath(x, y, w, h, r float32) *vector.Path {
	r = float32(math.Min(float64(r), math.Min(float64(w), float64(h))/2))

	var path vector.Path
	path.MoveTo(x+r, y)
	path.LineTo(x+w-r, y)
	path.Arc(x+w-r, y+r, r, -math.Pi/2, 0, vector.Clockwise)
	path.LineTo(x+w, y+h-r)
	path.Arc(x+w-r, y+h-r, r, 0, math.Pi/2, vector.Clockwise)
	path.LineTo(x+r, y+h)
	path.Arc(x+r, y+h-r, r, math.Pi/2, math.Pi, vector.Clockwise)
	path.LineTo(x, y+r)
	path.Arc(x+r, y+r, r, math.Pi, 3*math.Pi/2, vector.Clockwise)
	path.Close()
	return &path
}

func drawVertices(dst *ebiten.Image, vs []ebiten.Vertex, is []uint16, col color.RGBA) {
	r, g, b, a := float32(col.R)/0xff, float32(col.G)/0xff, float32(col.B)/0xff, float32(col.A)/0xff
	for i := range vs {
		vs[i].SrcX = 1
		vs[i].SrcY = 1
		vs[i].ColorR = r
		vs[i].ColorG = g
		vs[i].ColorB = b
		vs[i].ColorA = a
	}

	op := &ebiten.DrawTrianglesOptions{}
	op.AntiAlias = true
	dst.DrawTriangles(vs, is, whiteSubImage, op)
}
