package render

import (
	"image"
	"image/color"
	"math"

	"go-spin-wheel/pkg/render/paint"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// FaceSource hands out font faces by pixel size.
type FaceSource interface {
	Face(size float64) font.Face
}

// Canvas is a small 2D drawing surface on top of an ebiten.Image with a
// save/restore transform stack. Angles are radians, clockwise from +x.
type Canvas struct {
	target   *ebiten.Image
	faces    FaceSource
	geo      ebiten.GeoM
	stack    []ebiten.GeoM
	whiteImg *ebiten.Image
	vs       []ebiten.Vertex
	is       []uint16
}

// NewCanvas wraps target. faces may be nil if no text is drawn.
func NewCanvas(target *ebiten.Image, faces FaceSource) *Canvas {
	return &Canvas{
		target: target,
		faces:  faces,
		vs:     make([]ebiten.Vertex, 0, 256),
		is:     make([]uint16, 0, 384),
	}
}

// SetTarget points the canvas at another image, e.g. this frame's screen.
func (c *Canvas) SetTarget(target *ebiten.Image) {
	c.target = target
}

// Clear wipes the target and resets the transform.
func (c *Canvas) Clear() {
	c.target.Clear()
	c.geo.Reset()
	c.stack = c.stack[:0]
}

func (c *Canvas) Save() {
	c.stack = append(c.stack, c.geo)
}

func (c *Canvas) Restore() {
	if len(c.stack) == 0 {
		return
	}
	c.geo = c.stack[len(c.stack)-1]
	c.stack = c.stack[:len(c.stack)-1]
}

// Translate moves the origin; like a 2D context it applies before the
// current transform.
func (c *Canvas) Translate(x, y float64) {
	var t ebiten.GeoM
	t.Translate(x, y)
	t.Concat(c.geo)
	c.geo = t
}

func (c *Canvas) Rotate(rad float64) {
	var t ebiten.GeoM
	t.Rotate(rad)
	t.Concat(c.geo)
	c.geo = t
}

// Apply maps a local point through the current transform.
func (c *Canvas) Apply(x, y float64) (float64, float64) {
	return c.geo.Apply(x, y)
}

func (c *Canvas) FillCircle(cx, cy, r float64, clr color.Color) {
	var path vector.Path
	path.Arc(float32(cx), float32(cy), float32(r), 0, 2*math.Pi, vector.Clockwise)
	path.Close()
	c.fill(&path, clr)
}

func (c *Canvas) StrokeCircle(cx, cy, r, width float64, clr color.Color) {
	var path vector.Path
	path.Arc(float32(cx), float32(cy), float32(r), 0, 2*math.Pi, vector.Clockwise)
	path.Close()
	c.stroke(&path, width, clr)
}

// FillSlice fills the sector from start to end (clockwise) around (cx, cy).
func (c *Canvas) FillSlice(cx, cy, r, start, end float64, clr color.Color) {
	path := slicePath(cx, cy, r, start, end)
	c.fill(&path, clr)
}

func (c *Canvas) StrokeSlice(cx, cy, r, start, end, width float64, clr color.Color) {
	path := slicePath(cx, cy, r, start, end)
	c.stroke(&path, width, clr)
}

// FillPolygon fills the closed polygon through pts.
func (c *Canvas) FillPolygon(pts [][2]float64, clr color.Color) {
	if len(pts) < 3 {
		return
	}
	var path vector.Path
	path.MoveTo(float32(pts[0][0]), float32(pts[0][1]))
	for _, p := range pts[1:] {
		path.LineTo(float32(p[0]), float32(p[1]))
	}
	path.Close()
	c.fill(&path, clr)
}

func slicePath(cx, cy, r, start, end float64) vector.Path {
	var path vector.Path
	path.MoveTo(float32(cx), float32(cy))
	path.Arc(float32(cx), float32(cy), float32(r), float32(start), float32(end), vector.Clockwise)
	path.Close()
	return path
}

// FillText draws s anchored at (x, y) in local coordinates.
func (c *Canvas) FillText(s string, x, y float64, st paint.TextStyle) {
	if c.faces == nil || s == "" {
		return
	}
	face := c.faces.Face(st.Size)
	b := text.BoundString(face, s)

	x0 := x
	switch st.Align {
	case paint.AlignCenter:
		x0 = x - float64(b.Min.X+b.Max.X)/2
	case paint.AlignRight:
		x0 = x - float64(b.Max.X)
	}
	y0 := y - float64(b.Min.Y+b.Max.Y)/2

	if st.Shadow != nil {
		op := &ebiten.DrawImageOptions{Filter: ebiten.FilterLinear}
		op.GeoM.Translate(x0, y0)
		op.GeoM.Concat(c.geo)
		op.GeoM.Translate(st.Shadow.OffsetX, st.Shadow.OffsetY)
		op.ColorScale.ScaleWithColor(st.Shadow.Color)
		text.DrawWithOptions(c.target, s, face, op)
	}

	op := &ebiten.DrawImageOptions{Filter: ebiten.FilterLinear}
	op.GeoM.Translate(x0, y0)
	op.GeoM.Concat(c.geo)
	op.ColorScale.ScaleWithColor(st.Color)
	text.DrawWithOptions(c.target, s, face, op)
}

func (c *Canvas) fill(path *vector.Path, clr color.Color) {
	c.vs, c.is = path.AppendVerticesAndIndicesForFilling(c.vs[:0], c.is[:0])
	c.draw(clr)
}

func (c *Canvas) stroke(path *vector.Path, width float64, clr color.Color) {
	c.vs, c.is = path.AppendVerticesAndIndicesForStroke(c.vs[:0], c.is[:0], &vector.StrokeOptions{
		Width:    float32(width),
		LineJoin: vector.LineJoinRound,
	})
	c.draw(clr)
}

func (c *Canvas) draw(clr color.Color) {
	if c.whiteImg == nil {
		img := ebiten.NewImage(3, 3)
		img.Fill(color.White)
		c.whiteImg = img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	}

	r, g, b, a := clr.RGBA()
	for i := range c.vs {
		x, y := c.geo.Apply(float64(c.vs[i].DstX), float64(c.vs[i].DstY))
		c.vs[i].DstX = float32(x)
		c.vs[i].DstY = float32(y)
		c.vs[i].SrcX = 1
		c.vs[i].SrcY = 1
		c.vs[i].ColorR = float32(r) / 0xffff
		c.vs[i].ColorG = float32(g) / 0xffff
		c.vs[i].ColorB = float32(b) / 0xffff
		c.vs[i].ColorA = float32(a) / 0xffff
	}
	c.target.DrawTriangles(c.vs, c.is, c.whiteImg, &ebiten.DrawTrianglesOptions{
		AntiAlias:      true,
		ColorScaleMode: ebiten.ColorScaleModePremultipliedAlpha,
	})
}
