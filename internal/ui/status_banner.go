package ui

import (
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
)

// StatusBanner is the one-line message under the wheel. A highlighted
// message pops in and settles, like the indicator widgets do on click.
type StatusBanner struct {
	X, Y        float64 // центр строки
	Text        string
	Color       color.Color
	Highlighted bool
	changedAt   time.Duration
	fontFace    font.Face
}

func NewStatusBanner(x, y float64, fontFace font.Face) *StatusBanner {
	return &StatusBanner{
		X:        x,
		Y:        y,
		Color:    color.White,
		fontFace: fontFace,
	}
}

// Set replaces the message; now is the app clock time.
func (b *StatusBanner) Set(msg string, clr color.Color, highlighted bool, now time.Duration) {
	b.Text = msg
	b.Color = clr
	b.Highlighted = highlighted
	b.changedAt = now
}

// Scale returns the current pop-in scale of the message.
func (b *StatusBanner) Scale(now time.Duration) float64 {
	if !b.Highlighted {
		return 1
	}
	elapsed := (now - b.changedAt).Seconds()
	if elapsed < 0 {
		elapsed = 0
	}
	return 1.0 + 0.3*math.Exp(-elapsed*8)
}

// Draw отрисовывает сообщение по центру
func (b *StatusBanner) Draw(screen *ebiten.Image, now time.Duration) {
	if b.fontFace == nil || b.Text == "" {
		return
	}
	bounds := text.BoundString(b.fontFace, b.Text)
	scale := b.Scale(now)

	op := &ebiten.DrawImageOptions{Filter: ebiten.FilterLinear}
	op.GeoM.Translate(-float64(bounds.Min.X+bounds.Max.X)/2, -float64(bounds.Min.Y+bounds.Max.Y)/2)
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(b.X, b.Y)
	op.ColorScale.ScaleWithColor(b.Color)
	text.DrawWithOptions(screen, b.Text, b.fontFace, op)
}
