package ui

import (
	"image/color"

	"go-spin-wheel/pkg/render"
)

// Pointer — треугольник над колесом, остриём к центру.
type Pointer struct {
	X, Y          float64 // остриё
	Width, Height float64
	Color         color.Color
}

func NewPointer(x, y, width, height float64, clr color.Color) *Pointer {
	return &Pointer{X: x, Y: y, Width: width, Height: height, Color: clr}
}

// Points returns the triangle corners, tip first.
func (p *Pointer) Points() [][2]float64 {
	return [][2]float64{
		{p.X, p.Y},
		{p.X + p.Width/2, p.Y - p.Height},
		{p.X - p.Width/2, p.Y - p.Height},
	}
}

func (p *Pointer) Draw(c *render.Canvas) {
	c.FillPolygon(p.Points(), p.Color)
}
