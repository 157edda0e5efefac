// component/render.go
package component

import "image/color"

// Renderable — компонент для отрисовки
type Renderable struct {
	Color  color.RGBA
	Radius float32
	Scale  float64 // 1 — исходный размер
	Alpha  float64 // 0..1
}
