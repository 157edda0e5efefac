package render

import (
	"math"
	"testing"
)

func near(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestCanvasTransformOrder(t *testing.T) {
	c := NewCanvas(nil, nil)
	c.Translate(300, 300)
	c.Rotate(math.Pi / 2)

	// Поворот применяется раньше переноса, как у 2D-контекста.
	x, y := c.Apply(100, 0)
	if !near(x, 300) || !near(y, 400) {
		t.Errorf("got (%v, %v), want (300, 400)", x, y)
	}
}

func TestCanvasSaveRestore(t *testing.T) {
	c := NewCanvas(nil, nil)
	c.Translate(10, 20)
	c.Save()
	c.Rotate(math.Pi)
	c.Translate(5, 5)
	c.Restore()

	x, y := c.Apply(1, 1)
	if !near(x, 11) || !near(y, 21) {
		t.Errorf("got (%v, %v), want (11, 21)", x, y)
	}

	// Лишний Restore не ломает состояние.
	c.Restore()
	c.Restore()
	x, y = c.Apply(0, 0)
	if !near(x, 10) || !near(y, 20) {
		t.Errorf("got (%v, %v) after extra restores", x, y)
	}
}
