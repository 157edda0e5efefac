// Package wheel draws the participant wheel onto an abstract surface.
package wheel

import (
	"image/color"

	"go-spin-wheel/internal/config"
	"go-spin-wheel/internal/roster"
	"go-spin-wheel/internal/utils"
	"go-spin-wheel/pkg/render/paint"
)

// Surface is the subset of a 2D context the renderer needs. Angles are
// radians, clockwise from +x. The ebiten-backed render.Canvas implements it.
type Surface interface {
	Clear()
	Save()
	Restore()
	Translate(x, y float64)
	Rotate(rad float64)
	FillCircle(cx, cy, r float64, clr color.Color)
	StrokeCircle(cx, cy, r, width float64, clr color.Color)
	FillSlice(cx, cy, r, start, end float64, clr color.Color)
	StrokeSlice(cx, cy, r, start, end, width float64, clr color.Color)
	FillText(s string, x, y float64, st paint.TextStyle)
}

// Style holds the fixed visual constants of the wheel.
type Style struct {
	Size       float64
	Padding    float64
	HubRadius  float64
	LabelInset float64

	SliceStroke float64
	HubStroke   float64
	EmptyStroke float64

	LabelSize float64
	EmptySize float64
	HubSize   float64

	SliceStrokeColor color.Color
	EmptyDiscColor   color.Color
	EmptyStrokeColor color.Color
	EmptyTextColor   color.Color
	HubColor         color.Color
	HubStrokeColor   color.Color
	LabelColor       color.Color
	LabelShadow      paint.Shadow

	EmptyLabel string
	HubLabel   string
}

// DefaultStyle returns the app's wheel style with the given captions.
func DefaultStyle(emptyLabel, hubLabel string) Style {
	return Style{
		Size:             config.WheelSize,
		Padding:          config.WheelPadding,
		HubRadius:        config.HubRadius,
		LabelInset:       config.LabelInset,
		SliceStroke:      config.SliceStroke,
		HubStroke:        config.HubStroke,
		EmptyStroke:      config.EmptyDiscStroke,
		LabelSize:        config.LabelFontSize,
		EmptySize:        config.EmptyFontSize,
		HubSize:          config.HubFontSize,
		SliceStrokeColor: config.SliceStrokeColor,
		EmptyDiscColor:   config.EmptyDiscColor,
		EmptyStrokeColor: config.EmptyStrokeColor,
		EmptyTextColor:   config.EmptyTextColor,
		HubColor:         config.HubColor,
		HubStrokeColor:   config.HubStrokeColor,
		LabelColor:       config.LabelColor,
		LabelShadow:      paint.Shadow{Color: config.LabelShadowColor, OffsetX: 2, OffsetY: 2},
		EmptyLabel:       emptyLabel,
		HubLabel:         hubLabel,
	}
}

// Center returns the centre coordinate (same on both axes).
func (st Style) Center() float64 {
	return st.Size / 2
}

// Radius returns the outer radius of the wheel.
func (st Style) Radius() float64 {
	return st.Size/2 - st.Padding
}

// Draw clears s and paints the wheel for members. It only reads its inputs.
func Draw(s Surface, members []roster.Participant, st Style) {
	center := st.Center()
	radius := st.Radius()

	s.Clear()

	if len(members) == 0 {
		s.FillCircle(center, center, radius, st.EmptyDiscColor)
		s.StrokeCircle(center, center, radius, st.EmptyStroke, st.EmptyStrokeColor)
		s.FillText(st.EmptyLabel, center, center, paint.TextStyle{
			Size:  st.EmptySize,
			Color: st.EmptyTextColor,
			Align: paint.AlignCenter,
		})
		return
	}

	n := len(members)
	shadow := st.LabelShadow
	for i, m := range members {
		startDeg, endDeg := SliceSpan(i, n)
		start, end := utils.DegToRad(startDeg), utils.DegToRad(endDeg)

		s.FillSlice(center, center, radius, start, end, m.Color)
		s.StrokeSlice(center, center, radius, start, end, st.SliceStroke, st.SliceStrokeColor)

		// Подпись вдоль биссектрисы сектора, прижата к краю
		s.Save()
		s.Translate(center, center)
		s.Rotate(utils.DegToRad(SliceCenter(i, n)))
		s.FillText(m.Name, radius-st.LabelInset, 0, paint.TextStyle{
			Size:   st.LabelSize,
			Color:  st.LabelColor,
			Align:  paint.AlignRight,
			Shadow: &shadow,
		})
		s.Restore()
	}

	s.FillCircle(center, center, st.HubRadius, st.HubColor)
	s.StrokeCircle(center, center, st.HubRadius, st.HubStroke, st.HubStrokeColor)
	s.FillText(st.HubLabel, center, center, paint.TextStyle{
		Size:  st.HubSize,
		Color: st.LabelColor,
		Align: paint.AlignCenter,
	})
}
