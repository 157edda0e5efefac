// internal/config/config.go
package config

import (
	"image/color"
	"time"
)

const (
	ScreenWidth  = 1000
	ScreenHeight = 760
	MaxDeltaTime = 0.06

	// Колесо рисуется во внутреннее изображение WheelSize x WheelSize
	WheelSize       = 600
	WheelPadding    = 10
	WheelOffsetX    = 40
	WheelOffsetY    = 60
	HubRadius       = 55.0
	LabelInset      = 40.0 // Отступ подписи от края колеса
	SliceStroke     = 4.0
	HubStroke       = 6.0
	EmptyDiscStroke = 4.0

	LabelFontSize  = 36
	EmptyFontSize  = 30
	HubFontSize    = 24
	UIFontSize     = 20
	StatusFontSize = 26

	PointerAngleDeg = 270.0 // верх окружности: 0° справа, по часовой
	PointerWidth    = 36.0
	PointerHeight   = 34.0

	SpinDuration     = 3500 * time.Millisecond
	MinExtraSpins    = 5
	MaxExtraSpins    = 8
	JitterFraction   = 0.4 // доля половины сектора
	ParticleCount    = 20
	ParticleDuration = 800 * time.Millisecond
	ParticleSpeedMin = 50.0
	ParticleSpeedMax = 150.0
	ParticleRadius   = 5.0

	SidebarX         = 700
	SidebarY         = 80
	SidebarWidth     = 260
	MemberRowHeight  = 48
	MemberRowSpacing = 10
	CheckboxSize     = 20
	ColorBarWidth    = 4

	StatusY = 700
)

// Кривые анимации в формате cubic-bezier(x1, y1, x2, y2)
var (
	SpinEasing     = [4]float64{0.15, 0.85, 0.2, 1}
	ParticleEasing = [4]float64{0.1, 0.8, 0.3, 1}
)

var (
	BackgroundColor   = color.RGBA{15, 23, 42, 255}    // #0f172a
	SliceStrokeColor  = color.RGBA{15, 23, 42, 255}    // совпадает с фоном
	EmptyDiscColor    = color.RGBA{30, 41, 59, 255}    // #1e293b
	EmptyStrokeColor  = color.RGBA{51, 65, 85, 255}    // #334155
	EmptyTextColor    = color.RGBA{148, 163, 184, 255} // #94a3b8
	HubColor          = color.RGBA{15, 23, 42, 255}
	HubStrokeColor    = color.RGBA{255, 255, 255, 204}
	LabelColor        = color.RGBA{255, 255, 255, 255}
	LabelShadowColor  = color.RGBA{0, 0, 0, 102}
	PointerColor      = color.RGBA{248, 250, 252, 255}
	PanelColor        = color.RGBA{30, 41, 59, 230}
	PanelHoverColor   = color.RGBA{51, 65, 85, 230}
	TextLightColor    = color.RGBA{226, 232, 240, 255}
	ErrorTextColor    = color.RGBA{248, 113, 113, 255} // #f87171
	HighlightColor    = color.RGBA{250, 204, 21, 255}
	CheckboxMarkColor = color.RGBA{16, 185, 129, 255}
)
