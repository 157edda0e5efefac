package ui

import (
	"image"
	"image/color"

	"go-spin-wheel/internal/config"
	"go-spin-wheel/internal/roster"
	"go-spin-wheel/pkg/render/paint"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// MemberRow — одна строка списка: чекбокс, цветная полоска и имя.
type MemberRow struct {
	Rect    image.Rectangle
	Name    string
	Color   color.RGBA
	Checked bool
}

// MemberList is the sidebar of eligibility checkboxes, one per roster entry.
type MemberList struct {
	X, Y, Width int
	Title       string
	Rows        []MemberRow
	fontFace    font.Face
	hover       int
}

// NewMemberList lays out one row per participant, all checked.
func NewMemberList(x, y, width int, members []roster.Participant, fontFace font.Face, title string) *MemberList {
	l := &MemberList{
		X:        x,
		Y:        y,
		Width:    width,
		Title:    title,
		Rows:     make([]MemberRow, len(members)),
		fontFace: fontFace,
		hover:    -1,
	}
	top := y + config.MemberRowHeight // место под заголовок
	for i, m := range members {
		rowY := top + i*(config.MemberRowHeight+config.MemberRowSpacing)
		l.Rows[i] = MemberRow{
			Rect:    image.Rect(x, rowY, x+width, rowY+config.MemberRowHeight),
			Name:    m.Name,
			Color:   m.Color,
			Checked: true,
		}
	}
	return l
}

// HitTest returns the row under (x, y) or -1.
func (l *MemberList) HitTest(x, y int) int {
	p := image.Point{X: x, Y: y}
	for i, row := range l.Rows {
		if p.In(row.Rect) {
			return i
		}
	}
	return -1
}

// SetHover highlights the row under the cursor.
func (l *MemberList) SetHover(x, y int) {
	l.hover = l.HitTest(x, y)
}

// SetChecked updates a row's checkbox. Unknown rows are ignored.
func (l *MemberList) SetChecked(i int, checked bool) {
	if i < 0 || i >= len(l.Rows) {
		return
	}
	l.Rows[i].Checked = checked
}

// Draw отрисовывает список
func (l *MemberList) Draw(screen *ebiten.Image) {
	if l.fontFace != nil && l.Title != "" {
		b := text.BoundString(l.fontFace, l.Title)
		text.Draw(screen, l.Title, l.fontFace, l.X, l.Y+config.MemberRowHeight/2-b.Min.Y/2, config.TextLightColor)
	}

	for i, row := range l.Rows {
		x, y := float32(row.Rect.Min.X), float32(row.Rect.Min.Y)
		w, h := float32(row.Rect.Dx()), float32(row.Rect.Dy())

		bg := config.PanelColor
		if i == l.hover {
			bg = config.PanelHoverColor
		}
		vector.DrawFilledRect(screen, x, y, w, h, bg, false)
		bar := row.Color
		if !row.Checked {
			bar = paint.DarkenColor(bar)
		}
		vector.DrawFilledRect(screen, x, y, config.ColorBarWidth, h, bar, false)

		// Чекбокс
		boxX := x + 16
		boxY := y + (h-config.CheckboxSize)/2
		vector.StrokeRect(screen, boxX, boxY, config.CheckboxSize, config.CheckboxSize, 2, config.TextLightColor, true)
		if row.Checked {
			vector.DrawFilledRect(screen, boxX+4, boxY+4, config.CheckboxSize-8, config.CheckboxSize-8, config.CheckboxMarkColor, true)
		}

		if l.fontFace != nil {
			b := text.BoundString(l.fontFace, row.Name)
			textY := int(y+h/2) - (b.Min.Y+b.Max.Y)/2
			text.Draw(screen, row.Name, l.fontFace, int(boxX)+config.CheckboxSize+14, textY, config.TextLightColor)
		}
	}
}
