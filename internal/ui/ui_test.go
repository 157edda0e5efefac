package ui

import (
	"image/color"
	"math"
	"testing"
	"time"

	"go-spin-wheel/internal/config"
	"go-spin-wheel/internal/roster"
)

var members = []roster.Participant{
	{Name: "A", Color: color.RGBA{255, 0, 0, 255}},
	{Name: "B", Color: color.RGBA{0, 0, 255, 255}},
	{Name: "C", Color: color.RGBA{0, 255, 0, 255}},
}

func TestMemberListHitTest(t *testing.T) {
	l := NewMemberList(700, 80, 260, members, nil, "")
	step := config.MemberRowHeight + config.MemberRowSpacing
	top := 80 + config.MemberRowHeight

	tests := []struct {
		name string
		x, y int
		want int
	}{
		{name: "first row", x: 710, y: top + 5, want: 0},
		{name: "second row", x: 950, y: top + step + 1, want: 1},
		{name: "last row bottom edge", x: 800, y: top + 2*step + config.MemberRowHeight - 1, want: 2},
		{name: "gap between rows", x: 800, y: top + config.MemberRowHeight + 1, want: -1},
		{name: "title area", x: 800, y: 85, want: -1},
		{name: "left of list", x: 699, y: top + 5, want: -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := l.HitTest(tt.x, tt.y); got != tt.want {
				t.Errorf("HitTest(%d, %d) = %d, want %d", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestMemberListSetChecked(t *testing.T) {
	l := NewMemberList(0, 0, 100, members, nil, "")
	for _, r := range l.Rows {
		if !r.Checked {
			t.Fatal("rows must start checked")
		}
	}
	l.SetChecked(1, false)
	l.SetChecked(9, false)
	if l.Rows[1].Checked || !l.Rows[0].Checked {
		t.Errorf("unexpected rows %+v", l.Rows)
	}
}

func TestStatusBannerPulse(t *testing.T) {
	b := NewStatusBanner(0, 0, nil)
	b.Set("plain", color.White, false, time.Second)
	if b.Scale(time.Second) != 1 {
		t.Error("plain message must not pulse")
	}

	b.Set("Emre ist dran!", color.White, true, 2*time.Second)
	if s := b.Scale(2 * time.Second); math.Abs(s-1.3) > 1e-9 {
		t.Errorf("scale at change = %v, want 1.3", s)
	}
	if s := b.Scale(3 * time.Second); s > 1.001 {
		t.Errorf("scale should settle, got %v", s)
	}
}

func TestPointerPointsDown(t *testing.T) {
	p := NewPointer(340, 80, 36, 34, color.White)
	pts := p.Points()
	if pts[0] != [2]float64{340, 80} {
		t.Errorf("tip at %v", pts[0])
	}
	for _, q := range pts[1:] {
		if q[1] >= pts[0][1] {
			t.Errorf("base corner %v not above the tip", q)
		}
	}
}
