package state

import (
	"log"
	"math"

	"go-spin-wheel/internal/clock"
	"go-spin-wheel/internal/config"
	"go-spin-wheel/internal/entity"
	"go-spin-wheel/internal/event"
	"go-spin-wheel/internal/i18n"
	"go-spin-wheel/internal/spin"
	"go-spin-wheel/internal/system"
	"go-spin-wheel/internal/ui"
	"go-spin-wheel/internal/utils"
	"go-spin-wheel/internal/wheel"
	"go-spin-wheel/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Убеждаемся, что WheelState соответствует интерфейсам
var (
	_ State          = (*WheelState)(nil)
	_ event.Listener = (*WheelState)(nil)
)

var digitKeys = []ebiten.Key{
	ebiten.KeyDigit1, ebiten.KeyDigit2, ebiten.KeyDigit3,
	ebiten.KeyDigit4, ebiten.KeyDigit5, ebiten.KeyDigit6,
	ebiten.KeyDigit7, ebiten.KeyDigit8, ebiten.KeyDigit9,
}

// WheelDeps — зависимости экрана колеса
type WheelDeps struct {
	Controller *spin.Controller
	Clock      *clock.Clock
	Dispatcher *event.Dispatcher
	Printer    *i18n.Printer
	Faces      render.FaceSource
	Random     system.Random // только для декоративных эффектов
}

// WheelState — единственный экран: колесо, список участников и строка статуса.
type WheelState struct {
	sm      *StateMachine
	ctrl    *spin.Controller
	clk     *clock.Clock
	printer *i18n.Printer
	faces   render.FaceSource

	style        wheel.Style
	spinEasing   utils.CubicBezier
	wheelImg     *ebiten.Image
	wheelCanvas  *render.Canvas
	screenCanvas *render.Canvas
	dirty        bool
	anim         *wheel.Animation

	members *ui.MemberList
	banner  *ui.StatusBanner
	pointer *ui.Pointer

	ecs      *entity.ECS
	effects  *system.VisualEffectSystem
	movement *system.MovementSystem
	renderer *system.RenderSystem

	keys []ebiten.Key
}

func NewWheelState(sm *StateMachine, deps WheelDeps) *WheelState {
	printer := deps.Printer
	ecs := entity.NewECS()
	particleEasing := utils.NewCubicBezier(config.ParticleEasing)

	uiFace := deps.Faces.Face(config.UIFontSize)
	statusFace := deps.Faces.Face(config.StatusFontSize)

	members := ui.NewMemberList(config.SidebarX, config.SidebarY, config.SidebarWidth,
		deps.Controller.Roster(), uiFace, printer.Text(i18n.KeyRoster))
	banner := ui.NewStatusBanner(config.WheelOffsetX+config.WheelSize/2, config.StatusY, statusFace)
	// Остриё чуть ниже обода, основание над колесом
	pointer := ui.NewPointer(
		config.WheelOffsetX+config.WheelSize/2,
		config.WheelOffsetY+config.WheelPadding+18,
		config.PointerWidth, config.PointerHeight, config.PointerColor)

	w := &WheelState{
		sm:         sm,
		ctrl:       deps.Controller,
		clk:        deps.Clock,
		printer:    printer,
		faces:      deps.Faces,
		style:      wheel.DefaultStyle(printer.Text(i18n.KeyNobody), printer.Text(i18n.KeyHub)),
		spinEasing: utils.NewCubicBezier(config.SpinEasing),
		dirty:      true,
		members:    members,
		banner:     banner,
		pointer:    pointer,
		ecs:        ecs,
		effects:    system.NewVisualEffectSystem(ecs, deps.Random, particleEasing, system.DefaultBurstOptions()),
		movement:   system.NewMovementSystem(ecs, particleEasing),
		renderer:   system.NewRenderSystem(ecs),
	}
	for i := range w.members.Rows {
		w.members.SetChecked(i, w.ctrl.Included(i))
	}

	deps.Dispatcher.Subscribe(event.RosterChanged, w)
	deps.Dispatcher.Subscribe(event.SpinStarted, w)
	deps.Dispatcher.Subscribe(event.SpinFinished, w)

	w.syncStatus()
	return w
}

func (w *WheelState) Enter() {
	w.dirty = true
}

func (w *WheelState) Exit() {}

// WheelCenter returns the wheel centre in screen coordinates.
func (w *WheelState) WheelCenter() (float64, float64) {
	return config.WheelOffsetX + w.style.Center(), config.WheelOffsetY + w.style.Center()
}

// DisplayRotation is the angle the wheel is drawn at right now.
func (w *WheelState) DisplayRotation() float64 {
	if w.anim != nil && !w.anim.Done(w.clk.Now()) {
		return w.anim.At(w.clk.Now())
	}
	return w.ctrl.Rotation()
}

func (w *WheelState) Update(deltaTime float64) {
	// Таймеры раньше ввода: завершение вращения снимает блокировку в этом же кадре
	w.step(deltaTime)

	x, y := ebiten.CursorPosition()
	w.members.SetHover(x, y)
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		w.handleClick(x, y)
	}
	w.keys = inpututil.AppendJustPressedKeys(w.keys[:0])
	for _, k := range w.keys {
		w.handleKey(k)
	}
}

// step advances particles and then the clock. A burst fired by the clock
// is therefore drawn at age zero before it starts to age.
func (w *WheelState) step(deltaTime float64) {
	w.effects.Update(deltaTime)
	w.movement.Update(deltaTime)
	w.clk.AdvanceSeconds(deltaTime)
}

func (w *WheelState) handleClick(x, y int) {
	if i := w.members.HitTest(x, y); i >= 0 {
		w.toggle(i)
		return
	}
	if w.onWheel(x, y) {
		w.ctrl.Activate()
	}
}

func (w *WheelState) handleKey(k ebiten.Key) {
	switch k {
	case ebiten.KeySpace, ebiten.KeyEnter:
		w.ctrl.Activate()
		return
	}
	for i, dk := range digitKeys {
		if k == dk && i < len(w.members.Rows) {
			w.toggle(i)
			return
		}
	}
}

// toggle flips the checkbox first, then lets the controller decide what
// it must show.
func (w *WheelState) toggle(i int) {
	requested := !w.members.Rows[i].Checked
	w.members.SetChecked(i, requested)

	shown, err := w.ctrl.Toggle(i, requested)
	if err != nil {
		log.Printf("Toggle participant %d: %v", i, err)
		shown = w.ctrl.Included(i)
	}
	w.members.SetChecked(i, shown)
}

func (w *WheelState) onWheel(x, y int) bool {
	cx, cy := w.WheelCenter()
	return math.Hypot(float64(x)-cx, float64(y)-cy) <= w.style.Radius()
}

// OnEvent реагирует на события контроллера
func (w *WheelState) OnEvent(e event.Event) {
	switch e.Type {
	case event.RosterChanged:
		w.dirty = true
		w.anim = nil
	case event.SpinStarted:
		data := e.Data.(event.SpinStartedData)
		w.anim = &wheel.Animation{
			From:     data.From,
			To:       data.To,
			Start:    w.clk.Now(),
			Duration: data.Duration,
			Easing:   w.spinEasing,
		}
	case event.SpinFinished:
		data := e.Data.(event.SpinFinishedData)
		w.anim = nil
		cx, cy := w.WheelCenter()
		w.effects.Burst(cx, cy, data.Winner.Color)
	}
	w.syncStatus()
}

func (w *WheelState) syncStatus() {
	now := w.clk.Now()
	st := w.ctrl.Status()
	switch st.Kind {
	case spin.StatusEmpty:
		w.banner.Set(w.printer.Text(i18n.KeyEmpty), config.ErrorTextColor, false, now)
	case spin.StatusSpinning:
		w.banner.Set(w.printer.Text(i18n.KeySpinning), config.TextLightColor, false, now)
	case spin.StatusWinner:
		w.banner.Set(w.printer.Winner(st.Winner.Name), config.HighlightColor, true, now)
	default:
		w.banner.Set(w.printer.Text(i18n.KeyPrompt), config.TextLightColor, false, now)
	}
}

func (w *WheelState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)

	if w.wheelImg == nil {
		w.wheelImg = ebiten.NewImage(config.WheelSize, config.WheelSize)
		w.wheelCanvas = render.NewCanvas(w.wheelImg, w.faces)
		w.screenCanvas = render.NewCanvas(screen, nil)
	}
	if w.dirty {
		wheel.Draw(w.wheelCanvas, w.ctrl.Active(), w.style)
		w.dirty = false
	}

	// Поворот вокруг центра колеса
	half := w.style.Center()
	cx, cy := w.WheelCenter()
	op := &ebiten.DrawImageOptions{Filter: ebiten.FilterLinear}
	op.GeoM.Translate(-half, -half)
	op.GeoM.Rotate(utils.DegToRad(w.DisplayRotation()))
	op.GeoM.Translate(cx, cy)
	screen.DrawImage(w.wheelImg, op)

	w.screenCanvas.SetTarget(screen)
	w.pointer.Draw(w.screenCanvas)

	w.members.Draw(screen)
	w.banner.Draw(screen, w.clk.Now())
	w.renderer.Draw(screen)
}
