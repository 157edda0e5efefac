// Package spin owns the wheel's mutable state: the cumulative rotation, the
// spin lock and the current status message.
package spin

import (
	"fmt"
	"log"
	"time"

	"go-spin-wheel/internal/event"
	"go-spin-wheel/internal/roster"
)

// Scheduler runs fn once after d. Implementations must call fn on the same
// goroutine that drives the controller.
type Scheduler interface {
	AfterFunc(d time.Duration, fn func())
}

// Phase is the controller state.
type Phase int

const (
	Idle Phase = iota
	Spinning
)

func (p Phase) String() string {
	switch p {
	case Idle:
		return "Idle"
	case Spinning:
		return "Spinning"
	default:
		return fmt.Sprintf("Phase(%d)", int(p))
	}
}

// StatusKind selects the message shown under the wheel.
type StatusKind int

const (
	StatusPrompt   StatusKind = iota // приглашение крутить
	StatusEmpty                      // никто не выбран
	StatusSpinning                   // колесо крутится
	StatusWinner                     // объявлен победитель
)

// Status is what the message area should currently say.
type Status struct {
	Kind   StatusKind
	Winner roster.Participant
}

// Controller is the Idle/Spinning state machine around a registry.
type Controller struct {
	registry   *roster.Registry
	rng        Random
	sched      Scheduler
	dispatcher *event.Dispatcher
	opts       Options

	phase    Phase
	rotation float64
	status   Status
	spins    int
}

// NewController wires a controller. dispatcher may be nil.
func NewController(registry *roster.Registry, rng Random, sched Scheduler, dispatcher *event.Dispatcher, opts Options) *Controller {
	c := &Controller{
		registry:   registry,
		rng:        rng,
		sched:      sched,
		dispatcher: dispatcher,
		opts:       opts,
	}
	c.status = c.idleStatus()
	return c
}

func (c *Controller) Phase() Phase {
	return c.phase
}

func (c *Controller) IsSpinning() bool {
	return c.phase == Spinning
}

// Rotation returns the cumulative wheel rotation in degrees.
func (c *Controller) Rotation() float64 {
	return c.rotation
}

func (c *Controller) Status() Status {
	return c.status
}

// Spins returns how many spins have been started.
func (c *Controller) Spins() int {
	return c.spins
}

// Roster returns the full participant list, eligible or not.
func (c *Controller) Roster() []roster.Participant {
	return c.registry.All()
}

// Active returns the eligible participants.
func (c *Controller) Active() []roster.Participant {
	return c.registry.Active()
}

// Included reports the control state of roster entry index.
func (c *Controller) Included(index int) bool {
	return c.registry.Included(index)
}

// Toggle asks to include or exclude roster entry index and returns the value
// the UI control must show afterwards. While spinning the request is
// rejected and the previous value comes back. An unknown index is an error
// in either phase.
func (c *Controller) Toggle(index int, included bool) (bool, error) {
	if index < 0 || index >= c.registry.Len() {
		return false, fmt.Errorf("toggle participant: %w: index %d of %d",
			roster.ErrUnknownParticipant, index, c.registry.Len())
	}
	if c.phase == Spinning {
		prev := c.registry.Included(index)
		log.Printf("Toggle of participant %d rejected: wheel is spinning", index)
		return prev, nil
	}

	changed, err := c.registry.Set(index, included)
	if err != nil {
		return false, fmt.Errorf("toggle participant: %w", err)
	}
	if !changed {
		return included, nil
	}

	// Границы секторов сдвинулись, поворот сбрасываем
	c.rotation = 0
	active := c.registry.Active()
	c.status = c.idleStatus()
	c.dispatcher.Dispatch(event.Event{
		Type: event.RosterChanged,
		Data: event.RosterChangedData{Active: active},
	})
	return included, nil
}

// Activate starts a spin. It is a no-op returning false when a spin is in
// flight or nobody is eligible.
func (c *Controller) Activate() bool {
	if c.phase == Spinning {
		return false
	}
	active := c.registry.Active()
	if len(active) == 0 {
		return false
	}

	plan := NewPlan(len(active), c.rotation, c.rng, c.opts)
	winner := active[plan.Winner]
	from := c.rotation

	c.phase = Spinning
	c.spins++
	c.rotation += plan.Total()
	c.status = Status{Kind: StatusSpinning}

	log.Printf("Spin #%d: %d candidates, rotation %.1f -> %.1f", c.spins, len(active), from, c.rotation)

	c.dispatcher.Dispatch(event.Event{
		Type: event.SpinStarted,
		Data: event.SpinStartedData{
			From:     from,
			To:       c.rotation,
			Duration: c.opts.Duration,
			Winner:   winner,
		},
	})
	c.sched.AfterFunc(c.opts.Duration, func() { c.finish(winner) })
	return true
}

func (c *Controller) finish(winner roster.Participant) {
	c.phase = Idle
	c.status = Status{Kind: StatusWinner, Winner: winner}
	log.Printf("Spin #%d finished: %s", c.spins, winner.Name)

	c.dispatcher.Dispatch(event.Event{
		Type: event.SpinFinished,
		Data: event.SpinFinishedData{Winner: winner, Rotation: c.rotation},
	})
}

func (c *Controller) idleStatus() Status {
	if len(c.registry.Active()) == 0 {
		return Status{Kind: StatusEmpty}
	}
	return Status{Kind: StatusPrompt}
}
