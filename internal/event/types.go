// internal/event/types.go
package event

import (
	"time"

	"go-spin-wheel/internal/roster"
)

const (
	RosterChanged EventType = "RosterChanged" // Изменился состав колеса, нужна перерисовка
	SpinStarted   EventType = "SpinStarted"   // Колесо запущено
	SpinFinished  EventType = "SpinFinished"  // Колесо остановилось, есть победитель
)

// RosterChangedData is the payload of RosterChanged.
type RosterChangedData struct {
	Active []roster.Participant
}

// SpinStartedData is the payload of SpinStarted. From and To are cumulative
// rotations in degrees.
type SpinStartedData struct {
	From     float64
	To       float64
	Duration time.Duration
	Winner   roster.Participant
}

// SpinFinishedData is the payload of SpinFinished.
type SpinFinishedData struct {
	Winner   roster.Participant
	Rotation float64
}
