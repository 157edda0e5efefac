package audio

import (
	"log"
	"sync"
	"time"

	"go-spin-wheel/internal/event"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(48000)
)

// Ноты победного аккорда: C5, E5, G5
var chimeNotes = []float64{523.25, 659.25, 783.99}

// SoundManager plays the spin and winner sounds. A manager that failed to
// initialise stays silent.
type SoundManager struct {
	mu          sync.Mutex
	initialized bool
}

// NewSoundManager creates a new sound manager
func NewSoundManager() *SoundManager {
	return &SoundManager{}
}

// Initialize sets up the audio device.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100)); err != nil {
		return err
	}
	sm.initialized = true
	return nil
}

// Cleanup stops everything that is still playing.
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Clear()
	sm.initialized = false
}

func (sm *SoundManager) play(s beep.Streamer) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Play(s)
}

// PlaySpin plays a falling whoosh for the length of a spin.
func (sm *SoundManager) PlaySpin(d time.Duration) {
	sm.play(NewWhooshGenerator(sampleRate, d))
}

// PlayWin plays a short rising chime.
func (sm *SoundManager) PlayWin() {
	sm.play(NewChimeGenerator(sampleRate, chimeNotes, 180*time.Millisecond))
}

// OnEvent hooks the manager to controller events.
func (sm *SoundManager) OnEvent(e event.Event) {
	switch e.Type {
	case event.SpinStarted:
		if data, ok := e.Data.(event.SpinStartedData); ok {
			sm.PlaySpin(data.Duration)
		}
	case event.SpinFinished:
		sm.PlayWin()
	default:
		log.Printf("audio: unexpected event %s", e.Type)
	}
}
