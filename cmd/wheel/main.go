// cmd/wheel/main.go
package main

import (
	"log"
	"net/http"
	_ "net/http/pprof"
	"time"

	"go-spin-wheel/internal/assets"
	"go-spin-wheel/internal/audio"
	"go-spin-wheel/internal/clock"
	"go-spin-wheel/internal/config"
	"go-spin-wheel/internal/defs"
	"go-spin-wheel/internal/event"
	"go-spin-wheel/internal/i18n"
	"go-spin-wheel/internal/roster"
	"go-spin-wheel/internal/spin"
	"go-spin-wheel/internal/state"
	"go-spin-wheel/internal/utils"

	"github.com/hajimehoshi/ebiten/v2"
)

type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	settings, err := config.LoadSettings()
	if err != nil {
		log.Fatal(err)
	}
	if settings.PprofAddr != "" {
		go func() {
			log.Println(http.ListenAndServe(settings.PprofAddr, nil))
		}()
	}

	rng := utils.NewPRNGService(settings.Seed)
	log.Printf("Seed: %d, lang: %s, sound: %v", rng.Seed(), settings.Lang, settings.Sound)

	registry, err := roster.NewRegistry(defs.Members)
	if err != nil {
		log.Fatal(err)
	}
	fonts, err := assets.NewDefaultFontManager()
	if err != nil {
		log.Fatal(err)
	}
	defer fonts.Cleanup()

	printer := i18n.NewPrinter(settings.Lang)
	clk := clock.New()
	dispatcher := event.NewDispatcher()

	if settings.Sound {
		sounds := audio.NewSoundManager()
		if err := sounds.Initialize(); err != nil {
			log.Printf("Audio disabled: %v", err)
		} else {
			dispatcher.Subscribe(event.SpinStarted, sounds)
			dispatcher.Subscribe(event.SpinFinished, sounds)
			defer sounds.Cleanup()
		}
	}

	ctrl := spin.NewController(registry, rng, clk, dispatcher, spin.DefaultOptions())

	sm := state.NewStateMachine()
	sm.SetState(state.NewWheelState(sm, state.WheelDeps{
		Controller: ctrl,
		Clock:      clk,
		Dispatcher: dispatcher,
		Printer:    printer,
		Faces:      fonts,
		// Частицы со своим генератором, чтобы сид определял только победителей
		Random: utils.NewPRNGService(rng.Seed() + 1),
	}))

	app := &AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
	}
	ebiten.SetWindowSize(settings.WindowSize())
	ebiten.SetWindowTitle(printer.Text(i18n.KeyTitle))
	if err := ebiten.RunGame(app); err != nil {
		log.Fatal(err)
	}
}
