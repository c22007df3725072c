// cmd/game/main.go
package main

import (
	"context"
	"errors"
	"io/fs"
	"log"
	"net/http"
	_ "net/http/pprof"
	"time"

	"go-invaders/internal/app"
	"go-invaders/internal/audio"
	"go-invaders/internal/config"
	"go-invaders/internal/defs"
	"go-invaders/internal/state"

	"github.com/hajimehoshi/ebiten/v2"
)

const (
	startFromGame = false // false: сначала заставка
	aliensFile    = "assets/data/aliens.json"
)

type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
	done           <-chan struct{}
	width, height  int
}

func (a *AppGame) Update() error {
	select {
	case <-a.done:
		return ebiten.Termination
	default:
	}

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
	return a.width, a.height
}

func main() {
	go func() {
		log.Println(http.ListenAndServe("localhost:6060", nil))
	}()

	opts, err := config.LoadOptions(".env")
	if err != nil {
		log.Fatal(err)
	}
	if err := defs.LoadAlienDefinitions(aliensFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Fatal(err)
	}

	runner := app.NewRunner(opts)
	listener := &app.LogListener{}
	listener.Subscribe(runner.Game().EventDispatcher)

	sounds := audio.NewSoundManager()
	if err := sounds.Initialize(); err != nil {
		log.Printf("Audio disabled: %v", err)
	}
	defer sounds.Cleanup()
	sounds.Subscribe(runner.Game().EventDispatcher)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sm := state.NewStateMachine() // Создаём машину состояний
	start := func() state.State {
		go runner.Run(ctx)
		sub, ok := runner.Subscribe()
		if !ok {
			log.Fatal("match stopped before the first frame")
		}
		return state.NewPlayState(sm, runner, sub.C, opts)
	}
	if startFromGame {
		sm.SetState(start())
	} else {
		sm.SetState(state.NewMenuState(sm, start))
	}

	a := &AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
		done:           runner.Done(),
	}
	a.width, a.height = opts.ScreenSize()
	ebiten.SetWindowSize(a.width, a.height)
	ebiten.SetWindowTitle("Invaders")
	if err := ebiten.RunGame(a); err != nil {
		log.Fatal(err)
	}
	runner.Stop()
}
