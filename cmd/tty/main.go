// cmd/tty/main.go
package main

import (
	"context"
	"errors"
	"io/fs"
	"log"
	"os"

	"go-invaders/internal/app"
	"go-invaders/internal/audio"
	"go-invaders/internal/config"
	"go-invaders/internal/defs"
	"go-invaders/internal/tty"

	"github.com/gdamore/tcell/v2"
)

const aliensFile = "assets/data/aliens.json"

func main() {
	opts, err := config.LoadOptions(".env")
	if err != nil {
		log.Fatal(err)
	}
	if err := defs.LoadAlienDefinitions(aliensFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Fatal(err)
	}

	// Лог в терминал сломал бы картинку
	if f, err := os.OpenFile("invaders.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644); err == nil {
		log.SetOutput(f)
		defer f.Close()
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("failed to create screen: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("failed to init screen: %v", err)
	}
	defer screen.Fini()

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
	go runner.Run(ctx)

	sub, ok := runner.Subscribe()
	if !ok {
		return
	}
	tty.New(screen, runner, opts).Run(ctx, sub.C)

	runner.Stop()
	<-runner.Done()
}
