// cmd/server/main.go
package main

import (
	"context"
	"errors"
	"io/fs"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-invaders/internal/app"
	"go-invaders/internal/config"
	"go-invaders/internal/defs"
	"go-invaders/internal/network"
)

const (
	defaultAddr = ":8080"
	aliensFile  = "assets/data/aliens.json"
)

func main() {
	opts, err := config.LoadOptions(".env")
	if err != nil {
		log.Fatal(err)
	}
	if err := defs.LoadAlienDefinitions(aliensFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Fatal(err)
	}

	addr := os.Getenv(config.EnvPrefix + "ADDR")
	if addr == "" {
		addr = defaultAddr
	}

	runner := app.NewRunner(opts)
	listener := &app.LogListener{}
	listener.Subscribe(runner.Game().EventDispatcher)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	go runner.Run(ctx)

	srv := &http.Server{
		Addr:    addr,
		Handler: network.NewServer(runner).Handler(),
	}
	go func() {
		// Матч закрыт игроком или сигналом: гасим сервер
		select {
		case <-ctx.Done():
		case <-runner.Done():
		}
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Printf("Shutdown: %v", err)
		}
	}()

	log.Printf("Serving match on %s", addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal(err)
	}
	<-runner.Done()
}
