// cmd/game/main.go
package main

import (
	"errors"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/hajimehoshi/ebiten/v2"

	"go-space4x/internal/config"
	"go-space4x/internal/state"
)

const startFromGame = true // false starts on the title screen

type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
	width, height  int
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	if a.stateMachine.Done() {
		return ebiten.Termination
	}
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.width, a.height
}

func main() {
	cfg, err := config.Load(os.Getenv("SPACE4X_CONFIG"))
	if err != nil {
		slog.Error("failed to load config", "err", err)
		os.Exit(1)
	}
	level, _ := cfg.LogLevel()
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})).
		With("run", uuid.NewString())
	slog.SetDefault(logger)

	sm := state.NewStateMachine()
	if startFromGame {
		gs, err := state.NewGameState(sm, cfg, logger)
		if err != nil {
			logger.Error("failed to start game", "err", err)
			os.Exit(1)
		}
		sm.SetState(gs)
	} else {
		sm.SetState(state.NewMenuState(sm, cfg, logger))
	}

	app := &AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
		width:          cfg.Window.Width,
		height:         cfg.Window.Height,
	}
	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetFullscreen(cfg.Window.Fullscreen)
	if err := ebiten.RunGame(app); err != nil && !errors.Is(err, ebiten.Termination) {
		logger.Error("game loop stopped", "err", err)
		os.Exit(1)
	}
}
