// internal/state/menu_state.go
package state

import (
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"

	"go-space4x/internal/config"
)

// MenuState is the title screen.
type MenuState struct {
	sm     *StateMachine
	cfg    *config.Config
	logger *slog.Logger
}

func NewMenuState(sm *StateMachine, cfg *config.Config, logger *slog.Logger) *MenuState {
	return &MenuState{sm: sm, cfg: cfg, logger: logger}
}

func (m *MenuState) Enter() {}

func (m *MenuState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		m.sm.Quit()
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		gs, err := NewGameState(m.sm, m.cfg, m.logger)
		if err != nil {
			m.logger.Error("failed to start game", "err", err)
			m.sm.Quit()
			return
		}
		m.sm.SetState(gs)
	}
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	face := basicfont.Face7x13
	text.Draw(screen, m.cfg.Window.Title, face, m.cfg.Window.Width/2-40, m.cfg.Window.Height/2-20, config.TextLightColor)
	text.Draw(screen, "press SPACE to start, ESC to quit", face, m.cfg.Window.Width/2-120, m.cfg.Window.Height/2+10, config.TextLightColor)
}

func (m *MenuState) Exit() {}
