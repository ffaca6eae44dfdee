// internal/state/game_state.go
package state

import (
	"fmt"
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"golang.org/x/image/font/basicfont"

	game "go-space4x/internal/app"
	"go-space4x/internal/component"
	"go-space4x/internal/config"
	"go-space4x/internal/ui"
	"go-space4x/pkg/hexmap"
	"go-space4x/pkg/render"
)

// GameState is the playing screen: a scrollable map, the ship and its
// planned route.
type GameState struct {
	sm        *StateMachine
	game      *game.Game
	renderer  *render.HexRenderer
	infoPanel *ui.InfoPanel
	logger    *slog.Logger
	camX      float64
	camY      float64
}

func NewGameState(sm *StateMachine, cfg *config.Config, logger *slog.Logger) (*GameState, error) {
	gameLogic, err := game.NewGame(cfg, logger)
	if err != nil {
		return nil, err
	}

	palette := render.Palette{
		Background:  config.BackgroundColor,
		Tile:        config.TileColor,
		TileStroke:  config.TileStrokeColor,
		Highlight:   config.HighlightColor,
		Star:        config.StarColor,
		Depleted:    config.DepletedStarTint,
		Ship:        config.ShipColor,
		Cursor:      config.CursorColor,
		Text:        config.TextLightColor,
		StrokeWidth: float32(config.StrokeWidth),
	}
	renderer := render.NewHexRenderer(gameLogic.Grid, palette, cfg.Window.Width, cfg.Window.Height)

	return &GameState{
		sm:        sm,
		game:      gameLogic,
		renderer:  renderer,
		infoPanel: ui.NewInfoPanel(basicfont.Face7x13, cfg.Window.Width, cfg.Window.Height),
		logger:    logger,
	}, nil
}

func (g *GameState) Enter() {}

func (g *GameState) Update(deltaTime float64) {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		g.sm.Quit()
		return
	case inpututil.IsKeyJustPressed(ebiten.KeyP):
		g.sm.SetState(NewPauseState(g.sm, g))
		return
	case inpututil.IsKeyJustPressed(ebiten.KeyF):
		ebiten.SetFullscreen(!ebiten.IsFullscreen())
		g.logger.Debug("fullscreen toggled", "fullscreen", ebiten.IsFullscreen())
	case inpututil.IsKeyJustPressed(ebiten.KeyTab):
		g.game.CycleAlgorithm()
	}
	g.handleScroll()

	tile, ok := g.tileUnderCursor()
	if ok {
		g.game.Hover(tile)
		if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
			g.game.Click()
		}
	}
	if node, star := g.starUnderCursor(tile, ok); star {
		g.infoPanel.SetTarget(node)
	} else {
		g.infoPanel.Hide()
	}
	g.infoPanel.Update()

	g.game.Update(deltaTime)
}

// handleScroll moves the camera by a fixed number of tiles per key press.
func (g *GameState) handleScroll() {
	layout := g.game.Grid.Layout
	stepX := float64(config.ScrollTiles) * layout.ColumnStep()
	stepY := float64(config.ScrollTiles) * layout.RowStep()

	if inpututil.IsKeyJustPressed(ebiten.KeyA) {
		g.camX -= stepX
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyD) {
		g.camX += stepX
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyW) {
		g.camY -= stepY
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.camY += stepY
	}
}

func (g *GameState) tileUnderCursor() (*hexmap.Tile, bool) {
	x, y := ebiten.CursorPosition()
	return g.game.Grid.TileAt(float64(x)+g.camX, float64(y)+g.camY)
}

func (g *GameState) starUnderCursor(tile *hexmap.Tile, ok bool) (*component.ResourceNode, bool) {
	if !ok {
		return nil, false
	}
	return g.game.Stars.At(tile.Offset())
}

func (g *GameState) Draw(screen *ebiten.Image) {
	pos, cargo := g.game.Ship()
	cx, cy := ebiten.CursorPosition()

	stars := make([]render.Star, 0, g.game.Stars.Len())
	for _, node := range g.game.Stars.Stars() {
		x, y := node.Tile.Center()
		richness := 0.0
		if node.MaxAmount > 0 {
			richness = node.Amount / node.MaxAmount
		}
		stars = append(stars, render.Star{X: x, Y: y, Richness: richness})
	}

	g.renderer.Draw(screen, render.Frame{
		CamX:         g.camX,
		CamY:         g.camY,
		Ship:         render.Ship{X: pos.X, Y: pos.Y, Angle: pos.Angle, Radius: config.ShipRadius},
		Stars:        stars,
		StarRadius:   config.StarRadius,
		CursorX:      float64(cx),
		CursorY:      float64(cy),
		CursorRadius: config.CursorRadius,
		Status: []string{
			fmt.Sprintf("algorithm: %s (TAB)", g.game.Algorithm()),
			fmt.Sprintf("ship: %s %s", pos.Offset, g.game.ShipState()),
			fmt.Sprintf("cargo: %.0f", cargo.Amount),
			fmt.Sprintf("fps: %.0f", ebiten.ActualFPS()),
		},
	})
	g.infoPanel.Draw(screen, cargo)
}

func (g *GameState) Exit() {}

// GetGame exposes the game logic to other states.
func (g *GameState) GetGame() *game.Game {
	return g.game
}
