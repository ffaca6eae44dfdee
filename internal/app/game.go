// internal/app/game.go
package app

import (
	"fmt"
	"log/slog"

	"go-space4x/internal/component"
	"go-space4x/internal/config"
	"go-space4x/internal/entity"
	"go-space4x/internal/event"
	"go-space4x/internal/system"
	"go-space4x/internal/types"
	"go-space4x/internal/utils"
	"go-space4x/pkg/hexmap"
)

// Game holds the main game state and logic.
type Game struct {
	Config          *config.Config
	Grid            *hexmap.Grid
	ECS             *entity.ECS
	EventDispatcher *event.Dispatcher
	PathFinder      *hexmap.PathFinder
	MovementSystem  *system.MovementSystem
	HarvestSystem   *system.HarvestSystem
	Stars           *StarField
	Rng             *utils.PRNGService
	ShipID          types.EntityID

	logger    *slog.Logger
	algorithm hexmap.Algorithm
	goal      *hexmap.Tile
	planned   []*hexmap.Tile
	gameTime  float64
}

// NewGame builds the grid, scatters the stars and spawns the player ship.
func NewGame(cfg *config.Config, logger *slog.Logger) (*Game, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	if logger == nil {
		logger = slog.Default()
	}

	grid, err := hexmap.NewGrid(cfg.Grid.DimX, cfg.Grid.DimY, cfg.HexLayout())
	if err != nil {
		return nil, fmt.Errorf("failed to build grid: %w", err)
	}
	start, ok := grid.ByOffset(cfg.Ship.StartX, cfg.Ship.StartY)
	if !ok {
		return nil, fmt.Errorf("ship start (%d,%d): %w", cfg.Ship.StartX, cfg.Ship.StartY, hexmap.ErrTileNotInGrid)
	}

	ecs := entity.NewECS()
	dispatcher := event.NewDispatcher()
	movement := system.NewMovementSystem(ecs, dispatcher)
	g := &Game{
		Config:          cfg,
		Grid:            grid,
		ECS:             ecs,
		EventDispatcher: dispatcher,
		PathFinder:      hexmap.NewPathFinder(grid, hexmap.WithLogger(logger)),
		MovementSystem:  movement,
		HarvestSystem:   system.NewHarvestSystem(ecs, dispatcher, movement, cfg.Stars.HarvestRate),
		Rng:             utils.NewPRNGService(cfg.Stars.Seed),
		logger:          logger,
		algorithm:       cfg.Algorithm(),
	}
	g.Stars = NewStarField(grid, ecs, g.Rng, cfg.Stars.Ratio, cfg.Stars.MaxResources)
	g.spawnShip(start)

	listener := &GameEventListener{game: g}
	dispatcher.Subscribe(event.WaypointReached, listener)
	dispatcher.Subscribe(event.PathCompleted, listener)
	dispatcher.Subscribe(event.ResourceDepleted, listener)

	logger.Info("game created",
		"grid", grid.String(),
		"stars", g.Stars.Len(),
		"seed", g.Rng.Seed(),
		"algorithm", g.algorithm.String())
	return g, nil
}

func (g *Game) spawnShip(tile *hexmap.Tile) {
	g.ShipID = g.ECS.NewEntity()
	pos := &component.Position{}
	pos.PlaceOn(tile)
	g.ECS.Positions[g.ShipID] = pos
	g.ECS.Movers[g.ShipID] = &component.Mover{Speed: g.Config.Ship.Speed}
	g.ECS.Spaceships[g.ShipID] = &component.Spaceship{Name: "Pathfinder"}
	g.ECS.Cargos[g.ShipID] = &component.Cargo{Capacity: g.Config.Ship.Cargo}
}

// Hover plans a path from the ship to tile and highlights it. Nothing
// happens while the ship is moving or when tile is the current goal.
func (g *Game) Hover(tile *hexmap.Tile) {
	if tile == nil || tile == g.goal || g.MovementSystem.State(g.ShipID) != system.Idle {
		return
	}
	g.clearPlanned()
	g.goal = tile

	path, err := g.PathFinder.Find(g.algorithm, g.ShipTile(), tile)
	if err != nil {
		g.logger.Debug("hover target unreachable", "goal", tile.Offset().String(), "err", err)
		return
	}
	for _, t := range path {
		t.SetHighlighted(true)
	}
	g.planned = path
	g.EventDispatcher.Dispatch(event.Event{
		Type: event.PathPlanned,
		Data: event.PathData{Entity: g.ShipID, Path: path},
	})
}

// Click sends the ship along the planned path.
func (g *Game) Click() {
	if len(g.planned) == 0 || g.MovementSystem.State(g.ShipID) != system.Idle {
		return
	}
	if tile := g.ShipTile(); tile != nil {
		tile.SetHighlighted(false)
	}
	g.MovementSystem.SetPath(g.ShipID, g.planned)
	g.planned = nil
	g.goal = nil
}

// Update progresses the game state by one frame.
func (g *Game) Update(deltaTime float64) {
	g.gameTime += deltaTime
	g.MovementSystem.Update(deltaTime)
	g.HarvestSystem.Update(deltaTime)
}

// CycleAlgorithm switches to the next path finding algorithm and replans
// the hovered path with it.
func (g *Game) CycleAlgorithm() hexmap.Algorithm {
	g.algorithm = g.algorithm.Next()
	g.logger.Info("path finding algorithm changed", "algorithm", g.algorithm.String())
	if goal := g.goal; goal != nil {
		g.goal = nil
		g.Hover(goal)
	}
	return g.algorithm
}

func (g *Game) clearPlanned() {
	for _, t := range g.planned {
		t.SetHighlighted(false)
	}
	g.planned = nil
}

// --- Public Accessors ---

func (g *Game) Algorithm() hexmap.Algorithm { return g.algorithm }

// PlannedPath returns the highlighted path waiting for a click.
func (g *Game) PlannedPath() []*hexmap.Tile {
	out := make([]*hexmap.Tile, len(g.planned))
	copy(out, g.planned)
	return out
}

func (g *Game) Ship() (*component.Position, *component.Cargo) {
	return g.ECS.Positions[g.ShipID], g.ECS.Cargos[g.ShipID]
}

// ShipTile returns the tile the ship is standing on.
func (g *Game) ShipTile() *hexmap.Tile {
	pos, ok := g.ECS.Positions[g.ShipID]
	if !ok {
		return nil
	}
	tile, _ := g.Grid.ByOffset(pos.Offset.X, pos.Offset.Y)
	return tile
}

func (g *Game) ShipState() system.MoveState {
	return g.MovementSystem.State(g.ShipID)
}

func (g *Game) GetGameTime() float64 {
	return g.gameTime
}

// GameEventListener reacts to movement and harvesting events.
type GameEventListener struct {
	game *Game
}

// OnEvent implements event.Listener.
func (l *GameEventListener) OnEvent(e event.Event) {
	switch e.Type {
	case event.WaypointReached:
		if data, ok := e.Data.(event.WaypointData); ok {
			data.Tile.SetHighlighted(false)
		}
	case event.PathCompleted:
		if data, ok := e.Data.(event.WaypointData); ok {
			l.game.logger.Debug("ship arrived", "tile", data.Tile.Offset().String())
		}
	case event.ResourceDepleted:
		if data, ok := e.Data.(event.ResourceData); ok {
			l.game.logger.Info("star system depleted", "tile", data.Tile.Offset().String())
		}
	}
}
