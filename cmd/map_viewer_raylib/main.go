package main

import (
	"fmt"
	"log/slog"
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/zyedidia/generic/mapset"

	"go-space4x/internal/config"
	"go-space4x/pkg/hexmap"
)

// ColorLerp blends two colours, t in [0,1].
func ColorLerp(c1, c2 rl.Color, t float32) rl.Color {
	return rl.NewColor(
		uint8(float32(c1.R)*(1-t)+float32(c2.R)*t),
		uint8(float32(c1.G)*(1-t)+float32(c2.G)*t),
		uint8(float32(c1.B)*(1-t)+float32(c2.B)*t),
		uint8(float32(c1.A)*(1-t)+float32(c2.A)*t),
	)
}

type viewer struct {
	grid    *hexmap.Grid
	finder  *hexmap.PathFinder
	walls   mapset.Set[hexmap.OffsetCoordinate]
	algo    hexmap.Algorithm
	start   *hexmap.Tile
	goal    *hexmap.Tile
	path    []*hexmap.Tile
	pathErr error
}

func (v *viewer) cost(_, to *hexmap.Tile) int {
	if v.walls.Has(to.Offset()) {
		return hexmap.Impassable
	}
	return 1
}

func (v *viewer) replan() {
	v.path, v.pathErr = nil, nil
	if v.start == nil || v.goal == nil {
		return
	}
	v.path, v.pathErr = v.finder.Find(v.algo, v.start, v.goal)
}

func main() {
	cfg, err := config.Load(os.Getenv("SPACE4X_CONFIG"))
	if err != nil {
		slog.Error("failed to load config", "err", err)
		os.Exit(1)
	}
	grid, err := hexmap.NewGrid(cfg.Grid.DimX, cfg.Grid.DimY, cfg.HexLayout())
	if err != nil {
		slog.Error("failed to build grid", "err", err)
		os.Exit(1)
	}

	v := &viewer{
		grid:  grid,
		walls: mapset.New[hexmap.OffsetCoordinate](),
		algo:  cfg.Algorithm(),
	}
	v.finder = hexmap.NewPathFinder(grid, hexmap.WithCost(v.cost))

	backgroundColor := rl.NewColor(10, 10, 20, 255)
	tileColor := rl.NewColor(40, 60, 110, 255)
	wallColor := rl.Gray
	startColor := rl.SkyBlue
	goalColor := rl.Gold

	rl.InitWindow(int32(cfg.Window.Width), int32(cfg.Window.Height),
		"Hex Path Viewer | LMB start, RMB goal, MMB wall, B/D/A algorithm")
	rl.SetTargetFPS(60)

	radius := float32(grid.Layout.Radius())
	for !rl.WindowShouldClose() {
		mouse := rl.GetMousePosition()
		hovered, onTile := grid.TileAt(float64(mouse.X), float64(mouse.Y))

		changed := false
		if onTile && rl.IsMouseButtonPressed(rl.MouseLeftButton) {
			v.start, changed = hovered, true
		}
		if onTile && rl.IsMouseButtonPressed(rl.MouseRightButton) {
			v.goal, changed = hovered, true
		}
		if onTile && rl.IsMouseButtonPressed(rl.MouseMiddleButton) {
			o := hovered.Offset()
			if v.walls.Has(o) {
				v.walls.Remove(o)
			} else {
				v.walls.Put(o)
			}
			changed = true
		}
		switch {
		case rl.IsKeyPressed(rl.KeyB):
			v.algo, changed = hexmap.AlgorithmBFS, true
		case rl.IsKeyPressed(rl.KeyD):
			v.algo, changed = hexmap.AlgorithmDijkstra, true
		case rl.IsKeyPressed(rl.KeyA):
			v.algo, changed = hexmap.AlgorithmAStar, true
		case rl.IsKeyPressed(rl.KeyC):
			v.walls = mapset.New[hexmap.OffsetCoordinate]()
			changed = true
		}
		if changed {
			v.replan()
		}

		onPath := make(map[hexmap.OffsetCoordinate]float32, len(v.path))
		for i, t := range v.path {
			onPath[t.Offset()] = float32(i) / float32(max(len(v.path)-1, 1))
		}

		rl.BeginDrawing()
		rl.ClearBackground(backgroundColor)

		grid.Each(func(t *hexmap.Tile) bool {
			x, y := t.Center()
			center := rl.NewVector2(float32(x), float32(y))

			c := tileColor
			if v.walls.Has(t.Offset()) {
				c = wallColor
			} else if k, ok := onPath[t.Offset()]; ok {
				c = ColorLerp(startColor, goalColor, k)
			}
			rl.DrawPoly(center, 6, radius-1, 30, c)
			rl.DrawPolyLines(center, 6, radius, 30, rl.DarkGray)
			return true
		})
		if onTile {
			x, y := hovered.Center()
			rl.DrawPolyLinesEx(rl.NewVector2(float32(x), float32(y)), 6, radius, 30, 2, rl.White)
		}

		status := fmt.Sprintf("algorithm: %s  walls: %d", v.algo, v.walls.Size())
		switch {
		case v.pathErr != nil:
			status += "  " + v.pathErr.Error()
		case len(v.path) > 0:
			status += fmt.Sprintf("  path: %d tiles", len(v.path))
		}
		rl.DrawText(status, 10, 10, 20, rl.White)
		rl.DrawFPS(10, 40)

		rl.EndDrawing()
	}

	rl.CloseWindow()
}
