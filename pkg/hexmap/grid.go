// pkg/hexmap/grid.go
package hexmap

import (
	"errors"
	"fmt"
	"math"
)

var (
	ErrInvalidDimensions = errors.New("hexmap: grid dimensions must be positive")
	ErrTileNotInGrid     = errors.New("hexmap: tile is not part of the grid")
	ErrNoPath            = errors.New("hexmap: no path found")
)

// Grid owns DimX x DimY tiles in the even-r layout. Its shape is fixed at
// construction.
type Grid struct {
	DimX, DimY int
	Layout     Layout

	// tiles are stored in construction order: outer loop x, inner loop y.
	// The tile at offset (x, y) lives at index x*DimY + y.
	tiles  []*Tile
	byCube map[CubeCoordinate]*Tile
}

// NewGrid builds every tile of a dimX x dimY grid.
func NewGrid(dimX, dimY int, layout Layout) (*Grid, error) {
	if dimX <= 0 || dimY <= 0 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrInvalidDimensions, dimX, dimY)
	}

	g := &Grid{
		DimX:   dimX,
		DimY:   dimY,
		Layout: layout,
		tiles:  make([]*Tile, 0, dimX*dimY),
		byCube: make(map[CubeCoordinate]*Tile, dimX*dimY),
	}
	for x := 0; x < dimX; x++ {
		for y := 0; y < dimY; y++ {
			t := newTile(OffsetCoordinate{X: x, Y: y}, layout)
			g.tiles = append(g.tiles, t)
			g.byCube[t.cube] = t
		}
	}
	return g, nil
}

// ByOffset returns the tile at offset (x, y), or false when out of range.
func (g *Grid) ByOffset(x, y int) (*Tile, bool) {
	if x < 0 || y < 0 || x >= g.DimX || y >= g.DimY {
		return nil, false
	}
	return g.tiles[x*g.DimY+y], true
}

// ByCube returns the tile at cube (x, y, z), or false when it does not exist.
func (g *Grid) ByCube(x, y, z int) (*Tile, bool) {
	t, ok := g.byCube[CubeCoordinate{X: x, Y: y, Z: z}]
	return t, ok
}

func (g *Grid) byCubeCoord(c CubeCoordinate) (*Tile, bool) {
	t, ok := g.byCube[c]
	return t, ok
}

// Contains reports whether t is one of this grid's tiles.
func (g *Grid) Contains(t *Tile) bool {
	if t == nil {
		return false
	}
	own, ok := g.ByOffset(t.offset.X, t.offset.Y)
	return ok && own == t
}

// Len is the number of tiles.
func (g *Grid) Len() int { return len(g.tiles) }

// At returns the i-th tile in construction order.
func (g *Grid) At(i int) *Tile { return g.tiles[i] }

// Tiles returns all tiles in construction order (x outer, y inner).
// The slice is a copy; the tiles are shared.
func (g *Grid) Tiles() []*Tile {
	out := make([]*Tile, len(g.tiles))
	copy(out, g.tiles)
	return out
}

// Each calls fn for every tile in construction order until fn returns false.
func (g *Grid) Each(fn func(t *Tile) bool) {
	for _, t := range g.tiles {
		if !fn(t) {
			return
		}
	}
}

// TileAt returns the tile under the pixel (px, py), if any.
func (g *Grid) TileAt(px, py float64) (*Tile, bool) {
	var best *Tile
	bestDist := math.Inf(1)
	for _, o := range g.Layout.nearestOffsets(px, py) {
		t, ok := g.ByOffset(o.X, o.Y)
		if !ok {
			continue
		}
		dx, dy := t.centerX-px, t.centerY-py
		if d := math.Hypot(dx, dy); d < bestDist {
			best, bestDist = t, d
		}
	}
	if best == nil || bestDist > g.Layout.Radius() {
		return nil, false
	}
	return best, true
}

// ClearHighlights resets every tile to the normal display state.
func (g *Grid) ClearHighlights() {
	for _, t := range g.tiles {
		t.highlight = Normal
	}
}

func (g *Grid) String() string {
	return fmt.Sprintf("Grid(%dx%d, tiles=%d)", g.DimX, g.DimY, len(g.tiles))
}
