package hexmap

import (
	"errors"
	"testing"
)

var testLayout = Layout{
	TileWidth:   64,
	TileHeight:  74,
	MarginX:     2,
	MarginY:     16,
	CorrectionX: 1,
	CorrectionY: 2,
	OriginX:     40,
	OriginY:     40,
}

func newTestGrid(t *testing.T, dimX, dimY int) *Grid {
	t.Helper()
	g, err := NewGrid(dimX, dimY, testLayout)
	if err != nil {
		t.Fatalf("NewGrid(%d, %d): %v", dimX, dimY, err)
	}
	return g
}

func TestNewGridRejectsInvalidDimensions(t *testing.T) {
	for _, dims := range [][2]int{{0, 5}, {5, 0}, {-1, 3}, {0, 0}} {
		if _, err := NewGrid(dims[0], dims[1], testLayout); !errors.Is(err, ErrInvalidDimensions) {
			t.Errorf("NewGrid(%d, %d) error = %v, want ErrInvalidDimensions", dims[0], dims[1], err)
		}
	}
}

func TestGridIndexConsistency(t *testing.T) {
	g := newTestGrid(t, 16, 12)
	if g.Len() != 16*12 {
		t.Fatalf("Len() = %d, want %d", g.Len(), 16*12)
	}
	for _, tile := range g.Tiles() {
		o, c := tile.Offset(), tile.Cube()
		byOffset, ok := g.ByOffset(o.X, o.Y)
		if !ok || byOffset != tile {
			t.Fatalf("ByOffset(%v) did not return the tile", o)
		}
		byCube, ok := g.ByCube(c.X, c.Y, c.Z)
		if !ok || byCube != tile {
			t.Fatalf("ByCube(%v) did not return the tile for offset %v", c, o)
		}
		if FromOffset(o) != c {
			t.Fatalf("tile %v cube %v disagrees with FromOffset", o, c)
		}
	}
}

func TestGridLookupMisses(t *testing.T) {
	g := newTestGrid(t, 4, 4)
	misses := [][2]int{{-1, 0}, {0, -1}, {4, 0}, {0, 4}, {100, 100}}
	for _, m := range misses {
		if tile, ok := g.ByOffset(m[0], m[1]); ok || tile != nil {
			t.Errorf("ByOffset(%d, %d) should miss", m[0], m[1])
		}
	}
	if _, ok := g.ByCube(10, -5, -5); ok {
		t.Errorf("ByCube outside the grid should miss")
	}
	if _, ok := g.ByCube(1, 1, 1); ok {
		t.Errorf("ByCube with an invalid cube coordinate should miss")
	}
}

func TestGridIterationOrder(t *testing.T) {
	g := newTestGrid(t, 3, 2)
	want := []OffsetCoordinate{{0, 0}, {0, 1}, {1, 0}, {1, 1}, {2, 0}, {2, 1}}
	tiles := g.Tiles()
	if len(tiles) != len(want) {
		t.Fatalf("got %d tiles, want %d", len(tiles), len(want))
	}
	for i, w := range want {
		if tiles[i].Offset() != w || g.At(i) != tiles[i] {
			t.Errorf("tile %d = %v, want %v", i, tiles[i].Offset(), w)
		}
	}

	// Tiles returns a fresh slice each time
	tiles[0] = nil
	if g.At(0) == nil {
		t.Errorf("mutating the returned slice changed the grid")
	}

	visited := 0
	g.Each(func(*Tile) bool {
		visited++
		return visited < 4
	})
	if visited != 4 {
		t.Errorf("Each visited %d tiles after stop, want 4", visited)
	}
}

func TestGridContains(t *testing.T) {
	g := newTestGrid(t, 4, 4)
	other := newTestGrid(t, 4, 4)
	tile, _ := g.ByOffset(1, 1)
	foreign, _ := other.ByOffset(1, 1)
	if !g.Contains(tile) {
		t.Errorf("grid should contain its own tile")
	}
	if g.Contains(foreign) {
		t.Errorf("grid should not contain a tile of another grid")
	}
	if g.Contains(nil) {
		t.Errorf("grid should not contain nil")
	}
}

func TestEvenRowsAreShifted(t *testing.T) {
	g := newTestGrid(t, 4, 4)
	even, _ := g.ByOffset(1, 0)
	odd, _ := g.ByOffset(1, 1)
	ex, ey := even.Center()
	ox, oy := odd.Center()
	if ex <= ox {
		t.Errorf("even row tile x=%v should be right of odd row tile x=%v", ex, ox)
	}
	if oy-ey != testLayout.RowStep() {
		t.Errorf("row distance = %v, want %v", oy-ey, testLayout.RowStep())
	}
}

func TestTileAt(t *testing.T) {
	g := newTestGrid(t, 8, 8)
	for _, tile := range g.Tiles() {
		x, y := tile.Center()
		got, ok := g.TileAt(x+3, y-2)
		if !ok || got != tile {
			t.Fatalf("TileAt near center of %v returned %v, %v", tile.Offset(), got, ok)
		}
	}
	if _, ok := g.TileAt(-500, -500); ok {
		t.Errorf("TileAt far outside the grid should miss")
	}
}

func TestHighlightFlags(t *testing.T) {
	g := newTestGrid(t, 3, 3)
	tile, _ := g.ByOffset(2, 2)
	if tile.Highlight() != Normal {
		t.Fatalf("new tiles start in the normal state")
	}
	tile.SetHighlighted(true)
	if !tile.IsHighlighted() {
		t.Errorf("SetHighlighted(true) had no effect")
	}
	tile.SetHasStar(true)
	g.ClearHighlights()
	if tile.IsHighlighted() {
		t.Errorf("ClearHighlights left a highlighted tile")
	}
	if !tile.HasStar() {
		t.Errorf("ClearHighlights should not touch star occupancy")
	}
}

func TestNeighbors(t *testing.T) {
	g := newTestGrid(t, 10, 10)
	for _, tile := range g.Tiles() {
		ns := g.Neighbors(tile)
		if len(ns) > 6 {
			t.Fatalf("%v has %d neighbors", tile.Offset(), len(ns))
		}
		o := tile.Offset()
		interior := o.X > 0 && o.Y > 0 && o.X < g.DimX-1 && o.Y < g.DimY-1
		if interior && len(ns) != 6 {
			t.Errorf("interior tile %v has %d neighbors, want 6", o, len(ns))
		}
		for _, n := range ns {
			if !g.Contains(n) {
				t.Fatalf("neighbor %v of %v is not in the grid", n.Offset(), o)
			}
			if d := Distance(tile.Cube(), n.Cube()); d != 1 {
				t.Errorf("neighbor %v of %v at distance %d", n.Offset(), o, d)
			}
		}
	}
}

func TestNeighborsOrderAndCorner(t *testing.T) {
	g := newTestGrid(t, 10, 10)
	corner, _ := g.ByOffset(0, 0)
	want := []OffsetCoordinate{{1, 0}, {0, 1}, {1, 1}}
	got := g.Neighbors(corner)
	if len(got) != len(want) {
		t.Fatalf("corner has %d neighbors, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i].Offset() != want[i] {
			t.Errorf("neighbor %d = %v, want %v", i, got[i].Offset(), want[i])
		}
	}

	center, _ := g.ByOffset(4, 4)
	for i, n := range g.Neighbors(center) {
		if n.Cube() != center.Cube().Add(CubeDirections[i]) {
			t.Errorf("neighbor %d = %v does not follow direction %v", i, n.Cube(), CubeDirections[i])
		}
	}
}
