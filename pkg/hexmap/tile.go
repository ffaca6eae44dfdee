// pkg/hexmap/tile.go
package hexmap

// Highlight is the display state of a tile.
type Highlight uint8

const (
	Normal Highlight = iota
	Highlighted
)

// Tile is a single hex of the grid. Its position never changes after the
// grid is built; only the highlight and star flags are mutable.
type Tile struct {
	offset  OffsetCoordinate
	cube    CubeCoordinate
	centerX float64
	centerY float64

	hasStar   bool
	highlight Highlight
}

func newTile(o OffsetCoordinate, layout Layout) *Tile {
	x, y := layout.Center(o)
	return &Tile{
		offset:  o,
		cube:    FromOffset(o),
		centerX: x,
		centerY: y,
	}
}

func (t *Tile) Offset() OffsetCoordinate { return t.offset }
func (t *Tile) Cube() CubeCoordinate     { return t.cube }

// Center returns the pixel center of the tile.
func (t *Tile) Center() (x, y float64) { return t.centerX, t.centerY }

// HasStar reports whether a star system occupies the tile.
func (t *Tile) HasStar() bool { return t.hasStar }

func (t *Tile) SetHasStar(v bool) { t.hasStar = v }

func (t *Tile) Highlight() Highlight { return t.highlight }

func (t *Tile) IsHighlighted() bool { return t.highlight == Highlighted }

// SetHighlighted switches between the normal and highlighted state.
func (t *Tile) SetHighlighted(v bool) {
	if v {
		t.highlight = Highlighted
	} else {
		t.highlight = Normal
	}
}

func (t *Tile) String() string {
	return "tile" + t.offset.String()
}
