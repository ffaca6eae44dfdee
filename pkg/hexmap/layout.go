// pkg/hexmap/layout.go
package hexmap

import "math"

// Layout holds the pixel metrics used to place tiles on screen.
// Y grows downwards.
type Layout struct {
	TileWidth   float64
	TileHeight  float64
	MarginX     float64
	MarginY     float64
	CorrectionX float64
	CorrectionY float64
	OriginX     float64
	OriginY     float64
}

// ColumnStep is the horizontal distance between two tiles of the same row.
func (l Layout) ColumnStep() float64 {
	return l.TileWidth + l.MarginX
}

// RowStep is the vertical distance between two consecutive rows.
func (l Layout) RowStep() float64 {
	return l.TileHeight - (l.MarginY + l.CorrectionY)
}

// Radius is the distance from a tile center to its corners.
func (l Layout) Radius() float64 {
	return l.TileHeight / 2
}

// Center returns the pixel center of the tile at o.
func (l Layout) Center(o OffsetCoordinate) (x, y float64) {
	x = l.OriginX + float64(o.X)*l.ColumnStep()
	if o.Y&1 == 0 {
		x += l.TileWidth/2 + l.CorrectionX
	}
	y = l.OriginY + float64(o.Y)*l.RowStep()
	return
}

// nearestOffsets returns the offsets whose centers may contain the point,
// best guess first.
func (l Layout) nearestOffsets(px, py float64) []OffsetCoordinate {
	row := int(math.Round((py - l.OriginY) / l.RowStep()))
	candidates := make([]OffsetCoordinate, 0, 9)
	for _, r := range [3]int{row, row - 1, row + 1} {
		shift := 0.0
		if r&1 == 0 {
			shift = l.TileWidth/2 + l.CorrectionX
		}
		col := int(math.Round((px - l.OriginX - shift) / l.ColumnStep()))
		for _, c := range [3]int{col, col - 1, col + 1} {
			candidates = append(candidates, OffsetCoordinate{X: c, Y: r})
		}
	}
	return candidates
}
