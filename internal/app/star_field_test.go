package app

import (
	"testing"

	"go-space4x/internal/entity"
	"go-space4x/internal/utils"
	"go-space4x/pkg/hexmap"
)

var testLayout = hexmap.Layout{TileWidth: 64, TileHeight: 74, MarginX: 2, MarginY: 16, CorrectionX: 1, CorrectionY: 2}

func starOffsets(t *testing.T, seed int64, ratio float64) ([]hexmap.OffsetCoordinate, *hexmap.Grid, *StarField) {
	t.Helper()
	grid, err := hexmap.NewGrid(16, 16, testLayout)
	if err != nil {
		t.Fatal(err)
	}
	sf := NewStarField(grid, entity.NewECS(), utils.NewPRNGService(seed), ratio, 500)
	var out []hexmap.OffsetCoordinate
	for _, node := range sf.Stars() {
		out = append(out, node.Tile.Offset())
	}
	return out, grid, sf
}

func TestStarFieldCountAndFlags(t *testing.T) {
	offsets, grid, sf := starOffsets(t, 42, 0.1)
	if want := int(0.1 * float64(grid.Len())); sf.Len() != want || len(offsets) != want {
		t.Fatalf("got %d stars, want %d", sf.Len(), want)
	}

	seen := make(map[hexmap.OffsetCoordinate]bool)
	for _, o := range offsets {
		if seen[o] {
			t.Fatalf("star %v placed twice", o)
		}
		seen[o] = true
	}

	stars := 0
	grid.Each(func(tile *hexmap.Tile) bool {
		if tile.HasStar() {
			stars++
			if !seen[tile.Offset()] {
				t.Errorf("tile %v has a star but no resource node", tile.Offset())
			}
		}
		return true
	})
	if stars != len(offsets) {
		t.Errorf("%d tiles flagged, %d stars", stars, len(offsets))
	}
}

func TestStarFieldResources(t *testing.T) {
	offsets, _, sf := starOffsets(t, 7, 0.2)
	for _, o := range offsets {
		node, ok := sf.At(o)
		if !ok {
			t.Fatalf("At(%v) missed", o)
		}
		if node.Amount < 0.25*500 || node.Amount > 500 || node.Amount != node.MaxAmount {
			t.Errorf("star %v amount %v max %v", o, node.Amount, node.MaxAmount)
		}
	}
	if _, ok := sf.At(hexmap.OffsetCoordinate{X: -1, Y: 0}); ok {
		t.Errorf("At outside the field should miss")
	}
}

func TestStarFieldIsDeterministic(t *testing.T) {
	a, _, _ := starOffsets(t, 1234, 0.1)
	b, _, _ := starOffsets(t, 1234, 0.1)
	if len(a) != len(b) {
		t.Fatalf("lengths differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("star %d: %v vs %v", i, a[i], b[i])
		}
	}
}

func TestStarFieldEdgeRatios(t *testing.T) {
	if offsets, _, _ := starOffsets(t, 3, 0); len(offsets) != 0 {
		t.Errorf("ratio 0 placed %d stars", len(offsets))
	}
	if offsets, grid, _ := starOffsets(t, 3, 1); len(offsets) != grid.Len() {
		t.Errorf("ratio 1 placed %d of %d stars", len(offsets), grid.Len())
	}
}
