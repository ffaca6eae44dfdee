package hexmap

import (
	"errors"
	"testing"
)

func tileAt(t *testing.T, g *Grid, x, y int) *Tile {
	t.Helper()
	tile, ok := g.ByOffset(x, y)
	if !ok {
		t.Fatalf("no tile at (%d,%d)", x, y)
	}
	return tile
}

func checkPath(t *testing.T, g *Grid, path []*Tile, start, goal *Tile) {
	t.Helper()
	if len(path) == 0 {
		t.Fatalf("empty path")
	}
	if path[0] != start {
		t.Errorf("path starts at %v, want %v", path[0].Offset(), start.Offset())
	}
	if path[len(path)-1] != goal {
		t.Errorf("path ends at %v, want %v", path[len(path)-1].Offset(), goal.Offset())
	}
	for i := 1; i < len(path); i++ {
		if Distance(path[i-1].Cube(), path[i].Cube()) != 1 {
			t.Fatalf("path step %d: %v -> %v are not neighbors", i, path[i-1].Offset(), path[i].Offset())
		}
		if !g.Contains(path[i]) {
			t.Fatalf("path step %d leaves the grid", i)
		}
	}
}

func pathCost(path []*Tile, cost CostFunc) int {
	total := 0
	for i := 1; i < len(path); i++ {
		total += cost(path[i-1], path[i])
	}
	return total
}

var algorithms = []Algorithm{AlgorithmBFS, AlgorithmDijkstra, AlgorithmAStar}

func TestPathExample16x16(t *testing.T) {
	g := newTestGrid(t, 16, 16)
	pf := NewPathFinder(g)
	start, goal := tileAt(t, g, 0, 0), tileAt(t, g, 2, 1)

	for _, algo := range algorithms {
		path, err := pf.Find(algo, start, goal)
		if err != nil {
			t.Fatalf("%v: %v", algo, err)
		}
		if len(path) != 3 {
			t.Fatalf("%v: path has %d tiles, want 3", algo, len(path))
		}
		checkPath(t, g, path, start, goal)
	}

	// BFS tie-break follows neighbor order: (1,0) is enumerated first.
	path, _ := pf.BreadthFirstSearch(start, goal)
	if path[1].Offset() != (OffsetCoordinate{X: 1, Y: 0}) {
		t.Errorf("BFS went through %v, want (1,0)", path[1].Offset())
	}
}

func TestAlgorithmsAgreeOnHopCount(t *testing.T) {
	g := newTestGrid(t, 9, 7)
	pf := NewPathFinder(g)
	tiles := g.Tiles()
	for i := 0; i < len(tiles); i += 5 {
		for j := 0; j < len(tiles); j += 7 {
			start, goal := tiles[i], tiles[j]
			bfs, err := pf.BreadthFirstSearch(start, goal)
			if err != nil {
				t.Fatalf("bfs %v -> %v: %v", start.Offset(), goal.Offset(), err)
			}
			dij, err := pf.Dijkstra(start, goal)
			if err != nil {
				t.Fatalf("dijkstra %v -> %v: %v", start.Offset(), goal.Offset(), err)
			}
			astar, err := pf.AStar(start, goal)
			if err != nil {
				t.Fatalf("astar %v -> %v: %v", start.Offset(), goal.Offset(), err)
			}
			if len(bfs) != len(dij) || len(dij) != len(astar) {
				t.Fatalf("%v -> %v: lengths bfs=%d dijkstra=%d astar=%d",
					start.Offset(), goal.Offset(), len(bfs), len(dij), len(astar))
			}
			if len(bfs) < Distance(start.Cube(), goal.Cube())+1 {
				t.Fatalf("%v -> %v: path shorter than hex distance", start.Offset(), goal.Offset())
			}
			checkPath(t, g, bfs, start, goal)
			checkPath(t, g, dij, start, goal)
			checkPath(t, g, astar, start, goal)
		}
	}
}

func TestPathToSelf(t *testing.T) {
	g := newTestGrid(t, 4, 4)
	pf := NewPathFinder(g)
	tile := tileAt(t, g, 2, 2)
	for _, algo := range algorithms {
		path, err := pf.Find(algo, tile, tile)
		if err != nil || len(path) != 1 || path[0] != tile {
			t.Errorf("%v: path to self = %v, %v", algo, path, err)
		}
	}
}

func TestUnreachableGoal(t *testing.T) {
	g := newTestGrid(t, 5, 5)
	wall := func(_, to *Tile) int {
		if to.Offset().X == 2 {
			return Impassable
		}
		return 1
	}
	pf := NewPathFinder(g, WithCost(wall))
	start, goal := tileAt(t, g, 0, 0), tileAt(t, g, 4, 4)
	for _, algo := range algorithms {
		path, err := pf.Find(algo, start, goal)
		if !errors.Is(err, ErrNoPath) {
			t.Errorf("%v: error = %v, want ErrNoPath", algo, err)
		}
		if path != nil {
			t.Errorf("%v: expected nil path, got %d tiles", algo, len(path))
		}
	}

	// the same side of the wall stays reachable
	path, err := pf.AStar(start, tileAt(t, g, 1, 4))
	if err != nil {
		t.Fatalf("reachable goal: %v", err)
	}
	for _, tile := range path {
		if tile.Offset().X == 2 {
			t.Errorf("path crossed the wall at %v", tile.Offset())
		}
	}
}

func TestGoalOutsideGrid(t *testing.T) {
	g := newTestGrid(t, 4, 4)
	other := newTestGrid(t, 8, 8)
	pf := NewPathFinder(g)
	start := tileAt(t, g, 0, 0)
	foreign := tileAt(t, other, 7, 7)

	for _, algo := range algorithms {
		if _, err := pf.Find(algo, start, foreign); !errors.Is(err, ErrNoPath) {
			t.Errorf("%v: goal outside grid error = %v, want ErrNoPath", algo, err)
		}
		if _, err := pf.Find(algo, foreign, start); !errors.Is(err, ErrTileNotInGrid) {
			t.Errorf("%v: start outside grid error = %v, want ErrTileNotInGrid", algo, err)
		}
		if _, err := pf.Find(algo, nil, start); !errors.Is(err, ErrTileNotInGrid) {
			t.Errorf("%v: nil start error = %v, want ErrTileNotInGrid", algo, err)
		}
	}
}

func TestWeightedCosts(t *testing.T) {
	g := newTestGrid(t, 8, 8)
	// a band of expensive tiles across the middle of the grid
	swamp := func(_, to *Tile) int {
		o := to.Offset()
		if o.Y == 3 && o.X < 6 {
			return 10
		}
		return 1
	}
	pf := NewPathFinder(g, WithCost(swamp))
	start, goal := tileAt(t, g, 1, 0), tileAt(t, g, 1, 7)

	bfs, err := pf.BreadthFirstSearch(start, goal)
	if err != nil {
		t.Fatal(err)
	}
	dij, err := pf.Dijkstra(start, goal)
	if err != nil {
		t.Fatal(err)
	}
	astar, err := pf.AStar(start, goal)
	if err != nil {
		t.Fatal(err)
	}
	checkPath(t, g, dij, start, goal)
	checkPath(t, g, astar, start, goal)

	dc, ac, bc := pathCost(dij, swamp), pathCost(astar, swamp), pathCost(bfs, swamp)
	if dc != ac {
		t.Errorf("dijkstra cost %d != astar cost %d", dc, ac)
	}
	if dc >= bc {
		t.Errorf("dijkstra cost %d should beat the bfs cost %d", dc, bc)
	}
	for _, tile := range dij {
		if o := tile.Offset(); o.Y == 3 && o.X < 6 {
			t.Errorf("dijkstra path entered the swamp at %v", o)
		}
	}
}

func TestParseAlgorithm(t *testing.T) {
	for _, algo := range algorithms {
		got, err := ParseAlgorithm(algo.String())
		if err != nil || got != algo {
			t.Errorf("ParseAlgorithm(%q) = %v, %v", algo.String(), got, err)
		}
	}
	if got, _ := ParseAlgorithm(" A* "); got != AlgorithmAStar {
		t.Errorf("ParseAlgorithm(A*) = %v", got)
	}
	if _, err := ParseAlgorithm("dfs"); err == nil {
		t.Errorf("ParseAlgorithm(dfs) should fail")
	}
	if AlgorithmAStar.Next() != AlgorithmBFS {
		t.Errorf("Next should wrap around")
	}
}
