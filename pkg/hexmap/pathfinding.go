// pkg/hexmap/pathfinding.go
package hexmap

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/zyedidia/generic/heap"
	"github.com/zyedidia/generic/queue"
)

// Algorithm selects the search strategy used by PathFinder.Find.
type Algorithm int

const (
	AlgorithmBFS Algorithm = iota
	AlgorithmDijkstra
	AlgorithmAStar
)

var algorithmNames = [...]string{"bfs", "dijkstra", "astar"}

func (a Algorithm) String() string {
	if a < 0 || int(a) >= len(algorithmNames) {
		return fmt.Sprintf("Algorithm(%d)", int(a))
	}
	return algorithmNames[a]
}

// Next cycles bfs -> dijkstra -> astar -> bfs.
func (a Algorithm) Next() Algorithm {
	return (a + 1) % Algorithm(len(algorithmNames))
}

// ParseAlgorithm accepts the names printed by Algorithm.String.
func ParseAlgorithm(s string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "bfs", "breadth-first", "breadth_first":
		return AlgorithmBFS, nil
	case "dijkstra":
		return AlgorithmDijkstra, nil
	case "astar", "a*", "a-star":
		return AlgorithmAStar, nil
	}
	return 0, fmt.Errorf("hexmap: unknown path finding algorithm %q", s)
}

// Impassable is returned by a CostFunc for steps that cannot be taken.
const Impassable = -1

// CostFunc returns the cost of stepping from one tile to an adjacent one.
// Negative values block the step; zero is raised to one.
type CostFunc func(from, to *Tile) int

// UniformCost charges one per step.
func UniformCost(_, _ *Tile) int { return 1 }

// Option configures a PathFinder.
type Option func(*PathFinder)

// WithCost replaces the uniform step cost.
func WithCost(cost CostFunc) Option {
	return func(pf *PathFinder) {
		if cost != nil {
			pf.cost = cost
		}
	}
}

// WithLogger sets the logger used for search diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(pf *PathFinder) {
		if l != nil {
			pf.logger = l
		}
	}
}

// PathFinder searches paths over a single Grid.
type PathFinder struct {
	grid   *Grid
	cost   CostFunc
	logger *slog.Logger
}

// NewPathFinder creates a PathFinder bound to grid.
func NewPathFinder(grid *Grid, opts ...Option) *PathFinder {
	if grid == nil {
		panic("hexmap: NewPathFinder requires a grid")
	}
	pf := &PathFinder{
		grid:   grid,
		cost:   UniformCost,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(pf)
	}
	return pf
}

// Grid returns the grid the finder was built for.
func (pf *PathFinder) Grid() *Grid { return pf.grid }

// Find runs the selected algorithm.
func (pf *PathFinder) Find(algo Algorithm, start, goal *Tile) ([]*Tile, error) {
	switch algo {
	case AlgorithmBFS:
		return pf.BreadthFirstSearch(start, goal)
	case AlgorithmDijkstra:
		return pf.Dijkstra(start, goal)
	case AlgorithmAStar:
		return pf.AStar(start, goal)
	}
	return nil, fmt.Errorf("hexmap: unsupported algorithm %v", algo)
}

// BreadthFirstSearch returns a path with the fewest steps. Step costs are
// ignored except for impassable steps.
func (pf *PathFinder) BreadthFirstSearch(start, goal *Tile) ([]*Tile, error) {
	if err := pf.validate(start, goal); err != nil {
		return nil, err
	}

	frontier := queue.New[*Tile]()
	frontier.Enqueue(start)
	cameFrom := map[OffsetCoordinate]*Tile{start.offset: nil}

	expanded := 0
	for !frontier.Empty() {
		current := frontier.Dequeue()
		expanded++
		if current == goal {
			break
		}
		for _, next := range pf.grid.Neighbors(current) {
			if _, seen := cameFrom[next.offset]; seen {
				continue
			}
			if _, ok := pf.stepCost(current, next); !ok {
				continue
			}
			cameFrom[next.offset] = current
			frontier.Enqueue(next)
		}
	}
	return pf.finish(AlgorithmBFS, cameFrom, start, goal, expanded)
}

// Dijkstra returns a cheapest path under the configured cost function.
func (pf *PathFinder) Dijkstra(start, goal *Tile) ([]*Tile, error) {
	return pf.bestFirst(AlgorithmDijkstra, start, goal, func(*Tile) int { return 0 })
}

// AStar is Dijkstra guided by the hex distance to the goal.
func (pf *PathFinder) AStar(start, goal *Tile) ([]*Tile, error) {
	return pf.bestFirst(AlgorithmAStar, start, goal, func(t *Tile) int { return Heuristic(t, goal) })
}

type frontierEntry struct {
	tile     *Tile
	cost     int
	priority int
	seq      int
}

func (pf *PathFinder) bestFirst(algo Algorithm, start, goal *Tile, h func(*Tile) int) ([]*Tile, error) {
	if err := pf.validate(start, goal); err != nil {
		return nil, err
	}

	// seq keeps equal priorities in insertion order
	frontier := heap.New(func(a, b frontierEntry) bool {
		if a.priority != b.priority {
			return a.priority < b.priority
		}
		return a.seq < b.seq
	})
	frontier.Push(frontierEntry{tile: start})
	cameFrom := map[OffsetCoordinate]*Tile{start.offset: nil}
	costSoFar := map[OffsetCoordinate]int{start.offset: 0}

	seq, expanded := 0, 0
	for frontier.Size() > 0 {
		entry, _ := frontier.Pop()
		current := entry.tile
		if entry.cost > costSoFar[current.offset] {
			continue // stale entry, a cheaper one was already expanded
		}
		expanded++
		if current == goal {
			break
		}
		for _, next := range pf.grid.Neighbors(current) {
			step, ok := pf.stepCost(current, next)
			if !ok {
				continue
			}
			newCost := entry.cost + step
			if old, seen := costSoFar[next.offset]; seen && newCost >= old {
				continue
			}
			costSoFar[next.offset] = newCost
			cameFrom[next.offset] = current
			seq++
			frontier.Push(frontierEntry{
				tile:     next,
				cost:     newCost,
				priority: newCost + h(next),
				seq:      seq,
			})
		}
	}
	return pf.finish(algo, cameFrom, start, goal, expanded)
}

func (pf *PathFinder) validate(start, goal *Tile) error {
	if start == nil || goal == nil {
		return fmt.Errorf("%w: start and goal are required", ErrTileNotInGrid)
	}
	if !pf.grid.Contains(start) {
		return fmt.Errorf("%w: start %v", ErrTileNotInGrid, start.offset)
	}
	if !pf.grid.Contains(goal) {
		return fmt.Errorf("%w: goal %v is not part of the grid", ErrNoPath, goal.offset)
	}
	return nil
}

func (pf *PathFinder) stepCost(from, to *Tile) (int, bool) {
	c := pf.cost(from, to)
	if c < 0 {
		return 0, false
	}
	if c == 0 {
		c = 1
	}
	return c, true
}

func (pf *PathFinder) finish(algo Algorithm, cameFrom map[OffsetCoordinate]*Tile, start, goal *Tile, expanded int) ([]*Tile, error) {
	path, err := reconstructPath(cameFrom, start, goal)
	if err != nil {
		pf.logger.Debug("no path",
			"algorithm", algo.String(),
			"from", start.offset.String(),
			"to", goal.offset.String(),
			"expanded", expanded,
		)
		return nil, err
	}
	pf.logger.Debug("path found",
		"algorithm", algo.String(),
		"from", start.offset.String(),
		"to", goal.offset.String(),
		"length", len(path),
		"expanded", expanded,
	)
	return path, nil
}

// reconstructPath walks cameFrom back from goal and returns start..goal.
func reconstructPath(cameFrom map[OffsetCoordinate]*Tile, start, goal *Tile) ([]*Tile, error) {
	if _, ok := cameFrom[goal.offset]; !ok {
		return nil, fmt.Errorf("%w: %v -> %v", ErrNoPath, start.offset, goal.offset)
	}
	var path []*Tile
	for t := goal; t != nil; t = cameFrom[t.offset] {
		path = append(path, t)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path, nil
}
