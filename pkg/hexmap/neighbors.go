// pkg/hexmap/neighbors.go
package hexmap

// Neighbors returns the existing tiles adjacent to t, in CubeDirections order.
// Edge and corner tiles have fewer than six.
func (g *Grid) Neighbors(t *Tile) []*Tile {
	out := make([]*Tile, 0, len(CubeDirections))
	for _, d := range CubeDirections {
		if n, ok := g.byCubeCoord(t.cube.Add(d)); ok {
			out = append(out, n)
		}
	}
	return out
}

// Heuristic is the hex Manhattan distance between two tiles. It never
// overestimates the number of steps on a uniform-cost grid.
func Heuristic(a, b *Tile) int {
	return Distance(a.cube, b.cube)
}
