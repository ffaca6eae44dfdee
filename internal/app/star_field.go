// internal/app/star_field.go
package app

import (
	"sort"

	opensimplex "github.com/ojrac/opensimplex-go"
	"github.com/zyedidia/generic/mapset"

	"go-space4x/internal/component"
	"go-space4x/internal/entity"
	"go-space4x/internal/types"
	"go-space4x/internal/utils"
	"go-space4x/pkg/hexmap"
)

// noise sampling scale in pixels; neighbouring stars get similar richness
const richnessScale = 1.0 / 400.0

// StarField is the set of star systems placed on the grid. Each star owns a
// ResourceNode entity in the ECS.
type StarField struct {
	grid  *hexmap.Grid
	ecs   *entity.ECS
	stars map[hexmap.OffsetCoordinate]types.EntityID
	order []types.EntityID
}

// NewStarField marks int(ratio * tiles) distinct tiles as star systems.
func NewStarField(grid *hexmap.Grid, ecs *entity.ECS, rng *utils.PRNGService, ratio, maxResources float64) *StarField {
	sf := &StarField{
		grid:  grid,
		ecs:   ecs,
		stars: make(map[hexmap.OffsetCoordinate]types.EntityID),
	}

	total := grid.Len()
	count := int(ratio * float64(total))
	if count > total {
		count = total
	}

	chosen := mapset.New[int]()
	for chosen.Size() < count {
		chosen.Put(rng.Intn(total))
	}
	indices := make([]int, 0, count)
	chosen.Each(func(i int) { indices = append(indices, i) })
	sort.Ints(indices)

	richness := opensimplex.NewNormalized(int64(rng.Intn(1 << 30)))
	for _, i := range indices {
		tile := grid.At(i)
		x, y := tile.Center()
		r := richness.Eval2(x*richnessScale, y*richnessScale)
		amount := maxResources * (0.25 + 0.75*r)

		tile.SetHasStar(true)
		id := ecs.NewEntity()
		ecs.ResourceNodes[id] = &component.ResourceNode{
			Tile:      tile,
			Kind:      component.ResourceKind(rng.Intn(3)),
			Amount:    amount,
			MaxAmount: amount,
		}
		sf.stars[tile.Offset()] = id
		sf.order = append(sf.order, id)
	}
	return sf
}

// Len is the number of star systems, depleted ones included.
func (sf *StarField) Len() int { return len(sf.order) }

// At returns the resource node of the star on offset o.
func (sf *StarField) At(o hexmap.OffsetCoordinate) (*component.ResourceNode, bool) {
	id, ok := sf.stars[o]
	if !ok {
		return nil, false
	}
	node, ok := sf.ecs.ResourceNodes[id]
	return node, ok
}

// Stars returns the resource nodes in grid order.
func (sf *StarField) Stars() []*component.ResourceNode {
	out := make([]*component.ResourceNode, 0, len(sf.order))
	for _, id := range sf.order {
		if node, ok := sf.ecs.ResourceNodes[id]; ok {
			out = append(out, node)
		}
	}
	return out
}
