// internal/component/resource.go
package component

import "go-space4x/pkg/hexmap"

// ResourceKind is what a star system yields.
type ResourceKind uint8

const (
	ResourceMetal ResourceKind = iota
	ResourceCrystal
	ResourceGas
)

func (k ResourceKind) String() string {
	switch k {
	case ResourceMetal:
		return "metal"
	case ResourceCrystal:
		return "crystal"
	case ResourceGas:
		return "gas"
	}
	return "unknown"
}

// ResourceNode is the harvestable deposit of a star system.
type ResourceNode struct {
	Tile      *hexmap.Tile
	Kind      ResourceKind
	Amount    float64
	MaxAmount float64
}

func (r *ResourceNode) Depleted() bool { return r.Amount <= 0 }
