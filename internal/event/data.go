// internal/event/data.go
package event

import (
	"go-space4x/internal/types"
	"go-space4x/pkg/hexmap"
)

type PathData struct {
	Entity types.EntityID
	Path   []*hexmap.Tile
}

type WaypointData struct {
	Entity types.EntityID
	Tile   *hexmap.Tile
}

type ResourceData struct {
	Node      types.EntityID
	Harvester types.EntityID
	Tile      *hexmap.Tile
}
