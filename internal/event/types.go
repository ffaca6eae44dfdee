// internal/event/types.go
package event

const (
	PathPlanned      EventType = "PathPlanned"      // Data: PathData
	PathAssigned     EventType = "PathAssigned"     // Data: PathData
	WaypointReached  EventType = "WaypointReached"  // Data: WaypointData
	PathCompleted    EventType = "PathCompleted"    // Data: WaypointData
	ResourceDepleted EventType = "ResourceDepleted" // Data: ResourceData
)
