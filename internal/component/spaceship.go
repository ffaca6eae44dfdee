// internal/component/spaceship.go
package component

// Spaceship marks a player-controlled ship.
type Spaceship struct {
	Name string
}

// Cargo holds harvested resources.
type Cargo struct {
	Amount   float64
	Capacity float64 // 0 means unlimited
}
