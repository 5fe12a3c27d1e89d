package generator

import (
	"math/rand"

	"github.com/google/uuid"

	"goldmines/pkg/engine/world"
)

// CratePlacement is a crate committed to a cell. Crates are not grid tiles.
type CratePlacement struct {
	world.Point
	Stacked bool
	InRoom  bool // false for crates placed along walls outside the room pass
}

// Level is the immutable result of one generation run
type Level struct {
	ID     uuid.UUID
	Seed   int64
	Params Params
	Grid   *world.Grid

	rooms *world.RoomSet

	// SecretRoom is the index of the secret room in Rooms(), or -1
	SecretRoom int

	// Placements lists committed cells per kind, in placement order
	Placements map[world.TileKind][]world.Point
	Crates     []CratePlacement

	RequiredCoins int
	TotalCoins    int

	door    world.Point
	hasDoor bool
}

// Rooms returns the accepted rooms in acceptance order
func (l *Level) Rooms() []world.Room {
	return l.rooms.All()
}

// RoomCount returns the number of accepted rooms
func (l *Level) RoomCount() int {
	return l.rooms.Len()
}

// Room returns the i-th accepted room
func (l *Level) Room(i int) world.Room {
	return l.rooms.At(i)
}

// Secret returns the secret room, if one was chosen
func (l *Level) Secret() (world.Room, bool) {
	if l.SecretRoom < 0 || l.SecretRoom >= l.rooms.Len() {
		return world.Room{}, false
	}
	return l.rooms.At(l.SecretRoom), true
}

// Door returns the secret door cell, if a door was placed
func (l *Level) Door() (world.Point, bool) {
	return l.door, l.hasDoor
}

// RandomRoom picks a uniformly random room
func (l *Level) RandomRoom(r *rand.Rand) (world.Room, bool) {
	return l.rooms.Random(r)
}

// Connected reports whether every non-wall cell is reachable from the first room
func (l *Level) Connected() bool {
	if l.rooms.Len() == 0 {
		return false
	}
	return world.Connected(l.Grid, l.rooms.At(0).Center(), world.NotWall)
}

// CrateAt reports whether a crate occupies p
func (l *Level) CrateAt(p world.Point) bool {
	for _, c := range l.Crates {
		if c.Point == p {
			return true
		}
	}
	return false
}
