package generator

import (
	"goldmines/pkg/engine/rng"
	"goldmines/pkg/engine/world"
)

const (
	minRoomCrates      = 1
	maxRoomCrates      = 3
	crateAttempts      = 10
	wallCrateChance    = 0.1
	stackedCrateChance = 0.3
)

// placeCrates scatters crates inside rooms, then along walls across the whole grid.
// Crates only go on Empty cells and never share a cell.
func (b *build) placeCrates() {
	for _, room := range b.rooms.All() {
		if !room.HasInterior() {
			continue
		}
		n := rng.IntRange(b.rng, minRoomCrates, maxRoomCrates)
		for i := 0; i < n; i++ {
			p, ok := rng.SampleUntil(crateAttempts, func() (world.Point, bool) {
				p := b.randomInterior(room)
				return p, b.crateFits(p)
			})
			if ok {
				b.addCrate(p, true)
			}
		}
	}

	// Cells hugging a wall directly above them
	for x := 0; x < b.grid.Width(); x++ {
		for y := 0; y < b.grid.Height(); y++ {
			p := world.Point{X: x, Y: y}
			if b.crateFits(p) && b.grid.Get(x, y-1) == world.Wall && rng.Chance(b.rng, wallCrateChance) {
				b.addCrate(p, false)
			}
		}
	}
}

func (b *build) crateFits(p world.Point) bool {
	return b.isEmpty(p) && !b.crated.Has(p)
}

func (b *build) addCrate(p world.Point, inRoom bool) {
	b.crated.Put(p)
	b.crates = append(b.crates, CratePlacement{
		Point:   p,
		Stacked: rng.Chance(b.rng, stackedCrateChance),
		InRoom:  inRoom,
	})
}
