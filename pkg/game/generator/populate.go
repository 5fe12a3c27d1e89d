package generator

import (
	"goldmines/pkg/engine/rng"
	"goldmines/pkg/engine/world"
)

const (
	chestCount         = 3
	minOre, maxOre     = 5, 10
	maxOrePerRoom      = 2
	oreCenterClearance = 3 // Ore avoids cells closer than this on both axes to the room center
	minCoinBatch       = 3
	maxCoinBatch       = 7
	doorCornerInset    = 3
)

// populate places chests, then ore, then coins, then the secret door.
// Each placement only commits onto a cell that is still Empty.
func (b *build) populate() {
	b.placeChests()
	b.placeOre()
	b.placeCoins()
	b.placeSecretDoor()
}

// placeChests puts one chest in each of up to three distinct rooms
func (b *build) placeChests() {
	pool := b.rooms.All()
	for placed := 0; placed < chestCount && len(pool) > 0; placed++ {
		i := b.rng.Intn(len(pool))
		room := pool[i]
		pool[i] = pool[len(pool)-1]
		pool = pool[:len(pool)-1]

		p, ok := b.findInterior(room, b.isEmpty)
		if !ok {
			Logger.Printf("degraded: no empty interior cell for a chest in room at %d,%d", room.X, room.Y)
			continue
		}
		b.commit(p, world.Chest)
	}
}

// placeOre spreads a random total of ore over the rooms in order, at most two per room
func (b *build) placeOre() {
	total := rng.IntRange(b.rng, minOre, maxOre)
	placed := 0

	for _, room := range b.rooms.All() {
		if placed >= total {
			break
		}
		center := room.Center()
		awayFromCenter := func(p world.Point) bool {
			dx, dy := p.X-center.X, p.Y-center.Y
			if dx < 0 {
				dx = -dx
			}
			if dy < 0 {
				dy = -dy
			}
			return !(dx < oreCenterClearance && dy < oreCenterClearance) && b.isEmpty(p)
		}

		n := min(maxOrePerRoom, total-placed)
		for i := 0; i < n; i++ {
			p, ok := b.findInterior(room, awayFromCenter)
			if !ok {
				// Small rooms have no cell outside the center box; take any empty one
				p, ok = b.findInterior(room, b.isEmpty)
			}
			if ok && b.commit(p, world.Ore) {
				placed++
			}
		}
	}

	if placed < total {
		Logger.Printf("degraded: placed %d of %d ore", placed, total)
	}
}

// placeCoins fills rooms in order with batches of coins until the budget is spent
func (b *build) placeCoins() {
	for _, room := range b.rooms.All() {
		remaining := b.params.MaxCoins - b.totalCoins
		if remaining <= 0 {
			break
		}
		batch := min(remaining, rng.IntRange(b.rng, minCoinBatch, maxCoinBatch))
		for i := 0; i < batch; i++ {
			p, ok := b.findInterior(room, b.isEmpty)
			if !ok {
				break
			}
			if b.commit(p, world.Coin) {
				b.totalCoins++
			}
		}
	}
}

// placeSecretDoor puts the door near the far corner of the secret room. When that
// cell is taken the nearest empty cell of the room is used instead.
func (b *build) placeSecretDoor() {
	if b.secret < 0 {
		return
	}
	room := b.rooms.At(b.secret)
	target := world.Point{X: room.X + room.Width - doorCornerInset, Y: room.Y + room.Height - doorCornerInset}

	p, ok := b.nearestEmpty(room, target)
	if !ok {
		Logger.Printf("degraded: secret room at %d,%d has no empty cell for the door", room.X, room.Y)
		return
	}
	b.commit(p, world.SecretDoor)
	b.door, b.hasDoor = p, true
}

// nearestEmpty searches rings of growing Chebyshev radius around target for an
// Empty cell inside room
func (b *build) nearestEmpty(room world.Room, target world.Point) (world.Point, bool) {
	if room.Contains(target.X, target.Y) && b.isEmpty(target) {
		return target, true
	}
	maxRadius := max(room.Width, room.Height)
	for r := 1; r <= maxRadius; r++ {
		for dy := -r; dy <= r; dy++ {
			for dx := -r; dx <= r; dx++ {
				p := target.Add(dx, dy)
				if world.ChebyshevDist(p, target) != r {
					continue
				}
				if room.Contains(p.X, p.Y) && b.isEmpty(p) {
					return p, true
				}
			}
		}
	}
	return world.Point{}, false
}
