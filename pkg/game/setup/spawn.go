package setup

import (
	"math"

	"goldmines/pkg/engine/world"
)

const spawnSize = world.TileSize

// FindSafeSpawn returns a point inside room where a tile-sized body overlaps no
// blocker. The room center is tried first, then rings of growing radius at the
// eight compass angles. When nothing fits the center is returned with false.
func FindSafeSpawn(room world.Room, blockers Blockers) (world.Vec2, bool) {
	const tile = float64(world.TileSize)
	center := world.Vec2{
		X: (float64(room.X) + float64(room.Width)/2) * tile,
		Y: (float64(room.Y) + float64(room.Height)/2) * tile,
	}
	if isSafe(center, blockers) {
		return center, true
	}

	bounds := room.WorldBounds()
	maxRadius := math.Min(float64(room.Width), float64(room.Height)) * tile / 2
	for radius := 1.0; radius < maxRadius; radius += tile / 2 {
		for _, dir := range world.CompassDirections() {
			p := center.Add(dir.Unit().Scale(radius))
			if insideHalfOpen(bounds, p) && isSafe(p, blockers) {
				return p, true
			}
		}
	}

	Logger.Printf("degraded: no safe spawn in room at %d,%d, using its center", room.X, room.Y)
	return center, false
}

func isSafe(p world.Vec2, blockers Blockers) bool {
	return !blockers.Overlaps(world.NewRect(p, spawnSize, spawnSize))
}

// insideHalfOpen includes the rectangle's low edges and excludes its high edges
func insideHalfOpen(r world.Rect, p world.Vec2) bool {
	return p.X >= r.X && p.X < r.X+r.W && p.Y >= r.Y && p.Y < r.Y+r.H
}
