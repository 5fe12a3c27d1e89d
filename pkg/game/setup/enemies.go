package setup

import (
	"math/rand"

	"goldmines/pkg/engine/rng"
	"goldmines/pkg/engine/world"
	"goldmines/pkg/game/ai"
	"goldmines/pkg/game/generator"
)

const (
	enemyAttempts         = 20
	minDistanceFromPlayer = 1000
)

// CreateEnemies spawns up to limit agents, each in a different room drawn at random.
// A room gets an agent only if one of enemyAttempts random interior cells is empty,
// crate-free and at least minDistanceFromPlayer away from the target.
func CreateEnemies(level *generator.Level, limit int, target ai.Target, obstacles ai.Obstacles, host ai.Host, r *rand.Rand) []*ai.Agent {
	pool := level.Rooms()
	var agents []*ai.Agent
	playerPos := target.Position()

	for spawned := 0; spawned < limit && len(pool) > 0; spawned++ {
		i := r.Intn(len(pool))
		room := pool[i]
		pool[i] = pool[len(pool)-1]
		pool = pool[:len(pool)-1]

		if !room.HasInterior() {
			continue
		}
		minX, minY, maxX, maxY := room.Interior()
		cell, ok := rng.SampleUntil(enemyAttempts, func() (world.Point, bool) {
			p := world.Point{X: rng.IntRange(r, minX, maxX), Y: rng.IntRange(r, minY, maxY)}
			free := level.Grid.Get(p.X, p.Y) == world.Empty && !level.CrateAt(p)
			return p, free && p.World().Dist(playerPos) >= minDistanceFromPlayer
		})
		if !ok {
			continue
		}
		agents = append(agents, ai.New(cell.World(), target, obstacles, host,
			ai.WithRand(rand.New(rand.NewSource(r.Int63())))))
	}
	return agents
}
