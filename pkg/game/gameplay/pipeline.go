package gameplay

import (
	"github.com/google/uuid"

	"goldmines/pkg/engine/rng"
	"goldmines/pkg/game/entities"
	"goldmines/pkg/game/generator"
	"goldmines/pkg/game/setup"
	"goldmines/pkg/game/state"
	"goldmines/pkg/game/tier"
)

// Multiplier spreading per-tier seeds apart
const tierSeedStride = 7919

// levelSeed derives a tier's build seed from the session seed
func levelSeed(session int64, tierIndex int) int64 {
	return session + int64(tierIndex+1)*tierSeedStride
}

// isLastTier reports whether tier index i is the last of the progression
func isLastTier(m *tier.Manager, i int) bool {
	return i >= m.TotalTiers()-1
}

// buildLevel generates and instantiates tier i on the calling goroutine
func buildLevel(g *state.Game, i int) (*state.LevelState, error) {
	return buildFrom(g.Tiers, i, g.WidthPx, g.HeightPx, levelSeed(g.Seed, i), g.Textures)
}

// buildFrom may run on a background goroutine. It reads only the manager's tier
// table, which never changes after construction, and the values it is passed.
func buildFrom(tiers *tier.Manager, i, widthPx, heightPx int, seed int64, textures entities.TextureSet) (*state.LevelState, error) {
	r := rng.New(seed)
	gen, err := tiers.NewGenerator(i, widthPx, heightPx, generator.WithSeed(seed), generator.WithRand(r))
	if err != nil {
		return nil, err
	}
	level, err := gen.Generate()
	if err != nil {
		return nil, err
	}

	layers := setup.CreateEntities(level, textures, isLastTier(tiers, i), r)
	return &state.LevelState{
		ID:         uuid.New(),
		Tier:       i,
		Level:      level,
		Layers:     layers,
		Obstacles:  setup.ObstaclesFrom(layers),
		Blockers:   setup.BlockersFrom(layers),
		TotalCoins: level.TotalCoins,
	}, nil
}

// prepareNext starts building the tier after the current one in the background
func prepareNext(g *state.Game) {
	i := g.Tiers.Current() + 1
	if _, ok := g.Tiers.ConfigAt(i); !ok {
		g.Next = nil
		return
	}
	tiers, w, h, seed, textures := g.Tiers, g.WidthPx, g.HeightPx, levelSeed(g.Seed, i), g.Textures
	g.Next = state.StartPending(i, func() (*state.LevelState, error) {
		return buildFrom(tiers, i, w, h, seed, textures)
	})
}

// takeNext waits for the pending build of the next tier, building it in place
// when none was started
func takeNext(g *state.Game) (*state.LevelState, error) {
	want := g.Tiers.Current() + 1
	pending := g.Next
	g.Next = nil
	if pending == nil || pending.Tier != want {
		pending.Discard()
		return buildLevel(g, want)
	}
	return pending.Wait()
}
