package gameplay

import (
	"github.com/leonelquinteros/gotext"

	"goldmines/pkg/engine/world"
	"goldmines/pkg/game/entities"
	"goldmines/pkg/game/state"
)

// movePlayer moves the player along each axis separately, so blocked motion on
// one axis still lets it slide along the other
func movePlayer(g *state.Game, dt float64, in Intent) {
	p := g.Player
	dir := in.Move.Normalize()
	moving := !dir.IsZero()
	sprinting := p.UpdateStamina(dt, in.Sprint, moving)
	if !moving {
		return
	}

	step := dir.Scale(p.Speed(sprinting) * dt)
	pos := p.Position()
	if next := pos.Add(world.Vec2{X: step.X}); !playerBlocked(g, next) {
		pos = next
	}
	if next := pos.Add(world.Vec2{Y: step.Y}); !playerBlocked(g, next) {
		pos = next
	}
	p.SetPosition(pos)
	if dir.X != 0 {
		p.SetFacingLeft(dir.X < 0)
	}
}

func playerBlocked(g *state.Game, pos world.Vec2) bool {
	return g.Active.Obstacles.Overlaps(world.NewRect(pos, state.PlayerSize, state.PlayerSize))
}

// updateMining keeps the player mining while mine is held. The current target is
// kept while in reach; otherwise the nearest ore in reach is picked.
func updateMining(g *state.Game, dt float64, mine bool) {
	p := g.Player
	if !mine {
		p.ClearMiningTarget()
		return
	}

	target := p.MiningTarget()
	if target == nil {
		target = nearestOre(g)
	}
	p.SetMiningTarget(target)

	ore, done := p.AdvanceMining(dt)
	if !done {
		return
	}
	g.Active.Layers.Remove(ore)
	logMessage(g, gotext.Get("ORE_MINED"), ore.Value, p.OreCount())
}

// nearestOre returns the closest unmined ore within mining distance, or nil
func nearestOre(g *state.Game) *entities.Ore {
	var best *entities.Ore
	bestDist := float64(state.MiningDistance)
	pos := g.Player.Position()
	for _, e := range g.Active.Layers.Objects {
		ore, ok := e.(*entities.Ore)
		if !ok || ore.IsMined() {
			continue
		}
		if d := pos.Dist(ore.Bounds().Pos()); d <= bestDist {
			best, bestDist = ore, d
		}
	}
	return best
}
