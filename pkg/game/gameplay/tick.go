package gameplay

import (
	"goldmines/pkg/engine/world"
	"goldmines/pkg/game/state"
)

// Intent is what the host's input layer asks the player to do this tick
type Intent struct {
	Move     world.Vec2 // Desired direction; any length, zero to stand still
	Sprint   bool
	Mine     bool
	Interact bool
}

// Tick advances the session by dt seconds. The player moves before the agents so
// they chase its position from this tick. Returns an error only when a tier
// transition fails to build the next level.
func Tick(g *state.Game, dt float64, in Intent) error {
	if g.Finished() || g.Active == nil || g.Player == nil || dt <= 0 {
		return nil
	}
	g.Elapsed += dt

	movePlayer(g, dt, in)
	updateMining(g, dt, in.Mine)

	for _, a := range g.Active.Agents {
		a.Update(dt)
	}
	if g.Over {
		return nil
	}

	collectCoins(g)
	if g.Won {
		return nil
	}
	if in.Interact {
		return interact(g)
	}
	return nil
}
