package gameplay

import (
	"github.com/leonelquinteros/gotext"

	"goldmines/pkg/engine/world"
	"goldmines/pkg/game/entities"
	"goldmines/pkg/game/state"
)

// Center-to-center distance at which the player can use a chest or door
const interactReach = world.TileSize * 1.5

// collectCoins picks up every coin the player overlaps. Doors are rechecked after
// a pickup and the final tier is won once all of its coins are in.
func collectCoins(g *state.Game) {
	p := g.Player
	bounds := p.Bounds()

	var picked []entities.Entity
	for _, e := range g.Active.Layers.Objects {
		coin, ok := e.(*entities.Coin)
		if !ok || !coin.Bounds().Overlaps(bounds) || !coin.Collect() {
			continue
		}
		g.CollectedCoins++
		p.AddCoins(coin.Value)
		picked = append(picked, coin)
	}
	if len(picked) == 0 {
		return
	}
	for _, c := range picked {
		g.Active.Layers.Remove(c)
	}
	checkDoors(g)

	if !g.Tiers.HasNext() && g.CollectedCoins >= g.Active.TotalCoins {
		g.Won = true
		logMessage(g, "%s", gotext.Get("GAME_WON"))
	}
}

// checkDoors opens every door whose coin requirement is met
func checkDoors(g *state.Game) {
	for _, d := range g.Active.Layers.Doors() {
		if d.CheckAndOpen(g.CollectedCoins) {
			logMessage(g, "%s", gotext.Get("DOOR_OPENED"))
		}
	}
}

// interact uses the nearest chest or door within reach. Walking through an open
// door advances the session to the next tier.
func interact(g *state.Game) error {
	target := nearestInteractable(g)
	switch e := target.(type) {
	case *entities.Chest:
		openChest(g, e)
	case *entities.SecretDoor:
		if e.Interact() {
			return AdvanceLevel(g)
		}
		logMessage(g, gotext.Get("DOOR_LOCKED"), e.RequiredCoins-g.CollectedCoins)
	}
	return nil
}

func openChest(g *state.Game, c *entities.Chest) {
	if c.IsOpened() {
		return
	}
	bonus, ok := c.Open(g.Player, g.Rand)
	if !ok {
		logMessage(g, gotext.Get("CHEST_NEEDS_ORE"), entities.ChestOreCost)
		return
	}
	logMessage(g, gotext.Get("CHEST_OPENED"), c.Payout, bonus)
}

// nearestInteractable returns the closest chest or door within reach, or nil
func nearestInteractable(g *state.Game) entities.Entity {
	var best entities.Entity
	bestDist := float64(interactReach)
	center := g.Player.Bounds().Center()
	for _, e := range g.Active.Layers.Objects {
		if k := e.Kind(); k != entities.KindChest && k != entities.KindSecretDoor {
			continue
		}
		if d := center.Dist(e.Bounds().Center()); d <= bestDist {
			best, bestDist = e, d
		}
	}
	return best
}
