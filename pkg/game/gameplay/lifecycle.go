// Package gameplay drives a session: building levels, the tick loop and tier transitions.
package gameplay

import (
	"fmt"
	"time"

	"github.com/leonelquinteros/gotext"

	"goldmines/pkg/game/entities"
	"goldmines/pkg/game/setup"
	"goldmines/pkg/game/state"
	"goldmines/pkg/game/tier"
)

// Options configures a new session
type Options struct {
	// Level area in world units. The host usually passes twice its screen size.
	WidthPx  int
	HeightPx int

	// Seed of the session. Zero picks one from the clock.
	Seed int64

	Textures entities.TextureSet

	// Tiers defaults to the built-in progression
	Tiers *tier.Manager
}

// BuildGame creates a session on the first tier and starts building the second
func BuildGame(opts Options) (*state.Game, error) {
	tiers := opts.Tiers
	if tiers == nil {
		tiers = tier.NewManager()
	}
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	g := state.NewGame(tiers, seed)
	g.WidthPx = opts.WidthPx
	g.HeightPx = opts.HeightPx
	g.Textures = opts.Textures

	lvl, err := buildLevel(g, tiers.Current())
	if err != nil {
		return nil, fmt.Errorf("building tier %d: %w", tiers.DisplayIndex(), err)
	}
	enterLevel(g, lvl, nil)
	if tiers.HasNext() {
		prepareNext(g)
	}

	g.ClearMessages()
	logMessage(g, gotext.Get("ENTER_TIER"), tiers.Name())
	return g, nil
}

// AdvanceLevel moves the session to the pre-built next tier. On the final tier
// there is nowhere to go and the session is won instead.
func AdvanceLevel(g *state.Game) error {
	if !g.Tiers.HasNext() {
		g.Won = true
		logMessage(g, "%s", gotext.Get("GAME_WON"))
		return nil
	}

	next, err := takeNext(g)
	if err != nil {
		return fmt.Errorf("building tier %d: %w", g.Tiers.NextTier(), err)
	}
	g.Tiers.Advance()

	old := g.Active
	enterLevel(g, next, g.Player)
	old.Teardown()

	if g.Tiers.HasNext() {
		prepareNext(g)
	}

	g.ClearMessages()
	logMessage(g, gotext.Get("ENTER_TIER"), g.Tiers.Name())
	return nil
}

// Teardown ends the session: it drops the active level and any level still
// being built, then releases the session textures
func Teardown(g *state.Game) {
	if g == nil {
		return
	}
	g.Next.Discard()
	g.Next = nil
	g.Active.Teardown()
	g.Active = nil
	if n := g.ReleaseTextures(); n > 0 {
		state.Logger.Printf("released %d textures", n)
	}
}

// enterLevel makes lvl the active level. The player spawns at a safe point of
// a random room, carrying over from prev when there is one, and the level's
// enemies are spawned around them. Doors that need no coins open right away.
func enterLevel(g *state.Game, lvl *state.LevelState, prev *state.Player) {
	room, _ := lvl.Level.RandomRoom(g.Rand)
	pos, _ := setup.FindSafeSpawn(room, lvl.Blockers)

	p := state.NewPlayer(pos)
	if prev != nil {
		p.CarryFrom(prev)
	}

	cfg, _ := g.Tiers.ConfigAt(lvl.Tier)
	lvl.StartRoom = room
	lvl.Agents = setup.CreateEnemies(lvl.Level, cfg.Enemies(), p, lvl.Obstacles, g, g.Rand)

	g.Active = lvl
	g.Player = p
	g.CollectedCoins = 0
	checkDoors(g)
}

// HasNextTier returns true if clearing this tier leads to another
func HasNextTier(g *state.Game) bool {
	return g.Tiers.HasNext()
}

// CurrentTierDisplayIndex returns the 1-based tier number
func CurrentTierDisplayIndex(g *state.Game) int {
	return g.Tiers.DisplayIndex()
}

// TotalTiers returns the number of tiers in the session
func TotalTiers(g *state.Game) int {
	return g.Tiers.TotalTiers()
}

// TotalCoinsThisLevel returns the number of coins placed on the active level
func TotalCoinsThisLevel(g *state.Game) int {
	return g.TotalCoinsThisLevel()
}

// CollectedCoins returns the number of coins picked up on the active level
func CollectedCoins(g *state.Game) int {
	return g.CollectedCoins
}

// logMessage adds a formatted message to the game's message log
func logMessage(g *state.Game, msg string, a ...any) {
	g.AddMessage(fmt.Sprintf(msg, a...))
}
