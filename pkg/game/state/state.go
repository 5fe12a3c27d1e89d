// Package state holds the session: the player, the active level and the
// progression bookkeeping shared by the tick loop and level transitions.
package state

import (
	"fmt"
	"math/rand"

	"github.com/leonelquinteros/gotext"

	"goldmines/pkg/engine/rng"
	"goldmines/pkg/game/entities"
	"goldmines/pkg/game/tier"
)

const maxMessages = 5

// Game is one play session
type Game struct {
	Tiers  *tier.Manager
	Active *LevelState
	Next   *PendingLevel // Pre-generation of the following tier, or nil
	Player *Player

	// Level area in world units
	WidthPx  int
	HeightPx int
	Textures entities.TextureSet

	CollectedCoins int

	Messages []string

	Over bool // The player died
	Won  bool // The final tier was cleared

	Seed    int64
	Elapsed float64

	// Rand drives gameplay rolls on the tick goroutine. Level builds use their own.
	Rand *rand.Rand

	texturesReleased bool
}

// NewGame creates a session over the given tier progression
func NewGame(tiers *tier.Manager, seed int64) *Game {
	return &Game{
		Tiers:    tiers,
		Messages: make([]string, 0),
		Seed:     seed,
		Rand:     rng.New(seed),
	}
}

// AddMessage adds a message to the game's message log
func (g *Game) AddMessage(msg string) {
	g.Messages = append(g.Messages, msg)

	// Keep only the last maxMessages
	if len(g.Messages) > maxMessages {
		g.Messages = g.Messages[len(g.Messages)-maxMessages:]
	}
}

// AddMessagef formats and logs a message
func (g *Game) AddMessagef(format string, a ...any) {
	g.AddMessage(fmt.Sprintf(format, a...))
}

// ClearMessages clears all messages
func (g *Game) ClearMessages() {
	g.Messages = make([]string, 0)
}

// Finished returns true once the session is lost or won
func (g *Game) Finished() bool {
	return g.Over || g.Won
}

// TotalCoinsThisLevel returns the coin total of the active level
func (g *Game) TotalCoinsThisLevel() int {
	if g.Active == nil {
		return 0
	}
	return g.Active.TotalCoins
}

// OnPlayerDamaged logs an enemy hit
func (g *Game) OnPlayerDamaged(amount float64) {
	health := 0.0
	if g.Player != nil {
		health = g.Player.Health()
	}
	g.AddMessagef(gotext.Get("PLAYER_DAMAGED"), amount, health)
}

// OnPlayerDied ends the session
func (g *Game) OnPlayerDied() {
	if g.Over {
		return
	}
	g.Over = true
	if g.Player != nil {
		g.Player.SetDead(true)
	}
	g.AddMessage(gotext.Get("PLAYER_DIED"))
}
