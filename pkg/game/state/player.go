package state

import (
	"goldmines/pkg/engine/world"
	"goldmines/pkg/game/entities"
)

// Player tuning
const (
	PlayerSize       = world.TileSize
	BaseMaxHealth    = 100
	BaseMaxStamina   = 100
	BaseSpeed        = 200
	SprintMultiplier = 1.5
	SprintCost       = 30 // Stamina per second
	StaminaRegen     = 15 // Stamina per second
	MiningDistance   = 70
	MiningTime       = 1.0
)

// Player is the player's body and bookkeeping. It is the target enemies chase.
type Player struct {
	pos        world.Vec2
	facingLeft bool

	health     float64
	maxHealth  float64
	stamina    float64
	maxStamina float64
	speedMult  float64
	// Regeneration skips the tick after sprinting
	regenPaused bool

	inventory []int // Values of mined ore
	coins     int
	dead      bool

	mining      *entities.Ore
	miningTimer float64
}

// NewPlayer creates a player at full health and stamina
func NewPlayer(pos world.Vec2) *Player {
	return &Player{
		pos:        pos,
		health:     BaseMaxHealth,
		maxHealth:  BaseMaxHealth,
		stamina:    BaseMaxStamina,
		maxStamina: BaseMaxStamina,
		speedMult:  1,
	}
}

// Position returns the player's anchor corner
func (p *Player) Position() world.Vec2 { return p.pos }

// SetPosition moves the player without collision checks
func (p *Player) SetPosition(pos world.Vec2) { p.pos = pos }

// Bounds returns the player's world rectangle
func (p *Player) Bounds() world.Rect {
	return world.NewRect(p.pos, PlayerSize, PlayerSize)
}

// FacingLeft returns true if the player last moved towards negative X
func (p *Player) FacingLeft() bool { return p.facingLeft }

// SetFacingLeft sets the facing flag
func (p *Player) SetFacingLeft(left bool) { p.facingLeft = left }

// IsAlive returns true until the player is dead
func (p *Player) IsAlive() bool {
	return !p.dead && p.health > 0
}

// ApplyDamage lowers health, never below zero, and returns what is left
func (p *Player) ApplyDamage(amount float64) float64 {
	p.health = max(0, p.health-amount)
	return p.health
}

func (p *Player) Health() float64     { return p.health }
func (p *Player) MaxHealth() float64  { return p.maxHealth }
func (p *Player) Stamina() float64    { return p.stamina }
func (p *Player) MaxStamina() float64 { return p.maxStamina }

// Heal raises health up to the maximum. Negative amounts lower it.
func (p *Player) Heal(amount float64) {
	p.health = max(0, min(p.maxHealth, p.health+amount))
}

// SetStamina sets stamina, clamped to [0, max]
func (p *Player) SetStamina(stamina float64) {
	p.stamina = max(0, min(p.maxStamina, stamina))
}

// IncreaseMaxHealth raises both maximum and current health
func (p *Player) IncreaseMaxHealth(amount float64) {
	p.maxHealth += amount
	p.health += amount
}

// IncreaseMaxStamina raises both maximum and current stamina
func (p *Player) IncreaseMaxStamina(amount float64) {
	p.maxStamina += amount
	p.stamina += amount
}

// IncreaseSpeed adds to the speed multiplier
func (p *Player) IncreaseSpeed(amount float64) {
	p.speedMult += amount
}

// SpeedMultiplier returns the current speed multiplier
func (p *Player) SpeedMultiplier() float64 { return p.speedMult }

// Speed returns the movement speed in world units per second
func (p *Player) Speed(sprinting bool) float64 {
	s := BaseSpeed * p.speedMult
	if sprinting {
		s *= SprintMultiplier
	}
	return s
}

// UpdateStamina drains stamina while sprinting and moving, and regenerates it
// otherwise. Returns whether the player is sprinting this tick.
func (p *Player) UpdateStamina(dt float64, wantSprint, moving bool) bool {
	sprinting := wantSprint && p.stamina > 0
	if sprinting && moving {
		p.stamina = max(0, p.stamina-SprintCost*dt)
		p.regenPaused = true
	}
	if !sprinting {
		if p.regenPaused {
			p.regenPaused = false
		} else {
			p.stamina = min(p.maxStamina, p.stamina+StaminaRegen*dt)
		}
	}
	return sprinting
}

// OreCount returns the number of ore in the inventory
func (p *Player) OreCount() int { return len(p.inventory) }

// Inventory returns a copy of the mined ore values
func (p *Player) Inventory() []int {
	out := make([]int, len(p.inventory))
	copy(out, p.inventory)
	return out
}

// SetInventory replaces the inventory
func (p *Player) SetInventory(values []int) {
	p.inventory = append([]int(nil), values...)
}

// AddOre puts a mined ore value in the inventory
func (p *Player) AddOre(value int) {
	p.inventory = append(p.inventory, value)
}

// RemoveOre drops the n most recently mined ore. Returns false if there are fewer than n.
func (p *Player) RemoveOre(n int) bool {
	if n > len(p.inventory) {
		return false
	}
	p.inventory = p.inventory[:len(p.inventory)-n]
	return true
}

func (p *Player) Coins() int         { return p.coins }
func (p *Player) AddCoins(n int)     { p.coins += n }
func (p *Player) SetCoins(coins int) { p.coins = coins }
func (p *Player) IsDead() bool       { return p.dead }
func (p *Player) SetDead(dead bool)  { p.dead = dead }

// SetMiningTarget starts mining ore if it is within reach. Retargeting the same ore
// keeps progress; anything out of reach clears the target.
func (p *Player) SetMiningTarget(ore *entities.Ore) {
	if ore == nil || ore.IsMined() || p.pos.Dist(ore.Bounds().Pos()) > MiningDistance {
		p.ClearMiningTarget()
		return
	}
	if p.mining != ore {
		p.mining = ore
		p.miningTimer = 0
	}
}

// ClearMiningTarget stops mining
func (p *Player) ClearMiningTarget() {
	p.mining = nil
	p.miningTimer = 0
}

// MiningTarget returns the ore being mined, or nil
func (p *Player) MiningTarget() *entities.Ore { return p.mining }

// MiningProgress returns progress in [0, 1] on the current target
func (p *Player) MiningProgress() float64 {
	if p.mining == nil {
		return 0
	}
	return min(1, p.miningTimer/MiningTime)
}

// AdvanceMining adds dt to the mining timer. When it completes, the ore is mined into
// the inventory and returned so the host can remove it from the level.
func (p *Player) AdvanceMining(dt float64) (*entities.Ore, bool) {
	if p.mining == nil {
		return nil, false
	}
	p.miningTimer += dt
	if p.miningTimer < MiningTime {
		return nil, false
	}
	ore := p.mining
	p.ClearMiningTarget()
	value, ok := ore.Mine()
	if !ok {
		return nil, false
	}
	p.AddOre(value)
	return ore, true
}

// CarryFrom copies the state that survives a tier transition onto a fresh player.
// Health is restored by healing the difference, so it stays clamped to the new maximum.
func (p *Player) CarryFrom(old *Player) {
	p.Heal(old.Health() - p.Health())
	p.SetStamina(old.Stamina())
	p.SetInventory(old.inventory)
	p.SetCoins(old.Coins())
}
