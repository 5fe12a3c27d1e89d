package entities

import (
	"math/rand"

	"goldmines/pkg/engine/world"
)

// Chest payout range and opening rules
const (
	MinChestPayout  = 10
	MaxChestPayout  = 50
	ChestOreCost    = 2
	HealBonusChance = 0.25
	HealAmount      = 40
	MaxHealthBonus  = 20
	MaxStaminaBonus = 20
	SpeedBonus      = 0.2
)

// Bonus is the extra reward granted when a chest opens
type Bonus int

const (
	BonusNone Bonus = iota
	BonusHeal
	BonusMaxHealth
	BonusMaxStamina
	BonusSpeed
)

// String returns the string representation of a bonus
func (b Bonus) String() string {
	switch b {
	case BonusHeal:
		return "Heal"
	case BonusMaxHealth:
		return "MaxHealth"
	case BonusMaxStamina:
		return "MaxStamina"
	case BonusSpeed:
		return "Speed"
	default:
		return "None"
	}
}

// ChestOpener is whoever opens a chest and receives its rewards
type ChestOpener interface {
	OreCount() int
	RemoveOre(n int) bool
	AddCoins(n int)
	Heal(amount float64)
	IncreaseMaxHealth(amount float64)
	IncreaseMaxStamina(amount float64)
	IncreaseSpeed(amount float64)
}

// Chest pays out coins and a random bonus in exchange for ore
type Chest struct {
	base
	Payout      int
	opened      bool
	openTexture TextureHandle
}

// NewChest creates a closed chest at pos
func NewChest(pos world.Vec2, closed, open TextureHandle, payout int) *Chest {
	return &Chest{
		base:        newBase(KindChest, pos, DefaultSize, closed),
		Payout:      payout,
		openTexture: open,
	}
}

// Open trades ChestOreCost ore for the payout and one bonus.
// Does nothing if the chest is already open or the opener lacks ore.
func (c *Chest) Open(opener ChestOpener, rng *rand.Rand) (Bonus, bool) {
	if c.opened || opener.OreCount() < ChestOreCost {
		return BonusNone, false
	}
	if !opener.RemoveOre(ChestOreCost) {
		return BonusNone, false
	}

	c.opened = true
	c.texture = c.openTexture
	opener.AddCoins(c.Payout)

	if rng.Float64() < HealBonusChance {
		opener.Heal(HealAmount)
		return BonusHeal, true
	}
	switch rng.Intn(3) {
	case 0:
		opener.IncreaseMaxHealth(MaxHealthBonus)
		return BonusMaxHealth, true
	case 1:
		opener.IncreaseMaxStamina(MaxStaminaBonus)
		return BonusMaxStamina, true
	default:
		opener.IncreaseSpeed(SpeedBonus)
		return BonusSpeed, true
	}
}

// IsOpened returns true once the chest has been opened
func (c *Chest) IsOpened() bool {
	return c.opened
}
