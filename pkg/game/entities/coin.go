package entities

import "goldmines/pkg/engine/world"

// Coin is a single collectible coin
type Coin struct {
	base
	Value     int
	collected bool
}

// NewCoin creates a coin at pos
func NewCoin(pos world.Vec2, tex TextureHandle) *Coin {
	return &Coin{base: newBase(KindCoin, pos, CoinSize, tex), Value: 1}
}

// Collect marks the coin collected; returns false if it already was
func (c *Coin) Collect() bool {
	if c.collected {
		return false
	}
	c.collected = true
	return true
}

// IsCollected returns true once the coin has been collected
func (c *Coin) IsCollected() bool {
	return c.collected
}
