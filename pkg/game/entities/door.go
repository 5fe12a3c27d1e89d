package entities

import "goldmines/pkg/engine/world"

// SecretDoor leads to the next tier once enough coins have been collected
type SecretDoor struct {
	base
	RequiredCoins int
	open          bool
	openTexture   TextureHandle
}

// NewSecretDoor creates a closed door at pos
func NewSecretDoor(pos world.Vec2, closed, open TextureHandle, requiredCoins int) *SecretDoor {
	return &SecretDoor{
		base:          newBase(KindSecretDoor, pos, DefaultSize, closed),
		RequiredCoins: requiredCoins,
		openTexture:   open,
	}
}

// CheckAndOpen opens the door if collected reaches the threshold.
// Returns true only on the call that opens it.
func (d *SecretDoor) CheckAndOpen(collected int) bool {
	if d.open || collected < d.RequiredCoins {
		return false
	}
	d.open = true
	d.texture = d.openTexture
	return true
}

// IsOpen returns whether the door is open
func (d *SecretDoor) IsOpen() bool {
	return d.open
}

// Interact reports whether the door lets the player through
func (d *SecretDoor) Interact() bool {
	return d.open
}
