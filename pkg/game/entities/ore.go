package entities

import "goldmines/pkg/engine/world"

// Ore value range
const (
	MinOreValue = 5
	MaxOreValue = 15
)

// Ore is a deposit the player mines into their inventory
type Ore struct {
	base
	Value int
	mined bool
}

// NewOre creates an ore deposit at pos
func NewOre(pos world.Vec2, tex TextureHandle, value int) *Ore {
	return &Ore{base: newBase(KindOre, pos, DefaultSize, tex), Value: value}
}

// Mine returns the ore's value. Later calls return false.
func (o *Ore) Mine() (int, bool) {
	if o.mined {
		return 0, false
	}
	o.mined = true
	return o.Value, true
}

// IsMined returns true once the ore has been mined
func (o *Ore) IsMined() bool {
	return o.mined
}
