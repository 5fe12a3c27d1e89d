// Package entities contains the objects instantiated from a generated level:
// floor tiles, walls, ore, chests, coins, crates and the secret door.
package entities

import (
	"github.com/google/uuid"

	"goldmines/pkg/engine/world"
)

// Kind identifies the type of an entity
type Kind int

const (
	KindTile Kind = iota
	KindWall
	KindOre
	KindChest
	KindCoin
	KindSecretDoor
	KindCrate
)

// String returns the string representation of a kind
func (k Kind) String() string {
	switch k {
	case KindTile:
		return "Tile"
	case KindWall:
		return "Wall"
	case KindOre:
		return "Ore"
	case KindChest:
		return "Chest"
	case KindCoin:
		return "Coin"
	case KindSecretDoor:
		return "SecretDoor"
	case KindCrate:
		return "Crate"
	default:
		return "Unknown"
	}
}

// Entity is anything placed in a level layer
type Entity interface {
	ID() uuid.UUID
	Kind() Kind
	Bounds() world.Rect
	Texture() TextureHandle
}

// Sizes in world units
const (
	DefaultSize = world.TileSize
	CoinSize    = 16
)

type base struct {
	id      uuid.UUID
	kind    Kind
	bounds  world.Rect
	texture TextureHandle
}

func newBase(kind Kind, pos world.Vec2, size float64, tex TextureHandle) base {
	return base{
		id:      uuid.New(),
		kind:    kind,
		bounds:  world.NewRect(pos, size, size),
		texture: tex,
	}
}

// ID returns the entity's unique id
func (b *base) ID() uuid.UUID { return b.id }

// Kind returns the entity's kind
func (b *base) Kind() Kind { return b.kind }

// Bounds returns the entity's world rectangle
func (b *base) Bounds() world.Rect { return b.bounds }

// Texture returns the handle the host draws the entity with
func (b *base) Texture() TextureHandle { return b.texture }

// Tile is a floor tile in the background layer
type Tile struct{ base }

// NewTile creates a floor tile at pos
func NewTile(pos world.Vec2, tex TextureHandle) *Tile {
	return &Tile{newBase(KindTile, pos, DefaultSize, tex)}
}

// Wall is an impassable tile
type Wall struct{ base }

// NewWall creates a wall at pos
func NewWall(pos world.Vec2, tex TextureHandle) *Wall {
	return &Wall{newBase(KindWall, pos, DefaultSize, tex)}
}

// Crate is a static obstacle, plain or stacked
type Crate struct {
	base
	Stacked bool
}

// NewCrate creates a crate at pos
func NewCrate(pos world.Vec2, tex TextureHandle, stacked bool) *Crate {
	return &Crate{base: newBase(KindCrate, pos, DefaultSize, tex), Stacked: stacked}
}

// IsObstacle returns true for entities that block movement and placement
func IsObstacle(e Entity) bool {
	switch e.Kind() {
	case KindWall, KindCrate, KindOre:
		return true
	}
	return false
}
