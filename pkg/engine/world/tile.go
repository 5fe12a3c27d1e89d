// Package world provides generic 2D grid-based world primitives.
// These are engine-level constructs: tiles, grids, rooms and world geometry.
package world

// TileSize is the edge length of one tile in world units.
const TileSize = 32

// TileKind is the content of a single grid cell. Exactly one kind occupies each cell.
type TileKind uint8

// Tile kinds. The numeric codes are stable and used by the map dump legend.
const (
	Empty TileKind = iota
	Wall
	Ore
	Chest
	Coin
	SecretDoor
)

// TileKindCount is the number of tile kinds, for tables indexed by TileKind.
const TileKindCount = int(SecretDoor) + 1

// AllTileKinds returns every tile kind in code order
func AllTileKinds() []TileKind {
	return []TileKind{Empty, Wall, Ore, Chest, Coin, SecretDoor}
}

// String returns the string representation of a tile kind
func (k TileKind) String() string {
	switch k {
	case Empty:
		return "Empty"
	case Wall:
		return "Wall"
	case Ore:
		return "Ore"
	case Chest:
		return "Chest"
	case Coin:
		return "Coin"
	case SecretDoor:
		return "SecretDoor"
	default:
		return "Unknown"
	}
}

// IsValid returns true if the kind is one of the defined tile kinds
func (k TileKind) IsValid() bool {
	return int(k) < TileKindCount
}

// IsOccupied returns true for kinds that hold something (anything other than Empty)
func (k TileKind) IsOccupied() bool {
	return k != Empty
}
