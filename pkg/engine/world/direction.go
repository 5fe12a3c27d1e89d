package world

import "math"

// Direction represents one of the 8 compass directions on the grid.
// North is towards row 0.
type Direction int

// Direction constants, ordered by increasing angle from East (0°, 45°, ... 315°)
const (
	East Direction = iota
	SouthEast
	South
	SouthWest
	West
	NorthWest
	North
	NorthEast
)

// CardinalDirections returns the 4 cardinal directions for iteration
func CardinalDirections() []Direction {
	return []Direction{North, East, South, West}
}

// CompassDirections returns all 8 directions in angle order
func CompassDirections() []Direction {
	return []Direction{East, SouthEast, South, SouthWest, West, NorthWest, North, NorthEast}
}

// String returns the string representation of a direction
func (d Direction) String() string {
	switch d {
	case North:
		return "North"
	case NorthEast:
		return "NorthEast"
	case East:
		return "East"
	case SouthEast:
		return "SouthEast"
	case South:
		return "South"
	case SouthWest:
		return "SouthWest"
	case West:
		return "West"
	case NorthWest:
		return "NorthWest"
	default:
		return "Unknown"
	}
}

// IsValid returns true if the direction is one of the 8 compass directions
func (d Direction) IsValid() bool {
	return d >= East && d <= NorthEast
}

// Opposite returns the opposite direction
func (d Direction) Opposite() Direction {
	if !d.IsValid() {
		return d
	}
	return (d + 4) % 8
}

// Delta returns the column and row offsets for this direction
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case East:
		return 1, 0
	case SouthEast:
		return 1, 1
	case South:
		return 0, 1
	case SouthWest:
		return -1, 1
	case West:
		return -1, 0
	case NorthWest:
		return -1, -1
	case North:
		return 0, -1
	case NorthEast:
		return 1, -1
	default:
		return 0, 0
	}
}

// Angle returns the direction's angle in degrees (East = 0)
func (d Direction) Angle() float64 {
	if !d.IsValid() {
		return 0
	}
	return float64(d) * 45
}

// Unit returns the unit world vector at the direction's angle
func (d Direction) Unit() Vec2 {
	rad := d.Angle() * math.Pi / 180
	return Vec2{X: math.Cos(rad), Y: math.Sin(rad)}
}
