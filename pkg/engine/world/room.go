package world

import "math/rand"

// Room is an axis-aligned rectangle in grid coordinates
type Room struct {
	X, Y          int
	Width, Height int
}

// Center returns the integer center cell of the room
func (r Room) Center() Point {
	return Point{X: r.X + r.Width/2, Y: r.Y + r.Height/2}
}

// Overlaps reports whether two rooms share any cell. Rooms that only touch edges do not overlap.
func (r Room) Overlaps(o Room) bool {
	return r.X < o.X+o.Width && r.X+r.Width > o.X && r.Y < o.Y+o.Height && r.Y+r.Height > o.Y
}

// Contains reports whether the cell (x, y) is inside the room
func (r Room) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}

// Interior returns the inclusive cell bounds of the room without its outermost ring
func (r Room) Interior() (minX, minY, maxX, maxY int) {
	return r.X + 1, r.Y + 1, r.X + r.Width - 2, r.Y + r.Height - 2
}

// HasInterior returns true if the room has at least one interior cell
func (r Room) HasInterior() bool {
	minX, minY, maxX, maxY := r.Interior()
	return minX <= maxX && minY <= maxY
}

// ForEachInterior calls fn for every interior cell, column by column
func (r Room) ForEachInterior(fn func(x, y int)) {
	minX, minY, maxX, maxY := r.Interior()
	for x := minX; x <= maxX; x++ {
		for y := minY; y <= maxY; y++ {
			fn(x, y)
		}
	}
}

// WorldBounds returns the world rectangle covered by the room
func (r Room) WorldBounds() Rect {
	return Rect{
		X: float64(r.X * TileSize),
		Y: float64(r.Y * TileSize),
		W: float64(r.Width * TileSize),
		H: float64(r.Height * TileSize),
	}
}

// RoomSet holds accepted rooms in acceptance order. No two rooms overlap.
type RoomSet struct {
	rooms []Room
}

// NewRoomSet creates an empty room set
func NewRoomSet() *RoomSet {
	return &RoomSet{}
}

// Add accepts the room if it overlaps no accepted room. Returns false if rejected.
func (s *RoomSet) Add(r Room) bool {
	for _, existing := range s.rooms {
		if existing.Overlaps(r) {
			return false
		}
	}
	s.rooms = append(s.rooms, r)
	return true
}

// Len returns the number of accepted rooms
func (s *RoomSet) Len() int {
	return len(s.rooms)
}

// At returns the i-th accepted room
func (s *RoomSet) At(i int) Room {
	return s.rooms[i]
}

// All returns a copy of the accepted rooms in acceptance order
func (s *RoomSet) All() []Room {
	out := make([]Room, len(s.rooms))
	copy(out, s.rooms)
	return out
}

// Random returns a uniformly chosen room. Returns false if the set is empty.
func (s *RoomSet) Random(rng *rand.Rand) (Room, bool) {
	if len(s.rooms) == 0 {
		return Room{}, false
	}
	return s.rooms[rng.Intn(len(s.rooms))], true
}
