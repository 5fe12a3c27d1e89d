package world

import "math"

// Point is an integer grid position (X = column, Y = row)
type Point struct {
	X, Y int
}

// Add returns the point offset by (dx, dy)
func (p Point) Add(dx, dy int) Point {
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// World returns the world-space position of the tile's origin corner
func (p Point) World() Vec2 {
	return TileToWorld(p.X, p.Y)
}

// TileToWorld converts a tile index to world coordinates
func TileToWorld(x, y int) Vec2 {
	return Vec2{X: float64(x * TileSize), Y: float64(y * TileSize)}
}

// Vec2 is a world-space vector
type Vec2 struct {
	X, Y float64
}

// Add returns v + o
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale returns v * s
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Len returns the euclidean length of v
func (v Vec2) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// Dist returns the distance between v and o
func (v Vec2) Dist(o Vec2) float64 {
	return v.Sub(o).Len()
}

// Normalize returns v scaled to unit length. The zero vector stays zero.
func (v Vec2) Normalize() Vec2 {
	l := v.Len()
	if l == 0 {
		return Vec2{}
	}
	return Vec2{X: v.X / l, Y: v.Y / l}
}

// IsZero returns true if both components are zero
func (v Vec2) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// Lerp returns the point at fraction t along the segment v->o
func (v Vec2) Lerp(o Vec2, t float64) Vec2 {
	return Vec2{X: v.X + (o.X-v.X)*t, Y: v.Y + (o.Y-v.Y)*t}
}

// Rect is an axis-aligned world-space rectangle anchored at its lower corner
type Rect struct {
	X, Y, W, H float64
}

// NewRect creates a rectangle at pos with the given size
func NewRect(pos Vec2, w, h float64) Rect {
	return Rect{X: pos.X, Y: pos.Y, W: w, H: h}
}

// TileRect returns the world rectangle covered by the tile at (x, y)
func TileRect(x, y int) Rect {
	return NewRect(TileToWorld(x, y), TileSize, TileSize)
}

// Pos returns the anchor corner of the rectangle
func (r Rect) Pos() Vec2 {
	return Vec2{X: r.X, Y: r.Y}
}

// At returns the same-sized rectangle moved to pos
func (r Rect) At(pos Vec2) Rect {
	r.X, r.Y = pos.X, pos.Y
	return r
}

// Center returns the center point of the rectangle
func (r Rect) Center() Vec2 {
	return Vec2{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// Overlaps reports whether r and o share interior area. Touching edges do not overlap.
func (r Rect) Overlaps(o Rect) bool {
	return r.X < o.X+o.W && r.X+r.W > o.X && r.Y < o.Y+o.H && r.Y+r.H > o.Y
}

// Contains reports whether p lies inside r, edges included
func (r Rect) Contains(p Vec2) bool {
	return p.X >= r.X && p.X <= r.X+r.W && p.Y >= r.Y && p.Y <= r.Y+r.H
}
