// Package spatial provides a uniform bucket index over static world rectangles.
package spatial

import (
	"math"

	"github.com/zyedidia/generic/mapset"

	"goldmines/pkg/engine/world"
)

// DefaultBucketSize is one tile; level obstacles are tile-sized
const DefaultBucketSize = world.TileSize

// Index buckets rectangles on a coarse grid so proximity queries only touch nearby items.
// An Index is built once and only read afterwards; it is safe for concurrent readers.
type Index struct {
	bucket  float64
	rects   []world.Rect
	buckets map[world.Point][]int
}

// New creates an empty index. A non-positive bucket size uses DefaultBucketSize.
func New(bucket float64) *Index {
	if bucket <= 0 {
		bucket = DefaultBucketSize
	}
	return &Index{bucket: bucket, buckets: make(map[world.Point][]int)}
}

// Insert adds a rectangle to the index
func (ix *Index) Insert(r world.Rect) {
	id := len(ix.rects)
	ix.rects = append(ix.rects, r)
	minB, maxB := ix.span(r)
	for bx := minB.X; bx <= maxB.X; bx++ {
		for by := minB.Y; by <= maxB.Y; by++ {
			key := world.Point{X: bx, Y: by}
			ix.buckets[key] = append(ix.buckets[key], id)
		}
	}
}

// Len returns the number of indexed rectangles
func (ix *Index) Len() int {
	return len(ix.rects)
}

// All returns a copy of every indexed rectangle in insertion order
func (ix *Index) All() []world.Rect {
	out := make([]world.Rect, len(ix.rects))
	copy(out, ix.rects)
	return out
}

// Query calls fn once for every rectangle whose bucket span intersects area
func (ix *Index) Query(area world.Rect, fn func(world.Rect) bool) {
	seen := mapset.New[int]()
	minB, maxB := ix.span(area)
	for bx := minB.X; bx <= maxB.X; bx++ {
		for by := minB.Y; by <= maxB.Y; by++ {
			for _, id := range ix.buckets[world.Point{X: bx, Y: by}] {
				if seen.Has(id) {
					continue
				}
				seen.Put(id)
				if !fn(ix.rects[id]) {
					return
				}
			}
		}
	}
}

// Near calls fn for every rectangle whose center lies within radius of center
func (ix *Index) Near(center world.Vec2, radius float64, fn func(world.Rect)) {
	// A rect's center can sit up to half its size away from its nearest edge,
	// so widen the search area by a bucket on each side.
	area := world.Rect{
		X: center.X - radius - ix.bucket,
		Y: center.Y - radius - ix.bucket,
		W: 2 * (radius + ix.bucket),
		H: 2 * (radius + ix.bucket),
	}
	ix.Query(area, func(r world.Rect) bool {
		if r.Center().Dist(center) <= radius {
			fn(r)
		}
		return true
	})
}

// Overlaps reports whether r strictly overlaps any indexed rectangle
func (ix *Index) Overlaps(r world.Rect) bool {
	hit := false
	ix.Query(r, func(o world.Rect) bool {
		if r.Overlaps(o) {
			hit = true
			return false
		}
		return true
	})
	return hit
}

// Contains reports whether p lies inside any indexed rectangle
func (ix *Index) Contains(p world.Vec2) bool {
	hit := false
	ix.Query(world.Rect{X: p.X, Y: p.Y}, func(o world.Rect) bool {
		if o.Contains(p) {
			hit = true
			return false
		}
		return true
	})
	return hit
}

func (ix *Index) span(r world.Rect) (world.Point, world.Point) {
	minB := world.Point{X: ix.cell(r.X), Y: ix.cell(r.Y)}
	maxB := world.Point{X: ix.cell(r.X + r.W), Y: ix.cell(r.Y + r.H)}
	return minB, maxB
}

func (ix *Index) cell(v float64) int {
	return int(math.Floor(v / ix.bucket))
}
