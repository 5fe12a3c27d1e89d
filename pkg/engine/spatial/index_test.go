package spatial

import (
	"testing"

	"goldmines/pkg/engine/world"
)

func TestIndex_Overlaps(t *testing.T) {
	ix := New(0)
	ix.Insert(world.TileRect(2, 2))

	if !ix.Overlaps(world.Rect{X: 70, Y: 70, W: 32, H: 32}) {
		t.Error("Overlaps(intersecting) = false, want true")
	}
	if ix.Overlaps(world.Rect{X: 96, Y: 64, W: 32, H: 32}) {
		t.Error("Overlaps(touching edge) = true, want false")
	}
	if ix.Overlaps(world.Rect{X: 500, Y: 500, W: 32, H: 32}) {
		t.Error("Overlaps(far away) = true, want false")
	}
}

func TestIndex_Contains(t *testing.T) {
	ix := New(0)
	ix.Insert(world.TileRect(1, 0))
	if !ix.Contains(world.Vec2{X: 40, Y: 10}) {
		t.Error("Contains(inside) = false, want true")
	}
	if ix.Contains(world.Vec2{X: 10, Y: 10}) {
		t.Error("Contains(outside) = true, want false")
	}
}

func TestIndex_NearVisitsOncePerRect(t *testing.T) {
	ix := New(16)
	// spans several buckets
	ix.Insert(world.Rect{X: 0, Y: 0, W: 64, H: 64})
	ix.Insert(world.TileRect(10, 10))

	count := 0
	ix.Near(world.Vec2{X: 40, Y: 40}, 50, func(world.Rect) { count++ })
	if count != 1 {
		t.Errorf("Near visited %d rects, want 1", count)
	}
}

func TestIndex_NearMatchesBruteForce(t *testing.T) {
	ix := New(0)
	for x := 0; x < 12; x++ {
		for y := 0; y < 12; y += 3 {
			ix.Insert(world.TileRect(x, y))
		}
	}
	center := world.Vec2{X: 150, Y: 130}
	const radius = 50

	want := 0
	for _, r := range ix.All() {
		if r.Center().Dist(center) <= radius {
			want++
		}
	}
	got := 0
	ix.Near(center, radius, func(world.Rect) { got++ })
	if got != want {
		t.Errorf("Near count = %d, want %d", got, want)
	}
}
