package world

import (
	"github.com/zyedidia/generic/mapset"
	"github.com/zyedidia/generic/queue"
)

// Passable reports whether a tile kind can be walked through by a flood fill
type Passable func(kind TileKind) bool

// NotWall treats every carved cell as passable, whatever it holds
func NotWall(kind TileKind) bool {
	return kind != Wall
}

// OnlyEmpty treats only Empty cells as passable
func OnlyEmpty(kind TileKind) bool {
	return kind == Empty
}

// Reachable returns all cells reachable from start via N/E/S/W steps over passable cells.
// The result is empty if start itself is not passable.
func Reachable(g *Grid, start Point, passable Passable) mapset.Set[Point] {
	visited := mapset.New[Point]()
	if !g.IsValidPosition(start.X, start.Y) || !passable(g.Get(start.X, start.Y)) {
		return visited
	}

	frontier := queue.New[Point]()
	frontier.Enqueue(start)
	visited.Put(start)

	for !frontier.Empty() {
		current := frontier.Dequeue()
		for _, dir := range CardinalDirections() {
			dx, dy := dir.Delta()
			next := current.Add(dx, dy)
			if !g.IsValidPosition(next.X, next.Y) || visited.Has(next) {
				continue
			}
			if !passable(g.Get(next.X, next.Y)) {
				continue
			}
			visited.Put(next)
			frontier.Enqueue(next)
		}
	}

	return visited
}

// Connected reports whether every passable cell of the grid is reachable from start
func Connected(g *Grid, start Point, passable Passable) bool {
	reached := Reachable(g, start, passable)
	total := 0
	g.ForEachCell(func(x, y int, kind TileKind) {
		if passable(kind) {
			total++
		}
	})
	return reached.Size() == total
}

// Unreachable returns the passable cells that cannot be reached from start
func Unreachable(g *Grid, start Point, passable Passable) []Point {
	reached := Reachable(g, start, passable)
	var missing []Point
	g.ForEachCell(func(x, y int, kind TileKind) {
		p := Point{X: x, Y: y}
		if passable(kind) && !reached.Has(p) {
			missing = append(missing, p)
		}
	})
	return missing
}
