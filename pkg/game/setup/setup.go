// Package setup turns a generated level into live entities: the three entity
// layers, the obstacle indexes, the player's safe spawn point and the enemies.
package setup

import (
	"io"
	"log"

	"goldmines/pkg/engine/spatial"
	"goldmines/pkg/engine/world"
	"goldmines/pkg/game/entities"
)

// Logger receives degraded-placement reports. Silent unless redirected.
var Logger = log.New(io.Discard, "setup: ", log.LstdFlags)

// Layers holds the entities of one level, split the way the host draws them
type Layers struct {
	Background []*entities.Tile
	Objects    []entities.Entity
	Walls      []*entities.Wall
}

// CoinCount returns the number of uncollected coins in the object layer
func (l *Layers) CoinCount() int {
	n := 0
	for _, e := range l.Objects {
		if c, ok := e.(*entities.Coin); ok && !c.IsCollected() {
			n++
		}
	}
	return n
}

// Doors returns every secret door in the object layer
func (l *Layers) Doors() []*entities.SecretDoor {
	var doors []*entities.SecretDoor
	for _, e := range l.Objects {
		if d, ok := e.(*entities.SecretDoor); ok {
			doors = append(doors, d)
		}
	}
	return doors
}

// Count returns the number of objects of the given kind
func (l *Layers) Count(kind entities.Kind) int {
	n := 0
	for _, e := range l.Objects {
		if e.Kind() == kind {
			n++
		}
	}
	return n
}

// Remove drops e from the object layer. Returns false if it was not there.
func (l *Layers) Remove(e entities.Entity) bool {
	for i, o := range l.Objects {
		if o.ID() == e.ID() {
			l.Objects = append(l.Objects[:i], l.Objects[i+1:]...)
			return true
		}
	}
	return false
}

// Blockers answers whether a box would collide with something a spawn must avoid
type Blockers interface {
	Overlaps(r world.Rect) bool
}

// BlockersFrom indexes what a spawned body may not overlap: walls, crates and ore
func BlockersFrom(l *Layers) *spatial.Index {
	ix := spatial.New(0)
	for _, w := range l.Walls {
		ix.Insert(w.Bounds())
	}
	for _, o := range l.Objects {
		if entities.IsObstacle(o) {
			ix.Insert(o.Bounds())
		}
	}
	return ix
}

// ObstaclesFrom indexes the static geometry bodies collide with while moving:
// walls and crates. Ore is left out because it disappears once mined.
func ObstaclesFrom(l *Layers) *spatial.Index {
	ix := spatial.New(0)
	for _, w := range l.Walls {
		ix.Insert(w.Bounds())
	}
	for _, o := range l.Objects {
		if o.Kind() == entities.KindCrate {
			ix.Insert(o.Bounds())
		}
	}
	return ix
}
