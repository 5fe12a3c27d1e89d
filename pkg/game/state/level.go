package state

import (
	"fmt"
	"io"
	"log"

	"github.com/google/uuid"
	"github.com/zyedidia/generic/mapset"

	"goldmines/pkg/engine/spatial"
	"goldmines/pkg/engine/world"
	"goldmines/pkg/game/ai"
	"goldmines/pkg/game/entities"
	"goldmines/pkg/game/generator"
	"goldmines/pkg/game/setup"
)

// Logger receives teardown failures. Silent unless redirected.
var Logger = log.New(io.Discard, "state: ", log.LstdFlags)

// LevelState is a fully instantiated level. It is built whole, off the tick loop
// when pre-generated, and never mutated until it becomes the active level.
type LevelState struct {
	ID    uuid.UUID
	Tier  int // 0-based
	Level *generator.Level

	Layers    *setup.Layers
	Obstacles *spatial.Index // Walls and crates, for movement and sight
	Blockers  *spatial.Index // Walls, crates and ore, for spawning
	Agents    []*ai.Agent

	TotalCoins int
	StartRoom  world.Room

	tornDown bool
}

// Rooms returns the level's rooms in acceptance order
func (s *LevelState) Rooms() []world.Room {
	if s == nil || s.Level == nil {
		return nil
	}
	return s.Level.Rooms()
}

// Teardown drops what the level owns: its entities, agents and spatial indexes.
// Texture handles belong to the session and are left alone, since the next level
// is built from the same set. Safe on a nil or partially built state and on repeated calls.
func (s *LevelState) Teardown() {
	if s == nil || s.tornDown {
		return
	}
	s.tornDown = true
	s.Agents = nil
	s.Layers = nil
	s.Obstacles = nil
	s.Blockers = nil
}

// ReleaseTextures frees every distinct handle of the session texture set that
// implements entities.Releaser and returns how many were released. Release failures
// and panics are logged and never stop the others. Only the first call releases.
func (g *Game) ReleaseTextures() int {
	if g == nil || g.texturesReleased {
		return 0
	}
	g.texturesReleased = true

	released := 0
	seen := mapset.New[entities.Releaser]()
	for key, h := range g.Textures {
		r, ok := h.(entities.Releaser)
		if !ok {
			continue
		}
		ok, err := release(r, seen)
		if err != nil {
			Logger.Printf("releasing texture %q: %v", key, err)
			continue
		}
		if ok {
			released++
		}
	}
	return released
}

// release frees r unless it was already freed during this pass
func release(r entities.Releaser, seen mapset.Set[entities.Releaser]) (released bool, err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("panic: %v", p)
		}
	}()
	if !markSeen(r, seen) {
		return false, nil
	}
	return true, r.Release()
}

// markSeen records r and reports whether it is new. Handles of incomparable dynamic
// types cannot be hashed; they always count as new.
func markSeen(r entities.Releaser, seen mapset.Set[entities.Releaser]) (fresh bool) {
	defer func() {
		if recover() != nil {
			fresh = true
		}
	}()
	if seen.Has(r) {
		return false
	}
	seen.Put(r)
	return true
}
