// Package generator builds levels: a walled grid carved into rooms joined by
// L-shaped corridors, then populated with chests, ore, coins, crates and a
// secret door. Generation never fails once the parameters are valid; shortfalls
// are logged through Logger and the level is returned as built.
package generator

import (
	"fmt"
	"io"
	"log"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/zyedidia/generic/mapset"

	"goldmines/pkg/engine/rng"
	"goldmines/pkg/engine/world"
)

// Logger receives degraded-generation reports. Silent unless redirected.
var Logger = log.New(io.Discard, "generator: ", log.LstdFlags)

// Params are the generation parameters of one level
type Params struct {
	MinRooms      int
	MaxRooms      int
	MinRoomSize   int
	MaxRoomSize   int
	CorridorWidth int
	MaxCoins      int
}

// Validate returns an error describing the first invalid parameter, or nil
func (p Params) Validate() error {
	switch {
	case p.MinRooms < 0 || p.MaxRooms <= 0:
		return fmt.Errorf("room count bounds must be positive (min %d, max %d)", p.MinRooms, p.MaxRooms)
	case p.MinRooms > p.MaxRooms:
		return fmt.Errorf("min rooms %d exceeds max rooms %d", p.MinRooms, p.MaxRooms)
	case p.MinRoomSize <= 0:
		return fmt.Errorf("min room size must be positive, got %d", p.MinRoomSize)
	case p.MinRoomSize > p.MaxRoomSize:
		return fmt.Errorf("min room size %d exceeds max room size %d", p.MinRoomSize, p.MaxRoomSize)
	case p.CorridorWidth < 1:
		return fmt.Errorf("corridor width must be at least 1, got %d", p.CorridorWidth)
	case p.MaxCoins < 0:
		return fmt.Errorf("coin budget must not be negative, got %d", p.MaxCoins)
	}
	return nil
}

// Option configures a Generator
type Option func(*Generator)

// WithSeed seeds the generator's own random source
func WithSeed(seed int64) Option {
	return func(g *Generator) {
		g.seed = seed
		g.rng = nil
	}
}

// WithRand makes the generator draw from r. The caller must not share r across goroutines.
func WithRand(r *rand.Rand) Option {
	return func(g *Generator) {
		g.rng = r
	}
}

// Generator builds levels for one set of parameters
type Generator struct {
	params Params
	width  int // Grid cells
	height int
	seed   int64
	rng    *rand.Rand
}

// New creates a generator for a widthPx x heightPx area
func New(p Params, widthPx, heightPx int, opts ...Option) (*Generator, error) {
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("invalid level parameters: %w", err)
	}

	g := &Generator{
		params: p,
		width:  widthPx / world.TileSize,
		height: heightPx / world.TileSize,
	}
	if g.width < 3 || g.height < 3 {
		return nil, fmt.Errorf("level area %dx%d px is smaller than 3x3 tiles", widthPx, heightPx)
	}

	for _, opt := range opts {
		opt(g)
	}
	if g.rng == nil {
		if g.seed == 0 {
			g.seed = time.Now().UnixNano()
		}
		g.rng = rng.New(g.seed)
	}
	return g, nil
}

// Params returns the generator's parameters
func (g *Generator) Params() Params {
	return g.params
}

// Size returns the grid size in cells
func (g *Generator) Size() (int, int) {
	return g.width, g.height
}

// Generate builds a new level. Each call produces an independent level
// from the generator's random source.
func (g *Generator) Generate() (*Level, error) {
	b := &build{
		params:     g.params,
		rng:        g.rng,
		grid:       world.NewBuilder(g.width, g.height, world.Wall),
		rooms:      world.NewRoomSet(),
		secret:     -1,
		placements: make(map[world.TileKind][]world.Point),
		crated:     mapset.New[world.Point](),
	}

	b.placeRooms()
	if b.rooms.Len() == 0 {
		return nil, fmt.Errorf("no room of size %d..%d fits a %dx%d grid",
			g.params.MinRoomSize, g.params.MaxRoomSize, g.width, g.height)
	}
	if b.rooms.Len() < g.params.MinRooms {
		Logger.Printf("degraded: placed %d rooms, wanted at least %d", b.rooms.Len(), g.params.MinRooms)
	}

	b.connectRooms()
	b.populate()
	b.placeCrates()

	return &Level{
		ID:            uuid.New(),
		Seed:          g.seed,
		Params:        g.params,
		Grid:          b.grid.Freeze(),
		rooms:         b.rooms,
		SecretRoom:    b.secret,
		Placements:    b.placements,
		Crates:        b.crates,
		RequiredCoins: b.totalCoins,
		TotalCoins:    b.totalCoins,
		door:          b.door,
		hasDoor:       b.hasDoor,
	}, nil
}

// build is the mutable state of one Generate call
type build struct {
	params     Params
	rng        *rand.Rand
	grid       *world.Builder
	rooms      *world.RoomSet
	secret     int
	placements map[world.TileKind][]world.Point
	crates     []CratePlacement
	crated     mapset.Set[world.Point]
	totalCoins int
	door       world.Point
	hasDoor    bool
}

// commit writes kind at p only if the cell is still Empty
func (b *build) commit(p world.Point, kind world.TileKind) bool {
	if b.grid.Get(p.X, p.Y) != world.Empty {
		return false
	}
	b.grid.Set(p.X, p.Y, kind)
	b.placements[kind] = append(b.placements[kind], p)
	return true
}

// randomInterior returns a uniformly random interior cell of r
func (b *build) randomInterior(r world.Room) world.Point {
	minX, minY, maxX, maxY := r.Interior()
	return world.Point{X: rng.IntRange(b.rng, minX, maxX), Y: rng.IntRange(b.rng, minY, maxY)}
}

// findInterior samples interior cells of r until accept passes, then falls back to a
// column-major scan so a near-full room still yields a cell when one exists.
func (b *build) findInterior(r world.Room, accept func(world.Point) bool) (world.Point, bool) {
	if !r.HasInterior() {
		return world.Point{}, false
	}
	p, ok := rng.SampleUntil(sampleAttempts, func() (world.Point, bool) {
		p := b.randomInterior(r)
		return p, accept(p)
	})
	if ok {
		return p, true
	}

	found := false
	r.ForEachInterior(func(x, y int) {
		if !found && accept(world.Point{X: x, Y: y}) {
			p, found = world.Point{X: x, Y: y}, true
		}
	})
	return p, found
}

func (b *build) isEmpty(p world.Point) bool {
	return b.grid.Get(p.X, p.Y) == world.Empty
}
