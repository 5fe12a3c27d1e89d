package world

// Builder is the mutable grid used while a level is being carved and populated.
// It is owned by a single generator; Freeze yields the read-only Grid.
type Builder struct {
	width  int
	height int
	cells  []TileKind
}

// NewBuilder creates a width x height builder with every cell set to fill
func NewBuilder(width, height int, fill TileKind) *Builder {
	if width <= 0 || height <= 0 {
		panic("Grid dimensions must be positive")
	}

	b := &Builder{
		width:  width,
		height: height,
		cells:  make([]TileKind, width*height),
	}
	for i := range b.cells {
		b.cells[i] = fill
	}
	return b
}

// Width returns the number of columns
func (b *Builder) Width() int {
	return b.width
}

// Height returns the number of rows
func (b *Builder) Height() int {
	return b.height
}

// IsValidPosition checks if a position is within grid bounds
func (b *Builder) IsValidPosition(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// IsPlayablePosition checks if a position is within the playable area (not on the perimeter)
func (b *Builder) IsPlayablePosition(x, y int) bool {
	return x >= 1 && x < b.width-1 && y >= 1 && y < b.height-1
}

// Get returns the kind at (x, y). Positions outside the grid read as Wall.
func (b *Builder) Get(x, y int) TileKind {
	if !b.IsValidPosition(x, y) {
		return Wall
	}
	return b.cells[y*b.width+x]
}

// Set writes kind at (x, y). Returns false if out of bounds.
func (b *Builder) Set(x, y int, kind TileKind) bool {
	if !b.IsValidPosition(x, y) {
		return false
	}
	b.cells[y*b.width+x] = kind
	return true
}

// Carve converts a Wall cell to Empty. Any other cell is left untouched.
// Returns true if the cell changed.
func (b *Builder) Carve(x, y int) bool {
	if !b.IsValidPosition(x, y) || b.cells[y*b.width+x] != Wall {
		return false
	}
	b.cells[y*b.width+x] = Empty
	return true
}

// CarveRoom carves every cell covered by the room
func (b *Builder) CarveRoom(r Room) {
	for x := r.X; x < r.X+r.Width; x++ {
		for y := r.Y; y < r.Y+r.Height; y++ {
			b.Carve(x, y)
		}
	}
}

// Count returns the number of cells holding kind
func (b *Builder) Count(kind TileKind) int {
	n := 0
	for _, k := range b.cells {
		if k == kind {
			n++
		}
	}
	return n
}

// Freeze returns a read-only copy of the current cells
func (b *Builder) Freeze() *Grid {
	cells := make([]TileKind, len(b.cells))
	copy(cells, b.cells)
	return &Grid{width: b.width, height: b.height, cells: cells}
}

// Grid is a read-only tile grid produced by Builder.Freeze
type Grid struct {
	width  int
	height int
	cells  []TileKind
}

// Width returns the number of columns in the grid
func (g *Grid) Width() int {
	return g.width
}

// Height returns the number of rows in the grid
func (g *Grid) Height() int {
	return g.height
}

// IsValidPosition checks if a position is within grid bounds
func (g *Grid) IsValidPosition(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// IsOnPerimeter checks if a position is on the edge of the grid
func (g *Grid) IsOnPerimeter(x, y int) bool {
	return g.IsValidPosition(x, y) && (x == 0 || y == 0 || x == g.width-1 || y == g.height-1)
}

// Get returns the kind at (x, y). Positions outside the grid read as Wall.
func (g *Grid) Get(x, y int) TileKind {
	if !g.IsValidPosition(x, y) {
		return Wall
	}
	return g.cells[y*g.width+x]
}

// ForEachCell iterates over all cells in the grid, column by column
func (g *Grid) ForEachCell(fn func(x, y int, kind TileKind)) {
	for x := 0; x < g.width; x++ {
		for y := 0; y < g.height; y++ {
			fn(x, y, g.cells[y*g.width+x])
		}
	}
}

// Count returns the number of cells holding kind
func (g *Grid) Count(kind TileKind) int {
	n := 0
	for _, k := range g.cells {
		if k == kind {
			n++
		}
	}
	return n
}

// WorldSize returns the world extent of the grid
func (g *Grid) WorldSize() (float64, float64) {
	return float64(g.width * TileSize), float64(g.height * TileSize)
}
