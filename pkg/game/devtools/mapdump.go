// Package devtools provides developer tools for testing and debugging.
package devtools

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/gookit/color"

	"goldmines/pkg/engine/world"
	"goldmines/pkg/game/entities"
	"goldmines/pkg/game/state"
)

const mapDumpFilename = "map.txt"

// Map symbols
const (
	symbolWall       = '#'
	symbolFloor      = '.'
	symbolOre        = 'o'
	symbolChest      = 'C'
	symbolChestOpen  = 'c'
	symbolCoin       = '$'
	symbolDoor       = 'D'
	symbolDoorOpen   = 'd'
	symbolCrate      = 'x'
	symbolCrateStack = 'X'
	symbolEnemy      = 'e'
	symbolPlayer     = '@'
)

var symbolStyles = map[rune]color.Style{
	symbolWall:       {color.FgGray},
	symbolOre:        {color.FgCyan, color.OpBold},
	symbolChest:      {color.FgMagenta, color.OpBold},
	symbolChestOpen:  {color.FgMagenta},
	symbolCoin:       {color.FgYellow, color.OpBold},
	symbolDoor:       {color.FgRed, color.OpBold},
	symbolDoorOpen:   {color.FgGreen},
	symbolCrate:      {color.FgYellow},
	symbolCrateStack: {color.FgYellow, color.OpBold},
	symbolEnemy:      {color.FgRed},
	symbolPlayer:     {color.FgGreen, color.BgBlack, color.OpBold},
}

// Options controls what WriteMap prints
type Options struct {
	Colored bool
	// Crop the picture to this many columns and rows. Zero prints everything.
	MaxCols int
	MaxRows int
}

// objectSymbol returns the map symbol of a live object
func objectSymbol(e entities.Entity) (rune, bool) {
	switch o := e.(type) {
	case *entities.Ore:
		return symbolOre, !o.IsMined()
	case *entities.Chest:
		if o.IsOpened() {
			return symbolChestOpen, true
		}
		return symbolChest, true
	case *entities.Coin:
		return symbolCoin, !o.IsCollected()
	case *entities.SecretDoor:
		if o.IsOpen() {
			return symbolDoorOpen, true
		}
		return symbolDoor, true
	case *entities.Crate:
		if o.Stacked {
			return symbolCrateStack, true
		}
		return symbolCrate, true
	}
	return 0, false
}

func cellOf(v world.Vec2) world.Point {
	return world.Point{X: int(v.X) / world.TileSize, Y: int(v.Y) / world.TileSize}
}

// symbols returns the picture of the active level, row by row
func symbols(g *state.Game) [][]rune {
	lvl := g.Active
	grid := lvl.Level.Grid
	rows := make([][]rune, grid.Height())
	for y := range rows {
		rows[y] = make([]rune, grid.Width())
		for x := range rows[y] {
			if grid.Get(x, y) == world.Wall {
				rows[y][x] = symbolWall
			} else {
				rows[y][x] = symbolFloor
			}
		}
	}

	put := func(p world.Point, r rune) {
		if grid.IsValidPosition(p.X, p.Y) {
			rows[p.Y][p.X] = r
		}
	}
	for _, e := range lvl.Layers.Objects {
		if r, ok := objectSymbol(e); ok {
			put(cellOf(e.Bounds().Pos()), r)
		}
	}
	for _, a := range lvl.Agents {
		put(cellOf(a.Bounds().Center()), symbolEnemy)
	}
	if g.Player != nil {
		put(cellOf(g.Player.Bounds().Center()), symbolPlayer)
	}
	return rows
}

// WriteMap prints the active level as a character map with a legend
func WriteMap(w io.Writer, g *state.Game, opts Options) error {
	if g.Active == nil || g.Active.Level == nil {
		return fmt.Errorf("no active level")
	}

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%s  coins %d/%d\n", g.Tiers.Name(), g.CollectedCoins, g.Active.TotalCoins)
	fmt.Fprintln(bw, "# wall  . floor  o ore  C chest  $ coin  D door  x crate  e enemy  @ player")

	for y, row := range symbols(g) {
		if opts.MaxRows > 0 && y >= opts.MaxRows {
			break
		}
		for x, r := range row {
			if opts.MaxCols > 0 && x >= opts.MaxCols {
				break
			}
			if style, ok := symbolStyles[r]; ok && opts.Colored {
				bw.WriteString(style.Sprint(string(r)))
				continue
			}
			bw.WriteRune(r)
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

// DumpMapToFile writes a full debug dump of the active level to map.txt:
// metadata, legend, map, then every room, object and agent with its state.
func DumpMapToFile(g *state.Game) (string, error) {
	absPath, err := filepath.Abs(mapDumpFilename)
	if err != nil {
		return "", err
	}
	f, err := os.Create(absPath)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if err := writeDump(f, g); err != nil {
		return "", err
	}
	return absPath, nil
}

func writeDump(w io.Writer, g *state.Game) error {
	lvl := g.Active
	if lvl == nil || lvl.Level == nil {
		return fmt.Errorf("no active level")
	}
	grid := lvl.Level.Grid

	fmt.Fprintln(w, "=== MAP DUMP DEBUG (level layout, rooms, entities) ===")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "--- Metadata ---")
	fmt.Fprintf(w, "level_id: %s\n", lvl.ID)
	fmt.Fprintf(w, "tier: %d/%d\n", lvl.Tier+1, g.Tiers.TotalTiers())
	fmt.Fprintf(w, "level_seed: %d\n", lvl.Level.Seed)
	fmt.Fprintf(w, "grid_cols: %d\n", grid.Width())
	fmt.Fprintf(w, "grid_rows: %d\n", grid.Height())
	ww, wh := grid.WorldSize()
	fmt.Fprintf(w, "world_size: %.0fx%.0f\n", ww, wh)
	fmt.Fprintf(w, "coordinate_system: x,y (0-based tiles, x=column, y=row)\n")
	fmt.Fprintf(w, "connected: %v\n", lvl.Level.Connected())
	fmt.Fprintf(w, "coins: %d/%d required: %d\n", g.CollectedCoins, lvl.TotalCoins, lvl.Level.RequiredCoins)
	if g.Player != nil {
		p := cellOf(g.Player.Bounds().Center())
		fmt.Fprintf(w, "player_cell: %d,%d health: %.0f stamina: %.0f ore: %d\n",
			p.X, p.Y, g.Player.Health(), g.Player.Stamina(), g.Player.OreCount())
	}
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, "--- Map ---")
	if err := WriteMap(w, g, Options{}); err != nil {
		return err
	}
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, "--- Rooms ---")
	for i, r := range lvl.Rooms() {
		fmt.Fprintf(w, "  index: %d x: %d y: %d w: %d h: %d secret: %v start: %v\n",
			i, r.X, r.Y, r.Width, r.Height, i == lvl.Level.SecretRoom, r == lvl.StartRoom)
	}
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, "--- Objects ---")
	for _, e := range lvl.Layers.Objects {
		p := cellOf(e.Bounds().Pos())
		fmt.Fprintf(w, "  kind: %s x: %d y: %d%s\n", e.Kind(), p.X, p.Y, objectState(e))
	}
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, "--- Agents ---")
	for _, a := range lvl.Agents {
		p := cellOf(a.Bounds().Center())
		fmt.Fprintf(w, "  x: %d y: %d mode: %s stuck: %v\n", p.X, p.Y, a.Mode(), a.Stuck())
	}
	return nil
}

func objectState(e entities.Entity) string {
	switch o := e.(type) {
	case *entities.Ore:
		return fmt.Sprintf(" value: %d", o.Value)
	case *entities.Chest:
		return fmt.Sprintf(" payout: %d opened: %v", o.Payout, o.IsOpened())
	case *entities.SecretDoor:
		return fmt.Sprintf(" required_coins: %d open: %v", o.RequiredCoins, o.IsOpen())
	case *entities.Crate:
		return fmt.Sprintf(" stacked: %v", o.Stacked)
	}
	return ""
}
