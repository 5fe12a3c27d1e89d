package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/gookit/color"
	"github.com/leonelquinteros/gotext"

	"goldmines/pkg/engine/rng"
	"goldmines/pkg/engine/terminal"
	"goldmines/pkg/engine/world"
	"goldmines/pkg/game/devtools"
	"goldmines/pkg/game/entities"
	"goldmines/pkg/game/gameplay"
	"goldmines/pkg/game/generator"
	"goldmines/pkg/game/setup"
	"goldmines/pkg/game/state"
)

const (
	tickRate = 60
	dt       = 1.0 / tickRate

	// Seconds without progress before the autopilot wanders off in a random direction
	stuckAfter  = 1.5
	wanderFor   = 0.75
	minProgress = 8.0
)

func initGettext(locale string) {
	gotext.Configure("locales", locale, "default")
}

// enableLogging sends engine diagnostics to w
func enableLogging(w io.Writer) {
	generator.Logger.SetOutput(w)
	setup.Logger.SetOutput(w)
	state.Logger.SetOutput(w)
}

// autopilot plays headless: it walks to the nearest coin, mines and interacts
// with whatever is in reach, and wanders when it stops making progress
type autopilot struct {
	last     world.Vec2
	idle     float64
	wander   float64
	heading  world.Vec2
	lastTier int
}

func (a *autopilot) intent(g *state.Game) gameplay.Intent {
	pos := g.Player.Position()
	if g.Tiers.Current() != a.lastTier {
		a.lastTier, a.idle, a.wander = g.Tiers.Current(), 0, 0
		a.last = pos
	}

	if a.wander > 0 {
		a.wander -= dt
		return gameplay.Intent{Move: a.heading, Mine: true, Interact: true}
	}

	a.idle += dt
	if pos.Dist(a.last) >= minProgress {
		a.last, a.idle = pos, 0
	}
	if a.idle >= stuckAfter {
		a.idle, a.wander = 0, wanderFor
		a.heading = rng.UnitVector(g.Rand)
	}

	return gameplay.Intent{Move: a.goal(g).Sub(pos), Mine: true, Interact: true}
}

// goal is the nearest open door, else the nearest coin, else the player itself
func (a *autopilot) goal(g *state.Game) world.Vec2 {
	pos := g.Player.Position()
	best, bestDist := pos, -1.0
	for _, e := range g.Active.Layers.Objects {
		switch o := e.(type) {
		case *entities.SecretDoor:
			if o.IsOpen() {
				return o.Bounds().Pos()
			}
		case *entities.Coin:
			if o.IsCollected() {
				continue
			}
			if d := pos.Dist(o.Bounds().Pos()); bestDist < 0 || d < bestDist {
				best, bestDist = o.Bounds().Pos(), d
			}
		}
	}
	return best
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run plays one session and returns the process exit code. The session is torn
// down on every return path.
func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("goldmines", flag.ContinueOnError)
	fs.SetOutput(stderr)
	seed := fs.Int64("seed", 0, "session seed, 0 picks one from the clock")
	width := fs.Int("width", 1280, "screen width in pixels; the level is twice as wide")
	height := fs.Int("height", 720, "screen height in pixels; the level is twice as tall")
	ticks := fs.Int("ticks", 60*tickRate, "number of ticks to simulate")
	dump := fs.Bool("dump", false, "write a full debug dump to map.txt when done")
	colored := fs.Bool("color", terminal.IsTerminal(), "colour the printed map")
	verbose := fs.Bool("v", false, "log engine diagnostics to stderr")
	locale := fs.String("locale", "en_GB", "message locale")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	initGettext(*locale)
	color.Enable = *colored
	if *verbose {
		enableLogging(stderr)
	}

	g, err := gameplay.BuildGame(gameplay.Options{
		WidthPx:  *width * 2,
		HeightPx: *height * 2,
		Seed:     *seed,
	})
	if err != nil {
		fmt.Fprintf(stderr, "Error building game: %v\n", err)
		return 1
	}
	defer gameplay.Teardown(g)

	fmt.Fprintf(stdout, "seed %d\n", g.Seed)
	pilot := &autopilot{last: g.Player.Position()}
	shown := ""
	for i := 0; i < *ticks && !g.Finished(); i++ {
		if err := gameplay.Tick(g, dt, pilot.intent(g)); err != nil {
			fmt.Fprintf(stderr, "Error advancing level: %v\n", err)
			return 1
		}
		if n := len(g.Messages); n > 0 && g.Messages[n-1] != shown {
			shown = g.Messages[n-1]
			fmt.Fprintf(stdout, "[%6.2fs] %s\n", g.Elapsed, shown)
		}
	}

	fmt.Fprintf(stdout, "tier %d/%d  coins %d/%d  health %.0f  ore %d  won %v  over %v\n",
		gameplay.CurrentTierDisplayIndex(g), gameplay.TotalTiers(g),
		gameplay.CollectedCoins(g), gameplay.TotalCoinsThisLevel(g),
		g.Player.Health(), g.Player.OreCount(), g.Won, g.Over)

	cols, rows := terminal.Viewport(g.Active.Level.Grid.Width(), g.Active.Level.Grid.Height(), 4)
	if err := devtools.WriteMap(stdout, g, devtools.Options{Colored: *colored, MaxCols: cols, MaxRows: rows}); err != nil {
		fmt.Fprintf(stderr, "Error printing map: %v\n", err)
	}

	if *dump {
		path, err := devtools.DumpMapToFile(g)
		if err != nil {
			fmt.Fprintf(stderr, "Error writing map dump: %v\n", err)
			return 1
		}
		fmt.Fprintf(stdout, "map dump written to %s\n", path)
	}
	return 0
}
