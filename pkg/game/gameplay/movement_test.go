package gameplay

import (
	"testing"

	"goldmines/pkg/engine/world"
	"goldmines/pkg/game/entities"
	"goldmines/pkg/game/state"
	"goldmines/pkg/game/tier"
)

func TestMovePlayer_OpenFloor(t *testing.T) {
	g := handBuiltGame(t, tier.NewManager())
	if err := Tick(g, 0.1, Intent{Move: world.Vec2{X: -5}}); err != nil {
		t.Fatalf("Tick() error = %v", err)
	}
	if got := g.Player.Position(); got != (world.Vec2{X: 300, Y: 320}) {
		t.Errorf("Position() = %v, want {300 320}", got)
	}
	if !g.Player.FacingLeft() {
		t.Error("FacingLeft() = false after moving left")
	}
}

func TestMovePlayer_Sprint(t *testing.T) {
	g := handBuiltGame(t, tier.NewManager())
	Tick(g, 0.1, Intent{Move: world.Vec2{X: 1}, Sprint: true})
	if got := g.Player.Position().X; got != 350 {
		t.Errorf("Position().X = %v, want 350", got)
	}
	if got := g.Player.Stamina(); got != 97 {
		t.Errorf("Stamina() = %v, want 97", got)
	}
}

func TestMovePlayer_BlockedAxisSlides(t *testing.T) {
	g := handBuiltGame(t, tier.NewManager())
	g.Active.Obstacles.Insert(world.Rect{X: 356, Y: 320, W: 32, H: 32})

	Tick(g, 0.1, Intent{Move: world.Vec2{X: 1}})
	if got := g.Player.Position(); got != (world.Vec2{X: 320, Y: 320}) {
		t.Errorf("Position() = %v, want blocked at {320 320}", got)
	}

	Tick(g, 0.1, Intent{Move: world.Vec2{X: 1, Y: 1}})
	got := g.Player.Position()
	if got.X != 320 {
		t.Errorf("Position().X = %v, want 320 against the wall", got.X)
	}
	if got.Y <= 320 {
		t.Errorf("Position().Y = %v, want to slide past 320", got.Y)
	}
}

func TestMining(t *testing.T) {
	ore := entities.NewOre(world.Vec2{X: 384, Y: 320}, nil, 9)
	g := handBuiltGame(t, tier.NewManager(), ore)

	Tick(g, 0.5, Intent{Mine: true})
	if g.Player.MiningTarget() != ore {
		t.Fatal("ore in reach was not targeted")
	}
	Tick(g, 0.5, Intent{Mine: true})
	if !ore.IsMined() {
		t.Fatal("ore not mined after one second")
	}
	if inv := g.Player.Inventory(); len(inv) != 1 || inv[0] != 9 {
		t.Errorf("Inventory() = %v, want [9]", inv)
	}
	if g.Active.Layers.Count(entities.KindOre) != 0 {
		t.Error("mined ore left in the object layer")
	}
}

func TestMining_ReleasingKeyResets(t *testing.T) {
	ore := entities.NewOre(world.Vec2{X: 384, Y: 320}, nil, 9)
	g := handBuiltGame(t, tier.NewManager(), ore)

	Tick(g, 0.6, Intent{Mine: true})
	Tick(g, 0.1, Intent{})
	Tick(g, 0.6, Intent{Mine: true})
	if ore.IsMined() {
		t.Error("progress survived releasing the mine key")
	}
}

func TestNearestOre_OutOfReach(t *testing.T) {
	g := handBuiltGame(t, tier.NewManager(), entities.NewOre(world.Vec2{X: 320 + state.MiningDistance + 1, Y: 320}, nil, 5))
	if nearestOre(g) != nil {
		t.Error("nearestOre() found ore beyond mining distance")
	}
}
