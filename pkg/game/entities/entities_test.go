package entities

import (
	"math/rand"
	"testing"

	"goldmines/pkg/engine/world"
)

type fakeOpener struct {
	ore                   int
	coins                 int
	healed                float64
	maxHealth, maxStamina float64
	speed                 float64
}

func (f *fakeOpener) OreCount() int { return f.ore }
func (f *fakeOpener) RemoveOre(n int) bool {
	if f.ore < n {
		return false
	}
	f.ore -= n
	return true
}
func (f *fakeOpener) AddCoins(n int)               { f.coins += n }
func (f *fakeOpener) Heal(a float64)               { f.healed += a }
func (f *fakeOpener) IncreaseMaxHealth(a float64)  { f.maxHealth += a }
func (f *fakeOpener) IncreaseMaxStamina(a float64) { f.maxStamina += a }
func (f *fakeOpener) IncreaseSpeed(a float64)      { f.speed += a }

func TestChestOpen_NeedsOre(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	chest := NewChest(world.Vec2{}, "closed", "open", 25)
	opener := &fakeOpener{ore: 1}

	if _, ok := chest.Open(opener, rng); ok {
		t.Fatal("Open with 1 ore = ok, want refused")
	}
	if chest.IsOpened() || opener.ore != 1 || opener.coins != 0 {
		t.Errorf("refused Open changed state: opened=%v ore=%d coins=%d", chest.IsOpened(), opener.ore, opener.coins)
	}

	opener.ore = 3
	if _, ok := chest.Open(opener, rng); !ok {
		t.Fatal("Open with 3 ore = refused, want ok")
	}
	if opener.ore != 1 {
		t.Errorf("ore after Open = %d, want 1", opener.ore)
	}
	if opener.coins != 25 {
		t.Errorf("coins after Open = %d, want 25", opener.coins)
	}
	if chest.Texture() != "open" {
		t.Errorf("Texture() = %v, want open", chest.Texture())
	}

	opener.ore = 5
	if _, ok := chest.Open(opener, rng); ok {
		t.Error("second Open = ok, want no-op")
	}
	if opener.ore != 5 || opener.coins != 25 {
		t.Errorf("second Open changed opener: ore=%d coins=%d", opener.ore, opener.coins)
	}
}

func TestChestOpen_BonusDistribution(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	const trials = 1000
	counts := make(map[Bonus]int)

	for i := 0; i < trials; i++ {
		chest := NewChest(world.Vec2{}, nil, nil, MinChestPayout)
		bonus, ok := chest.Open(&fakeOpener{ore: ChestOreCost}, rng)
		if !ok {
			t.Fatalf("trial %d: Open refused", i)
		}
		counts[bonus]++
	}

	heal := float64(counts[BonusHeal]) / trials
	if heal < 0.20 || heal > 0.30 {
		t.Errorf("heal fraction = %.3f, want within [0.20, 0.30]", heal)
	}
	for _, b := range []Bonus{BonusMaxHealth, BonusMaxStamina, BonusSpeed} {
		if counts[b] < 150 {
			t.Errorf("%v granted %d times in %d trials, want roughly a quarter", b, counts[b], trials)
		}
	}
	if counts[BonusNone] != 0 {
		t.Errorf("BonusNone granted %d times, want 0", counts[BonusNone])
	}
}

func TestSecretDoor_Gating(t *testing.T) {
	door := NewSecretDoor(world.Vec2{}, "closed", "open", 12)
	if door.Interact() {
		t.Error("Interact on closed door = true, want false")
	}
	if door.CheckAndOpen(11) {
		t.Error("CheckAndOpen(11) with threshold 12 = true, want false")
	}
	if door.IsOpen() {
		t.Error("door opened below threshold")
	}
	if !door.CheckAndOpen(12) {
		t.Error("CheckAndOpen(12) = false, want true")
	}
	if !door.IsOpen() || !door.Interact() {
		t.Error("door not open after reaching threshold")
	}
	if door.CheckAndOpen(40) {
		t.Error("CheckAndOpen on open door = true, want false")
	}
	if door.Texture() != "open" {
		t.Errorf("Texture() = %v, want open", door.Texture())
	}
}

func TestSecretDoor_ZeroThresholdOpensImmediately(t *testing.T) {
	door := NewSecretDoor(world.Vec2{}, nil, nil, 0)
	if !door.CheckAndOpen(0) {
		t.Error("CheckAndOpen(0) with threshold 0 = false, want true")
	}
}

func TestOreMine_Once(t *testing.T) {
	ore := NewOre(world.Vec2{}, nil, 9)
	if v, ok := ore.Mine(); !ok || v != 9 {
		t.Errorf("Mine() = (%d, %v), want (9, true)", v, ok)
	}
	if v, ok := ore.Mine(); ok || v != 0 {
		t.Errorf("second Mine() = (%d, %v), want (0, false)", v, ok)
	}
}

func TestCoin(t *testing.T) {
	coin := NewCoin(world.Vec2{X: 64, Y: 32}, nil)
	if b := coin.Bounds(); b.W != CoinSize || b.H != CoinSize || b.X != 64 {
		t.Errorf("Bounds() = %+v, want 16x16 at 64,32", b)
	}
	if !coin.Collect() || coin.Collect() {
		t.Error("Collect() should succeed exactly once")
	}
}

func TestIsObstacle(t *testing.T) {
	cases := []struct {
		e    Entity
		want bool
	}{
		{NewWall(world.Vec2{}, nil), true},
		{NewCrate(world.Vec2{}, nil, true), true},
		{NewOre(world.Vec2{}, nil, 5), true},
		{NewCoin(world.Vec2{}, nil), false},
		{NewChest(world.Vec2{}, nil, nil, 10), false},
		{NewTile(world.Vec2{}, nil), false},
	}
	for _, c := range cases {
		if got := IsObstacle(c.e); got != c.want {
			t.Errorf("IsObstacle(%v) = %v, want %v", c.e.Kind(), got, c.want)
		}
	}
}
