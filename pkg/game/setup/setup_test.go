package setup

import (
	"math/rand"
	"testing"

	"goldmines/pkg/engine/world"
	"goldmines/pkg/game/entities"
	"goldmines/pkg/game/generator"
)

var tierOne = generator.Params{MinRooms: 8, MaxRooms: 12, MinRoomSize: 8, MaxRoomSize: 12, CorridorWidth: 2, MaxCoins: 30}

func generate(t *testing.T, seed int64) *generator.Level {
	t.Helper()
	g, err := generator.New(tierOne, 2560, 1440, generator.WithSeed(seed))
	if err != nil {
		t.Fatalf("generator.New error = %v", err)
	}
	level, err := g.Generate()
	if err != nil {
		t.Fatalf("Generate error = %v", err)
	}
	return level
}

func TestConstructors_CoverEveryTileKind(t *testing.T) {
	for _, kind := range world.AllTileKinds() {
		if constructors[kind] == nil {
			t.Errorf("no constructor for tile kind %v", kind)
		}
	}
}

func TestCreateEntities_MatchesGrid(t *testing.T) {
	level := generate(t, 11)
	layers := CreateEntities(level, nil, false, rand.New(rand.NewSource(1)))

	cells := level.Grid.Width() * level.Grid.Height()
	if len(layers.Background) != cells {
		t.Errorf("len(Background) = %d, want %d", len(layers.Background), cells)
	}
	if got, want := len(layers.Walls), level.Grid.Count(world.Wall); got != want {
		t.Errorf("len(Walls) = %d, want %d", got, want)
	}
	checks := []struct {
		kind entities.Kind
		tile world.TileKind
	}{
		{entities.KindOre, world.Ore},
		{entities.KindChest, world.Chest},
		{entities.KindCoin, world.Coin},
		{entities.KindSecretDoor, world.SecretDoor},
	}
	for _, c := range checks {
		if got, want := layers.Count(c.kind), level.Grid.Count(c.tile); got != want {
			t.Errorf("Count(%v) = %d, want %d", c.kind, got, want)
		}
	}
	if got := layers.Count(entities.KindCrate); got != len(level.Crates) {
		t.Errorf("Count(Crate) = %d, want %d", got, len(level.Crates))
	}
	if layers.CoinCount() != level.TotalCoins {
		t.Errorf("CoinCount() = %d, want TotalCoins %d", layers.CoinCount(), level.TotalCoins)
	}
}

func TestCreateEntities_ValueRanges(t *testing.T) {
	level := generate(t, 12)
	layers := CreateEntities(level, nil, false, rand.New(rand.NewSource(2)))
	for _, e := range layers.Objects {
		switch o := e.(type) {
		case *entities.Ore:
			if o.Value < entities.MinOreValue || o.Value > entities.MaxOreValue {
				t.Errorf("ore value %d out of range", o.Value)
			}
		case *entities.Chest:
			if o.Payout < entities.MinChestPayout || o.Payout > entities.MaxChestPayout {
				t.Errorf("chest payout %d out of range", o.Payout)
			}
		case *entities.SecretDoor:
			if o.RequiredCoins != level.RequiredCoins {
				t.Errorf("door threshold %d, want %d", o.RequiredCoins, level.RequiredCoins)
			}
		}
	}
}

func TestCreateEntities_SkipDoor(t *testing.T) {
	level := generate(t, 13)
	if _, ok := level.Door(); !ok {
		t.Skip("seed produced no door")
	}
	layers := CreateEntities(level, nil, true, rand.New(rand.NewSource(3)))
	if n := len(layers.Doors()); n != 0 {
		t.Errorf("skipDoor left %d doors, want 0", n)
	}
}

func TestCreateEntities_UsesTextureSlots(t *testing.T) {
	level := generate(t, 14)
	textures := entities.TextureSet{
		entities.TextureWall:         "wall",
		entities.TextureCrate:        "crate",
		entities.TextureCrateStacked: "stacked",
	}
	layers := CreateEntities(level, textures, false, rand.New(rand.NewSource(4)))
	if layers.Walls[0].Texture() != "wall" {
		t.Errorf("wall texture = %v, want wall", layers.Walls[0].Texture())
	}
	for _, e := range layers.Objects {
		c, ok := e.(*entities.Crate)
		if !ok {
			continue
		}
		want := "crate"
		if c.Stacked {
			want = "stacked"
		}
		if c.Texture() != want {
			t.Errorf("crate stacked=%v texture = %v, want %s", c.Stacked, c.Texture(), want)
		}
	}
}

func TestLayersRemove(t *testing.T) {
	coin := entities.NewCoin(world.Vec2{}, nil)
	l := &Layers{Objects: []entities.Entity{entities.NewCoin(world.Vec2{}, nil), coin}}
	if !l.Remove(coin) {
		t.Fatal("Remove = false, want true")
	}
	if l.Remove(coin) {
		t.Error("second Remove = true, want false")
	}
	if len(l.Objects) != 1 {
		t.Errorf("len(Objects) = %d, want 1", len(l.Objects))
	}
}
