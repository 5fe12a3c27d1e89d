package setup

import (
	"math/rand"

	"goldmines/pkg/engine/rng"
	"goldmines/pkg/engine/world"
	"goldmines/pkg/game/entities"
	"goldmines/pkg/game/generator"
)

// instantiation carries what every constructor needs
type instantiation struct {
	layers        *Layers
	textures      entities.TextureSet
	rng           *rand.Rand
	requiredCoins int
	skipDoor      bool
}

type constructor func(in *instantiation, pos world.Vec2)

// constructors has one entry per tile kind; a nil entry is a programming error
var constructors = [world.TileKindCount]constructor{
	world.Empty: func(*instantiation, world.Vec2) {},
	world.Wall: func(in *instantiation, pos world.Vec2) {
		in.layers.Walls = append(in.layers.Walls, entities.NewWall(pos, in.textures.Get(entities.TextureWall)))
	},
	world.Ore: func(in *instantiation, pos world.Vec2) {
		value := rng.IntRange(in.rng, entities.MinOreValue, entities.MaxOreValue)
		in.add(entities.NewOre(pos, in.textures.Get(entities.TextureOre), value))
	},
	world.Chest: func(in *instantiation, pos world.Vec2) {
		payout := rng.IntRange(in.rng, entities.MinChestPayout, entities.MaxChestPayout)
		in.add(entities.NewChest(pos, in.textures.Get(entities.TextureChest), in.textures.Get(entities.TextureChestOpen), payout))
	},
	world.Coin: func(in *instantiation, pos world.Vec2) {
		in.add(entities.NewCoin(pos, in.textures.Get(entities.TextureCoin)))
	},
	world.SecretDoor: func(in *instantiation, pos world.Vec2) {
		if in.skipDoor {
			return
		}
		in.add(entities.NewSecretDoor(pos, in.textures.Get(entities.TextureDoorClosed),
			in.textures.Get(entities.TextureDoorOpen), in.requiredCoins))
	},
}

func (in *instantiation) add(e entities.Entity) {
	in.layers.Objects = append(in.layers.Objects, e)
}

// CreateEntities walks the level grid once and builds its entity layers. Every cell
// gets a floor tile; the cell's kind then decides what goes on top. Crates follow.
// With skipDoor the secret door is left out, as on the final tier.
func CreateEntities(level *generator.Level, textures entities.TextureSet, skipDoor bool, r *rand.Rand) *Layers {
	in := &instantiation{
		layers:        &Layers{},
		textures:      textures,
		rng:           r,
		requiredCoins: level.RequiredCoins,
		skipDoor:      skipDoor,
	}

	floor := textures.Get(entities.TextureFloor)
	level.Grid.ForEachCell(func(x, y int, kind world.TileKind) {
		pos := world.TileToWorld(x, y)
		in.layers.Background = append(in.layers.Background, entities.NewTile(pos, floor))
		if kind.IsValid() {
			constructors[kind](in, pos)
		}
	})

	for _, c := range level.Crates {
		tex := textures.Get(entities.TextureCrate)
		if c.Stacked {
			tex = textures.Get(entities.TextureCrateStacked)
		}
		in.add(entities.NewCrate(c.World(), tex, c.Stacked))
	}
	return in.layers
}
