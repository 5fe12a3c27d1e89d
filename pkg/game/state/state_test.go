package state

import (
	"errors"
	"testing"

	"goldmines/pkg/engine/world"
	"goldmines/pkg/game/entities"
	"goldmines/pkg/game/setup"
	"goldmines/pkg/game/tier"
)

func TestAddMessage_KeepsLastFive(t *testing.T) {
	g := NewGame(tier.NewManager(), 1)
	for i := 0; i < 8; i++ {
		g.AddMessagef("m%d", i)
	}
	if len(g.Messages) != maxMessages {
		t.Fatalf("len(Messages) = %d, want %d", len(g.Messages), maxMessages)
	}
	if g.Messages[0] != "m3" || g.Messages[4] != "m7" {
		t.Errorf("Messages = %v, want m3..m7", g.Messages)
	}
}

func TestOnPlayerDied_Once(t *testing.T) {
	g := NewGame(tier.NewManager(), 1)
	g.Player = NewPlayer(world.Vec2{})
	g.OnPlayerDied()
	g.OnPlayerDied()
	if !g.Over || !g.Player.IsDead() {
		t.Error("OnPlayerDied did not end the session")
	}
	if len(g.Messages) != 1 {
		t.Errorf("len(Messages) = %d, want 1", len(g.Messages))
	}
}

type handle struct {
	calls *int
	fail  bool
	boom  bool
}

func (h *handle) Release() error {
	*h.calls++
	if h.boom {
		panic("driver gone")
	}
	if h.fail {
		return errors.New("busy")
	}
	return nil
}

func TestReleaseTextures_DistinctHandlesAndSurvivesFailures(t *testing.T) {
	calls := 0
	shared := &handle{calls: &calls}
	g := NewGame(tier.NewManager(), 1)
	g.Textures = entities.TextureSet{
		entities.TextureFloor: shared,
		entities.TextureWall:  shared,
		entities.TextureCoin:  &handle{calls: &calls, boom: true},
		entities.TextureOre:   &handle{calls: &calls, fail: true},
		entities.TextureChest: "plain",
		entities.TextureCrate: nil,
	}

	if got := g.ReleaseTextures(); got != 1 {
		t.Errorf("ReleaseTextures() released %d, want 1", got)
	}
	if calls != 3 {
		t.Errorf("Release called %d times, want 3 (shared once, failing, panicking)", calls)
	}
	if got := g.ReleaseTextures(); got != 0 {
		t.Errorf("second ReleaseTextures() = %d, want 0", got)
	}
	if calls != 3 {
		t.Errorf("second ReleaseTextures released again (%d calls)", calls)
	}
}

func TestTeardown_DropsLevelStateButNotTextures(t *testing.T) {
	calls := 0
	shared := &handle{calls: &calls}
	s := &LevelState{Layers: &setup.Layers{
		Background: []*entities.Tile{entities.NewTile(world.Vec2{}, shared)},
		Walls:      []*entities.Wall{entities.NewWall(world.Vec2{}, shared)},
	}}

	s.Teardown()
	if s.Layers != nil || s.Obstacles != nil || s.Blockers != nil || s.Agents != nil {
		t.Error("Teardown left level state behind")
	}
	if calls != 0 {
		t.Errorf("Teardown released %d session textures, want 0", calls)
	}
	s.Teardown()
}

func TestTeardown_NilAndPartial(t *testing.T) {
	var s *LevelState
	s.Teardown()
	(&LevelState{}).Teardown()

	var g *Game
	if got := g.ReleaseTextures(); got != 0 {
		t.Errorf("nil ReleaseTextures() = %d, want 0", got)
	}
	if got := NewGame(tier.NewManager(), 1).ReleaseTextures(); got != 0 {
		t.Errorf("ReleaseTextures() without textures = %d, want 0", got)
	}
}

func TestPendingLevel_WaitPublishesWholeResult(t *testing.T) {
	release := make(chan struct{})
	want := &LevelState{Tier: 1, TotalCoins: 30}
	p := StartPending(1, func() (*LevelState, error) {
		<-release
		return want, nil
	})
	close(release)

	got, err := p.Wait()
	if err != nil {
		t.Fatalf("Wait() error = %v", err)
	}
	if got != want {
		t.Errorf("Wait() = %p, want %p", got, want)
	}
	again, _ := p.Wait()
	if again != want {
		t.Error("second Wait() returned a different level")
	}
}

func TestPendingLevel_Error(t *testing.T) {
	p := StartPending(0, func() (*LevelState, error) {
		return nil, errors.New("no room fits")
	})
	if _, err := p.Wait(); err == nil {
		t.Error("Wait() error = nil, want the build error")
	}
	p.Discard()
}
