package tier

import "testing"

func TestTable_RowsAreValid(t *testing.T) {
	for i, c := range Table {
		if err := c.Validate(); err != nil {
			t.Errorf("Table[%d].Validate() = %v, want nil", i, err)
		}
	}
	if TotalTiers > len(Table) {
		t.Errorf("TotalTiers = %d exceeds table rows %d", TotalTiers, len(Table))
	}
}

func TestValidate_Rejects(t *testing.T) {
	base := Table[0]
	cases := map[string]func(c *Config){
		"min rooms above max": func(c *Config) { c.MinRooms = c.MaxRooms + 1 },
		"zero room size":      func(c *Config) { c.MinRoomSize = 0 },
		"room size inverted":  func(c *Config) { c.MaxRoomSize = c.MinRoomSize - 1 },
		"zero corridor":       func(c *Config) { c.CorridorWidth = 0 },
		"negative coins":      func(c *Config) { c.MaxCoins = -1 },
		"negative spawn rate": func(c *Config) { c.EnemySpawnRate = -1 },
	}
	for name, mutate := range cases {
		c := base
		mutate(&c)
		if err := c.Validate(); err == nil {
			t.Errorf("%s: Validate() = nil, want error", name)
		}
	}
}

func TestNextTier(t *testing.T) {
	if got := NextTier(1); got != 2 {
		t.Errorf("NextTier(1) = %d, want 2", got)
	}
	if got := NextTier(TotalTiers); got != 0 {
		t.Errorf("NextTier(%d) = %d, want 0", TotalTiers, got)
	}
	if got := NextTier(0); got != 0 {
		t.Errorf("NextTier(0) = %d, want 0", got)
	}
	if !IsFinalTier(TotalTiers) || IsFinalTier(1) {
		t.Error("IsFinalTier boundaries wrong")
	}
}

func TestEnemies(t *testing.T) {
	if got := Table[0].Enemies(); got != 10 {
		t.Errorf("Enemies() = %d, want 10", got)
	}
}
