package tier

import (
	"fmt"

	"github.com/leonelquinteros/gotext"

	"goldmines/pkg/game/generator"
)

// Manager tracks the current tier of a session. The index never decreases.
type Manager struct {
	configs []Config
	current int
}

// NewManager creates a manager over the first TotalTiers rows of Table
func NewManager() *Manager {
	m, err := NewManagerWith(Table[:TotalTiers])
	if err != nil {
		panic("invalid built-in tier table: " + err.Error())
	}
	return m
}

// NewManagerWith creates a manager over an arbitrary tier table
func NewManagerWith(configs []Config) (*Manager, error) {
	if len(configs) == 0 {
		return nil, fmt.Errorf("tier table is empty")
	}
	for i, c := range configs {
		if err := c.Validate(); err != nil {
			return nil, fmt.Errorf("tier %d: %w", i+1, err)
		}
	}
	cp := make([]Config, len(configs))
	copy(cp, configs)
	return &Manager{configs: cp}, nil
}

// Current returns the 0-based tier index
func (m *Manager) Current() int {
	return m.current
}

// DisplayIndex returns the 1-based tier number shown to the player
func (m *Manager) DisplayIndex() int {
	return m.current + 1
}

// TotalTiers returns the number of tiers managed
func (m *Manager) TotalTiers() int {
	return len(m.configs)
}

// HasNext returns true if there is a tier after the current one
func (m *Manager) HasNext() bool {
	return m.current+1 < len(m.configs)
}

// IsFinalTier returns true if the current tier is the last one
func (m *Manager) IsFinalTier() bool {
	return !m.HasNext()
}

// NextTier returns the next tier (1-based), or 0 if the current tier is final
func (m *Manager) NextTier() int {
	if !m.HasNext() {
		return 0
	}
	return m.current + 2
}

// Advance moves to the next tier. It does nothing on the last tier.
func (m *Manager) Advance() bool {
	if !m.HasNext() {
		return false
	}
	m.current++
	return true
}

// Config returns the configuration of the current tier
func (m *Manager) Config() Config {
	return m.configs[m.current]
}

// ConfigAt returns the configuration of tier i (0-based)
func (m *Manager) ConfigAt(i int) (Config, bool) {
	if i < 0 || i >= len(m.configs) {
		return Config{}, false
	}
	return m.configs[i], true
}

// NewGenerator creates a level generator for tier i (0-based)
func (m *Manager) NewGenerator(i, widthPx, heightPx int, opts ...generator.Option) (*generator.Generator, error) {
	cfg, ok := m.ConfigAt(i)
	if !ok {
		return nil, fmt.Errorf("tier %d out of range 1..%d", i+1, len(m.configs))
	}
	return generator.New(cfg.Params(), widthPx, heightPx, opts...)
}

// Name returns the translated display name of the current tier
func (m *Manager) Name() string {
	return fmt.Sprintf(gotext.Get("TIER_NAME"), m.DisplayIndex(), len(m.configs))
}
