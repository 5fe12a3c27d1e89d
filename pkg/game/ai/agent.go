// Package ai drives enemies. Each Agent patrols on a random heading and chases its
// target once the target is inside its vision radius with a clear line of sight.
// Movement is steered away from nearby obstacles and perturbed when the agent has
// made no progress for a while.
package ai

import (
	"math/rand"

	"goldmines/pkg/engine/rng"
	"goldmines/pkg/engine/world"
)

// Target is what agents chase and attack
type Target interface {
	Position() world.Vec2
	IsAlive() bool
	// ApplyDamage subtracts amount and returns the remaining health
	ApplyDamage(amount float64) float64
}

// Obstacles answers the static collision queries agents need
type Obstacles interface {
	// Near calls fn for every obstacle whose center lies within radius of center
	Near(center world.Vec2, radius float64, fn func(world.Rect))
	Overlaps(r world.Rect) bool
	Contains(p world.Vec2) bool
}

// Host is notified of attack outcomes
type Host interface {
	OnPlayerDamaged(amount float64)
	OnPlayerDied()
}

// Mode is the behavior an agent is in
type Mode int

const (
	Patrolling Mode = iota
	Chasing
)

// String returns the string representation of a mode
func (m Mode) String() string {
	switch m {
	case Patrolling:
		return "Patrolling"
	case Chasing:
		return "Chasing"
	default:
		return "Unknown"
	}
}

// Params are the tuning constants of an agent
type Params struct {
	ChaseSpeed      float64
	PatrolSpeed     float64
	VisionRadius    float64
	AvoidanceRadius float64
	PatrolInterval  float64 // Seconds between heading changes
	Damage          float64
	AttackCooldown  float64
	AttackRange     float64
	StuckDistance   float64 // Per-tick displacement below which the agent counts as stalled
	StuckTime       float64
	SightSamples    int
	Size            float64
}

// DefaultParams returns the standard enemy tuning
func DefaultParams() Params {
	return Params{
		ChaseSpeed:      150,
		PatrolSpeed:     100,
		VisionRadius:    300,
		AvoidanceRadius: 50,
		PatrolInterval:  2,
		Damage:          20,
		AttackCooldown:  2,
		AttackRange:     50,
		StuckDistance:   1,
		StuckTime:       0.5,
		SightSamples:    world.SightSamples,
		Size:            world.TileSize,
	}
}

// Option configures an Agent
type Option func(*Agent)

// WithRand sets the agent's random source
func WithRand(r *rand.Rand) Option {
	return func(a *Agent) {
		a.rng = r
	}
}

// WithParams overrides the agent's tuning
func WithParams(p Params) Option {
	return func(a *Agent) {
		a.params = p
	}
}

// Agent is one enemy
type Agent struct {
	params    Params
	rng       *rand.Rand
	target    Target
	obstacles Obstacles
	host      Host

	pos       world.Vec2
	velocity  world.Vec2
	desired   world.Vec2
	avoidance world.Vec2
	heading   world.Vec2
	lastPos   world.Vec2
	jitter    world.Vec2

	mode        Mode
	patrolTimer float64
	stuckTimer  float64
	stuck       bool
	attackTimer float64
	facingLeft  bool
	killed      bool
}

// New creates an agent at pos
func New(pos world.Vec2, target Target, obstacles Obstacles, host Host, opts ...Option) *Agent {
	a := &Agent{
		params:    DefaultParams(),
		target:    target,
		obstacles: obstacles,
		host:      host,
		pos:       pos,
		lastPos:   pos,
	}
	for _, opt := range opts {
		opt(a)
	}
	if a.rng == nil {
		a.rng = rng.New(0)
	}
	a.heading = rng.UnitVector(a.rng)
	// The first attack is not delayed
	a.attackTimer = a.params.AttackCooldown
	return a
}

// Update advances the agent by dt seconds
func (a *Agent) Update(dt float64) {
	targetPos := a.target.Position()
	dist := a.pos.Dist(targetPos)

	if a.target.IsAlive() && dist <= a.params.VisionRadius && a.CanSeeTarget() {
		a.mode = Chasing
		a.updateChasing(dt, targetPos)
	} else {
		a.mode = Patrolling
		a.updatePatrol(dt)
	}

	a.attackTimer += dt
	if a.target.IsAlive() && dist <= a.params.AttackRange && a.CanSeeTarget() && a.attackTimer >= a.params.AttackCooldown {
		a.attack()
	}
}

func (a *Agent) updateChasing(dt float64, targetPos world.Vec2) {
	if a.pos.Dist(a.lastPos) < a.params.StuckDistance {
		a.stuckTimer += dt
		if a.stuckTimer > a.params.StuckTime {
			a.stuck = true
		}
	} else {
		a.stuckTimer = 0
		a.stuck = false
	}
	a.lastPos = a.pos

	a.desired = targetPos.Sub(a.pos).Normalize()
	a.facingLeft = targetPos.X < a.pos.X
	a.move(dt, a.params.ChaseSpeed)
}

func (a *Agent) updatePatrol(dt float64) {
	a.patrolTimer += dt
	if a.patrolTimer >= a.params.PatrolInterval {
		a.patrolTimer = 0
		a.heading = rng.UnitVector(a.rng)
	}
	a.desired = a.heading
	a.facingLeft = a.heading.X < 0
	a.move(dt, a.params.PatrolSpeed)
}

func (a *Agent) attack() {
	remaining := a.target.ApplyDamage(a.params.Damage)
	a.attackTimer = 0
	if a.host == nil {
		return
	}
	a.host.OnPlayerDamaged(a.params.Damage)
	if remaining <= 0 && !a.killed {
		a.killed = true
		a.host.OnPlayerDied()
	}
}

// Mode returns the agent's current behavior
func (a *Agent) Mode() Mode { return a.mode }

// Position returns the agent's anchor corner
func (a *Agent) Position() world.Vec2 { return a.pos }

// Velocity returns the last steering direction (unit length or zero)
func (a *Agent) Velocity() world.Vec2 { return a.velocity }

// Avoidance returns the last accumulated avoidance vector
func (a *Agent) Avoidance() world.Vec2 { return a.avoidance }

// Heading returns the patrol heading
func (a *Agent) Heading() world.Vec2 { return a.heading }

// FacingLeft returns true if the agent faces towards negative X
func (a *Agent) FacingLeft() bool { return a.facingLeft }

// Stuck returns true while the agent is flagged as stuck
func (a *Agent) Stuck() bool { return a.stuck }

// LastPerturbation returns the random push added on the last stuck tick
func (a *Agent) LastPerturbation() world.Vec2 { return a.jitter }

// Bounds returns the agent's world rectangle
func (a *Agent) Bounds() world.Rect {
	return world.NewRect(a.pos, a.params.Size, a.params.Size)
}
