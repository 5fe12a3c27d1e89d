package ai

import (
	"goldmines/pkg/engine/rng"
	"goldmines/pkg/engine/world"
)

// move steers towards the desired direction, pushed away from close obstacles, and
// commits the step only if the agent's box stays clear
func (a *Agent) move(dt, speed float64) {
	a.avoidance = a.avoidanceForce()
	if a.stuck {
		a.jitter = world.Vec2{X: rng.FloatRange(a.rng, -1, 1), Y: rng.FloatRange(a.rng, -1, 1)}
		a.avoidance = a.avoidance.Add(a.jitter)
	}

	a.velocity = a.desired.Add(a.avoidance).Normalize()
	next := a.pos.Add(a.velocity.Scale(speed * dt))

	if a.obstacles != nil && a.obstacles.Overlaps(a.Bounds().At(next)) {
		if a.mode == Patrolling {
			a.heading = a.heading.Scale(-1)
			a.patrolTimer = 0
		}
		return
	}
	a.pos = next
}

// avoidanceForce sums a push away from every obstacle center inside the avoidance
// radius, weighted linearly from 1 at the center to 0 at the radius
func (a *Agent) avoidanceForce() world.Vec2 {
	var force world.Vec2
	if a.obstacles == nil {
		return force
	}
	r := a.params.AvoidanceRadius
	a.obstacles.Near(a.pos, r, func(o world.Rect) {
		c := o.Center()
		d := a.pos.Dist(c)
		if d >= r {
			return
		}
		force = force.Add(a.pos.Sub(c).Normalize().Scale(1 - d/r))
	})
	return force
}
