package ai

import "goldmines/pkg/engine/world"

// CanSeeTarget samples the segment to the target at fixed intervals. Thin obstacles
// that fall between samples do not block sight.
func (a *Agent) CanSeeTarget() bool {
	if a.obstacles == nil {
		return true
	}
	return world.SampleSegment(a.pos, a.target.Position(), a.params.SightSamples, a.obstacles.Contains)
}
