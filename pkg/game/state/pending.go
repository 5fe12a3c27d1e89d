package state

import "golang.org/x/sync/errgroup"

// PendingLevel is a level being built in the background. Its result is only
// reachable through Wait, so a half-built level is never observed.
type PendingLevel struct {
	Tier int

	group  errgroup.Group
	result *LevelState
}

// StartPending runs build on its own goroutine
func StartPending(tier int, build func() (*LevelState, error)) *PendingLevel {
	p := &PendingLevel{Tier: tier}
	p.group.Go(func() error {
		s, err := build()
		if err != nil {
			return err
		}
		p.result = s
		return nil
	})
	return p
}

// Wait blocks until the build finishes and returns its level. Later calls
// return the same result.
func (p *PendingLevel) Wait() (*LevelState, error) {
	if err := p.group.Wait(); err != nil {
		return nil, err
	}
	return p.result, nil
}

// Discard waits for the build and tears its level down
func (p *PendingLevel) Discard() {
	if p == nil {
		return
	}
	s, err := p.Wait()
	if err != nil {
		Logger.Printf("discarding tier %d build: %v", p.Tier+1, err)
		return
	}
	s.Teardown()
}
