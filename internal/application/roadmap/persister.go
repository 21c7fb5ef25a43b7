package roadmap

import (
	"context"
	"time"

	"github.com/penwyp/go-course-roadmap/internal/core/model"
)

// DefaultSaveDelay is how long the simulated persister takes
const DefaultSaveDelay = 1500 * time.Millisecond

// Persister stores a roadmap snapshot
type Persister interface {
	Persist(ctx context.Context, state model.RoadmapState) error
}

// PersisterFunc adapts a function to Persister
type PersisterFunc func(ctx context.Context, state model.RoadmapState) error

func (f PersisterFunc) Persist(ctx context.Context, state model.RoadmapState) error {
	return f(ctx, state)
}

// SimulatedPersister waits for Delay and reports success. There is no
// storage behind it.
type SimulatedPersister struct {
	Delay time.Duration
}

// NewSimulatedPersister creates a persister with the given delay; a negative
// delay is treated as zero
func NewSimulatedPersister(delay time.Duration) *SimulatedPersister {
	if delay < 0 {
		delay = 0
	}
	return &SimulatedPersister{Delay: delay}
}

func (p *SimulatedPersister) Persist(ctx context.Context, state model.RoadmapState) error {
	if p.Delay <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(p.Delay)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
