// Package swarm runs a flocking.Simulation on an actor system, one actor
// per flock. Flocks are stepped concurrently; the result of a tick is the
// same as flocking.Simulation.Step.
package swarm

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/lao-tseu-is-alive/go-flocking-simulation/pkg/flocking"
	"github.com/lao-tseu-is-alive/go-flocking-simulation/pkg/geometry"
	"github.com/tochemey/goakt/v3/actor"
	"github.com/tochemey/goakt/v3/log"
	"golang.org/x/sync/errgroup"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// DefaultTickTimeout bounds how long Step waits for a flock actor to reply.
const DefaultTickTimeout = time.Second

// ErrNotStarted is returned by Step before Start or after Stop.
var ErrNotStarted = errors.New("engine is not started")

// Engine drives a Simulation with one goakt actor per flock.
type Engine struct {
	sim     *flocking.Simulation
	logger  log.Logger
	timeout time.Duration

	system actor.ActorSystem
	pids   []*actor.PID
}

// NewEngine wraps sim. A zero timeout selects DefaultTickTimeout and a nil
// logger discards everything.
func NewEngine(sim *flocking.Simulation, logger log.Logger, timeout time.Duration) *Engine {
	if logger == nil {
		logger = log.DiscardLogger
	}
	if timeout <= 0 {
		timeout = DefaultTickTimeout
	}
	return &Engine{sim: sim, logger: logger, timeout: timeout}
}

// Start boots the actor system and spawns one actor per flock.
// Flocks added to the world afterwards are not driven by the engine.
func (e *Engine) Start(ctx context.Context) error {
	system, err := actor.NewActorSystem("FlockingWorld",
		actor.WithLogger(e.logger),
		actor.WithActorInitMaxRetries(3))
	if err != nil {
		return fmt.Errorf("failed to create actor system: %w", err)
	}
	if err := system.Start(ctx); err != nil {
		return fmt.Errorf("failed to start actor system: %w", err)
	}

	flocks := e.sim.World().Flocks()
	pids := make([]*actor.PID, 0, len(flocks))
	for i, f := range flocks {
		pid, err := system.Spawn(ctx, "flock-"+string(f.ID), NewFlockActor(e.sim, i), actor.WithLongLived())
		if err != nil {
			if stopErr := system.Stop(ctx); stopErr != nil {
				e.logger.Warnf("failed to stop actor system: %v", stopErr)
			}
			return fmt.Errorf("failed to spawn actor for flock %s: %w", f.ID, err)
		}
		pids = append(pids, pid)
	}

	e.system = system
	e.pids = pids
	e.logger.Infof("engine started with %d flock actors", len(pids))
	return nil
}

// Step sends one tick to every flock actor and waits for all of them.
// It returns the total number of agents updated.
func (e *Engine) Step(ctx context.Context, dt float64, b geometry.Bounds) (int, error) {
	if e.system == nil {
		return 0, ErrNotStarted
	}

	var total atomic.Int64
	g, gctx := errgroup.WithContext(ctx)
	for _, pid := range e.pids {
		g.Go(func() error {
			reply, err := actor.Ask(gctx, pid, newTick(dt, b), e.timeout)
			if err != nil {
				return fmt.Errorf("tick %s: %w", pid.Name(), err)
			}
			n, ok := reply.(*wrapperspb.UInt32Value)
			if !ok {
				return fmt.Errorf("tick %s: unexpected reply %T", pid.Name(), reply)
			}
			total.Add(int64(n.GetValue()))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return 0, err
	}
	return int(total.Load()), nil
}

// Stop shuts the actor system down. It is safe to call on an engine that
// never started.
func (e *Engine) Stop(ctx context.Context) error {
	if e.system == nil {
		return nil
	}
	err := e.system.Stop(ctx)
	e.system = nil
	e.pids = nil
	return err
}
