package flocking

import (
	"github.com/lao-tseu-is-alive/go-flocking-simulation/pkg/geometry"
	"github.com/tochemey/goakt/v3/log"
)

// Simulation drives a World one tick at a time.
//
// Each flock is updated in two phases: every new velocity is computed from
// the same aggregation snapshot first, and only then are velocities written
// and positions integrated. Flocks never read each other's members, so
// distinct flocks may be stepped concurrently with StepFlock.
type Simulation struct {
	world  *World
	policy VelocityPolicy
	wrap   bool
	logger log.Logger
}

// Option configures a Simulation.
type Option func(*Simulation)

// WithPolicy selects the velocity update policy (PolicyDirect by default).
func WithPolicy(p VelocityPolicy) Option {
	return func(s *Simulation) { s.policy = p }
}

// WithWrapping re-wraps positions into the domain after integration.
func WithWrapping(wrap bool) Option {
	return func(s *Simulation) { s.wrap = wrap }
}

// WithLogger sets the logger used to report numerical recoveries.
func WithLogger(l log.Logger) Option {
	return func(s *Simulation) { s.logger = l }
}

// NewSimulation creates a simulation over w.
func NewSimulation(w *World, opts ...Option) *Simulation {
	s := &Simulation{
		world:  w,
		policy: PolicyDirect,
		logger: log.DiscardLogger,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// World returns the arena being simulated.
func (s *Simulation) World() *World { return s.world }

// Policy returns the configured velocity policy.
func (s *Simulation) Policy() VelocityPolicy { return s.policy }

// Wrapping reports whether positions are wrapped after integration.
func (s *Simulation) Wrapping() bool { return s.wrap }

// Step advances every flock by dt seconds inside bounds and returns the
// number of agents updated.
func (s *Simulation) Step(dt float64, b geometry.Bounds) int {
	total := 0
	for i := range s.world.flocks {
		total += s.StepFlock(i, dt, b)
	}
	return total
}

// StepFlock advances the i-th flock only. It touches nothing but that
// flock's members.
func (s *Simulation) StepFlock(i int, dt float64, b geometry.Bounds) int {
	f := s.world.flocks[i]

	avg, ok := Aggregate(s.world, f, b)
	if !ok {
		s.logger.Debugf("flock %s is empty, skipping", f.ID)
		return 0
	}

	// read phase: the snapshot is immutable from here on
	velocities := make([]geometry.Vector2D, len(avg.Neighbors))
	for k, n := range avg.Neighbors {
		a := &s.world.agents[n.Index]
		steer := Steer(n.Index, n.Position, n.Params, f.Params, avg)
		velocities[k] = s.policy.Apply(a.Velocity, steer, n.Params, dt)
	}

	// write phase
	for k, n := range avg.Neighbors {
		a := &s.world.agents[n.Index]
		a.Velocity = velocities[k]
		if Integrate(a, dt, b, s.wrap) {
			s.logger.Warnf("flock %s agent %d: non-finite position recovered to %s", f.ID, a.ID, a.Position)
		}
	}

	return len(avg.Neighbors)
}
