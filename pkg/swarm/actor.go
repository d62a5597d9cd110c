package swarm

import (
	"github.com/lao-tseu-is-alive/go-flocking-simulation/pkg/flocking"
	"github.com/tochemey/goakt/v3/actor"
	"github.com/tochemey/goakt/v3/goaktpb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// FlockActor owns one flock of a shared Simulation. On every tick it runs
// the two-phase update for its flock and replies with the number of agents
// moved.
type FlockActor struct {
	sim   *flocking.Simulation
	index int
	id    flocking.FlockID
	ticks uint64
}

var _ actor.Actor = (*FlockActor)(nil)

// NewFlockActor binds an actor to the flock at index in the world of sim.
func NewFlockActor(sim *flocking.Simulation, index int) *FlockActor {
	return &FlockActor{
		sim:   sim,
		index: index,
		id:    sim.World().Flocks()[index].ID,
	}
}

// PreStart implements actor.Actor.
func (a *FlockActor) PreStart(ctx *actor.Context) error {
	return nil
}

// Receive steps the flock on every tick and replies with the agent count.
func (a *FlockActor) Receive(ctx *actor.ReceiveContext) {
	switch msg := ctx.Message().(type) {
	case *goaktpb.PostStart:
		ctx.Logger().Debugf("%s started for flock %s", ctx.Self().Name(), a.id)

	case *structpb.Struct:
		dt, b, err := parseTick(msg)
		if err != nil {
			ctx.Logger().Warnf("%s: bad tick: %v", ctx.Self().Name(), err)
			ctx.Err(err)
			return
		}
		n := a.sim.StepFlock(a.index, dt, b)
		a.ticks++
		ctx.Response(wrapperspb.UInt32(uint32(n)))

	default:
		ctx.Unhandled()
	}
}

// PostStop logs how many ticks the actor handled.
func (a *FlockActor) PostStop(ctx *actor.Context) error {
	ctx.ActorSystem().Logger().Debugf("%s stopped after %d ticks", ctx.ActorName(), a.ticks)
	return nil
}
