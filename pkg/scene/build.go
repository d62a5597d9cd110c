package scene

import (
	"fmt"
	"math/rand/v2"

	"github.com/lao-tseu-is-alive/go-flocking-simulation/pkg/flocking"
	"github.com/lao-tseu-is-alive/go-flocking-simulation/pkg/geometry"
)

// Build spawns every configured flock into a new World.
// The same Config (seed included) always yields the same World.
func Build(cfg *Config) (*flocking.World, error) {
	rng := rand.New(rand.NewPCG(cfg.Seed, cfg.Seed^0x9e3779b97f4a7c15))
	w := flocking.NewWorld()

	for _, fc := range cfg.Flocks {
		id := flocking.FlockID(fc.ID)
		_, err := w.AddFlock(id, flocking.FlockParams{
			Radius:     fc.Radius,
			Alignment:  fc.Alignment,
			Cohesion:   fc.Cohesion,
			Separation: fc.Separation,
		})
		if err != nil {
			return nil, fmt.Errorf("build scene: %w", err)
		}

		for i := 0; i < fc.Members; i++ {
			if _, err := w.AddAgent(id, spawn(rng, fc)); err != nil {
				return nil, fmt.Errorf("build scene: %w", err)
			}
		}
	}
	return w, nil
}

// spawn draws one member: smaller agents are faster and keep less space.
func spawn(rng *rand.Rand, fc FlockConfig) flocking.Agent {
	size := fc.SizeMin + rng.Float64()*(fc.SizeMax-fc.SizeMin)
	scale := fc.SizeMin / size

	offset := geometry.Vector2D{X: symmetric(rng, fc.Spread), Y: symmetric(rng, fc.Spread)}
	velocity := geometry.Vector2D{X: symmetric(rng, fc.InitialSpeed), Y: symmetric(rng, fc.InitialSpeed)}

	return flocking.Agent{
		Position: fc.Center.Add(offset),
		Velocity: velocity,
		Heading:  flocking.HeadingOf(velocity),
		Params: flocking.AgentParams{
			MaxSpeed:   fc.MaxSpeed * scale,
			MaxAccel:   fc.MaxAccel * scale,
			SafeRadius: size * fc.SafeRadiusFactor,
		},
	}
}

// symmetric returns a value in [-r, r).
func symmetric(rng *rand.Rand, r float64) float64 {
	return (rng.Float64()*2 - 1) * r
}
