package flocking

import "github.com/lao-tseu-is-alive/go-flocking-simulation/pkg/geometry"

// Neighbor is the per-tick snapshot of a flock member as seen by the
// steering rules.
type Neighbor struct {
	Index    int // arena index
	ID       AgentID
	Position geometry.Vector2D // re-centered toward the flock average
	Params   AgentParams
}

// FlockAverages is rebuilt from scratch every tick and discarded after use.
type FlockAverages struct {
	Position  geometry.Vector2D
	Forward   geometry.Vector2D
	Neighbors []Neighbor
}

// Aggregate computes the wrap-aware average position and velocity of a flock
// and the neighbor snapshot used by separation. It reports false for an empty
// flock, in which case nothing should be steered this tick.
//
// The running average is grown one member at a time: each raw position is
// first re-centered toward the current partial average (itself wrapped toward
// the origin), so every member is folded into the same connected region of the
// torus before being summed. A second pass then re-centers the snapshot toward
// the final average.
func Aggregate(w *World, f *Flock, b geometry.Bounds) (FlockAverages, bool) {
	if len(f.Members) == 0 {
		return FlockAverages{}, false
	}

	var sumPos, sumVel geometry.Vector2D
	neighbors := make([]Neighbor, 0, len(f.Members))

	for n, idx := range f.Members {
		a := &w.agents[idx]

		partial := geometry.Zero
		if n > 0 {
			partial = geometry.Wrap(sumPos.Div(float64(n)), b)
		}

		sumPos = sumPos.Add(geometry.WrapToCenter(a.Position, partial, b))
		sumVel = sumVel.Add(a.Velocity)
		neighbors = append(neighbors, Neighbor{
			Index:    idx,
			ID:       a.ID,
			Position: a.Position,
			Params:   a.Params,
		})
	}

	count := float64(len(neighbors))
	avg := FlockAverages{
		Position:  sumPos.Div(count),
		Forward:   sumVel.Div(count),
		Neighbors: neighbors,
	}

	for i := range avg.Neighbors {
		avg.Neighbors[i].Position = geometry.WrapToCenter(avg.Neighbors[i].Position, avg.Position, b)
	}

	return avg, true
}
