package flocking

import "github.com/lao-tseu-is-alive/go-flocking-simulation/pkg/geometry"

// Alignment scales the flock's average velocity into the agent's own
// max-speed frame, never exceeding unit length.
func Alignment(maxSpeed float64, averageForward geometry.Vector2D) geometry.Vector2D {
	return averageForward.Div(maxSpeed).ClampLength(1)
}

// Cohesion pulls toward the flock average: linearly inside flockRadius,
// with a capped unit pull outside of it.
func Cohesion(position, averagePosition geometry.Vector2D, flockRadius float64) geometry.Vector2D {
	d := averagePosition.Sub(position)
	if d.LenSqr() < flockRadius*flockRadius {
		return d.Div(flockRadius)
	}
	return d.Normalize()
}

// Separation pushes an agent away from every neighbor whose safety circle
// overlaps its own. Each push grows linearly with the overlap, from zero at
// touching circles to one at coincident centers; the sum is clamped to unit
// length. self is the arena index of the agent, skipped in neighbors.
func Separation(self int, position geometry.Vector2D, params AgentParams, neighbors []Neighbor) geometry.Vector2D {
	var sep geometry.Vector2D

	for _, n := range neighbors {
		if n.Index == self {
			continue
		}
		diff := position.Sub(n.Position)
		minDist := params.SafeRadius + n.Params.SafeRadius
		if diff.LenSqr() < minDist*minDist {
			overlap := (minDist - diff.Len()) / minDist
			sep = sep.Add(diff.Normalize().Mul(overlap))
		}
	}

	return sep.ClampLength(1)
}

// Steer combines the three weighted rules for the member at arena index idx.
// position must already be re-centered toward the flock average.
func Steer(idx int, position geometry.Vector2D, params AgentParams, fp FlockParams, avg FlockAverages) geometry.Vector2D {
	alignment := Alignment(params.MaxSpeed, avg.Forward).Mul(fp.Alignment)
	cohesion := Cohesion(position, avg.Position, fp.Radius).Mul(fp.Cohesion)
	separation := Separation(idx, position, params, avg.Neighbors).Mul(fp.Separation)
	return alignment.Add(cohesion).Add(separation)
}
