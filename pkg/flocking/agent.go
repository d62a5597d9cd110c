package flocking

import "github.com/lao-tseu-is-alive/go-flocking-simulation/pkg/geometry"

// AgentID identifies an agent inside its flock.
type AgentID uint32

// FlockID identifies a flock inside a World.
type FlockID string

// AgentParams are the per-agent tunables, set once by whoever spawns the agent.
type AgentParams struct {
	MaxSpeed   float64 `json:"maxSpeed"`   // > 0
	MaxAccel   float64 `json:"maxAccel"`   // 0 disables acceleration clamping
	SafeRadius float64 `json:"safeRadius"` // personal space used by separation
}

// Agent is a single boid.
// Boids is an artificial life program, developed by Craig Reynolds in 1986,
// which simulates the flocking behaviour of birds. https://en.wikipedia.org/wiki/Boids
type Agent struct {
	ID       AgentID
	Flock    FlockID
	Position geometry.Vector2D
	Velocity geometry.Vector2D
	Heading  float64 // radians, derived from Velocity by the integrator
	Params   AgentParams
}

// FlockParams are the steering weights shared by every member of a flock.
type FlockParams struct {
	Radius     float64 `json:"radius"` // comfort radius of the cohesion rule, > 0
	Alignment  float64 `json:"alignment"`
	Cohesion   float64 `json:"cohesion"`
	Separation float64 `json:"separation"`
}

// Flock groups agents of the arena under shared steering weights.
// Members are arena indices, kept in insertion order.
type Flock struct {
	ID      FlockID
	Params  FlockParams
	Members []int

	nextID AgentID
}
