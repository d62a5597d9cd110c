package flocking

import (
	"fmt"

	"github.com/lao-tseu-is-alive/go-flocking-simulation/pkg/geometry"
)

// VelocityPolicy selects how a steering vector turns into a new velocity.
type VelocityPolicy int

const (
	// PolicyDirect adds maxSpeed*dt*steer to the velocity, then clamps speed.
	PolicyDirect VelocityPolicy = iota
	// PolicyAccelerationLimited derives an acceleration of maxSpeed*steer,
	// clamps it to MaxAccel, integrates it over dt, then clamps speed.
	PolicyAccelerationLimited
)

func (p VelocityPolicy) String() string {
	switch p {
	case PolicyDirect:
		return "direct"
	case PolicyAccelerationLimited:
		return "acceleration-limited"
	default:
		return fmt.Sprintf("VelocityPolicy(%d)", int(p))
	}
}

// ParseVelocityPolicy accepts the names produced by String.
func ParseVelocityPolicy(s string) (VelocityPolicy, error) {
	switch s {
	case "", "direct":
		return PolicyDirect, nil
	case "acceleration-limited":
		return PolicyAccelerationLimited, nil
	}
	return PolicyDirect, fmt.Errorf("unknown velocity policy %q", s)
}

// UnmarshalText lets the policy be read straight from JSON scene files.
func (p *VelocityPolicy) UnmarshalText(text []byte) error {
	v, err := ParseVelocityPolicy(string(text))
	if err != nil {
		return err
	}
	*p = v
	return nil
}

// MarshalText is the inverse of UnmarshalText.
func (p VelocityPolicy) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// Apply returns the velocity after one tick of steering.
// The result never exceeds params.MaxSpeed.
func (p VelocityPolicy) Apply(velocity, steer geometry.Vector2D, params AgentParams, dt float64) geometry.Vector2D {
	switch p {
	case PolicyAccelerationLimited:
		accel := steer.Mul(params.MaxSpeed)
		if params.MaxAccel > 0 {
			accel = accel.ClampLength(params.MaxAccel)
		}
		velocity = velocity.Add(accel.Mul(dt))
	default:
		velocity = velocity.Add(steer.Mul(params.MaxSpeed * dt))
	}
	return velocity.ClampLength(params.MaxSpeed)
}
