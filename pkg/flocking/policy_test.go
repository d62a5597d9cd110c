package flocking

import (
	"encoding/json"
	"math/rand/v2"
	"testing"

	"github.com/lao-tseu-is-alive/go-flocking-simulation/pkg/geometry"
)

func TestVelocityPolicy_Apply(t *testing.T) {
	params := AgentParams{MaxSpeed: 10, MaxAccel: 5}
	tests := []struct {
		name     string
		policy   VelocityPolicy
		velocity geometry.Vector2D
		steer    geometry.Vector2D
		params   AgentParams
		dt       float64
		want     geometry.Vector2D
	}{
		{"direct adds maxSpeed*dt*steer", PolicyDirect, geometry.Zero, geometry.Vector2D{X: 1, Y: 0}, params, 0.1, geometry.Vector2D{X: 1, Y: 0}},
		{"direct clamps speed", PolicyDirect, geometry.Vector2D{X: 9, Y: 0}, geometry.Vector2D{X: 3, Y: 0}, params, 1, geometry.Vector2D{X: 10, Y: 0}},
		{"direct ignores max accel", PolicyDirect, geometry.Zero, geometry.Vector2D{X: 0, Y: 2}, params, 0.25, geometry.Vector2D{X: 0, Y: 5}},
		{"accel clamped to max accel", PolicyAccelerationLimited, geometry.Zero, geometry.Vector2D{X: 1, Y: 0}, params, 0.1, geometry.Vector2D{X: 0.5, Y: 0}},
		{"accel under the limit", PolicyAccelerationLimited, geometry.Zero, geometry.Vector2D{X: 0, Y: -0.25}, params, 1, geometry.Vector2D{X: 0, Y: -2.5}},
		{"accel without limit", PolicyAccelerationLimited, geometry.Zero, geometry.Vector2D{X: 1, Y: 0}, AgentParams{MaxSpeed: 10}, 0.1, geometry.Vector2D{X: 1, Y: 0}},
		{"accel clamps speed", PolicyAccelerationLimited, geometry.Vector2D{X: -10, Y: 0}, geometry.Vector2D{X: -1, Y: 0}, params, 1, geometry.Vector2D{X: -10, Y: 0}},
		{"zero dt keeps velocity", PolicyAccelerationLimited, geometry.Vector2D{X: 3, Y: 4}, geometry.Vector2D{X: 1, Y: 1}, params, 0, geometry.Vector2D{X: 3, Y: 4}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.policy.Apply(tt.velocity, tt.steer, tt.params, tt.dt)
			if !got.Eq(tt.want) {
				t.Errorf("%s.Apply = %v; want %v", tt.policy, got, tt.want)
			}
		})
	}
}

func TestVelocityPolicy_SpeedClamp(t *testing.T) {
	rng := rand.New(rand.NewPCG(5, 8))
	for _, policy := range []VelocityPolicy{PolicyDirect, PolicyAccelerationLimited} {
		for i := 0; i < 5000; i++ {
			params := AgentParams{MaxSpeed: 0.5 + rng.Float64()*300, MaxAccel: rng.Float64() * 200}
			v := geometry.Vector2D{X: (rng.Float64() - 0.5) * 2 * params.MaxSpeed, Y: (rng.Float64() - 0.5) * 2 * params.MaxSpeed}.ClampLength(params.MaxSpeed)
			steer := geometry.Vector2D{X: (rng.Float64() - 0.5) * 6, Y: (rng.Float64() - 0.5) * 6}
			got := policy.Apply(v, steer, params, rng.Float64())
			if got.Len() > params.MaxSpeed+tolerance {
				t.Fatalf("%s: |v| = %v exceeds max speed %v", policy, got.Len(), params.MaxSpeed)
			}
		}
	}
}

func TestParseVelocityPolicy(t *testing.T) {
	tests := []struct {
		in      string
		want    VelocityPolicy
		wantErr bool
	}{
		{"", PolicyDirect, false},
		{"direct", PolicyDirect, false},
		{"acceleration-limited", PolicyAccelerationLimited, false},
		{"warp", PolicyDirect, true},
	}
	for _, tt := range tests {
		got, err := ParseVelocityPolicy(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseVelocityPolicy(%q) error = %v; wantErr %v", tt.in, err, tt.wantErr)
		}
		if got != tt.want {
			t.Errorf("ParseVelocityPolicy(%q) = %v; want %v", tt.in, got, tt.want)
		}
	}
}

func TestVelocityPolicy_JSON(t *testing.T) {
	var cfg struct {
		Policy VelocityPolicy `json:"policy"`
	}
	if err := json.Unmarshal([]byte(`{"policy":"acceleration-limited"}`), &cfg); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if cfg.Policy != PolicyAccelerationLimited {
		t.Errorf("policy = %v; want acceleration-limited", cfg.Policy)
	}
	if err := json.Unmarshal([]byte(`{"policy":"warp"}`), &cfg); err == nil {
		t.Error("expected an error for an unknown policy")
	}
}
