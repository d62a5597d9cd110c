package scene

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"math"
	"os"

	"github.com/lao-tseu-is-alive/go-flocking-simulation/pkg/flocking"
	"github.com/lao-tseu-is-alive/go-flocking-simulation/pkg/geometry"
	"github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed scene.schema.json
var schemaSource string

const schemaURL = "scene.schema.json"

// Config describes a scene: the viewport, how the simulation runs, and
// which flocks to spawn at start.
type Config struct {
	// World Dimensions
	Width  float64 `json:"width"`
	Height float64 `json:"height"`

	Seed   uint64                  `json:"seed"`
	Wrap   bool                    `json:"wrap"`
	Policy flocking.VelocityPolicy `json:"policy"`
	TPS    int                     `json:"tps"` // ticks per second of the host loop

	Flocks []FlockConfig `json:"flocks"`
}

// FlockConfig is one flock and the recipe for its members.
// Zero values are replaced by the defaults of DefaultFlock.
type FlockConfig struct {
	ID string `json:"id"`

	// Steering weights
	Radius     float64 `json:"radius"`
	Alignment  float64 `json:"alignment"`
	Cohesion   float64 `json:"cohesion"`
	Separation float64 `json:"separation"`

	// Population
	Members      int               `json:"members"`
	Center       geometry.Vector2D `json:"center"`
	Spread       float64           `json:"spread"`       // half side of the spawn square
	InitialSpeed float64           `json:"initialSpeed"` // max |vx|, |vy| at spawn

	// Per-agent params are scaled by sizeMin/size, size drawn in [SizeMin, SizeMax)
	SizeMin          float64 `json:"sizeMin"`
	SizeMax          float64 `json:"sizeMax"`
	MaxSpeed         float64 `json:"maxSpeed"`
	MaxAccel         float64 `json:"maxAccel"`
	SafeRadiusFactor float64 `json:"safeRadiusFactor"` // safe radius = size * factor
}

// DefaultFlock mirrors the classic single red flock example.
func DefaultFlock(id string) FlockConfig {
	return FlockConfig{
		ID:               id,
		Radius:           50,
		Alignment:        1,
		Cohesion:         1,
		Separation:       1,
		Members:          99,
		Spread:           100,
		InitialSpeed:     2,
		SizeMin:          12,
		SizeMax:          20,
		MaxSpeed:         200,
		MaxAccel:         100,
		SafeRadiusFactor: 5,
	}
}

func DefaultConfig() *Config {
	return &Config{
		Width:  1024,
		Height: 800,
		Seed:   1,
		Wrap:   true,
		Policy: flocking.PolicyDirect,
		TPS:    60,
		Flocks: []FlockConfig{DefaultFlock("red")},
	}
}

// Bounds is the toroidal domain of the scene's viewport.
func (c *Config) Bounds() geometry.Bounds {
	return geometry.NewBounds(c.Width, c.Height)
}

// Options turns the scene settings into simulation options.
func (c *Config) Options() []flocking.Option {
	return []flocking.Option{
		flocking.WithPolicy(c.Policy),
		flocking.WithWrapping(c.Wrap),
	}
}

// Validate checks the configuration against the embedded JSON schema.
func (c *Config) Validate() error {
	sch, err := compileSchema("")
	if err != nil {
		return err
	}
	b, err := json.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return fmt.Errorf("failed to decode config json: %w", err)
	}
	if err := sch.Validate(v); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}
	return c.checkFlocks()
}

// LoadConfig loads a scene from a JSON file and validates it against the
// schema. An empty schemaFile selects the schema embedded in the binary.
func LoadConfig(configFile string, schemaFile string) (*Config, error) {
	// 1. Compile Schema
	sch, err := compileSchema(schemaFile)
	if err != nil {
		return nil, err
	}

	// 2. Read Config File
	b, err := os.ReadFile(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// 3. Validate
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return nil, fmt.Errorf("failed to decode config json: %w", err)
	}
	if err := sch.Validate(v); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	// 4. Unmarshal over the defaults, flocks are taken as given
	cfg := DefaultConfig()
	cfg.Flocks = nil
	if err := json.Unmarshal(b, cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	for i := range cfg.Flocks {
		cfg.Flocks[i] = cfg.Flocks[i].withDefaults()
	}
	if err := cfg.checkFlocks(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func compileSchema(schemaFile string) (*jsonschema.Schema, error) {
	var (
		sch *jsonschema.Schema
		err error
	)
	if schemaFile == "" {
		sch, err = jsonschema.CompileString(schemaURL, schemaSource)
	} else {
		sch, err = jsonschema.Compile(schemaFile)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to compile schema: %w", err)
	}
	return sch, nil
}

// withDefaults fills the fields a scene file left out.
func (f FlockConfig) withDefaults() FlockConfig {
	d := DefaultFlock(f.ID)
	if f.Radius == 0 {
		f.Radius = d.Radius
	}
	if f.SizeMin == 0 {
		f.SizeMin = d.SizeMin
	}
	if f.SizeMax == 0 {
		f.SizeMax = math.Max(d.SizeMax, f.SizeMin)
	}
	if f.MaxSpeed == 0 {
		f.MaxSpeed = d.MaxSpeed
	}
	return f
}

// checkFlocks covers what the schema cannot express.
func (c *Config) checkFlocks() error {
	seen := make(map[string]bool, len(c.Flocks))
	for _, f := range c.Flocks {
		if seen[f.ID] {
			return fmt.Errorf("config validation failed: duplicate flock id %q", f.ID)
		}
		seen[f.ID] = true
		if f.SizeMax < f.SizeMin {
			return fmt.Errorf("config validation failed: flock %q has sizeMax %v < sizeMin %v", f.ID, f.SizeMax, f.SizeMin)
		}
	}
	return nil
}
