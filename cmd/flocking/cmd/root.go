package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/lao-tseu-is-alive/go-flocking-simulation/pkg/flocking"
	"github.com/lao-tseu-is-alive/go-flocking-simulation/pkg/geometry"
	"github.com/lao-tseu-is-alive/go-flocking-simulation/pkg/scene"
	"github.com/lao-tseu-is-alive/go-flocking-simulation/pkg/swarm"
	"github.com/spf13/cobra"
	"github.com/tochemey/goakt/v3/log"
)

var (
	cfgFile    string
	schemaFile string
	logLevel   string
	useActors  bool
	noColor    bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "flocking",
	Short: "Flocking simulation",
	Long: `Flocking runs several independent flocks of agents on a wrap-around
plane. Each agent steers by alignment, cohesion and separation with the
other members of its own flock.`,
	SilenceUsage: true,
}

func init() {
	cobra.OnInitialize(initOutput)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "scene file (JSON), built-in scene when empty")
	rootCmd.PersistentFlags().StringVar(&schemaFile, "schema", "", "JSON schema for the scene file, embedded schema when empty")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVar(&useActors, "actors", false, "step flocks concurrently, one actor per flock")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")

	// Add commands
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(headlessCmd)
	rootCmd.AddCommand(validateCmd)
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func initOutput() {
	color.NoColor = color.NoColor || noColor
}

func newLogger() (log.Logger, error) {
	var level log.Level
	switch strings.ToLower(logLevel) {
	case "debug":
		level = log.DebugLevel
	case "info", "":
		level = log.InfoLevel
	case "warn", "warning":
		level = log.WarningLevel
	case "error":
		level = log.ErrorLevel
	default:
		return nil, fmt.Errorf("unknown log level %q", logLevel)
	}
	return log.New(level, os.Stderr), nil
}

func loadScene() (*scene.Config, error) {
	if cfgFile == "" {
		return scene.DefaultConfig(), nil
	}
	cfg, err := scene.LoadConfig(cfgFile, schemaFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load scene %s: %w", cfgFile, err)
	}
	return cfg, nil
}

// runner advances a world either in the calling goroutine or through the
// actor engine, depending on --actors.
type runner struct {
	ctx    context.Context
	sim    *flocking.Simulation
	engine *swarm.Engine
}

func newRunner(ctx context.Context, cfg *scene.Config, logger log.Logger) (*runner, error) {
	world, err := scene.Build(cfg)
	if err != nil {
		return nil, err
	}
	opts := append(cfg.Options(), flocking.WithLogger(logger))
	r := &runner{ctx: ctx, sim: flocking.NewSimulation(world, opts...)}

	if useActors {
		r.engine = swarm.NewEngine(r.sim, logger, swarm.DefaultTickTimeout)
		if err := r.engine.Start(ctx); err != nil {
			return nil, err
		}
	}
	logger.Infof("scene ready: %d agents in %d flocks, policy %s, wrap %v",
		world.Len(), len(world.Flocks()), cfg.Policy, cfg.Wrap)
	return r, nil
}

func (r *runner) step(dt float64, b geometry.Bounds) (int, error) {
	if r.engine != nil {
		return r.engine.Step(r.ctx, dt, b)
	}
	return r.sim.Step(dt, b), nil
}

func (r *runner) close() error {
	if r.engine == nil {
		return nil
	}
	return r.engine.Stop(r.ctx)
}
