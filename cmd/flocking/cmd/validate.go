package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/lao-tseu-is-alive/go-flocking-simulation/pkg/scene"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate [scene.json]",
	Short: "Validate a scene file",
	Long:  `Check a scene file against the JSON schema and build it once without running it`,
	Args:  cobra.MaximumNArgs(1),
	RunE:  runValidate,
}

func runValidate(_ *cobra.Command, args []string) error {
	if len(args) == 1 {
		cfgFile = args[0]
	}

	var (
		cfg *scene.Config
		err error
	)
	if cfgFile == "" {
		cfg = scene.DefaultConfig()
		err = cfg.Validate()
	} else {
		cfg, err = loadScene()
	}
	if err != nil {
		color.Red("✗ %v", err)
		return err
	}

	w, err := scene.Build(cfg)
	if err != nil {
		color.Red("✗ %v", err)
		return err
	}

	name := cfgFile
	if name == "" {
		name = "built-in scene"
	}
	color.Green("✓ %s is valid", name)
	fmt.Printf("  %gx%g, %d flocks, %d agents, policy %s, wrap %v, %d tps\n",
		cfg.Width, cfg.Height, len(w.Flocks()), w.Len(), cfg.Policy, cfg.Wrap, cfg.TPS)
	return nil
}
