package cmd

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/lao-tseu-is-alive/go-flocking-simulation/internal/viewer"
	"github.com/lao-tseu-is-alive/go-flocking-simulation/pkg/geometry"
	"github.com/spf13/cobra"
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Open the scene in a window",
	Long:  `Open the scene in a resizable window. The wrap-around domain always matches the window size.`,
	RunE:  runWindow,
}

func runWindow(cmd *cobra.Command, _ []string) error {
	logger, err := newLogger()
	if err != nil {
		return err
	}
	cfg, err := loadScene()
	if err != nil {
		return err
	}

	r, err := newRunner(cmd.Context(), cfg, logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := r.close(); err != nil {
			logger.Warnf("failed to stop engine: %v", err)
		}
	}()

	game := viewer.NewGame(r.sim.World(), cfg.Bounds(), func(dt float64, b geometry.Bounds) error {
		_, err := r.step(dt, b)
		return err
	})

	ebiten.SetWindowSize(int(cfg.Width), int(cfg.Height))
	ebiten.SetWindowTitle(fmt.Sprintf("Flocking (%d agents)", r.sim.World().Len()))
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(cfg.TPS)

	if err := ebiten.RunGame(game); err != nil {
		return fmt.Errorf("viewer stopped: %w", err)
	}
	return nil
}
