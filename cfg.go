package main

import (
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/zucenko/trailgrid/chime"
	"github.com/zucenko/trailgrid/config"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "trailgrid",
		Short: "Two random walkers painting a growing grid",
		Long: `trailgrid runs two tokens on a square grid. They leave faint trails
every second; when their moves collide or cross, the grid grows by one and
the pattern starts over in new colors.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			return run(cfg)
		},
	}
	cmd.Flags().String("config", os.Getenv("TRAILGRID_CONFIG"), "YAML config file")
	cmd.Flags().Int64("seed", 0, "random seed, 0 for time based")
	cmd.Flags().Bool("chime", false, "play a tone when the grid grows")
	cmd.Flags().Bool("classic", false, "start in red and blue")
	return cmd
}

// loadConfig layers explicitly set flags over the loaded config.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	if cmd.Flags().Changed("seed") {
		cfg.Walk.Seed, _ = cmd.Flags().GetInt64("seed")
	}
	if cmd.Flags().Changed("chime") {
		cfg.Chime.Enabled, _ = cmd.Flags().GetBool("chime")
	}
	if cmd.Flags().Changed("classic") {
		cfg.Walk.ClassicColors, _ = cmd.Flags().GetBool("classic")
	}
	return cfg, nil
}

func run(cfg *config.Config) error {
	closer, err := cfg.SetupLogging(os.Stderr)
	if err != nil {
		return err
	}
	defer closer.Close()

	player, err := chime.New(cfg.Chime)
	if err != nil {
		// the walk runs fine without sound
		log.WithError(err).Warn("chime disabled")
		player = nil
	}
	defer player.Close()

	game, err := NewGame(cfg, player)
	if err != nil {
		return err
	}
	err = ebiten.Run(game.update, cfg.Window.Width, cfg.Window.Height, 1, cfg.Window.Title)
	if err != nil && err != errQuit {
		return err
	}
	log.WithFields(log.Fields{
		"ticks":      game.Walk.Ticks,
		"generation": game.Walk.Generation,
		"size":       game.Walk.Size(),
	}).Info("walk stopped")
	return nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
