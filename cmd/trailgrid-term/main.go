package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/zucenko/trailgrid/chime"
	"github.com/zucenko/trailgrid/config"
	"github.com/zucenko/trailgrid/walker"
)

const frameInterval = 33 * time.Millisecond

func main() {
	cmd := &cobra.Command{
		Use:           "trailgrid-term",
		Short:         "Run trailgrid in the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, _ := cmd.Flags().GetString("config")
			cfg, err := config.Load(path)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("seed") {
				cfg.Walk.Seed, _ = cmd.Flags().GetInt64("seed")
			}
			if cmd.Flags().Changed("chime") {
				cfg.Chime.Enabled, _ = cmd.Flags().GetBool("chime")
			}
			return run(cfg)
		},
	}
	cmd.Flags().String("config", os.Getenv("TRAILGRID_CONFIG"), "YAML config file")
	cmd.Flags().Int64("seed", 0, "random seed, 0 for time based")
	cmd.Flags().Bool("chime", false, "play a tone when the grid grows")

	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	// the screen owns the terminal, so logs only go to a configured file
	closer, err := cfg.SetupLogging(io.Discard)
	if err != nil {
		return err
	}
	defer closer.Close()

	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	player, err := chime.New(cfg.Chime)
	if err != nil {
		log.WithError(err).Warn("chime disabled")
		player = nil
	}
	defer player.Close()

	w := walker.New(cfg.Walk, walker.NewSeeded(cfg.Walk.Seed))
	w.AddOnGrow(func(g walker.Growth) { player.Grow(g.Size) })

	loop(screen, w, time.Now())

	log.WithFields(log.Fields{
		"ticks":      w.Ticks,
		"generation": w.Generation,
		"size":       w.Size(),
	}).Info("walk stopped")
	return nil
}

func loop(screen tcell.Screen, w *walker.Walk, start time.Time) {
	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	events := make(chan tcell.Event, 16)
	done := make(chan struct{})
	defer close(done)
	go pump(screen.PollEvent, events, done)

	for {
		select {
		case ev, ok := <-events:
			if !ok || quits(ev) {
				return
			}
			if _, resized := ev.(*tcell.EventResize); resized {
				screen.Sync()
			}
		case <-ticker.C:
			elapsed := time.Since(start)
			w.Advance(elapsed)
			render(screen, w, elapsed)
			screen.Show()
		}
	}
}

// pump forwards polled events until polling stops or done is closed.
func pump(poll func() tcell.Event, events chan<- tcell.Event, done <-chan struct{}) {
	defer close(events)
	for {
		ev := poll()
		if ev == nil {
			return
		}
		select {
		case events <- ev:
		case <-done:
			return
		}
	}
}

func quits(ev tcell.Event) bool {
	key, ok := ev.(*tcell.EventKey)
	if !ok {
		return false
	}
	switch key.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return key.Rune() == 'q'
	}
	return false
}
