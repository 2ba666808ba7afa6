package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"slices"
	"sync/atomic"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"

	"github.com/lixenwraith/vi-mandel/audio"
	"github.com/lixenwraith/vi-mandel/config"
	"github.com/lixenwraith/vi-mandel/core"
	"github.com/lixenwraith/vi-mandel/engine"
	"github.com/lixenwraith/vi-mandel/fractal"
	"github.com/lixenwraith/vi-mandel/input"
	"github.com/lixenwraith/vi-mandel/marks"
	"github.com/lixenwraith/vi-mandel/render"
	"github.com/lixenwraith/vi-mandel/status"
	"github.com/lixenwraith/vi-mandel/viewport"
	"github.com/lixenwraith/vi-mandel/vmath"
)

// defaultConfigPath is read when present; --config makes a missing file an error
const defaultConfigPath = "vi-mandel.toml"

func mainCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "vi-mandel",
		Short: "Explore the Mandelbrot set in the terminal",
		Long: `Explore the Mandelbrot set in the terminal.

  wheel, i/o, +/-   zoom in/out
  h j k l, arrows   pan
  m<a-z>, '<a-z>    set / jump to mark
  r                 reset view
  q, Esc            quit`,
		Args: cobra.ExactArgs(0),
		RunE: runCmd,
	}

	cmd.Flags().String("config", defaultConfigPath, "TOML configuration file")

	// Flag defaults mirror the compiled-in configuration; Merge decides which values apply
	flagCfg := config.Default()
	config.BindFlags(cmd.Flags(), &flagCfg)

	return cmd
}

// loadConfig resolves defaults, file, environment and flags, then validates
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return config.Config{}, err
	}

	cfg, err := config.Load(path, cmd.Flags().Changed("config"))
	if err != nil {
		return config.Config{}, err
	}
	if err := config.Merge(&cfg, cmd.Flags(), os.Getenv); err != nil {
		return config.Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

func runCmd(cmd *cobra.Command, _ []string) error {
	// At this point usage information has already been printed if obviously incorrect.
	cmd.SilenceUsage = true

	// Configuration errors surface before the terminal is taken over
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	logFile := setupLogging(cfg.Debug)
	if logFile != nil {
		defer logFile.Close()
	}
	log.Printf("config: %+v", cfg)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("terminal: %w", err)
	}
	screen.EnableMouse()
	screen.HideCursor()

	var finished atomic.Bool
	finish := func() {
		if finished.CompareAndSwap(false, true) {
			core.SetCrashScreen(nil)
			screen.Fini()
		}
	}
	defer finish()

	core.SetCrashScreen(screen)
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	explorer, cleanup, err := buildExplorer(cfg, screen)
	if err != nil {
		finish()
		return err
	}
	defer cleanup()

	err = explorer.Run(ctx, screen, cfg.FrameInterval)
	finish()

	dumpMetrics(explorer.Metrics())

	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// buildExplorer wires the render pipeline to the screen; cleanup releases marks and audio
func buildExplorer(cfg config.Config, screen tcell.Screen) (*engine.Explorer, func(), error) {
	cols, rows := screen.Size()
	width, height, err := cfg.Dimensions(cols, rows)
	if err != nil {
		return nil, nil, err
	}

	mapper, err := fractal.NewMapper(width, height)
	if err != nil {
		return nil, nil, err
	}
	evaluator, err := fractal.NewEvaluator(cfg.MaxIterations, cfg.EscapeRadius)
	if err != nil {
		return nil, nil, err
	}
	colors, err := cfg.PaletteColors()
	if err != nil {
		return nil, nil, err
	}
	palette, err := render.NewPalette(colors)
	if err != nil {
		return nil, nil, err
	}
	raster := render.NewRasterizer(mapper, evaluator, palette, cfg.Workers)

	scale := cfg.Scale(width, height)
	view, err := viewport.New(scale, vmath.Point{X: cfg.CenterX, Y: cfg.CenterY}, cfg.PanStep)
	if err != nil {
		return nil, nil, err
	}

	keys, err := cfg.KeyMap()
	if err != nil {
		return nil, nil, err
	}

	var store marks.Store = marks.NewMemory()
	if cfg.MarksFile != "" {
		bolt, err := marks.OpenBolt(cfg.MarksFile)
		if err != nil {
			return nil, nil, err
		}
		store = bolt

		if err := logMarks(bolt); err != nil {
			bolt.Close()
			return nil, nil, err
		}
	}

	cues := audio.NewCuePlayer()
	if cfg.Sound {
		if err := cues.Initialize(); err != nil {
			log.Printf("audio: init failed: %v", err)
		}
	}
	log.Printf("audio: enabled %v", cues.Enabled())

	metrics := status.NewRegistry()
	presenter := render.NewScreenPresenter(screen, engine.StatusLine(metrics, scale, cfg.MaxIterations))

	explorer, err := engine.NewExplorer(engine.Options{
		Tracker:    input.NewTracker(keys),
		Viewport:   view,
		Rasterizer: raster,
		Sink:       presenter,
		Marks:      store,
		Cues:       cues,
		Metrics:    metrics,
	})
	if err != nil {
		store.Close()
		cues.Cleanup()
		return nil, nil, err
	}

	log.Printf("frame %dx%d px, scale %g, %d workers", width, height, scale, raster.Workers())

	cleanup := func() {
		if err := store.Close(); err != nil {
			log.Printf("marks: close: %v", err)
		}
		cues.Cleanup()
	}
	return explorer, cleanup, nil
}

// logMarks lists the stored marks in name order
func logMarks(store marks.Store) error {
	saved, err := store.List()
	if err != nil {
		return fmt.Errorf("marks: %w", err)
	}
	names := make([]rune, 0, len(saved))
	for name := range saved {
		names = append(names, name)
	}
	slices.Sort(names)

	log.Printf("marks: %d stored", len(names))
	for _, name := range names {
		st := saved[name]
		log.Printf("  %c: %.17g %+.17gi, scale %g", name, st.Offset.X, st.Offset.Y, st.Scale)
	}
	return nil
}

// dumpMetrics writes the session totals and the last displayed view to the debug log
func dumpMetrics(reg *status.Registry) {
	snap := reg.Snapshot()
	log.Printf("frames %d, renders %d, average render %v, last frame interval %v",
		snap.Frames, snap.Renders, snap.AverageRender, snap.Interval)
	log.Printf("view: center %.17g %+.17gi, scale %g, zoom %gx",
		snap.CenterX, snap.CenterY, snap.Scale, snap.Magnification)
	reg.Counters.Range(func(name string, n int64) {
		log.Printf("  %s: %d", name, n)
	})
}

func main() {
	ctx := context.Background()

	err := mainCmd().ExecuteContext(ctx)
	if err != nil {
		// At this point the error has already been printed; no need to print again.
		os.Exit(1)
	}
}
