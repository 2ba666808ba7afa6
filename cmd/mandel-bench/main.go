// mandel-bench renders frames headlessly and reports rasterizer timings per worker count
package main

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/spf13/cobra"

	"github.com/lixenwraith/vi-mandel/config"
	"github.com/lixenwraith/vi-mandel/fractal"
	"github.com/lixenwraith/vi-mandel/render"
	"github.com/lixenwraith/vi-mandel/viewport"
	"github.com/lixenwraith/vi-mandel/vmath"
)

type benchOptions struct {
	width, height int
	iterations    int
	frames        int
	workers       []int
	palette       string
	zoom          int
}

func mainCmd() *cobra.Command {
	opts := benchOptions{}

	cmd := &cobra.Command{
		Use:   "mandel-bench",
		Short: "Benchmark the Mandelbrot rasterizer across worker counts",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			// At this point usage information has already been printed if obviously incorrect.
			cmd.SilenceUsage = true
			return runBench(cmd, opts)
		},
	}

	cmd.Flags().IntVar(&opts.width, "width", 640, "frame width in pixels")
	cmd.Flags().IntVar(&opts.height, "height", 360, "frame height in pixels")
	cmd.Flags().IntVar(&opts.iterations, "iterations", 256, "iteration cap per pixel")
	cmd.Flags().IntVar(&opts.frames, "frames", 20, "frames rendered per worker count")
	cmd.Flags().IntSliceVar(&opts.workers, "workers", defaultWorkers(), "worker counts to compare")
	cmd.Flags().StringVar(&opts.palette, "palette", config.DefaultPreset, "palette preset")
	cmd.Flags().IntVar(&opts.zoom, "zoom", 0, "halvings of the fit scale before rendering")

	return cmd
}

// defaultWorkers is 1, 2, 4 ... up to NumCPU, NumCPU included
func defaultWorkers() []int {
	n := runtime.NumCPU()
	var counts []int
	for w := 1; w < n; w *= 2 {
		counts = append(counts, w)
	}
	return append(counts, n)
}

type result struct {
	workers int
	best    time.Duration
	total   time.Duration
	pix     []byte
}

func runBench(cmd *cobra.Command, opts benchOptions) error {
	if opts.frames <= 0 {
		return fmt.Errorf("frames must be positive: %d", opts.frames)
	}
	if len(opts.workers) == 0 {
		return fmt.Errorf("no worker counts given")
	}

	mapper, err := fractal.NewMapper(opts.width, opts.height)
	if err != nil {
		return err
	}
	evaluator, err := fractal.NewEvaluator(opts.iterations, 2)
	if err != nil {
		return err
	}
	colors, err := config.Preset(opts.palette)
	if err != nil {
		return err
	}
	palette, err := render.NewPalette(colors)
	if err != nil {
		return err
	}

	cfg := config.Default()
	st := viewport.State{
		Scale:  cfg.Scale(opts.width, opts.height),
		Offset: vmath.Point{X: cfg.CenterX, Y: cfg.CenterY},
	}
	for i := 0; i < opts.zoom; i++ {
		st.Scale /= 2
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "frame %dx%d, %d iterations, %d frames, scale %g, GOMAXPROCS %d\n",
		opts.width, opts.height, opts.iterations, opts.frames, st.Scale, runtime.GOMAXPROCS(0))
	fmt.Fprintf(out, "%8s %12s %12s %8s\n", "workers", "best", "average", "speedup")

	var results []result
	for _, w := range opts.workers {
		if err := cmd.Context().Err(); err != nil {
			return err
		}

		r, err := benchWorkers(render.NewRasterizer(mapper, evaluator, palette, w), st, opts.frames)
		if err != nil {
			return err
		}
		results = append(results, r)

		speedup := float64(results[0].best) / float64(r.best)
		avg := r.total / time.Duration(opts.frames)
		fmt.Fprintf(out, "%8d %12v %12v %7.2fx\n", r.workers, r.best.Round(time.Microsecond), avg.Round(time.Microsecond), speedup)

		if !bytes.Equal(r.pix, results[0].pix) {
			return fmt.Errorf("workers=%d produced a different frame than workers=%d", r.workers, results[0].workers)
		}
	}
	return nil
}

func benchWorkers(raster *render.Rasterizer, st viewport.State, frames int) (result, error) {
	r := result{workers: raster.Workers(), best: time.Duration(1<<63 - 1)}
	fb, err := render.NewFrameBuffer(raster.Size())
	if err != nil {
		return r, err
	}

	for i := 0; i < frames; i++ {
		start := time.Now()
		if err := raster.RenderInto(fb, st); err != nil {
			return r, err
		}
		d := time.Since(start)

		r.total += d
		if d < r.best {
			r.best = d
		}
	}
	r.pix = fb.Pix
	return r, nil
}

func main() {
	ctx := context.Background()

	err := mainCmd().ExecuteContext(ctx)
	if err != nil {
		// At this point the error has already been printed; no need to print again.
		os.Exit(1)
	}
}
