package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-asteroids/internal/asteroids"
	"github.com/vovakirdan/tui-asteroids/internal/core"
)

var (
	flagFrames int
	flagHold   []string
	flagRender bool
	flagCols   int
	flagRows   int
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run a headless simulation",
	Long: `Run the game without a terminal UI, holding a fixed set of keys
for every frame, and print the final state and its hash.

Frames are spaced 1/fps apart on a simulated clock, so the same seed,
keys and frame count always produce the same hash.

Examples:
  asteroids sim --frames 600 --seed 42
  asteroids sim --frames 300 --hold k,j --seed 7
  asteroids sim --frames 120 --hold d,j --render --cols 100 --rows 30`,
	Args: cobra.NoArgs,
	RunE: runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagFrames, "frames", 600, "Number of display refreshes to simulate")
	simCmd.Flags().StringSliceVar(&flagHold, "hold", nil, "Keys held for the whole run (comma separated)")
	simCmd.Flags().BoolVar(&flagRender, "render", false, "Print the final frame as text")
	simCmd.Flags().IntVar(&flagCols, "cols", 80, "Columns of the rendered frame (with --render)")
	simCmd.Flags().IntVar(&flagRows, "rows", 24, "Rows of the rendered frame (with --render)")
}

func runSim(cmd *cobra.Command, _ []string) error {
	logger, closeLog, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog() //nolint:errcheck // Nothing useful to do on close failure

	cfg, err := loadConfig(logger)
	if err != nil {
		return err
	}
	if flagFrames < 0 {
		return fmt.Errorf("--frames must not be negative, got %d", flagFrames)
	}
	if flagFPS <= 0 {
		return fmt.Errorf("--fps must be positive, got %d", flagFPS)
	}

	runtime := core.DefaultConfig()
	runtime.TickRate = flagFPS
	runtime.Seed = resolveSeed()
	runtime.WorldW, runtime.WorldH = 0, 0 // Use the configured world size

	// Either record primitives or rasterize them.
	var (
		canvas core.Canvas
		drawn  = &core.DrawList{}
		screen *core.Screen
	)
	canvas = drawn
	if flagRender {
		screen = core.NewScreen(flagCols, flagRows)
		raster := core.NewRaster(screen, 0, cfg.World.PixelScale)
		runtime.ScreenW, runtime.ScreenH = flagCols, flagRows
		runtime.WorldW, runtime.WorldH = raster.WorldSize()
		canvas = raster
	}

	clock := time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)
	session := asteroids.New(cfg, func() time.Time { return clock })
	session.Reset(runtime)

	keys := core.NewKeySet(flagHold...)
	interval := time.Second / time.Duration(flagFPS)
	counts := make(map[asteroids.EventKind]int)

	logger.Info("simulation started", "seed", runtime.Seed, "frames", flagFrames, "hold", keys.Keys())

	frames := 0
	for i := 1; i <= flagFrames; i++ {
		clock = clock.Add(interval)
		res := session.Frame(time.Duration(i)*interval, keys, canvas)
		frames = i

		for _, e := range res.Events {
			counts[e.Kind]++
			logger.Debug(e.Kind.String(), "frame", i, "x", e.Pos.X, "y", e.Pos.Y)
		}
		if !res.Continue() {
			logger.Info("game over", "frame", i, "score", res.State.Score)
			break
		}
	}

	snap := session.Snapshot()
	logger.Info("simulation finished",
		"frames", frames,
		"ticks", snap.Tick,
		"score", snap.Score,
		"game_over", snap.GameOver,
		"rocks", snap.RockCount,
		"bullets", snap.BulletCount,
		"fired", counts[asteroids.EventBulletFired],
		"destroyed", counts[asteroids.EventRockDestroyed],
		"split", counts[asteroids.EventRockSplit],
	)

	out := cmd.OutOrStdout()
	if screen != nil {
		fmt.Fprintln(out, screen.String())
	} else {
		logger.Debug("last frame", "polylines", drawn.Count(core.ShapePolyline), "arcs", drawn.Count(core.ShapeArc))
	}
	fmt.Fprintf(out, "seed=%d ticks=%d score=%d game_over=%t hash=%016x\n",
		runtime.Seed, snap.Tick, snap.Score, snap.GameOver, snap.Hash())
	return nil
}
