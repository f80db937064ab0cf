// Command oxytrace renders a scene described by a TOML config file to a PNG
// image: load config, build the scene (flattening and BVH construction),
// render it tile by tile across a worker pool, and write the result.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/Carmen-Shannon/oxy-trace/camera"
	"github.com/Carmen-Shannon/oxy-trace/config"
	"github.com/Carmen-Shannon/oxy-trace/engine/profiler"
	"github.com/Carmen-Shannon/oxy-trace/imageio"
	"github.com/Carmen-Shannon/oxy-trace/loader"
	"github.com/Carmen-Shannon/oxy-trace/render"
	"github.com/Carmen-Shannon/oxy-trace/scene"
	"github.com/Carmen-Shannon/oxy-trace/shading"
)

// cliOverrides holds flag-bound values; a zero value means "not provided"
// and leaves the config-file (or default) value alone.
type cliOverrides struct {
	frameWidth, frameHeight int
	tileWidth, tileHeight   int
	numWorkers              int
	fovVertDegrees          float32
	outputPath              string
}

func main() {
	var configPath string
	var ov cliOverrides

	root := &cobra.Command{
		Use:   "oxytrace",
		Short: "oxytrace renders a triangle/sphere scene to a PNG via BVH-accelerated ray tracing",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(configPath, ov)
		},
	}

	var flags *pflag.FlagSet = root.Flags()
	flags.StringVarP(&configPath, "config", "c", "", "path to a TOML scene/render config file")
	flags.IntVar(&ov.frameWidth, "frame-width", 0, "override frame width in pixels")
	flags.IntVar(&ov.frameHeight, "frame-height", 0, "override frame height in pixels")
	flags.IntVar(&ov.tileWidth, "tile-width", 0, "override tile width in pixels")
	flags.IntVar(&ov.tileHeight, "tile-height", 0, "override tile height in pixels")
	flags.IntVar(&ov.numWorkers, "num-workers", 0, "override worker count")
	flags.Float32Var(&ov.fovVertDegrees, "fov", 0, "override vertical field of view in degrees")
	flags.StringVar(&ov.outputPath, "output", "", "override output PNG path")

	if err := root.Execute(); err != nil {
		log.Fatal(err)
	}
}

func run(configPath string, ov cliOverrides) error {
	fmt.Println("=====================================")
	fmt.Println(" oxytrace - CPU ray tracer")
	fmt.Println("=====================================")

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	applyOverrides(&cfg, ov)

	if err := cfg.Validate(); err != nil {
		return err
	}

	prof := profiler.NewProfiler()
	ldr := loader.NewLoader()

	var builtScene scene.Scene
	prof.Stage("build", func() {
		log.Println("building scene...")
		builtScene, err = config.BuildScene(cfg.Scene, ldr)
	})
	if err != nil {
		return err
	}

	cam := camera.NewCamera(cfg.FovVertDegrees, float32(cfg.FrameWidth)/float32(cfg.FrameHeight))

	pixels := renderFrame(cam, builtScene, cfg, prof)

	var writeErr error
	prof.Stage("encode", func() {
		log.Printf("writing %s...", cfg.OutputPath)
		writeErr = writeImage(pixels, cfg)
	})
	if writeErr != nil {
		return writeErr
	}

	prof.Report()
	return nil
}

func renderFrame(cam camera.Camera, builtScene scene.Scene, cfg config.Config, prof *profiler.Profiler) []shading.Color {
	var pixels []shading.Color
	prof.Stage("render", func() {
		log.Printf("rendering %dx%d across %d workers (%d primitives)...",
			cfg.FrameWidth, cfg.FrameHeight, cfg.NumWorkers, builtScene.PrimitiveCount())
		pixels = render.Tiled(cam, builtScene, cfg.FrameWidth, cfg.FrameHeight, cfg.TileWidth, cfg.TileHeight, cfg.NumWorkers)
	})
	return pixels
}

func applyOverrides(cfg *config.Config, ov cliOverrides) {
	if ov.frameWidth > 0 {
		cfg.FrameWidth = ov.frameWidth
	}
	if ov.frameHeight > 0 {
		cfg.FrameHeight = ov.frameHeight
	}
	if ov.tileWidth > 0 {
		cfg.TileWidth = ov.tileWidth
	}
	if ov.tileHeight > 0 {
		cfg.TileHeight = ov.tileHeight
	}
	if ov.numWorkers > 0 {
		cfg.NumWorkers = ov.numWorkers
	}
	if ov.fovVertDegrees > 0 {
		cfg.FovVertDegrees = ov.fovVertDegrees
	}
	if ov.outputPath != "" {
		cfg.OutputPath = ov.outputPath
	}
}

func writeImage(buf []shading.Color, cfg config.Config) error {
	img := imageio.ToImage(buf, cfg.FrameWidth, cfg.FrameHeight)

	f, err := os.Create(cfg.OutputPath)
	if err != nil {
		return fmt.Errorf("oxytrace: create output file: %w", err)
	}
	defer f.Close()

	return imageio.Encode(f, img)
}
