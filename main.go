package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"image/png"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"time"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
	"github.com/df07/go-pathtracer/pkg/renderer"
	"github.com/df07/go-pathtracer/pkg/scene"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(1)
	}
}

// run parses args and renders the selected scene. Image data goes to stdout unless an
// output file is given; everything else is logged to stderr.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	flags := flag.NewFlagSet("pathtracer", flag.ContinueOnError)
	flags.SetOutput(stderr)

	sceneType := flags.String("scene", "default", "Scene to render (see -list)")
	width := flags.Int("width", 0, "Image width (0 = scene default)")
	height := flags.Int("height", 0, "Image height (0 = follow the camera aspect ratio)")
	samples := flags.Int("samples", 0, "Samples per pixel (0 = scene default)")
	depth := flags.Int("depth", 0, "Maximum bounce depth (0 = scene default)")
	workers := flags.Int("workers", 0, "Number of parallel workers (0 = auto-detect CPU count)")
	seed := flags.Int64("seed", 42, "Base random seed")
	output := flags.String("output", "", "Output file ('-' or empty writes PPM to stdout; PNG defaults to output/<scene>/)")
	format := flags.String("format", "ppm", "Output format: 'ppm' or 'png'")
	plyFile := flags.String("ply", "", "Optional PLY model to add to the scene")
	plyScale := flags.Float64("ply-scale", 1.0, "Uniform scale applied to the PLY model")
	list := flags.Bool("list", false, "List available scenes")
	help := flags.Bool("help", false, "Show help information")

	if err := flags.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if *help {
		fmt.Fprintln(stdout, "Path Tracer")
		fmt.Fprintln(stdout, "Usage: pathtracer [options]")
		fmt.Fprintln(stdout)
		fmt.Fprintln(stdout, "Options:")
		flags.SetOutput(stdout)
		flags.PrintDefaults()
		fmt.Fprintln(stdout)
		printScenes(stdout)
		return nil
	}

	if *list {
		printScenes(stdout)
		return nil
	}

	*format = strings.ToLower(*format)
	if *format != "ppm" && *format != "png" {
		return fmt.Errorf("unknown output format %q", *format)
	}

	logger := renderer.NewWriterLogger(stderr)

	selectedScene, err := createScene(*sceneType)
	if err != nil {
		return err
	}
	selectedScene.ApplySamplingOverrides(scene.SamplingConfig{
		Width:           *width,
		Height:          *height,
		SamplesPerPixel: *samples,
		MaxDepth:        *depth,
	})
	if err := selectedScene.Validate(); err != nil {
		return err
	}

	if *plyFile != "" {
		modelMaterial := material.NewGlossy(core.NewVec3(0.7, 0.7, 0.7), 0.3)
		mesh, err := scene.LoadPLYMesh(*plyFile, *plyScale, core.Vec3{}, modelMaterial)
		if err != nil {
			return fmt.Errorf("failed to load PLY model: %w", err)
		}
		selectedScene.World.Add(mesh)
		logger.Printf("Loaded %s: %d triangles\n", *plyFile, mesh.GetTriangleCount())
	}

	logger.Printf("Scene %s: %d primitives\n", *sceneType, selectedScene.GetPrimitiveCount())

	options := renderer.RenderOptions{
		NumWorkers: *workers,
		Seed:       *seed,
		Progress:   progressReporter(logger, selectedScene.SamplingConfig.Height),
	}
	raytracer := renderer.NewRaytracer(selectedScene, nil, options, logger)

	if *format == "png" {
		return renderPNG(ctx, raytracer, *sceneType, *output, stdout, logger)
	}
	return renderPPM(ctx, raytracer, *output, stdout, logger)
}

// createScene builds a built-in scene by name
func createScene(sceneType string) (*scene.Scene, error) {
	if strings.TrimSpace(sceneType) == "" {
		return nil, errors.New("no scene specified")
	}
	return scene.New(sceneType)
}

// createOutputDir creates and returns the directory PNG renders of a scene are saved to
func createOutputDir(sceneType string) (string, error) {
	outputDir := filepath.Join("output", sceneType)
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return "", fmt.Errorf("error creating output directory: %w", err)
	}
	return outputDir, nil
}

func renderPPM(ctx context.Context, raytracer *renderer.Raytracer, output string, stdout io.Writer, logger core.Logger) error {
	out := stdout
	if output != "" && output != "-" {
		file, err := os.Create(output)
		if err != nil {
			return fmt.Errorf("error creating file: %w", err)
		}
		defer file.Close()
		out = file
	}

	if _, err := raytracer.Render(ctx, renderer.NewPPMWriter(out)); err != nil {
		return err
	}
	if out != stdout {
		logger.Printf("Render saved as %s\n", output)
	}
	return nil
}

func renderPNG(ctx context.Context, raytracer *renderer.Raytracer, sceneType, output string, stdout io.Writer, logger core.Logger) error {
	img, stats, err := raytracer.RenderImage(ctx)
	if err != nil {
		return err
	}
	logger.Printf("Average luminance: %.4f, mean pixel variance: %.6f\n",
		renderer.CalculateAverageLuminance(img), stats.MeanVariance)

	if output == "-" {
		return png.Encode(stdout, img)
	}

	filename := output
	if filename == "" {
		outputDir, err := createOutputDir(sceneType)
		if err != nil {
			return err
		}
		timestamp := time.Now().Format("20060102_150405")
		filename = filepath.Join(outputDir, fmt.Sprintf("render_%s.png", timestamp))
	}

	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("error creating file: %w", err)
	}
	defer file.Close()

	if err := png.Encode(file, img); err != nil {
		return fmt.Errorf("error saving PNG: %w", err)
	}

	logger.Printf("Render saved as %s\n", filename)
	return nil
}

// progressReporter logs the number of scanlines remaining roughly every tenth of
// the image
func progressReporter(logger core.Logger, height int) func(remaining int) {
	step := max(1, height/10)
	return func(remaining int) {
		if remaining%step == 0 {
			logger.Printf("Scanlines remaining: %d\n", remaining)
		}
	}
}

func printScenes(w io.Writer) {
	fmt.Fprintln(w, "Available scenes:")
	for _, info := range scene.ListScenes() {
		fmt.Fprintf(w, "  %-8s %-8s - %s\n", info.ID, info.DisplayName, info.Description)
	}
}
