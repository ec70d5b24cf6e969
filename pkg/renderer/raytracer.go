package renderer

import (
	"context"
	"fmt"
	"image"
	"time"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/integrator"
	"github.com/df07/go-pathtracer/pkg/scene"
)

// RenderOptions controls how a render is scheduled
type RenderOptions struct {
	NumWorkers int   // Number of parallel workers (0 = auto-detect CPU count)
	Seed       int64 // Base seed; scanline j is sampled with Seed + j

	// Progress, when set, is called after each scanline is emitted with the number of
	// scanlines still to come. It runs on the calling goroutine of Render.
	Progress func(remaining int)
}

// ScanlineWriter receives finished scanlines in output order: row height-1 first,
// row 0 last
type ScanlineWriter interface {
	Begin(width, height int) error
	WriteScanline(row int, pixels []core.Vec3) error
	End() error
}

// Raytracer renders a scene by sampling every pixel with an integrator
type Raytracer struct {
	scene      *scene.Scene
	integrator integrator.Integrator
	options    RenderOptions
	logger     core.Logger
}

// NewRaytracer creates a new raytracer. A nil integrator selects path tracing and a
// nil logger discards output.
func NewRaytracer(s *scene.Scene, integratorInst integrator.Integrator, options RenderOptions, logger core.Logger) *Raytracer {
	if integratorInst == nil {
		integratorInst = integrator.NewPathTracingIntegrator()
	}
	if logger == nil {
		logger = discardLogger{}
	}
	return &Raytracer{
		scene:      s,
		integrator: integratorInst,
		options:    options,
		logger:     logger,
	}
}

// SamplePixel takes SamplesPerPixel jittered samples for pixel (i, j), where j counts
// up from the bottom row
func (rt *Raytracer) SamplePixel(i, j int, sampler core.Sampler) PixelStats {
	config := rt.scene.SamplingConfig
	camera := rt.scene.Camera

	var ps PixelStats
	for sample := 0; sample < config.SamplesPerPixel; sample++ {
		jitter := sampler.Get2D()
		u := (float64(i) + jitter.X) / float64(config.Width-1)
		v := (float64(j) + jitter.Y) / float64(config.Height-1)

		ray := camera.GetRay(u, v, sampler)
		ps.AddSample(rt.integrator.RayColor(ray, rt.scene.World, config.MaxDepth, sampler))
	}
	return ps
}

// RenderScanline samples every pixel of row j, left to right
func (rt *Raytracer) RenderScanline(j int, sampler core.Sampler) []PixelStats {
	pixels := make([]PixelStats, rt.scene.SamplingConfig.Width)
	for i := range pixels {
		pixels[i] = rt.SamplePixel(i, j, sampler)
	}
	return pixels
}

// Render samples the whole image in parallel and hands scanlines to writer in output
// order. Context cancellation is observed between scanlines.
func (rt *Raytracer) Render(ctx context.Context, writer ScanlineWriter) (RenderStats, error) {
	if err := rt.scene.Validate(); err != nil {
		return RenderStats{}, err
	}
	if err := ctx.Err(); err != nil {
		return RenderStats{}, err
	}

	config := rt.scene.SamplingConfig
	width, height := config.Width, config.Height
	start := time.Now()

	ctx, cancel := context.WithCancel(ctx)

	pool := NewWorkerPool(rt, height, rt.options.NumWorkers)
	rt.logger.Printf("Rendering %dx%d, %d samples per pixel, max depth %d (using %d workers)...\n",
		width, height, config.SamplesPerPixel, config.MaxDepth, pool.GetNumWorkers())

	pool.Start(ctx)
	defer func() {
		// Workers skip queued scanlines once the context is cancelled
		cancel()
		pool.Stop()
	}()

	for j := height - 1; j >= 0; j-- {
		pool.SubmitTask(ScanlineTask{Row: j, Seed: rt.options.Seed + int64(j)})
	}

	if err := writer.Begin(width, height); err != nil {
		return RenderStats{}, fmt.Errorf("failed to begin output: %w", err)
	}

	stats := RenderStats{SamplesPerPixel: config.SamplesPerPixel}
	pending := make(map[int][]PixelStats)
	next := height - 1

	for next >= 0 {
		if err := ctx.Err(); err != nil {
			rt.logger.Printf("Render cancelled with %d scanlines remaining\n", next+1)
			return stats, err
		}

		var result ScanlineResult
		select {
		case <-ctx.Done():
			continue
		case result = <-pool.Results():
		}
		if result.Err != nil {
			return stats, result.Err
		}
		pending[result.Row] = result.Pixels

		// Emit every scanline that is now contiguous with the output
		for pixels, ok := pending[next]; ok; pixels, ok = pending[next] {
			if err := ctx.Err(); err != nil {
				return stats, err
			}
			if err := writer.WriteScanline(next, averagedColors(pixels)); err != nil {
				return stats, fmt.Errorf("failed to write scanline %d: %w", next, err)
			}
			stats.accumulate(pixels)
			delete(pending, next)
			next--

			if rt.options.Progress != nil {
				rt.options.Progress(next + 1)
			}
		}
	}

	if err := writer.End(); err != nil {
		return stats, fmt.Errorf("failed to finish output: %w", err)
	}

	stats.finalize(time.Since(start))
	rt.logger.Printf("Render completed in %v (%d samples)\n", stats.Duration, stats.TotalSamples)
	return stats, nil
}

// RenderImage renders the scene into an RGBA image with gamma 2 applied
func (rt *Raytracer) RenderImage(ctx context.Context) (*image.RGBA, RenderStats, error) {
	iw := &imageWriter{}
	stats, err := rt.Render(ctx, iw)
	if err != nil {
		return nil, stats, err
	}
	return iw.img, stats, nil
}

// averagedColors reduces a scanline's pixel statistics to linear colors
func averagedColors(pixels []PixelStats) []core.Vec3 {
	colors := make([]core.Vec3, len(pixels))
	for i := range pixels {
		colors[i] = pixels[i].GetColor()
	}
	return colors
}
