package renderer

import (
	"image"
	"math"
	"time"

	"github.com/df07/go-pathtracer/pkg/core"
)

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	TotalPixels      int           // Total number of pixels rendered
	TotalSamples     int           // Total number of samples taken
	SamplesPerPixel  int           // Samples taken for every pixel
	MeanVariance     float64       // Mean luminance variance of the pixel estimates
	AverageLuminance float64       // Mean luminance of the averaged pixel colors
	Duration         time.Duration // Wall clock time of the render
}

// PixelStats tracks sampling statistics for a single pixel
type PixelStats struct {
	ColorAccum       core.Vec3 // RGB accumulator for final result
	LuminanceAccum   float64   // Luminance accumulator for convergence
	LuminanceSqAccum float64   // Luminance squared for variance
	SampleCount      int       // Number of samples taken
}

// AddSample adds a new color sample to the pixel statistics
func (ps *PixelStats) AddSample(color core.Vec3) {
	ps.ColorAccum = ps.ColorAccum.Add(color)
	luminance := color.Luminance()
	ps.LuminanceAccum += luminance
	ps.LuminanceSqAccum += luminance * luminance
	ps.SampleCount++
}

// GetColor returns the current average color for this pixel
func (ps *PixelStats) GetColor() core.Vec3 {
	if ps.SampleCount == 0 {
		return core.Vec3{X: 0, Y: 0, Z: 0}
	}
	return ps.ColorAccum.Multiply(1.0 / float64(ps.SampleCount))
}

// Variance returns the variance of the pixel's mean luminance estimate
func (ps *PixelStats) Variance() float64 {
	if ps.SampleCount < 2 {
		return 0
	}
	n := float64(ps.SampleCount)
	mean := ps.LuminanceAccum / n
	meanSq := ps.LuminanceSqAccum / n
	// Sample variance divided by n gives the variance of the mean
	return math.Max(0, meanSq-mean*mean) / (n - 1)
}

// accumulate folds a finished scanline into the render totals
func (s *RenderStats) accumulate(pixels []PixelStats) {
	for i := range pixels {
		s.TotalPixels++
		s.TotalSamples += pixels[i].SampleCount
		s.MeanVariance += pixels[i].Variance()
		s.AverageLuminance += pixels[i].GetColor().Luminance()
	}
}

// finalize turns accumulated sums into means
func (s *RenderStats) finalize(duration time.Duration) {
	if s.TotalPixels > 0 {
		s.MeanVariance /= float64(s.TotalPixels)
		s.AverageLuminance /= float64(s.TotalPixels)
	}
	s.Duration = duration
}

// CalculateAverageLuminance returns the mean luminance of an encoded image,
// with channels read as linear values in [0,1]
func CalculateAverageLuminance(img *image.RGBA) float64 {
	bounds := img.Bounds()
	pixelCount := bounds.Dx() * bounds.Dy()
	if pixelCount == 0 {
		return 0
	}

	total := 0.0
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			c := img.RGBAAt(x, y)
			rgb := core.NewVec3(float64(c.R)/255, float64(c.G)/255, float64(c.B)/255)
			total += rgb.Luminance()
		}
	}
	return total / float64(pixelCount)
}
