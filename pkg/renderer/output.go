package renderer

import (
	"bufio"
	"fmt"
	"image"
	"image/color"
	"io"
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
)

// ColorComponent converts a linear channel value to an 8-bit value with gamma 2.
// NaN and negative values map to 0.
func ColorComponent(x float64) int {
	return gammaEncode(core.NewVec3(x, 0, 0))[0]
}

// gammaEncode converts a linear color to 8-bit channels: gamma 2, then
// clamped to [0, 0.999] and scaled by 256
func gammaEncode(c core.Vec3) [3]int {
	c = core.NewVec3(nonNegative(c.X), nonNegative(c.Y), nonNegative(c.Z)).
		GammaCorrect(2).
		Clamp(0, 0.999)
	return [3]int{int(256 * c.X), int(256 * c.Y), int(256 * c.Z)}
}

// nonNegative maps NaN and negative values to 0
func nonNegative(x float64) float64 {
	if math.IsNaN(x) || x <= 0 {
		return 0
	}
	return x
}

// vec3ToColor converts a Vec3 color to RGBA with gamma correction and clamping
func vec3ToColor(colorVec core.Vec3) color.RGBA {
	rgb := gammaEncode(colorVec)
	return color.RGBA{
		R: uint8(rgb[0]),
		G: uint8(rgb[1]),
		B: uint8(rgb[2]),
		A: 255,
	}
}

// PPMWriter streams scanlines as a plain-text (P3) PPM image
type PPMWriter struct {
	w *bufio.Writer
}

// NewPPMWriter creates a PPM writer on top of w
func NewPPMWriter(w io.Writer) *PPMWriter {
	return &PPMWriter{w: bufio.NewWriter(w)}
}

// Begin writes the PPM header
func (p *PPMWriter) Begin(width, height int) error {
	_, err := fmt.Fprintf(p.w, "P3\n%d %d\n255\n", width, height)
	return err
}

// WriteScanline writes one "r g b" line per pixel
func (p *PPMWriter) WriteScanline(row int, pixels []core.Vec3) error {
	for _, c := range pixels {
		rgb := gammaEncode(c)
		if _, err := fmt.Fprintf(p.w, "%d %d %d\n", rgb[0], rgb[1], rgb[2]); err != nil {
			return err
		}
	}
	return nil
}

// End flushes buffered output
func (p *PPMWriter) End() error {
	return p.w.Flush()
}

// imageWriter collects scanlines into an RGBA image, row 0 at the bottom
type imageWriter struct {
	img    *image.RGBA
	height int
}

func (iw *imageWriter) Begin(width, height int) error {
	iw.img = image.NewRGBA(image.Rect(0, 0, width, height))
	iw.height = height
	return nil
}

func (iw *imageWriter) WriteScanline(row int, pixels []core.Vec3) error {
	y := iw.height - 1 - row
	for x, c := range pixels {
		iw.img.SetRGBA(x, y, vec3ToColor(c))
	}
	return nil
}

func (iw *imageWriter) End() error {
	return nil
}
