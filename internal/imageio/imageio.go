// Package imageio loads and saves luma-only images as linear-light
// float32 grids, expanding and correcting the sRGB transfer function at
// the boundary, and provides the crop-to-multiple-of-2^order helper every
// CLI tool needs before handing pixels to the pyramid.
//
// There is no third-party codec in this corpus that exposes a luma-only
// gamma pair directly over image/png's 8-bit grayscale — colour-management
// libraries in the example pack (e.g. ICC-profile handling) work in terms
// of whole images, not the bare linear<->sRGB scalar transfer function
// needed here, so this boundary conversion is hand-written against the
// standard library's image/png codec.
package imageio

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
)

// ErrNotLuma is returned by Load when the decoded image carries chroma or
// alpha information instead of a single luma channel.
var ErrNotLuma = fmt.Errorf("image must only have a luma channel")

// expandGamma converts an 8-bit sRGB-encoded sample to linear light.
func expandGamma(x float32) float32 {
	if x <= 0.04045 {
		return x / 12.92
	}
	return float32(math.Pow((float64(x)+0.055)/1.055, 2.4))
}

// correctGamma inverts expandGamma.
func correctGamma(x float32) float32 {
	if x < 0 {
		x = 0
	} else if x > 1 {
		x = 1
	}
	if x <= 0.0031308 {
		return x * 12.92
	}
	return float32(1.055*math.Pow(float64(x), 1/2.4) - 0.055)
}

// Load reads a PNG or other image/-decodable file and returns its luma
// channel as a grid of linear-light float32, one row per scanline.
func Load(path string) ([][]float32, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("imageio: decode %s: %w", path, err)
	}

	switch img.ColorModel() {
	case color.GrayModel, color.Gray16Model:
	default:
		return nil, fmt.Errorf("imageio: %s: %w", path, ErrNotLuma)
	}

	bounds := img.Bounds()
	h, w := bounds.Dy(), bounds.Dx()
	out := make([][]float32, h)
	for y := 0; y < h; y++ {
		out[y] = make([]float32, w)
		for x := 0; x < w; x++ {
			grayValue := color.GrayModel.Convert(img.At(bounds.Min.X+x, bounds.Min.Y+y)).(color.Gray).Y
			out[y][x] = expandGamma(float32(grayValue) / 255.0)
		}
	}
	return out, nil
}

// Save writes pixels (linear-light float32) as an 8-bit grayscale PNG.
func Save(path string, pixels [][]float32) error {
	h := len(pixels)
	if h == 0 {
		return fmt.Errorf("imageio: cannot save an empty image")
	}
	w := len(pixels[0])

	img := image.NewGray(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetGray(x, y, color.Gray{Y: uint8(math.Round(float64(correctGamma(pixels[y][x]) * 255.0)))})
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, img)
}

// CropToMultiple removes a centered border from pixels so that both
// dimensions become a multiple of quantum, logging what it drops.
func CropToMultiple(log zerolog.Logger, pixels [][]float32, quantum int) [][]float32 {
	h, w := len(pixels), len(pixels[0])
	hr, wr := h%quantum, w%quantum
	if hr == 0 && wr == 0 {
		return pixels
	}
	newH, newW := h-hr, w-wr
	top, left := hr/2, wr/2
	log.Warn().
		Int("original_height", h).Int("original_width", w).
		Int("cropped_height", newH).Int("cropped_width", newW).
		Msg("cropping image to a multiple of the pyramid quantum")

	out := make([][]float32, newH)
	for y := 0; y < newH; y++ {
		out[y] = make([]float32, newW)
		copy(out[y], pixels[y+top][left:left+newW])
	}
	return out
}

// DefaultOutPath builds "<tempdir>/<stem-of-inPath>-<programName>.png".
func DefaultOutPath(inPath, programName string) string {
	stem := strings.TrimSuffix(filepath.Base(inPath), filepath.Ext(inPath))
	return filepath.Join(os.TempDir(), fmt.Sprintf("%s-%s.png", stem, programName))
}
