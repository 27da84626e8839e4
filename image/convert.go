package image

import (
	"image"
	"image/color"

	"github.com/makeworld-the-better-one/dither/v2"
	"github.com/nfnt/resize"
)

// Converter prepares an arbitrary source image for the engraver. The
// source is scaled to the device raster size (aspect ratio is not
// preserved), reduced to grayscale, inverted, mirrored and thresholded
// into the packed monochrome raster. Light regions of the source end up
// engraved, dark regions stay blank.
type Converter struct {
	// Threshold is the luminance cut between engraved and blank dots,
	// in the range (0, 1]. A zero value falls back to the midpoint.
	Threshold float64

	// Dither selects Floyd-Steinberg dithering instead of the plain
	// threshold when reducing to monochrome.
	Dither bool
}

func NewConverter() *Converter {
	return &Converter{Threshold: 0.5}
}

// Convert turns img into a device raster of exactly RasterSize bytes.
func (c *Converter) Convert(img image.Image) ([]byte, error) {
	if img == nil || img.Bounds().Empty() {
		return nil, ErrInvalidImage
	}

	scaled := resize.Resize(Width, Height, img, resize.Bilinear)
	if c.Dither {
		ditherer := dither.NewDitherer([]color.Color{color.Black, color.White})
		ditherer.Matrix = dither.FloydSteinberg
		scaled = ditherer.DitherPaletted(scaled)
	}

	return Mirror(c.toRaster(scaled))
}

func (c *Converter) toRaster(img image.Image) []byte {
	threshold := c.Threshold
	if threshold <= 0 {
		threshold = 0.5
	}

	min := img.Bounds().Min
	data := make([]byte, RasterSize)
	for y := 0; y < Height; y++ {
		for x := 0; x < Width; x++ {
			// The device engraves set bits, so luminance is inverted
			// ahead of the threshold: light sources burn, dark stay off.
			if 1-lightness(img.At(min.X+x, min.Y+y)) < threshold {
				data[y*BytesPerRow+x/8] |= 0x80 >> uint(x%8)
			}
		}
	}
	return data
}

const (
	lumR, lumG, lumB = 55, 182, 18
)

func lightness(c color.Color) float64 {
	r, g, b, _ := c.RGBA()

	return float64(lumR*r+lumG*g+lumB*b) / float64(0xffff*(lumR+lumG+lumB))
}
