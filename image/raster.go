package image

import (
	"errors"
	"fmt"
	"math/bits"
)

// Device raster geometry. The engraver stores a fixed 512x512 monochrome
// bitmap, packed row-major with eight pixels per byte, most significant
// bit first. A set bit is engraved.
const (
	Width       = 512
	Height      = 512
	BytesPerRow = Width / 8
	RasterSize  = BytesPerRow * Height
)

var (
	ErrInvalidImage  = errors.New("image: source image cannot be used")
	ErrInvalidLength = errors.New("image: raster has wrong length")
)

// ValidateRaster checks that b is exactly one device raster.
func ValidateRaster(b []byte) error {
	if len(b) != RasterSize {
		return fmt.Errorf("%w: got %d bytes, want %d", ErrInvalidLength, len(b), RasterSize)
	}
	return nil
}

// Mirror flips a packed raster left to right, matching the engraver's
// scan direction. Applying it twice restores the original raster.
func Mirror(data []byte) ([]byte, error) {
	if err := ValidateRaster(data); err != nil {
		return nil, err
	}

	out := make([]byte, RasterSize)
	for y := 0; y < Height; y++ {
		row := data[y*BytesPerRow : (y+1)*BytesPerRow]
		dst := out[y*BytesPerRow : (y+1)*BytesPerRow]
		for i, b := range row {
			dst[BytesPerRow-1-i] = bits.Reverse8(b)
		}
	}
	return out, nil
}
