package trimesh

import (
	"fmt"
	"image"
)

// IntensityField is a row-major grid of normalized grayscale values in [0, 1],
// where 0 is darkest.
type IntensityField struct {
	Width, Height int
	Values        []float64
}

// NewIntensityField wraps rows of intensities. All rows must have the same length.
func NewIntensityField(rows [][]float64) (*IntensityField, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("%w: empty intensity field", ErrDegenerateDomain)
	}
	f := &IntensityField{
		Width:  len(rows[0]),
		Height: len(rows),
		Values: make([]float64, 0, len(rows)*len(rows[0])),
	}
	for y, row := range rows {
		if len(row) != f.Width {
			return nil, fmt.Errorf("%w: intensity row %d has %d values, want %d", ErrConfiguration, y, len(row), f.Width)
		}
		f.Values = append(f.Values, row...)
	}
	return f, nil
}

// Intensity converts the image to grayscale and normalizes every pixel to [0, 1].
// Fully transparent pixels count as white, so they are never refined.
func Intensity(src image.Image) *IntensityField {
	gray := Grayscale(ImgToNRGBA(src))
	w, h := gray.Bounds().Dx(), gray.Bounds().Dy()
	f := &IntensityField{
		Width:  w,
		Height: h,
		Values: make([]float64, w*h),
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			i := gray.PixOffset(x, y)
			if gray.Pix[i+3] == 0 {
				f.Values[y*w+x] = 1
				continue
			}
			f.Values[y*w+x] = float64(gray.Pix[i]) / 255
		}
	}
	return f
}

// At returns the intensity of pixel (x, y).
func (f *IntensityField) At(x, y int) float64 {
	return f.Values[y*f.Width+x]
}

// Size returns the field extent in pixels.
func (f *IntensityField) Size() image.Point {
	return image.Pt(f.Width, f.Height)
}

// PixelAt maps a domain coordinate onto a pixel of an image with the given size.
// The domain [0, extent] is spread evenly over the pixels; the closed upper
// boundary belongs to the last pixel.
func PixelAt(p Point, extent Point, size image.Point) (image.Point, bool) {
	x, okx := axisPixel(p.X, extent.X, size.X)
	y, oky := axisPixel(p.Y, extent.Y, size.Y)
	return image.Pt(x, y), okx && oky
}

func axisPixel(c, extent float64, size int) (int, bool) {
	if extent <= 0 || size <= 0 {
		return 0, false
	}
	i := int(c * float64(size) / extent)
	if c < 0 || c > extent {
		return i, false
	}
	return Min(i, size-1), true
}
