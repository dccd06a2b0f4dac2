package trimesh

import (
	"fmt"
	"image"
	"image/color"
)

// whiteLimit is the channel value above which an opaque pixel counts as background.
const whiteLimit = 240

// ColorModel tags the channel layout a sampled pixel came from.
type ColorModel int

const (
	// RGB pixels carry no alpha channel.
	RGB ColorModel = iota
	// RGBA pixels carry a straight (non-premultiplied) alpha channel.
	RGBA
)

func (m ColorModel) String() string {
	switch m {
	case RGB:
		return "RGB"
	case RGBA:
		return "RGBA"
	}
	return fmt.Sprintf("ColorModel(%d)", int(m))
}

// Color is a sampled pixel together with its channel layout.
type Color struct {
	Model      ColorModel
	R, G, B, A uint8
}

// Transparent is the color substituted for background pixels.
var Transparent = Color{Model: RGBA}

// NRGBA converts the sample to a standard library color.
func (c Color) NRGBA() color.NRGBA {
	if c.Model == RGB {
		return color.NRGBA{R: c.R, G: c.G, B: c.B, A: 0xff}
	}
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

// Background reports whether the sample is fully transparent, or opaque
// and brighter than whiteLimit in every channel.
func (c Color) Background() bool {
	switch c.Model {
	case RGBA:
		if c.A == 0 {
			return true
		}
		return Min(c.R, c.G, c.B, c.A) > whiteLimit
	default:
		return Min(c.R, c.G, c.B) > whiteLimit
	}
}

// PixelColorAt samples pixel (x, y) of img, relative to its bounds.
// Gray, YCbCr and CMYK images yield RGB samples; images with an alpha
// channel yield RGBA samples. Any other image type is unsupported.
func PixelColorAt(img image.Image, x, y int) (Color, error) {
	b := img.Bounds()
	pt := image.Pt(b.Min.X+x, b.Min.Y+y)
	if !pt.In(b) {
		return Color{}, fmt.Errorf("%w: pixel (%d, %d) outside %dx%d image", ErrGeometryMismatch, x, y, b.Dx(), b.Dy())
	}

	switch src := img.(type) {
	case *image.Gray, *image.Gray16, *image.YCbCr, *image.CMYK:
		c := color.RGBAModel.Convert(src.At(pt.X, pt.Y)).(color.RGBA)
		return Color{Model: RGB, R: c.R, G: c.G, B: c.B}, nil
	case *image.NRGBA:
		i := src.PixOffset(pt.X, pt.Y)
		s := src.Pix[i : i+4 : i+4]
		return Color{Model: RGBA, R: s[0], G: s[1], B: s[2], A: s[3]}, nil
	case *image.RGBA, *image.RGBA64, *image.NRGBA64, *image.Paletted, *image.NYCbCrA:
		c := color.NRGBAModel.Convert(src.At(pt.X, pt.Y)).(color.NRGBA)
		return Color{Model: RGBA, R: c.R, G: c.G, B: c.B, A: c.A}, nil
	}
	return Color{}, fmt.Errorf("%w: %T", ErrUnsupportedColor, img)
}

// Segment is a mesh edge with its sampled color.
type Segment struct {
	A, B  Point
	Color Color
}

// EdgeColors colors every unique mesh edge by sampling img at a single point:
// the edge's first (lower index) endpoint, mapped with the same rule as Mark.
// The other endpoint is not sampled and no averaging takes place. Background
// samples are replaced by Transparent.
func EdgeColors(m *Mesh, img image.Image, p Partition) ([]Segment, error) {
	var (
		extent = p.Extent()
		size   = img.Bounds().Size()
		edges  = m.Edges()
		segs   = make([]Segment, 0, len(edges))
	)
	for _, e := range edges {
		a, b := m.Vertex(e[0]), m.Vertex(e[1])
		px, ok := PixelAt(a, extent, size)
		if !ok {
			return nil, fmt.Errorf("%w: edge %v endpoint (%g, %g) maps to pixel (%d, %d) outside %dx%d image",
				ErrGeometryMismatch, e, a.X, a.Y, px.X, px.Y, size.X, size.Y)
		}
		c, err := PixelColorAt(img, px.X, px.Y)
		if err != nil {
			return nil, fmt.Errorf("edge %v: %w", e, err)
		}
		if c.Background() {
			c = Transparent
		}
		segs = append(segs, Segment{A: a, B: b, Color: c})
	}
	return segs, nil
}
