package trimesh

import (
	"fmt"
	"image"
	"image/color"
	"path/filepath"
	"strings"

	"github.com/fogleman/gg"
)

const jpegQuality = 90

// Render strokes every segment onto a canvas of the given size. Domain
// coordinates in [0, extent] are stretched over the whole canvas. A nil
// background leaves the canvas transparent.
func Render(segs []Segment, size image.Point, extent Point, lineWidth float64, background color.Color) image.Image {
	ctx := gg.NewContext(size.X, size.Y)
	if background != nil {
		ctx.SetColor(background)
		ctx.Clear()
	}
	sx := float64(size.X) / extent.X
	sy := float64(size.Y) / extent.Y

	ctx.SetLineWidth(lineWidth)
	ctx.SetLineCapRound()
	for _, s := range segs {
		ctx.SetColor(s.Color.NRGBA())
		ctx.DrawLine(s.A.X*sx, s.A.Y*sy, s.B.X*sx, s.B.Y*sy)
		ctx.Stroke()
	}
	return ctx.Image()
}

// CheckFormat reports whether Save can encode to path.
func CheckFormat(path string) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png", ".jpg", ".jpeg":
		return nil
	}
	return fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
}

// Save encodes the image as PNG or JPEG depending on the file extension.
func Save(img image.Image, path string) error {
	if err := CheckFormat(path); err != nil {
		return err
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".jpg", ".jpeg":
		return gg.SaveJPG(path, img, jpegQuality)
	default:
		return gg.SavePNG(path, img)
	}
}
