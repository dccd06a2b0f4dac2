package trimesh

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// wrapped hides the concrete image type from the sampler.
type wrapped struct{ *image.NRGBA }

func TestPixelColorAt(t *testing.T) {
	gray := image.NewGray(image.Rect(0, 0, 1, 1))
	gray.SetGray(0, 0, color.Gray{Y: 42})

	nrgba := image.NewNRGBA(image.Rect(10, 10, 12, 12))
	nrgba.SetNRGBA(11, 10, color.NRGBA{R: 1, G: 2, B: 3, A: 4})

	rgba := image.NewRGBA(image.Rect(0, 0, 1, 1))
	rgba.SetRGBA(0, 0, color.RGBA{R: 100, G: 50, B: 0, A: 255})

	cases := []struct {
		name string
		img  image.Image
		x, y int
		want Color
	}{
		{"Gray", gray, 0, 0, Color{Model: RGB, R: 42, G: 42, B: 42}},
		{"NRGBA", nrgba, 1, 0, Color{Model: RGBA, R: 1, G: 2, B: 3, A: 4}},
		{"RGBA", rgba, 0, 0, Color{Model: RGBA, R: 100, G: 50, B: 0, A: 255}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := PixelColorAt(tc.img, tc.x, tc.y)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}

	_, err := PixelColorAt(wrapped{nrgba}, 0, 0)
	assert.ErrorIs(t, err, ErrUnsupportedColor)

	_, err = PixelColorAt(gray, 1, 0)
	assert.ErrorIs(t, err, ErrGeometryMismatch)
}

func TestColor_Background(t *testing.T) {
	cases := []struct {
		name string
		c    Color
		want bool
	}{
		{"TransparentWithColor", Color{Model: RGBA, R: 200, G: 10, B: 10, A: 0}, true},
		{"NearWhiteRGB", Color{Model: RGB, R: 241, G: 250, B: 255}, true},
		{"WhiteLimitRGB", Color{Model: RGB, R: 240, G: 250, B: 255}, false},
		{"NearWhiteOpaque", Color{Model: RGBA, R: 245, G: 245, B: 245, A: 255}, true},
		{"NearWhiteTranslucent", Color{Model: RGBA, R: 245, G: 245, B: 245, A: 128}, false},
		{"Dark", Color{Model: RGBA, R: 10, G: 10, B: 10, A: 255}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.c.Background())
		})
	}
}

func TestEdgeColors(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	img.SetNRGBA(0, 0, color.NRGBA{R: 200, G: 10, B: 10, A: 0})
	img.SetNRGBA(1, 0, color.NRGBA{R: 255, A: 255})
	img.SetNRGBA(0, 1, color.NRGBA{R: 250, G: 250, B: 250, A: 255})
	img.SetNRGBA(1, 1, color.NRGBA{R: 40, G: 40, B: 40, A: 255})

	p := Partition{2, 2}
	m, err := Grid(p, 1)
	require.NoError(t, err)

	segs, err := EdgeColors(m, img, p)
	require.NoError(t, err)
	require.Len(t, segs, len(m.Edges()))

	byStart := map[Point]Color{
		{0, 0}: Transparent,
		{1, 0}: {Model: RGBA, R: 255, A: 255},
		{0, 1}: Transparent,
		{1, 1}: {Model: RGBA, R: 40, G: 40, B: 40, A: 255},
	}
	for _, s := range segs {
		if want, ok := byStart[s.A]; ok {
			assert.Equal(t, want, s.Color, "segment %v-%v", s.A, s.B)
		}
	}
}

func TestEdgeColors_Unsupported(t *testing.T) {
	p := Partition{1, 1}
	m, err := Grid(p, 1)
	require.NoError(t, err)

	_, err = EdgeColors(m, wrapped{image.NewNRGBA(image.Rect(0, 0, 4, 4))}, p)
	assert.ErrorIs(t, err, ErrUnsupportedColor)
}

func TestEdgeColors_FirstEndpointOnly(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 1))
	img.SetNRGBA(0, 0, color.NRGBA{R: 10, A: 255})
	img.SetNRGBA(1, 0, color.NRGBA{B: 200, A: 255})

	m, err := NewMesh([]Point{{0, 0}, {2, 0}, {0, 1}}, []Cell{{1, 2, 0}})
	require.NoError(t, err)

	segs, err := EdgeColors(m, img, Partition{2, 1})
	require.NoError(t, err)
	for _, s := range segs {
		if s.A == (Point{0, 0}) && s.B == (Point{2, 0}) {
			assert.Equal(t, Color{Model: RGBA, R: 10, A: 255}, s.Color)
			return
		}
	}
	t.Fatal("edge (0,0)-(2,0) not found")
}
