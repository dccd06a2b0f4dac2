package trimesh

import (
	"image"
	"image/color"
	"testing"
)

func gradient(w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			v := uint8(255 * x / w)
			img.SetNRGBA(x, y, color.NRGBA{R: v, G: v, B: v, A: 255})
		}
	}
	return img
}

func BenchmarkSchedule(b *testing.B) {
	field := Intensity(gradient(256, 256))
	p := Partition{X: 1, Y: 1}.Scale(4)
	mesh, err := Grid(Partition{X: 1, Y: 1}, 4)
	if err != nil {
		b.Fatal(err)
	}
	plan := DefaultPlan()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Schedule(mesh, field, p, plan); err != nil {
			b.Fatalf("Failed refining benchmark mesh: %v", err)
		}
	}
}

func BenchmarkTriangulate(b *testing.B) {
	src := gradient(320, 240)
	proc := Processor{LineWidth: 1}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := proc.Triangulate(src); err != nil {
			b.Fatalf("Failed drawing benchmark image: %v", err)
		}
	}
}
