package trimesh

import (
	"image"
	"image/color"
)

type prng struct {
	a         int
	m         int
	randomNum int
	div       float64
}

func newPrng() *prng {
	return &prng{
		a:         16807,
		m:         0x7fffffff,
		randomNum: 1.0,
		div:       1.0 / 0x7fffffff,
	}
}

// Noise applies a grain filter of the given amount. The generator is seeded
// with a constant, so equal inputs give equal outputs. Transparent pixels stay
// transparent.
func Noise(amount int, src image.Image) *image.NRGBA {
	img := ImgToNRGBA(src)
	w, h := img.Bounds().Dx(), img.Bounds().Dy()
	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	prng := newPrng()

	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			noise := (prng.randomSeed() - 0.1) * float64(amount)
			c := img.NRGBAAt(x, y)
			if c.A == 0 {
				continue
			}
			rf, gf, bf := float64(c.R), float64(c.G), float64(c.B)
			// Skip pixels that would overflow once the noise is applied.
			if rf+noise < 255 && gf+noise < 255 && bf+noise < 255 {
				rf += noise
				gf += noise
				bf += noise
			}
			dst.SetNRGBA(x, y, color.NRGBA{
				R: uint8(Max(0, Min(255, rf))),
				G: uint8(Max(0, Min(255, gf))),
				B: uint8(Max(0, Min(255, bf))),
				A: c.A,
			})
		}
	}
	return dst
}

func (prng *prng) nextLongRand(seed int) int {
	lo := prng.a * (seed & 0xffff)
	hi := prng.a * (seed >> 16)
	lo += (hi & 0x7fff) << 16

	if lo > prng.m {
		lo &= prng.m
		lo++
	}
	lo += hi >> 15
	if lo > prng.m {
		lo &= prng.m
		lo++
	}
	return lo
}

func (prng *prng) randomSeed() float64 {
	prng.randomNum = prng.nextLongRand(prng.randomNum)
	return float64(prng.randomNum) * prng.div
}
