package effect

import (
	"image"
	"image/color"
	"math"
)

// Sampler returns the color at a texture coordinate (unit square,
// bottom-left origin).
type Sampler interface {
	At(uv Vec2) Color
}

// Texture is a decoded image kept as straight RGBA floats. Sampling is
// nearest texel with clamp to edge, matching the GPU path.
type Texture struct {
	width, height int
	pix           []Color
}

func NewTexture(img image.Image) *Texture {
	b := img.Bounds()
	t := &Texture{
		width:  b.Dx(),
		height: b.Dy(),
		pix:    make([]Color, b.Dx()*b.Dy()),
	}

	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
			t.pix[(y-b.Min.Y)*t.width+(x-b.Min.X)] = ColorFromNRGBA(c)
		}
	}

	return t
}

// PlaceholderTexture is the neutral mid gray used when an image cannot be
// loaded.
func PlaceholderTexture() *Texture {
	return &Texture{
		width:  1,
		height: 1,
		pix:    []Color{Gray(0.5)},
	}
}

func (t *Texture) At(uv Vec2) Color {
	if t.width == 0 || t.height == 0 {
		return Gray(0.5)
	}

	x := int(math.Floor(Clamp(uv.X, 0, 1) * float64(t.width)))
	y := int(math.Floor((1 - Clamp(uv.Y, 0, 1)) * float64(t.height)))

	x = Clamp(x, 0, t.width-1)
	y = Clamp(y, 0, t.height-1)

	return t.pix[y*t.width+x]
}

// Solid samples the same color everywhere.
type Solid Color

func (s Solid) At(Vec2) Color {
	return Color(s)
}
