package effect

import (
	"encoding/json"
	"fmt"
	"image/color"

	css "github.com/mazznoer/csscolorparser"
)

// Color is a straight (non premultiplied) RGBA color with channels in 0..1.
type Color struct {
	R, G, B, A float64
}

func Gray(v float64) Color {
	return Color{v, v, v, 1}
}

func LerpColor(a, b Color, t float64) Color {
	return Color{
		R: Lerp(a.R, b.R, t),
		G: Lerp(a.G, b.G, t),
		B: Lerp(a.B, b.B, t),
		A: Lerp(a.A, b.A, t),
	}
}

// Luminance uses the broadcast weights (0.299, 0.587, 0.114).
func (c Color) Luminance() float64 {
	return c.R*0.299 + c.G*0.587 + c.B*0.114
}

func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{
		R: uint8(Clamp(c.R, 0, 1)*255 + 0.5),
		G: uint8(Clamp(c.G, 0, 1)*255 + 0.5),
		B: uint8(Clamp(c.B, 0, 1)*255 + 0.5),
		A: uint8(Clamp(c.A, 0, 1)*255 + 0.5),
	}
}

func ColorFromNRGBA(c color.NRGBA) Color {
	return Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
		A: float64(c.A) / 255,
	}
}

func (c Color) String() string {
	n := c.NRGBA()
	if n.A == 255 {
		return fmt.Sprintf("#%02x%02x%02x", n.R, n.G, n.B)
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", n.R, n.G, n.B, n.A)
}

func ParseColor(str string) (Color, error) {
	c, err := css.Parse(str)
	if err != nil {
		return Color{}, err
	}
	return Color{R: c.R, G: c.G, B: c.B, A: c.A}, nil
}

const (
	MinPaletteSize = 2
	MaxPaletteSize = 8
)

// Palette holds the output levels of the quantizer, darkest first.
// Index i is selected for adjusted luminance in [i/n, (i+1)/n).
type Palette []Color

func DefaultPalette() Palette {
	return Palette{Gray(0), Gray(0.5), Gray(1)}
}

func ParsePalette(strs []string) (Palette, error) {
	p := make(Palette, 0, len(strs))
	for i, s := range strs {
		c, err := ParseColor(s)
		if err != nil {
			return nil, fmt.Errorf("palette entry %d %q: %w", i, s, err)
		}
		p = append(p, c)
	}
	return p, nil
}

func (p Palette) MarshalJSON() ([]byte, error) {
	strs := make([]string, len(p))
	for i, c := range p {
		strs[i] = c.String()
	}
	return json.Marshal(strs)
}

func (p *Palette) UnmarshalJSON(data []byte) error {
	var strs []string
	if err := json.Unmarshal(data, &strs); err != nil {
		return err
	}
	parsed, err := ParsePalette(strs)
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}
