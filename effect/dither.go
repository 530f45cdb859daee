package effect

import (
	"encoding/json"
	"fmt"
	"math"
)

// Pattern selects the threshold matrix used by the quantizer.
type Pattern int

const (
	PatternBayer4 Pattern = iota
	PatternBayer8
	PatternCluster8

	PatternCount
)

var patternNames = [PatternCount]string{
	PatternBayer4:   "bayer4",
	PatternBayer8:   "bayer8",
	PatternCluster8: "cluster8",
}

func (p Pattern) String() string {
	if p < 0 || p >= PatternCount {
		return fmt.Sprintf("Pattern(%d)", int(p))
	}
	return patternNames[p]
}

func ParsePattern(name string) (Pattern, error) {
	for i, n := range patternNames {
		if n == name {
			return Pattern(i), nil
		}
	}
	return 0, fmt.Errorf("unknown dither pattern %q", name)
}

func (p Pattern) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.String())
}

func (p *Pattern) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return err
	}
	parsed, err := ParsePattern(name)
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

var bayer4 = [16]uint8{
	0, 8, 2, 10,
	12, 4, 14, 6,
	3, 11, 1, 9,
	15, 7, 13, 5,
}

var bayer8 = [64]uint8{
	0, 32, 8, 40, 2, 34, 10, 42,
	48, 16, 56, 24, 50, 18, 58, 26,
	12, 44, 4, 36, 14, 46, 6, 38,
	60, 28, 52, 20, 62, 30, 54, 22,
	3, 35, 11, 43, 1, 33, 9, 41,
	51, 19, 59, 27, 49, 17, 57, 25,
	15, 47, 7, 39, 13, 45, 5, 37,
	63, 31, 55, 23, 61, 29, 53, 21,
}

// two 45 degree rotated dots per tile
var cluster8 = [64]uint8{
	24, 10, 12, 26, 35, 47, 49, 37,
	8, 0, 2, 14, 45, 59, 61, 51,
	22, 6, 4, 16, 43, 57, 63, 53,
	30, 20, 18, 28, 33, 41, 55, 39,
	34, 46, 48, 36, 25, 11, 13, 27,
	44, 58, 60, 50, 9, 1, 3, 15,
	42, 56, 62, 52, 23, 7, 5, 17,
	32, 40, 54, 38, 31, 21, 19, 29,
}

// Matrix returns the pattern's table in row major order and its side length.
func (p Pattern) Matrix() ([]uint8, int) {
	switch p {
	case PatternBayer8:
		return bayer8[:], 8
	case PatternCluster8:
		return cluster8[:], 8
	default:
		return bayer4[:], 4
	}
}

// Thresholds returns the normalized table (value / cell count), the form
// uploaded to the shader.
func (p Pattern) Thresholds() []float64 {
	m, n := p.Matrix()
	out := make([]float64, len(m))
	for i, v := range m {
		out[i] = float64(v) / float64(n*n)
	}
	return out
}

// Threshold looks up the threshold for the screen pixel (px, py). Pixels
// are grouped into pixelSize wide cells first, so the pattern depends on
// nothing but the pixel position.
func Threshold(p Pattern, px, py int, pixelSize float64) float64 {
	m, n := p.Matrix()
	pixelSize = max(pixelSize, 1)
	cx := int(math.Floor(float64(px) / pixelSize))
	cy := int(math.Floor(float64(py) / pixelSize))
	return float64(m[modInt(cx, n)+modInt(cy, n)*n]) / float64(n*n)
}

// Quantize picks a palette index for a luminance value given the pixel's
// threshold. The threshold shifts the luminance by (threshold-0.5)*spread
// before it is bucketed into levels equal steps.
func Quantize(luma, threshold, spread float64, levels int) int {
	if levels < 2 {
		return 0
	}
	adjusted := luma + (threshold-0.5)*spread
	return Clamp(int(math.Floor(adjusted*float64(levels))), 0, levels-1)
}

// ApplyContrast remaps luminance around mid gray.
func ApplyContrast(luma, contrast float64) float64 {
	if contrast == 1 {
		return luma
	}
	return Clamp((luma-0.5)*contrast+0.5, 0, 1)
}
