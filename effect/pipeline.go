package effect

import "math"

// Click is the one live click tracked by a surface. A new click replaces
// the previous one, abandoning its ripple.
type Click struct {
	Pos  Vec2
	Time float64
	Set  bool
}

// FrameParameters is the per frame snapshot handed to the pipeline.
type FrameParameters struct {
	// seconds on the surface clock
	Time float64
	// pipeline space, or Sentinel before the pointer ever entered
	Pointer    Vec2
	Activation float64
	Click      Click
}

// Frame is everything the pipeline reads for one frame. It is assembled
// once per tick and never mutated afterwards.
type Frame struct {
	Params FrameParameters
	Config Config
	Scale  Scale
}

// activations below this skip the pointer terms entirely
const activationEpsilon = 0.01

// Wave is the procedural distortion of a texture coordinate. The x offset
// follows a wave travelling along y and the y offset one travelling along
// x, with a diagonal term on both, so the field is not axis aligned.
func Wave(uv Vec2, t float64, cfg *Config) Vec2 {
	if cfg.WaveAmplitude == 0 {
		return Vec2{}
	}

	strength := cfg.WaveAmplitude * 0.1
	freq := cfg.WaveFrequency
	speed := cfg.WaveSpeed

	w1 := math.Sin(uv.Y*freq+t*speed) * strength
	w2 := math.Sin(uv.X*freq*0.7+t*speed*0.8) * strength * 0.5
	w3 := math.Sin((uv.X+uv.Y)*freq*1.3+t*speed*1.2) * strength * 0.25

	return Vec2{w1 + w3, w2 + w3}
}

// PointerRipple is the radial ripple around the pointer. Its influence
// falls smoothly to zero at MouseRadius and scales with activation.
func PointerRipple(p, pointer Vec2, t, activation float64, cfg *Config) Vec2 {
	if activation <= activationEpsilon {
		return Vec2{}
	}

	dist := Distance(p, pointer)
	influence := Smoothstep(cfg.MouseRadius, 0, dist)
	if influence == 0 {
		return Vec2{}
	}

	ripple := math.Sin(dist*10-t*2) * 0.02 * influence * activation
	return outward(p, pointer).Scale(ripple)
}

// ClickProgress returns the elapsed fraction of the live click, and false
// outside [0, ClickDuration).
func ClickProgress(params *FrameParameters, cfg *Config) (float64, bool) {
	if !params.Click.Set {
		return 0, false
	}
	elapsed := params.Time - params.Click.Time
	if elapsed < 0 || elapsed >= cfg.ClickDuration {
		return 0, false
	}
	return elapsed / cfg.ClickDuration, true
}

// ClickRipple is the expanding ring of a live click. Its radius grows
// linearly to ClickRadius. Pixels at the ring's front are pushed outward
// and pixels in the band just behind it are revealed, both fading with
// (1 - progress).
func ClickRipple(p Vec2, params *FrameParameters, cfg *Config) (offset Vec2, reveal float64) {
	progress, ok := ClickProgress(params, cfg)
	if !ok {
		return Vec2{}, 0
	}

	dist := Distance(p, params.Click.Pos)
	band := cfg.ClickBand
	outer := progress * cfg.ClickRadius
	inner := outer - band
	fade := 1 - progress

	front := Smoothstep(inner, outer, dist) * Smoothstep(outer+band*0.5, outer, dist)
	offset = outward(p, params.Click.Pos).Scale(front * fade * 0.05)

	lead := Smoothstep(outer, outer-band*0.5, dist)
	tail := Smoothstep(outer-band*2, inner, dist)
	reveal = lead * tail * fade

	return offset, reveal
}

// RevealWeight is the flashlight mask. It is exactly 0 from RevealRadius
// outward and rises smoothly to activation at the pointer.
func RevealWeight(dist, activation float64, cfg *Config) float64 {
	outer := cfg.RevealRadius
	inner := outer * (1 - cfg.RevealSoftness)

	if dist >= outer {
		return 0
	}

	var w float64
	if inner >= outer {
		w = 1
	} else {
		w = Smoothstep(outer, inner, dist)
	}
	return w * activation
}

func outward(p, center Vec2) Vec2 {
	return p.Sub(center).Add(Vec2{0.0001, 0.0001}).Normalize()
}

// Fragment is the result of shading one pixel along with the values it
// was blended from.
type Fragment struct {
	Color    Color
	Stylized Color
	Original Color
	Weight   float64
	Level    int
}

// Shade runs the whole pipeline for pixel (px, py) of a w by h surface:
// wave distortion, pointer and click ripples, sampling, luminance,
// ordered quantization and reveal compositing.
//
// Distances to the pointer and the click are measured on the undistorted
// container coordinate.
func (f *Frame) Shade(tex Sampler, px, py, w, h int) Fragment {
	cfg := &f.Config
	params := &f.Params

	p := PixelCenter(px, py, w, h)
	uv := f.Scale.ToTexture(p)

	offset := Wave(uv, params.Time, cfg)
	offset = offset.Add(PointerRipple(p, params.Pointer, params.Time, params.Activation, cfg))

	clickOffset, clickReveal := ClickRipple(p, params, cfg)
	offset = offset.Add(clickOffset)

	original := tex.At(uv.Add(offset))

	luma := ApplyContrast(original.Luminance(), cfg.Contrast)
	threshold := Threshold(cfg.Pattern, px, py, cfg.PixelSize)
	level := Quantize(luma, threshold, cfg.DitherSpread, len(cfg.Palette))

	stylized := cfg.Palette[level]
	stylized.A = original.A

	weight := RevealWeight(Distance(p, params.Pointer), params.Activation, cfg)
	weight = Clamp(max(weight, clickReveal), 0, 1)

	return Fragment{
		Color:    LerpColor(stylized, original, weight),
		Stylized: stylized,
		Original: original,
		Weight:   weight,
		Level:    level,
	}
}
