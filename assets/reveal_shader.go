//go:build ignore

//kage:unit pixels

package main

// Uniform variables, filled from effect.Frame.Uniforms.
var Time float
var SurfaceSize vec2
var Scale vec2

var Pointer vec2
var Activation float

var WaveSpeed float
var WaveFrequency float
var WaveAmplitude float

var RevealRadius float
var RevealSoftness float
var MouseRadius float

var ClickPos vec2
var ClickTime float
var ClickSet float
var ClickDuration float
var ClickRadius float
var ClickBand float

var PixelSize float
var DitherSpread float
var Contrast float
var PatternSize float
var Thresholds [64]float
var PaletteSize float
var Palette [8]vec4

func sampleTexture(uv vec2) vec4 {
	size := imageSrc0Size()
	uv = clamp(uv, 0, 1)
	pos := floor(vec2(uv.x, 1-uv.y) * size)
	pos = clamp(pos, vec2(0), size-1)
	return imageSrc0At(pos + 0.5 + imageSrc0Origin())
}

func outward(p, center vec2) vec2 {
	return normalize(p - center + 0.0001)
}

func wave(uv vec2) vec2 {
	strength := WaveAmplitude * 0.1
	w1 := sin(uv.y*WaveFrequency+Time*WaveSpeed) * strength
	w2 := sin(uv.x*WaveFrequency*0.7+Time*WaveSpeed*0.8) * strength * 0.5
	w3 := sin((uv.x+uv.y)*WaveFrequency*1.3+Time*WaveSpeed*1.2) * strength * 0.25
	return vec2(w1+w3, w2+w3)
}

func threshold(pixel vec2) float {
	cell := floor(floor(pixel) / max(PixelSize, 1))
	index := int(mod(cell.x, PatternSize) + mod(cell.y, PatternSize)*PatternSize)

	t := 0.0
	for i := 0; i < 64; i++ {
		if i == index {
			t = Thresholds[i]
		}
	}
	return t
}

func paletteColor(level int) vec4 {
	c := Palette[0]
	for i := 0; i < 8; i++ {
		if i == level {
			c = Palette[i]
		}
	}
	return c
}

func revealWeight(dist float) float {
	outer := RevealRadius
	inner := outer * (1 - RevealSoftness)
	if dist >= outer {
		return 0
	}
	if inner >= outer {
		return Activation
	}
	return smoothstep(outer, inner, dist) * Activation
}

func Fragment(dstPos vec4, srcPos vec2, color vec4) vec4 {
	pixel := dstPos.xy - imageDstOrigin()
	p := vec2(pixel.x/SurfaceSize.x, 1-pixel.y/SurfaceSize.y)
	uv := (p-0.5)/Scale + 0.5

	offset := vec2(0)
	if WaveAmplitude > 0 {
		offset += wave(uv)
	}

	// pointer ripple
	if Activation > 0.01 {
		dist := distance(p, Pointer)
		influence := smoothstep(MouseRadius, 0, dist)
		ripple := sin(dist*10-Time*2) * 0.02 * influence * Activation
		offset += outward(p, Pointer) * ripple
	}

	// click ring
	clickReveal := 0.0
	elapsed := Time - ClickTime
	if ClickSet > 0 && elapsed >= 0 && elapsed < ClickDuration {
		progress := elapsed / ClickDuration
		dist := distance(p, ClickPos)
		outer := progress * ClickRadius
		inner := outer - ClickBand
		fade := 1 - progress

		front := smoothstep(inner, outer, dist) * smoothstep(outer+ClickBand*0.5, outer, dist)
		offset += outward(p, ClickPos) * front * fade * 0.05

		lead := smoothstep(outer, outer-ClickBand*0.5, dist)
		tail := smoothstep(outer-ClickBand*2, inner, dist)
		clickReveal = lead * tail * fade
	}

	tex := sampleTexture(uv + offset)
	if tex.a > 0 {
		tex.rgb /= tex.a
	}

	luma := dot(tex.rgb, vec3(0.299, 0.587, 0.114))
	if Contrast != 1 {
		luma = clamp((luma-0.5)*Contrast+0.5, 0, 1)
	}

	adjusted := luma + (threshold(pixel)-0.5)*DitherSpread
	level := int(clamp(floor(adjusted*PaletteSize), 0, PaletteSize-1))
	stylized := paletteColor(level).rgb

	weight := revealWeight(distance(p, Pointer))
	weight = clamp(max(weight, clickReveal), 0, 1)

	final := mix(stylized, tex.rgb, weight)
	return vec4(final*tex.a, tex.a)
}
