package effect

// Uniforms returns the frame as the uniform map of the reveal shader for
// a width by height surface.
func (f *Frame) Uniforms(width, height int) map[string]any {
	cfg := &f.Config
	params := &f.Params

	_, patternSize := cfg.Pattern.Matrix()

	thresholds := make([]float32, 64)
	for i, t := range cfg.Pattern.Thresholds() {
		thresholds[i] = float32(t)
	}

	palette := make([]float32, MaxPaletteSize*4)
	for i, c := range cfg.Palette {
		if i >= MaxPaletteSize {
			break
		}
		palette[i*4+0] = float32(c.R)
		palette[i*4+1] = float32(c.G)
		palette[i*4+2] = float32(c.B)
		palette[i*4+3] = float32(c.A)
	}

	var clickSet float32
	if params.Click.Set {
		clickSet = 1
	}

	return map[string]any{
		"Time":        float32(params.Time),
		"SurfaceSize": []float32{float32(width), float32(height)},
		"Scale":       []float32{float32(f.Scale.X), float32(f.Scale.Y)},

		"Pointer":    []float32{float32(params.Pointer.X), float32(params.Pointer.Y)},
		"Activation": float32(params.Activation),

		"WaveSpeed":     float32(cfg.WaveSpeed),
		"WaveFrequency": float32(cfg.WaveFrequency),
		"WaveAmplitude": float32(cfg.WaveAmplitude),

		"RevealRadius":   float32(cfg.RevealRadius),
		"RevealSoftness": float32(cfg.RevealSoftness),
		"MouseRadius":    float32(cfg.MouseRadius),

		"ClickPos":      []float32{float32(params.Click.Pos.X), float32(params.Click.Pos.Y)},
		"ClickTime":     float32(params.Click.Time),
		"ClickSet":      clickSet,
		"ClickDuration": float32(cfg.ClickDuration),
		"ClickRadius":   float32(cfg.ClickRadius),
		"ClickBand":     float32(cfg.ClickBand),

		"PixelSize":    float32(cfg.PixelSize),
		"DitherSpread": float32(cfg.DitherSpread),
		"Contrast":     float32(cfg.Contrast),
		"PatternSize":  float32(patternSize),
		"Thresholds":   thresholds,
		"PaletteSize":  float32(len(cfg.Palette)),
		"Palette":      palette,
	}
}
