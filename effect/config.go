package effect

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
)

var ErrInvalidConfig = errors.New("invalid effect config")

// Config holds every knob of the pipeline. It is fixed for a surface's
// lifetime unless explicitly swapped through the surface.
type Config struct {
	// temporal rate of the wave distortion
	WaveSpeed float64 `json:"waveSpeed"`
	// spatial frequency of the wave distortion
	WaveFrequency float64 `json:"waveFrequency"`
	// distortion magnitude, 0 disables the waves
	WaveAmplitude float64 `json:"waveAmplitude"`

	// outer radius of the pointer flashlight
	RevealRadius float64 `json:"revealRadius"`
	// fraction of RevealRadius used as the falloff band, 0 gives a hard edge
	RevealSoftness float64 `json:"revealSoftness"`

	// dither cell size in screen pixels
	PixelSize float64 `json:"pixelSize"`
	// radius of the pointer ripple distortion
	MouseRadius float64 `json:"mouseRadius"`

	// lifetime of a click ripple in seconds
	ClickDuration float64 `json:"clickDuration"`
	// radius the click ring reaches when the ripple ends
	ClickRadius float64 `json:"clickRadius"`
	// width of the click ring
	ClickBand float64 `json:"clickBand"`

	// per frame easing rate of the activation scalar
	Easing float64 `json:"easing"`

	DitherSpread float64 `json:"ditherSpread"`
	Contrast     float64 `json:"contrast"`
	Pattern      Pattern `json:"pattern"`
	Palette      Palette `json:"palette"`
}

func DefaultConfig() Config {
	return Config{
		WaveSpeed:      0.5,
		WaveFrequency:  3.0,
		WaveAmplitude:  0.2,
		RevealRadius:   0.2,
		RevealSoftness: 0.5,
		PixelSize:      3,
		MouseRadius:    0.2,
		ClickDuration:  1.5,
		ClickRadius:    1.5,
		ClickBand:      0.2,
		Easing:         0.08,
		DitherSpread:   0.6,
		Contrast:       1,
		Pattern:        PatternBayer4,
		Palette:        DefaultPalette(),
	}
}

// Validate reports every field out of range, joined into one error.
func (c Config) Validate() error {
	var errs []error

	positive := func(name string, v float64) {
		if !(v > 0) {
			errs = append(errs, fmt.Errorf("%w: %s must be positive, got %v", ErrInvalidConfig, name, v))
		}
	}
	nonNegative := func(name string, v float64) {
		if !(v >= 0) {
			errs = append(errs, fmt.Errorf("%w: %s must not be negative, got %v", ErrInvalidConfig, name, v))
		}
	}

	positive("waveSpeed", c.WaveSpeed)
	positive("waveFrequency", c.WaveFrequency)
	nonNegative("waveAmplitude", c.WaveAmplitude)
	positive("revealRadius", c.RevealRadius)
	nonNegative("revealSoftness", c.RevealSoftness)
	if c.RevealSoftness > 1 {
		errs = append(errs, fmt.Errorf("%w: revealSoftness must be at most 1, got %v", ErrInvalidConfig, c.RevealSoftness))
	}
	positive("pixelSize", c.PixelSize)
	positive("mouseRadius", c.MouseRadius)
	positive("clickDuration", c.ClickDuration)
	positive("clickRadius", c.ClickRadius)
	positive("clickBand", c.ClickBand)
	positive("easing", c.Easing)
	if c.Easing > 1 {
		errs = append(errs, fmt.Errorf("%w: easing must be at most 1, got %v", ErrInvalidConfig, c.Easing))
	}
	nonNegative("ditherSpread", c.DitherSpread)
	positive("contrast", c.Contrast)

	if c.Pattern < 0 || c.Pattern >= PatternCount {
		errs = append(errs, fmt.Errorf("%w: unknown pattern %v", ErrInvalidConfig, c.Pattern))
	}
	if n := len(c.Palette); n < MinPaletteSize || n > MaxPaletteSize {
		errs = append(errs, fmt.Errorf(
			"%w: palette needs %d to %d colors, got %d",
			ErrInvalidConfig, MinPaletteSize, MaxPaletteSize, n))
	}

	return errors.Join(errs...)
}

// DecodeConfig reads a JSON config on top of the defaults, so keys that
// are left out keep their default value.
func DecodeConfig(r io.Reader) (Config, error) {
	cfg := DefaultConfig()

	decoder := json.NewDecoder(r)
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(&cfg); err != nil {
		return cfg, fmt.Errorf("decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}

	return cfg, nil
}

func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return DefaultConfig(), err
	}
	cfg, err := DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) MarshalIndent() ([]byte, error) {
	return json.MarshalIndent(c, "", "    ")
}

// Clone returns a copy that shares no slices with c.
func (c Config) Clone() Config {
	c.Palette = append(Palette(nil), c.Palette...)
	return c
}
