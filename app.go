package main

import (
	"fmt"
	"image"
	"time"

	eb "github.com/hajimehoshi/ebiten/v2"

	"revealwave/effect"
	"revealwave/surface"
)

type App struct {
	Surface *surface.Surface

	// nil when the shader failed to compile, rendering falls back to the
	// cpu then
	Shader *eb.Shader

	Frame    surface.Frame
	HasFrame bool

	Paused bool

	ShowDebugConsole bool

	// gpu copy of Frame.Resource
	texture         *eb.Image
	textureResource *surface.Resource

	cpuRaster *image.NRGBA
	cpuImage  *eb.Image
	cpuPixels []byte

	screenshotQueued bool
}

func NewApp(cfg effect.Config) (*App, error) {
	s, err := surface.New(cfg)
	if err != nil {
		return nil, err
	}

	a := &App{Surface: s}

	if !FlagForceCPU {
		a.Shader, err = LoadRevealShader()
		if err != nil {
			ErrLogger.Printf("shader unavailable, rendering on the cpu: %v", err)
		}
	}

	s.Attach()

	return a, nil
}

func (a *App) Update() error {
	ClearDebugMsgs()

	// ==========================
	// update global timer
	// ==========================
	UpdateGlobalTimer()

	fpsStr := fmt.Sprintf("%.2f", eb.ActualFPS())
	tpsStr := fmt.Sprintf("%.2f", eb.ActualTPS())

	DebugPrint("FPS", fpsStr)
	DebugPrint("TPS", tpsStr)
	DebugPrint("uptime", GlobalTimerNow().Truncate(time.Second))

	a.HandleHotkeys()

	// ==========================
	// attach and detach
	// ==========================
	shouldRun := !a.Paused && eb.IsFocused()
	if shouldRun != a.Surface.Attached() {
		if shouldRun {
			a.Surface.Attach()
		} else {
			a.Surface.Detach()
		}
	}

	// ==========================
	// pointer
	// ==========================
	UpdatePointer(a.Surface, ScreenRect())

	frame, ok := a.Surface.Tick(UpdateDelta())
	if !ok {
		DebugPrint("paused", true)
		return nil
	}

	a.Frame = frame
	a.HasFrame = true
	a.syncTexture()

	DebugPrintf("time", "%.2f", frame.Params.Time)
	DebugPrintf("pointer", "%.3f, %.3f", frame.Params.Pointer.X, frame.Params.Pointer.Y)
	DebugPrintf("activation", "%.3f", frame.Params.Activation)
	DebugPrintf("scale", "%.3f, %.3f", frame.Scale.X, frame.Scale.Y)
	DebugPrint("pattern", frame.Config.Pattern)
	DebugPrint("renderer", a.rendererName())
	if frame.Resource != nil && frame.Resource.Err != nil {
		DebugPrint("image", "placeholder")
	}

	return nil
}

func (a *App) rendererName() string {
	if a.Shader == nil {
		return "cpu"
	}
	return "shader"
}

// syncTexture uploads the frame's resource when it changed.
func (a *App) syncTexture() {
	res := a.Frame.Resource
	if a.texture != nil && res == a.textureResource {
		return
	}

	if a.texture != nil {
		a.texture.Deallocate()
	}

	if res == nil {
		a.texture = eb.NewImageFromImage(PlaceholderImage())
	} else {
		a.texture = eb.NewImageFromImage(res.Image)
	}
	a.textureResource = res
}

func (a *App) Draw(dst *eb.Image) {
	// screen is not cleared between frames, a detached surface keeps
	// showing its last frame
	if !a.HasFrame || !a.Surface.Attached() {
		return
	}
	if w, h := ImageSize(dst); w <= 0 || h <= 0 {
		return
	}

	if a.Shader != nil {
		a.drawShader(dst)
	} else {
		a.drawCPU(dst)
	}

	if a.screenshotQueued {
		a.screenshotQueued = false
		if name, err := TakeScreenshot(dst); err != nil {
			ErrLogger.Printf("failed to take screenshot: %v", err)
		} else {
			InfoLogger.Printf("screenshot saved to %s", name)
		}
	}

	if a.ShowDebugConsole {
		DrawDebugMsgs(dst)
	}
}

func (a *App) drawShader(dst *eb.Image) {
	w, h := ImageSize(dst)
	texW, texH := ImageSize(a.texture)

	op := &DrawRectShaderOptions{}
	op.Images[0] = a.texture
	op.Uniforms = a.Frame.Uniforms(w, h)
	op.GeoM.Scale(f64(w)/f64(texW), f64(h)/f64(texH))

	BeginBlend(eb.BlendCopy)
	DrawRectShader(dst, texW, texH, a.Shader, op)
	EndBlend()
}

func (a *App) drawCPU(dst *eb.Image) {
	timer := NewProfTimer("cpu render")
	defer timer.Report()

	w, h := ImageSize(dst)

	if a.cpuRaster == nil || ImageSizePt(a.cpuRaster) != image.Pt(w, h) {
		if a.cpuImage != nil {
			a.cpuImage.Deallocate()
		}
		a.cpuRaster = image.NewNRGBA(RectWH(w, h))
		a.cpuImage = eb.NewImage(w, h)
		a.cpuPixels = make([]byte, len(a.cpuRaster.Pix))
	}

	effect.Render(a.cpuRaster, a.Frame.Sampler(), &a.Frame.Frame)

	PremultiplyPixels(a.cpuPixels, a.cpuRaster.Pix)
	a.cpuImage.WritePixels(a.cpuPixels)

	BeginBlend(eb.BlendCopy)
	DrawImage(dst, a.cpuImage, nil)
	EndBlend()
}

func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	ScreenWidth = f64(outsideWidth)
	ScreenHeight = f64(outsideHeight)

	a.Surface.Resize(outsideWidth, outsideHeight)

	return outsideWidth, outsideHeight
}
