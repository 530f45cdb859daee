package main

import (
	eb "github.com/hajimehoshi/ebiten/v2"

	"revealwave/effect"
)

const (
	ShowDebugConsoleKey eb.Key = eb.KeyF1

	ReloadAssetsKey eb.Key = eb.KeyF5

	PauseKey      eb.Key = eb.KeySpace
	ScreenshotKey eb.Key = eb.KeyP
	CopyConfigKey eb.Key = eb.KeyC
)

func (a *App) HandleHotkeys() {
	if IsKeyJustPressed(ShowDebugConsoleKey) {
		a.ShowDebugConsole = !a.ShowDebugConsole
	}

	if IsKeyJustPressed(ReloadAssetsKey) {
		a.ReloadAssets()
	}

	if IsKeyJustPressed(PauseKey) {
		a.Paused = !a.Paused
	}

	if IsKeyJustPressed(ScreenshotKey) {
		a.screenshotQueued = true
	}

	if IsKeyJustPressed(CopyConfigKey) {
		cfg := a.Surface.Config()
		data, err := cfg.MarshalIndent()
		if err != nil {
			ErrLogger.Printf("failed to encode config: %v", err)
		} else {
			ClipboardWriteText(string(data))
			InfoLogger.Print("copied config to clipboard")
		}
	}
}

// ReloadAssets reloads the config file and the shader. Either failing
// keeps what is running now.
func (a *App) ReloadAssets() {
	if FlagConfig != "" {
		cfg, err := effect.LoadConfig(FlagConfig)
		if err != nil {
			ErrLogger.Printf("failed to reload config: %v", err)
		} else if err = a.Surface.SetConfig(cfg); err != nil {
			ErrLogger.Printf("failed to apply config: %v", err)
		} else {
			InfoLogger.Printf("reloaded %s", FlagConfig)
		}
	}

	if FlagForceCPU {
		return
	}

	shader, err := LoadRevealShader()
	if err != nil {
		ErrLogger.Printf("failed to reload shader: %v", err)
		return
	}
	if a.Shader != nil {
		a.Shader.Deallocate()
	}
	a.Shader = shader
	InfoLogger.Print("reloaded shader")
}
