package main

import (
	_ "embed"
	"fmt"
	"image"
	"image/color"
	"os"

	eb "github.com/hajimehoshi/ebiten/v2"

	"revealwave/misc"
)

const revealShaderPath = "assets/reveal_shader.go"

//go:embed assets/reveal_shader.go
var revealShaderSource []byte

// LoadRevealShader compiles the reveal shader. With -hot the source is
// read from disk when it exists so edits show up on reload.
func LoadRevealShader() (*eb.Shader, error) {
	src := revealShaderSource

	if FlagHotReload {
		exists, err := misc.CheckFileExists(revealShaderPath)
		if err != nil {
			return nil, err
		}
		if exists {
			if src, err = os.ReadFile(revealShaderPath); err != nil {
				return nil, err
			}
		} else {
			WarnLogger.Printf("%s not found, using embedded shader", revealShaderPath)
		}
	}

	shader, err := eb.NewShader(src)
	if err != nil {
		return nil, fmt.Errorf("compiling %s: %w", revealShaderPath, err)
	}
	return shader, nil
}

var placeholderImage *image.NRGBA

// PlaceholderImage is the mid gray texel drawn while the image loads.
func PlaceholderImage() image.Image {
	if placeholderImage == nil {
		placeholderImage = image.NewNRGBA(RectWH(1, 1))
		placeholderImage.SetNRGBA(0, 0, color.NRGBA{128, 128, 128, 255})
	}
	return placeholderImage
}
