package main

import (
	"bytes"
	"fmt"
	"image/png"
	"os"
	"path/filepath"
	"time"

	eb "github.com/hajimehoshi/ebiten/v2"

	"revealwave/misc"
)

// TakeScreenshot writes img to a timestamped png in ScreenshotsPath and
// returns the file name.
func TakeScreenshot(img *eb.Image) (string, error) {
	timeStr := time.Now().Format("0102150405")

	filename := fmt.Sprintf("reveal-%s.png", timeStr)

	for nameCounter := 2; ; nameCounter++ {
		exists, err := misc.CheckFileExists(filepath.Join(ScreenshotsPath, filename))
		if err != nil {
			return "", err
		}
		if !exists {
			break
		}
		filename = fmt.Sprintf("reveal-%s-(%d).png", timeStr, nameCounter)
	}

	buffer := &bytes.Buffer{}
	if err := png.Encode(buffer, ImageImageFromEbImage(img)); err != nil {
		return "", err
	}

	fullPath := filepath.Join(ScreenshotsPath, filename)
	if err := os.WriteFile(fullPath, buffer.Bytes(), 0644); err != nil {
		return "", err
	}

	return fullPath, nil
}
