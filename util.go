package main

import (
	"image"

	eb "github.com/hajimehoshi/ebiten/v2"
)

var (
	ScreenWidth  float64 = 800
	ScreenHeight float64 = 600
)

func ScreenRect() FRectangle {
	return FRectWH(ScreenWidth, ScreenHeight)
}

func CursorFPt() FPoint {
	mx, my := eb.CursorPosition()
	return FPt(f64(mx), f64(my))
}

func TouchFPt(touchId eb.TouchID) FPoint {
	x, y := eb.TouchPosition(touchId)
	return FPt(f64(x), f64(y))
}

func ImageSize(img image.Image) (int, int) {
	return img.Bounds().Dx(), img.Bounds().Dy()
}

func ImageSizePt(img image.Image) image.Point {
	return img.Bounds().Size()
}

// ImageImageFromEbImage reads img back from the gpu.
func ImageImageFromEbImage(img *eb.Image) *image.RGBA {
	rgba := image.NewRGBA(RectWH(ImageSize(img)))
	img.ReadPixels(rgba.Pix)
	return rgba
}

// PremultiplyPixels converts straight alpha rgba bytes in src to the
// premultiplied form eb.Image.WritePixels takes. dst and src must be the
// same length.
func PremultiplyPixels(dst, src []byte) {
	for i := 0; i+3 < len(src); i += 4 {
		a := uint32(src[i+3])
		switch a {
		case 0xff:
			copy(dst[i:i+4], src[i:i+4])
		case 0:
			dst[i+0], dst[i+1], dst[i+2], dst[i+3] = 0, 0, 0, 0
		default:
			dst[i+0] = uint8((uint32(src[i+0])*a + 127) / 255)
			dst[i+1] = uint8((uint32(src[i+1])*a + 127) / 255)
			dst[i+2] = uint8((uint32(src[i+2])*a + 127) / 255)
			dst[i+3] = uint8(a)
		}
	}
}
