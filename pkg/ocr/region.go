package ocr

import (
	"bytes"
	"fmt"
	"image"
	"image/png"

	"golang.org/x/image/draw"

	"github.com/pyhub-apps/pdfregion/pkg/export"
)

// Crop copies the part of img covered by c. scale is the number of image
// pixels per exported pixel, for pages rasterised at a different resolution
// than they were displayed; values <= 0 are treated as 1. The region is
// clipped to the image, so the result may be empty.
func Crop(img image.Image, c export.Corners, scale float64) *image.RGBA {
	if scale <= 0 {
		scale = 1
	}
	src := image.Rect(
		int(float64(c.TopLeftX)*scale),
		int(float64(c.TopLeftY)*scale),
		int(float64(c.BottomRightX)*scale),
		int(float64(c.BottomRightY)*scale),
	).Add(img.Bounds().Min).Intersect(img.Bounds())

	dst := image.NewRGBA(image.Rect(0, 0, src.Dx(), src.Dy()))
	draw.Copy(dst, image.Point{}, img, src, draw.Src, nil)
	return dst
}

// Upscale resamples img by factor with Catmull-Rom, which helps Tesseract on
// small regions. A factor <= 1 returns img unchanged.
func Upscale(img image.Image, factor float64) image.Image {
	if factor <= 1 {
		return img
	}
	b := img.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, int(float64(b.Dx())*factor), int(float64(b.Dy())*factor)))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst
}

// EncodePNG encodes img for RecognizeImage
func EncodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("failed to encode region: %w", err)
	}
	return buf.Bytes(), nil
}

// RecognizeRegion crops an exported region out of a rendered page and runs OCR on it
func (c *Client) RecognizeRegion(page image.Image, corners export.Corners, scale float64) (string, error) {
	region := Crop(page, corners, scale)
	if region.Bounds().Empty() {
		return "", nil
	}

	data, err := EncodePNG(Upscale(region, 2))
	if err != nil {
		return "", err
	}
	return c.RecognizeImage(data)
}
