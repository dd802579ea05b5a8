package app

import (
	"errors"
	"fmt"
	"image"
	"image/draw"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/nfnt/resize"
)

// ErrUnsupportedFormat reports an image extension the tool cannot decode.
var ErrUnsupportedFormat = errors.New("unsupported image format")

// loadImage decodes a reference image from either JPEG or PNG
func loadImage(filePath string) (*image.RGBA, error) {
	ext := strings.ToLower(filepath.Ext(filePath))

	var decode func(f *os.File) (image.Image, error)
	switch ext {
	case ".jpg", ".jpeg":
		decode = func(f *os.File) (image.Image, error) { return jpeg.Decode(f) }
	case ".png":
		decode = func(f *os.File) (image.Image, error) { return png.Decode(f) }
	default:
		return nil, fmt.Errorf("%w: %s (expected .jpg, .jpeg or .png)", ErrUnsupportedFormat, ext)
	}

	f, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	defer f.Close()

	img, err := decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", filePath, err)
	}

	return toRGBA(img), nil
}

func toRGBA(img image.Image) *image.RGBA {
	if rgba, ok := img.(*image.RGBA); ok {
		return rgba
	}
	bounds := img.Bounds()
	rgba := image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Draw(rgba, rgba.Bounds(), img, bounds.Min, draw.Src)
	return rgba
}

// displayCopy downscales the original so its largest dimension fits
// maxSize, returning the copy and the applied scale factor. Images that
// already fit come back at scale 1.0.
func displayCopy(original *image.RGBA, maxSize int) (*image.RGBA, float64) {
	w := original.Bounds().Dx()
	h := original.Bounds().Dy()

	longest := w
	if h > longest {
		longest = h
	}
	if longest <= maxSize {
		return original, 1.0
	}

	scale := float64(maxSize) / float64(longest)
	scaled := resize.Resize(
		uint(float64(w)*scale+0.5),
		uint(float64(h)*scale+0.5),
		original,
		resize.Lanczos3,
	)
	return toRGBA(scaled), scale
}

// loadImageState builds the full image state for a session
func loadImageState(filePath string, maxSize int) (ImageState, error) {
	original, err := loadImage(filePath)
	if err != nil {
		return ImageState{}, err
	}

	if maxSize <= 0 {
		maxSize = DefaultMaxSize
	}
	display, scale := displayCopy(original, maxSize)

	return ImageState{
		sourcePath: filePath,
		original:   original,
		display:    display,
		scale:      scale,
	}, nil
}
