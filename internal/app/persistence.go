package app

import (
	"fmt"
	"image"
	"image/draw"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/posemark/posemark/internal/measurement"
)

// outputPaths derives the artifact paths for an image: the measurement
// JSON and the annotated copy, next to the source unless outDir overrides.
func outputPaths(imagePath, outDir string) (jsonPath, annotatedPath string) {
	dir := filepath.Dir(imagePath)
	if outDir != "" {
		dir = outDir
	}

	base := filepath.Base(imagePath)
	ext := filepath.Ext(base)
	stem := strings.TrimSuffix(base, ext)

	jsonPath = filepath.Join(dir, stem+"_angles.json")
	annotatedPath = filepath.Join(dir, stem+"_annotated"+ext)
	return jsonPath, annotatedPath
}

// imageStem returns the source file name without directory or extension
func imageStem(imagePath string) string {
	base := filepath.Base(imagePath)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// saveMeasurements writes the measurement JSON artifact
func saveMeasurements(store *measurement.Store, imagePath, jsonPath string) error {
	return measurement.WriteRecord(jsonPath, store.Record(imagePath))
}

// saveAnnotatedImage renders the overlay on a full-resolution copy of the
// original and encodes it next to the measurement file. The encoder
// follows the annotated path's extension.
func saveAnnotatedImage(original *image.RGBA, store *measurement.Store, annotatedPath string) error {
	annotated := image.NewRGBA(original.Bounds())
	draw.Draw(annotated, annotated.Bounds(), original, original.Bounds().Min, draw.Src)
	measurement.Overlay(annotated, store.Measurements(), nil, 1.0)

	f, err := os.Create(annotatedPath)
	if err != nil {
		return fmt.Errorf("failed to create annotated image: %w", err)
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(annotatedPath)) {
	case ".jpg", ".jpeg":
		err = jpeg.Encode(f, annotated, &jpeg.Options{Quality: 90})
	case ".png":
		err = png.Encode(f, annotated)
	default:
		err = fmt.Errorf("%w: %s", ErrUnsupportedFormat, filepath.Ext(annotatedPath))
	}
	if err != nil {
		return fmt.Errorf("failed to encode annotated image: %w", err)
	}
	return nil
}
