package app

import (
	"image"

	"github.com/posemark/posemark/internal/measurement"
	"github.com/posemark/posemark/pkg/watcher"
)

// ImageState holds the loaded reference image and its display copy
type ImageState struct {
	sourcePath string
	original   *image.RGBA // full resolution, annotation coordinate space
	display    *image.RGBA // downscaled copy shown in the window
	scale      float64     // display = original * scale
}

// CaptureState holds the click state machine and the finished measurements
type CaptureState struct {
	selection *measurement.Selection
	store     *measurement.Store
}

// OutputState holds where the session's artifacts go
type OutputState struct {
	outDir     string // empty: next to the source image
	configPath string // pose configuration artifact, empty: skip the config step
}

// FileWatchState holds file watching and reload state
type FileWatchState struct {
	fileWatcher *watcher.FileWatcher
}

// Options configures an annotation session
type Options struct {
	ImagePath  string
	ConfigPath string // pose configuration artifact to offer insertion into
	OutDir     string // override for output artifacts
	MaxSize    int    // maximum display dimension in pixels
}

// DefaultMaxSize is the largest display dimension before the image gets
// downscaled for the window.
const DefaultMaxSize = 1200
