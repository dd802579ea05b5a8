package app

import (
	"fmt"
	"image"
	"image/draw"
	"math"
	"path/filepath"
	"time"

	"fyne.io/fyne/v2"
	fyneapp "fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/posemark/posemark/internal/measurement"
	"github.com/posemark/posemark/pkg/geometry"
	"github.com/posemark/posemark/pkg/watcher"
)

// App is an interactive annotation session
type App struct {
	window fyne.Window
	canvas *AnnotationCanvas

	Image     ImageState
	Capture   CaptureState
	Output    OutputState
	FileWatch FileWatchState
	maxSize   int

	statusLabel *widget.Label
	countLabel  *widget.Label
	quit        func()
}

// Run opens the annotation window and blocks until it closes
func Run(opts Options) error {
	imageState, err := loadImageState(opts.ImagePath, opts.MaxSize)
	if err != nil {
		return err
	}

	fa := fyneapp.New()
	w := fa.NewWindow("Posemark - " + filepath.Base(opts.ImagePath))

	a := &App{
		window:  w,
		maxSize: opts.MaxSize,
		Image:   imageState,
		Capture: CaptureState{
			selection: measurement.NewSelection(),
			store:     measurement.NewStore(),
		},
		Output: OutputState{
			outDir:     opts.OutDir,
			configPath: opts.ConfigPath,
		},
	}

	a.quit = w.Close
	a.canvas = NewAnnotationCanvas(imageState.display)
	a.canvas.SetOnClick(a.handleClick)

	a.setupUI()
	a.setupKeys()
	if err := a.setupFileWatcher(); err != nil {
		// Auto-reload is a convenience, the session works without it
		fmt.Printf("File watching disabled: %v\n", err)
	}

	a.redraw()

	w.Resize(fyne.NewSize(1200, 800))
	w.ShowAndRun()

	if a.FileWatch.fileWatcher != nil {
		a.FileWatch.fileWatcher.Close()
	}
	return nil
}

func (a *App) setupUI() {
	a.statusLabel = widget.NewLabel("Click three points: end, joint, end")
	a.statusLabel.Wrapping = fyne.TextWrapWord
	a.countLabel = widget.NewLabel("Measurements: 0")
	a.countLabel.TextStyle = fyne.TextStyle{Bold: true}

	instructions := widget.NewLabel(
		"Instructions:\n" +
			"• Click point 1, the joint, then point 2\n" +
			"• Name the angle when prompted\n" +
			"• R resets an unfinished selection\n" +
			"• S saves all measurements\n" +
			"• Q or Esc quits without saving",
	)
	instructions.Wrapping = fyne.TextWrapWord

	resetButton := widget.NewButton("Reset Selection", func() {
		a.resetSelection()
	})
	saveButton := widget.NewButton("Save", func() {
		a.save()
	})

	infoPanel := container.NewVBox(
		widget.NewLabel("Session:"),
		widget.NewSeparator(),
		a.countLabel,
		a.statusLabel,
		widget.NewSeparator(),
		instructions,
		widget.NewSeparator(),
		resetButton,
		saveButton,
	)

	infoScroll := container.NewVScroll(infoPanel)
	infoScroll.SetMinSize(fyne.NewSize(300, 0))

	content := container.NewBorder(
		nil,        // top
		nil,        // bottom
		nil,        // left
		infoScroll, // right
		a.canvas,   // center
	)

	a.window.SetContent(content)
}

func (a *App) setupKeys() {
	a.window.Canvas().SetOnTypedRune(a.handleRune)
	a.window.Canvas().SetOnTypedKey(a.handleKey)
}

func (a *App) handleRune(r rune) {
	switch r {
	case 'r', 'R':
		a.resetSelection()
	case 's', 'S':
		a.save()
	case 'q', 'Q':
		a.quit()
	}
}

func (a *App) handleKey(event *fyne.KeyEvent) {
	if event.Name == fyne.KeyEscape {
		a.quit()
	}
}

// setupFileWatcher reloads the reference image when it changes on disk
func (a *App) setupFileWatcher() error {
	fw, err := watcher.New(a.Image.sourcePath, 500*time.Millisecond, func(path string) {
		fyne.Do(func() {
			a.reloadImage()
		})
	})
	if err != nil {
		return err
	}
	fw.Start()
	a.FileWatch.fileWatcher = fw
	return nil
}

func (a *App) reloadImage() {
	state, err := loadImageState(a.Image.sourcePath, a.maxSize)
	if err != nil {
		a.setStatus(fmt.Sprintf("Reload failed: %v", err))
		return
	}

	a.Image = state
	if a.Capture.store.Len() > 0 {
		a.setStatus("Image reloaded, existing measurement coordinates may be stale")
	} else {
		a.setStatus("Image reloaded")
	}
	a.redraw()
}

// handleClick receives display coordinates and advances the click state
// machine in original-image coordinates.
func (a *App) handleClick(x, y int) {
	p := geometry.NewPoint(
		int(math.Round(float64(x)/a.Image.scale)),
		int(math.Round(float64(y)/a.Image.scale)),
	)

	completed, err := a.Capture.selection.Add(p)
	if err != nil {
		a.setStatus("Pick a point distinct from the previous one")
		return
	}

	switch {
	case completed:
		a.Capture.selection.BeginMetadata()
		a.redraw()
		a.showMetadataForm(a.Capture.selection.Angle())
	default:
		a.setStatus(clickPrompt(len(a.Capture.selection.Points())))
		a.redraw()
	}
}

func clickPrompt(points int) string {
	switch points {
	case 1:
		return "Point 1 set. Click the joint"
	case 2:
		return "Joint set. Click point 2"
	default:
		return "Click three points: end, joint, end"
	}
}

func (a *App) resetSelection() {
	if a.Capture.selection.Reset() {
		a.setStatus("Selection cleared")
		a.redraw()
	}
}

// save writes the measurement JSON and the annotated image, then offers
// the pose configuration step. Each artifact fails independently.
func (a *App) save() {
	if a.Capture.store.Len() == 0 {
		dialog.ShowInformation("Nothing to save", "No measurements recorded yet.", a.window)
		return
	}

	jsonPath, annotatedPath := outputPaths(a.Image.sourcePath, a.Output.outDir)

	saved := 0
	if err := saveMeasurements(a.Capture.store, a.Image.sourcePath, jsonPath); err != nil {
		dialog.ShowError(err, a.window)
	} else {
		saved++
	}
	if err := saveAnnotatedImage(a.Image.original, a.Capture.store, annotatedPath); err != nil {
		dialog.ShowError(err, a.window)
	} else {
		saved++
	}

	if saved == 2 {
		a.setStatus(fmt.Sprintf("Saved %s and %s", filepath.Base(jsonPath), filepath.Base(annotatedPath)))
	}

	if a.Output.configPath != "" {
		a.showConfigForm()
	}
}

// redraw composes the pristine display copy with the annotation overlay
func (a *App) redraw() {
	composite := image.NewRGBA(a.Image.display.Bounds())
	draw.Draw(composite, composite.Bounds(), a.Image.display, a.Image.display.Bounds().Min, draw.Src)

	measurement.Overlay(composite,
		a.Capture.store.Measurements(),
		a.Capture.selection.Points(),
		a.Image.scale,
	)
	a.canvas.SetImage(composite)
}

func (a *App) setStatus(text string) {
	a.statusLabel.SetText(text)
}

func (a *App) updateCounts() {
	a.countLabel.SetText(fmt.Sprintf("Measurements: %d", a.Capture.store.Len()))
}
