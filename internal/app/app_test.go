package app

import (
	"image"
	"image/color"
	"math"
	"strings"
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/widget"

	"github.com/posemark/posemark/internal/measurement"
	"github.com/posemark/posemark/pkg/geometry"
)

func newTestApp(t *testing.T) *App {
	t.Helper()
	test.NewApp()

	display := image.NewRGBA(image.Rect(0, 0, 200, 200))
	a := &App{
		Image: ImageState{
			sourcePath: "pose.png",
			original:   display,
			display:    display,
			scale:      1.0,
		},
		Capture: CaptureState{
			selection: measurement.NewSelection(),
			store:     measurement.NewStore(),
		},
		quit: func() {},
	}
	a.canvas = NewAnnotationCanvas(display)
	a.statusLabel = widget.NewLabel("")
	a.countLabel = widget.NewLabel("")
	return a
}

func completeSelection(t *testing.T, a *App) {
	t.Helper()
	for _, p := range []geometry.Point{
		geometry.NewPoint(40, 40),
		geometry.NewPoint(40, 120),
		geometry.NewPoint(120, 120),
	} {
		if _, err := a.Capture.selection.Add(p); err != nil {
			t.Fatalf("Add(%v): %v", p, err)
		}
	}
	a.Capture.selection.BeginMetadata()
	a.redraw()
}

func TestMetadataDiscardClearsOverlay(t *testing.T) {
	a := newTestApp(t)
	completeSelection(t, a)

	// The pending markers are on screen while the dialog is open
	before := a.canvas.img.Image.(*image.RGBA)
	if before.RGBAAt(40, 40) == (color.RGBA{}) {
		t.Fatal("expected pending markers before the dialog resolves")
	}

	a.finishMetadata(false, 90, "", "", "")

	if a.Capture.selection.Phase() != measurement.PhaseEmpty {
		t.Errorf("selection not cleared, phase %v", a.Capture.selection.Phase())
	}
	if a.Capture.store.Len() != 0 {
		t.Errorf("discarded measurement was stored")
	}

	// The final redraw must not show the cleared selection
	after := a.canvas.img.Image.(*image.RGBA)
	for _, p := range []image.Point{{40, 40}, {40, 120}, {120, 120}, {40, 80}} {
		if got := after.RGBAAt(p.X, p.Y); got != (color.RGBA{}) {
			t.Errorf("stale overlay pixel at %v: %v", p, got)
		}
	}
}

func TestMetadataConfirmRecordsAndClears(t *testing.T) {
	a := newTestApp(t)
	completeSelection(t, a)

	a.finishMetadata(true, 90, " Knee ", "10", "2")

	if a.Capture.selection.Phase() != measurement.PhaseEmpty {
		t.Errorf("selection not cleared, phase %v", a.Capture.selection.Phase())
	}
	if a.Capture.store.Len() != 1 {
		t.Fatalf("expected 1 stored measurement, got %d", a.Capture.store.Len())
	}

	m := a.Capture.store.Measurements()[0]
	if m.Name != "Knee" {
		t.Errorf("unexpected name %q", m.Name)
	}
	if math.Abs(m.Tolerance-10) > 1e-9 || math.Abs(m.Weight-2) > 1e-9 {
		t.Errorf("tolerance/weight not applied: %f %f", m.Tolerance, m.Weight)
	}
	if m.Vertex() != geometry.NewPoint(40, 120) {
		t.Errorf("unexpected vertex %v", m.Vertex())
	}

	// The finished measurement is drawn, the pending overlay is not
	composite := a.canvas.img.Image.(*image.RGBA)
	if composite.RGBAAt(40, 120) == (color.RGBA{}) {
		t.Error("recorded measurement missing from the overlay")
	}
}

func TestMetadataEmptyFieldsUseDefaults(t *testing.T) {
	a := newTestApp(t)
	completeSelection(t, a)

	a.finishMetadata(true, 90, "", "", "")

	m := a.Capture.store.Measurements()[0]
	if m.Name != "Angle_1" {
		t.Errorf("expected default name Angle_1, got %q", m.Name)
	}
	if m.Tolerance != measurement.DefaultTolerance || m.Weight != measurement.DefaultWeight {
		t.Errorf("defaults not applied: %f %f", m.Tolerance, m.Weight)
	}
}

func TestReloadWarnsAboutStaleCoordinates(t *testing.T) {
	path := writeTestImage(t, "pose.png", 64, 64)
	state, err := loadImageState(path, 0)
	if err != nil {
		t.Fatal(err)
	}

	a := newTestApp(t)
	a.Image = state
	a.canvas = NewAnnotationCanvas(state.display)

	a.reloadImage()
	if strings.Contains(a.statusLabel.Text, "stale") {
		t.Error("no warning expected without measurements")
	}

	a.Capture.store.Append(measurement.Measurement{
		Name: "Knee",
		Points: [3]geometry.Point{
			geometry.NewPoint(10, 10),
			geometry.NewPoint(10, 20),
			geometry.NewPoint(20, 20),
		},
		AngleDegrees: 90,
		Tolerance:    measurement.DefaultTolerance,
		Weight:       measurement.DefaultWeight,
	})

	a.reloadImage()
	if !strings.Contains(a.statusLabel.Text, "stale") {
		t.Errorf("expected a stale-coordinates warning, got %q", a.statusLabel.Text)
	}
}

func TestKeyHandlers(t *testing.T) {
	a := newTestApp(t)

	a.Capture.selection.Add(geometry.NewPoint(10, 10))
	a.handleRune('r')
	if a.Capture.selection.Phase() != measurement.PhaseEmpty {
		t.Error("r key should reset the in-progress selection")
	}

	quits := 0
	a.quit = func() { quits++ }

	a.handleRune('q')
	a.handleKey(&fyne.KeyEvent{Name: fyne.KeyEscape})
	if quits != 2 {
		t.Errorf("expected q and Escape to quit, got %d calls", quits)
	}

	a.handleKey(&fyne.KeyEvent{Name: fyne.KeyEnter})
	if quits != 2 {
		t.Error("unrelated keys must not quit")
	}
}
