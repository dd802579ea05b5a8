package app

import (
	"image"
	"testing"

	"fyne.io/fyne/v2"
)

func TestTapToImageDirectMapping(t *testing.T) {
	// Widget and image the same size, no letterboxing
	x, y, ok := tapToImage(fyne.NewPos(100, 50), fyne.NewSize(400, 300), image.Pt(400, 300))
	if !ok || x != 100 || y != 50 {
		t.Errorf("got (%d,%d,%v), want (100,50,true)", x, y, ok)
	}
}

func TestTapToImageScaledDown(t *testing.T) {
	// 800x600 image drawn into a 400x300 widget: widget coords halve
	x, y, ok := tapToImage(fyne.NewPos(200, 150), fyne.NewSize(400, 300), image.Pt(800, 600))
	if !ok || x != 400 || y != 300 {
		t.Errorf("got (%d,%d,%v), want (400,300,true)", x, y, ok)
	}
}

func TestTapToImageLetterboxOffset(t *testing.T) {
	// 400x400 image in an 800x400 widget: 200px bands left and right
	x, y, ok := tapToImage(fyne.NewPos(400, 200), fyne.NewSize(800, 400), image.Pt(400, 400))
	if !ok || x != 200 || y != 200 {
		t.Errorf("got (%d,%d,%v), want (200,200,true)", x, y, ok)
	}
}

func TestTapToImageRejectsLetterboxBands(t *testing.T) {
	// Tap inside the left band must not register
	if _, _, ok := tapToImage(fyne.NewPos(100, 200), fyne.NewSize(800, 400), image.Pt(400, 400)); ok {
		t.Error("tap on the letterbox band should be rejected")
	}
}

func TestTapToImageRejectsDegenerateSizes(t *testing.T) {
	if _, _, ok := tapToImage(fyne.NewPos(10, 10), fyne.NewSize(0, 0), image.Pt(400, 400)); ok {
		t.Error("zero widget size should be rejected")
	}
	if _, _, ok := tapToImage(fyne.NewPos(10, 10), fyne.NewSize(400, 400), image.Pt(0, 0)); ok {
		t.Error("zero image size should be rejected")
	}
}
