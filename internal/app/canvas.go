package app

import (
	"image"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"
)

// AnnotationCanvas shows the reference image and reports clicks in
// display-image pixel coordinates.
type AnnotationCanvas struct {
	widget.BaseWidget
	img     *canvas.Image
	imgSize image.Point
	onClick func(x, y int)
}

// NewAnnotationCanvas creates the canvas for a display image
func NewAnnotationCanvas(display *image.RGBA) *AnnotationCanvas {
	c := &AnnotationCanvas{
		img:     canvas.NewImageFromImage(display),
		imgSize: display.Bounds().Size(),
	}
	c.img.FillMode = canvas.ImageFillContain
	c.img.ScaleMode = canvas.ImageScaleSmooth
	c.ExtendBaseWidget(c)
	return c
}

// SetOnClick sets the callback for clicks that land on the image
func (c *AnnotationCanvas) SetOnClick(callback func(x, y int)) {
	c.onClick = callback
}

// SetImage swaps the displayed image, for redraws and reloads
func (c *AnnotationCanvas) SetImage(display *image.RGBA) {
	c.img.Image = display
	c.imgSize = display.Bounds().Size()
	c.img.Refresh()
}

// Tapped handles tap events for point capture
func (c *AnnotationCanvas) Tapped(event *fyne.PointEvent) {
	x, y, ok := tapToImage(event.Position, c.Size(), c.imgSize)
	if !ok {
		return
	}
	if c.onClick != nil {
		c.onClick(x, y)
	}
}

// CreateRenderer creates the renderer for the widget
func (c *AnnotationCanvas) CreateRenderer() fyne.WidgetRenderer {
	return &annotationCanvasRenderer{canvas: c}
}

// tapToImage maps a tap position inside the widget to display-image pixel
// coordinates, accounting for the letterboxing of the contain fill mode.
// Taps on the letterbox bands report ok=false.
func tapToImage(pos fyne.Position, widgetSize fyne.Size, imgSize image.Point) (int, int, bool) {
	if imgSize.X <= 0 || imgSize.Y <= 0 || widgetSize.Width <= 0 || widgetSize.Height <= 0 {
		return 0, 0, false
	}

	scaleX := float64(widgetSize.Width) / float64(imgSize.X)
	scaleY := float64(widgetSize.Height) / float64(imgSize.Y)
	scale := scaleX
	if scaleY < scale {
		scale = scaleY
	}

	drawnW := float64(imgSize.X) * scale
	drawnH := float64(imgSize.Y) * scale
	offsetX := (float64(widgetSize.Width) - drawnW) / 2
	offsetY := (float64(widgetSize.Height) - drawnH) / 2

	x := (float64(pos.X) - offsetX) / scale
	y := (float64(pos.Y) - offsetY) / scale

	px := int(x)
	py := int(y)
	if px < 0 || px >= imgSize.X || py < 0 || py >= imgSize.Y {
		return 0, 0, false
	}
	return px, py, true
}

// annotationCanvasRenderer implements fyne.WidgetRenderer
type annotationCanvasRenderer struct {
	canvas *AnnotationCanvas
}

func (r *annotationCanvasRenderer) Layout(size fyne.Size) {
	r.canvas.img.Resize(size)
}

func (r *annotationCanvasRenderer) MinSize() fyne.Size {
	return fyne.NewSize(400, 400)
}

func (r *annotationCanvasRenderer) Refresh() {
	r.canvas.img.Refresh()
}

func (r *annotationCanvasRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.canvas.img}
}

func (r *annotationCanvasRenderer) Destroy() {}
