package measurement

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/posemark/posemark/pkg/geometry"
)

// Marker colors are fixed per click order so the order stays visually
// recoverable: point1 green, vertex blue, point3 red.
var (
	markerColors = [3]color.RGBA{
		{R: 0, G: 200, B: 0, A: 255},
		{R: 40, G: 90, B: 255, A: 255},
		{R: 220, G: 40, B: 40, A: 255},
	}
	segmentColor = color.RGBA{R: 0, G: 215, B: 215, A: 255}
	arcColor     = color.RGBA{R: 0, G: 215, B: 215, A: 255}
	labelColor   = color.RGBA{R: 255, G: 230, B: 60, A: 255}
	labelBG      = color.RGBA{R: 20, G: 20, B: 20, A: 220}
)

const (
	markerRadius     = 6
	arcRadius        = 50.0
	labelStep        = 18 // vertical offset between successive labels
	labelNudgeX      = 15
	labelNudgeY      = -15
	arcSampleCount   = 48
	minimumArcRadius = 12.0
)

// Overlay redraws the full annotation overlay onto dst: every finished
// measurement plus the in-progress selection. dst is expected to already
// contain the photo; the overlay is burned in on top.
//
// Measurements are stored in original-image coordinates; scale maps them
// to dst's resolution (the session scale for the display copy, 1.0 when
// rendering the full-resolution artifact on save).
func Overlay(dst *image.RGBA, measurements []Measurement, pending []geometry.Point, scale float64) {
	for i, m := range measurements {
		drawMeasurement(dst, m, i, scale)
	}
	drawPending(dst, pending, scale)
}

func drawMeasurement(dst *image.RGBA, m Measurement, index int, scale float64) {
	p1 := m.Point1().Scale(scale)
	vertex := m.Vertex().Scale(scale)
	p3 := m.Point3().Scale(scale)

	drawSegment(dst, vertex, p1, segmentColor)
	drawSegment(dst, vertex, p3, segmentColor)
	drawArc(dst, vertex, p1, p3, scale)

	for i, p := range [3]geometry.Point{p1, vertex, p3} {
		drawDisc(dst, p, markerRadius, markerColors[i])
	}

	text := fmt.Sprintf("%d: %.1f deg  %s", index+1, m.TargetAngle(), m.Name)
	drawLabel(dst, vertex.X+labelNudgeX, vertex.Y+labelNudgeY-index*labelStep, text)
}

// drawPending renders the partially clicked selection: ordered markers and
// the first limb segment once the vertex has been clicked
func drawPending(dst *image.RGBA, pending []geometry.Point, scale float64) {
	if len(pending) >= 2 {
		drawSegment(dst, pending[1].Scale(scale), pending[0].Scale(scale), segmentColor)
	}
	for i, p := range pending {
		if i > 2 {
			break
		}
		drawDisc(dst, p.Scale(scale), markerRadius, markerColors[i])
	}
}

// drawSegment draws a 2px limb segment between two points
func drawSegment(dst *image.RGBA, from, to geometry.Point, col color.RGBA) {
	drawLine(dst, from.X, from.Y, to.X, to.Y, col)
	drawLine(dst, from.X+1, from.Y, to.X+1, to.Y, col)
	drawLine(dst, from.X, from.Y+1, to.X, to.Y+1, col)
}

// drawLine draws a line using Bresenham's algorithm
func drawLine(img *image.RGBA, x1, y1, x2, y2 int, col color.RGBA) {
	bounds := img.Bounds()

	dx := abs(x2 - x1)
	dy := abs(y2 - y1)

	var sx, sy int
	if x1 < x2 {
		sx = 1
	} else {
		sx = -1
	}
	if y1 < y2 {
		sy = 1
	} else {
		sy = -1
	}

	err := dx - dy

	for {
		if x1 >= bounds.Min.X && x1 < bounds.Max.X && y1 >= bounds.Min.Y && y1 < bounds.Max.Y {
			img.SetRGBA(x1, y1, col)
		}

		if x1 == x2 && y1 == y2 {
			break
		}

		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x1 += sx
		}
		if e2 < dx {
			err += dx
			y1 += sy
		}
	}
}

// drawDisc draws a filled circle marker centered on p
func drawDisc(img *image.RGBA, p geometry.Point, radius int, col color.RGBA) {
	bounds := img.Bounds()
	for y := p.Y - radius; y <= p.Y+radius; y++ {
		for x := p.X - radius; x <= p.X+radius; x++ {
			if x < bounds.Min.X || x >= bounds.Max.X || y < bounds.Min.Y || y >= bounds.Max.Y {
				continue
			}
			dx := x - p.X
			dy := y - p.Y
			if dx*dx+dy*dy <= radius*radius {
				img.SetRGBA(x, y, col)
			}
		}
	}
}

// drawArc draws the smaller sweep between the two limb directions as a
// sampled polyline around the vertex
func drawArc(img *image.RGBA, vertex, p1, p3 geometry.Point, scale float64) {
	v1 := p1.Sub(vertex)
	v3 := p3.Sub(vertex)
	if v1.Length() == 0 || v3.Length() == 0 {
		return
	}

	a1 := math.Atan2(v1.Y, v1.X)
	a3 := math.Atan2(v3.Y, v3.X)

	// Take the smaller of the two sweeps between the directions
	sweep := a3 - a1
	for sweep > math.Pi {
		sweep -= 2 * math.Pi
	}
	for sweep < -math.Pi {
		sweep += 2 * math.Pi
	}

	radius := arcRadius * scale
	if radius < minimumArcRadius {
		radius = minimumArcRadius
	}
	// Stay inside the shorter limb
	if limb := math.Min(v1.Length(), v3.Length()); limb > 0 && radius > limb*0.8 {
		radius = limb * 0.8
	}

	prevX := vertex.X + int(math.Round(radius*math.Cos(a1)))
	prevY := vertex.Y + int(math.Round(radius*math.Sin(a1)))
	for i := 1; i <= arcSampleCount; i++ {
		a := a1 + sweep*float64(i)/arcSampleCount
		x := vertex.X + int(math.Round(radius*math.Cos(a)))
		y := vertex.Y + int(math.Round(radius*math.Sin(a)))
		drawLine(img, prevX, prevY, x, y, arcColor)
		prevX, prevY = x, y
	}
}

// drawLabel draws text with a dark background box so it stays readable on
// top of the photo
func drawLabel(img *image.RGBA, x, y int, text string) {
	face := basicfont.Face7x13
	width := font.MeasureString(face, text).Ceil()
	height := face.Metrics().Height.Ceil()
	ascent := face.Metrics().Ascent.Ceil()

	const padding = 3
	bounds := img.Bounds()

	// Keep the box inside the image where possible
	if x+width+2*padding > bounds.Max.X {
		x = bounds.Max.X - width - 2*padding
	}
	if x < bounds.Min.X {
		x = bounds.Min.X
	}
	if y-ascent-padding < bounds.Min.Y {
		y = bounds.Min.Y + ascent + padding
	}
	if y+height-ascent+padding > bounds.Max.Y {
		y = bounds.Max.Y - (height - ascent) - padding
	}

	for by := y - ascent - padding; by < y+height-ascent+padding; by++ {
		for bx := x - padding; bx < x+width+padding; bx++ {
			if bx >= bounds.Min.X && bx < bounds.Max.X && by >= bounds.Min.Y && by < bounds.Max.Y {
				img.SetRGBA(bx, by, labelBG)
			}
		}
	}

	drawer := font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(labelColor),
		Face: face,
		Dot:  fixed.P(x, y),
	}
	drawer.DrawString(text)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
