package annotate

import (
	"image"
	"image/color"
	"math"
	"strconv"

	"github.com/ayusman/handview/internal/detector"
	"gocv.io/x/gocv"
)

// Overlay styling, matching the MediaPipe drawing defaults.
var (
	LandmarkColor   = color.RGBA{R: 255, G: 0, B: 0, A: 0}
	ConnectionColor = color.RGBA{R: 224, G: 224, B: 224, A: 0}
	PositionColor   = color.RGBA{R: 255, G: 0, B: 255, A: 0}
	FPSColor        = color.RGBA{R: 255, G: 0, B: 255, A: 0}
)

const (
	LandmarkRadius      = 2
	LandmarkThickness   = 2
	ConnectionThickness = 2
	PositionRadius      = 5
	FPSScale            = 2.0
	FPSThickness        = 3
)

// FPSOrigin is the bottom-left corner of the FPS readout.
var FPSOrigin = image.Pt(10, 70)

// toPixel converts a normalized point to frame pixels. Points outside the
// frame are rejected.
func toPixel(p detector.Point3D, width, height int) (image.Point, bool) {
	if p.X < 0 || p.X > 1 || p.Y < 0 || p.Y > 1 {
		return image.Point{}, false
	}
	x := int(math.Min(math.Floor(p.X*float64(width)), float64(width-1)))
	y := int(math.Min(math.Floor(p.Y*float64(height)), float64(height-1)))
	return image.Pt(x, y), true
}

// DrawHand draws the skeleton connections and landmark dots of h onto frame.
func DrawHand(frame *gocv.Mat, h *detector.HandLandmarks) {
	width, height := frame.Cols(), frame.Rows()

	var pixels [detector.NumLandmarks]image.Point
	var visible [detector.NumLandmarks]bool
	for i, p := range h.Points {
		pixels[i], visible[i] = toPixel(p, width, height)
	}

	for _, c := range detector.Connections {
		if visible[c.From] && visible[c.To] {
			gocv.Line(frame, pixels[c.From], pixels[c.To], ConnectionColor, ConnectionThickness)
		}
	}

	for i := range pixels {
		if visible[i] {
			gocv.Circle(frame, pixels[i], LandmarkRadius, LandmarkColor, LandmarkThickness)
		}
	}
}

// DrawPositions draws a filled dot at every position.
func DrawPositions(frame *gocv.Mat, positions []Position) {
	for _, p := range positions {
		gocv.Circle(frame, image.Pt(p.X, p.Y), PositionRadius, PositionColor, -1)
	}
}

// Mirror flips the frame horizontally in place.
func Mirror(frame *gocv.Mat) {
	gocv.Flip(*frame, frame, 1)
}

// DrawFPS stamps the integer part of fps in the top-left corner.
func DrawFPS(frame *gocv.Mat, fps float64) {
	gocv.PutText(frame, strconv.Itoa(int(fps)), FPSOrigin, gocv.FontItalic, FPSScale, FPSColor, FPSThickness)
}
