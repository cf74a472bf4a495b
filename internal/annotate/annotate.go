// Package annotate runs hand detection on camera frames and draws the
// results back onto them.
package annotate

import (
	"fmt"

	"github.com/ayusman/handview/internal/detector"
	"gocv.io/x/gocv"
)

// Position is a landmark projected onto frame pixels.
type Position struct {
	ID int
	X  int
	Y  int
}

// String formats the position as an "[id, x, y]" triple.
func (p Position) String() string {
	return fmt.Sprintf("[%d, %d, %d]", p.ID, p.X, p.Y)
}

// Annotator wraps a Detector and overlays its results on frames.
// It keeps no state between calls; the Result returned by FindHands is
// passed explicitly to FindPosition.
type Annotator struct {
	detector detector.Detector
}

// New creates an Annotator backed by the given detector.
func New(d detector.Detector) *Annotator {
	return &Annotator{detector: d}
}

// FindHands detects hands in the frame. When draw is true every detected
// hand's skeleton is drawn onto the frame in place.
func (a *Annotator) FindHands(frame *gocv.Mat, draw bool) (detector.Result, error) {
	res, err := a.detector.Detect(frame)
	if err != nil {
		return detector.Result{}, fmt.Errorf("detect hands: %w", err)
	}

	if draw {
		for i := range res.Hands {
			DrawHand(frame, &res.Hands[i])
		}
	}

	return res, nil
}

// FindPosition returns the pixel position of every landmark of the hand at
// index hand, in landmark order. An empty result yields no positions and no
// error; an index beyond the detected hands yields detector.ErrHandOutOfRange.
// When draw is true a filled dot is drawn at each position.
func (a *Annotator) FindPosition(frame *gocv.Mat, res detector.Result, hand int, draw bool) ([]Position, error) {
	if res.Empty() {
		return nil, nil
	}

	h, err := res.Hand(hand)
	if err != nil {
		return nil, err
	}

	positions := Positions(&h, frame.Cols(), frame.Rows())
	if draw {
		DrawPositions(frame, positions)
	}

	return positions, nil
}

// Positions scales the normalized landmarks of h by the frame size,
// truncating to whole pixels.
func Positions(h *detector.HandLandmarks, width, height int) []Position {
	positions := make([]Position, 0, detector.NumLandmarks)
	for id, p := range h.Points {
		positions = append(positions, Position{
			ID: id,
			X:  int(p.X * float64(width)),
			Y:  int(p.Y * float64(height)),
		})
	}
	return positions
}

// Lookup returns the position with the given landmark id.
func Lookup(positions []Position, id int) (Position, bool) {
	if id < 0 || id >= len(positions) {
		return Position{}, false
	}
	if positions[id].ID == id {
		return positions[id], true
	}
	for _, p := range positions {
		if p.ID == id {
			return p, true
		}
	}
	return Position{}, false
}
