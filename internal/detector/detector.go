package detector

import (
	"errors"
	"fmt"

	"gocv.io/x/gocv"
)

// ErrHandOutOfRange is returned when a hand index beyond the detected hands is requested.
var ErrHandOutOfRange = errors.New("hand index out of range")

// Detector defines the interface for hand detection implementations.
type Detector interface {
	// Detect analyzes a BGR video frame and returns the detected hands.
	// A frame without hands yields an empty Result and a nil error.
	Detect(frame *gocv.Mat) (Result, error)

	// Close releases any resources held by the detector.
	Close() error
}

// Result is the set of hands found in one processed frame.
// It is valid only for the frame that produced it.
type Result struct {
	Hands []HandLandmarks `json:"hands"`
}

// Len returns the number of detected hands.
func (r Result) Len() int {
	return len(r.Hands)
}

// Empty reports whether no hand was detected.
func (r Result) Empty() bool {
	return len(r.Hands) == 0
}

// Hand returns the hand at index i.
func (r Result) Hand(i int) (HandLandmarks, error) {
	if i < 0 || i >= len(r.Hands) {
		return HandLandmarks{}, fmt.Errorf("%w: requested %d, detected %d", ErrHandOutOfRange, i, len(r.Hands))
	}
	return r.Hands[i], nil
}

// Config holds configuration options for hand detection.
type Config struct {
	// StaticImageMode treats every frame as unrelated. When false the model
	// assumes a video stream and tracks landmarks between frames.
	StaticImageMode bool

	// MaxHands is the maximum number of hands to detect (default: 2).
	MaxHands int

	// ModelComplexity selects the landmark model: 0 is faster, 1 is more accurate.
	ModelComplexity int

	// MinConfidence is the minimum detection confidence threshold (0.0-1.0).
	MinConfidence float64

	// MinTrackingConf is the minimum tracking confidence threshold (0.0-1.0).
	MinTrackingConf float64
}

// DefaultConfig returns a Config with sensible default values.
func DefaultConfig() Config {
	return Config{
		StaticImageMode: false,
		MaxHands:        2,
		ModelComplexity: 1,
		MinConfidence:   0.5,
		MinTrackingConf: 0.5,
	}
}

// Validate checks that every option is within the range the model accepts.
func (c Config) Validate() error {
	if c.MaxHands < 1 {
		return fmt.Errorf("max hands must be at least 1, got %d", c.MaxHands)
	}
	if c.ModelComplexity != 0 && c.ModelComplexity != 1 {
		return fmt.Errorf("model complexity must be 0 or 1, got %d", c.ModelComplexity)
	}
	if c.MinConfidence < 0 || c.MinConfidence > 1 {
		return fmt.Errorf("min detection confidence must be within [0,1], got %g", c.MinConfidence)
	}
	if c.MinTrackingConf < 0 || c.MinTrackingConf > 1 {
		return fmt.Errorf("min tracking confidence must be within [0,1], got %g", c.MinTrackingConf)
	}
	return nil
}
