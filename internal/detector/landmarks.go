// Package detector provides hand landmark detection types and the model adapter.
package detector

// Hand landmark indices following MediaPipe convention.
// See: https://developers.google.com/mediapipe/solutions/vision/hand_landmarker
const (
	Wrist        = 0
	ThumbCMC     = 1
	ThumbMCP     = 2
	ThumbIP      = 3
	ThumbTip     = 4
	IndexMCP     = 5
	IndexPIP     = 6
	IndexDIP     = 7
	IndexTip     = 8
	MiddleMCP    = 9
	MiddlePIP    = 10
	MiddleDIP    = 11
	MiddleTip    = 12
	RingMCP      = 13
	RingPIP      = 14
	RingDIP      = 15
	RingTip      = 16
	PinkyMCP     = 17
	PinkyPIP     = 18
	PinkyDIP     = 19
	PinkyTip     = 20
	NumLandmarks = 21
)

// Point3D is a landmark position. X and Y are normalized to [0,1] relative to
// frame width and height; Z is relative depth with the wrist as origin.
type Point3D struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// HandLandmarks represents the 21 hand landmarks detected by MediaPipe.
type HandLandmarks struct {
	Points     [NumLandmarks]Point3D `json:"points"`
	Handedness string                `json:"handedness"` // "Left" or "Right"
	Score      float64               `json:"score"`
}

// Connection is a pair of anatomically adjacent landmark indices.
type Connection struct {
	From, To int
}

// Connections is the hand skeleton topology used for drawing.
var Connections = []Connection{
	// Palm
	{Wrist, ThumbCMC},
	{Wrist, IndexMCP},
	{IndexMCP, MiddleMCP},
	{MiddleMCP, RingMCP},
	{RingMCP, PinkyMCP},
	{Wrist, PinkyMCP},

	// Thumb
	{ThumbCMC, ThumbMCP},
	{ThumbMCP, ThumbIP},
	{ThumbIP, ThumbTip},

	// Index finger
	{IndexMCP, IndexPIP},
	{IndexPIP, IndexDIP},
	{IndexDIP, IndexTip},

	// Middle finger
	{MiddleMCP, MiddlePIP},
	{MiddlePIP, MiddleDIP},
	{MiddleDIP, MiddleTip},

	// Ring finger
	{RingMCP, RingPIP},
	{RingPIP, RingDIP},
	{RingDIP, RingTip},

	// Pinky
	{PinkyMCP, PinkyPIP},
	{PinkyPIP, PinkyDIP},
	{PinkyDIP, PinkyTip},
}

// Landmark returns the point at index i.
// It reports false if i is not a valid landmark index.
func (h *HandLandmarks) Landmark(i int) (Point3D, bool) {
	if h == nil || i < 0 || i >= NumLandmarks {
		return Point3D{}, false
	}
	return h.Points[i], true
}
