package display

import "gocv.io/x/gocv"

// MockWindow records shown frames and replays scripted key presses.
type MockWindow struct {
	keys   []int
	shown  [][]byte
	polls  int
	closed bool
}

// NewMockWindow creates a MockWindow that returns keys in order on each
// PollKey call, then -1 once they are exhausted.
func NewMockWindow(keys ...int) *MockWindow {
	return &MockWindow{keys: keys}
}

// Show stores a copy of the frame's pixels.
func (w *MockWindow) Show(frame *gocv.Mat) {
	w.shown = append(w.shown, frame.ToBytes())
}

// PollKey returns the next scripted key.
func (w *MockWindow) PollKey(delayMs int) int {
	w.polls++
	if len(w.keys) == 0 {
		return -1
	}
	k := w.keys[0]
	w.keys = w.keys[1:]
	return k
}

func (w *MockWindow) Close() error {
	w.closed = true
	return nil
}

// Shown returns the pixels of every frame shown so far.
func (w *MockWindow) Shown() [][]byte {
	return w.shown
}

// Polls returns the number of PollKey calls.
func (w *MockWindow) Polls() int {
	return w.polls
}

// Closed reports whether Close was called.
func (w *MockWindow) Closed() bool {
	return w.closed
}
