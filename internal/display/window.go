// Package display shows annotated frames in an OpenCV window.
package display

import "gocv.io/x/gocv"

// KeyEsc is the key code WaitKey reports for the Escape key.
const KeyEsc = 27

// Window is an on-screen surface that shows frames and reports key presses.
type Window interface {
	// Show renders the frame.
	Show(frame *gocv.Mat)

	// PollKey waits up to delayMs milliseconds for a key press and returns
	// its code, or -1 if no key was pressed.
	PollKey(delayMs int) int

	Close() error
}

type gocvWindow struct {
	window *gocv.Window
}

// NewWindow opens an OpenCV window with the given title.
func NewWindow(title string) Window {
	return &gocvWindow{window: gocv.NewWindow(title)}
}

func (w *gocvWindow) Show(frame *gocv.Mat) {
	w.window.IMShow(*frame)
}

func (w *gocvWindow) PollKey(delayMs int) int {
	return w.window.WaitKey(delayMs)
}

func (w *gocvWindow) Close() error {
	return w.window.Close()
}

// IsQuitKey reports whether key is Esc or matches quit, ignoring ASCII case.
func IsQuitKey(key int, quit rune) bool {
	if key < 0 {
		return false
	}
	key &= 0xFF
	if key == KeyEsc {
		return true
	}
	if quit == 0 {
		return false
	}
	return toLower(rune(key)) == toLower(quit)
}

func toLower(r rune) rune {
	if r >= 'A' && r <= 'Z' {
		return r + ('a' - 'A')
	}
	return r
}
