// Package app provides the viewer loop: capture, detect, annotate, display.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/ayusman/handview/internal/annotate"
	"github.com/ayusman/handview/internal/capture"
	"github.com/ayusman/handview/internal/config"
	"github.com/ayusman/handview/internal/detector"
	"github.com/ayusman/handview/internal/display"
	"github.com/ayusman/handview/internal/fps"
)

// PollDelayMs is how long each iteration waits for a key press.
const PollDelayMs = 1

// ErrCameraUnavailable is returned by Run when the camera cannot be opened.
var ErrCameraUnavailable = errors.New("camera unavailable")

// Config holds the collaborators and settings of a Viewer.
type Config struct {
	Viewer   config.Config
	Camera   capture.Camera
	Detector detector.Detector
	Window   display.Window

	// Output receives the printed landmark positions. Defaults to stdout.
	Output io.Writer

	// Clock is used for the FPS readout. Defaults to time.Now.
	Clock func() time.Time
}

// Viewer owns the camera, detector and window and drives one frame per Step.
type Viewer struct {
	config    config.Config
	camera    capture.Camera
	detector  detector.Detector
	annotator *annotate.Annotator
	window    display.Window
	counter   *fps.Counter
	out       io.Writer

	failures int
	frames   int
	closed   bool
}

// New creates a Viewer from the given configuration.
func New(c Config) *Viewer {
	out := c.Output
	if out == nil {
		out = os.Stdout
	}
	clock := c.Clock
	if clock == nil {
		clock = time.Now
	}

	return &Viewer{
		config:    c.Viewer,
		camera:    c.Camera,
		detector:  c.Detector,
		annotator: annotate.New(c.Detector),
		window:    c.Window,
		counter:   fps.NewCounterWithClock(clock),
		out:       out,
	}
}

// Run opens the camera and processes frames until the quit key is pressed,
// ctx is cancelled, or an unrecoverable error occurs. All resources are
// released before it returns.
func (v *Viewer) Run(ctx context.Context) error {
	if err := v.camera.Open(); err != nil {
		v.Close()
		return fmt.Errorf("%w: %v", ErrCameraUnavailable, err)
	}
	defer v.Close()

	log.Println("Viewer started")

	for {
		select {
		case <-ctx.Done():
			log.Printf("Viewer interrupted after %d frames", v.frames)
			return nil
		default:
		}

		quit, err := v.Step()
		if err != nil {
			return err
		}
		if quit {
			log.Printf("Quit key pressed after %d frames", v.frames)
			return nil
		}
	}
}

// Step runs one iteration of the loop and reports whether the user asked
// to quit. Failed reads and detections are skipped until MaxReadFailures
// happen in a row.
func (v *Viewer) Step() (bool, error) {
	rate, rateOK := v.counter.Tick()

	frame, err := v.camera.ReadFrame()
	if err != nil {
		if errors.Is(err, capture.ErrCameraNotOpen) {
			return false, err
		}
		if ferr := v.fail("read frame", err); ferr != nil {
			return false, ferr
		}
		return v.pollQuit(), nil
	}
	defer frame.Close()

	res, err := v.annotator.FindHands(frame, v.config.Draw)
	if err != nil {
		if ferr := v.fail("find hands", err); ferr != nil {
			return false, ferr
		}
		res = detector.Result{}
	} else {
		v.failures = 0
	}

	positions, err := v.annotator.FindPosition(frame, res, v.config.HandIndex, v.config.Draw)
	if err != nil && !errors.Is(err, detector.ErrHandOutOfRange) {
		return false, err
	}

	if p, ok := annotate.Lookup(positions, v.config.PrintLandmark); ok {
		fmt.Fprintln(v.out, p)
	}

	if v.config.Mirror {
		annotate.Mirror(frame)
	}

	if rateOK {
		annotate.DrawFPS(frame, rate)
	}

	v.window.Show(frame)
	v.frames++

	return v.pollQuit(), nil
}

// fail records a consecutive failure and returns an error once the limit is reached.
func (v *Viewer) fail(op string, err error) error {
	v.failures++
	if v.failures >= v.config.MaxReadFailures {
		return fmt.Errorf("%s: giving up after %d consecutive failures: %w", op, v.failures, err)
	}
	log.Printf("Skipping frame, %s: %v", op, err)
	return nil
}

func (v *Viewer) pollQuit() bool {
	return display.IsQuitKey(v.window.PollKey(PollDelayMs), v.config.QuitKey)
}

// Frames returns the number of frames shown so far.
func (v *Viewer) Frames() int {
	return v.frames
}

// Close releases the camera, window and detector. It is safe to call more than once.
func (v *Viewer) Close() {
	if v.closed {
		return
	}
	v.closed = true

	if err := v.camera.Close(); err != nil {
		log.Printf("Error closing camera: %v", err)
	}
	if err := v.window.Close(); err != nil {
		log.Printf("Error closing window: %v", err)
	}
	if v.detector != nil {
		if err := v.detector.Close(); err != nil {
			log.Printf("Error closing detector: %v", err)
		}
	}

	log.Println("Viewer stopped")
}
