package detector

import (
	"bufio"
	"encoding/binary"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"sync"

	"gocv.io/x/gocv"
)

// ServiceScript is the file name of the MediaPipe sidecar.
const ServiceScript = "hand_landmarks_service.py"

// ErrServiceNotFound is returned when the MediaPipe sidecar script cannot be located.
var ErrServiceNotFound = errors.New(ServiceScript + " not found")

// MediaPipeDetector implements Detector using a Python MediaPipe subprocess.
//
// Each request is a 4-byte big-endian width, a 4-byte big-endian height and
// width*height*3 bytes of RGB pixels. Each response is one JSON line.
type MediaPipeDetector struct {
	config     Config
	scriptPath string
	cmd        *exec.Cmd
	stdin      io.WriteCloser
	stdout     *bufio.Reader
	mu         sync.Mutex
	started    bool
}

// NewMediaPipeDetector creates a new MediaPipe detector.
// The Python process is started lazily on first detection.
func NewMediaPipeDetector(config Config) (*MediaPipeDetector, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("detector config: %w", err)
	}

	scriptPath := findServiceScript()
	if scriptPath == "" {
		return nil, ErrServiceNotFound
	}

	return &MediaPipeDetector{
		config:     config,
		scriptPath: scriptPath,
	}, nil
}

// Detect converts the BGR frame to RGB, hands it to the model and returns
// the detected hands.
func (d *MediaPipeDetector) Detect(frame *gocv.Mat) (Result, error) {
	if frame == nil || frame.Empty() {
		return Result{}, errors.New("detect: empty frame")
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	if err := d.ensureStarted(); err != nil {
		return Result{}, err
	}

	rgb := gocv.NewMat()
	defer rgb.Close()
	gocv.CvtColor(*frame, &rgb, gocv.ColorBGRToRGB)

	if err := writeFrame(d.stdin, rgb.Cols(), rgb.Rows(), rgb.ToBytes()); err != nil {
		return Result{}, err
	}

	line, err := d.stdout.ReadBytes('\n')
	if err != nil {
		return Result{}, fmt.Errorf("read response: %w", err)
	}

	return decodeResponse(line, d.config.MaxHands)
}

// Close shuts down the Python process.
func (d *MediaPipeDetector) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.shutdown()
}

func (d *MediaPipeDetector) ensureStarted() error {
	if d.started {
		return nil
	}

	// Use virtual environment Python if available
	pythonPath := findVenvPython()
	if pythonPath == "" {
		pythonPath = "python3"
	}

	d.cmd = exec.Command(pythonPath, append([]string{d.scriptPath}, serviceArgs(d.config)...)...)

	stdin, err := d.cmd.StdinPipe()
	if err != nil {
		return fmt.Errorf("create stdin pipe: %w", err)
	}

	stdout, err := d.cmd.StdoutPipe()
	if err != nil {
		return fmt.Errorf("create stdout pipe: %w", err)
	}

	// Capture stderr for debugging
	d.cmd.Stderr = os.Stderr

	if err := d.cmd.Start(); err != nil {
		return fmt.Errorf("start mediapipe service: %w", err)
	}

	d.stdin = stdin
	d.stdout = bufio.NewReader(stdout)
	d.started = true

	return nil
}

func (d *MediaPipeDetector) shutdown() error {
	if !d.started {
		return nil
	}

	if d.stdin != nil {
		d.stdin.Close()
	}

	err := d.cmd.Wait()
	d.started = false
	d.cmd = nil
	d.stdin = nil
	d.stdout = nil

	return err
}

// serviceArgs renders the detector configuration as sidecar command-line flags.
func serviceArgs(c Config) []string {
	args := []string{
		"--max-hands", strconv.Itoa(c.MaxHands),
		"--model-complexity", strconv.Itoa(c.ModelComplexity),
		"--min-detection-confidence", strconv.FormatFloat(c.MinConfidence, 'f', -1, 64),
		"--min-tracking-confidence", strconv.FormatFloat(c.MinTrackingConf, 'f', -1, 64),
	}
	if c.StaticImageMode {
		args = append(args, "--static-image-mode")
	}
	return args
}

// writeFrame sends one RGB frame to the sidecar.
func writeFrame(w io.Writer, width, height int, pix []byte) error {
	if want := width * height * 3; len(pix) != want {
		return fmt.Errorf("write frame: got %d bytes, want %d for %dx%d RGB", len(pix), want, width, height)
	}

	header := make([]byte, 8)
	binary.BigEndian.PutUint32(header[0:4], uint32(width))
	binary.BigEndian.PutUint32(header[4:8], uint32(height))

	if _, err := w.Write(header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	if _, err := w.Write(pix); err != nil {
		return fmt.Errorf("write pixels: %w", err)
	}
	return nil
}

// decodeResponse parses one JSON line from the sidecar, keeping at most maxHands hands.
func decodeResponse(line []byte, maxHands int) (Result, error) {
	var response struct {
		Hands []jsonHand `json:"hands"`
		Error string     `json:"error"`
	}
	if err := json.Unmarshal(line, &response); err != nil {
		return Result{}, fmt.Errorf("parse response: %w", err)
	}
	if response.Error != "" {
		return Result{}, fmt.Errorf("mediapipe service: %s", response.Error)
	}

	hands := response.Hands
	if maxHands > 0 && len(hands) > maxHands {
		hands = hands[:maxHands]
	}

	result := Result{Hands: make([]HandLandmarks, 0, len(hands))}
	for i, h := range hands {
		if len(h.Points) != NumLandmarks {
			return Result{}, fmt.Errorf("parse response: hand %d has %d landmarks, want %d", i, len(h.Points), NumLandmarks)
		}
		result.Hands = append(result.Hands, h.toHandLandmarks())
	}

	return result, nil
}

func findServiceScript() string {
	// Get executable directory
	execPath, err := os.Executable()
	var execDir string
	if err == nil {
		execDir = filepath.Dir(execPath)
	}

	candidates := []string{
		filepath.Join("scripts", ServiceScript),
		filepath.Join("..", "scripts", ServiceScript),
		filepath.Join(execDir, "scripts", ServiceScript),
		filepath.Join(os.Getenv("HOME"), ".handview", "scripts", ServiceScript),
	}

	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			absPath, err := filepath.Abs(path)
			if err == nil {
				return absPath
			}
			return path
		}
	}
	return ""
}

// findVenvPython looks for a Python interpreter in a virtual environment.
func findVenvPython() string {
	execPath, err := os.Executable()
	if err != nil {
		return ""
	}
	execDir := filepath.Dir(execPath)

	candidates := []string{
		"venv/bin/python",
		"../venv/bin/python",
		filepath.Join(execDir, "venv/bin/python"),
		filepath.Join(os.Getenv("HOME"), ".handview/venv/bin/python"),
	}

	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			absPath, err := filepath.Abs(path)
			if err == nil {
				return absPath
			}
			return path
		}
	}
	return ""
}

// jsonHand represents the JSON structure from the Python service.
type jsonHand struct {
	Points     []Point3D `json:"points"`
	Handedness string    `json:"handedness"`
	Score      float64   `json:"score"`
}

func (h jsonHand) toHandLandmarks() HandLandmarks {
	lm := HandLandmarks{
		Handedness: h.Handedness,
		Score:      h.Score,
	}
	copy(lm.Points[:], h.Points)
	return lm
}
