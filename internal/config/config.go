// Package config holds the viewer configuration and its flag and settings
// representations.
package config

import (
	"errors"
	"flag"
	"fmt"
	"sort"
	"unicode/utf8"

	"github.com/ayusman/handview/internal/detector"
)

// ErrInvalid is returned when a configuration value is out of range.
var ErrInvalid = errors.New("invalid configuration")

// Defaults for the viewer loop.
const (
	DefaultQuitKey         = 'q'
	DefaultPrintLandmark   = detector.ThumbTip
	DefaultMaxReadFailures = 30
	WindowTitle            = "Image"
)

// Config holds configuration options for the viewer.
type Config struct {
	CameraID int

	// Width and Height request a capture resolution; 0 keeps the device's.
	Width  int
	Height int

	Mirror bool
	Draw   bool

	// HandIndex selects which detected hand's positions are reported.
	HandIndex int

	// PrintLandmark is the landmark whose position is printed each frame.
	PrintLandmark int

	// QuitKey closes the viewer. Esc always does.
	QuitKey rune

	// MaxReadFailures is the number of consecutive failed camera reads
	// after which the viewer stops with an error.
	MaxReadFailures int

	Detector detector.Config
}

// Default returns the configuration used when nothing is overridden.
func Default() Config {
	return Config{
		CameraID:        0,
		Mirror:          true,
		Draw:            true,
		HandIndex:       0,
		PrintLandmark:   DefaultPrintLandmark,
		QuitKey:         DefaultQuitKey,
		MaxReadFailures: DefaultMaxReadFailures,
		Detector:        detector.DefaultConfig(),
	}
}

// Validate checks every value, returning an error wrapping ErrInvalid.
func (c Config) Validate() error {
	if c.CameraID < 0 {
		return fmt.Errorf("%w: camera id must not be negative, got %d", ErrInvalid, c.CameraID)
	}
	if c.Width < 0 || c.Height < 0 {
		return fmt.Errorf("%w: capture size must not be negative, got %dx%d", ErrInvalid, c.Width, c.Height)
	}
	if c.HandIndex < 0 {
		return fmt.Errorf("%w: hand index must not be negative, got %d", ErrInvalid, c.HandIndex)
	}
	if c.HandIndex >= c.Detector.MaxHands {
		return fmt.Errorf("%w: hand index %d can never be detected with max hands %d", ErrInvalid, c.HandIndex, c.Detector.MaxHands)
	}
	if c.PrintLandmark < 0 || c.PrintLandmark >= detector.NumLandmarks {
		return fmt.Errorf("%w: landmark must be within [0,%d], got %d", ErrInvalid, detector.NumLandmarks-1, c.PrintLandmark)
	}
	if c.MaxReadFailures < 1 {
		return fmt.Errorf("%w: max read failures must be at least 1, got %d", ErrInvalid, c.MaxReadFailures)
	}
	if err := c.Detector.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	return nil
}

// RegisterFlags binds every field of c to a flag in fs, using the current
// values as defaults.
func (c *Config) RegisterFlags(fs *flag.FlagSet) {
	fs.IntVar(&c.CameraID, "camera", c.CameraID, "camera device id")
	fs.IntVar(&c.Width, "width", c.Width, "requested capture width (0 = device native)")
	fs.IntVar(&c.Height, "height", c.Height, "requested capture height (0 = device native)")
	fs.BoolVar(&c.Mirror, "mirror", c.Mirror, "mirror the displayed frame horizontally")
	fs.BoolVar(&c.Draw, "draw", c.Draw, "draw landmarks and connections")
	fs.IntVar(&c.HandIndex, "hand", c.HandIndex, "index of the hand whose positions are reported")
	fs.IntVar(&c.PrintLandmark, "landmark", c.PrintLandmark, "landmark index printed each frame")
	fs.Var((*runeValue)(&c.QuitKey), "quit-key", "key that closes the viewer (Esc always does)")
	fs.IntVar(&c.MaxReadFailures, "max-read-failures", c.MaxReadFailures, "consecutive camera read failures before giving up")

	fs.BoolVar(&c.Detector.StaticImageMode, "static-image-mode", c.Detector.StaticImageMode, "treat every frame as an unrelated image")
	fs.IntVar(&c.Detector.MaxHands, "max-hands", c.Detector.MaxHands, "maximum number of hands to detect")
	fs.IntVar(&c.Detector.ModelComplexity, "model-complexity", c.Detector.ModelComplexity, "landmark model complexity (0 or 1)")
	fs.Float64Var(&c.Detector.MinConfidence, "min-detection-confidence", c.Detector.MinConfidence, "minimum hand detection confidence")
	fs.Float64Var(&c.Detector.MinTrackingConf, "min-tracking-confidence", c.Detector.MinTrackingConf, "minimum landmark tracking confidence")
}

// ApplySettings overrides fields from name/value pairs keyed by flag name.
// Names that are not configuration flags are ignored.
func (c *Config) ApplySettings(settings map[string]string) error {
	fs := flag.NewFlagSet("settings", flag.ContinueOnError)
	c.RegisterFlags(fs)

	names := make([]string, 0, len(settings))
	for name := range settings {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		if fs.Lookup(name) == nil {
			continue
		}
		if err := fs.Set(name, settings[name]); err != nil {
			return fmt.Errorf("%w: setting %s: %v", ErrInvalid, name, err)
		}
	}
	return nil
}

// Settings returns every field as name/value pairs keyed by flag name.
func (c Config) Settings() map[string]string {
	fs := flag.NewFlagSet("settings", flag.ContinueOnError)
	c.RegisterFlags(fs)

	settings := make(map[string]string)
	fs.VisitAll(func(f *flag.Flag) {
		settings[f.Name] = f.Value.String()
	})
	return settings
}

// runeValue is a flag.Value holding a single character.
type runeValue rune

func (r *runeValue) String() string {
	if r == nil || *r == 0 {
		return ""
	}
	return string(rune(*r))
}

func (r *runeValue) Set(s string) error {
	if utf8.RuneCountInString(s) != 1 {
		return fmt.Errorf("want a single character, got %q", s)
	}
	v, _ := utf8.DecodeRuneInString(s)
	*r = runeValue(v)
	return nil
}
