package config

import (
	"errors"
	"flag"
	"testing"
)

func TestDefault(t *testing.T) {
	c := Default()

	if err := c.Validate(); err != nil {
		t.Fatalf("default config should be valid: %v", err)
	}
	if !c.Mirror || !c.Draw {
		t.Error("expected mirror and draw to be on by default")
	}
	if c.PrintLandmark != 4 {
		t.Errorf("PrintLandmark = %d, want 4 (thumb tip)", c.PrintLandmark)
	}
	if c.QuitKey != 'q' {
		t.Errorf("QuitKey = %q, want 'q'", c.QuitKey)
	}
	if c.Detector.MaxHands != 2 {
		t.Errorf("MaxHands = %d, want 2", c.Detector.MaxHands)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(c *Config)
	}{
		{name: "negative camera", modify: func(c *Config) { c.CameraID = -1 }},
		{name: "negative width", modify: func(c *Config) { c.Width = -640 }},
		{name: "negative hand", modify: func(c *Config) { c.HandIndex = -1 }},
		{name: "hand beyond max hands", modify: func(c *Config) { c.HandIndex = 2 }},
		{name: "landmark 21", modify: func(c *Config) { c.PrintLandmark = 21 }},
		{name: "zero read failures", modify: func(c *Config) { c.MaxReadFailures = 0 }},
		{name: "bad detector", modify: func(c *Config) { c.Detector.ModelComplexity = 3 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Default()
			tt.modify(&c)
			if err := c.Validate(); !errors.Is(err, ErrInvalid) {
				t.Errorf("Validate() error = %v, want ErrInvalid", err)
			}
		})
	}
}

func TestRegisterFlags(t *testing.T) {
	c := Default()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	c.RegisterFlags(fs)

	args := []string{
		"-camera", "2",
		"-mirror=false",
		"-max-hands", "1",
		"-min-detection-confidence", "0.7",
		"-static-image-mode",
		"-quit-key", "x",
	}
	if err := fs.Parse(args); err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	if c.CameraID != 2 {
		t.Errorf("CameraID = %d, want 2", c.CameraID)
	}
	if c.Mirror {
		t.Error("expected mirror to be off")
	}
	if c.Detector.MaxHands != 1 {
		t.Errorf("MaxHands = %d, want 1", c.Detector.MaxHands)
	}
	if c.Detector.MinConfidence != 0.7 {
		t.Errorf("MinConfidence = %v, want 0.7", c.Detector.MinConfidence)
	}
	if !c.Detector.StaticImageMode {
		t.Error("expected static image mode")
	}
	if c.QuitKey != 'x' {
		t.Errorf("QuitKey = %q, want 'x'", c.QuitKey)
	}
	// Untouched fields keep defaults
	if c.PrintLandmark != 4 {
		t.Errorf("PrintLandmark = %d, want 4", c.PrintLandmark)
	}
}

func TestRegisterFlags_BadQuitKey(t *testing.T) {
	c := Default()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.SetOutput(discard{})
	c.RegisterFlags(fs)

	if err := fs.Parse([]string{"-quit-key", "quit"}); err == nil {
		t.Error("expected error for multi-character quit key")
	}
}

func TestSettings_RoundTrip(t *testing.T) {
	c := Default()
	c.CameraID = 1
	c.Width, c.Height = 1280, 720
	c.Draw = false
	c.QuitKey = 'z'
	c.Detector.ModelComplexity = 0
	c.Detector.MinTrackingConf = 0.25

	settings := c.Settings()
	if settings["camera"] != "1" {
		t.Errorf("camera setting = %q, want \"1\"", settings["camera"])
	}
	if settings["quit-key"] != "z" {
		t.Errorf("quit-key setting = %q, want \"z\"", settings["quit-key"])
	}

	restored := Default()
	if err := restored.ApplySettings(settings); err != nil {
		t.Fatalf("ApplySettings() error = %v", err)
	}
	if restored != c {
		t.Errorf("restored = %+v, want %+v", restored, c)
	}
}

func TestApplySettings(t *testing.T) {
	t.Run("ignores unknown names", func(t *testing.T) {
		c := Default()
		if err := c.ApplySettings(map[string]string{"db": "/tmp/x.db", "theme": "dark"}); err != nil {
			t.Fatalf("ApplySettings() error = %v", err)
		}
		if c != Default() {
			t.Error("unknown settings should not change the config")
		}
	})

	t.Run("rejects malformed values", func(t *testing.T) {
		c := Default()
		err := c.ApplySettings(map[string]string{"max-hands": "two"})
		if !errors.Is(err, ErrInvalid) {
			t.Errorf("ApplySettings() error = %v, want ErrInvalid", err)
		}
	})

	t.Run("later layers override earlier ones", func(t *testing.T) {
		c := Default()
		c.ApplySettings(map[string]string{"camera": "3", "mirror": "false"})
		c.ApplySettings(map[string]string{"camera": "1"})

		if c.CameraID != 1 {
			t.Errorf("CameraID = %d, want 1", c.CameraID)
		}
		if c.Mirror {
			t.Error("expected mirror to stay off from the first layer")
		}
	})
}

type discard struct{}

func (discard) Write(p []byte) (int, error) { return len(p), nil }
