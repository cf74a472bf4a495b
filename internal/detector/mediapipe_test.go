package detector

import (
	"bytes"
	"encoding/binary"
	"encoding/json"
	"strings"
	"testing"
)

func TestWriteFrame(t *testing.T) {
	var buf bytes.Buffer
	pix := bytes.Repeat([]byte{1, 2, 3}, 4*2)

	if err := writeFrame(&buf, 4, 2, pix); err != nil {
		t.Fatalf("writeFrame() error = %v", err)
	}

	out := buf.Bytes()
	if len(out) != 8+len(pix) {
		t.Fatalf("expected %d bytes, got %d", 8+len(pix), len(out))
	}
	if w := binary.BigEndian.Uint32(out[0:4]); w != 4 {
		t.Errorf("width = %d, want 4", w)
	}
	if h := binary.BigEndian.Uint32(out[4:8]); h != 2 {
		t.Errorf("height = %d, want 2", h)
	}
	if !bytes.Equal(out[8:], pix) {
		t.Error("pixel payload was altered")
	}
}

func TestWriteFrame_SizeMismatch(t *testing.T) {
	var buf bytes.Buffer
	if err := writeFrame(&buf, 4, 2, make([]byte, 10)); err == nil {
		t.Error("expected error for short pixel buffer")
	}
	if buf.Len() != 0 {
		t.Error("nothing should be written on size mismatch")
	}
}

func responseLine(t *testing.T, hands ...HandLandmarks) []byte {
	t.Helper()
	type wire struct {
		Points     []Point3D `json:"points"`
		Handedness string    `json:"handedness"`
		Score      float64   `json:"score"`
	}
	var payload struct {
		Hands []wire `json:"hands"`
	}
	for _, h := range hands {
		payload.Hands = append(payload.Hands, wire{Points: h.Points[:], Handedness: h.Handedness, Score: h.Score})
	}
	data, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	return append(data, '\n')
}

func TestDecodeResponse(t *testing.T) {
	t.Run("no hands", func(t *testing.T) {
		res, err := decodeResponse([]byte(`{"hands":[]}`+"\n"), 2)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !res.Empty() {
			t.Errorf("expected empty result, got %d hands", res.Len())
		}
	})

	t.Run("one hand keeps order and metadata", func(t *testing.T) {
		res, err := decodeResponse(responseLine(t, LadderHand()), 2)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Len() != 1 {
			t.Fatalf("expected 1 hand, got %d", res.Len())
		}
		want := LadderHand()
		if res.Hands[0] != want {
			t.Errorf("decoded hand = %+v, want %+v", res.Hands[0], want)
		}
	})

	t.Run("truncates to max hands", func(t *testing.T) {
		line := responseLine(t, ThumbsUpLandmarks(), OpenPalmLandmarks(), LadderHand())
		res, err := decodeResponse(line, 2)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Len() != 2 {
			t.Errorf("expected 2 hands, got %d", res.Len())
		}
	})

	t.Run("service error", func(t *testing.T) {
		_, err := decodeResponse([]byte(`{"error":"bad frame"}`), 2)
		if err == nil || !strings.Contains(err.Error(), "bad frame") {
			t.Errorf("expected service error, got %v", err)
		}
	})

	t.Run("short landmark list", func(t *testing.T) {
		_, err := decodeResponse([]byte(`{"hands":[{"points":[{"x":0.1,"y":0.2,"z":0}]}]}`), 2)
		if err == nil {
			t.Error("expected error for incomplete hand")
		}
	})

	t.Run("malformed json", func(t *testing.T) {
		if _, err := decodeResponse([]byte("not json"), 2); err == nil {
			t.Error("expected parse error")
		}
	})
}

func TestServiceArgs(t *testing.T) {
	args := strings.Join(serviceArgs(DefaultConfig()), " ")
	want := "--max-hands 2 --model-complexity 1 --min-detection-confidence 0.5 --min-tracking-confidence 0.5"
	if args != want {
		t.Errorf("serviceArgs() = %q, want %q", args, want)
	}

	c := DefaultConfig()
	c.StaticImageMode = true
	args = strings.Join(serviceArgs(c), " ")
	if !strings.HasSuffix(args, "--static-image-mode") {
		t.Errorf("expected static image flag, got %q", args)
	}
}

func TestNewMediaPipeDetector_InvalidConfig(t *testing.T) {
	c := DefaultConfig()
	c.MaxHands = 0
	if _, err := NewMediaPipeDetector(c); err == nil {
		t.Error("expected error for invalid config")
	}
}
