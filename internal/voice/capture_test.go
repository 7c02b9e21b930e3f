package voice

import (
	"testing"

	"golang.org/x/text/language"
)

var korean = language.MustParse("ko-KR")

func TestUnsupportedCaptureIsInert(t *testing.T) {
	for _, e := range []Engine{nil, Unavailable{}} {
		c := NewCapture(e, korean)
		if c.Supported() {
			t.Fatalf("%T: expected unsupported", e)
		}
		c.Start()
		if c.Listening() || c.Transcript() != "" {
			t.Fatalf("%T: start should be a no-op", e)
		}
		c.Stop()
		c.Close()
	}
}

func TestKeyboardOnlyAccumulatesFinalSegments(t *testing.T) {
	kb := NewKeyboard()
	c := NewCapture(kb, korean)
	c.Start()
	if !c.Listening() {
		t.Fatalf("expected listening")
	}
	if kb.Locale() != korean {
		t.Fatalf("engine locale = %s", kb.Locale())
	}
	_ = kb.Dictate("lat")
	if c.Transcript() != "" || c.Interim() != "lat" {
		t.Fatalf("interim leaked into transcript: %q / %q", c.Transcript(), c.Interim())
	}
	_ = kb.Dictate("latte,")
	_ = kb.Commit()
	_ = kb.Dictate("croissant")
	_ = kb.Commit()
	if got := c.Transcript(); got != "latte, croissant" {
		t.Fatalf("transcript = %q", got)
	}
	c.Stop()
	if c.Listening() {
		t.Fatalf("still listening after stop")
	}
}

func TestStopFlushesPendingPhrase(t *testing.T) {
	kb := NewKeyboard()
	c := NewCapture(kb, korean)
	c.Start()
	_ = kb.Dictate("mocha")
	c.Stop()
	if c.Transcript() != "mocha" {
		t.Fatalf("transcript = %q", c.Transcript())
	}
}

func TestStartIsIdempotentWhileListening(t *testing.T) {
	kb := NewKeyboard()
	c := NewCapture(kb, korean)
	c.Start()
	_ = kb.Dictate("tea")
	_ = kb.Commit()
	c.Start()
	if c.Transcript() != "tea" {
		t.Fatalf("second start reset the session: %q", c.Transcript())
	}
}

func TestNewSessionClearsTranscriptAndError(t *testing.T) {
	s := &Script{FailWith: "no-speech"}
	c := NewCapture(s, korean)
	c.Start()
	if c.Err() != "Speech recognition error: no-speech" || c.Listening() {
		t.Fatalf("err = %q listening = %v", c.Err(), c.Listening())
	}
	if c.ErrCode() != "no-speech" {
		t.Fatalf("code = %q", c.ErrCode())
	}
	s.FailWith = ""
	s.Segments = []Segment{{Text: "americano", Final: true}}
	c.Start()
	if c.Err() != "" || c.ErrCode() != "" || c.Transcript() != "americano" {
		t.Fatalf("err = %q transcript = %q", c.Err(), c.Transcript())
	}
	if c.Listening() {
		t.Fatalf("script should end the session")
	}
}

func TestCloseAbortsSession(t *testing.T) {
	kb := NewKeyboard()
	c := NewCapture(kb, korean)
	c.Start()
	_ = kb.Dictate("flat white")
	c.Close()
	if c.Listening() || c.Transcript() != "" {
		t.Fatalf("close kept state: %v %q", c.Listening(), c.Transcript())
	}
	if err := kb.Dictate("late"); err != ErrNotListening {
		t.Fatalf("expected ErrNotListening, got %v", err)
	}
}

func TestParseScript(t *testing.T) {
	s := ParseScript("latte, croissant | | muffin ")
	if len(s.Segments) != 2 || s.Segments[1].Text != "muffin" || !s.Segments[0].Final {
		t.Fatalf("segments = %+v", s.Segments)
	}
}
