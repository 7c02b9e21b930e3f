// Package voice accumulates a spoken order from a speech engine.
//
// A Capture is driven from the kiosk's event loop: the screen calls Start and
// Stop, and the engine reports back through the Sink methods. Only segments
// the engine marks final end up in the transcript.
package voice

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
)

// Segment is one recognition result. Interim segments may still change.
type Segment struct {
	Text  string
	Final bool
}

// Sink receives engine events.
type Sink interface {
	Result(Segment)
	Fail(code string)
	Ended()
}

// Engine is a platform speech-to-text facility.
type Engine interface {
	// Begin starts a recognition session for locale. Results may be
	// delivered to sink before Begin returns.
	Begin(locale language.Tag, sink Sink) error
	// End asks the engine to finish and deliver any pending final result.
	End() error
	// Abort drops the session without delivering anything else.
	Abort()
}

// Capture tracks one screen's recognition state.
type Capture struct {
	engine     Engine
	locale     language.Tag
	listening  bool
	transcript string
	interim    string
	err        string
	code       string
}

// NewCapture wraps engine for locale. A nil engine makes the capture
// unsupported: Start does nothing and Supported reports false.
func NewCapture(engine Engine, locale language.Tag) *Capture {
	if _, ok := engine.(Unavailable); ok {
		engine = nil
	}
	return &Capture{engine: engine, locale: locale}
}

func (c *Capture) Supported() bool      { return c.engine != nil }
func (c *Capture) Listening() bool      { return c.listening }
func (c *Capture) Transcript() string   { return c.transcript }
func (c *Capture) Interim() string      { return c.interim }
func (c *Capture) Err() string          { return c.err }
func (c *Capture) ErrCode() string      { return c.code }
func (c *Capture) Locale() language.Tag { return c.locale }

// Start begins listening. It is a no-op when unsupported or already active.
// A new session clears the previous transcript and error.
func (c *Capture) Start() {
	if c.engine == nil || c.listening {
		return
	}
	c.err, c.code = "", ""
	c.transcript = ""
	c.interim = ""
	c.listening = true
	if err := c.engine.Begin(c.locale, c); err != nil {
		c.Fail(err.Error())
	}
}

// Stop ends an active session. Pending final results still arrive.
func (c *Capture) Stop() {
	if c.engine == nil || !c.listening {
		return
	}
	if err := c.engine.End(); err != nil {
		c.Fail(err.Error())
		return
	}
	c.listening = false
	c.interim = ""
}

// Close aborts any in-flight session. Use it when the screen goes away.
func (c *Capture) Close() {
	if c.engine != nil && c.listening {
		c.engine.Abort()
	}
	c.listening = false
	c.interim = ""
}

// Result implements Sink.
func (c *Capture) Result(s Segment) {
	if !s.Final {
		c.interim = s.Text
		return
	}
	c.interim = ""
	text := strings.TrimSpace(s.Text)
	if text == "" {
		return
	}
	if c.transcript == "" {
		c.transcript = text
		return
	}
	c.transcript += " " + text
}

// Fail implements Sink.
func (c *Capture) Fail(code string) {
	c.code = code
	c.err = fmt.Sprintf("Speech recognition error: %s", code)
	c.listening = false
	c.interim = ""
}

// Ended implements Sink.
func (c *Capture) Ended() {
	c.listening = false
	c.interim = ""
}
