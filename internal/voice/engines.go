package voice

import (
	"errors"
	"strings"

	"golang.org/x/text/language"
)

var ErrNotListening = errors.New("not listening")

// Unavailable stands for a platform without speech recognition.
type Unavailable struct{}

func (Unavailable) Begin(language.Tag, Sink) error { return errors.New("not-supported") }
func (Unavailable) End() error                     { return nil }
func (Unavailable) Abort()                         {}

// Keyboard is the terminal stand-in for a microphone: the kiosk forwards
// what the customer types as interim text and commits it as a final segment.
type Keyboard struct {
	sink   Sink
	locale language.Tag
	text   string
}

func NewKeyboard() *Keyboard { return &Keyboard{} }

func (k *Keyboard) Begin(locale language.Tag, sink Sink) error {
	k.sink, k.locale, k.text = sink, locale, ""
	return nil
}

// Dictate replaces the pending phrase and reports it as interim.
func (k *Keyboard) Dictate(text string) error {
	if k.sink == nil {
		return ErrNotListening
	}
	k.text = text
	k.sink.Result(Segment{Text: text})
	return nil
}

// Commit delivers the pending phrase as final and keeps the session open.
func (k *Keyboard) Commit() error {
	if k.sink == nil {
		return ErrNotListening
	}
	text := k.text
	k.text = ""
	k.sink.Result(Segment{Text: text, Final: true})
	return nil
}

func (k *Keyboard) End() error {
	if k.sink == nil {
		return nil
	}
	if strings.TrimSpace(k.text) != "" {
		k.sink.Result(Segment{Text: k.text, Final: true})
	}
	k.sink, k.text = nil, ""
	return nil
}

func (k *Keyboard) Abort() { k.sink, k.text = nil, "" }

// Locale is the locale of the current or last session.
func (k *Keyboard) Locale() language.Tag { return k.locale }

// Script replays fixed segments on every session, then ends it.
type Script struct {
	Segments []Segment
	// FailWith, when set, is reported instead of any segment.
	FailWith string
}

// ParseScript builds a Script whose segments are all final, one per "|"
// separated phrase.
func ParseScript(s string) *Script {
	var segs []Segment
	for _, p := range strings.Split(s, "|") {
		if p = strings.TrimSpace(p); p != "" {
			segs = append(segs, Segment{Text: p, Final: true})
		}
	}
	return &Script{Segments: segs}
}

func (s *Script) Begin(_ language.Tag, sink Sink) error {
	if s.FailWith != "" {
		sink.Fail(s.FailWith)
		return nil
	}
	for _, seg := range s.Segments {
		sink.Result(seg)
	}
	sink.Ended()
	return nil
}

func (s *Script) End() error { return nil }
func (s *Script) Abort()     {}
