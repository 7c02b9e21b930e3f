package model

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// Language is a kiosk UI language.
type Language string

const (
	English Language = "en"
	Hindi   Language = "hi"
	Korean  Language = "ko"
)

// DefaultLanguage is used when nothing else was chosen.
const DefaultLanguage = English

var languages = []Language{English, Hindi, Korean}

// Languages returns the supported languages in picker order.
func Languages() []Language {
	out := make([]Language, len(languages))
	copy(out, languages)
	return out
}

// ParseLanguage accepts a language code ("ko") or a locale ("ko-KR").
func ParseLanguage(s string) (Language, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", fmt.Errorf("empty language")
	}
	tag, err := language.Parse(s)
	if err != nil {
		return "", fmt.Errorf("parse language %q: %w", s, err)
	}
	base, _ := tag.Base()
	l := Language(base.String())
	if !l.Valid() {
		return "", fmt.Errorf("unsupported language %q", s)
	}
	return l, nil
}

func (l Language) Valid() bool {
	for _, x := range languages {
		if x == l {
			return true
		}
	}
	return false
}

// Locale is the speech recognition locale for the language.
func (l Language) Locale() language.Tag {
	switch l {
	case Hindi:
		return language.MustParse("hi-IN")
	case Korean:
		return language.MustParse("ko-KR")
	}
	return language.AmericanEnglish
}

// NativeName is the language's name written in that language.
func (l Language) NativeName() string {
	tag := language.Make(string(l))
	if n := display.Self.Name(tag); n != "" {
		return n
	}
	return string(l)
}

func (l Language) Flag() string {
	switch l {
	case Hindi:
		return "🇮🇳"
	case Korean:
		return "🇰🇷"
	}
	return "🇺🇸"
}
