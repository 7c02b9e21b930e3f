package model

import "testing"

func TestParseLanguage(t *testing.T) {
	cases := map[string]Language{
		"en":    English,
		"en-US": English,
		"hi":    Hindi,
		"ko-KR": Korean,
		" ko ":  Korean,
	}
	for in, want := range cases {
		got, err := ParseLanguage(in)
		if err != nil {
			t.Fatalf("ParseLanguage(%q): %v", in, err)
		}
		if got != want {
			t.Fatalf("ParseLanguage(%q) = %q, want %q", in, got, want)
		}
	}
	for _, in := range []string{"", "fr", "not a tag!"} {
		if _, err := ParseLanguage(in); err == nil {
			t.Fatalf("expected error for %q", in)
		}
	}
}

func TestLanguageLocaleAndNames(t *testing.T) {
	want := map[Language]string{English: "en-US", Hindi: "hi-IN", Korean: "ko-KR"}
	for _, l := range Languages() {
		if got := l.Locale().String(); got != want[l] {
			t.Fatalf("%s locale = %q, want %q", l, got, want[l])
		}
		if l.NativeName() == "" || l.Flag() == "" {
			t.Fatalf("%s: missing display name or flag", l)
		}
	}
}

func TestStatusRank(t *testing.T) {
	for i, s := range Statuses() {
		if s.Rank() != i {
			t.Fatalf("%s rank = %d, want %d", s, s.Rank(), i)
		}
	}
	if Status("cancelled").Valid() {
		t.Fatalf("unknown status reported valid")
	}
}

func TestNeedsOrder(t *testing.T) {
	for _, s := range []Screen{ScreenConfirmation, ScreenTracking, ScreenReady} {
		if !s.NeedsOrder() {
			t.Fatalf("%s should need an order", s)
		}
	}
	for _, s := range []Screen{ScreenLanguage, ScreenHome, ScreenOrder} {
		if s.NeedsOrder() {
			t.Fatalf("%s should not need an order", s)
		}
	}
}

func TestQRPayload(t *testing.T) {
	o := Order{ID: "ABC123XYZ"}
	if got := o.QRPayload(); got != "BREWBUDDY-ABC123XYZ" {
		t.Fatalf("payload = %q", got)
	}
}
