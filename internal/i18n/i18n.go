// Package i18n holds the kiosk string tables. Every screen looks its text up
// here with the session language; English is the fallback.
package i18n

import (
	"fmt"
	"sort"

	"github.com/idilsaglam/brewbuddy/internal/model"
)

// Key names a user-visible string.
type Key string

const (
	Welcome        Key = "welcome"
	SelectLanguage Key = "selectLanguage"
	StartOrder     Key = "startOrder"
	SpeakOrder     Key = "speakOrder"
	Listening      Key = "listening"
	PressToSpeak   Key = "pressToSpeak"
	Processing     Key = "processing"
	PlaceOrder     Key = "placeOrder"
	NotSupported   Key = "notSupported"
	SpeechError    Key = "speechError"
	OrderSummary   Key = "orderSummary"
	OrderNumber    Key = "orderNumber"
	Total          Key = "total"
	YourQRCode     Key = "yourQRCode"
	TrackOrder     Key = "trackOrder"
	OrderStatus    Key = "orderStatus"
	Pending        Key = "pending"
	Preparing      Key = "preparing"
	Ready          Key = "ready"
	PickupMessage  Key = "pickupMessage"
	TryAgain       Key = "tryAgain"
	NewOrder       Key = "newOrder"
	NoItems        Key = "noItems"

	HintLanguage     Key = "hintLanguage"
	HintHome         Key = "hintHome"
	HintOrderIdle    Key = "hintOrderIdle"
	HintListening    Key = "hintListening"
	HintConfirmation Key = "hintConfirmation"
	HintTracking     Key = "hintTracking"
	HintReady        Key = "hintReady"
)

// T returns the text for key in lang. Extra args are applied with Sprintf.
// Unknown languages fall back to English; unknown keys return the key itself.
func T(lang model.Language, key Key, args ...any) string {
	table, ok := translations[lang]
	if !ok {
		table = translations[model.DefaultLanguage]
	}
	tmpl, ok := table[key]
	if !ok {
		tmpl, ok = translations[model.DefaultLanguage][key]
		if !ok {
			return string(key)
		}
	}
	if len(args) == 0 {
		return tmpl
	}
	return fmt.Sprintf(tmpl, args...)
}

// StatusText is the label shown for an order status.
func StatusText(lang model.Language, s model.Status) string {
	switch s {
	case model.StatusPreparing:
		return T(lang, Preparing)
	case model.StatusReady:
		return T(lang, Ready)
	}
	return T(lang, Pending)
}

// Keys lists every key of the English table, sorted.
func Keys() []Key {
	en := translations[model.DefaultLanguage]
	out := make([]Key, 0, len(en))
	for k := range en {
		out = append(out, k)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Missing returns the keys lang lacks compared to English.
func Missing(lang model.Language) []Key {
	table := translations[lang]
	var out []Key
	for _, k := range Keys() {
		if v, ok := table[k]; !ok || v == "" {
			out = append(out, k)
		}
	}
	return out
}
