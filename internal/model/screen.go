package model

// Screen is one of the six mutually exclusive kiosk views.
type Screen string

const (
	ScreenLanguage     Screen = "language"
	ScreenHome         Screen = "home"
	ScreenOrder        Screen = "order"
	ScreenConfirmation Screen = "confirmation"
	ScreenTracking     Screen = "tracking"
	ScreenReady        Screen = "ready"
)

// NeedsOrder reports whether the screen may only be shown with a current order.
func (s Screen) NeedsOrder() bool {
	switch s {
	case ScreenConfirmation, ScreenTracking, ScreenReady:
		return true
	}
	return false
}
