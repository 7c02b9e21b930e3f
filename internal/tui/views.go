package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/idilsaglam/brewbuddy/internal/i18n"
	"github.com/idilsaglam/brewbuddy/internal/model"
	"github.com/idilsaglam/brewbuddy/internal/qr"
	"github.com/idilsaglam/brewbuddy/internal/ui"
)

const brand = "☕ BrewBuddy"

func (m Model) View() string {
	var body string
	switch m.ctl.Screen() {
	case model.ScreenLanguage:
		body = m.viewLanguage()
	case model.ScreenHome:
		body = m.viewHome()
	case model.ScreenOrder:
		body = m.viewOrder()
	case model.ScreenConfirmation:
		body = m.viewConfirmation()
	case model.ScreenTracking:
		body = m.viewTracking()
	case model.ScreenReady:
		body = m.viewReady()
	}
	return panelString(body)
}

func (m Model) t(key i18n.Key, args ...any) string {
	return i18n.T(m.ctl.Language(), key, args...)
}

func hint(s string) string { return helpStyle.Render(s) }

// The language screen is shown in English until a language is picked.
func (m Model) viewLanguage() string {
	return strings.Join([]string{
		titleStyle.Render(brand),
		mutedStyle.Render(m.t(i18n.SelectLanguage)),
		"",
		m.languages.View(),
		"",
		hint(m.t(i18n.HintLanguage)),
	}, "\n")
}

func (m Model) viewHome() string {
	return strings.Join([]string{
		titleStyle.Render(brand),
		m.t(i18n.Welcome),
		"",
		buttonStyle.Render("🎤 " + m.t(i18n.StartOrder)),
		"",
		hint(m.t(i18n.HintHome)),
	}, "\n")
}

func (m Model) viewOrder() string {
	lines := []string{headerStyle.Render(m.t(i18n.SpeakOrder)), ""}

	if !m.capture.Supported() {
		lines = append(lines,
			alertStyle.Render(errorStyle.Render(m.t(i18n.NotSupported))),
			"",
			hint(m.t(i18n.HintTracking)),
		)
		return strings.Join(lines, "\n")
	}

	if code := m.capture.ErrCode(); code != "" {
		lines = append(lines,
			alertStyle.Render(errorStyle.Render(m.t(i18n.SpeechError, code))+"\n"+mutedStyle.Render(m.t(i18n.TryAgain))),
			"")
	}
	if m.notice != "" {
		lines = append(lines, errorStyle.Render(m.notice), "")
	}

	if m.capture.Listening() {
		lines = append(lines, listenStyle.Render("🔊 "+m.t(i18n.Listening)))
		if m.keyboard != nil {
			lines = append(lines, m.dictation.View())
		}
	} else {
		lines = append(lines, brewStyle.Render("🎤 ")+mutedStyle.Render(m.t(i18n.PressToSpeak)))
	}

	if tr := m.capture.Transcript(); tr != "" {
		lines = append(lines, "", boxStyle.Render(tr))
		if !m.processing {
			lines = append(lines, "", buttonStyle.Render(m.t(i18n.PlaceOrder)))
		}
	}
	if m.processing {
		lines = append(lines, "", m.spinner.View()+" "+m.t(i18n.Processing))
	}

	h := i18n.HintOrderIdle
	if m.capture.Listening() {
		h = i18n.HintListening
	}
	lines = append(lines, "", hint(m.t(h)))
	return strings.Join(lines, "\n")
}

func (m Model) viewConfirmation() string {
	o := m.ctl.Order()
	if o == nil {
		return ""
	}
	items := make([]string, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, "• "+it)
	}
	if len(items) == 0 {
		items = append(items, mutedStyle.Render(m.t(i18n.NoItems)))
	}
	summary := strings.Join([]string{
		fmt.Sprintf("%s %s", headerStyle.Render(m.t(i18n.OrderNumber)), accentStyle.Render(o.ID)),
		"",
		strings.Join(items, "\n"),
		"",
		fmt.Sprintf("%s %s", headerStyle.Render(m.t(i18n.Total)), successStyle.Render(fmt.Sprintf("$%d", o.Total))),
	}, "\n")

	th := ui.Current()
	code := qrStyle.Render(qr.Render(qr.Generate(o.QRPayload()), th.QROn, th.QROff))

	left := strings.Join([]string{
		successStyle.Render("✔ ") + headerStyle.Render(m.t(i18n.OrderSummary)),
		"",
		boxStyle.Render(summary),
		"",
		buttonStyle.Render("🕒 " + m.t(i18n.TrackOrder)),
	}, "\n")
	right := strings.Join([]string{headerStyle.Render(m.t(i18n.YourQRCode)), code}, "\n")

	var body string
	if m.width >= lipgloss.Width(left)+lipgloss.Width(right)+8 {
		body = lipgloss.JoinHorizontal(lipgloss.Top, left, "    ", right)
	} else {
		body = left + "\n\n" + right
	}
	return body + "\n\n" + hint(m.t(i18n.HintConfirmation))
}

func (m Model) viewTracking() string {
	o := m.ctl.Order()
	if o == nil {
		return ""
	}
	st := o.Status
	done, total := 0, len(model.Statuses())
	if m.progress != nil {
		st = m.progress.Current()
		done, total = m.progress.Fraction()
	}
	icon := ui.Current().StatusIcon(st)
	style := pendingStyle
	switch st {
	case model.StatusPreparing:
		style = brewStyle
	case model.StatusReady:
		style = successStyle
	}
	return strings.Join([]string{
		headerStyle.Render(m.t(i18n.OrderStatus)),
		"",
		style.Render(icon),
		headerStyle.Render(m.t(i18n.OrderNumber) + o.ID),
		style.Render(i18n.StatusText(m.ctl.Language(), st)),
		"",
		ui.ProgressBar(done, total, 30),
		"",
		hint(m.t(i18n.HintTracking)),
	}, "\n")
}

func (m Model) viewReady() string {
	return strings.Join([]string{
		"🎉",
		successStyle.Bold(true).Render(m.t(i18n.Ready)),
		"",
		m.t(i18n.PickupMessage),
		"",
		buttonStyle.Render(m.t(i18n.NewOrder)),
		"",
		hint(m.t(i18n.HintReady)),
	}, "\n")
}
