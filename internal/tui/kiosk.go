// Package tui is the interactive kiosk. Every key press and timer lands in
// Model.Update on Bubble Tea's single event loop, so the flow controller,
// voice capture and status progress need no locking.
package tui

import (
	"errors"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/idilsaglam/brewbuddy/internal/flow"
	"github.com/idilsaglam/brewbuddy/internal/logger"
	"github.com/idilsaglam/brewbuddy/internal/model"
	"github.com/idilsaglam/brewbuddy/internal/order"
	"github.com/idilsaglam/brewbuddy/internal/status"
	"github.com/idilsaglam/brewbuddy/internal/voice"
)

// Options wires the kiosk's collaborators.
type Options struct {
	Engine          voice.Engine // nil means no speech support
	Factory         *order.Factory
	Logger          *logger.Logger
	Table           status.Table
	ProcessingDelay time.Duration
	ReadyHold       time.Duration
	Language        model.Language // highlighted on the language screen
}

// Model is the kiosk's tea.Model.
type Model struct {
	ctl      *flow.Controller
	log      *logger.Logger
	factory  *order.Factory
	engine   voice.Engine
	keyboard *voice.Keyboard
	capture  *voice.Capture
	table    status.Table
	progress *status.Progress

	processingDelay time.Duration
	readyHold       time.Duration

	languages list.Model
	dictation textinput.Model
	spinner   spinner.Model

	processing bool
	notice     string // last non-speech problem, shown on the order screen
	width      int
	height     int
}

type orderPlacedMsg struct {
	order *model.Order
	err   error
}

type statusMsg struct {
	orderID string
	step    int
	status  model.Status
}

type readyMsg struct{ orderID string }

func New(opts Options) Model {
	if opts.Factory == nil {
		opts.Factory = &order.Factory{}
	}
	if opts.Logger == nil {
		opts.Logger = logger.Discard("brewbuddy")
	}
	if opts.Table == nil {
		opts.Table = status.DefaultTable()
	}
	if _, ok := opts.Engine.(voice.Unavailable); ok {
		opts.Engine = nil
	}

	m := Model{
		ctl:             flow.New(),
		log:             opts.Logger,
		factory:         opts.Factory,
		engine:          opts.Engine,
		table:           opts.Table,
		processingDelay: opts.ProcessingDelay,
		readyHold:       opts.ReadyHold,
		languages:       newLanguageList(opts.Language),
		width:           80,
		height:          24,
	}
	m.keyboard, _ = opts.Engine.(*voice.Keyboard)
	m.capture = voice.NewCapture(m.engine, model.DefaultLanguage.Locale())

	m.dictation = textinput.New()
	m.dictation.Prompt = "> "
	m.dictation.CharLimit = 200
	m.dictation.Cursor.SetMode(cursor.CursorStatic)

	m.spinner = spinner.New()
	m.spinner.Spinner = spinner.Dot
	m.spinner.Style = brewStyle
	return m
}

// Controller exposes the flow state, mainly for callers inspecting the
// final model after the program exits.
func (m Model) Controller() *flow.Controller { return m.ctl }

// Run starts the kiosk in the alternate screen and blocks until it quits.
func Run(opts Options) error {
	m := New(opts)
	m.log.Info("kiosk_started", map[string]any{"speech": m.capture.Supported()})
	p := tea.NewProgram(m, tea.WithAltScreen())
	finalModel, err := p.Run()
	if fm, ok := finalModel.(Model); ok {
		fm.capture.Close()
	}
	if err != nil {
		m.log.Error("kiosk_failed", err, nil)
		return err
	}
	m.log.Info("kiosk_stopped", nil)
	return nil
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.languages.SetSize(min(m.width-4, 60), len(m.languages.Items())+1)
		return m, nil
	case orderPlacedMsg:
		return m.orderPlaced(msg)
	case statusMsg:
		return m.statusChanged(msg)
	case readyMsg:
		return m.orderReady(msg)
	case spinner.TickMsg:
		if !m.processing {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m.quit()
		}
	}

	switch m.ctl.Screen() {
	case model.ScreenLanguage:
		return m.updateLanguage(msg)
	case model.ScreenHome:
		return m.updateHome(msg)
	case model.ScreenOrder:
		return m.updateOrder(msg)
	case model.ScreenConfirmation:
		return m.updateConfirmation(msg)
	case model.ScreenTracking:
		return m.updateTracking(msg)
	case model.ScreenReady:
		return m.updateReady(msg)
	}
	return m, nil
}

func (m Model) quit() (tea.Model, tea.Cmd) {
	m.capture.Close()
	m.log.Info("quit", map[string]any{"screen": string(m.ctl.Screen())})
	return m, tea.Quit
}

func (m Model) updateLanguage(msg tea.Msg) (tea.Model, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok {
		switch k.String() {
		case "q", "esc":
			return m.quit()
		case "enter":
			it, ok := m.languages.SelectedItem().(languageItem)
			if !ok {
				return m, nil
			}
			if err := m.ctl.SelectLanguage(it.lang); err != nil {
				m.log.Error("select_language", err, nil)
				return m, nil
			}
			m.log.Info("language_selected", map[string]any{"language": string(it.lang)})
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.languages, cmd = m.languages.Update(msg)
	return m, cmd
}

func (m Model) updateHome(msg tea.Msg) (tea.Model, tea.Cmd) {
	k, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch k.String() {
	case "q", "esc":
		return m.quit()
	case "enter", " ":
		if err := m.ctl.StartOrder(); err != nil {
			m.log.Error("start_order", err, nil)
			return m, nil
		}
		m.capture.Close()
		m.capture = voice.NewCapture(m.engine, m.ctl.Language().Locale())
		m.notice = ""
		m.dictation.Reset()
		m.log.Info("order_started", map[string]any{
			"language": string(m.ctl.Language()),
			"locale":   m.capture.Locale().String(),
			"speech":   m.capture.Supported(),
		})
	}
	return m, nil
}

func (m Model) updateOrder(msg tea.Msg) (tea.Model, tea.Cmd) {
	k, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	if m.capture.Listening() {
		return m.updateListening(k)
	}
	switch k.String() {
	case "q", "esc":
		return m.quit()
	}
	if !m.capture.Supported() || m.processing {
		return m, nil
	}
	switch k.String() {
	case " ":
		m.capture.Start()
		if e := m.capture.Err(); e != "" {
			m.log.Error("speech_failed", errors.New(e), map[string]any{"reason": m.capture.ErrCode()})
			return m, nil
		}
		m.log.Info("speech_started", nil)
		if m.keyboard != nil && m.capture.Listening() {
			m.dictation.Reset()
			cmd := m.dictation.Focus()
			return m, cmd
		}
	case "enter":
		if strings.TrimSpace(m.capture.Transcript()) == "" {
			return m, nil
		}
		m.processing = true
		m.notice = ""
		return m, tea.Batch(m.spinner.Tick, m.placeOrder())
	}
	return m, nil
}

// updateListening routes keys while a recognition session is open. With the
// keyboard engine the customer types the phrase; enter finalizes it.
func (m Model) updateListening(k tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.keyboard == nil {
		switch k.String() {
		case "esc", " ", "enter":
			m.capture.Stop()
		}
		return m, nil
	}
	switch k.String() {
	case "enter":
		_ = m.keyboard.Dictate(m.dictation.Value())
		_ = m.keyboard.Commit()
		m.capture.Stop()
		m.dictation.Reset()
		m.dictation.Blur()
		m.log.Info("speech_captured", map[string]any{"transcript": m.capture.Transcript()})
		return m, nil
	case "esc":
		m.capture.Close()
		m.dictation.Reset()
		m.dictation.Blur()
		m.log.Info("speech_aborted", nil)
		return m, nil
	}
	var cmd tea.Cmd
	before := m.dictation.Value()
	m.dictation, cmd = m.dictation.Update(k)
	if v := m.dictation.Value(); v != before {
		_ = m.keyboard.Dictate(v)
	}
	return m, cmd
}

// placeOrder simulates the order request: after the processing delay the
// factory builds the order off the event loop and reports back.
func (m Model) placeOrder() tea.Cmd {
	transcript, lang, f := m.capture.Transcript(), m.ctl.Language(), m.factory
	return after(m.processingDelay, func() tea.Msg {
		o, err := f.New(transcript, lang)
		return orderPlacedMsg{order: o, err: err}
	})
}

func (m Model) orderPlaced(msg orderPlacedMsg) (tea.Model, tea.Cmd) {
	m.processing = false
	if m.ctl.Screen() != model.ScreenOrder {
		return m, nil
	}
	if msg.err != nil {
		m.notice = msg.err.Error()
		m.log.Error("order_failed", msg.err, nil)
		return m, nil
	}
	if err := m.ctl.CompleteOrder(msg.order); err != nil {
		m.notice = err.Error()
		m.log.Error("order_failed", err, nil)
		return m, nil
	}
	m.capture.Close()
	m.log.Info("order_placed", map[string]any{
		"order_id": msg.order.ID,
		"items":    msg.order.Items,
		"total":    msg.order.Total,
		"language": string(msg.order.Language),
	})
	return m, nil
}

func (m Model) updateConfirmation(msg tea.Msg) (tea.Model, tea.Cmd) {
	k, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch k.String() {
	case "q", "esc":
		return m.quit()
	case "enter", "t":
		if err := m.ctl.TrackOrder(); err != nil {
			m.log.Error("track_order", err, nil)
			return m, nil
		}
		m.progress = &status.Progress{}
		id := m.ctl.Order().ID
		m.log.Info("tracking_started", map[string]any{"order_id": id})
		return m, m.scheduleStatus(id, 0)
	}
	return m, nil
}

func (m Model) scheduleStatus(orderID string, step int) tea.Cmd {
	st, ok := m.table.Step(step)
	if !ok {
		return nil
	}
	msg := statusMsg{orderID: orderID, step: step, status: st.Status}
	return after(st.After, func() tea.Msg { return msg })
}

// statusChanged applies one simulated status. Messages for an order that is
// no longer being tracked are dropped.
func (m Model) statusChanged(msg statusMsg) (tea.Model, tea.Cmd) {
	o := m.ctl.Order()
	if m.ctl.Screen() != model.ScreenTracking || o == nil || o.ID != msg.orderID || m.progress == nil {
		m.log.Debug("stale_status", map[string]any{"order_id": msg.orderID, "status": string(msg.status)})
		return m, nil
	}
	if err := m.progress.Advance(msg.status); err != nil {
		m.log.Error("status_rejected", err, map[string]any{"order_id": msg.orderID})
		return m, nil
	}
	_ = m.ctl.SetStatus(msg.status)
	m.log.Info("status_changed", map[string]any{"order_id": msg.orderID, "status": string(msg.status)})
	if msg.status == model.StatusReady {
		id := msg.orderID
		return m, after(m.readyHold, func() tea.Msg { return readyMsg{orderID: id} })
	}
	return m, m.scheduleStatus(msg.orderID, msg.step+1)
}

func (m Model) orderReady(msg readyMsg) (tea.Model, tea.Cmd) {
	o := m.ctl.Order()
	if m.ctl.Screen() != model.ScreenTracking || o == nil || o.ID != msg.orderID ||
		m.progress == nil || !m.progress.Done() {
		m.log.Debug("stale_ready", map[string]any{"order_id": msg.orderID})
		return m, nil
	}
	if err := m.ctl.OrderReady(); err != nil {
		m.log.Error("order_ready", err, nil)
		return m, nil
	}
	m.log.Info("order_ready", map[string]any{"order_id": msg.orderID})
	return m, nil
}

func (m Model) updateTracking(msg tea.Msg) (tea.Model, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok && (k.String() == "q" || k.String() == "esc") {
		return m.quit()
	}
	return m, nil
}

func (m Model) updateReady(msg tea.Msg) (tea.Model, tea.Cmd) {
	k, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch k.String() {
	case "q", "esc":
		return m.quit()
	case "enter", "n":
		if err := m.ctl.NewOrder(); err != nil {
			m.log.Error("new_order", err, nil)
			return m, nil
		}
		m.progress = nil
		m.log.Info("new_order", nil)
	}
	return m, nil
}

// after delivers msg once d has passed; zero delays skip the timer.
func after(d time.Duration, msg func() tea.Msg) tea.Cmd {
	if d <= 0 {
		return msg
	}
	return tea.Tick(d, func(time.Time) tea.Msg { return msg() })
}
