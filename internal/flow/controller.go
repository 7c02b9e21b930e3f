// Package flow is the kiosk's screen state machine. It owns the current
// screen, the session language and the current order, and changes them only
// through the transition table below.
package flow

import (
	"errors"
	"fmt"

	"github.com/idilsaglam/brewbuddy/internal/model"
)

var (
	ErrInvalidTransition = errors.New("invalid transition")
	ErrNoOrder           = errors.New("no current order")
	ErrUnknownLanguage   = errors.New("unknown language")
)

// Trigger is a user action or timer completion that may move the flow.
type Trigger string

const (
	TriggerSelectLanguage Trigger = "select-language"
	TriggerStartOrder     Trigger = "start-order"
	TriggerCompleteOrder  Trigger = "complete-order"
	TriggerTrackOrder     Trigger = "track-order"
	TriggerOrderReady     Trigger = "order-ready"
	TriggerNewOrder       Trigger = "new-order"
)

var transitions = map[model.Screen]map[Trigger]model.Screen{
	model.ScreenLanguage:     {TriggerSelectLanguage: model.ScreenHome},
	model.ScreenHome:         {TriggerStartOrder: model.ScreenOrder},
	model.ScreenOrder:        {TriggerCompleteOrder: model.ScreenConfirmation},
	model.ScreenConfirmation: {TriggerTrackOrder: model.ScreenTracking},
	model.ScreenTracking:     {TriggerOrderReady: model.ScreenReady},
	model.ScreenReady:        {TriggerNewOrder: model.ScreenHome},
}

// Controller is not safe for concurrent use; the kiosk drives it from a
// single event loop.
type Controller struct {
	screen   model.Screen
	language model.Language
	order    *model.Order
}

// New returns a controller on the language screen with the default language.
func New() *Controller {
	return &Controller{screen: model.ScreenLanguage, language: model.DefaultLanguage}
}

func (c *Controller) Screen() model.Screen     { return c.screen }
func (c *Controller) Language() model.Language { return c.language }

// Order returns the current order, nil before confirmation and after a new order.
func (c *Controller) Order() *model.Order { return c.order }

// Next reports where trigger would lead from the current screen.
func (c *Controller) Next(t Trigger) (model.Screen, bool) {
	next, ok := transitions[c.screen][t]
	return next, ok
}

func (c *Controller) fire(t Trigger) error {
	next, ok := c.Next(t)
	if !ok {
		return fmt.Errorf("%w: %s on %s", ErrInvalidTransition, t, c.screen)
	}
	if next.NeedsOrder() && c.order == nil {
		return fmt.Errorf("%w: cannot enter %s", ErrNoOrder, next)
	}
	c.screen = next
	return nil
}

// Fire applies a trigger that carries no payload.
func (c *Controller) Fire(t Trigger) error {
	switch t {
	case TriggerSelectLanguage, TriggerCompleteOrder:
		return fmt.Errorf("%w: %s needs a payload", ErrInvalidTransition, t)
	case TriggerNewOrder:
		return c.NewOrder()
	}
	return c.fire(t)
}

func (c *Controller) SelectLanguage(lang model.Language) error {
	if !lang.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownLanguage, lang)
	}
	if err := c.fire(TriggerSelectLanguage); err != nil {
		return err
	}
	c.language = lang
	return nil
}

func (c *Controller) StartOrder() error { return c.fire(TriggerStartOrder) }

// CompleteOrder makes o the current order and shows its confirmation.
func (c *Controller) CompleteOrder(o *model.Order) error {
	if o == nil {
		return ErrNoOrder
	}
	if _, ok := c.Next(TriggerCompleteOrder); !ok {
		return fmt.Errorf("%w: %s on %s", ErrInvalidTransition, TriggerCompleteOrder, c.screen)
	}
	c.order = o
	return c.fire(TriggerCompleteOrder)
}

func (c *Controller) TrackOrder() error { return c.fire(TriggerTrackOrder) }

// OrderReady is fired once the status simulation reports ready.
func (c *Controller) OrderReady() error {
	if err := c.fire(TriggerOrderReady); err != nil {
		return err
	}
	c.order.Status = model.StatusReady
	return nil
}

// NewOrder drops the current order and returns home.
func (c *Controller) NewOrder() error {
	if err := c.fire(TriggerNewOrder); err != nil {
		return err
	}
	c.order = nil
	return nil
}

// SetStatus records a simulated status on the current order while tracking.
func (c *Controller) SetStatus(s model.Status) error {
	if c.order == nil {
		return ErrNoOrder
	}
	c.order.Status = s
	return nil
}
