// Package status scripts the simulated preparation of an order: a fixed
// table of statuses, each shown after a delay. There is no real status
// source behind it.
package status

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/idilsaglam/brewbuddy/internal/model"
)

var ErrOutOfOrder = errors.New("status out of order")

// Step shows Status After the previous step (or after tracking starts).
type Step struct {
	Status model.Status
	After  time.Duration
}

// Table is the scripted progression.
type Table []Step

// DefaultTable is the kiosk's standard pacing: pending after 1s, then 5s per step.
func DefaultTable() Table {
	return NewTable(time.Second, 5*time.Second, 5*time.Second)
}

func NewTable(pending, preparing, ready time.Duration) Table {
	return Table{
		{Status: model.StatusPending, After: pending},
		{Status: model.StatusPreparing, After: preparing},
		{Status: model.StatusReady, After: ready},
	}
}

// Validate requires every status exactly once, in rank order, with
// non-negative delays.
func (t Table) Validate() error {
	want := model.Statuses()
	if len(t) != len(want) {
		return fmt.Errorf("%w: %d steps, want %d", ErrOutOfOrder, len(t), len(want))
	}
	for i, st := range t {
		if st.Status != want[i] {
			return fmt.Errorf("%w: step %d is %s, want %s", ErrOutOfOrder, i, st.Status, want[i])
		}
		if st.After < 0 {
			return fmt.Errorf("step %d: negative delay %s", i, st.After)
		}
	}
	return nil
}

// Step returns step i and whether it exists.
func (t Table) Step(i int) (Step, bool) {
	if i < 0 || i >= len(t) {
		return Step{}, false
	}
	return t[i], true
}

// Duration is the time from start until the last step.
func (t Table) Duration() time.Duration {
	var d time.Duration
	for _, st := range t {
		d += st.After
	}
	return d
}

// Update is one simulated status change for an order.
type Update struct {
	OrderID string
	Status  model.Status
}

// Run walks the table for orderID on the caller's goroutine, calling fn for
// every step. It returns ctx.Err() if the context ends first.
func (t Table) Run(ctx context.Context, orderID string, fn func(Update)) error {
	if err := t.Validate(); err != nil {
		return err
	}
	var p Progress
	for _, st := range t {
		timer := time.NewTimer(st.After)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
		if err := p.Advance(st.Status); err != nil {
			return err
		}
		fn(Update{OrderID: orderID, Status: st.Status})
	}
	return nil
}

// Progress guards the order of observed statuses. The zero value has seen
// nothing yet.
type Progress struct {
	visited []model.Status
}

// Advance accepts s only if it is the next status in sequence.
func (p *Progress) Advance(s model.Status) error {
	if s.Rank() != len(p.visited) {
		return fmt.Errorf("%w: got %s after %v", ErrOutOfOrder, s, p.visited)
	}
	p.visited = append(p.visited, s)
	return nil
}

// Current is the last accepted status, pending before any.
func (p *Progress) Current() model.Status {
	if len(p.visited) == 0 {
		return model.StatusPending
	}
	return p.visited[len(p.visited)-1]
}

func (p *Progress) Visited() []model.Status {
	return append([]model.Status(nil), p.visited...)
}

func (p *Progress) Done() bool { return len(p.visited) == len(model.Statuses()) }

// Fraction is the share of the progression reached: 1/3, 2/3, 1.
func (p *Progress) Fraction() (done, total int) {
	total = len(model.Statuses())
	done = p.Current().Rank() + 1
	return done, total
}
