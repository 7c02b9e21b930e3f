// Package order turns a captured transcript into a simulated kiosk order.
package order

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/samber/lo"

	"github.com/idilsaglam/brewbuddy/internal/model"
)

const (
	idAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	idLength   = 9

	MinTotal = 5
	MaxTotal = 24
)

var ErrEmptyTranscript = errors.New("empty transcript")

// ParseItems splits a transcript on commas, trims every part and drops the
// empty ones. Duplicates are kept.
func ParseItems(transcript string) []string {
	parts := lo.Map(strings.Split(transcript, ","), func(s string, _ int) string {
		return strings.TrimSpace(s)
	})
	return lo.Compact(parts)
}

// Factory creates orders. The zero value is usable and draws from the
// global random source and the wall clock.
type Factory struct {
	Rand  *rand.Rand
	Now   func() time.Time
	NewID func() (string, error)
}

// New builds a pending order for transcript. A transcript that is not blank
// always yields exactly one order, even when no item survives parsing.
func (f *Factory) New(transcript string, lang model.Language) (*model.Order, error) {
	if strings.TrimSpace(transcript) == "" {
		return nil, ErrEmptyTranscript
	}
	id, err := f.id()
	if err != nil {
		return nil, fmt.Errorf("order id: %w", err)
	}
	o := &model.Order{
		ID:        id,
		Items:     ParseItems(transcript),
		Total:     f.total(),
		Status:    model.StatusPending,
		CreatedAt: f.now(),
		Language:  lang,
	}
	if err := Validate(o); err != nil {
		return nil, err
	}
	return o, nil
}

func (f *Factory) id() (string, error) {
	if f.NewID != nil {
		return f.NewID()
	}
	return gonanoid.Generate(idAlphabet, idLength)
}

func (f *Factory) total() int {
	n := MaxTotal - MinTotal + 1
	if f.Rand != nil {
		return f.Rand.IntN(n) + MinTotal
	}
	return rand.IntN(n) + MinTotal
}

func (f *Factory) now() time.Time {
	if f.Now != nil {
		return f.Now()
	}
	return time.Now()
}
