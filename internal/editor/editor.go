// Package editor applies user edits to a bill while keeping its invariants:
// unique ids, assignments that only reference existing items and people, and
// no assignment with an empty person set.
package editor

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/mmynk/billsplit/internal/calculator"
	"github.com/mmynk/billsplit/internal/models"
)

// DefaultBillName is the name given to new bills.
const DefaultBillName = "New Bill"

var (
	ErrItemNotFound       = errors.New("line item not found")
	ErrPersonNotFound     = errors.New("person not found")
	ErrAdjustmentNotFound = errors.New("adjustment not found")
	ErrInvalidInput       = errors.New("invalid input")
)

// validate is shared; validator.Validate caches struct metadata and is safe
// for concurrent use.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	if err := v.RegisterValidation("finite", func(fl validator.FieldLevel) bool {
		f := fl.Field().Float()
		return !math.IsNaN(f) && !math.IsInf(f, 0)
	}); err != nil {
		panic(fmt.Errorf("register finite validation: %w", err))
	}
	return v
}

// Editor edits one bill. It is not safe for concurrent use.
type Editor struct {
	bill  *models.Bill
	now   func() time.Time
	newID func() string
}

// Option configures an Editor.
type Option func(*Editor)

// WithClock sets the time source used for timestamps.
func WithClock(now func() time.Time) Option {
	return func(e *Editor) { e.now = now }
}

// WithIDGenerator sets the function used to create ids for new entities.
func WithIDGenerator(newID func() string) Option {
	return func(e *Editor) { e.newID = newID }
}

// New returns an editor working on a copy of bill. A nil bill starts a new,
// empty one.
func New(bill *models.Bill, opts ...Option) *Editor {
	e := &Editor{
		now:   time.Now,
		newID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(e)
	}
	if bill == nil {
		e.bill = e.emptyBill()
	} else {
		e.bill = bill.Clone()
	}
	return e
}

// Bill returns a copy of the current bill.
func (e *Editor) Bill() *models.Bill {
	return e.bill.Clone()
}

// Summary computes the summary of the current bill.
func (e *Editor) Summary() models.BillSummary {
	return calculator.ComputeSummary(*e.bill)
}

// Rename changes the bill's name.
func (e *Editor) Rename(name string) error {
	if err := validate.Var(name, "required"); err != nil {
		return invalid("name", err)
	}
	e.bill.Name = name
	e.touch()
	return nil
}

// Reset replaces the bill with a new, empty one.
func (e *Editor) Reset() {
	e.bill = e.emptyBill()
}

func (e *Editor) emptyBill() *models.Bill {
	now := e.now().UTC()
	return &models.Bill{
		ID:          e.newID(),
		Name:        DefaultBillName,
		Items:       []models.LineItem{},
		People:      []models.Person{},
		Adjustments: []models.Adjustment{},
		Assignments: []models.Assignment{},
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func (e *Editor) touch() {
	e.bill.UpdatedAt = e.now().UTC()
}

var errTotalsOverflow = errors.New("bill totals are not finite numbers")

// commit replaces the bill with next if its totals stay finite.
func (e *Editor) commit(next *models.Bill) error {
	if !calculator.IsFinite(calculator.ComputeSummary(*next)) {
		return invalid("totals", errTotalsOverflow)
	}
	e.bill = next
	e.touch()
	return nil
}

func invalid(what string, err error) error {
	return fmt.Errorf("%w: %s: %v", ErrInvalidInput, what, err)
}
