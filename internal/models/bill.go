package models

import (
	"slices"
	"time"
)

// AdjustmentType labels an adjustment. It is cosmetic and never changes the math.
type AdjustmentType string

const (
	AdjustmentFee AdjustmentType = "fee"
	AdjustmentTip AdjustmentType = "tip"
	AdjustmentTax AdjustmentType = "tax"
)

// Bill represents one bill being split among a group of people.
type Bill struct {
	// ID is the unique identifier for the bill (UUID format).
	ID string `json:"id"`

	// Name is the human-readable name for the bill. New bills start as "New Bill".
	Name string `json:"name" validate:"required"`

	// Items are the line items in the order they were added.
	Items []LineItem `json:"items"`

	// People are the participants in the order they were added.
	// Summaries list person totals in this order.
	People []Person `json:"people"`

	// Adjustments are fees, tips and taxes applied on top of the subtotal.
	Adjustments []Adjustment `json:"adjustments"`

	// Assignments map items to the people sharing them.
	// At most one assignment exists per item.
	Assignments []Assignment `json:"assignments"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// LineItem represents a single line on the bill.
type LineItem struct {
	// ID is the unique identifier for the item within the bill.
	ID string `json:"id"`

	// Name is what was bought (e.g., "Pizza", "Beer").
	Name string `json:"name" validate:"required"`

	// Price is the unit price.
	Price float64 `json:"price" validate:"finite,gte=0"`

	// Quantity is the number of units.
	Quantity int `json:"quantity" validate:"gte=1"`
}

// Total returns price × quantity.
func (i LineItem) Total() float64 {
	return i.Price * float64(i.Quantity)
}

// Person represents one participant.
type Person struct {
	ID   string `json:"id"`
	Name string `json:"name" validate:"required"`

	// Color is a hex display colour, e.g. "#ef4444".
	Color string `json:"color" validate:"omitempty,hexcolor"`
}

// Adjustment represents a fee, tip or tax.
type Adjustment struct {
	ID          string         `json:"id"`
	Type        AdjustmentType `json:"type" validate:"oneof=fee tip tax"`
	Description string         `json:"description"`

	// Value is a fixed amount, or a percentage of the bill subtotal when
	// IsPercentage is set (10 means 10%).
	Value        float64 `json:"value" validate:"finite"`
	IsPercentage bool    `json:"isPercentage"`
}

// Assignment records which people split one item equally.
type Assignment struct {
	ItemID    string   `json:"itemId"`
	PersonIDs []string `json:"personIds"`
}

// Has reports whether personID shares the item.
func (a Assignment) Has(personID string) bool {
	return slices.Contains(a.PersonIDs, personID)
}

// Clone returns a deep copy of the bill so it can be edited without touching
// the original snapshot.
func (b *Bill) Clone() *Bill {
	if b == nil {
		return nil
	}
	out := *b
	out.Items = slices.Clone(b.Items)
	out.People = slices.Clone(b.People)
	out.Adjustments = slices.Clone(b.Adjustments)
	out.Assignments = make([]Assignment, len(b.Assignments))
	for i, a := range b.Assignments {
		out.Assignments[i] = Assignment{ItemID: a.ItemID, PersonIDs: slices.Clone(a.PersonIDs)}
	}
	return &out
}
