package models

// BillSummary is the calculated view of a bill. It is derived on demand and
// never stored.
type BillSummary struct {
	// Subtotal is the sum of every item total before adjustments.
	Subtotal float64 `json:"subtotal"`

	// AdjustmentsTotal is the sum of every adjustment amount.
	AdjustmentsTotal float64 `json:"adjustmentsTotal"`

	// GrandTotal is Subtotal + AdjustmentsTotal.
	GrandTotal float64 `json:"grandTotal"`

	// PersonTotals has one entry per person, in bill order.
	PersonTotals []PersonTotal `json:"personTotals"`
}

// PersonTotal represents one person's share of a bill.
type PersonTotal struct {
	PersonID   string `json:"personId"`
	PersonName string `json:"personName"`

	// Subtotal is the sum of this person's item shares.
	Subtotal float64 `json:"subtotal"`

	// AdjustmentTotal is this person's prorated share of all adjustments.
	// Calculated as: Σ (subtotal / bill_subtotal) × adjustment_amount
	AdjustmentTotal float64 `json:"adjustmentTotal"`

	// Total is Subtotal + AdjustmentTotal.
	Total float64 `json:"total"`

	ItemBreakdown       []ItemShare       `json:"itemBreakdown"`
	AdjustmentBreakdown []AdjustmentShare `json:"adjustmentBreakdown"`
}

// ItemShare is a person's share of one item.
type ItemShare struct {
	ItemID   string  `json:"itemId"`
	ItemName string  `json:"itemName"`
	Share    float64 `json:"share"`
}

// AdjustmentShare is a person's share of one adjustment.
type AdjustmentShare struct {
	AdjustmentID          string  `json:"adjustmentId"`
	AdjustmentDescription string  `json:"adjustmentDescription"`
	Share                 float64 `json:"share"`
}

// Reconciliation compares the person totals of a summary against its grand
// total.
type Reconciliation struct {
	PersonTotalsSum float64 `json:"personTotalsSum"`
	GrandTotal      float64 `json:"grandTotal"`

	// Difference is GrandTotal - PersonTotalsSum.
	Difference float64 `json:"difference"`

	// Balanced is true when |Difference| is within the epsilon used.
	Balanced bool `json:"balanced"`

	// UnassignedItemIDs lists items nobody has been assigned to.
	UnassignedItemIDs []string `json:"unassignedItemIds"`

	// UnallocatedAdjustments is set when adjustments exist but the subtotal
	// is zero, so nobody can be charged for them.
	UnallocatedAdjustments bool `json:"unallocatedAdjustments"`

	// Warning is a user-facing message; empty when balanced.
	Warning string `json:"warning,omitempty"`
}
