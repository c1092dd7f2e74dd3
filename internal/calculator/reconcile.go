package calculator

import (
	"math"

	"github.com/mmynk/billsplit/internal/models"
)

// DefaultEpsilon is the tolerance, in currency units, used when comparing the
// sum of person totals with the grand total.
const DefaultEpsilon = 0.01

const (
	warnUnassigned  = "Person totals do not add up to the bill total. Some items may be unassigned."
	warnUnallocated = "Adjustments cannot be split while the subtotal is zero."
)

// Reconcile checks that the person totals of summary add up to its grand
// total. A mismatch is expected while items are unassigned and is reported,
// not corrected. A non-positive epsilon falls back to DefaultEpsilon.
func Reconcile(bill models.Bill, summary models.BillSummary, epsilon float64) models.Reconciliation {
	if epsilon <= 0 {
		epsilon = DefaultEpsilon
	}

	var sum float64
	for _, pt := range summary.PersonTotals {
		sum += pt.Total
	}

	assignments := indexAssignments(bill.Assignments)
	unassigned := []string{}
	for _, item := range bill.Items {
		if len(assignments[item.ID].PersonIDs) == 0 {
			unassigned = append(unassigned, item.ID)
		}
	}

	diff := summary.GrandTotal - sum
	rec := models.Reconciliation{
		PersonTotalsSum:        sum,
		GrandTotal:             summary.GrandTotal,
		Difference:             diff,
		Balanced:               math.Abs(diff) <= epsilon,
		UnassignedItemIDs:      unassigned,
		UnallocatedAdjustments: summary.Subtotal == 0 && summary.AdjustmentsTotal != 0,
	}

	switch {
	case rec.Balanced:
	case rec.UnallocatedAdjustments && len(unassigned) == 0:
		rec.Warning = warnUnallocated
	default:
		rec.Warning = warnUnassigned
	}
	return rec
}
