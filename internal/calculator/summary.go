// Package calculator turns a bill document into per-person totals.
package calculator

import (
	"math"

	"github.com/mmynk/billsplit/internal/models"
)

// ItemTotal returns price × quantity for an item.
func ItemTotal(item models.LineItem) float64 {
	return item.Total()
}

// AdjustmentAmount returns the amount an adjustment adds to the bill.
// Percentages apply to the bill subtotal.
func AdjustmentAmount(adj models.Adjustment, subtotal float64) float64 {
	if adj.IsPercentage {
		return subtotal * adj.Value / 100
	}
	return adj.Value
}

// ComputeSummary computes the bill totals and how much each person owes.
// It never fails: empty bills produce zero totals.
//
// Algorithm:
//   - subtotal = Σ price × quantity
//   - each item total is split equally among the people assigned to it
//   - each adjustment is prorated by person_subtotal / bill_subtotal
//
// A person with no items therefore owes nothing, adjustments included.
// When the subtotal is zero no adjustment is allocated to anyone.
func ComputeSummary(bill models.Bill) models.BillSummary {
	var subtotal float64
	for _, item := range bill.Items {
		subtotal += ItemTotal(item)
	}

	var adjustmentsTotal float64
	for _, adj := range bill.Adjustments {
		adjustmentsTotal += AdjustmentAmount(adj, subtotal)
	}

	assignments := indexAssignments(bill.Assignments)

	personTotals := make([]models.PersonTotal, len(bill.People))
	for i, person := range bill.People {
		pt := models.PersonTotal{
			PersonID:            person.ID,
			PersonName:          person.Name,
			ItemBreakdown:       []models.ItemShare{},
			AdjustmentBreakdown: []models.AdjustmentShare{},
		}

		for _, item := range bill.Items {
			assignment, ok := assignments[item.ID]
			if !ok || !assignment.Has(person.ID) {
				continue
			}
			share := ItemTotal(item) / float64(len(assignment.PersonIDs))
			pt.Subtotal += share
			pt.ItemBreakdown = append(pt.ItemBreakdown, models.ItemShare{
				ItemID:   item.ID,
				ItemName: item.Name,
				Share:    share,
			})
		}

		if subtotal > 0 {
			for _, adj := range bill.Adjustments {
				share := (pt.Subtotal / subtotal) * AdjustmentAmount(adj, subtotal)
				pt.AdjustmentTotal += share
				pt.AdjustmentBreakdown = append(pt.AdjustmentBreakdown, models.AdjustmentShare{
					AdjustmentID:          adj.ID,
					AdjustmentDescription: adj.Description,
					Share:                 share,
				})
			}
		}

		pt.Total = pt.Subtotal + pt.AdjustmentTotal
		personTotals[i] = pt
	}

	return models.BillSummary{
		Subtotal:         subtotal,
		AdjustmentsTotal: adjustmentsTotal,
		GrandTotal:       subtotal + adjustmentsTotal,
		PersonTotals:     personTotals,
	}
}

// IsFinite reports whether every amount in summary is a finite number.
// Totals overflow to ±Inf when prices or adjustments are close to the
// float64 limit.
func IsFinite(summary models.BillSummary) bool {
	amounts := []float64{summary.Subtotal, summary.AdjustmentsTotal, summary.GrandTotal}
	for _, pt := range summary.PersonTotals {
		amounts = append(amounts, pt.Subtotal, pt.AdjustmentTotal, pt.Total)
		for _, s := range pt.ItemBreakdown {
			amounts = append(amounts, s.Share)
		}
		for _, s := range pt.AdjustmentBreakdown {
			amounts = append(amounts, s.Share)
		}
	}
	for _, v := range amounts {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// indexAssignments maps item IDs to their assignment. The first assignment
// for an item wins. An assignment without people contains nobody, so its
// item stays unassigned.
func indexAssignments(assignments []models.Assignment) map[string]models.Assignment {
	index := make(map[string]models.Assignment, len(assignments))
	for _, a := range assignments {
		if _, exists := index[a.ItemID]; exists {
			continue
		}
		index[a.ItemID] = a
	}
	return index
}
