package calculator

import (
	"math"
	"reflect"
	"testing"

	"github.com/mmynk/billsplit/internal/models"
)

const tolerance = 1e-9

func approx(a, b float64) bool {
	return math.Abs(a-b) <= tolerance
}

func people(names ...string) []models.Person {
	out := make([]models.Person, len(names))
	for i, n := range names {
		out[i] = models.Person{ID: n, Name: n}
	}
	return out
}

func TestComputeSummary(t *testing.T) {
	tests := []struct {
		name         string
		bill         models.Bill
		validateFunc func(t *testing.T, s models.BillSummary)
	}{
		{
			name: "pizza with ten percent tip split two ways",
			bill: models.Bill{
				Items:       []models.LineItem{{ID: "pizza", Name: "Pizza", Price: 20, Quantity: 1}},
				People:      people("alice", "bob"),
				Adjustments: []models.Adjustment{{ID: "tip", Type: models.AdjustmentTip, Description: "Tip", Value: 10, IsPercentage: true}},
				Assignments: []models.Assignment{{ItemID: "pizza", PersonIDs: []string{"alice", "bob"}}},
			},
			validateFunc: func(t *testing.T, s models.BillSummary) {
				// subtotal = 20, tip = 2, grand total = 22
				// each: subtotal 10, adjustments (10/20) * 2 = 1, total 11
				if s.Subtotal != 20 || s.AdjustmentsTotal != 2 || s.GrandTotal != 22 {
					t.Fatalf("totals = %v/%v/%v, want 20/2/22", s.Subtotal, s.AdjustmentsTotal, s.GrandTotal)
				}
				for _, pt := range s.PersonTotals {
					if pt.Subtotal != 10 {
						t.Errorf("%s subtotal = %v, want 10", pt.PersonID, pt.Subtotal)
					}
					if pt.AdjustmentTotal != 1 {
						t.Errorf("%s adjustment total = %v, want 1", pt.PersonID, pt.AdjustmentTotal)
					}
					if pt.Total != 11 {
						t.Errorf("%s total = %v, want 11", pt.PersonID, pt.Total)
					}
					if len(pt.ItemBreakdown) != 1 || pt.ItemBreakdown[0].ItemName != "Pizza" || pt.ItemBreakdown[0].Share != 10 {
						t.Errorf("%s item breakdown = %+v", pt.PersonID, pt.ItemBreakdown)
					}
					if len(pt.AdjustmentBreakdown) != 1 || pt.AdjustmentBreakdown[0].AdjustmentDescription != "Tip" {
						t.Errorf("%s adjustment breakdown = %+v", pt.PersonID, pt.AdjustmentBreakdown)
					}
				}
			},
		},
		{
			name: "quantity multiplies price",
			bill: models.Bill{
				Items:       []models.LineItem{{ID: "beer", Name: "Beer", Price: 6.5, Quantity: 4}},
				People:      people("alice"),
				Assignments: []models.Assignment{{ItemID: "beer", PersonIDs: []string{"alice"}}},
			},
			validateFunc: func(t *testing.T, s models.BillSummary) {
				if s.Subtotal != 26 {
					t.Errorf("subtotal = %v, want 26", s.Subtotal)
				}
				if s.PersonTotals[0].Total != 26 {
					t.Errorf("alice total = %v, want 26", s.PersonTotals[0].Total)
				}
			},
		},
		{
			name: "fixed and percentage adjustments prorated by item share",
			bill: models.Bill{
				Items: []models.LineItem{
					{ID: "steak", Name: "Steak", Price: 30, Quantity: 1},
					{ID: "salad", Name: "Salad", Price: 10, Quantity: 1},
				},
				People: people("alice", "bob"),
				Adjustments: []models.Adjustment{
					{ID: "tax", Type: models.AdjustmentTax, Description: "Tax", Value: 10, IsPercentage: true},
					{ID: "fee", Type: models.AdjustmentFee, Description: "Service", Value: 8},
				},
				Assignments: []models.Assignment{
					{ItemID: "steak", PersonIDs: []string{"alice"}},
					{ItemID: "salad", PersonIDs: []string{"bob"}},
				},
			},
			validateFunc: func(t *testing.T, s models.BillSummary) {
				// tax = 4, fee = 8; alice owns 3/4, bob 1/4
				if !approx(s.AdjustmentsTotal, 12) {
					t.Errorf("adjustments total = %v, want 12", s.AdjustmentsTotal)
				}
				alice, bob := s.PersonTotals[0], s.PersonTotals[1]
				if !approx(alice.AdjustmentTotal, 9) || !approx(alice.Total, 39) {
					t.Errorf("alice = %v/%v, want 9/39", alice.AdjustmentTotal, alice.Total)
				}
				if !approx(bob.AdjustmentTotal, 3) || !approx(bob.Total, 13) {
					t.Errorf("bob = %v/%v, want 3/13", bob.AdjustmentTotal, bob.Total)
				}
				if !approx(alice.AdjustmentBreakdown[0].Share, 3) || !approx(alice.AdjustmentBreakdown[1].Share, 6) {
					t.Errorf("alice adjustment breakdown = %+v", alice.AdjustmentBreakdown)
				}
			},
		},
		{
			name: "person without items gets empty breakdowns and zero adjustment shares",
			bill: models.Bill{
				Items:       []models.LineItem{{ID: "soup", Name: "Soup", Price: 12, Quantity: 1}},
				People:      people("alice", "carol"),
				Adjustments: []models.Adjustment{{ID: "fee", Type: models.AdjustmentFee, Description: "Delivery", Value: 5}},
				Assignments: []models.Assignment{{ItemID: "soup", PersonIDs: []string{"alice"}}},
			},
			validateFunc: func(t *testing.T, s models.BillSummary) {
				carol := s.PersonTotals[1]
				if carol.Total != 0 || carol.Subtotal != 0 || carol.AdjustmentTotal != 0 {
					t.Errorf("carol = %+v, want zero totals", carol)
				}
				if carol.ItemBreakdown == nil || len(carol.ItemBreakdown) != 0 {
					t.Errorf("carol item breakdown = %#v, want empty slice", carol.ItemBreakdown)
				}
				// subtotal > 0, so one entry per adjustment even when the share is zero
				if len(carol.AdjustmentBreakdown) != 1 || carol.AdjustmentBreakdown[0].Share != 0 {
					t.Errorf("carol adjustment breakdown = %+v", carol.AdjustmentBreakdown)
				}
				if s.PersonTotals[0].Total != 17 {
					t.Errorf("alice total = %v, want 17", s.PersonTotals[0].Total)
				}
			},
		},
		{
			name: "zero subtotal skips adjustment shares",
			bill: models.Bill{
				People:      people("alice", "bob"),
				Adjustments: []models.Adjustment{{ID: "fee", Type: models.AdjustmentFee, Description: "Cover", Value: 15}},
			},
			validateFunc: func(t *testing.T, s models.BillSummary) {
				if s.AdjustmentsTotal != 15 || s.GrandTotal != 15 {
					t.Errorf("adjustments/grand = %v/%v, want 15/15", s.AdjustmentsTotal, s.GrandTotal)
				}
				for _, pt := range s.PersonTotals {
					if pt.AdjustmentTotal != 0 {
						t.Errorf("%s adjustment total = %v, want 0", pt.PersonID, pt.AdjustmentTotal)
					}
					if len(pt.AdjustmentBreakdown) != 0 {
						t.Errorf("%s adjustment breakdown = %+v, want empty", pt.PersonID, pt.AdjustmentBreakdown)
					}
				}
			},
		},
		{
			name: "empty bill",
			bill: models.Bill{},
			validateFunc: func(t *testing.T, s models.BillSummary) {
				if s.Subtotal != 0 || s.AdjustmentsTotal != 0 || s.GrandTotal != 0 {
					t.Errorf("totals = %+v, want zeros", s)
				}
				if len(s.PersonTotals) != 0 {
					t.Errorf("person totals = %d, want 0", len(s.PersonTotals))
				}
			},
		},
		{
			name: "empty person set treated as unassigned",
			bill: models.Bill{
				Items:       []models.LineItem{{ID: "wine", Name: "Wine", Price: 40, Quantity: 1}},
				People:      people("alice"),
				Assignments: []models.Assignment{{ItemID: "wine", PersonIDs: []string{}}},
			},
			validateFunc: func(t *testing.T, s models.BillSummary) {
				if s.PersonTotals[0].Total != 0 {
					t.Errorf("alice total = %v, want 0", s.PersonTotals[0].Total)
				}
				if math.IsNaN(s.PersonTotals[0].Total) {
					t.Error("alice total is NaN")
				}
			},
		},
		{
			name: "first assignment for an item wins",
			bill: models.Bill{
				Items:  []models.LineItem{{ID: "cake", Name: "Cake", Price: 9, Quantity: 1}},
				People: people("alice", "bob"),
				Assignments: []models.Assignment{
					{ItemID: "cake", PersonIDs: []string{"alice"}},
					{ItemID: "cake", PersonIDs: []string{"alice", "bob"}},
				},
			},
			validateFunc: func(t *testing.T, s models.BillSummary) {
				if s.PersonTotals[0].Total != 9 || s.PersonTotals[1].Total != 0 {
					t.Errorf("totals = %v/%v, want 9/0", s.PersonTotals[0].Total, s.PersonTotals[1].Total)
				}
			},
		},
		{
			name: "person totals follow bill order and item breakdown follows item order",
			bill: models.Bill{
				Items: []models.LineItem{
					{ID: "b", Name: "Second", Price: 2, Quantity: 1},
					{ID: "a", Name: "First", Price: 1, Quantity: 1},
				},
				People: people("zed", "amy"),
				Assignments: []models.Assignment{
					{ItemID: "a", PersonIDs: []string{"zed"}},
					{ItemID: "b", PersonIDs: []string{"zed", "amy"}},
				},
			},
			validateFunc: func(t *testing.T, s models.BillSummary) {
				if s.PersonTotals[0].PersonID != "zed" || s.PersonTotals[1].PersonID != "amy" {
					t.Fatalf("order = %s,%s", s.PersonTotals[0].PersonID, s.PersonTotals[1].PersonID)
				}
				zed := s.PersonTotals[0].ItemBreakdown
				if len(zed) != 2 || zed[0].ItemID != "b" || zed[1].ItemID != "a" {
					t.Errorf("zed breakdown = %+v", zed)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.validateFunc(t, ComputeSummary(tt.bill))
		})
	}
}

func TestComputeSummary_NoAdjustmentsGrandTotalEqualsSubtotal(t *testing.T) {
	bill := models.Bill{
		Items: []models.LineItem{
			{ID: "1", Name: "A", Price: 3.33, Quantity: 3},
			{ID: "2", Name: "B", Price: 0.1, Quantity: 7},
			{ID: "3", Name: "C", Price: 0, Quantity: 2},
		},
	}
	s := ComputeSummary(bill)
	var want float64
	for _, item := range bill.Items {
		want += item.Price * float64(item.Quantity)
	}
	if s.Subtotal != want || s.GrandTotal != s.Subtotal {
		t.Errorf("subtotal/grand = %v/%v, want %v", s.Subtotal, s.GrandTotal, want)
	}
}

func TestComputeSummary_EqualSplitSharesSumToItemTotal(t *testing.T) {
	for n := 1; n <= 7; n++ {
		names := make([]string, n)
		for i := range names {
			names[i] = string(rune('a' + i))
		}
		bill := models.Bill{
			Items:       []models.LineItem{{ID: "x", Name: "X", Price: 100, Quantity: 1}},
			People:      people(names...),
			Assignments: []models.Assignment{{ItemID: "x", PersonIDs: names}},
		}
		s := ComputeSummary(bill)
		var sum float64
		for _, pt := range s.PersonTotals {
			if !approx(pt.ItemBreakdown[0].Share, 100/float64(n)) {
				t.Errorf("n=%d share = %v, want %v", n, pt.ItemBreakdown[0].Share, 100/float64(n))
			}
			sum += pt.Subtotal
		}
		if !approx(sum, 100) {
			t.Errorf("n=%d Σ shares = %v, want 100", n, sum)
		}
	}
}

func TestComputeSummary_PercentageAdjustmentFullyAllocated(t *testing.T) {
	bill := models.Bill{
		Items: []models.LineItem{
			{ID: "1", Name: "Ramen", Price: 14.5, Quantity: 1},
			{ID: "2", Name: "Gyoza", Price: 7.25, Quantity: 2},
			{ID: "3", Name: "Tea", Price: 3, Quantity: 3},
		},
		People:      people("a", "b", "c"),
		Adjustments: []models.Adjustment{{ID: "tax", Type: models.AdjustmentTax, Value: 8.875, IsPercentage: true}},
		Assignments: []models.Assignment{
			{ItemID: "1", PersonIDs: []string{"a"}},
			{ItemID: "2", PersonIDs: []string{"a", "b", "c"}},
			{ItemID: "3", PersonIDs: []string{"b", "c"}},
		},
	}
	s := ComputeSummary(bill)
	if !approx(s.AdjustmentsTotal, s.Subtotal*8.875/100) {
		t.Errorf("adjustments total = %v, want %v", s.AdjustmentsTotal, s.Subtotal*8.875/100)
	}
	var adjSum, totalSum float64
	for _, pt := range s.PersonTotals {
		adjSum += pt.AdjustmentTotal
		totalSum += pt.Total
	}
	if !approx(adjSum, s.AdjustmentsTotal) {
		t.Errorf("Σ adjustment shares = %v, want %v", adjSum, s.AdjustmentsTotal)
	}
	if math.Abs(totalSum-s.GrandTotal) > DefaultEpsilon {
		t.Errorf("Σ totals = %v, want %v", totalSum, s.GrandTotal)
	}
}

func TestComputeSummary_Idempotent(t *testing.T) {
	bill := models.Bill{
		Items:       []models.LineItem{{ID: "1", Name: "Nachos", Price: 11.99, Quantity: 1}},
		People:      people("a", "b", "c"),
		Adjustments: []models.Adjustment{{ID: "tip", Type: models.AdjustmentTip, Value: 18, IsPercentage: true}},
		Assignments: []models.Assignment{{ItemID: "1", PersonIDs: []string{"a", "b", "c"}}},
	}
	first := ComputeSummary(bill)
	second := ComputeSummary(bill)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("summaries differ:\n%+v\n%+v", first, second)
	}
}

func TestAdjustmentAmount(t *testing.T) {
	tests := []struct {
		adj      models.Adjustment
		subtotal float64
		want     float64
	}{
		{models.Adjustment{Value: 15, IsPercentage: true}, 200, 30},
		{models.Adjustment{Value: 15}, 200, 15},
		{models.Adjustment{Value: 15}, 0, 15},
		{models.Adjustment{Value: -5}, 50, -5},
	}
	for _, tt := range tests {
		if got := AdjustmentAmount(tt.adj, tt.subtotal); got != tt.want {
			t.Errorf("AdjustmentAmount(%+v, %v) = %v, want %v", tt.adj, tt.subtotal, got, tt.want)
		}
	}
}

func TestIsFinite(t *testing.T) {
	finite := models.Bill{
		Items:       []models.LineItem{{ID: "a", Name: "A", Price: 1e308, Quantity: 1}},
		People:      people("x"),
		Assignments: []models.Assignment{{ItemID: "a", PersonIDs: []string{"x"}}},
	}
	if !IsFinite(ComputeSummary(finite)) {
		t.Error("IsFinite = false for a bill near the float64 limit")
	}

	overflow := finite
	overflow.Items = []models.LineItem{
		{ID: "a", Name: "A", Price: 1e308, Quantity: 1},
		{ID: "b", Name: "B", Price: 1e308, Quantity: 1},
	}
	if IsFinite(ComputeSummary(overflow)) {
		t.Error("IsFinite = true for an overflowing subtotal")
	}

	share := finite
	share.Adjustments = []models.Adjustment{{ID: "fee", Value: math.MaxFloat64}}
	if IsFinite(ComputeSummary(share)) {
		t.Error("IsFinite = true for an overflowing grand total")
	}
}
