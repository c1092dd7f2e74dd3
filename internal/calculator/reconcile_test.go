package calculator

import (
	"testing"

	"github.com/mmynk/billsplit/internal/models"
)

func TestReconcile(t *testing.T) {
	tests := []struct {
		name           string
		bill           models.Bill
		wantBalanced   bool
		wantUnassigned []string
		wantWarning    bool
	}{
		{
			name: "fully assigned bill balances",
			bill: models.Bill{
				Items:       []models.LineItem{{ID: "pizza", Name: "Pizza", Price: 20, Quantity: 1}},
				People:      people("alice", "bob"),
				Adjustments: []models.Adjustment{{ID: "tip", Value: 10, IsPercentage: true}},
				Assignments: []models.Assignment{{ItemID: "pizza", PersonIDs: []string{"alice", "bob"}}},
			},
			wantBalanced:   true,
			wantUnassigned: []string{},
		},
		{
			name: "unassigned item is reported",
			bill: models.Bill{
				Items: []models.LineItem{
					{ID: "a", Name: "A", Price: 30, Quantity: 1},
					{ID: "b", Name: "B", Price: 20, Quantity: 1},
				},
				People:      people("x"),
				Assignments: []models.Assignment{{ItemID: "b", PersonIDs: []string{"x"}}},
			},
			wantBalanced:   false,
			wantUnassigned: []string{"a"},
			wantWarning:    true,
		},
		{
			name: "zero subtotal with fixed adjustment cannot balance",
			bill: models.Bill{
				People:      people("x"),
				Adjustments: []models.Adjustment{{ID: "fee", Value: 4}},
			},
			wantBalanced:   false,
			wantUnassigned: []string{},
			wantWarning:    true,
		},
		{
			name: "duplicate assignment after an empty one is ignored",
			bill: models.Bill{
				Items:  []models.LineItem{{ID: "pizza", Name: "Pizza", Price: 20, Quantity: 1}},
				People: people("alice"),
				Assignments: []models.Assignment{
					{ItemID: "pizza", PersonIDs: []string{}},
					{ItemID: "pizza", PersonIDs: []string{"alice"}},
				},
			},
			wantBalanced:   false,
			wantUnassigned: []string{"pizza"},
			wantWarning:    true,
		},
		{
			name:           "empty bill balances",
			bill:           models.Bill{},
			wantBalanced:   true,
			wantUnassigned: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := Reconcile(tt.bill, ComputeSummary(tt.bill), DefaultEpsilon)
			if rec.Balanced != tt.wantBalanced {
				t.Errorf("Balanced = %v, want %v (diff %v)", rec.Balanced, tt.wantBalanced, rec.Difference)
			}
			if len(rec.UnassignedItemIDs) != len(tt.wantUnassigned) {
				t.Fatalf("UnassignedItemIDs = %v, want %v", rec.UnassignedItemIDs, tt.wantUnassigned)
			}
			for i := range tt.wantUnassigned {
				if rec.UnassignedItemIDs[i] != tt.wantUnassigned[i] {
					t.Errorf("UnassignedItemIDs[%d] = %s, want %s", i, rec.UnassignedItemIDs[i], tt.wantUnassigned[i])
				}
			}
			if (rec.Warning != "") != tt.wantWarning {
				t.Errorf("Warning = %q, want warning %v", rec.Warning, tt.wantWarning)
			}
		})
	}
}

func TestReconcile_UnassignedScenario(t *testing.T) {
	// item A ($30) unassigned, item B ($20) assigned to X
	bill := models.Bill{
		Items: []models.LineItem{
			{ID: "a", Name: "A", Price: 30, Quantity: 1},
			{ID: "b", Name: "B", Price: 20, Quantity: 1},
		},
		People:      people("x"),
		Assignments: []models.Assignment{{ItemID: "b", PersonIDs: []string{"x"}}},
	}
	summary := ComputeSummary(bill)
	rec := Reconcile(bill, summary, DefaultEpsilon)

	if summary.Subtotal != 50 {
		t.Errorf("subtotal = %v, want 50", summary.Subtotal)
	}
	if summary.PersonTotals[0].Total != 20 {
		t.Errorf("x total = %v, want 20", summary.PersonTotals[0].Total)
	}
	if rec.PersonTotalsSum != 20 || rec.GrandTotal != 50 || rec.Difference != 30 {
		t.Errorf("reconciliation = %+v", rec)
	}
	if rec.Balanced {
		t.Error("expected mismatch to be reported")
	}
}

func TestReconcile_UnallocatedAdjustments(t *testing.T) {
	bill := models.Bill{
		People:      people("x"),
		Adjustments: []models.Adjustment{{ID: "fee", Value: 4}},
	}
	rec := Reconcile(bill, ComputeSummary(bill), 0)
	if !rec.UnallocatedAdjustments {
		t.Error("expected UnallocatedAdjustments")
	}
	if rec.Warning != warnUnallocated {
		t.Errorf("Warning = %q, want %q", rec.Warning, warnUnallocated)
	}
}
