// Package report turns a bill summary into display-ready lines.
package report

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/mmynk/billsplit/internal/calculator"
	"github.com/mmynk/billsplit/internal/models"
)

// Report is the rounded, currency-formatted view of a bill summary.
type Report struct {
	BillName         string       `json:"billName"`
	Currency         string       `json:"currency"`
	Subtotal         string       `json:"subtotal"`
	AdjustmentsTotal string       `json:"adjustmentsTotal"`
	GrandTotal       string       `json:"grandTotal"`
	Adjustments      []Line       `json:"adjustments"`
	People           []PersonLine `json:"people"`
	Verification     Verification `json:"verification"`
}

// Line is a label with a formatted amount.
type Line struct {
	Label  string `json:"label"`
	Amount string `json:"amount"`
}

// PersonLine is one person's section of the report.
type PersonLine struct {
	PersonID    string `json:"personId"`
	Name        string `json:"name"`
	Color       string `json:"color,omitempty"`
	Subtotal    string `json:"subtotal"`
	Adjustments string `json:"adjustments"`
	Total       string `json:"total"`
	Items       []Line `json:"items"`
	Shares      []Line `json:"shares"`
}

// Verification is the banner comparing person totals with the bill total.
type Verification struct {
	PersonTotalsSum string `json:"personTotalsSum"`
	GrandTotal      string `json:"grandTotal"`
	Balanced        bool   `json:"balanced"`
	Warning         string `json:"warning,omitempty"`
}

// Build formats summary for display. Amounts are rounded only here.
func Build(bill models.Bill, summary models.BillSummary, rec models.Reconciliation, f *calculator.CurrencyFormatter) Report {
	colors := make(map[string]string, len(bill.People))
	for _, p := range bill.People {
		colors[p.ID] = p.Color
	}

	r := Report{
		BillName:         bill.Name,
		Currency:         f.Currency(),
		Subtotal:         f.Format(summary.Subtotal),
		AdjustmentsTotal: f.Format(summary.AdjustmentsTotal),
		GrandTotal:       f.Format(summary.GrandTotal),
		Adjustments:      make([]Line, 0, len(bill.Adjustments)),
		People:           make([]PersonLine, 0, len(summary.PersonTotals)),
		Verification: Verification{
			PersonTotalsSum: f.Format(rec.PersonTotalsSum),
			GrandTotal:      f.Format(rec.GrandTotal),
			Balanced:        rec.Balanced,
			Warning:         rec.Warning,
		},
	}

	for _, adj := range bill.Adjustments {
		r.Adjustments = append(r.Adjustments, Line{
			Label:  adjustmentLabel(adj),
			Amount: f.Format(calculator.AdjustmentAmount(adj, summary.Subtotal)),
		})
	}

	for _, pt := range summary.PersonTotals {
		pl := PersonLine{
			PersonID:    pt.PersonID,
			Name:        pt.PersonName,
			Color:       colors[pt.PersonID],
			Subtotal:    f.Format(pt.Subtotal),
			Adjustments: f.Format(pt.AdjustmentTotal),
			Total:       f.Format(pt.Total),
			Items:       make([]Line, 0, len(pt.ItemBreakdown)),
			Shares:      make([]Line, 0, len(pt.AdjustmentBreakdown)),
		}
		for _, s := range pt.ItemBreakdown {
			pl.Items = append(pl.Items, Line{Label: s.ItemName, Amount: f.Format(s.Share)})
		}
		for _, s := range pt.AdjustmentBreakdown {
			pl.Shares = append(pl.Shares, Line{Label: s.AdjustmentDescription, Amount: f.Format(s.Share)})
		}
		r.People = append(r.People, pl)
	}
	return r
}

func adjustmentLabel(adj models.Adjustment) string {
	label := adj.Description
	if label == "" {
		label = string(adj.Type)
	}
	if adj.IsPercentage {
		return fmt.Sprintf("%s (%g%%)", label, adj.Value)
	}
	return label
}

// WriteText renders r as aligned plain text.
func WriteText(w io.Writer, r Report) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	p := func(format string, args ...any) {
		fmt.Fprintf(tw, format, args...)
	}

	p("%s\t\n", r.BillName)
	p("Subtotal\t%s\t\n", r.Subtotal)
	for _, l := range r.Adjustments {
		p("%s\t%s\t\n", l.Label, l.Amount)
	}
	p("Total\t%s\t\n", r.GrandTotal)
	p("\t\t\n")

	for _, pl := range r.People {
		p("%s\t%s\t\n", pl.Name, pl.Total)
		for _, l := range pl.Items {
			p("  %s\t%s\t\n", l.Label, l.Amount)
		}
		for _, l := range pl.Shares {
			p("  %s\t%s\t\n", l.Label, l.Amount)
		}
	}
	p("\t\t\n")
	p("Sum of person totals\t%s\t\n", r.Verification.PersonTotalsSum)
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	if !r.Verification.Balanced && r.Verification.Warning != "" {
		if _, err := fmt.Fprintf(w, "warning: %s\n", r.Verification.Warning); err != nil {
			return fmt.Errorf("failed to write report: %w", err)
		}
	}
	return nil
}
