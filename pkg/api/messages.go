// Package api defines the wire messages of the BillService and its Connect
// handler and client constructors.
package api

import (
	"github.com/mmynk/billsplit/internal/models"
	"github.com/mmynk/billsplit/internal/report"
)

// BillResponse is returned by every session procedure: the bill after the
// call, its summary and the consistency check.
type BillResponse struct {
	Bill           *models.Bill          `json:"bill"`
	Summary        models.BillSummary    `json:"summary"`
	Reconciliation models.Reconciliation `json:"reconciliation"`
	Report         report.Report         `json:"report"`
}

// SummaryResponse is returned by ComputeSummary.
type SummaryResponse struct {
	Summary        models.BillSummary    `json:"summary"`
	Reconciliation models.Reconciliation `json:"reconciliation"`
	Report         report.Report         `json:"report"`
}

type GetBillRequest struct{}

type RenameBillRequest struct {
	Name string `json:"name"`
}

type ResetBillRequest struct{}

type AddLineItemRequest struct {
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

type UpdateLineItemRequest struct {
	ID     string                `json:"id"`
	Update models.LineItemUpdate `json:"update"`
}

type DeleteLineItemRequest struct {
	ID string `json:"id"`
}

type AddPersonRequest struct {
	Name string `json:"name"`
}

type UpdatePersonRequest struct {
	ID     string              `json:"id"`
	Update models.PersonUpdate `json:"update"`
}

type DeletePersonRequest struct {
	ID string `json:"id"`
}

type AddAdjustmentRequest struct {
	Type         models.AdjustmentType `json:"type"`
	Description  string                `json:"description"`
	Value        float64               `json:"value"`
	IsPercentage bool                  `json:"isPercentage"`
}

type UpdateAdjustmentRequest struct {
	ID     string                  `json:"id"`
	Update models.AdjustmentUpdate `json:"update"`
}

type DeleteAdjustmentRequest struct {
	ID string `json:"id"`
}

type TogglePersonAssignmentRequest struct {
	ItemID   string `json:"itemId"`
	PersonID string `json:"personId"`
}

type AssignAllPeopleRequest struct {
	ItemID string `json:"itemId"`
}

type ClearItemAssignmentsRequest struct {
	ItemID string `json:"itemId"`
}

// ComputeSummaryRequest carries a full bill; nothing is stored.
type ComputeSummaryRequest struct {
	Bill models.Bill `json:"bill"`
}
