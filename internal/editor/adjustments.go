package editor

import (
	"fmt"
	"slices"

	"github.com/mmynk/billsplit/internal/models"
)

// AddAdjustment appends a fee, tip or tax.
func (e *Editor) AddAdjustment(kind models.AdjustmentType, description string, value float64, isPercentage bool) (models.Adjustment, error) {
	adj := models.Adjustment{
		ID:           e.newID(),
		Type:         kind,
		Description:  description,
		Value:        value,
		IsPercentage: isPercentage,
	}
	if err := validate.Struct(adj); err != nil {
		return models.Adjustment{}, invalid("adjustment", err)
	}
	next := e.bill.Clone()
	next.Adjustments = append(next.Adjustments, adj)
	if err := e.commit(next); err != nil {
		return models.Adjustment{}, err
	}
	return adj, nil
}

// UpdateAdjustment applies a partial update to an adjustment.
func (e *Editor) UpdateAdjustment(id string, update models.AdjustmentUpdate) (models.Adjustment, error) {
	i := e.adjustmentIndex(id)
	if i < 0 {
		return models.Adjustment{}, fmt.Errorf("%w: %s", ErrAdjustmentNotFound, id)
	}
	adj := update.Apply(e.bill.Adjustments[i])
	if err := validate.Struct(adj); err != nil {
		return models.Adjustment{}, invalid("adjustment", err)
	}
	next := e.bill.Clone()
	next.Adjustments[i] = adj
	if err := e.commit(next); err != nil {
		return models.Adjustment{}, err
	}
	return adj, nil
}

// DeleteAdjustment removes an adjustment.
func (e *Editor) DeleteAdjustment(id string) error {
	i := e.adjustmentIndex(id)
	if i < 0 {
		return fmt.Errorf("%w: %s", ErrAdjustmentNotFound, id)
	}
	e.bill.Adjustments = slices.Delete(e.bill.Adjustments, i, i+1)
	e.touch()
	return nil
}

func (e *Editor) adjustmentIndex(id string) int {
	return slices.IndexFunc(e.bill.Adjustments, func(a models.Adjustment) bool { return a.ID == id })
}
