package editor

import (
	"fmt"
	"math"
	"slices"

	"github.com/mmynk/billsplit/internal/models"
)

// AddLineItem appends an item. A quantity below 1 defaults to 1.
func (e *Editor) AddLineItem(name string, price float64, quantity int) (models.LineItem, error) {
	if quantity < 1 {
		quantity = 1
	}
	item := models.LineItem{
		ID:       e.newID(),
		Name:     name,
		Price:    price,
		Quantity: quantity,
	}
	if err := validateItem(item); err != nil {
		return models.LineItem{}, err
	}
	next := e.bill.Clone()
	next.Items = append(next.Items, item)
	if err := e.commit(next); err != nil {
		return models.LineItem{}, err
	}
	return item, nil
}

// UpdateLineItem applies a partial update to an item.
func (e *Editor) UpdateLineItem(id string, update models.LineItemUpdate) (models.LineItem, error) {
	i := e.itemIndex(id)
	if i < 0 {
		return models.LineItem{}, fmt.Errorf("%w: %s", ErrItemNotFound, id)
	}
	item := update.Apply(e.bill.Items[i])
	if err := validateItem(item); err != nil {
		return models.LineItem{}, err
	}
	next := e.bill.Clone()
	next.Items[i] = item
	if err := e.commit(next); err != nil {
		return models.LineItem{}, err
	}
	return item, nil
}

// DeleteLineItem removes an item and its assignment.
func (e *Editor) DeleteLineItem(id string) error {
	i := e.itemIndex(id)
	if i < 0 {
		return fmt.Errorf("%w: %s", ErrItemNotFound, id)
	}
	e.bill.Items = slices.Delete(e.bill.Items, i, i+1)
	e.bill.Assignments = slices.DeleteFunc(e.bill.Assignments, func(a models.Assignment) bool {
		return a.ItemID == id
	})
	e.touch()
	return nil
}

func validateItem(item models.LineItem) error {
	if err := validate.Struct(item); err != nil {
		return invalid("line item", err)
	}
	if total := item.Total(); math.IsInf(total, 0) || math.IsNaN(total) {
		return invalid("line item", fmt.Errorf("total of %g × %d overflows", item.Price, item.Quantity))
	}
	return nil
}

func (e *Editor) itemIndex(id string) int {
	return slices.IndexFunc(e.bill.Items, func(item models.LineItem) bool { return item.ID == id })
}
