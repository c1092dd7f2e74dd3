package models

// LineItemUpdate is a partial update for a line item. Nil fields are left
// unchanged.
type LineItemUpdate struct {
	Name     *string  `json:"name,omitempty"`
	Price    *float64 `json:"price,omitempty"`
	Quantity *int     `json:"quantity,omitempty"`
}

// Apply returns item with the set fields replaced.
func (u LineItemUpdate) Apply(item LineItem) LineItem {
	if u.Name != nil {
		item.Name = *u.Name
	}
	if u.Price != nil {
		item.Price = *u.Price
	}
	if u.Quantity != nil {
		item.Quantity = *u.Quantity
	}
	return item
}

// PersonUpdate is a partial update for a person.
type PersonUpdate struct {
	Name  *string `json:"name,omitempty"`
	Color *string `json:"color,omitempty"`
}

// Apply returns person with the set fields replaced.
func (u PersonUpdate) Apply(person Person) Person {
	if u.Name != nil {
		person.Name = *u.Name
	}
	if u.Color != nil {
		person.Color = *u.Color
	}
	return person
}

// AdjustmentUpdate is a partial update for an adjustment.
type AdjustmentUpdate struct {
	Type         *AdjustmentType `json:"type,omitempty"`
	Description  *string         `json:"description,omitempty"`
	Value        *float64        `json:"value,omitempty"`
	IsPercentage *bool           `json:"isPercentage,omitempty"`
}

// Apply returns adj with the set fields replaced.
func (u AdjustmentUpdate) Apply(adj Adjustment) Adjustment {
	if u.Type != nil {
		adj.Type = *u.Type
	}
	if u.Description != nil {
		adj.Description = *u.Description
	}
	if u.Value != nil {
		adj.Value = *u.Value
	}
	if u.IsPercentage != nil {
		adj.IsPercentage = *u.IsPercentage
	}
	return adj
}
