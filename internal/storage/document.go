package storage

import (
	"encoding/json"
	"fmt"

	"github.com/mmynk/billsplit/internal/models"
)

// EncodeBill serializes a bill document.
func EncodeBill(bill *models.Bill) ([]byte, error) {
	if bill == nil {
		return nil, fmt.Errorf("encode bill: nil bill")
	}
	data, err := json.Marshal(bill)
	if err != nil {
		return nil, fmt.Errorf("encode bill: %w", err)
	}
	return data, nil
}

// DecodeBill parses a bill document.
func DecodeBill(data []byte) (*models.Bill, error) {
	bill := &models.Bill{}
	if err := json.Unmarshal(data, bill); err != nil {
		return nil, fmt.Errorf("decode bill: %w", err)
	}
	return bill, nil
}
