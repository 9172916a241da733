package model

import (
	"encoding/json"
	"strconv"
)

const (
	PaymentMethodCOD = "COD"
	PaymentMethodUPI = "UPI"

	// Order status is an open string; these are only the values assigned at creation.
	OrderStatusProcessing     = "processing"
	OrderStatusPendingPayment = "pending_payment"
)

type Order struct {
	ID            string           `json:"id"`
	Items         []map[string]any `json:"items"`
	Total         float64          `json:"total"`
	PaymentMethod string           `json:"paymentMethod"`
	Status        string           `json:"status"`
	CreatedAt     int64            `json:"createdAt"`
	Customer      map[string]any   `json:"customer"`
	Note          string           `json:"note,omitempty"`
}

// Amount decodes tolerantly: a value that is neither a number nor a numeric
// string becomes zero instead of failing the whole request body.
type Amount float64

func (a *Amount) UnmarshalJSON(data []byte) error {
	var f float64
	if err := json.Unmarshal(data, &f); err == nil {
		*a = Amount(f)
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		if parsed, err := strconv.ParseFloat(s, 64); err == nil {
			*a = Amount(parsed)
			return nil
		}
	}

	*a = 0
	return nil
}

type CreateOrderDTO struct {
	Items         []map[string]any `json:"items" validate:"required,min=1"`
	Total         Amount           `json:"total"`
	PaymentMethod string           `json:"paymentMethod"`
	Customer      map[string]any   `json:"customer"`
	Meta          map[string]any   `json:"meta"`
}

type UpdateOrderStatusDTO struct {
	Status string  `json:"status"`
	Note   *string `json:"note"`
}

// CreateOrderResult carries the persisted order plus the UPI deep-link for
// UPI orders. The link is returned to the caller and never persisted.
type CreateOrderResult struct {
	Order   Order
	UPILink string
}

type GetOrdersResponse = []Order
