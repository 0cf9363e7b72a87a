package model

import "time"

// Order statuses.
const OrderStatusPending = "pending"

// Order is an accepted order submission as retained by the store.
// JSON field names match the legacy API so existing readers keep working.
type Order struct {
	ID           int       `json:"id"`
	CustomerName string    `json:"customerName"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone"`
	Address      string    `json:"address"`
	Items        string    `json:"items"`
	Notes        string    `json:"notes,omitempty"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"createdAt"`
}
