package model

import (
	"strings"
	"time"
)

// Kind distinguishes the two submission shapes the intake accepts.
type Kind string

const (
	KindContact Kind = "contact"
	KindOrder   Kind = "order"
)

// Sentinel values applied by normalization when optional fields are absent.
const (
	AddressNotProvided = "not provided"
	ItemsNotSpecified  = "not specified"
)

// Submission is the canonical, validated form of a contact or order request.
// It is only constructed once every required field for its kind is present;
// it is never mutated after construction.
type Submission struct {
	Kind      Kind
	Name      string
	Email     string
	Phone     string
	// Details is the free-text message for a contact submission, or the
	// requested-items description for an order.
	Details   string
	Address   string
	Notes     string
	CreatedAt time.Time
}

// RawContact is the loosely-typed contact form payload as received on the
// wire. Validation happens in the normalizer, not here.
type RawContact struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Message string `json:"message"`
}

// RawOrder is the loosely-typed order payload. Two historical shapes are
// accepted for the same logical order: name may arrive as "name" or
// "customerName", and the items description may be explicit or derived from
// productName + quantity.
type RawOrder struct {
	Name         string `json:"name"`
	CustomerName string `json:"customerName"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	Address      string `json:"address"`
	Items        string `json:"items"`
	ProductName  string `json:"productName"`
	Quantity     int    `json:"quantity"`
	Notes        string `json:"notes"`
}

// ValidationError reports every required field missing from a submission,
// in the declared field order. It never describes a partial construction:
// when returned, no Submission was built.
type ValidationError struct {
	Missing []string
}

func (e *ValidationError) Error() string {
	return "missing required fields: " + strings.Join(e.Missing, ", ")
}
