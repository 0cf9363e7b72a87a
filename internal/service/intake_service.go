package service

import (
	"context"

	"github.com/shopfront/backend/internal/model"
)

// Outcome is the result of an accepted submission. Warning is non-empty
// when notification delivery failed; acceptance is independent of delivery.
type Outcome struct {
	// Order is the stored record for order submissions, nil for contacts.
	Order   *model.Order
	Warning string
}

// IntakeService defines the business logic for contact and order intake:
// normalization, acceptance, and best-effort notification dispatch.
//
// Both methods return *model.ValidationError when required fields are
// missing; any other error means the submission was not accepted.
type IntakeService interface {
	SubmitContact(ctx context.Context, raw model.RawContact) (*Outcome, error)
	SubmitOrder(ctx context.Context, raw model.RawOrder) (*Outcome, error)
}
