package service

import (
	"fmt"
	"time"

	"github.com/shopfront/backend/internal/model"
)

// NormalizeContact validates a raw contact payload and builds the canonical
// Submission. Validation accumulates: every missing required field is
// reported together, in declared order (name, email, message).
func NormalizeContact(raw model.RawContact) (*model.Submission, error) {
	var missing []string
	if raw.Name == "" {
		missing = append(missing, "name")
	}
	if raw.Email == "" {
		missing = append(missing, "email")
	}
	if raw.Message == "" {
		missing = append(missing, "message")
	}
	if len(missing) > 0 {
		return nil, &model.ValidationError{Missing: missing}
	}

	return &model.Submission{
		Kind:      model.KindContact,
		Name:      raw.Name,
		Email:     raw.Email,
		Phone:     raw.Phone,
		Details:   raw.Message,
		Address:   model.AddressNotProvided,
		CreatedAt: time.Now().UTC(),
	}, nil
}

// NormalizeOrder validates a raw order payload and builds the canonical
// Submission. It reconciles the two accepted historical shapes: name falls
// back to customerName, and the items description is taken verbatim when
// present, synthesized from productName + quantity (quantity defaulting to
// 1) otherwise. Missing required fields are reported together, in declared
// order (name, email, phone).
func NormalizeOrder(raw model.RawOrder) (*model.Submission, error) {
	name := raw.Name
	if name == "" {
		name = raw.CustomerName
	}

	var missing []string
	if name == "" {
		missing = append(missing, "name")
	}
	if raw.Email == "" {
		missing = append(missing, "email")
	}
	if raw.Phone == "" {
		missing = append(missing, "phone")
	}
	if len(missing) > 0 {
		return nil, &model.ValidationError{Missing: missing}
	}

	items := raw.Items
	if items == "" {
		if raw.ProductName != "" {
			qty := raw.Quantity
			if qty <= 0 {
				qty = 1
			}
			items = fmt.Sprintf("%s x %d", raw.ProductName, qty)
		} else {
			items = model.ItemsNotSpecified
		}
	}

	address := raw.Address
	if address == "" {
		address = model.AddressNotProvided
	}

	return &model.Submission{
		Kind:      model.KindOrder,
		Name:      name,
		Email:     raw.Email,
		Phone:     raw.Phone,
		Details:   items,
		Address:   address,
		Notes:     raw.Notes,
		CreatedAt: time.Now().UTC(),
	}, nil
}
