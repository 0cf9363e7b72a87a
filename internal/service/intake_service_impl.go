package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/shopfront/backend/internal/metrics"
	"github.com/shopfront/backend/internal/model"
	"github.com/shopfront/backend/internal/repository"
	"github.com/shopfront/backend/pkg/mailer"
)

// WarningNotificationFailed is attached to an accepted submission whose
// notification email could not be delivered.
const WarningNotificationFailed = "notification email could not be sent"

// intakeServiceImpl is the production implementation of IntakeService.
type intakeServiceImpl struct {
	orders     repository.OrderRepository
	contacts   repository.ContactRepository
	mail       mailer.Client
	adminEmail string
}

// NewIntakeService creates an IntakeService backed by the given stores and
// mail client. adminEmail may be empty; the composer then falls back to
// notifying the submitter.
func NewIntakeService(orders repository.OrderRepository, contacts repository.ContactRepository, mail mailer.Client, adminEmail string) IntakeService {
	return &intakeServiceImpl{
		orders:     orders,
		contacts:   contacts,
		mail:       mail,
		adminEmail: adminEmail,
	}
}

// SubmitContact normalizes and accepts a contact submission, then
// dispatches the admin notice best-effort.
func (s *intakeServiceImpl) SubmitContact(ctx context.Context, raw model.RawContact) (*Outcome, error) {
	sub, err := NormalizeContact(raw)
	if err != nil {
		metrics.SubmissionsTotal.WithLabelValues(string(model.KindContact), "rejected").Inc()
		return nil, err
	}

	msg := &model.ContactMessage{
		ID:        uuid.NewString(),
		Name:      sub.Name,
		Email:     sub.Email,
		Phone:     sub.Phone,
		Message:   sub.Details,
		CreatedAt: sub.CreatedAt,
	}
	if err := s.contacts.Save(ctx, msg); err != nil {
		metrics.SubmissionsTotal.WithLabelValues(string(model.KindContact), "error").Inc()
		return nil, fmt.Errorf("save contact message: %w", err)
	}

	// Accepted. Everything past this point is best-effort.
	metrics.SubmissionsTotal.WithLabelValues(string(model.KindContact), "accepted").Inc()
	warning := s.bestEffortNotify(ctx, ComposeMessages(sub, s.adminEmail))
	return &Outcome{Warning: warning}, nil
}

// SubmitOrder normalizes an order submission, appends it to the store, then
// dispatches the admin notice and customer confirmation best-effort. The
// record is stored before any send: acceptance is never conditioned on
// delivery.
func (s *intakeServiceImpl) SubmitOrder(ctx context.Context, raw model.RawOrder) (*Outcome, error) {
	sub, err := NormalizeOrder(raw)
	if err != nil {
		metrics.SubmissionsTotal.WithLabelValues(string(model.KindOrder), "rejected").Inc()
		return nil, err
	}

	order := &model.Order{
		CustomerName: sub.Name,
		Email:        sub.Email,
		Phone:        sub.Phone,
		Address:      sub.Address,
		Items:        sub.Details,
		Notes:        sub.Notes,
		CreatedAt:    sub.CreatedAt,
	}
	stored, err := s.orders.Append(ctx, order)
	if err != nil {
		metrics.SubmissionsTotal.WithLabelValues(string(model.KindOrder), "error").Inc()
		return nil, fmt.Errorf("append order: %w", err)
	}

	metrics.SubmissionsTotal.WithLabelValues(string(model.KindOrder), "accepted").Inc()
	warning := s.bestEffortNotify(ctx, ComposeMessages(sub, s.adminEmail))
	return &Outcome{Order: stored, Warning: warning}, nil
}

// bestEffortNotify sends each message once, in order. A failed send is
// logged and counted, and the remaining messages are still attempted; all
// failures collapse into a single warning. It never returns an error.
func (s *intakeServiceImpl) bestEffortNotify(ctx context.Context, msgs []mailer.Message) string {
	failed := false
	for _, m := range msgs {
		if err := s.mail.Send(ctx, m); err != nil {
			slog.Error("notification send failed",
				"recipient", m.To,
				"subject", m.Subject,
				"error", err,
			)
			metrics.NotificationFailures.Inc()
			failed = true
			continue
		}
		metrics.NotificationsSent.Inc()
	}
	if failed {
		return WarningNotificationFailed
	}
	return ""
}
