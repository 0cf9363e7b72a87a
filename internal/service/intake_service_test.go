package service

import (
	"context"
	"errors"
	"testing"

	"github.com/shopfront/backend/internal/model"
	"github.com/shopfront/backend/internal/repository"
	"github.com/shopfront/backend/pkg/mailer"
)

// ---------------------------------------------------------------------------
// Mocks
// ---------------------------------------------------------------------------

type mockOrderRepo struct {
	appendFunc func(ctx context.Context, order *model.Order) (*model.Order, error)
	appended   []*model.Order
}

func (m *mockOrderRepo) Append(ctx context.Context, order *model.Order) (*model.Order, error) {
	if m.appendFunc != nil {
		return m.appendFunc(ctx, order)
	}
	stored := *order
	stored.ID = len(m.appended) + 1
	stored.Status = model.OrderStatusPending
	m.appended = append(m.appended, &stored)
	return &stored, nil
}

func (m *mockOrderRepo) List(ctx context.Context) ([]*model.Order, error) {
	return m.appended, nil
}

func (m *mockOrderRepo) FindByID(ctx context.Context, id int) (*model.Order, error) {
	return nil, repository.ErrNotFound
}

type mockContactRepo struct {
	saveFunc func(ctx context.Context, msg *model.ContactMessage) error
	saved    []*model.ContactMessage
}

func (m *mockContactRepo) Save(ctx context.Context, msg *model.ContactMessage) error {
	if m.saveFunc != nil {
		return m.saveFunc(ctx, msg)
	}
	m.saved = append(m.saved, msg)
	return nil
}

func (m *mockContactRepo) List(ctx context.Context) ([]*model.ContactMessage, error) {
	return m.saved, nil
}

type mockMailer struct {
	sendFunc func(ctx context.Context, msg mailer.Message) error
	sent     []mailer.Message
}

func (m *mockMailer) Verify(ctx context.Context) error { return nil }

func (m *mockMailer) Send(ctx context.Context, msg mailer.Message) error {
	m.sent = append(m.sent, msg)
	if m.sendFunc != nil {
		return m.sendFunc(ctx, msg)
	}
	return nil
}

func newIntake(orders *mockOrderRepo, contacts *mockContactRepo, mail *mockMailer, adminEmail string) IntakeService {
	return NewIntakeService(orders, contacts, mail, adminEmail)
}

// ---------------------------------------------------------------------------
// SubmitContact
// ---------------------------------------------------------------------------

func TestSubmitContact_Accepted_SendsAdminNotice(t *testing.T) {
	orders := &mockOrderRepo{}
	contacts := &mockContactRepo{}
	mail := &mockMailer{}
	svc := newIntake(orders, contacts, mail, "admin@shop.com")

	out, err := svc.SubmitContact(context.Background(), model.RawContact{
		Name: "Jane", Email: "jane@x.com", Message: "hi",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Warning != "" {
		t.Errorf("expected no warning, got %q", out.Warning)
	}
	if len(contacts.saved) != 1 {
		t.Fatalf("expected 1 saved contact, got %d", len(contacts.saved))
	}
	if contacts.saved[0].ID == "" {
		t.Error("expected contact message ID to be assigned")
	}
	if len(mail.sent) != 1 {
		t.Fatalf("expected 1 message sent, got %d", len(mail.sent))
	}
	if mail.sent[0].To != "admin@shop.com" {
		t.Errorf("expected admin recipient, got %q", mail.sent[0].To)
	}
}

func TestSubmitContact_ValidationError_NoSideEffects(t *testing.T) {
	orders := &mockOrderRepo{}
	contacts := &mockContactRepo{}
	mail := &mockMailer{}
	svc := newIntake(orders, contacts, mail, "admin@shop.com")

	out, err := svc.SubmitContact(context.Background(), model.RawContact{
		Email: "a@b.com", Message: "hi",
	})
	if out != nil {
		t.Fatal("expected no outcome on validation failure")
	}
	var verr *model.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected *model.ValidationError, got %T", err)
	}
	if len(verr.Missing) != 1 || verr.Missing[0] != "name" {
		t.Errorf("expected missing=[name], got %v", verr.Missing)
	}
	if len(contacts.saved) != 0 {
		t.Error("expected nothing saved on rejection")
	}
	if len(mail.sent) != 0 {
		t.Error("expected no mail sent on rejection")
	}
}

func TestSubmitContact_SaveError_NotAccepted(t *testing.T) {
	contacts := &mockContactRepo{
		saveFunc: func(ctx context.Context, msg *model.ContactMessage) error {
			return errors.New("store unavailable")
		},
	}
	mail := &mockMailer{}
	svc := newIntake(&mockOrderRepo{}, contacts, mail, "admin@shop.com")

	_, err := svc.SubmitContact(context.Background(), model.RawContact{
		Name: "Jane", Email: "jane@x.com", Message: "hi",
	})
	if err == nil {
		t.Fatal("expected error when store fails before acceptance")
	}
	var verr *model.ValidationError
	if errors.As(err, &verr) {
		t.Error("store failure must not surface as a validation error")
	}
	if len(mail.sent) != 0 {
		t.Error("expected no mail sent when acceptance failed")
	}
}

// ---------------------------------------------------------------------------
// SubmitOrder
// ---------------------------------------------------------------------------

func TestSubmitOrder_Accepted_StoresThenSendsTwoMessages(t *testing.T) {
	orders := &mockOrderRepo{}
	mail := &mockMailer{}
	svc := newIntake(orders, &mockContactRepo{}, mail, "admin@shop.com")

	out, err := svc.SubmitOrder(context.Background(), model.RawOrder{
		Name: "Jane", Email: "jane@x.com", Phone: "555", ProductName: "Lamp",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Order == nil {
		t.Fatal("expected stored order in outcome")
	}
	if out.Order.ID != 1 {
		t.Errorf("expected order ID 1, got %d", out.Order.ID)
	}
	if out.Order.Status != model.OrderStatusPending {
		t.Errorf("expected status pending, got %q", out.Order.Status)
	}
	if out.Order.Items != "Lamp x 1" {
		t.Errorf("expected synthesized items, got %q", out.Order.Items)
	}
	if len(mail.sent) != 2 {
		t.Fatalf("expected 2 messages, got %d", len(mail.sent))
	}
	if mail.sent[0].To != "admin@shop.com" || mail.sent[1].To != "jane@x.com" {
		t.Errorf("expected admin then customer, got %q then %q", mail.sent[0].To, mail.sent[1].To)
	}
}

// Acceptance is delivery-independent: with a mailer that always fails, the
// order is still stored and the caller still gets a success with a warning.
func TestSubmitOrder_AllSendsFail_StillAcceptedWithWarning(t *testing.T) {
	orders := &mockOrderRepo{}
	mail := &mockMailer{
		sendFunc: func(ctx context.Context, msg mailer.Message) error {
			return errors.New("smtp down")
		},
	}
	svc := newIntake(orders, &mockContactRepo{}, mail, "admin@shop.com")

	out, err := svc.SubmitOrder(context.Background(), model.RawOrder{
		Name: "Jane", Email: "jane@x.com", Phone: "555", Items: "2 chairs",
	})
	if err != nil {
		t.Fatalf("expected acceptance despite delivery failure, got %v", err)
	}
	if out.Warning != WarningNotificationFailed {
		t.Errorf("expected warning %q, got %q", WarningNotificationFailed, out.Warning)
	}
	if len(orders.appended) != 1 {
		t.Fatalf("expected order stored exactly once, got %d", len(orders.appended))
	}
	// Both sends were still attempted, in order.
	if len(mail.sent) != 2 {
		t.Errorf("expected both sends attempted, got %d", len(mail.sent))
	}
}

// The customer send is attempted even when the admin send fails.
func TestSubmitOrder_AdminSendFails_CustomerSendStillAttempted(t *testing.T) {
	mail := &mockMailer{}
	mail.sendFunc = func(ctx context.Context, msg mailer.Message) error {
		if len(mail.sent) == 1 { // first send (admin)
			return errors.New("mailbox full")
		}
		return nil
	}
	svc := newIntake(&mockOrderRepo{}, &mockContactRepo{}, mail, "admin@shop.com")

	out, err := svc.SubmitOrder(context.Background(), model.RawOrder{
		Name: "Jane", Email: "jane@x.com", Phone: "555",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(mail.sent) != 2 {
		t.Fatalf("expected customer send attempted after admin failure, got %d sends", len(mail.sent))
	}
	if out.Warning != WarningNotificationFailed {
		t.Errorf("expected uniform warning, got %q", out.Warning)
	}
}

func TestSubmitOrder_ValidationError_NothingStoredOrSent(t *testing.T) {
	orders := &mockOrderRepo{}
	mail := &mockMailer{}
	svc := newIntake(orders, &mockContactRepo{}, mail, "admin@shop.com")

	_, err := svc.SubmitOrder(context.Background(), model.RawOrder{Email: "a@b.com"})
	var verr *model.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected *model.ValidationError, got %T", err)
	}
	if len(orders.appended) != 0 {
		t.Error("expected no order stored on rejection")
	}
	if len(mail.sent) != 0 {
		t.Error("expected no mail sent on rejection")
	}
}

func TestSubmitOrder_AppendError_NotAccepted(t *testing.T) {
	orders := &mockOrderRepo{
		appendFunc: func(ctx context.Context, order *model.Order) (*model.Order, error) {
			return nil, errors.New("store unavailable")
		},
	}
	mail := &mockMailer{}
	svc := newIntake(orders, &mockContactRepo{}, mail, "admin@shop.com")

	_, err := svc.SubmitOrder(context.Background(), model.RawOrder{
		Name: "Jane", Email: "jane@x.com", Phone: "555",
	})
	if err == nil {
		t.Fatal("expected error when append fails before acceptance")
	}
	if len(mail.sent) != 0 {
		t.Error("expected no mail sent when acceptance failed")
	}
}

func TestSubmitOrder_NoAdminConfigured_SelfNotification(t *testing.T) {
	mail := &mockMailer{}
	svc := newIntake(&mockOrderRepo{}, &mockContactRepo{}, mail, "")

	_, err := svc.SubmitOrder(context.Background(), model.RawOrder{
		Name: "Jane", Email: "jane@x.com", Phone: "555",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if mail.sent[0].To != "jane@x.com" {
		t.Errorf("expected admin notice to fall back to submitter, got %q", mail.sent[0].To)
	}
}
