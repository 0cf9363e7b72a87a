package service

import (
	"fmt"
	"strings"

	"github.com/shopfront/backend/internal/model"
	"github.com/shopfront/backend/pkg/mailer"
)

// ComposeMessages builds the outbound notifications for a submission: one
// admin notice for a contact, an admin notice followed by a customer
// confirmation for an order. The returned order is the send order.
//
// When no admin address is configured the admin notice goes to the
// submitter's own email rather than being dropped.
func ComposeMessages(sub *model.Submission, adminEmail string) []mailer.Message {
	admin := adminEmail
	if admin == "" {
		admin = sub.Email
	}

	if sub.Kind == model.KindOrder {
		return []mailer.Message{
			adminOrderNotice(sub, admin),
			customerOrderConfirmation(sub),
		}
	}
	return []mailer.Message{adminContactNotice(sub, admin)}
}

func adminContactNotice(sub *model.Submission, to string) mailer.Message {
	var b strings.Builder
	b.WriteString("<h2>New Contact Form Submission</h2>")
	fmt.Fprintf(&b, "<p><strong>Name:</strong> %s</p>", sub.Name)
	fmt.Fprintf(&b, "<p><strong>Email:</strong> %s</p>", sub.Email)
	if sub.Phone != "" {
		fmt.Fprintf(&b, "<p><strong>Phone:</strong> %s</p>", sub.Phone)
	}
	fmt.Fprintf(&b, "<p><strong>Message:</strong></p><p>%s</p>", nl2br(sub.Details))

	return mailer.Message{
		To:      to,
		Subject: "New contact form submission from " + sub.Name,
		HTML:    b.String(),
	}
}

func adminOrderNotice(sub *model.Submission, to string) mailer.Message {
	var b strings.Builder
	b.WriteString("<h2>New Order Received</h2>")
	fmt.Fprintf(&b, "<p><strong>Customer:</strong> %s</p>", sub.Name)
	fmt.Fprintf(&b, "<p><strong>Email:</strong> %s</p>", sub.Email)
	fmt.Fprintf(&b, "<p><strong>Phone:</strong> %s</p>", sub.Phone)
	if sub.Address != model.AddressNotProvided {
		fmt.Fprintf(&b, "<p><strong>Address:</strong> %s</p>", nl2br(sub.Address))
	}
	fmt.Fprintf(&b, "<p><strong>Items:</strong> %s</p>", nl2br(sub.Details))
	if sub.Notes != "" {
		fmt.Fprintf(&b, "<p><strong>Notes:</strong> %s</p>", nl2br(sub.Notes))
	}

	return mailer.Message{
		To:      to,
		Subject: "New order from " + sub.Name,
		HTML:    b.String(),
	}
}

// customerOrderConfirmation echoes back only the items description; admin
// fields (phone, address) never appear in the customer-facing message.
func customerOrderConfirmation(sub *model.Submission) mailer.Message {
	var b strings.Builder
	fmt.Fprintf(&b, "<p>Hi %s,</p>", sub.Name)
	b.WriteString("<p>Thank you for your order. We have received your request for:</p>")
	fmt.Fprintf(&b, "<p>%s</p>", nl2br(sub.Details))
	b.WriteString("<p>We will be in touch shortly.</p>")

	return mailer.Message{
		To:      sub.Email,
		Subject: "Order confirmation",
		HTML:    b.String(),
	}
}

// nl2br renders newline characters as HTML line breaks.
func nl2br(s string) string {
	return strings.ReplaceAll(s, "\n", "<br>")
}
