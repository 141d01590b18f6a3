package notifier

//go:generate go run go.uber.org/mock/mockgen -source=./notifier.go -destination=../mocks/notifier_mock.go -package=mocks

import (
	"bytes"
	"context"
	"fmt"
	"html/template"

	"popflea/config"
	"popflea/infras/mailer"
	"popflea/internal/domains/booking/model"
)

// Notifier formats and sends the guest-facing status emails. The
// lifecycle manager decides when to notify; this package only decides
// how the message reads. Errors are returned so callers can log them,
// but no caller treats them as fatal.
type Notifier interface {
	BookingReceived(ctx context.Context, booking model.Booking) error
	BookingConfirmed(ctx context.Context, booking model.Booking) error
	PaymentVerified(ctx context.Context, booking model.Booking) error
	BookingCancelled(ctx context.Context, booking model.Booking) error
}

type templateData struct {
	Booking           model.Booking
	Venue             string
	ReimbursementNote string
}

type notifierImpl struct {
	mailer mailer.Mailer
	cfg    *config.Config

	received  *template.Template
	confirmed *template.Template
	verified  *template.Template
	cancelled *template.Template
}

func New(mail mailer.Mailer, cfg *config.Config) Notifier {
	return &notifierImpl{
		mailer:    mail,
		cfg:       cfg,
		received:  template.Must(template.New("received").Parse(receivedBody)),
		confirmed: template.Must(template.New("confirmed").Parse(confirmedBody)),
		verified:  template.Must(template.New("verified").Parse(verifiedBody)),
		cancelled: template.Must(template.New("cancelled").Parse(cancelledBody)),
	}
}

func (n *notifierImpl) send(ctx context.Context, booking model.Booking, subject string, tmpl *template.Template) error {
	data := templateData{
		Booking:           booking,
		Venue:             n.cfg.Event.Venue,
		ReimbursementNote: n.cfg.Event.ReimbursementNote,
	}

	var body bytes.Buffer
	if err := tmpl.Execute(&body, data); err != nil {
		return fmt.Errorf("failed to render email template: %w", err)
	}

	return n.mailer.Send(ctx, booking.Email, subject, body.String()) //nolint:wrapcheck
}

func (n *notifierImpl) BookingReceived(ctx context.Context, booking model.Booking) error {
	subject := fmt.Sprintf("Booking Request Received - #%s - PoppinFlea", booking.RefID)

	return n.send(ctx, booking, subject, n.received)
}

func (n *notifierImpl) BookingConfirmed(ctx context.Context, booking model.Booking) error {
	subject := fmt.Sprintf("Booking Confirmed - #%s - PoppinFlea", booking.RefID)

	return n.send(ctx, booking, subject, n.confirmed)
}

func (n *notifierImpl) PaymentVerified(ctx context.Context, booking model.Booking) error {
	subject := fmt.Sprintf("Payment Verified & Booking Confirmed! - #%s - PoppinFlea", booking.RefID)

	return n.send(ctx, booking, subject, n.verified)
}

func (n *notifierImpl) BookingCancelled(ctx context.Context, booking model.Booking) error {
	subject := fmt.Sprintf("Booking Cancelled - #%s - PoppinFlea", booking.RefID)

	return n.send(ctx, booking, subject, n.cancelled)
}
