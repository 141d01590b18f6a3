package mailer

//go:generate go run go.uber.org/mock/mockgen -source=./mailer.go -destination=./mocks/mailer_mock.go -package=mocks

import (
	"context"
	"fmt"

	"popflea/config"
	"popflea/infras/otel"
	"popflea/shared/constant"

	"github.com/rs/zerolog/log"
	gomail "gopkg.in/gomail.v2"
)

const (
	otelAttrRecipient = "mail.to"
	otelAttrSubject   = "mail.subject"
)

// Mailer delivers transactional email over SMTP. When SMTP credentials
// are absent the mailer stays disabled and Send becomes a logged no-op,
// so bookings never fail for lack of an email account.
type Mailer interface {
	Enabled() bool
	Send(ctx context.Context, to, subject, htmlBody string) error
}

type mailerImpl struct {
	dialer  *gomail.Dialer
	from    string
	otel    otel.Otel
	enabled bool
}

func (m *mailerImpl) Enabled() bool {
	return m.enabled
}

func (m *mailerImpl) Send(ctx context.Context, to, subject, htmlBody string) (err error) {
	_, scope := m.otel.NewScope(ctx, constant.OtelMailScopeName, constant.OtelMailScopeName+".Send")
	defer scope.End()
	defer scope.TraceIfError(err)

	scope.SetAttributes(map[string]any{
		otelAttrRecipient: to,
		otelAttrSubject:   subject,
	})

	if !m.enabled {
		log.Info().Str("to", to).Str("subject", subject).Msg("Email credentials not configured, skipping email")

		return nil
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", htmlBody)

	if err = m.dialer.DialAndSend(msg); err != nil {
		log.Error().Err(err).Str("to", to).Msg("failed to send email")

		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}

func New(cfg *config.Config, otl otel.Otel) Mailer {
	if cfg.Email.Username == "" || cfg.Email.Password == "" {
		log.Warn().Msg("Email credentials not configured, transactional emails disabled")

		return &mailerImpl{otel: otl, enabled: false}
	}

	dialer := gomail.NewDialer(cfg.Email.Host, cfg.Email.Port, cfg.Email.Username, cfg.Email.Password)
	from := fmt.Sprintf("%q <%s>", cfg.Email.FromName, cfg.Email.Username)

	return &mailerImpl{
		dialer:  dialer,
		from:    from,
		otel:    otl,
		enabled: true,
	}
}
