package mailer

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"text/template"

	"github.com/sendgrid/rest"
	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

type Purpose string

const (
	PurposeVerification Purpose = "verification"
	PurposeReset        Purpose = "reset"
)

// Sender is the subset of *sendgrid.Client the mailer needs.
type Sender interface {
	SendWithContext(ctx context.Context, email *mail.SGMailV3) (*rest.Response, error)
}

type Config struct {
	APIKey   string
	From     string
	FromName string
	// CodeTTLMinutes is only rendered into the message body.
	CodeTTLMinutes int
}

type SendgridMailer struct {
	sender         Sender
	from           *mail.Email
	codeTTLMinutes int
}

func NewSendgrid(cfg Config) *SendgridMailer {
	return NewWithSender(sendgrid.NewSendClient(cfg.APIKey), cfg)
}

func NewWithSender(s Sender, cfg Config) *SendgridMailer {
	return &SendgridMailer{
		sender:         s,
		from:           mail.NewEmail(cfg.FromName, cfg.From),
		codeTTLMinutes: cfg.CodeTTLMinutes,
	}
}

const verificationPlain = `Welcome to StarHealth!

Your verification code is {{.Code}}.
It expires in {{.TTLMinutes}} minutes.
`

const resetPlain = `A password reset was requested for your StarHealth account.

Your reset code is {{.Code}}.
It expires in {{.TTLMinutes}} minutes. If you didn't ask for it, ignore this email.
`

var templates = map[Purpose]*template.Template{
	PurposeVerification: template.Must(template.New("verification").Parse(verificationPlain)),
	PurposeReset:        template.Must(template.New("reset").Parse(resetPlain)),
}

var subjects = map[Purpose]string{
	PurposeVerification: "Your StarHealth verification code",
	PurposeReset:        "Your StarHealth password reset code",
}

func (m *SendgridMailer) SendCode(ctx context.Context, to string, purpose Purpose, code string) error {
	tmpl, ok := templates[purpose]
	if !ok {
		return fmt.Errorf("unknown mail purpose %q", purpose)
	}
	message := mail.NewV3Mail()
	message.From = m.from
	message.Subject = subjects[purpose]

	personalization := mail.NewPersonalization()
	personalization.To = append(personalization.To, mail.NewEmail("", to))
	message.Personalizations = append(message.Personalizations, personalization)

	textContent := &bytes.Buffer{}
	err := tmpl.Execute(textContent, struct {
		Code       string
		TTLMinutes int
	}{code, m.codeTTLMinutes})
	if err != nil {
		return fmt.Errorf("while templating plain-text email content: %w", err)
	}
	message.Content = append(message.Content, mail.NewContent("text/plain", textContent.String()))

	resp, err := m.sender.SendWithContext(ctx, message)
	if err != nil {
		return fmt.Errorf("while sending mail through SendGrid: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("non-2XX response while sending mail through SendGrid: %d %s", resp.StatusCode, resp.Body)
	}
	return nil
}

// LogMailer only logs that a code was issued. Used when no SendGrid key is configured.
type LogMailer struct {
	logger *slog.Logger
}

func NewLogMailer(logger *slog.Logger) *LogMailer {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogMailer{logger: logger}
}

func (m *LogMailer) SendCode(_ context.Context, to string, purpose Purpose, _ string) error {
	m.logger.Warn("mail delivery disabled, code not sent",
		slog.String("to", to), slog.String("purpose", string(purpose)))
	return nil
}
