package smtp

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"animal-rescue/internal/ports/notify"

	mail "github.com/wneessen/go-mail"
)

var ErrNoRecipients = errors.New("smtp: no recipients")

type Config struct {
	Host     string
	Port     int
	Username string // opcional; sin usuario no hay SMTP AUTH
	Password string
	Timeout  time.Duration
}

// Sink envía por SMTP con go-mail. TLS oportunista (STARTTLS si el server lo ofrece).
type Sink struct {
	client *mail.Client
}

func New(cfg Config) (*Sink, error) {
	host := strings.TrimSpace(cfg.Host)
	if host == "" {
		return nil, errors.New("smtp: host required")
	}
	port := cfg.Port
	if port <= 0 {
		port = 587
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	opts := []mail.Option{
		mail.WithPort(port),
		mail.WithTimeout(timeout),
		mail.WithTLSPolicy(mail.TLSOpportunistic),
	}
	if cfg.Username != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(cfg.Username),
			mail.WithPassword(cfg.Password),
		)
	}

	c, err := mail.NewClient(host, opts...)
	if err != nil {
		return nil, fmt.Errorf("smtp: new client: %w", err)
	}
	return &Sink{client: c}, nil
}

var _ notify.Sink = (*Sink)(nil)

func (s *Sink) Send(ctx context.Context, msg notify.Message) error {
	m, err := buildMessage(msg)
	if err != nil {
		return err
	}
	if err := s.client.DialAndSendWithContext(ctx, m); err != nil {
		return fmt.Errorf("smtp: send: %w", err)
	}
	return nil
}

func buildMessage(msg notify.Message) (*mail.Msg, error) {
	if len(msg.To) == 0 {
		return nil, ErrNoRecipients
	}

	m := mail.NewMsg()
	if err := m.From(msg.From); err != nil {
		return nil, fmt.Errorf("smtp: invalid from %q: %w", msg.From, err)
	}
	if err := m.To(msg.To...); err != nil {
		return nil, fmt.Errorf("smtp: invalid recipients: %w", err)
	}
	m.Subject(msg.Subject)
	m.SetBodyString(mail.TypeTextPlain, msg.Body)
	return m, nil
}
