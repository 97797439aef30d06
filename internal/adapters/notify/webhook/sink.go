package webhook

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"animal-rescue/internal/platform/httpclient"
	"animal-rescue/internal/ports/notify"
)

// Sink reenvía cada mensaje como JSON a un relay HTTP (p.ej. un servicio de mail transaccional).
type Sink struct {
	url    string
	token  string
	client *httpclient.Client
}

type Config struct {
	URL     string
	Token   string // opcional, va en Authorization: Bearer
	Timeout time.Duration
}

type payload struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	Body    string   `json:"body"`
}

func New(cfg Config) (*Sink, error) {
	if err := httpclient.ValidateURL(cfg.URL); err != nil {
		return nil, fmt.Errorf("webhook: %w", err)
	}
	return &Sink{
		url:    strings.TrimSpace(cfg.URL),
		token:  strings.TrimSpace(cfg.Token),
		client: httpclient.New(cfg.Timeout),
	}, nil
}

var _ notify.Sink = (*Sink)(nil)

func (s *Sink) Send(ctx context.Context, msg notify.Message) error {
	if len(msg.To) == 0 {
		return errors.New("webhook: no recipients")
	}

	var headers map[string]string
	if s.token != "" {
		headers = map[string]string{"Authorization": "Bearer " + s.token}
	}

	err := s.client.PostJSON(ctx, s.url, headers, payload{
		From:    msg.From,
		To:      msg.To,
		Subject: msg.Subject,
		Body:    msg.Body,
	}, nil)
	if err != nil {
		return fmt.Errorf("webhook: %w", err)
	}
	return nil
}
