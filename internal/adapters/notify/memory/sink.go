package memory

import (
	"context"
	"sync"

	"animal-rescue/internal/platform/logger"
	"animal-rescue/internal/ports/notify"
)

// Sink guarda los mensajes en memoria y los loguea. Sirve en dev y en tests end-to-end.
type Sink struct {
	mu   sync.Mutex
	sent []notify.Message
	log  logger.Logger
}

func NewSink(log logger.Logger) *Sink {
	if log == nil {
		log = logger.Nop()
	}
	return &Sink{log: log}
}

var _ notify.Sink = (*Sink)(nil)

func (s *Sink) Send(ctx context.Context, msg notify.Message) error {
	cp := msg
	cp.To = append([]string(nil), msg.To...)

	s.mu.Lock()
	s.sent = append(s.sent, cp)
	s.mu.Unlock()

	s.log.Info("notification captured", map[string]any{
		"to":      cp.To,
		"subject": cp.Subject,
	})
	return nil
}

// Sent devuelve una copia de lo enviado hasta ahora.
func (s *Sink) Sent() []notify.Message {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]notify.Message, len(s.sent))
	copy(out, s.sent)
	return out
}

func (s *Sink) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sent = nil
}
