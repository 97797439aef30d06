package notify

import "context"

//go:generate mockgen -source=sink.go -destination=mocks/mocks.go -package=mocks Sink

// Message es una notificación ya compuesta: asunto, cuerpo en texto plano,
// remitente y destinatarios.
type Message struct {
	From    string
	To      []string
	Subject string
	Body    string
}

// Sink entrega mensajes. No hay reintentos ni confirmación de entrega:
// un error solo indica que el intento falló.
type Sink interface {
	Send(ctx context.Context, msg Message) error
}
