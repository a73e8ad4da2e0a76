package notify

import "context"

// Message es un aviso para el equipo del abrigo.
// HTML es el cuerpo del e-mail; Summary una versión corta en texto plano (chat).
type Message struct {
	Subject string
	HTML    string
	Summary string
}

// Notifier entrega un Message al destino configurado (e-mail fijo de la ONG, chat, ...).
type Notifier interface {
	Notify(ctx context.Context, msg Message) error
}
