package organizations

import (
	"strings"
	"time"
)

// Organization es un refugio / ONG que recibe avisos de reportes nuevos.
type Organization struct {
	ID string

	Name  string
	Email string // opcional
	Phone string // opcional

	IsActive bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Notifiable: activa y con email no vacío.
func (o Organization) Notifiable() bool {
	return o.IsActive && strings.TrimSpace(o.Email) != ""
}

func (o Organization) String() string {
	contact := o.Email
	if contact == "" {
		contact = o.Phone
	}
	return o.Name + " (" + contact + ")"
}
