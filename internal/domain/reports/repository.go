package reports

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("report not found")

type Repository interface {
	Create(ctx context.Context, r Report) error
	// Update persiste los campos mutables; nunca toca CreatedAt.
	Update(ctx context.Context, r Report) error
	GetByID(ctx context.Context, id string) (Report, error)
	// List devuelve todos los reportes, más reciente primero.
	List(ctx context.Context) ([]Report, error)
}
