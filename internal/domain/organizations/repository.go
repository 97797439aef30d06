package organizations

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("organization not found")

type Repository interface {
	Create(ctx context.Context, o Organization) error
	Update(ctx context.Context, o Organization) error
	GetByID(ctx context.Context, id string) (Organization, error)
	// List ordena por nombre. activeOnly filtra IsActive == true.
	List(ctx context.Context, activeOnly bool) ([]Organization, error)
}
