package organizations

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
)

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

type CreateInput struct {
	Name  string
	Email string
	Phone string
	// IsActive nil => true.
	IsActive *bool
}

func (s *Service) Create(ctx context.Context, in CreateInput) (Organization, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return Organization{}, ErrInvalidInput
	}

	active := true
	if in.IsActive != nil {
		active = *in.IsActive
	}

	now := s.now().UTC()
	o := Organization{
		ID:        uuid.NewString(),
		Name:      name,
		Email:     strings.TrimSpace(in.Email),
		Phone:     strings.TrimSpace(in.Phone),
		IsActive:  active,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Create(ctx, o); err != nil {
		return Organization{}, err
	}
	return o, nil
}

// UpdateInput usa punteros para PATCH real: nil = no tocar.
type UpdateInput struct {
	Name     *string
	Email    *string
	Phone    *string
	IsActive *bool
}

func (s *Service) Update(ctx context.Context, id string, in UpdateInput) (Organization, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Organization{}, ErrNotFound
	}

	o, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Organization{}, err
	}

	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return Organization{}, ErrInvalidInput
		}
		o.Name = name
	}
	if in.Email != nil {
		o.Email = strings.TrimSpace(*in.Email)
	}
	if in.Phone != nil {
		o.Phone = strings.TrimSpace(*in.Phone)
	}
	if in.IsActive != nil {
		o.IsActive = *in.IsActive
	}
	o.UpdatedAt = s.now().UTC()

	if err := s.repo.Update(ctx, o); err != nil {
		return Organization{}, err
	}
	return o, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Organization, error) {
	return s.repo.GetByID(ctx, strings.TrimSpace(id))
}

func (s *Service) List(ctx context.Context) ([]Organization, error) {
	return s.repo.List(ctx, false)
}

// ListActive es lo que consume el motor de notificaciones.
func (s *Service) ListActive(ctx context.Context) ([]Organization, error) {
	return s.repo.List(ctx, true)
}
