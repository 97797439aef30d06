package memory

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"

	"animal-rescue/internal/domain/organizations"
)

type organizationRepo struct {
	mu   sync.RWMutex
	byID map[string]organizations.Organization
}

func NewOrganizationRepo() organizations.Repository {
	return &organizationRepo{
		byID: make(map[string]organizations.Organization),
	}
}

func (r *organizationRepo) Create(ctx context.Context, o organizations.Organization) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(o.ID) == "" {
		return errors.New("organization id required")
	}
	if _, exists := r.byID[o.ID]; exists {
		return errors.New("organization already exists")
	}
	r.byID[o.ID] = o
	return nil
}

func (r *organizationRepo) Update(ctx context.Context, o organizations.Organization) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[o.ID]; !exists {
		return organizations.ErrNotFound
	}
	r.byID[o.ID] = o
	return nil
}

func (r *organizationRepo) GetByID(ctx context.Context, id string) (organizations.Organization, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	o, ok := r.byID[id]
	if !ok {
		return organizations.Organization{}, organizations.ErrNotFound
	}
	return o, nil
}

func (r *organizationRepo) List(ctx context.Context, activeOnly bool) ([]organizations.Organization, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]organizations.Organization, 0, len(r.byID))
	for _, o := range r.byID {
		if activeOnly && !o.IsActive {
			continue
		}
		out = append(out, o)
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Name == out[j].Name {
			return out[i].ID < out[j].ID
		}
		return out[i].Name < out[j].Name
	})

	return out, nil
}
