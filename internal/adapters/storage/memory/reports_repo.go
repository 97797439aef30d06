package memory

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"

	"animal-rescue/internal/domain/reports"
)

type reportRepo struct {
	mu   sync.RWMutex
	byID map[string]reports.Report
}

func NewReportRepo() reports.Repository {
	return &reportRepo{
		byID: make(map[string]reports.Report),
	}
}

func (r *reportRepo) Create(ctx context.Context, rep reports.Report) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(rep.ID) == "" {
		return errors.New("report id required")
	}
	if _, exists := r.byID[rep.ID]; exists {
		return errors.New("report already exists")
	}
	r.byID[rep.ID] = rep
	return nil
}

func (r *reportRepo) Update(ctx context.Context, rep reports.Report) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	current, exists := r.byID[rep.ID]
	if !exists {
		return reports.ErrNotFound
	}
	// created_at es inmutable
	rep.CreatedAt = current.CreatedAt
	r.byID[rep.ID] = rep
	return nil
}

func (r *reportRepo) GetByID(ctx context.Context, id string) (reports.Report, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rep, ok := r.byID[id]
	if !ok {
		return reports.Report{}, reports.ErrNotFound
	}
	return rep, nil
}

func (r *reportRepo) List(ctx context.Context) ([]reports.Report, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]reports.Report, 0, len(r.byID))
	for _, rep := range r.byID {
		out = append(out, rep)
	}

	// Más reciente primero; desempate por id para orden estable.
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID > out[j].ID
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})

	return out, nil
}
