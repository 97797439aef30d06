// Package storagetest tiene los tests de contrato que comparten todos los repositorios.
package storagetest

import (
	"context"
	"testing"
	"time"

	"animal-rescue/internal/domain/organizations"
	"animal-rescue/internal/domain/reports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var base = time.Date(2025, 12, 22, 10, 0, 0, 0, time.UTC)

func newReport(id string, offset time.Duration) reports.Report {
	return reports.Report{
		ID:          id,
		Name:        "Asha",
		Email:       "a@x.com",
		AnimalType:  reports.AnimalDog,
		Description: "limping",
		Location:    "Park Rd",
		Status:      reports.StatusPending,
		CreatedAt:   base.Add(offset),
	}
}

// RunReports ejercita un reports.Repository recién creado (vacío).
func RunReports(t *testing.T, newRepo func(t *testing.T) reports.Repository) {
	t.Run("create and get", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		in := newReport("r-1", 0)
		in.ImageKey = "reports/abc.jpg"
		require.NoError(t, repo.Create(ctx, in))

		got, err := repo.GetByID(ctx, "r-1")
		require.NoError(t, err)
		assert.Equal(t, in.ID, got.ID)
		assert.Equal(t, in.AnimalType, got.AnimalType)
		assert.Equal(t, in.ImageKey, got.ImageKey)
		assert.Equal(t, reports.StatusPending, got.Status)
		assert.True(t, in.CreatedAt.Equal(got.CreatedAt), "created_at %v != %v", in.CreatedAt, got.CreatedAt)
	})

	t.Run("get unknown returns ErrNotFound", func(t *testing.T) {
		repo := newRepo(t)
		_, err := repo.GetByID(context.Background(), "missing")
		assert.ErrorIs(t, err, reports.ErrNotFound)
	})

	t.Run("update keeps created_at", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		in := newReport("r-1", 0)
		require.NoError(t, repo.Create(ctx, in))

		upd := in
		upd.Status = reports.StatusAcknowledged
		upd.CreatedAt = base.Add(48 * time.Hour)
		require.NoError(t, repo.Update(ctx, upd))

		got, err := repo.GetByID(ctx, "r-1")
		require.NoError(t, err)
		assert.Equal(t, reports.StatusAcknowledged, got.Status)
		assert.True(t, in.CreatedAt.Equal(got.CreatedAt))
	})

	t.Run("update unknown returns ErrNotFound", func(t *testing.T) {
		repo := newRepo(t)
		err := repo.Update(context.Background(), newReport("missing", 0))
		assert.ErrorIs(t, err, reports.ErrNotFound)
	})

	t.Run("list newest first", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		require.NoError(t, repo.Create(ctx, newReport("old", 0)))
		require.NoError(t, repo.Create(ctx, newReport("newest", 2*time.Hour)))
		require.NoError(t, repo.Create(ctx, newReport("middle", time.Hour)))

		items, err := repo.List(ctx)
		require.NoError(t, err)
		require.Len(t, items, 3)
		assert.Equal(t, []string{"newest", "middle", "old"}, []string{items[0].ID, items[1].ID, items[2].ID})
	})
}

// RunOrganizations ejercita un organizations.Repository recién creado (vacío).
func RunOrganizations(t *testing.T, newRepo func(t *testing.T) organizations.Repository) {
	t.Run("create get update", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		o := organizations.Organization{
			ID: "o-1", Name: "Paws", Email: "org@y.com", Phone: "555",
			IsActive: true, CreatedAt: base, UpdatedAt: base,
		}
		require.NoError(t, repo.Create(ctx, o))

		got, err := repo.GetByID(ctx, "o-1")
		require.NoError(t, err)
		assert.Equal(t, "Paws", got.Name)
		assert.True(t, got.IsActive)

		got.IsActive = false
		got.UpdatedAt = base.Add(time.Minute)
		require.NoError(t, repo.Update(ctx, got))

		again, err := repo.GetByID(ctx, "o-1")
		require.NoError(t, err)
		assert.False(t, again.IsActive)
	})

	t.Run("unknown returns ErrNotFound", func(t *testing.T) {
		repo := newRepo(t)
		_, err := repo.GetByID(context.Background(), "missing")
		assert.ErrorIs(t, err, organizations.ErrNotFound)
		err = repo.Update(context.Background(), organizations.Organization{ID: "missing", Name: "x"})
		assert.ErrorIs(t, err, organizations.ErrNotFound)
	})

	t.Run("list active only", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		for _, o := range []organizations.Organization{
			{ID: "o-1", Name: "Wings", Email: "w@y.com", IsActive: true},
			{ID: "o-2", Name: "Closed", Email: "c@y.com", IsActive: false},
			{ID: "o-3", Name: "Paws", IsActive: true},
		} {
			o.CreatedAt, o.UpdatedAt = base, base
			require.NoError(t, repo.Create(ctx, o))
		}

		all, err := repo.List(ctx, false)
		require.NoError(t, err)
		assert.Len(t, all, 3)

		active, err := repo.List(ctx, true)
		require.NoError(t, err)
		require.Len(t, active, 2)
		assert.Equal(t, "Paws", active[0].Name)
		assert.Equal(t, "Wings", active[1].Name)
	})
}
