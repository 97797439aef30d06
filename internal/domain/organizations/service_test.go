package organizations_test

import (
	"context"
	"testing"

	"animal-rescue/internal/adapters/storage/memory"
	"animal-rescue/internal/domain/organizations"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func TestCreate_DefaultsActiveAndTrims(t *testing.T) {
	svc := organizations.NewService(memory.NewOrganizationRepo())

	o, err := svc.Create(context.Background(), organizations.CreateInput{
		Name:  " Paws Rescue ",
		Email: " org@y.com ",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, o.ID)
	assert.Equal(t, "Paws Rescue", o.Name)
	assert.Equal(t, "org@y.com", o.Email)
	assert.True(t, o.IsActive)
	assert.True(t, o.Notifiable())
	assert.Equal(t, o.CreatedAt, o.UpdatedAt)
}

func TestCreate_RequiresName(t *testing.T) {
	svc := organizations.NewService(memory.NewOrganizationRepo())

	_, err := svc.Create(context.Background(), organizations.CreateInput{Name: "   ", Email: "org@y.com"})
	assert.ErrorIs(t, err, organizations.ErrInvalidInput)
}

func TestListActive_FiltersInactive(t *testing.T) {
	svc := organizations.NewService(memory.NewOrganizationRepo())
	ctx := context.Background()

	_, err := svc.Create(ctx, organizations.CreateInput{Name: "Wings", Email: "birds@y.com"})
	require.NoError(t, err)
	_, err = svc.Create(ctx, organizations.CreateInput{Name: "Closed", Email: "c@y.com", IsActive: ptr(false)})
	require.NoError(t, err)
	_, err = svc.Create(ctx, organizations.CreateInput{Name: "Alley Cats", Phone: "555-0101"})
	require.NoError(t, err)

	all, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "Alley Cats", all[0].Name)

	active, err := svc.ListActive(ctx)
	require.NoError(t, err)
	require.Len(t, active, 2)
	for _, o := range active {
		assert.True(t, o.IsActive)
	}
	assert.False(t, active[0].Notifiable(), "phone-only org is active but not notifiable")
}

func TestUpdate_PartialPatch(t *testing.T) {
	svc := organizations.NewService(memory.NewOrganizationRepo())
	ctx := context.Background()

	o, err := svc.Create(ctx, organizations.CreateInput{Name: "Paws", Email: "org@y.com", Phone: "555"})
	require.NoError(t, err)

	updated, err := svc.Update(ctx, o.ID, organizations.UpdateInput{IsActive: ptr(false)})
	require.NoError(t, err)
	assert.False(t, updated.IsActive)
	assert.Equal(t, "Paws", updated.Name)
	assert.Equal(t, "org@y.com", updated.Email)
	assert.Equal(t, "555", updated.Phone)
	assert.Equal(t, o.CreatedAt, updated.CreatedAt)

	got, err := svc.GetByID(ctx, o.ID)
	require.NoError(t, err)
	assert.False(t, got.IsActive)

	_, err = svc.Update(ctx, o.ID, organizations.UpdateInput{Name: ptr("  ")})
	assert.ErrorIs(t, err, organizations.ErrInvalidInput)

	_, err = svc.Update(ctx, "missing", organizations.UpdateInput{Email: ptr("x@y.com")})
	assert.ErrorIs(t, err, organizations.ErrNotFound)
}

func TestOrganization_String(t *testing.T) {
	assert.Equal(t, "Paws (org@y.com)", organizations.Organization{Name: "Paws", Email: "org@y.com"}.String())
	assert.Equal(t, "Alley (555)", organizations.Organization{Name: "Alley", Phone: "555"}.String())
}
