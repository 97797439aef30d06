package sqlite

import (
	"database/sql"
	"testing"

	"animal-rescue/internal/adapters/storage/storagetest"
	"animal-rescue/internal/domain/organizations"
	"animal-rescue/internal/domain/reports"

	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestReportsRepo_Contract(t *testing.T) {
	storagetest.RunReports(t, func(t *testing.T) reports.Repository {
		return NewReportsRepo(openTestDB(t))
	})
}

func TestOrganizationsRepo_Contract(t *testing.T) {
	storagetest.RunOrganizations(t, func(t *testing.T) organizations.Repository {
		return NewOrganizationsRepo(openTestDB(t))
	})
}

func TestOpen_SchemaIsIdempotent(t *testing.T) {
	path := t.TempDir() + "/rescue.db"

	db, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, db.Close())

	db, err = Open(path)
	require.NoError(t, err)
	require.NoError(t, db.Close())
}
