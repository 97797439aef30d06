package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"animal-rescue/internal/domain/organizations"
)

type OrganizationsRepo struct {
	db      *sql.DB
	dialect Dialect
}

func NewOrganizationsRepo(db *sql.DB, dialect Dialect) *OrganizationsRepo {
	return &OrganizationsRepo{db: db, dialect: dialect}
}

const organizationColumns = `
	id, name, email, phone,
	is_active, created_at, updated_at
`

func (r *OrganizationsRepo) Create(ctx context.Context, o organizations.Organization) error {
	_, err := r.db.ExecContext(ctx, r.dialect.Rebind(`
		INSERT INTO organizations (`+organizationColumns+`)
		VALUES (?,?,?,?,?,?,?)
	`),
		o.ID,
		o.Name,
		o.Email,
		o.Phone,
		o.IsActive,
		o.CreatedAt.UTC(),
		o.UpdatedAt.UTC(),
	)
	return err
}

func (r *OrganizationsRepo) Update(ctx context.Context, o organizations.Organization) error {
	res, err := r.db.ExecContext(ctx, r.dialect.Rebind(`
		UPDATE organizations
		SET
			name = ?,
			email = ?,
			phone = ?,
			is_active = ?,
			updated_at = ?
		WHERE id = ?
	`),
		o.Name,
		o.Email,
		o.Phone,
		o.IsActive,
		o.UpdatedAt.UTC(),
		o.ID,
	)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return organizations.ErrNotFound
	}
	return nil
}

func (r *OrganizationsRepo) GetByID(ctx context.Context, id string) (organizations.Organization, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return organizations.Organization{}, organizations.ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, r.dialect.Rebind(`
		SELECT `+organizationColumns+`
		FROM organizations
		WHERE id = ?
	`), id)

	o, err := scanOrganization(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return organizations.Organization{}, organizations.ErrNotFound
		}
		return organizations.Organization{}, err
	}
	return o, nil
}

func (r *OrganizationsRepo) List(ctx context.Context, activeOnly bool) ([]organizations.Organization, error) {
	q := `SELECT ` + organizationColumns + ` FROM organizations`
	args := []any{}
	if activeOnly {
		q += ` WHERE is_active = ?`
		args = append(args, true)
	}
	q += ` ORDER BY name ASC, id ASC`

	rows, err := r.db.QueryContext(ctx, r.dialect.Rebind(q), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]organizations.Organization, 0)
	for rows.Next() {
		o, err := scanOrganization(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, o)
	}

	return out, rows.Err()
}

func scanOrganization(s scanner) (organizations.Organization, error) {
	var o organizations.Organization
	if err := s.Scan(
		&o.ID,
		&o.Name,
		&o.Email,
		&o.Phone,
		&o.IsActive,
		&o.CreatedAt,
		&o.UpdatedAt,
	); err != nil {
		return organizations.Organization{}, err
	}
	o.CreatedAt = o.CreatedAt.UTC()
	o.UpdatedAt = o.UpdatedAt.UTC()
	return o, nil
}
