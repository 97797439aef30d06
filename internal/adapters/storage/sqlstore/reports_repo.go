package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"animal-rescue/internal/domain/reports"
)

type ReportsRepo struct {
	db      *sql.DB
	dialect Dialect
}

func NewReportsRepo(db *sql.DB, dialect Dialect) *ReportsRepo {
	return &ReportsRepo{db: db, dialect: dialect}
}

const reportColumns = `
	id, name, email,
	animal_type, description, location,
	image_key, status, created_at
`

func (r *ReportsRepo) Create(ctx context.Context, rep reports.Report) error {
	_, err := r.db.ExecContext(ctx, r.dialect.Rebind(`
		INSERT INTO animal_reports (`+reportColumns+`)
		VALUES (?,?,?,?,?,?,?,?,?)
	`),
		rep.ID,
		rep.Name,
		rep.Email,
		string(rep.AnimalType),
		rep.Description,
		rep.Location,
		rep.ImageKey,
		string(rep.Status),
		rep.CreatedAt.UTC(),
	)
	return err
}

// Update no toca created_at.
func (r *ReportsRepo) Update(ctx context.Context, rep reports.Report) error {
	res, err := r.db.ExecContext(ctx, r.dialect.Rebind(`
		UPDATE animal_reports
		SET
			name = ?,
			email = ?,
			animal_type = ?,
			description = ?,
			location = ?,
			image_key = ?,
			status = ?
		WHERE id = ?
	`),
		rep.Name,
		rep.Email,
		string(rep.AnimalType),
		rep.Description,
		rep.Location,
		rep.ImageKey,
		string(rep.Status),
		rep.ID,
	)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return reports.ErrNotFound
	}
	return nil
}

func (r *ReportsRepo) GetByID(ctx context.Context, id string) (reports.Report, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return reports.Report{}, reports.ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, r.dialect.Rebind(`
		SELECT `+reportColumns+`
		FROM animal_reports
		WHERE id = ?
	`), id)

	rep, err := scanReport(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return reports.Report{}, reports.ErrNotFound
		}
		return reports.Report{}, err
	}
	return rep, nil
}

func (r *ReportsRepo) List(ctx context.Context) ([]reports.Report, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+reportColumns+`
		FROM animal_reports
		ORDER BY created_at DESC, id DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]reports.Report, 0)
	for rows.Next() {
		rep, err := scanReport(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rep)
	}

	return out, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanReport(s scanner) (reports.Report, error) {
	var rep reports.Report
	var animalType, status string
	if err := s.Scan(
		&rep.ID,
		&rep.Name,
		&rep.Email,
		&animalType,
		&rep.Description,
		&rep.Location,
		&rep.ImageKey,
		&status,
		&rep.CreatedAt,
	); err != nil {
		return reports.Report{}, err
	}

	rep.AnimalType = reports.AnimalType(animalType)
	rep.Status = reports.Status(status)
	rep.CreatedAt = rep.CreatedAt.UTC()
	return rep, nil
}
