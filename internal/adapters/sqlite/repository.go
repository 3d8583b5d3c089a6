package sqlite

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/csg33k/semogye/internal/domain"
)

//go:embed schema.sql
var schema string

type Repository struct {
	db *sql.DB
}

// New opens the SQLite database and creates any missing tables.
func New(dsn string) (*Repository, error) {
	db, err := sql.Open("sqlite3", dsn+"?_foreign_keys=on")
	if err != nil {
		return nil, err
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}
	return &Repository{db: db}, nil
}

func (r *Repository) Close() error { return r.db.Close() }

// ── Rosters ───────────────────────────────────────────────────────────────────

func (r *Repository) CreateRoster(ctx context.Context, ro *domain.Roster) error {
	if err := checkWorkers(ro.Workers); err != nil {
		return err
	}
	now := time.Now().UTC()
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx,
		`INSERT INTO rosters (name, created_at, updated_at) VALUES (?,?,?)`,
		ro.Name, now, now)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	if err := insertWorkers(ctx, tx, id, ro.Workers); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return err
	}
	ro.ID, ro.CreatedAt, ro.UpdatedAt = id, now, now
	return nil
}

func (r *Repository) GetRoster(ctx context.Context, id int64) (*domain.Roster, error) {
	ro := &domain.Roster{}
	err := r.db.QueryRowContext(ctx,
		`SELECT id, name, created_at, updated_at FROM rosters WHERE id=?`, id).
		Scan(&ro.ID, &ro.Name, &ro.CreatedAt, &ro.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrRosterNotFound
	}
	if err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, hourly_wage, monthly_hours, days_per_week, weekly_holiday, freelancer
		FROM roster_workers WHERE roster_id=? ORDER BY position`, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var (
			w                   domain.WorkerRow
			holiday, freelancer int
		)
		if err := rows.Scan(
			&w.ID, &w.Name,
			&w.HourlyInputs.HourlyWage, &w.HourlyInputs.MonthlyHours, &w.HourlyInputs.WorkDaysPerWeek,
			&holiday, &freelancer,
		); err != nil {
			return nil, err
		}
		w.HourlyInputs.IncludeWeeklyHolidayPay = holiday == 1
		w.IsFreelancer = freelancer == 1
		ro.Workers = append(ro.Workers, w)
	}
	return ro, rows.Err()
}

// ListRosters returns every roster, newest first, without workers.
func (r *Repository) ListRosters(ctx context.Context) ([]domain.Roster, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, created_at, updated_at
		FROM rosters ORDER BY updated_at DESC, id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var list []domain.Roster
	for rows.Next() {
		var ro domain.Roster
		if err := rows.Scan(&ro.ID, &ro.Name, &ro.CreatedAt, &ro.UpdatedAt); err != nil {
			return nil, err
		}
		list = append(list, ro)
	}
	return list, rows.Err()
}

// UpdateRoster renames the roster and replaces all of its workers.
func (r *Repository) UpdateRoster(ctx context.Context, ro *domain.Roster) error {
	if err := checkWorkers(ro.Workers); err != nil {
		return err
	}
	now := time.Now().UTC()
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx,
		`UPDATE rosters SET name=?, updated_at=? WHERE id=?`, ro.Name, now, ro.ID)
	if err != nil {
		return err
	}
	if err := mustAffect(res); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM roster_workers WHERE roster_id=?`, ro.ID); err != nil {
		return err
	}
	if err := insertWorkers(ctx, tx, ro.ID, ro.Workers); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return err
	}
	ro.UpdatedAt = now
	return nil
}

func (r *Repository) DeleteRoster(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM rosters WHERE id=?`, id)
	if err != nil {
		return err
	}
	return mustAffect(res)
}

// ── Helpers ───────────────────────────────────────────────────────────────────

func insertWorkers(ctx context.Context, tx *sql.Tx, rosterID int64, workers []domain.WorkerRow) error {
	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO roster_workers (
			roster_id, position, id, name,
			hourly_wage, monthly_hours, days_per_week, weekly_holiday, freelancer
		) VALUES (?,?,?,?,?,?,?,?,?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()
	for i, w := range workers {
		if _, err := stmt.ExecContext(ctx,
			rosterID, i, w.ID, w.Name,
			w.HourlyInputs.HourlyWage, w.HourlyInputs.MonthlyHours, w.HourlyInputs.WorkDaysPerWeek,
			boolToInt(w.HourlyInputs.IncludeWeeklyHolidayPay), boolToInt(w.IsFreelancer),
		); err != nil {
			return fmt.Errorf("insert worker %d: %w", i, err)
		}
	}
	return nil
}

func checkWorkers(workers []domain.WorkerRow) error {
	switch {
	case len(workers) == 0:
		return domain.ErrEmptyRoster
	case len(workers) > domain.MaxWorkers:
		return domain.ErrTooManyWorkers
	}
	return nil
}

func mustAffect(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrRosterNotFound
	}
	return nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
