package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/Nicolas152/BDD-Funes-Morales/internal/domain"
)

// код unique_violation в Postgres
const pgUniqueViolation = "23505"

func (r *PGRepo) CreateStudent(ctx context.Context, s domain.Student) (domain.Student, error) {
	q := r.qb().Insert(fmt.Sprintf("%s.students", r.schema)).
		Columns("id", "name", "email").
		Values(s.ID, s.Name, s.Email).
		Suffix("RETURNING id, name, email")

	sqlStr, args, _ := q.ToSql()
	r.logSQL("CreateStudent", sqlStr, args)

	start := time.Now()
	row := r.pool.QueryRow(ctx, sqlStr, args...)
	var out domain.Student
	if err := row.Scan(&out.ID, &out.Name, &out.Email); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			r.logger.Printf("CreateStudent duplicate id=%s after %s", s.ID, time.Since(start))
			return domain.Student{}, fmt.Errorf("student %s: %w", s.ID, domain.ErrConflict)
		}
		r.logger.Printf("CreateStudent scan error after %s: %v", time.Since(start), err)
		return domain.Student{}, fmt.Errorf("%w: %v", domain.ErrStore, err)
	}
	r.logger.Printf("CreateStudent ok in %s id=%s", time.Since(start), out.ID)
	return out, nil
}

// Все строки, порядок — естественный (без ORDER BY)
func (r *PGRepo) ListStudents(ctx context.Context) ([]domain.Student, error) {
	q := r.qb().Select("id", "name", "email").
		From(fmt.Sprintf("%s.students", r.schema))

	sqlStr, args, _ := q.ToSql()
	r.logSQL("ListStudents", sqlStr, args)

	start := time.Now()
	rows, err := r.pool.Query(ctx, sqlStr, args...)
	if err != nil {
		r.logger.Printf("ListStudents query error after %s: %v", time.Since(start), err)
		return nil, fmt.Errorf("%w: %v", domain.ErrStore, err)
	}
	defer rows.Close()

	var res []domain.Student
	for rows.Next() {
		var s domain.Student
		if err := rows.Scan(&s.ID, &s.Name, &s.Email); err != nil {
			r.logger.Printf("ListStudents scan error: %v", err)
			return nil, fmt.Errorf("%w: %v", domain.ErrStore, err)
		}
		res = append(res, s)
	}
	if err := rows.Err(); err != nil {
		r.logger.Printf("ListStudents rows error: %v", err)
		return nil, fmt.Errorf("%w: %v", domain.ErrStore, err)
	}
	r.logger.Printf("ListStudents ok in %s count=%d", time.Since(start), len(res))
	return res, nil
}

func (r *PGRepo) UpdateStudent(ctx context.Context, id domain.StudentID, name, email string) (domain.Student, error) {
	q := r.qb().Update(fmt.Sprintf("%s.students", r.schema)).
		SetMap(map[string]any{
			"name":  name,
			"email": email,
		}).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING id, name, email")

	sqlStr, args, _ := q.ToSql()
	r.logSQL("UpdateStudent", sqlStr, args)

	start := time.Now()
	row := r.pool.QueryRow(ctx, sqlStr, args...)
	var out domain.Student
	if err := row.Scan(&out.ID, &out.Name, &out.Email); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.Printf("UpdateStudent no rows in %s id=%s", time.Since(start), id)
			return domain.Student{}, fmt.Errorf("student %s: %w", id, domain.ErrNotFound)
		}
		r.logger.Printf("UpdateStudent scan error after %s: %v", time.Since(start), err)
		return domain.Student{}, fmt.Errorf("%w: %v", domain.ErrStore, err)
	}
	r.logger.Printf("UpdateStudent ok in %s id=%s", time.Since(start), out.ID)
	return out, nil
}

func (r *PGRepo) DeleteStudent(ctx context.Context, id domain.StudentID) error {
	q := r.qb().Delete(fmt.Sprintf("%s.students", r.schema)).
		Where(sq.Eq{"id": id})

	sqlStr, args, _ := q.ToSql()
	r.logSQL("DeleteStudent", sqlStr, args)

	start := time.Now()
	tag, err := r.pool.Exec(ctx, sqlStr, args...)
	if err != nil {
		r.logger.Printf("DeleteStudent exec error after %s: %v", time.Since(start), err)
		return fmt.Errorf("%w: %v", domain.ErrStore, err)
	}
	if tag.RowsAffected() == 0 {
		r.logger.Printf("DeleteStudent no rows affected in %s id=%s", time.Since(start), id)
		return fmt.Errorf("student %s: %w", id, domain.ErrNotFound)
	}
	r.logger.Printf("DeleteStudent ok in %s id=%s", time.Since(start), id)
	return nil
}
