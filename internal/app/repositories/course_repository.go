package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/campushq/registrar/internal/app/models"
	"github.com/campushq/registrar/internal/db"
	"github.com/campushq/registrar/internal/pkg/apperrors"
	"github.com/campushq/registrar/internal/pkg/dberrors"
)

// CourseRepository handles database operations for courses.
type CourseRepository interface {
	Create(ctx context.Context, course *models.Course) error
	GetByID(ctx context.Context, id int64) (*models.Course, error)
	GetAll(ctx context.Context) ([]*models.Course, error)
	Update(ctx context.Context, course *models.Course) error
	// Delete removes the course and every student enrolled in it within a
	// single transaction. Students cannot outlive their course.
	Delete(ctx context.Context, id int64) error
	Count(ctx context.Context) (int64, error)
}

type courseRepository struct {
	db *pgxpool.Pool
}

// NewCourseRepository creates a new course repository.
func NewCourseRepository(db *pgxpool.Pool) CourseRepository {
	return &courseRepository{db: db}
}

func (r *courseRepository) Create(ctx context.Context, course *models.Course) error {
	query := `
		INSERT INTO courses (name, code, credits, department)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query, course.Name, course.Code, course.Credits, course.Department).
		Scan(&course.ID)
	if err != nil {
		if dberrors.IsUniqueViolation(err, "courses_code_key") {
			return apperrors.ErrCourseCodeExists
		}
		return fmt.Errorf("error creating course: %w", err)
	}

	return nil
}

func (r *courseRepository) GetByID(ctx context.Context, id int64) (*models.Course, error) {
	query := `
		SELECT id, name, code, credits, department
		FROM courses
		WHERE id = $1
	`

	var course models.Course
	err := r.db.QueryRow(ctx, query, id).Scan(
		&course.ID,
		&course.Name,
		&course.Code,
		&course.Credits,
		&course.Department,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCourseNotFound
		}
		return nil, fmt.Errorf("error retrieving course: %w", err)
	}

	return &course, nil
}

func (r *courseRepository) GetAll(ctx context.Context) ([]*models.Course, error) {
	query := `
		SELECT id, name, code, credits, department
		FROM courses
		ORDER BY id
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var courses []*models.Course
	for rows.Next() {
		var course models.Course
		if err := rows.Scan(
			&course.ID,
			&course.Name,
			&course.Code,
			&course.Credits,
			&course.Department,
		); err != nil {
			return nil, err
		}
		courses = append(courses, &course)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return courses, nil
}

func (r *courseRepository) Update(ctx context.Context, course *models.Course) error {
	query := `
		UPDATE courses
		SET name = $1, code = $2, credits = $3, department = $4
		WHERE id = $5
	`

	cmdTag, err := r.db.Exec(ctx, query,
		course.Name, course.Code, course.Credits, course.Department, course.ID)
	if err != nil {
		if dberrors.IsUniqueViolation(err, "courses_code_key") {
			return apperrors.ErrCourseCodeExists
		}
		return fmt.Errorf("error updating course: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrCourseNotFound
	}

	return nil
}

func (r *courseRepository) Delete(ctx context.Context, id int64) error {
	// The schema declares ON DELETE CASCADE as well; the explicit two-step
	// delete keeps the ownership rule visible and atomic.
	return db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `DELETE FROM students WHERE course_id = $1`, id); err != nil {
			return fmt.Errorf("error deleting enrolled students: %w", err)
		}

		cmdTag, err := tx.Exec(ctx, `DELETE FROM courses WHERE id = $1`, id)
		if err != nil {
			return fmt.Errorf("error deleting course: %w", err)
		}

		if cmdTag.RowsAffected() == 0 {
			return apperrors.ErrCourseNotFound
		}

		return nil
	})
}

func (r *courseRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM courses`).Scan(&count); err != nil {
		return 0, fmt.Errorf("error counting courses: %w", err)
	}
	return count, nil
}
