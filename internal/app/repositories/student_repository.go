package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/campushq/registrar/internal/app/models"
	"github.com/campushq/registrar/internal/pkg/apperrors"
)

// StudentRepository handles database operations for students.
type StudentRepository interface {
	Create(ctx context.Context, student *models.Student) error
	GetByID(ctx context.Context, id int64) (*models.Student, error)
	// GetAllWithCourse returns all students in insertion order with the
	// course name resolved via a left join. An unresolved reference leaves
	// CourseName empty.
	GetAllWithCourse(ctx context.Context) ([]*models.Student, error)
	Update(ctx context.Context, student *models.Student) error
	Delete(ctx context.Context, id int64) error
	Count(ctx context.Context) (int64, error)
	// Recent returns the most recently admitted students, newest first,
	// ties broken by insertion order.
	Recent(ctx context.Context, limit int) ([]*models.Student, error)
}

type studentRepository struct {
	db *pgxpool.Pool
}

// NewStudentRepository creates a new student repository.
func NewStudentRepository(db *pgxpool.Pool) StudentRepository {
	return &studentRepository{db: db}
}

func (r *studentRepository) Create(ctx context.Context, student *models.Student) error {
	query := `
		INSERT INTO students (full_name, email, age, course_id, admission_date, status)
		VALUES ($1, $2, $3, $4, CURRENT_DATE, $5)
		RETURNING id, admission_date
	`

	err := r.db.QueryRow(ctx, query,
		student.FullName, student.Email, student.Age, student.CourseID, models.StatusAdmitted).
		Scan(&student.ID, &student.AdmissionDate)
	if err != nil {
		return fmt.Errorf("error creating student: %w", err)
	}
	student.Status = models.StatusAdmitted

	return nil
}

func (r *studentRepository) GetByID(ctx context.Context, id int64) (*models.Student, error) {
	query := `
		SELECT id, full_name, email, age, course_id, admission_date, status
		FROM students
		WHERE id = $1
	`

	var student models.Student
	err := r.db.QueryRow(ctx, query, id).Scan(
		&student.ID,
		&student.FullName,
		&student.Email,
		&student.Age,
		&student.CourseID,
		&student.AdmissionDate,
		&student.Status,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, fmt.Errorf("error retrieving student: %w", err)
	}

	return &student, nil
}

func (r *studentRepository) GetAllWithCourse(ctx context.Context) ([]*models.Student, error) {
	query := `
		SELECT s.id, s.full_name, s.email, s.age, s.course_id, s.admission_date, s.status, c.name
		FROM students s
		LEFT JOIN courses c ON c.id = s.course_id
		ORDER BY s.id
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var students []*models.Student
	for rows.Next() {
		var student models.Student
		var courseName *string
		if err := rows.Scan(
			&student.ID,
			&student.FullName,
			&student.Email,
			&student.Age,
			&student.CourseID,
			&student.AdmissionDate,
			&student.Status,
			&courseName,
		); err != nil {
			return nil, err
		}
		if courseName != nil {
			student.CourseName = *courseName
		}
		students = append(students, &student)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return students, nil
}

func (r *studentRepository) Update(ctx context.Context, student *models.Student) error {
	// admission_date and status are never touched by updates.
	query := `
		UPDATE students
		SET full_name = $1, email = $2, age = $3, course_id = $4
		WHERE id = $5
	`

	cmdTag, err := r.db.Exec(ctx, query,
		student.FullName, student.Email, student.Age, student.CourseID, student.ID)
	if err != nil {
		return fmt.Errorf("error updating student: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrStudentNotFound
	}

	return nil
}

func (r *studentRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM students WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting student: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrStudentNotFound
	}

	return nil
}

func (r *studentRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM students`).Scan(&count); err != nil {
		return 0, fmt.Errorf("error counting students: %w", err)
	}
	return count, nil
}

func (r *studentRepository) Recent(ctx context.Context, limit int) ([]*models.Student, error) {
	query := `
		SELECT s.id, s.full_name, s.email, s.age, s.course_id, s.admission_date, s.status, c.name
		FROM students s
		LEFT JOIN courses c ON c.id = s.course_id
		ORDER BY s.admission_date DESC, s.id DESC
		LIMIT $1
	`

	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var students []*models.Student
	for rows.Next() {
		var student models.Student
		var courseName *string
		if err := rows.Scan(
			&student.ID,
			&student.FullName,
			&student.Email,
			&student.Age,
			&student.CourseID,
			&student.AdmissionDate,
			&student.Status,
			&courseName,
		); err != nil {
			return nil, err
		}
		if courseName != nil {
			student.CourseName = *courseName
		}
		students = append(students, &student)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return students, nil
}
