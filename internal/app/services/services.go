package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/campushq/registrar/internal/app/models"
	"github.com/campushq/registrar/internal/config"
)

// AuthService manages staff accounts and login sessions.
type AuthService interface {
	Register(ctx context.Context, fullName, email, password, confirmPassword string) error
	Login(ctx context.Context, email, password string) (*models.Session, *models.User, error)
	Logout(ctx context.Context, sessionID uuid.UUID) error
	// ForgotPassword returns a signed reset token for an existing account.
	// Delivery is simulated; the caller decides what to disclose.
	ForgotPassword(ctx context.Context, email string) (string, error)
	ResetPassword(ctx context.Context, token, password, confirmPassword string) error
	UpdateProfile(ctx context.Context, userID int64, fullName, email string) error
}

// StudentService manages student records.
type StudentService interface {
	Create(ctx context.Context, fullName, email string, age int, courseID int64) (*models.Student, error)
	GetByID(ctx context.Context, id int64) (*models.Student, error)
	Update(ctx context.Context, id int64, fullName, email string, age int, courseID int64) error
	Delete(ctx context.Context, id int64) error
	// List returns all students when search is empty, otherwise the students
	// whose name, email or course name contains the query, case-insensitive.
	List(ctx context.Context, search string) ([]*models.Student, error)
}

// CourseService manages courses.
type CourseService interface {
	Create(ctx context.Context, name, code string, credits float64, department string) (*models.Course, error)
	GetByID(ctx context.Context, id int64) (*models.Course, error)
	Update(ctx context.Context, id int64, name, code string, credits float64, department string) error
	// Delete removes the course and cascades to its students.
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, search string) ([]*models.Course, error)
}

// ExportService serializes the student roster.
type ExportService interface {
	// StudentsCSV returns the header row followed by one row per student.
	StudentsCSV(ctx context.Context) ([][]string, error)
}

// DashboardSummary aggregates the counts and recent admissions shown on the
// dashboard, plus configured operational notices.
type DashboardSummary struct {
	TotalStudents  int64
	TotalCourses   int64
	RecentStudents []*models.Student
	Notices        []config.Notice
}

// DashboardService produces the dashboard aggregation.
type DashboardService interface {
	Summary(ctx context.Context) (*DashboardSummary, error)
}
