package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories holds all the repository instances
type Repositories struct {
	UserRepository    UserRepository
	SessionRepository SessionRepository
	CourseRepository  CourseRepository
	StudentRepository StudentRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		UserRepository:    NewUserRepository(db),
		SessionRepository: NewSessionRepository(db),
		CourseRepository:  NewCourseRepository(db),
		StudentRepository: NewStudentRepository(db),
	}
}
