package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/campushq/registrar/internal/app/models"
	"github.com/campushq/registrar/internal/app/repositories"
	"github.com/campushq/registrar/internal/pkg/apperrors"
)

type studentService struct {
	studentRepo repositories.StudentRepository
	courseRepo  repositories.CourseRepository
}

// NewStudentService creates a new student service instance.
func NewStudentService(studentRepo repositories.StudentRepository, courseRepo repositories.CourseRepository) StudentService {
	return &studentService{
		studentRepo: studentRepo,
		courseRepo:  courseRepo,
	}
}

func (s *studentService) validateFields(fullName, email string, age int) error {
	if strings.TrimSpace(fullName) == "" {
		return apperrors.NewValidationError("full name is required")
	}
	if strings.TrimSpace(email) == "" {
		return apperrors.NewValidationError("email is required")
	}
	if age <= 0 {
		return apperrors.NewValidationError("age must be positive")
	}
	return nil
}

func (s *studentService) Create(ctx context.Context, fullName, email string, age int, courseID int64) (*models.Student, error) {
	if err := s.validateFields(fullName, email, age); err != nil {
		return nil, err
	}

	course, err := s.courseRepo.GetByID(ctx, courseID)
	if err != nil {
		return nil, err
	}

	student := &models.Student{
		FullName:   strings.TrimSpace(fullName),
		Email:      strings.TrimSpace(email),
		Age:        age,
		CourseID:   course.ID,
		CourseName: course.Name,
	}

	if err := s.studentRepo.Create(ctx, student); err != nil {
		return nil, fmt.Errorf("error creating student: %w", err)
	}

	return student, nil
}

func (s *studentService) GetByID(ctx context.Context, id int64) (*models.Student, error) {
	return s.studentRepo.GetByID(ctx, id)
}

func (s *studentService) Update(ctx context.Context, id int64, fullName, email string, age int, courseID int64) error {
	if err := s.validateFields(fullName, email, age); err != nil {
		return err
	}

	student, err := s.studentRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if _, err := s.courseRepo.GetByID(ctx, courseID); err != nil {
		return err
	}

	student.FullName = strings.TrimSpace(fullName)
	student.Email = strings.TrimSpace(email)
	student.Age = age
	student.CourseID = courseID

	return s.studentRepo.Update(ctx, student)
}

func (s *studentService) Delete(ctx context.Context, id int64) error {
	if _, err := s.studentRepo.GetByID(ctx, id); err != nil {
		return err
	}

	return s.studentRepo.Delete(ctx, id)
}

func (s *studentService) List(ctx context.Context, search string) ([]*models.Student, error) {
	students, err := s.studentRepo.GetAllWithCourse(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing students: %w", err)
	}

	search = strings.TrimSpace(search)
	if search == "" {
		return students, nil
	}

	query := strings.ToLower(search)
	filtered := make([]*models.Student, 0, len(students))
	for _, student := range students {
		if strings.Contains(strings.ToLower(student.FullName), query) ||
			strings.Contains(strings.ToLower(student.Email), query) ||
			strings.Contains(strings.ToLower(student.CourseName), query) {
			filtered = append(filtered, student)
		}
	}

	return filtered, nil
}
