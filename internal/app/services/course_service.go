package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/campushq/registrar/internal/app/models"
	"github.com/campushq/registrar/internal/app/repositories"
	"github.com/campushq/registrar/internal/pkg/apperrors"
)

type courseService struct {
	courseRepo repositories.CourseRepository
}

// NewCourseService creates a new course service instance.
func NewCourseService(courseRepo repositories.CourseRepository) CourseService {
	return &courseService{courseRepo: courseRepo}
}

func (s *courseService) validateFields(name, code string, credits float64, department string) error {
	if strings.TrimSpace(name) == "" {
		return apperrors.NewValidationError("name is required")
	}
	if strings.TrimSpace(code) == "" {
		return apperrors.NewValidationError("code is required")
	}
	if credits <= 0 {
		return apperrors.NewValidationError("credits must be positive")
	}
	if strings.TrimSpace(department) == "" {
		return apperrors.NewValidationError("department is required")
	}
	return nil
}

func (s *courseService) Create(ctx context.Context, name, code string, credits float64, department string) (*models.Course, error) {
	if err := s.validateFields(name, code, credits, department); err != nil {
		return nil, err
	}

	course := &models.Course{
		Name:       strings.TrimSpace(name),
		Code:       strings.TrimSpace(code),
		Credits:    credits,
		Department: strings.TrimSpace(department),
	}

	if err := s.courseRepo.Create(ctx, course); err != nil {
		return nil, err
	}

	return course, nil
}

func (s *courseService) GetByID(ctx context.Context, id int64) (*models.Course, error) {
	return s.courseRepo.GetByID(ctx, id)
}

func (s *courseService) Update(ctx context.Context, id int64, name, code string, credits float64, department string) error {
	if err := s.validateFields(name, code, credits, department); err != nil {
		return err
	}

	course, err := s.courseRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	course.Name = strings.TrimSpace(name)
	course.Code = strings.TrimSpace(code)
	course.Credits = credits
	course.Department = strings.TrimSpace(department)

	return s.courseRepo.Update(ctx, course)
}

func (s *courseService) Delete(ctx context.Context, id int64) error {
	if _, err := s.courseRepo.GetByID(ctx, id); err != nil {
		return err
	}

	// Repository delete cascades to enrolled students in one transaction.
	return s.courseRepo.Delete(ctx, id)
}

func (s *courseService) List(ctx context.Context, search string) ([]*models.Course, error) {
	courses, err := s.courseRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing courses: %w", err)
	}

	search = strings.TrimSpace(search)
	if search == "" {
		return courses, nil
	}

	query := strings.ToLower(search)
	filtered := make([]*models.Course, 0, len(courses))
	for _, course := range courses {
		if strings.Contains(strings.ToLower(course.Name), query) ||
			strings.Contains(strings.ToLower(course.Code), query) {
			filtered = append(filtered, course)
		}
	}

	return filtered, nil
}
