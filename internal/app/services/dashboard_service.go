package services

import (
	"context"
	"fmt"

	"github.com/campushq/registrar/internal/app/repositories"
	"github.com/campushq/registrar/internal/config"
)

// RecentStudentLimit is how many recent admissions the dashboard shows.
const RecentStudentLimit = 5

type dashboardService struct {
	studentRepo repositories.StudentRepository
	courseRepo  repositories.CourseRepository
	notices     []config.Notice
}

// NewDashboardService creates a new dashboard service instance. Notices come
// from configuration, not from the database.
func NewDashboardService(
	studentRepo repositories.StudentRepository,
	courseRepo repositories.CourseRepository,
	notices []config.Notice,
) DashboardService {
	return &dashboardService{
		studentRepo: studentRepo,
		courseRepo:  courseRepo,
		notices:     notices,
	}
}

func (s *dashboardService) Summary(ctx context.Context) (*DashboardSummary, error) {
	totalStudents, err := s.studentRepo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("error counting students: %w", err)
	}

	totalCourses, err := s.courseRepo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("error counting courses: %w", err)
	}

	recent, err := s.studentRepo.Recent(ctx, RecentStudentLimit)
	if err != nil {
		return nil, fmt.Errorf("error loading recent students: %w", err)
	}

	return &DashboardSummary{
		TotalStudents:  totalStudents,
		TotalCourses:   totalCourses,
		RecentStudents: recent,
		Notices:        s.notices,
	}, nil
}
