package services

import (
	"context"
	"fmt"
	"strconv"

	"github.com/campushq/registrar/internal/app/repositories"
	"github.com/campushq/registrar/internal/pkg/apperrors"
)

// CSVHeader is the exact header row of the student export.
var CSVHeader = []string{"ID", "Full Name", "Email", "Course", "Age"}

type exportService struct {
	studentRepo repositories.StudentRepository
}

// NewExportService creates a new export service instance.
func NewExportService(studentRepo repositories.StudentRepository) ExportService {
	return &exportService{studentRepo: studentRepo}
}

func (s *exportService) StudentsCSV(ctx context.Context) ([][]string, error) {
	students, err := s.studentRepo.GetAllWithCourse(ctx)
	if err != nil {
		return nil, fmt.Errorf("error loading students for export: %w", err)
	}

	rows := make([][]string, 0, len(students)+1)
	rows = append(rows, CSVHeader)

	for _, student := range students {
		if student.CourseName == "" {
			// A broken course reference violates the ownership invariant;
			// surface it rather than skip the row.
			return nil, fmt.Errorf("student %d: %w", student.ID, apperrors.ErrCourseUnresolved)
		}

		rows = append(rows, []string{
			strconv.FormatInt(student.ID, 10),
			student.FullName,
			student.Email,
			student.CourseName,
			strconv.Itoa(student.Age),
		})
	}

	return rows, nil
}
