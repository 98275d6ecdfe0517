package models

import (
	"time"
)

// StatusAdmitted is the status assigned to every newly created student.
const StatusAdmitted = "Admitted"

// Student represents an enrolled student. Every student belongs to exactly
// one course; deleting the course deletes its students.
type Student struct {
	ID            int64     `json:"id" db:"id"`
	FullName      string    `json:"fullName" db:"full_name"`
	Email         string    `json:"email" db:"email"`
	Age           int       `json:"age" db:"age"`
	CourseID      int64     `json:"courseId" db:"course_id"`
	AdmissionDate time.Time `json:"admissionDate" db:"admission_date"`
	Status        string    `json:"status" db:"status"`

	// CourseName is populated by joined queries; empty means the reference
	// was not resolved.
	CourseName string `json:"courseName,omitempty"`
}
